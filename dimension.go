package units

// Dimension vectors for every quantity type in the catalog. The seven base
// vectors are spelled out; derived vectors are composed through the Vector
// algebra so the definitions read like the physics.
var (
	// Dimensionless is the zero vector: the dimension of bare ratios.
	Dimensionless = NewVector(0, 0, 0, 0, 0, 0, 0)

	LengthVec      = NewVector(1, 0, 0, 0, 0, 0, 0)
	MassVec        = NewVector(0, 1, 0, 0, 0, 0, 0)
	TimeVec        = NewVector(0, 0, 1, 0, 0, 0, 0)
	CurrentVec     = NewVector(0, 0, 0, 1, 0, 0, 0)
	TemperatureVec = NewVector(0, 0, 0, 0, 1, 0, 0)
	AmountVec      = NewVector(0, 0, 0, 0, 0, 1, 0)
	LuminousVec    = NewVector(0, 0, 0, 0, 0, 0, 1)

	AreaVec         = LengthVec.Pow(2)
	VolumeVec       = LengthVec.Pow(3)
	FrequencyVec    = TimeVec.Pow(-1)
	VelocityVec     = LengthVec.Div(TimeVec)
	AccelerationVec = VelocityVec.Div(TimeVec)
	ForceVec        = MassVec.Mul(AccelerationVec)
	MomentumVec     = MassVec.Mul(VelocityVec)
	EnergyVec       = ForceVec.Mul(LengthVec)
	PowerVec        = EnergyVec.Div(TimeVec)
	PressureVec     = ForceVec.Div(AreaVec)
	DensityVec      = MassVec.Div(VolumeVec)
	ChargeVec       = CurrentVec.Mul(TimeVec)
	VoltageVec      = PowerVec.Div(CurrentVec)
	ResistanceVec   = VoltageVec.Div(CurrentVec)
)

// Dimension is the compile-time tag pinning a Quantity to one dimension
// vector and one canonical unit. Implementations are empty marker structs;
// they exist purely so Quantity[LengthDim, S] and Quantity[DurationDim, S]
// are distinct types that cannot be summed.
type Dimension interface {
	DimVector() Vector
	CanonicalUnit() Unit
}

// dimVector fetches D's vector without an instance at the call site.
func dimVector[D Dimension]() Vector {
	var d D
	return d.DimVector()
}

// canonicalUnit fetches D's canonical unit without an instance.
func canonicalUnit[D Dimension]() Unit {
	var d D
	return d.CanonicalUnit()
}

// Base dimension markers.
type (
	LengthDim      struct{}
	MassDim        struct{}
	DurationDim    struct{}
	CurrentDim     struct{}
	TemperatureDim struct{}
	AmountDim      struct{}
	LuminousDim    struct{}
)

// Derived dimension markers.
type (
	AreaDim         struct{}
	VolumeDim       struct{}
	VelocityDim     struct{}
	AccelerationDim struct{}
	ForceDim        struct{}
	MomentumDim     struct{}
	EnergyDim       struct{}
	PowerDim        struct{}
	PressureDim     struct{}
	FrequencyDim    struct{}
	ChargeDim       struct{}
	VoltageDim      struct{}
	ResistanceDim   struct{}
	DensityDim      struct{}
	ScalarDim       struct{}
)

func (LengthDim) DimVector() Vector      { return LengthVec }
func (MassDim) DimVector() Vector        { return MassVec }
func (DurationDim) DimVector() Vector    { return TimeVec }
func (CurrentDim) DimVector() Vector     { return CurrentVec }
func (TemperatureDim) DimVector() Vector { return TemperatureVec }
func (AmountDim) DimVector() Vector      { return AmountVec }
func (LuminousDim) DimVector() Vector    { return LuminousVec }

func (AreaDim) DimVector() Vector         { return AreaVec }
func (VolumeDim) DimVector() Vector       { return VolumeVec }
func (VelocityDim) DimVector() Vector     { return VelocityVec }
func (AccelerationDim) DimVector() Vector { return AccelerationVec }
func (ForceDim) DimVector() Vector        { return ForceVec }
func (MomentumDim) DimVector() Vector     { return MomentumVec }
func (EnergyDim) DimVector() Vector       { return EnergyVec }
func (PowerDim) DimVector() Vector        { return PowerVec }
func (PressureDim) DimVector() Vector     { return PressureVec }
func (FrequencyDim) DimVector() Vector    { return FrequencyVec }
func (ChargeDim) DimVector() Vector       { return ChargeVec }
func (VoltageDim) DimVector() Vector      { return VoltageVec }
func (ResistanceDim) DimVector() Vector   { return ResistanceVec }
func (DensityDim) DimVector() Vector      { return DensityVec }
func (ScalarDim) DimVector() Vector       { return Dimensionless }

func (LengthDim) CanonicalUnit() Unit      { return Meter }
func (MassDim) CanonicalUnit() Unit        { return Kilogram }
func (DurationDim) CanonicalUnit() Unit    { return Second }
func (CurrentDim) CanonicalUnit() Unit     { return Ampere }
func (TemperatureDim) CanonicalUnit() Unit { return Kelvin }
func (AmountDim) CanonicalUnit() Unit      { return Mole }
func (LuminousDim) CanonicalUnit() Unit    { return Candela }

func (AreaDim) CanonicalUnit() Unit         { return SquareMeter }
func (VolumeDim) CanonicalUnit() Unit       { return CubicMeter }
func (VelocityDim) CanonicalUnit() Unit     { return MeterPerSecond }
func (AccelerationDim) CanonicalUnit() Unit { return MeterPerSecondSquared }
func (ForceDim) CanonicalUnit() Unit        { return Newton }
func (MomentumDim) CanonicalUnit() Unit     { return KilogramMeterPerSecond }
func (EnergyDim) CanonicalUnit() Unit       { return Joule }
func (PowerDim) CanonicalUnit() Unit        { return Watt }
func (PressureDim) CanonicalUnit() Unit     { return Pascal }
func (FrequencyDim) CanonicalUnit() Unit    { return Hertz }
func (ChargeDim) CanonicalUnit() Unit       { return Coulomb }
func (VoltageDim) CanonicalUnit() Unit      { return Volt }
func (ResistanceDim) CanonicalUnit() Unit   { return Ohm }
func (DensityDim) CanonicalUnit() Unit      { return KilogramPerCubicMeter }
func (ScalarDim) CanonicalUnit() Unit       { return One }

// Named quantity types. Generic aliases keep every same-dimension operation
// a single method set on Quantity while giving call sites concrete,
// dimension-checked names: a Length cannot be added to a Duration because
// the phantom tag differs.
type (
	Length[S Storage]      = Quantity[LengthDim, S]
	Mass[S Storage]        = Quantity[MassDim, S]
	Duration[S Storage]    = Quantity[DurationDim, S]
	Current[S Storage]     = Quantity[CurrentDim, S]
	Temperature[S Storage] = Quantity[TemperatureDim, S]
	Amount[S Storage]      = Quantity[AmountDim, S]
	Luminous[S Storage]    = Quantity[LuminousDim, S]

	Area[S Storage]         = Quantity[AreaDim, S]
	Volume[S Storage]       = Quantity[VolumeDim, S]
	Velocity[S Storage]     = Quantity[VelocityDim, S]
	Acceleration[S Storage] = Quantity[AccelerationDim, S]
	Force[S Storage]        = Quantity[ForceDim, S]
	Momentum[S Storage]     = Quantity[MomentumDim, S]
	Energy[S Storage]       = Quantity[EnergyDim, S]
	Power[S Storage]        = Quantity[PowerDim, S]
	Pressure[S Storage]     = Quantity[PressureDim, S]
	Frequency[S Storage]    = Quantity[FrequencyDim, S]
	Charge[S Storage]       = Quantity[ChargeDim, S]
	Voltage[S Storage]      = Quantity[VoltageDim, S]
	Resistance[S Storage]   = Quantity[ResistanceDim, S]
	Density[S Storage]      = Quantity[DensityDim, S]
	Scalar[S Storage]       = Quantity[ScalarDim, S]
)
