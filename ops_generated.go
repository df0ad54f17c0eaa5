package units

//go:generate go run codegen/main.go -w

// Cross-type operator contracts, generated from the product table in
// codegen/main.go. For every registered triple A × B = C the generator
// emits the product, its commutative twin and both quotients, plus the
// runtime Product entry behind Products(). Operands are canonical values of
// one dimension each, so no unit conversion happens here and multiplication
// is exactly associative and commutative in canonical space. Division
// follows the storage type's native zero semantics (see divValues).

// MulLengthLength multiplies a Length by a Length, yielding an Area.
func MulLengthLength[S Storage](a Length[S], b Length[S]) Area[S] {
	return New[AreaDim](a.Canonical() * b.Canonical())
}

// DivAreaLength divides an Area by a Length, yielding a Length.
func DivAreaLength[S Storage](c Area[S], a Length[S]) Length[S] {
	return New[LengthDim](divValues(c.Canonical(), a.Canonical()))
}

// MulAreaLength multiplies an Area by a Length, yielding a Volume.
func MulAreaLength[S Storage](a Area[S], b Length[S]) Volume[S] {
	return New[VolumeDim](a.Canonical() * b.Canonical())
}

// MulLengthArea is the commutative form of MulAreaLength.
func MulLengthArea[S Storage](b Length[S], a Area[S]) Volume[S] {
	return New[VolumeDim](b.Canonical() * a.Canonical())
}

// DivVolumeArea divides a Volume by an Area, yielding a Length.
func DivVolumeArea[S Storage](c Volume[S], a Area[S]) Length[S] {
	return New[LengthDim](divValues(c.Canonical(), a.Canonical()))
}

// DivVolumeLength divides a Volume by a Length, yielding an Area.
func DivVolumeLength[S Storage](c Volume[S], b Length[S]) Area[S] {
	return New[AreaDim](divValues(c.Canonical(), b.Canonical()))
}

// MulVelocityDuration multiplies a Velocity by a Duration, yielding a Length.
func MulVelocityDuration[S Storage](a Velocity[S], b Duration[S]) Length[S] {
	return New[LengthDim](a.Canonical() * b.Canonical())
}

// MulDurationVelocity is the commutative form of MulVelocityDuration.
func MulDurationVelocity[S Storage](b Duration[S], a Velocity[S]) Length[S] {
	return New[LengthDim](b.Canonical() * a.Canonical())
}

// DivLengthVelocity divides a Length by a Velocity, yielding a Duration.
func DivLengthVelocity[S Storage](c Length[S], a Velocity[S]) Duration[S] {
	return New[DurationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivLengthDuration divides a Length by a Duration, yielding a Velocity.
func DivLengthDuration[S Storage](c Length[S], b Duration[S]) Velocity[S] {
	return New[VelocityDim](divValues(c.Canonical(), b.Canonical()))
}

// MulAccelerationDuration multiplies an Acceleration by a Duration, yielding a Velocity.
func MulAccelerationDuration[S Storage](a Acceleration[S], b Duration[S]) Velocity[S] {
	return New[VelocityDim](a.Canonical() * b.Canonical())
}

// MulDurationAcceleration is the commutative form of MulAccelerationDuration.
func MulDurationAcceleration[S Storage](b Duration[S], a Acceleration[S]) Velocity[S] {
	return New[VelocityDim](b.Canonical() * a.Canonical())
}

// DivVelocityAcceleration divides a Velocity by an Acceleration, yielding a Duration.
func DivVelocityAcceleration[S Storage](c Velocity[S], a Acceleration[S]) Duration[S] {
	return New[DurationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivVelocityDuration divides a Velocity by a Duration, yielding an Acceleration.
func DivVelocityDuration[S Storage](c Velocity[S], b Duration[S]) Acceleration[S] {
	return New[AccelerationDim](divValues(c.Canonical(), b.Canonical()))
}

// MulMassAcceleration multiplies a Mass by an Acceleration, yielding a Force.
func MulMassAcceleration[S Storage](a Mass[S], b Acceleration[S]) Force[S] {
	return New[ForceDim](a.Canonical() * b.Canonical())
}

// MulAccelerationMass is the commutative form of MulMassAcceleration.
func MulAccelerationMass[S Storage](b Acceleration[S], a Mass[S]) Force[S] {
	return New[ForceDim](b.Canonical() * a.Canonical())
}

// DivForceMass divides a Force by a Mass, yielding an Acceleration.
func DivForceMass[S Storage](c Force[S], a Mass[S]) Acceleration[S] {
	return New[AccelerationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivForceAcceleration divides a Force by an Acceleration, yielding a Mass.
func DivForceAcceleration[S Storage](c Force[S], b Acceleration[S]) Mass[S] {
	return New[MassDim](divValues(c.Canonical(), b.Canonical()))
}

// MulForceLength multiplies a Force by a Length, yielding an Energy.
func MulForceLength[S Storage](a Force[S], b Length[S]) Energy[S] {
	return New[EnergyDim](a.Canonical() * b.Canonical())
}

// MulLengthForce is the commutative form of MulForceLength.
func MulLengthForce[S Storage](b Length[S], a Force[S]) Energy[S] {
	return New[EnergyDim](b.Canonical() * a.Canonical())
}

// DivEnergyForce divides an Energy by a Force, yielding a Length.
func DivEnergyForce[S Storage](c Energy[S], a Force[S]) Length[S] {
	return New[LengthDim](divValues(c.Canonical(), a.Canonical()))
}

// DivEnergyLength divides an Energy by a Length, yielding a Force.
func DivEnergyLength[S Storage](c Energy[S], b Length[S]) Force[S] {
	return New[ForceDim](divValues(c.Canonical(), b.Canonical()))
}

// MulPowerDuration multiplies a Power by a Duration, yielding an Energy.
func MulPowerDuration[S Storage](a Power[S], b Duration[S]) Energy[S] {
	return New[EnergyDim](a.Canonical() * b.Canonical())
}

// MulDurationPower is the commutative form of MulPowerDuration.
func MulDurationPower[S Storage](b Duration[S], a Power[S]) Energy[S] {
	return New[EnergyDim](b.Canonical() * a.Canonical())
}

// DivEnergyPower divides an Energy by a Power, yielding a Duration.
func DivEnergyPower[S Storage](c Energy[S], a Power[S]) Duration[S] {
	return New[DurationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivEnergyDuration divides an Energy by a Duration, yielding a Power.
func DivEnergyDuration[S Storage](c Energy[S], b Duration[S]) Power[S] {
	return New[PowerDim](divValues(c.Canonical(), b.Canonical()))
}

// MulVoltageCurrent multiplies a Voltage by a Current, yielding a Power.
func MulVoltageCurrent[S Storage](a Voltage[S], b Current[S]) Power[S] {
	return New[PowerDim](a.Canonical() * b.Canonical())
}

// MulCurrentVoltage is the commutative form of MulVoltageCurrent.
func MulCurrentVoltage[S Storage](b Current[S], a Voltage[S]) Power[S] {
	return New[PowerDim](b.Canonical() * a.Canonical())
}

// DivPowerVoltage divides a Power by a Voltage, yielding a Current.
func DivPowerVoltage[S Storage](c Power[S], a Voltage[S]) Current[S] {
	return New[CurrentDim](divValues(c.Canonical(), a.Canonical()))
}

// DivPowerCurrent divides a Power by a Current, yielding a Voltage.
func DivPowerCurrent[S Storage](c Power[S], b Current[S]) Voltage[S] {
	return New[VoltageDim](divValues(c.Canonical(), b.Canonical()))
}

// MulResistanceCurrent multiplies a Resistance by a Current, yielding a Voltage.
func MulResistanceCurrent[S Storage](a Resistance[S], b Current[S]) Voltage[S] {
	return New[VoltageDim](a.Canonical() * b.Canonical())
}

// MulCurrentResistance is the commutative form of MulResistanceCurrent.
func MulCurrentResistance[S Storage](b Current[S], a Resistance[S]) Voltage[S] {
	return New[VoltageDim](b.Canonical() * a.Canonical())
}

// DivVoltageResistance divides a Voltage by a Resistance, yielding a Current.
func DivVoltageResistance[S Storage](c Voltage[S], a Resistance[S]) Current[S] {
	return New[CurrentDim](divValues(c.Canonical(), a.Canonical()))
}

// DivVoltageCurrent divides a Voltage by a Current, yielding a Resistance.
func DivVoltageCurrent[S Storage](c Voltage[S], b Current[S]) Resistance[S] {
	return New[ResistanceDim](divValues(c.Canonical(), b.Canonical()))
}

// MulCurrentDuration multiplies a Current by a Duration, yielding a Charge.
func MulCurrentDuration[S Storage](a Current[S], b Duration[S]) Charge[S] {
	return New[ChargeDim](a.Canonical() * b.Canonical())
}

// MulDurationCurrent is the commutative form of MulCurrentDuration.
func MulDurationCurrent[S Storage](b Duration[S], a Current[S]) Charge[S] {
	return New[ChargeDim](b.Canonical() * a.Canonical())
}

// DivChargeCurrent divides a Charge by a Current, yielding a Duration.
func DivChargeCurrent[S Storage](c Charge[S], a Current[S]) Duration[S] {
	return New[DurationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivChargeDuration divides a Charge by a Duration, yielding a Current.
func DivChargeDuration[S Storage](c Charge[S], b Duration[S]) Current[S] {
	return New[CurrentDim](divValues(c.Canonical(), b.Canonical()))
}

// MulPressureArea multiplies a Pressure by an Area, yielding a Force.
func MulPressureArea[S Storage](a Pressure[S], b Area[S]) Force[S] {
	return New[ForceDim](a.Canonical() * b.Canonical())
}

// MulAreaPressure is the commutative form of MulPressureArea.
func MulAreaPressure[S Storage](b Area[S], a Pressure[S]) Force[S] {
	return New[ForceDim](b.Canonical() * a.Canonical())
}

// DivForcePressure divides a Force by a Pressure, yielding an Area.
func DivForcePressure[S Storage](c Force[S], a Pressure[S]) Area[S] {
	return New[AreaDim](divValues(c.Canonical(), a.Canonical()))
}

// DivForceArea divides a Force by an Area, yielding a Pressure.
func DivForceArea[S Storage](c Force[S], b Area[S]) Pressure[S] {
	return New[PressureDim](divValues(c.Canonical(), b.Canonical()))
}

// MulPressureVolume multiplies a Pressure by a Volume, yielding an Energy.
func MulPressureVolume[S Storage](a Pressure[S], b Volume[S]) Energy[S] {
	return New[EnergyDim](a.Canonical() * b.Canonical())
}

// MulVolumePressure is the commutative form of MulPressureVolume.
func MulVolumePressure[S Storage](b Volume[S], a Pressure[S]) Energy[S] {
	return New[EnergyDim](b.Canonical() * a.Canonical())
}

// DivEnergyPressure divides an Energy by a Pressure, yielding a Volume.
func DivEnergyPressure[S Storage](c Energy[S], a Pressure[S]) Volume[S] {
	return New[VolumeDim](divValues(c.Canonical(), a.Canonical()))
}

// DivEnergyVolume divides an Energy by a Volume, yielding a Pressure.
func DivEnergyVolume[S Storage](c Energy[S], b Volume[S]) Pressure[S] {
	return New[PressureDim](divValues(c.Canonical(), b.Canonical()))
}

// MulDensityVolume multiplies a Density by a Volume, yielding a Mass.
func MulDensityVolume[S Storage](a Density[S], b Volume[S]) Mass[S] {
	return New[MassDim](a.Canonical() * b.Canonical())
}

// MulVolumeDensity is the commutative form of MulDensityVolume.
func MulVolumeDensity[S Storage](b Volume[S], a Density[S]) Mass[S] {
	return New[MassDim](b.Canonical() * a.Canonical())
}

// DivMassDensity divides a Mass by a Density, yielding a Volume.
func DivMassDensity[S Storage](c Mass[S], a Density[S]) Volume[S] {
	return New[VolumeDim](divValues(c.Canonical(), a.Canonical()))
}

// DivMassVolume divides a Mass by a Volume, yielding a Density.
func DivMassVolume[S Storage](c Mass[S], b Volume[S]) Density[S] {
	return New[DensityDim](divValues(c.Canonical(), b.Canonical()))
}

// MulMassVelocity multiplies a Mass by a Velocity, yielding a Momentum.
func MulMassVelocity[S Storage](a Mass[S], b Velocity[S]) Momentum[S] {
	return New[MomentumDim](a.Canonical() * b.Canonical())
}

// MulVelocityMass is the commutative form of MulMassVelocity.
func MulVelocityMass[S Storage](b Velocity[S], a Mass[S]) Momentum[S] {
	return New[MomentumDim](b.Canonical() * a.Canonical())
}

// DivMomentumMass divides a Momentum by a Mass, yielding a Velocity.
func DivMomentumMass[S Storage](c Momentum[S], a Mass[S]) Velocity[S] {
	return New[VelocityDim](divValues(c.Canonical(), a.Canonical()))
}

// DivMomentumVelocity divides a Momentum by a Velocity, yielding a Mass.
func DivMomentumVelocity[S Storage](c Momentum[S], b Velocity[S]) Mass[S] {
	return New[MassDim](divValues(c.Canonical(), b.Canonical()))
}

// MulForceDuration multiplies a Force by a Duration, yielding a Momentum.
func MulForceDuration[S Storage](a Force[S], b Duration[S]) Momentum[S] {
	return New[MomentumDim](a.Canonical() * b.Canonical())
}

// MulDurationForce is the commutative form of MulForceDuration.
func MulDurationForce[S Storage](b Duration[S], a Force[S]) Momentum[S] {
	return New[MomentumDim](b.Canonical() * a.Canonical())
}

// DivMomentumForce divides a Momentum by a Force, yielding a Duration.
func DivMomentumForce[S Storage](c Momentum[S], a Force[S]) Duration[S] {
	return New[DurationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivMomentumDuration divides a Momentum by a Duration, yielding a Force.
func DivMomentumDuration[S Storage](c Momentum[S], b Duration[S]) Force[S] {
	return New[ForceDim](divValues(c.Canonical(), b.Canonical()))
}

// MulFrequencyDuration multiplies a Frequency by a Duration, yielding a Scalar.
func MulFrequencyDuration[S Storage](a Frequency[S], b Duration[S]) Scalar[S] {
	return New[ScalarDim](a.Canonical() * b.Canonical())
}

// MulDurationFrequency is the commutative form of MulFrequencyDuration.
func MulDurationFrequency[S Storage](b Duration[S], a Frequency[S]) Scalar[S] {
	return New[ScalarDim](b.Canonical() * a.Canonical())
}

// DivScalarFrequency divides a Scalar by a Frequency, yielding a Duration.
func DivScalarFrequency[S Storage](c Scalar[S], a Frequency[S]) Duration[S] {
	return New[DurationDim](divValues(c.Canonical(), a.Canonical()))
}

// DivScalarDuration divides a Scalar by a Duration, yielding a Frequency.
func DivScalarDuration[S Storage](c Scalar[S], b Duration[S]) Frequency[S] {
	return New[FrequencyDim](divValues(c.Canonical(), b.Canonical()))
}

// productTable is the runtime registration of every generated triple.
var productTable = []Product{
	{A: "Length", B: "Length", C: "Area", AVec: LengthVec, BVec: LengthVec, CVec: AreaVec},
	{A: "Area", B: "Length", C: "Volume", AVec: AreaVec, BVec: LengthVec, CVec: VolumeVec},
	{A: "Velocity", B: "Duration", C: "Length", AVec: VelocityVec, BVec: TimeVec, CVec: LengthVec},
	{A: "Acceleration", B: "Duration", C: "Velocity", AVec: AccelerationVec, BVec: TimeVec, CVec: VelocityVec},
	{A: "Mass", B: "Acceleration", C: "Force", AVec: MassVec, BVec: AccelerationVec, CVec: ForceVec},
	{A: "Force", B: "Length", C: "Energy", AVec: ForceVec, BVec: LengthVec, CVec: EnergyVec},
	{A: "Power", B: "Duration", C: "Energy", AVec: PowerVec, BVec: TimeVec, CVec: EnergyVec},
	{A: "Voltage", B: "Current", C: "Power", AVec: VoltageVec, BVec: CurrentVec, CVec: PowerVec},
	{A: "Resistance", B: "Current", C: "Voltage", AVec: ResistanceVec, BVec: CurrentVec, CVec: VoltageVec},
	{A: "Current", B: "Duration", C: "Charge", AVec: CurrentVec, BVec: TimeVec, CVec: ChargeVec},
	{A: "Pressure", B: "Area", C: "Force", AVec: PressureVec, BVec: AreaVec, CVec: ForceVec},
	{A: "Pressure", B: "Volume", C: "Energy", AVec: PressureVec, BVec: VolumeVec, CVec: EnergyVec},
	{A: "Density", B: "Volume", C: "Mass", AVec: DensityVec, BVec: VolumeVec, CVec: MassVec},
	{A: "Mass", B: "Velocity", C: "Momentum", AVec: MassVec, BVec: VelocityVec, CVec: MomentumVec},
	{A: "Force", B: "Duration", C: "Momentum", AVec: ForceVec, BVec: TimeVec, CVec: MomentumVec},
	{A: "Frequency", B: "Duration", C: "Scalar", AVec: FrequencyVec, BVec: TimeVec, CVec: Dimensionless},
}
