package units

// Lookup caches over the static catalog. Everything is built once in the
// package init phase and never mutated afterwards, so concurrent readers
// need no synchronization. Vector's comparability is what makes it a map
// key here; the equality/hash contract tests pin that down.

// Product records one registered cross-type multiplication A × B = C.
// The generated operator functions are the compile-time form of this table;
// the runtime form exists for introspection, visualization and for the
// self-consistency check that every registered triple actually satisfies
// AVec.Mul(BVec) == CVec.
type Product struct {
	A, B, C          string
	AVec, BVec, CVec Vector
}

var dimensionNames = map[Vector]string{}

var unitsByDim = map[Vector][]Unit{}

var namedDimensions = []struct {
	Name string
	Vec  Vector
}{
	{"Length", LengthVec},
	{"Mass", MassVec},
	{"Duration", TimeVec},
	{"Current", CurrentVec},
	{"Temperature", TemperatureVec},
	{"Amount", AmountVec},
	{"Luminous", LuminousVec},
	{"Area", AreaVec},
	{"Volume", VolumeVec},
	{"Velocity", VelocityVec},
	{"Acceleration", AccelerationVec},
	{"Force", ForceVec},
	{"Momentum", MomentumVec},
	{"Energy", EnergyVec},
	{"Power", PowerVec},
	{"Pressure", PressureVec},
	{"Frequency", FrequencyVec},
	{"Charge", ChargeVec},
	{"Voltage", VoltageVec},
	{"Resistance", ResistanceVec},
	{"Density", DensityVec},
	{"Scalar", Dimensionless},
}

func catalogUnits() []Unit {
	return []Unit{
		Meter, Kilometer, Centimeter, Millimeter, Micrometer,
		Mile, Yard, Foot, Inch, NauticalMile,
		Kilogram, Gram, Milligram, Tonne, Pound, Ounce,
		Second, Millisecond, Microsecond, Minute, Hour, Day,
		Ampere, Milliampere,
		Kelvin, Celsius, Fahrenheit,
		Mole, Millimole, Candela,
		SquareMeter, SquareKilometer, SquareFoot, Hectare,
		CubicMeter, Liter, Milliliter, USGallon,
		MeterPerSecond, KilometerPerHour, MilePerHour, Knot,
		MeterPerSecondSquared, StandardGravity,
		Newton, Kilonewton, PoundForce,
		KilogramMeterPerSecond,
		Joule, Kilojoule, Calorie, KilowattHour,
		Watt, Kilowatt, Horsepower,
		Pascal, Kilopascal, Bar, PoundPerSquareInch, Atmosphere,
		Hertz, Kilohertz, Megahertz,
		Coulomb, AmpereHour,
		Volt, Millivolt, Kilovolt,
		Ohm, Kiloohm, Megaohm,
		KilogramPerCubicMeter, GramPerCubicCentimeter,
		One, Percent, PartsPerMillion,
	}
}

func init() {
	for _, d := range namedDimensions {
		dimensionNames[d.Vec] = d.Name
	}
	for _, u := range catalogUnits() {
		unitsByDim[u.dim] = append(unitsByDim[u.dim], u)
	}
}

// DimensionName returns the quantity-type name registered for a vector,
// e.g. "Force" for M L T⁻².
func DimensionName(v Vector) (string, bool) {
	name, ok := dimensionNames[v]
	return name, ok
}

// UnitsFor returns every catalog unit measuring the given dimension. The
// slice is a copy; callers may reorder it freely.
func UnitsFor(v Vector) []Unit {
	cached := unitsByDim[v]
	if len(cached) == 0 {
		return nil
	}
	out := make([]Unit, len(cached))
	copy(out, cached)
	return out
}

// Products returns the registered multiplication triples backing the
// generated operator functions. The slice is a copy.
func Products() []Product {
	out := make([]Product, len(productTable))
	copy(out, productTable)
	return out
}
