package units

// The unit catalog. Everything here is a static singleton populated during
// package initialization and read-only afterwards. Canonical units carry
// scale 1; derived canonical units are composed through the unit algebra so
// their dimension vectors and scales cannot drift from the definitions.

// mustUnit unwraps unit-algebra results inside the catalog, where an error
// is a programming mistake in the tables.
func mustUnit(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// Length units.
var (
	Meter        = Ratio("m", "meter", "meters", LengthVec, 1)
	Kilometer    = Ratio("km", "kilometer", "kilometers", LengthVec, 1000)
	Centimeter   = Ratio("cm", "centimeter", "centimeters", LengthVec, 0.01)
	Millimeter   = Ratio("mm", "millimeter", "millimeters", LengthVec, 0.001)
	Micrometer   = Ratio("µm", "micrometer", "micrometers", LengthVec, 1e-6)
	Mile         = Ratio("mi", "mile", "miles", LengthVec, 1609.344)
	Yard         = Ratio("yd", "yard", "yards", LengthVec, 0.9144)
	Foot         = Ratio("ft", "foot", "feet", LengthVec, 0.3048)
	Inch         = Ratio("in", "inch", "inches", LengthVec, 0.0254)
	NauticalMile = Ratio("nmi", "nautical mile", "nautical miles", LengthVec, 1852)
)

// Mass units.
var (
	Kilogram  = Ratio("kg", "kilogram", "kilograms", MassVec, 1)
	Gram      = Ratio("g", "gram", "grams", MassVec, 1e-3)
	Milligram = Ratio("mg", "milligram", "milligrams", MassVec, 1e-6)
	Tonne     = Ratio("t", "tonne", "tonnes", MassVec, 1000)
	Pound     = Ratio("lb", "pound", "pounds", MassVec, 0.45359237)
	Ounce     = Ratio("oz", "ounce", "ounces", MassVec, 0.028349523125)
)

// Time units.
var (
	Second      = Ratio("s", "second", "seconds", TimeVec, 1)
	Millisecond = Ratio("ms", "millisecond", "milliseconds", TimeVec, 1e-3)
	Microsecond = Ratio("µs", "microsecond", "microseconds", TimeVec, 1e-6)
	Minute      = Ratio("min", "minute", "minutes", TimeVec, 60)
	Hour        = Ratio("h", "hour", "hours", TimeVec, 3600)
	Day         = Ratio("d", "day", "days", TimeVec, 86400)
)

// Electric current units.
var (
	Ampere      = Ratio("A", "ampere", "amperes", CurrentVec, 1)
	Milliampere = Ratio("mA", "milliampere", "milliamperes", CurrentVec, 1e-3)
)

// Temperature units. Kelvin is canonical; the civil scales are affine:
// canonical = (value + pre)·scale + post.
var (
	Kelvin     = Ratio("K", "kelvin", "kelvins", TemperatureVec, 1)
	Celsius    = Affine("°C", "degree Celsius", "degrees Celsius", TemperatureVec, 1, 0, 273.15)
	Fahrenheit = Affine("°F", "degree Fahrenheit", "degrees Fahrenheit", TemperatureVec, 5.0/9.0, -32, 273.15)
)

// Amount-of-substance and luminous-intensity units.
var (
	Mole      = Ratio("mol", "mole", "moles", AmountVec, 1)
	Millimole = Ratio("mmol", "millimole", "millimoles", AmountVec, 1e-3)
	Candela   = Ratio("cd", "candela", "candelas", LuminousVec, 1)
)

// Area and volume units.
var (
	SquareMeter     = mustUnit(Meter.Pow(2)).Named("m²", "square meter", "square meters")
	SquareKilometer = mustUnit(Kilometer.Pow(2)).Named("km²", "square kilometer", "square kilometers")
	SquareFoot      = mustUnit(Foot.Pow(2)).Named("ft²", "square foot", "square feet")
	Hectare         = Ratio("ha", "hectare", "hectares", AreaVec, 1e4)

	CubicMeter = mustUnit(Meter.Pow(3)).Named("m³", "cubic meter", "cubic meters")
	Liter      = Ratio("L", "liter", "liters", VolumeVec, 1e-3)
	Milliliter = Ratio("mL", "milliliter", "milliliters", VolumeVec, 1e-6)
	USGallon   = Ratio("gal", "US gallon", "US gallons", VolumeVec, 0.003785411784)
)

// Velocity and acceleration units.
var (
	MeterPerSecond   = mustUnit(Meter.Div(Second)).Named("m/s", "meter per second", "meters per second")
	KilometerPerHour = mustUnit(Kilometer.Div(Hour)).Named("km/h", "kilometer per hour", "kilometers per hour")
	MilePerHour      = mustUnit(Mile.Div(Hour)).Named("mph", "mile per hour", "miles per hour")
	Knot             = Ratio("kn", "knot", "knots", VelocityVec, 1852.0/3600.0)

	MeterPerSecondSquared = mustUnit(MeterPerSecond.Div(Second)).Named("m/s²", "meter per second squared", "meters per second squared")
	StandardGravity       = Ratio("g₀", "standard gravity", "standard gravities", AccelerationVec, 9.80665)
)

// Force and momentum units.
var (
	Newton     = mustUnit(Kilogram.Mul(MeterPerSecondSquared)).Named("N", "newton", "newtons")
	Kilonewton = Ratio("kN", "kilonewton", "kilonewtons", ForceVec, 1000)
	PoundForce = Ratio("lbf", "pound-force", "pounds-force", ForceVec, 4.4482216152605)

	KilogramMeterPerSecond = mustUnit(Kilogram.Mul(MeterPerSecond)).Named("kg·m/s", "kilogram meter per second", "kilogram meters per second")
)

// Energy and power units.
var (
	Joule        = mustUnit(Newton.Mul(Meter)).Named("J", "joule", "joules")
	Kilojoule    = Ratio("kJ", "kilojoule", "kilojoules", EnergyVec, 1000)
	Calorie      = Ratio("cal", "calorie", "calories", EnergyVec, 4.184)
	KilowattHour = mustUnit(Kilowatt.Mul(Hour)).Named("kW·h", "kilowatt-hour", "kilowatt-hours")

	Watt       = mustUnit(Joule.Div(Second)).Named("W", "watt", "watts")
	Kilowatt   = Ratio("kW", "kilowatt", "kilowatts", PowerVec, 1000)
	Horsepower = Ratio("hp", "mechanical horsepower", "mechanical horsepower", PowerVec, 745.69987158227022)
)

// Pressure units.
var (
	Pascal             = mustUnit(Newton.Div(SquareMeter)).Named("Pa", "pascal", "pascals")
	Kilopascal         = Ratio("kPa", "kilopascal", "kilopascals", PressureVec, 1000)
	Bar                = Ratio("bar", "bar", "bars", PressureVec, 1e5)
	PoundPerSquareInch = Ratio("psi", "pound per square inch", "pounds per square inch", PressureVec, 6894.757293168361)
	Atmosphere         = Ratio("atm", "standard atmosphere", "standard atmospheres", PressureVec, 101325)
)

// Frequency units. Note hertz is its own plural, so the frequency factory
// is PerSecond rather than a pluralized unit name.
var (
	Hertz     = Ratio("Hz", "hertz", "hertz", FrequencyVec, 1)
	Kilohertz = Ratio("kHz", "kilohertz", "kilohertz", FrequencyVec, 1e3)
	Megahertz = Ratio("MHz", "megahertz", "megahertz", FrequencyVec, 1e6)
)

// Electrical units.
var (
	Coulomb    = mustUnit(Ampere.Mul(Second)).Named("C", "coulomb", "coulombs")
	AmpereHour = mustUnit(Ampere.Mul(Hour)).Named("A·h", "ampere-hour", "ampere-hours")

	Volt      = mustUnit(Watt.Div(Ampere)).Named("V", "volt", "volts")
	Millivolt = Ratio("mV", "millivolt", "millivolts", VoltageVec, 1e-3)
	Kilovolt  = Ratio("kV", "kilovolt", "kilovolts", VoltageVec, 1e3)

	Ohm     = mustUnit(Volt.Div(Ampere)).Named("Ω", "ohm", "ohms")
	Kiloohm = Ratio("kΩ", "kiloohm", "kiloohms", ResistanceVec, 1e3)
	Megaohm = Ratio("MΩ", "megaohm", "megaohms", ResistanceVec, 1e6)
)

// Density units.
var (
	KilogramPerCubicMeter  = mustUnit(Kilogram.Div(CubicMeter)).Named("kg/m³", "kilogram per cubic meter", "kilograms per cubic meter")
	GramPerCubicCentimeter = Ratio("g/cm³", "gram per cubic centimeter", "grams per cubic centimeter", DensityVec, 1000)
)

// Dimensionless units. One is the canonical unit of Scalar quantities and
// renders without a symbol.
var (
	One             = Ratio("", "ratio", "ratios", Dimensionless, 1)
	Percent         = Ratio("%", "percent", "percent", Dimensionless, 0.01)
	PartsPerMillion = Ratio("ppm", "part per million", "parts per million", Dimensionless, 1e-6)
)
