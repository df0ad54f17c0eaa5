package units

// Per-unit quantity factories. Each one is a thin checked-by-construction
// call into fromUnit: the unit's dimension is pinned by the catalog, so no
// runtime dimension check is needed and canonical units cost nothing.

// Meters builds a Length from a value in meters.
func Meters[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Meter) }

// Kilometers builds a Length from a value in kilometers.
func Kilometers[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Kilometer) }

// Centimeters builds a Length from a value in centimeters.
func Centimeters[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Centimeter) }

// Millimeters builds a Length from a value in millimeters.
func Millimeters[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Millimeter) }

// Miles builds a Length from a value in miles.
func Miles[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Mile) }

// Yards builds a Length from a value in yards.
func Yards[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Yard) }

// Feet builds a Length from a value in feet.
func Feet[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Foot) }

// Inches builds a Length from a value in inches.
func Inches[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, Inch) }

// NauticalMiles builds a Length from a value in nautical miles.
func NauticalMiles[S Storage](v S) Length[S] { return fromUnit[LengthDim](v, NauticalMile) }

// Kilograms builds a Mass from a value in kilograms.
func Kilograms[S Storage](v S) Mass[S] { return fromUnit[MassDim](v, Kilogram) }

// Grams builds a Mass from a value in grams.
func Grams[S Storage](v S) Mass[S] { return fromUnit[MassDim](v, Gram) }

// Milligrams builds a Mass from a value in milligrams.
func Milligrams[S Storage](v S) Mass[S] { return fromUnit[MassDim](v, Milligram) }

// Tonnes builds a Mass from a value in tonnes.
func Tonnes[S Storage](v S) Mass[S] { return fromUnit[MassDim](v, Tonne) }

// Pounds builds a Mass from a value in avoirdupois pounds.
func Pounds[S Storage](v S) Mass[S] { return fromUnit[MassDim](v, Pound) }

// Ounces builds a Mass from a value in ounces.
func Ounces[S Storage](v S) Mass[S] { return fromUnit[MassDim](v, Ounce) }

// Seconds builds a Duration from a value in seconds.
func Seconds[S Storage](v S) Duration[S] { return fromUnit[DurationDim](v, Second) }

// Milliseconds builds a Duration from a value in milliseconds.
func Milliseconds[S Storage](v S) Duration[S] { return fromUnit[DurationDim](v, Millisecond) }

// Minutes builds a Duration from a value in minutes.
func Minutes[S Storage](v S) Duration[S] { return fromUnit[DurationDim](v, Minute) }

// Hours builds a Duration from a value in hours.
func Hours[S Storage](v S) Duration[S] { return fromUnit[DurationDim](v, Hour) }

// Days builds a Duration from a value in days.
func Days[S Storage](v S) Duration[S] { return fromUnit[DurationDim](v, Day) }

// Amperes builds a Current from a value in amperes.
func Amperes[S Storage](v S) Current[S] { return fromUnit[CurrentDim](v, Ampere) }

// Milliamperes builds a Current from a value in milliamperes.
func Milliamperes[S Storage](v S) Current[S] { return fromUnit[CurrentDim](v, Milliampere) }

// Kelvins builds a Temperature from a value in kelvins.
func Kelvins[S Storage](v S) Temperature[S] { return fromUnit[TemperatureDim](v, Kelvin) }

// DegreesCelsius builds a Temperature from a value on the Celsius scale.
func DegreesCelsius[S Storage](v S) Temperature[S] { return fromUnit[TemperatureDim](v, Celsius) }

// DegreesFahrenheit builds a Temperature from a value on the Fahrenheit scale.
func DegreesFahrenheit[S Storage](v S) Temperature[S] { return fromUnit[TemperatureDim](v, Fahrenheit) }

// Moles builds an Amount from a value in moles.
func Moles[S Storage](v S) Amount[S] { return fromUnit[AmountDim](v, Mole) }

// Candelas builds a Luminous intensity from a value in candelas.
func Candelas[S Storage](v S) Luminous[S] { return fromUnit[LuminousDim](v, Candela) }

// SquareMeters builds an Area from a value in square meters.
func SquareMeters[S Storage](v S) Area[S] { return fromUnit[AreaDim](v, SquareMeter) }

// SquareFeet builds an Area from a value in square feet.
func SquareFeet[S Storage](v S) Area[S] { return fromUnit[AreaDim](v, SquareFoot) }

// Hectares builds an Area from a value in hectares.
func Hectares[S Storage](v S) Area[S] { return fromUnit[AreaDim](v, Hectare) }

// CubicMeters builds a Volume from a value in cubic meters.
func CubicMeters[S Storage](v S) Volume[S] { return fromUnit[VolumeDim](v, CubicMeter) }

// Liters builds a Volume from a value in liters.
func Liters[S Storage](v S) Volume[S] { return fromUnit[VolumeDim](v, Liter) }

// Milliliters builds a Volume from a value in milliliters.
func Milliliters[S Storage](v S) Volume[S] { return fromUnit[VolumeDim](v, Milliliter) }

// USGallons builds a Volume from a value in US gallons.
func USGallons[S Storage](v S) Volume[S] { return fromUnit[VolumeDim](v, USGallon) }

// MetersPerSecond builds a Velocity from a value in meters per second.
func MetersPerSecond[S Storage](v S) Velocity[S] { return fromUnit[VelocityDim](v, MeterPerSecond) }

// KilometersPerHour builds a Velocity from a value in kilometers per hour.
func KilometersPerHour[S Storage](v S) Velocity[S] {
	return fromUnit[VelocityDim](v, KilometerPerHour)
}

// MilesPerHour builds a Velocity from a value in miles per hour.
func MilesPerHour[S Storage](v S) Velocity[S] { return fromUnit[VelocityDim](v, MilePerHour) }

// Knots builds a Velocity from a value in knots.
func Knots[S Storage](v S) Velocity[S] { return fromUnit[VelocityDim](v, Knot) }

// MetersPerSecondSquared builds an Acceleration from a value in m/s².
func MetersPerSecondSquared[S Storage](v S) Acceleration[S] {
	return fromUnit[AccelerationDim](v, MeterPerSecondSquared)
}

// Gravities builds an Acceleration from multiples of standard gravity.
func Gravities[S Storage](v S) Acceleration[S] {
	return fromUnit[AccelerationDim](v, StandardGravity)
}

// Newtons builds a Force from a value in newtons.
func Newtons[S Storage](v S) Force[S] { return fromUnit[ForceDim](v, Newton) }

// Kilonewtons builds a Force from a value in kilonewtons.
func Kilonewtons[S Storage](v S) Force[S] { return fromUnit[ForceDim](v, Kilonewton) }

// PoundsForce builds a Force from a value in pounds-force.
func PoundsForce[S Storage](v S) Force[S] { return fromUnit[ForceDim](v, PoundForce) }

// KilogramMetersPerSecond builds a Momentum from a value in kg·m/s.
func KilogramMetersPerSecond[S Storage](v S) Momentum[S] {
	return fromUnit[MomentumDim](v, KilogramMeterPerSecond)
}

// Joules builds an Energy from a value in joules.
func Joules[S Storage](v S) Energy[S] { return fromUnit[EnergyDim](v, Joule) }

// Kilojoules builds an Energy from a value in kilojoules.
func Kilojoules[S Storage](v S) Energy[S] { return fromUnit[EnergyDim](v, Kilojoule) }

// Calories builds an Energy from a value in thermochemical calories.
func Calories[S Storage](v S) Energy[S] { return fromUnit[EnergyDim](v, Calorie) }

// KilowattHours builds an Energy from a value in kilowatt-hours.
func KilowattHours[S Storage](v S) Energy[S] { return fromUnit[EnergyDim](v, KilowattHour) }

// Watts builds a Power from a value in watts.
func Watts[S Storage](v S) Power[S] { return fromUnit[PowerDim](v, Watt) }

// Kilowatts builds a Power from a value in kilowatts.
func Kilowatts[S Storage](v S) Power[S] { return fromUnit[PowerDim](v, Kilowatt) }

// Pascals builds a Pressure from a value in pascals.
func Pascals[S Storage](v S) Pressure[S] { return fromUnit[PressureDim](v, Pascal) }

// Kilopascals builds a Pressure from a value in kilopascals.
func Kilopascals[S Storage](v S) Pressure[S] { return fromUnit[PressureDim](v, Kilopascal) }

// Bars builds a Pressure from a value in bars.
func Bars[S Storage](v S) Pressure[S] { return fromUnit[PressureDim](v, Bar) }

// PoundsPerSquareInch builds a Pressure from a value in psi.
func PoundsPerSquareInch[S Storage](v S) Pressure[S] {
	return fromUnit[PressureDim](v, PoundPerSquareInch)
}

// Atmospheres builds a Pressure from a value in standard atmospheres.
func Atmospheres[S Storage](v S) Pressure[S] { return fromUnit[PressureDim](v, Atmosphere) }

// PerSecond builds a Frequency from a value in hertz.
func PerSecond[S Storage](v S) Frequency[S] { return fromUnit[FrequencyDim](v, Hertz) }

// Coulombs builds a Charge from a value in coulombs.
func Coulombs[S Storage](v S) Charge[S] { return fromUnit[ChargeDim](v, Coulomb) }

// AmpereHours builds a Charge from a value in ampere-hours.
func AmpereHours[S Storage](v S) Charge[S] { return fromUnit[ChargeDim](v, AmpereHour) }

// Volts builds a Voltage from a value in volts.
func Volts[S Storage](v S) Voltage[S] { return fromUnit[VoltageDim](v, Volt) }

// Millivolts builds a Voltage from a value in millivolts.
func Millivolts[S Storage](v S) Voltage[S] { return fromUnit[VoltageDim](v, Millivolt) }

// Ohms builds a Resistance from a value in ohms.
func Ohms[S Storage](v S) Resistance[S] { return fromUnit[ResistanceDim](v, Ohm) }

// Kiloohms builds a Resistance from a value in kiloohms.
func Kiloohms[S Storage](v S) Resistance[S] { return fromUnit[ResistanceDim](v, Kiloohm) }

// KilogramsPerCubicMeter builds a Density from a value in kg/m³.
func KilogramsPerCubicMeter[S Storage](v S) Density[S] {
	return fromUnit[DensityDim](v, KilogramPerCubicMeter)
}

// GramsPerCubicCentimeter builds a Density from a value in g/cm³.
func GramsPerCubicCentimeter[S Storage](v S) Density[S] {
	return fromUnit[DensityDim](v, GramPerCubicCentimeter)
}
