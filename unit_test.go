package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestConvertRoundTrip(t *testing.T) {
	pairs := []struct {
		name     string
		from, to Unit
	}{
		{"meter/foot", Meter, Foot},
		{"kilometer/mile", Kilometer, Mile},
		{"kilogram/pound", Kilogram, Pound},
		{"hour/second", Hour, Second},
		{"kelvin/celsius", Kelvin, Celsius},
		{"celsius/fahrenheit", Celsius, Fahrenheit},
		{"bar/psi", Bar, PoundPerSquareInch},
		{"kWh/joule", KilowattHour, Joule},
		{"knot/kmh", Knot, KilometerPerHour},
	}
	values := []float64{-40, -1, 0, 0.125, 1, 37, 1609.344, 1e6}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for _, x := range values {
				there, err := Convert(x, p.from, p.to)
				require.NoError(t, err)
				back, err := Convert(there, p.to, p.from)
				require.NoError(t, err)
				assert.True(t, scalar.EqualWithinAbsOrRel(x, back, 1e-10, 1e-10),
					"%v %s -> %s -> back gave %v", x, p.from, p.to, back)
			}
		})
	}
}

func TestConvertAffineCorrectness(t *testing.T) {
	c, err := Convert(273.15, Kelvin, Celsius)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, 1e-12)

	f, err := Convert(373.15, Kelvin, Fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, f, 1e-10)

	k, err := Convert(-40.0, Fahrenheit, Kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 233.15, k, 1e-10)

	// -40 is where the two civil scales agree.
	cf, err := Convert(-40.0, Celsius, Fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, cf, 1e-10)
}

func TestConvertDimensionMismatch(t *testing.T) {
	_, err := Convert(1.0, Meter, Second)
	var mismatch *IncompatibleDimensionsError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, LengthVec, mismatch.Want)
	assert.Equal(t, TimeVec, mismatch.Got)
}

func TestConvertIdentityShortCircuit(t *testing.T) {
	// 0.1 is not representable exactly; a same-unit conversion must return
	// it bit-for-bit rather than round-tripping through canonical form.
	got, err := Convert(0.1, Foot, Foot)
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)

	got, err = Convert(0.1, Celsius, Celsius)
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)
}

func TestConvertIntegerTruncation(t *testing.T) {
	// Integer storage narrows toward zero, never rounds.
	ft, err := Convert(int64(1), Meter, Foot)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ft) // 3.2808...

	m, err := Convert(int64(-1750), Millimeter, Meter)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), m) // -1.75 truncates toward zero
}

func TestConvertNonFinitePassThrough(t *testing.T) {
	nan, err := Convert(math.NaN(), Celsius, Fahrenheit)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))

	inf, err := Convert(math.Inf(1), Meter, Foot)
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf, 1))

	ninf, err := Convert(math.Inf(-1), Fahrenheit, Kelvin)
	require.NoError(t, err)
	assert.True(t, math.IsInf(ninf, -1))
}

func TestZeroScalePanics(t *testing.T) {
	assert.Panics(t, func() { Ratio("x", "x", "x", LengthVec, 0) })
	assert.Panics(t, func() { Affine("x", "x", "x", TemperatureVec, 0, 0, 0) })
}

func TestUnitAlgebra(t *testing.T) {
	mps, err := Meter.Div(Second)
	require.NoError(t, err)
	assert.Equal(t, VelocityVec, mps.Dim())

	area, err := Meter.Mul(Meter)
	require.NoError(t, err)
	assert.Equal(t, AreaVec, area.Dim())

	cubed, err := Kilometer.Pow(3)
	require.NoError(t, err)
	assert.Equal(t, VolumeVec, cubed.Dim())
	assert.InDelta(t, 1e9, cubed.toCanonical(1), 1)
}

func TestUnitAlgebraRejectsAffine(t *testing.T) {
	var incompatible *IncompatibleUnitsError

	_, err := Celsius.Mul(Meter)
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, "°C", incompatible.Symbol)

	_, err = Meter.Div(Fahrenheit)
	require.ErrorAs(t, err, &incompatible)

	_, err = Celsius.Pow(2)
	require.ErrorAs(t, err, &incompatible)

	// Pow(1) of anything is the unit itself, affine included.
	same, err := Celsius.Pow(1)
	require.NoError(t, err)
	assert.Equal(t, Celsius, same)
}

func TestDerivedCanonicalUnits(t *testing.T) {
	// Canonical derived units are built through the algebra; their scales
	// must come out as exact identity.
	for _, u := range []Unit{SquareMeter, CubicMeter, MeterPerSecond, MeterPerSecondSquared, Newton, Joule, Watt, Pascal, Volt, Ohm, Coulomb} {
		assert.Equal(t, 1.0, u.toCanonical(1.0), "unit %s should be canonical", u.Symbol())
		assert.False(t, u.IsAffine())
	}

	assert.Equal(t, "N", Newton.Symbol())
	assert.Equal(t, "newton", Newton.Singular())
	assert.Equal(t, "newtons", Newton.Plural())
	assert.Equal(t, ForceVec, Newton.Dim())
}
