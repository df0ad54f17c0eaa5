package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityConstruction(t *testing.T) {
	d := Kilometers(5.0)
	assert.Equal(t, 5000.0, d.Canonical())
	assert.Equal(t, LengthVec, d.DimVector())
	assert.Equal(t, Meter, d.Unit())

	fromUnitValue, err := From[LengthDim](5.0, Kilometer)
	require.NoError(t, err)
	assert.True(t, d == fromUnitValue)

	raw := New[LengthDim](5000.0)
	assert.True(t, d.Equal(raw))
}

func TestQuantityConstructionDimensionMismatch(t *testing.T) {
	_, err := From[LengthDim](5.0, Second)
	var mismatch *IncompatibleDimensionsError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, LengthVec, mismatch.Want)
	assert.Equal(t, TimeVec, mismatch.Got)
}

func TestQuantityIn(t *testing.T) {
	d := Meters(1609.344)
	mi, err := d.In(Mile)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mi, 1e-12)

	_, err = d.In(Kilogram)
	var mismatch *IncompatibleDimensionsError
	require.ErrorAs(t, err, &mismatch)

	// Canonical extraction is exact, even for awkward floats.
	v := Meters(0.1)
	m, err := v.In(Meter)
	require.NoError(t, err)
	assert.Equal(t, 0.1, m)
}

func TestQuantityIntegerStorageStaysExact(t *testing.T) {
	// A canonical-unit factory must not route int64 through float64.
	big := Meters(int64(1) << 60)
	assert.Equal(t, int64(1)<<60, big.Canonical())

	got, err := big.In(Meter)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<60, got)
}

func TestQuantityArithmetic(t *testing.T) {
	a := Meters(30.0)
	b := Meters(12.0)

	assert.Equal(t, 42.0, a.Add(b).Canonical())
	assert.Equal(t, 18.0, a.Sub(b).Canonical())
	assert.Equal(t, -30.0, a.Neg().Canonical())
	assert.Equal(t, 30.0, a.Neg().Abs().Canonical())
	assert.Equal(t, 90.0, a.Scale(3).Canonical())

	half, err := a.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, 15.0, half.Canonical())

	ratio, err := a.Ratio(b)
	require.NoError(t, err)
	assert.Equal(t, 2.5, ratio)
}

func TestQuantityDivideByZeroPolicy(t *testing.T) {
	// Floating storage prefers IEEE infinity over errors.
	q, err := Meters(10.0).DivScalar(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Canonical(), 1))

	ratio, err := Meters(10.0).Ratio(Meters(0.0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(ratio, 1))

	// Integer storage has no infinity and must fail instead.
	var divZero *DivideByZeroError
	_, err = Meters(int64(10)).DivScalar(0)
	require.ErrorAs(t, err, &divZero)

	_, err = Meters(int64(10)).Ratio(Meters(int64(0)))
	require.ErrorAs(t, err, &divZero)
}

func TestQuantityPow(t *testing.T) {
	q := Meters(3.0)

	assert.Equal(t, 81.0, q.Pow(4).Canonical())
	assert.Equal(t, 1.0, q.Pow(0).Canonical())
	assert.Equal(t, 1.0, Meters(0.0).Pow(0).Canonical(), "0^0 is the multiplicative identity here")

	inv := q.Pow(-2)
	assert.InDelta(t, 1.0/9.0, inv.Canonical(), 1e-15)

	// pow(-n) == 1 / pow(n)
	pos := q.Pow(3)
	recip, err := New[LengthDim](1.0).DivScalar(pos.Canonical())
	require.NoError(t, err)
	assert.InDelta(t, recip.Canonical(), q.Pow(-3).Canonical(), 1e-18)

	// Integer storage, zero base, negative exponent: no infinity to fall
	// back on, so the typed panic fires.
	defer func() {
		var divZero *DivideByZeroError
		require.True(t, errors.As(recoveredError(recover()), &divZero))
	}()
	Meters(int64(0)).Pow(-1)
}

// recoveredError converts a recover() payload into an error for errors.As.
func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return nil
}

func TestQuantityComparison(t *testing.T) {
	small := Kilograms(1.0)
	large := Kilograms(2.0)

	assert.Equal(t, -1, small.Cmp(large))
	assert.Equal(t, 1, large.Cmp(small))
	assert.Equal(t, 0, small.Cmp(Kilograms(1.0)))

	assert.True(t, small.Less(large))
	assert.True(t, small.LessEq(small))
	assert.True(t, large.Greater(small))
	assert.True(t, large.GreaterEq(large))
	assert.True(t, small.Equal(Kilograms(1.0)))
	assert.False(t, small.IsZero())
	assert.True(t, Kilograms(0.0).IsZero())
}

func TestQuantityMinMaxClamp(t *testing.T) {
	lo := DegreesCelsius(5.0)
	hi := DegreesCelsius(30.0)

	assert.Equal(t, lo, DegreesCelsius(20.0).Min(lo))
	assert.Equal(t, hi, DegreesCelsius(20.0).Max(hi))
	assert.Equal(t, lo, DegreesCelsius(-10.0).Clamp(lo, hi))
	assert.Equal(t, hi, DegreesCelsius(45.0).Clamp(lo, hi))

	inside := DegreesCelsius(21.5)
	assert.Equal(t, inside, inside.Clamp(lo, hi))
}

func TestQuantityAffineAccessors(t *testing.T) {
	freezing := Kelvins(273.15)
	c, err := freezing.In(Celsius)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, 1e-12)

	boiling := Kelvins(373.15)
	f, err := boiling.In(Fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, f, 1e-10)

	body := DegreesFahrenheit(98.6)
	assert.InDelta(t, 310.15, body.Canonical(), 1e-10)
}

func TestQuantityApproxEqual(t *testing.T) {
	a := Meters(100.0)
	b := Meters(100.0 + 1e-12)
	assert.True(t, a.ApproxEqual(b, 1e-9))
	assert.False(t, a.ApproxEqual(Meters(101.0), 1e-9))
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "9.8 m/s²", MetersPerSecondSquared(9.8).String())
	assert.Equal(t, "5000 m", Kilometers(5.0).String())
	assert.Equal(t, "0.5", New[ScalarDim](0.5).String())
}

// Defined types over the storage kinds must satisfy Storage, which is what
// makes fixed-point storage possible.
type millimeters int64

func TestQuantityDefinedStorageType(t *testing.T) {
	a := Meters(millimeters(2000))
	b := Meters(millimeters(500))

	assert.Equal(t, millimeters(2500), a.Add(b).Canonical())

	_, err := a.Ratio(Meters(millimeters(0)))
	var divZero *DivideByZeroError
	require.ErrorAs(t, err, &divZero)
}
