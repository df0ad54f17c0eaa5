package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewtonsSecondLaw(t *testing.T) {
	force := MulMassAcceleration(Kilograms(10.0), MetersPerSecondSquared(9.8))
	assert.True(t, force.ApproxEqual(Newtons(98.0), 1e-10))

	// And back out both factors.
	assert.True(t, DivForceMass(force, Kilograms(10.0)).ApproxEqual(MetersPerSecondSquared(9.8), 1e-10))
	assert.True(t, DivForceAcceleration(force, MetersPerSecondSquared(9.8)).ApproxEqual(Kilograms(10.0), 1e-10))
}

func TestVelocityFromLengthAndDuration(t *testing.T) {
	v := DivLengthDuration(Meters(100.0), Seconds(20.0))
	assert.True(t, v.ApproxEqual(MetersPerSecond(5.0), 1e-12))

	kmh, err := v.In(KilometerPerHour)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, kmh, 1e-10)
}

func TestOhmsLaw(t *testing.T) {
	voltage := MulResistanceCurrent(Ohms(220.0), Amperes(0.5))
	assert.True(t, voltage.ApproxEqual(Volts(110.0), 1e-10))

	power := MulVoltageCurrent(voltage, Amperes(0.5))
	assert.True(t, power.ApproxEqual(Watts(55.0), 1e-10))

	assert.True(t, DivVoltageCurrent(voltage, Amperes(0.5)).ApproxEqual(Ohms(220.0), 1e-10))
	assert.True(t, DivPowerVoltage(power, voltage).ApproxEqual(Amperes(0.5), 1e-10))
}

func TestOperatorCommutativity(t *testing.T) {
	m := Kilograms(3.5)
	a := MetersPerSecondSquared(2.0)
	assert.True(t, MulMassAcceleration(m, a) == MulAccelerationMass(a, m))

	p := Pascals(101325.0)
	vol := Liters(2.0)
	assert.True(t, MulPressureVolume(p, vol) == MulVolumePressure(vol, p))
}

func TestOperatorAssociativity(t *testing.T) {
	// (P·A)·L and P·(A·L) must agree in canonical value no matter which
	// generated path computes them.
	p := Atmospheres(1.0)
	area := SquareMeters(0.5)
	depth := Meters(3.0)

	viaForce := MulForceLength(MulPressureArea(p, area), depth)
	viaVolume := MulPressureVolume(p, MulAreaLength(area, depth))
	assert.True(t, viaForce.ApproxEqual(viaVolume, 1e-10))

	// Same for m·(v·t) against (m·v)·t-style chains through momentum.
	m := Kilograms(2.0)
	v := MetersPerSecond(4.0)
	dt := Seconds(5.0)

	impulse := MulForceDuration(DivMomentumDuration(MulMassVelocity(m, v), dt), dt)
	assert.True(t, impulse.ApproxEqual(MulMassVelocity(m, v), 1e-12))
}

func TestDimensionlessProduct(t *testing.T) {
	cycles := MulFrequencyDuration(PerSecond(50.0), Seconds(2.0))
	assert.Equal(t, 100.0, cycles.Canonical())
	assert.True(t, cycles.DimVector().IsDimensionless())

	pct, err := cycles.In(Percent)
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, pct, 1e-9)
}

func TestCrossDivisionZeroFloat(t *testing.T) {
	v := DivLengthDuration(Meters(10.0), Seconds(0.0))
	assert.True(t, math.IsInf(v.Canonical(), 1))

	nan := DivLengthDuration(Meters(0.0), Seconds(0.0))
	assert.True(t, math.IsNaN(nan.Canonical()))
}

func TestCrossDivisionZeroInteger(t *testing.T) {
	defer func() {
		var divZero *DivideByZeroError
		err, ok := recover().(error)
		require.True(t, ok, "expected a typed panic")
		require.True(t, errors.As(err, &divZero))
	}()
	DivLengthDuration(Meters(int64(10)), Seconds(int64(0)))
}

func TestDensityAndVolume(t *testing.T) {
	water := KilogramsPerCubicMeter(1000.0)
	tank := Liters(250.0)

	mass := MulDensityVolume(water, tank)
	assert.True(t, mass.ApproxEqual(Kilograms(250.0), 1e-9))

	back := DivMassDensity(mass, water)
	assert.True(t, back.ApproxEqual(CubicMeters(0.25), 1e-12))
}

func TestEnergyPaths(t *testing.T) {
	// W = F·d and E = P·t must be mutually consistent.
	work := MulForceLength(Newtons(98.0), Meters(10.0))
	power := DivEnergyDuration(work, Seconds(4.0))
	again := MulPowerDuration(power, Seconds(4.0))
	assert.True(t, work.ApproxEqual(again, 1e-12))

	kwh, err := MulPowerDuration(Kilowatts(2.0), Hours(3.0)).In(KilowattHour)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, kwh, 1e-10)
}
