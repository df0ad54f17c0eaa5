package units

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorAlgebraClosure(t *testing.T) {
	tests := []struct {
		name string
		d1   Vector
		d2   Vector
	}{
		{"base by base", LengthVec, TimeVec},
		{"derived by base", VelocityVec, TimeVec},
		{"derived by derived", EnergyVec, PressureVec},
		{"self", ForceVec, ForceVec},
		{"dimensionless operand", VoltageVec, Dimensionless},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.d1, tt.d1.Mul(tt.d2).Div(tt.d2))
			assert.Equal(t, tt.d1.Mul(tt.d2), tt.d2.Mul(tt.d1), "Mul must be commutative")
		})
	}
}

func TestVectorComposition(t *testing.T) {
	assert.Equal(t, VelocityVec, LengthVec.Div(TimeVec))
	assert.Equal(t, ForceVec, MassVec.Mul(LengthVec).Div(TimeVec.Pow(2)))
	assert.Equal(t, EnergyVec, PressureVec.Mul(VolumeVec))
	assert.Equal(t, Dimensionless, FrequencyVec.Mul(TimeVec))
	assert.True(t, FrequencyVec.Mul(TimeVec).IsDimensionless())
}

func TestVectorPowAndRoot(t *testing.T) {
	assert.Equal(t, AreaVec, LengthVec.Pow(2))
	assert.Equal(t, Dimensionless, EnergyVec.Pow(0))
	assert.Equal(t, FrequencyVec, TimeVec.Pow(-1))

	root, err := VelocityVec.Pow(3).Root(3)
	require.NoError(t, err)
	assert.Equal(t, VelocityVec, root)

	root, err = AreaVec.Root(2)
	require.NoError(t, err)
	assert.Equal(t, LengthVec, root)

	_, err = VolumeVec.Root(2)
	var invalid *InvalidDimensionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, VolumeVec, invalid.Vec)

	_, err = LengthVec.Root(0)
	require.ErrorAs(t, err, &invalid)
}

func TestVectorEqualityAndHash(t *testing.T) {
	a := NewVector(1, 1, -2, 0, 0, 0, 0)
	b := MassVec.Mul(LengthVec).Div(TimeVec.Pow(2))

	assert.True(t, a == b)
	assert.True(t, a.Equal(b))

	// Structurally equal vectors must land on the same map entry.
	m := map[Vector]string{a: "force"}
	got, ok := m[b]
	require.True(t, ok)
	assert.Equal(t, "force", got)
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "L", LengthVec.String())
	assert.Equal(t, "L²", AreaVec.String())
	assert.Equal(t, "T⁻¹", FrequencyVec.String())
	assert.Equal(t, "1", Dimensionless.String())

	// Multi-base renderings are asserted by content, not by ordering.
	force := ForceVec.String()
	for _, part := range []string{"M", "L", "T⁻²"} {
		assert.True(t, strings.Contains(force, part), "force rendering %q misses %q", force, part)
	}
	resistance := ResistanceVec.String()
	for _, part := range []string{"M", "L²", "T⁻³", "I⁻²"} {
		assert.True(t, strings.Contains(resistance, part), "resistance rendering %q misses %q", resistance, part)
	}
	assert.False(t, strings.Contains(force, "Θ"), "zero exponents must be omitted")
}

func TestVectorExponents(t *testing.T) {
	v := ResistanceVec
	assert.Equal(t, 1, v.Exponent(BaseMass))
	assert.Equal(t, 2, v.Exponent(BaseLength))
	assert.Equal(t, -3, v.Exponent(BaseTime))
	assert.Equal(t, -2, v.Exponent(BaseCurrent))
	assert.Equal(t, 0, v.Exponent(BaseTemperature))

	assert.Len(t, Bases(), 7)
}
