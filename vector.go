package units

import "strings"

// Base identifies one of the seven SI base dimensions. The numeric value is
// the axis index inside a Vector and also the rendering order of String.
type Base uint8

const (
	BaseLength Base = iota
	BaseMass
	BaseTime
	BaseCurrent
	BaseTemperature
	BaseAmount
	BaseLuminous

	numBases
)

var baseSymbols = [numBases]string{"L", "M", "T", "I", "Θ", "N", "J"}

var baseNames = [numBases]string{
	"length",
	"mass",
	"time",
	"electric current",
	"thermodynamic temperature",
	"amount of substance",
	"luminous intensity",
}

// Symbol returns the conventional dimension symbol (L, M, T, I, Θ, N, J).
func (b Base) Symbol() string {
	return baseSymbols[b]
}

// Name returns the SI name of the base dimension.
func (b Base) Name() string {
	return baseNames[b]
}

// Bases returns the seven base dimensions in axis order.
func Bases() []Base {
	return []Base{
		BaseLength, BaseMass, BaseTime, BaseCurrent,
		BaseTemperature, BaseAmount, BaseLuminous,
	}
}

// Vector is the exponent-tuple representation of a physical dimension over
// the seven SI base dimensions. Velocity is L¹T⁻¹, force is M¹L¹T⁻², and so
// on. The zero Vector is the dimensionless dimension.
//
// Vector is a small comparable value: == performs structural equality over
// all seven exponents and Vectors can be used directly as map keys, which is
// what the registry lookup caches rely on.
type Vector struct {
	exps [numBases]int8
}

// NewVector builds a Vector from the seven base exponents in axis order.
func NewVector(length, mass, time, current, temperature, amount, luminous int) Vector {
	return Vector{exps: [numBases]int8{
		int8(length), int8(mass), int8(time), int8(current),
		int8(temperature), int8(amount), int8(luminous),
	}}
}

// Exponent returns the exponent of the given base dimension.
func (v Vector) Exponent(b Base) int {
	return int(v.exps[b])
}

// Mul returns the exponent-wise sum of v and o: the dimension of a product
// of two quantities. Commutative and always defined.
func (v Vector) Mul(o Vector) Vector {
	for i := range v.exps {
		v.exps[i] += o.exps[i]
	}
	return v
}

// Div returns the exponent-wise difference of v and o: the dimension of a
// quotient of two quantities.
func (v Vector) Div(o Vector) Vector {
	for i := range v.exps {
		v.exps[i] -= o.exps[i]
	}
	return v
}

// Pow scales every exponent by n. Negative n inverts the dimension;
// Pow(0) is the dimensionless Vector for every input.
func (v Vector) Pow(n int) Vector {
	for i := range v.exps {
		v.exps[i] = int8(int(v.exps[i]) * n)
	}
	return v
}

// Root is the inverse of Pow. It fails with *InvalidDimensionError when any
// exponent is not an exact multiple of n, since exponents are integers and a
// fractional dimension is not representable.
func (v Vector) Root(n int) (Vector, error) {
	if n == 0 {
		return v, &InvalidDimensionError{Vec: v, N: n}
	}
	for i := range v.exps {
		if int(v.exps[i])%n != 0 {
			return v, &InvalidDimensionError{Vec: v, N: n}
		}
		v.exps[i] = int8(int(v.exps[i]) / n)
	}
	return v, nil
}

// Equal reports structural equality. Identical to ==, provided for callers
// that prefer the method form.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool {
	return v == Vector{}
}

// String renders the symbolic form, e.g. "L", "L²" or "M L⁻² T⁻¹". Bases
// with exponent zero are omitted and the dimensionless vector renders as
// "1". Bases appear in axis order; callers should not depend on any
// particular ordering between symbols.
func (v Vector) String() string {
	if v.IsDimensionless() {
		return "1"
	}
	var sb strings.Builder
	for _, b := range Bases() {
		e := v.Exponent(b)
		if e == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.Symbol())
		if e != 1 {
			sb.WriteString(superscript(e))
		}
	}
	return sb.String()
}

var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func superscript(n int) string {
	var sb strings.Builder
	if n < 0 {
		sb.WriteRune('⁻')
		n = -n
	}
	var digits []rune
	for {
		digits = append(digits, superscriptDigits[n%10])
		n /= 10
		if n == 0 {
			break
		}
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(digits[i])
	}
	return sb.String()
}
