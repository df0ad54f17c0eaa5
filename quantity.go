package units

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Quantity is a physical value: one storage value of type S, always held in
// the canonical SI unit of the dimension tag D. Units never travel with the
// value; they only appear at the construction and extraction boundaries, so
// the arithmetic path carries no dimension checks at all — the type system
// has already done them.
//
// Quantity is an immutable comparable value type. Two quantities are == when
// their dimension tags and canonical values are equal.
type Quantity[D Dimension, S Storage] struct {
	v S
}

// New wraps a raw canonical-unit value. Used internally by the derived
// operators and directly by callers that already hold canonical values.
func New[D Dimension, S Storage](canonical S) Quantity[D, S] {
	return Quantity[D, S]{v: canonical}
}

// From constructs a quantity from a value expressed in the given unit,
// normalizing it into canonical form. It fails with
// *IncompatibleDimensionsError when the unit measures a different dimension
// than D.
func From[D Dimension, S Storage](value S, u Unit) (Quantity[D, S], error) {
	want := dimVector[D]()
	if u.dim != want {
		return Quantity[D, S]{}, &IncompatibleDimensionsError{
			Want:    want,
			Got:     u.dim,
			Context: "from " + u.symbol,
		}
	}
	return fromUnit[D](value, u), nil
}

// fromUnit is From without the dimension check, for the catalog factories
// whose units are correct by construction. Canonical units skip the float64
// round trip so integer storage stays exact.
func fromUnit[D Dimension, S Storage](value S, u Unit) Quantity[D, S] {
	if u.isCanonical() {
		return Quantity[D, S]{v: value}
	}
	return Quantity[D, S]{v: S(u.toCanonical(float64(value)))}
}

// Canonical returns the stored value in the dimension's canonical unit.
func (q Quantity[D, S]) Canonical() S { return q.v }

// DimVector returns the dimension vector of the quantity type.
func (q Quantity[D, S]) DimVector() Vector { return dimVector[D]() }

// Unit returns the canonical unit the value is stored in.
func (q Quantity[D, S]) Unit() Unit { return canonicalUnit[D]() }

// In re-expresses the quantity in an arbitrary unit of the same dimension.
// The same narrowing rules as Convert apply for integer storage.
func (q Quantity[D, S]) In(u Unit) (S, error) {
	want := dimVector[D]()
	if u.dim != want {
		return q.v, &IncompatibleDimensionsError{
			Want:    want,
			Got:     u.dim,
			Context: "in " + u.symbol,
		}
	}
	if u.isCanonical() {
		return q.v, nil
	}
	return S(u.fromCanonical(float64(q.v))), nil
}

// Add returns q + o. Defined only for quantities of the same dimension;
// anything else is a compile error.
func (q Quantity[D, S]) Add(o Quantity[D, S]) Quantity[D, S] {
	return Quantity[D, S]{v: q.v + o.v}
}

// Sub returns q − o.
func (q Quantity[D, S]) Sub(o Quantity[D, S]) Quantity[D, S] {
	return Quantity[D, S]{v: q.v - o.v}
}

// Neg returns the quantity with its canonical value negated.
func (q Quantity[D, S]) Neg() Quantity[D, S] {
	return Quantity[D, S]{v: -q.v}
}

// Abs returns the absolute value. NaN passes through unchanged.
func (q Quantity[D, S]) Abs() Quantity[D, S] {
	if q.v < 0 {
		return Quantity[D, S]{v: -q.v}
	}
	return q
}

// Scale multiplies by a dimensionless scalar of the storage type.
func (q Quantity[D, S]) Scale(k S) Quantity[D, S] {
	return Quantity[D, S]{v: q.v * k}
}

// DivScalar divides by a dimensionless scalar. A zero divisor on integer
// storage fails with *DivideByZeroError; floating storage propagates IEEE
// ±Inf or NaN and never fails.
func (q Quantity[D, S]) DivScalar(k S) (Quantity[D, S], error) {
	if k == 0 && !isFloat[S]() {
		return q, &DivideByZeroError{Op: "DivScalar"}
	}
	return Quantity[D, S]{v: q.v / k}, nil
}

// Ratio returns the dimensionless quotient of two same-dimension
// quantities. The zero-divisor policy matches DivScalar.
func (q Quantity[D, S]) Ratio(o Quantity[D, S]) (S, error) {
	if o.v == 0 && !isFloat[S]() {
		return q.v, &DivideByZeroError{Op: "Ratio"}
	}
	return q.v / o.v, nil
}

// Pow raises the canonical value to an integer power. Pow(0) is the
// multiplicative identity (canonical 1) for every input including zero;
// negative n is the reciprocal of the positive power, which on integer
// storage panics with *DivideByZeroError when the base power is zero.
func (q Quantity[D, S]) Pow(n int) Quantity[D, S] {
	if n == 0 {
		return Quantity[D, S]{v: 1}
	}
	neg := n < 0
	if neg {
		n = -n
	}
	out := S(1)
	for range n {
		out *= q.v
	}
	if neg {
		out = divValues(S(1), out)
	}
	return Quantity[D, S]{v: out}
}

// Cmp compares canonical values, returning -1, 0 or +1.
func (q Quantity[D, S]) Cmp(o Quantity[D, S]) int {
	switch {
	case q.v < o.v:
		return -1
	case q.v > o.v:
		return 1
	}
	return 0
}

// Equal reports canonical-value equality. Identical to ==.
func (q Quantity[D, S]) Equal(o Quantity[D, S]) bool { return q.v == o.v }

// Less reports q < o over canonical values.
func (q Quantity[D, S]) Less(o Quantity[D, S]) bool { return q.v < o.v }

// LessEq reports q <= o.
func (q Quantity[D, S]) LessEq(o Quantity[D, S]) bool { return q.v <= o.v }

// Greater reports q > o.
func (q Quantity[D, S]) Greater(o Quantity[D, S]) bool { return q.v > o.v }

// GreaterEq reports q >= o.
func (q Quantity[D, S]) GreaterEq(o Quantity[D, S]) bool { return q.v >= o.v }

// IsZero reports whether the canonical value is exactly zero.
func (q Quantity[D, S]) IsZero() bool { return q.v == 0 }

// Min returns the smaller of q and o.
func (q Quantity[D, S]) Min(o Quantity[D, S]) Quantity[D, S] {
	if o.v < q.v {
		return o
	}
	return q
}

// Max returns the larger of q and o.
func (q Quantity[D, S]) Max(o Quantity[D, S]) Quantity[D, S] {
	if o.v > q.v {
		return o
	}
	return q
}

// Clamp limits q to the inclusive range [lo, hi].
func (q Quantity[D, S]) Clamp(lo, hi Quantity[D, S]) Quantity[D, S] {
	if q.v < lo.v {
		return lo
	}
	if q.v > hi.v {
		return hi
	}
	return q
}

// ApproxEqual reports equality within tol, applied both absolutely and
// relatively over the canonical values widened to float64.
func (q Quantity[D, S]) ApproxEqual(o Quantity[D, S], tol float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(q.v), float64(o.v), tol, tol)
}

// String renders the canonical value with the canonical unit symbol,
// e.g. "9.8 m/s²".
func (q Quantity[D, S]) String() string {
	return strings.TrimSpace(fmt.Sprintf("%v %s", q.v, canonicalUnit[D]().symbol))
}
