package units

import "golang.org/x/exp/constraints"

// Storage bounds the numeric types a Quantity can be stored in: the signed
// integer kinds and the floating-point kinds, including any defined type
// over them. Unsigned kinds are excluded because quantities negate.
//
// Fixed-point storage is expressed as a defined integer type with a caller
// chosen scaling (for example, type micrometers int64 storing millionths),
// in which case the integer truncation rules below apply.
type Storage interface {
	constraints.Signed | constraints.Float
}

// isFloat reports whether S carries IEEE floating-point semantics. Integer
// storage makes S(1)/S(2) truncate to zero; float storage does not.
func isFloat[S Storage]() bool {
	return S(1)/S(2) != 0
}

// divValues divides two canonical values with the storage type's native
// semantics: floating storage yields ±Inf or NaN on a zero divisor, while
// integer storage panics with a typed *DivideByZeroError. The checked-error
// form of the same policy lives on Quantity.DivScalar and Quantity.Ratio.
func divValues[S Storage](a, b S) S {
	if b == 0 && !isFloat[S]() {
		panic(&DivideByZeroError{Op: "Div"})
	}
	return a / b
}
