package units

import "fmt"

// IncompatibleDimensionsError reports a unit or quantity operation attempted
// across two different dimension vectors, such as converting meters to
// seconds or constructing a Length from a temperature unit.
type IncompatibleDimensionsError struct {
	Want    Vector
	Got     Vector
	Context string
}

func (e *IncompatibleDimensionsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("incompatible dimensions in %s: want %s, got %s", e.Context, e.Want, e.Got)
	}
	return fmt.Sprintf("incompatible dimensions: want %s, got %s", e.Want, e.Got)
}

// IncompatibleUnitsError reports unit algebra that is not defined, which in
// practice means an affine unit appearing in a derived unit. Offsets do not
// compose under multiplication, so derived units are built from ratio units
// only.
type IncompatibleUnitsError struct {
	Op     string
	Symbol string
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("unit %s: affine unit %s cannot take part in a derived unit", e.Op, e.Symbol)
}

// DivideByZeroError reports division by an exact zero for a storage type
// with no infinity representation. Floating-point storage never produces
// this error: it propagates IEEE ±Inf or NaN instead.
type DivideByZeroError struct {
	Op string
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero for integer storage", e.Op)
}

// InvalidDimensionError reports a dimension root that is not representable
// with integer exponents, e.g. the square root of a volume.
type InvalidDimensionError struct {
	Vec Vector
	N   int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("dimension %s has no integer root %d", e.Vec, e.N)
}
