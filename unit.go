package units

import "math"

type unitKind uint8

const (
	ratioUnit unitKind = iota
	affineUnit
)

// Unit is a named measurement unit of one dimension: a display symbol,
// singular and plural names, the Vector it measures, and the affine
// transform mapping values in this unit to the dimension's canonical SI
// unit. Units are immutable values compared with ==.
//
// Ratio units carry only a multiplicative scale. Affine units (the
// temperature scales) additionally carry a pre-scale and a post-scale
// offset: canonical = (value + pre)·scale + post. The two shapes are kept
// as distinct kinds rather than a zero-valued offset so derived units can
// reject affine operands outright.
type Unit struct {
	symbol   string
	singular string
	plural   string
	dim      Vector
	kind     unitKind

	scale      float64
	preOffset  float64
	postOffset float64
}

// Ratio builds a purely multiplicative unit: scale is the factor to the
// dimension's canonical unit (0.3048 for a foot of length). A zero scale is
// a configuration error and panics; it can never name a real unit and would
// poison every conversion with a division by zero.
func Ratio(symbol, singular, plural string, dim Vector, scale float64) Unit {
	if scale == 0 {
		panic("units: zero conversion scale for unit " + symbol)
	}
	return Unit{
		symbol:   symbol,
		singular: singular,
		plural:   plural,
		dim:      dim,
		kind:     ratioUnit,
		scale:    scale,
	}
}

// Affine builds a unit whose conversion needs offsets as well as a scale:
// canonical = (value + pre)·scale + post. Celsius is (pre 0, scale 1,
// post 273.15); Fahrenheit is (pre −32, scale 5/9, post 273.15).
func Affine(symbol, singular, plural string, dim Vector, scale, pre, post float64) Unit {
	if scale == 0 {
		panic("units: zero conversion scale for unit " + symbol)
	}
	return Unit{
		symbol:     symbol,
		singular:   singular,
		plural:     plural,
		dim:        dim,
		kind:       affineUnit,
		scale:      scale,
		preOffset:  pre,
		postOffset: post,
	}
}

// Symbol returns the display symbol, e.g. "km" or "°C".
func (u Unit) Symbol() string { return u.symbol }

// Singular returns the singular unit name, e.g. "kilometer".
func (u Unit) Singular() string { return u.singular }

// Plural returns the plural unit name, e.g. "kilometers".
func (u Unit) Plural() string { return u.plural }

// Dim returns the dimension vector this unit measures.
func (u Unit) Dim() Vector { return u.dim }

// IsAffine reports whether the unit conversion involves an offset.
func (u Unit) IsAffine() bool { return u.kind == affineUnit }

// Equal reports whether two units are the same definition: same symbol,
// names, dimension and transform. Identical to ==.
func (u Unit) Equal(o Unit) bool { return u == o }

func (u Unit) String() string { return u.symbol }

// isCanonical reports whether conversion through this unit is the identity.
func (u Unit) isCanonical() bool {
	return u.kind == ratioUnit && u.scale == 1
}

func (u Unit) toCanonical(v float64) float64 {
	if u.kind == affineUnit {
		return (v+u.preOffset)*u.scale + u.postOffset
	}
	return v * u.scale
}

func (u Unit) fromCanonical(v float64) float64 {
	if u.kind == affineUnit {
		return (v-u.postOffset)/u.scale - u.preOffset
	}
	return v / u.scale
}

// Named rebrands a derived unit with a proper symbol and names while
// keeping its dimension and conversion, so catalogs can write
// Kilogram.Mul(MeterPerSecondSquared) and still call the result "N".
func (u Unit) Named(symbol, singular, plural string) Unit {
	u.symbol = symbol
	u.singular = singular
	u.plural = plural
	return u
}

// Mul derives the product unit: dimensions multiply, scales multiply, the
// symbol is composed with a middle dot. Affine operands are rejected with
// *IncompatibleUnitsError since offsets do not survive multiplication.
func (u Unit) Mul(o Unit) (Unit, error) {
	if u.kind == affineUnit {
		return Unit{}, &IncompatibleUnitsError{Op: "Mul", Symbol: u.symbol}
	}
	if o.kind == affineUnit {
		return Unit{}, &IncompatibleUnitsError{Op: "Mul", Symbol: o.symbol}
	}
	sym := u.symbol + "·" + o.symbol
	return Ratio(sym, sym, sym, u.dim.Mul(o.dim), u.scale*o.scale), nil
}

// Div derives the quotient unit. Same affine restriction as Mul.
func (u Unit) Div(o Unit) (Unit, error) {
	if u.kind == affineUnit {
		return Unit{}, &IncompatibleUnitsError{Op: "Div", Symbol: u.symbol}
	}
	if o.kind == affineUnit {
		return Unit{}, &IncompatibleUnitsError{Op: "Div", Symbol: o.symbol}
	}
	sym := u.symbol + "/" + o.symbol
	return Ratio(sym, sym, sym, u.dim.Div(o.dim), u.scale/o.scale), nil
}

// Pow derives the unit raised to an integer power. Affine units only admit
// n = 1 (the unit itself).
func (u Unit) Pow(n int) (Unit, error) {
	if n == 1 {
		return u, nil
	}
	if u.kind == affineUnit {
		return Unit{}, &IncompatibleUnitsError{Op: "Pow", Symbol: u.symbol}
	}
	sym := u.symbol + superscript(n)
	return Ratio(sym, sym, sym, u.dim.Pow(n), math.Pow(u.scale, float64(n))), nil
}

// Convert re-expresses v from one unit into another unit of the same
// dimension, composing from.toCanonical with to.fromCanonical. Converting
// between units of different dimensions fails with
// *IncompatibleDimensionsError.
//
// Identical units short-circuit to the unchanged input so a same-unit
// conversion never picks up floating round-trip error. Otherwise the
// arithmetic runs in float64 — at least as wide as every floating storage —
// and narrows back with the storage type's own conversion: integer storage
// truncates toward zero, which is lossy for fractional results, and int64
// magnitudes beyond 2⁵³ lose precision through any non-identity conversion.
// NaN and ±Inf are valid inputs and propagate unchanged instead of failing.
func Convert[S Storage](v S, from, to Unit) (S, error) {
	if from.dim != to.dim {
		return v, &IncompatibleDimensionsError{
			Want:    from.dim,
			Got:     to.dim,
			Context: "convert " + from.symbol + " to " + to.symbol,
		}
	}
	if from == to {
		return v, nil
	}
	return S(to.fromCanonical(from.toCanonical(float64(v)))), nil
}
