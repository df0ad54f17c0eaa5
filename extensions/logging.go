package extensions

import (
	"log/slog"

	units "github.com/unit-fn/units-go"
)

// VectorValue returns a structured slog value for a dimension vector: its
// symbolic form plus the registered quantity-type name when one exists.
func VectorValue(v units.Vector) slog.Value {
	attrs := []slog.Attr{slog.String("dim", v.String())}
	if name, ok := units.DimensionName(v); ok {
		attrs = append(attrs, slog.String("name", name))
	}
	return slog.GroupValue(attrs...)
}

// QuantityAttr builds a structured attr for a quantity: canonical value,
// canonical unit symbol and dimension.
func QuantityAttr[D units.Dimension, S units.Storage](key string, q units.Quantity[D, S]) slog.Attr {
	return slog.Group(key,
		slog.Any("value", q.Canonical()),
		slog.String("unit", q.Unit().Symbol()),
		slog.String("dim", q.DimVector().String()),
	)
}

// QuantityInAttr is QuantityAttr expressed in an arbitrary unit of the same
// dimension; a mismatched unit degrades to the canonical form rather than
// failing, since logging should never error.
func QuantityInAttr[D units.Dimension, S units.Storage](key string, q units.Quantity[D, S], u units.Unit) slog.Attr {
	v, err := q.In(u)
	if err != nil {
		return QuantityAttr(key, q)
	}
	return slog.Group(key,
		slog.Any("value", v),
		slog.String("unit", u.Symbol()),
		slog.String("dim", q.DimVector().String()),
	)
}
