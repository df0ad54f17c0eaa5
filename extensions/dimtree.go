package extensions

import (
	"fmt"
	"sort"

	"github.com/m1gwings/treedrawer/tree"

	units "github.com/unit-fn/units-go"
)

// DrawVector renders the base-dimension factorization of a vector as a
// drawn tree: the root is the vector's symbolic form (with its registered
// quantity-type name when known) and each child is one base dimension with
// its exponent, e.g. "Force (M L T⁻²)" over "mass^1", "length^1", "time^-2".
func DrawVector(v units.Vector) string {
	label := v.String()
	if name, ok := units.DimensionName(v); ok {
		label = fmt.Sprintf("%s (%s)", name, v)
	}

	t := tree.NewTree(tree.NodeString(label))
	for _, b := range units.Bases() {
		e := v.Exponent(b)
		if e == 0 {
			continue
		}
		t.AddChild(tree.NodeString(fmt.Sprintf("%s^%d", b.Name(), e)))
	}
	return t.String()
}

// DrawUnits renders every catalog unit of a dimension under its vector.
func DrawUnits(v units.Vector) string {
	label := v.String()
	if name, ok := units.DimensionName(v); ok {
		label = fmt.Sprintf("%s (%s)", name, v)
	}

	t := tree.NewTree(tree.NodeString(label))
	for _, u := range units.UnitsFor(v) {
		t.AddChild(tree.NodeString(fmt.Sprintf("%s (%s)", u.Singular(), u.Symbol())))
	}
	return t.String()
}

// DrawProducts renders the registered operator table: one child per
// registered derivation, sorted by result type.
func DrawProducts() string {
	products := units.Products()
	sort.Slice(products, func(i, j int) bool {
		if products[i].C != products[j].C {
			return products[i].C < products[j].C
		}
		return products[i].A < products[j].A
	})

	root := tree.NewTree(tree.NodeString("products"))
	for _, p := range products {
		root.AddChild(tree.NodeString(fmt.Sprintf("%s = %s × %s", p.C, p.A, p.B)))
	}
	return root.String()
}
