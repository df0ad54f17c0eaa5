package main

import (
	"fmt"
	"os"
	"strings"
)

// triple is one declared operator contract: A × B = C.
type triple struct {
	A, B, C string
}

var triples = []triple{
	{"Length", "Length", "Area"},
	{"Area", "Length", "Volume"},
	{"Velocity", "Duration", "Length"},
	{"Acceleration", "Duration", "Velocity"},
	{"Mass", "Acceleration", "Force"},
	{"Force", "Length", "Energy"},
	{"Power", "Duration", "Energy"},
	{"Voltage", "Current", "Power"},
	{"Resistance", "Current", "Voltage"},
	{"Current", "Duration", "Charge"},
	{"Pressure", "Area", "Force"},
	{"Pressure", "Volume", "Energy"},
	{"Density", "Volume", "Mass"},
	{"Mass", "Velocity", "Momentum"},
	{"Force", "Duration", "Momentum"},
	{"Frequency", "Duration", "Scalar"},
}

func vecName(t string) string {
	switch t {
	case "Duration":
		return "TimeVec"
	case "Scalar":
		return "Dimensionless"
	}
	return t + "Vec"
}

func article(t string) string {
	switch t[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

func generateTriple(tr triple) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// Mul%s%s multiplies %s %s by %s %s, yielding %s %s.\n",
		tr.A, tr.B, article(tr.A), tr.A, article(tr.B), tr.B, article(tr.C), tr.C))
	sb.WriteString(fmt.Sprintf("func Mul%s%s[S Storage](a %s[S], b %s[S]) %s[S] {\n", tr.A, tr.B, tr.A, tr.B, tr.C))
	sb.WriteString(fmt.Sprintf("\treturn New[%sDim](a.Canonical() * b.Canonical())\n", tr.C))
	sb.WriteString("}\n\n")

	if tr.A != tr.B {
		sb.WriteString(fmt.Sprintf("// Mul%s%s is the commutative form of Mul%s%s.\n", tr.B, tr.A, tr.A, tr.B))
		sb.WriteString(fmt.Sprintf("func Mul%s%s[S Storage](b %s[S], a %s[S]) %s[S] {\n", tr.B, tr.A, tr.B, tr.A, tr.C))
		sb.WriteString(fmt.Sprintf("\treturn New[%sDim](b.Canonical() * a.Canonical())\n", tr.C))
		sb.WriteString("}\n\n")
	}

	sb.WriteString(fmt.Sprintf("// Div%s%s divides %s %s by %s %s, yielding %s %s.\n",
		tr.C, tr.A, article(tr.C), tr.C, article(tr.A), tr.A, article(tr.B), tr.B))
	sb.WriteString(fmt.Sprintf("func Div%s%s[S Storage](c %s[S], a %s[S]) %s[S] {\n", tr.C, tr.A, tr.C, tr.A, tr.B))
	sb.WriteString(fmt.Sprintf("\treturn New[%sDim](divValues(c.Canonical(), a.Canonical()))\n", tr.B))
	sb.WriteString("}\n\n")

	if tr.A != tr.B {
		sb.WriteString(fmt.Sprintf("// Div%s%s divides %s %s by %s %s, yielding %s %s.\n",
			tr.C, tr.B, article(tr.C), tr.C, article(tr.B), tr.B, article(tr.A), tr.A))
		sb.WriteString(fmt.Sprintf("func Div%s%s[S Storage](c %s[S], b %s[S]) %s[S] {\n", tr.C, tr.B, tr.C, tr.B, tr.A))
		sb.WriteString(fmt.Sprintf("\treturn New[%sDim](divValues(c.Canonical(), b.Canonical()))\n", tr.A))
		sb.WriteString("}\n\n")
	}

	return sb.String()
}

func generateProductTable() string {
	var sb strings.Builder

	sb.WriteString("// productTable is the runtime registration of every generated triple.\n")
	sb.WriteString("var productTable = []Product{\n")
	for _, tr := range triples {
		sb.WriteString(fmt.Sprintf("\t{A: %q, B: %q, C: %q, AVec: %s, BVec: %s, CVec: %s},\n",
			tr.A, tr.B, tr.C, vecName(tr.A), vecName(tr.B), vecName(tr.C)))
	}
	sb.WriteString("}\n")

	return sb.String()
}

const header = `package units

//go:generate go run codegen/main.go -w

// Cross-type operator contracts, generated from the product table in
// codegen/main.go. For every registered triple A × B = C the generator
// emits the product, its commutative twin and both quotients, plus the
// runtime Product entry behind Products(). Operands are canonical values of
// one dimension each, so no unit conversion happens here and multiplication
// is exactly associative and commutative in canonical space. Division
// follows the storage type's native zero semantics (see divValues).

`

func main() {
	var output strings.Builder

	for _, tr := range triples {
		output.WriteString(generateTriple(tr))
	}
	output.WriteString(generateProductTable())

	fmt.Print(output.String())

	if len(os.Args) > 1 && os.Args[1] == "-w" {
		file, err := os.OpenFile("ops_generated.go", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		file.WriteString(header)
		file.WriteString(output.String())
		fmt.Println("Generated ops_generated.go")
	}
}
