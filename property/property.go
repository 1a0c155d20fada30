package property

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/unalgebra/un"
)

// Seed categories, matching the SSOT seeds map.
const (
	CategoryProperties  = "properties"
	CategoryMetamorphic = "metamorphic"
)

// Case is one trial: up to three generated operands and the comparison
// policy in force.
type Case struct {
	X, Y, Z un.UN

	Tol   un.Tolerance
	Slack float64 // relative tightness slack for mul-tightness
}

// CheckFunc returns nil when the law holds for c, otherwise a description of
// the violation.
type CheckFunc func(c Case) error

// Property is a named law over Arity generated operands.
type Property struct {
	Name        string
	Category    string
	Description string
	Arity       int
	Check       CheckFunc
}

// operands returns the first Arity operands of c.
func (p Property) operands(c Case) []un.UN {
	return []un.UN{c.X, c.Y, c.Z}[:p.Arity]
}

// Catalogue returns every property sorted by name. The slice is fresh on
// each call.
func Catalogue() []Property {
	out := make([]Property, len(catalogue))
	copy(out, catalogue)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Lookup finds a property by name.
func Lookup(name string) (Property, error) {
	for _, p := range catalogue {
		if p.Name == name {
			return p, nil
		}
	}

	return Property{}, fmt.Errorf("Lookup %q: %w", name, ErrUnknownProperty)
}

var catalogue = []Property{
	{"generator-valid", CategoryProperties, "every generated value validates at tolerance 0", 1, checkGeneratorValid},
	{"triangle-closure", CategoryProperties, "add, mul, flip and catch results keep the triangle invariant", 2, checkTriangleClosure},
	{"add-componentwise", CategoryProperties, "add is the componentwise sum of all four fields", 2, checkAddComponentwise},
	{"add-commutative", CategoryMetamorphic, "add(x,y) is bitwise add(y,x)", 2, checkAddCommutative},
	{"mul-commutative", CategoryMetamorphic, "mul(x,y) is bitwise mul(y,x)", 2, checkMulCommutative},
	{"add-associative", CategoryProperties, "(x+y)+z agrees with x+(y+z) within tolerance", 3, checkAddAssociative},
	{"mul-associative", CategoryProperties, "(xy)z agrees with x(yz) within rtol·M", 3, checkMulAssociative},
	{"flip-involution", CategoryProperties, "flip(flip(x)) is bitwise x and flip keeps the budget", 1, checkFlipInvolution},
	{"catch-budget", CategoryProperties, "catch preserves the epistemic budget", 1, checkCatchBudget},
	{"budget-definition", CategoryProperties, "M(x) = |n_a| + u_t + |n_m| + u_m", 1, checkBudgetDefinition},
	{"budget-nonnegative", CategoryProperties, "M(x) ≥ 0", 1, checkBudgetNonnegative},
	{"add-budget-subadditive", CategoryProperties, "M(x+y) ≤ M(x)+M(y), equal when tier signs agree", 2, checkAddBudgetSubadditive},
	{"project-conservative-add", CategoryMetamorphic, "projected sum is never narrower than the classical sum", 2, checkProjectConservativeAdd},
	{"project-conservative-mul", CategoryMetamorphic, "projected product is never narrower than the classical product", 2, checkProjectConservativeMul},
	{"mul-tightness", CategoryProperties, "λ=1 product covers the interval product and stays within the hull radius", 2, checkMulTightness},
	{"mul-budget-submultiplicative", CategoryProperties, "M(xy) ≤ M(x)·M(y)", 2, checkMulBudgetSubmultiplicative},
	{"subdistributive-nominal", CategoryProperties, "x(y+z) and xy+xz have equal nominals", 3, checkSubdistributiveNominal},
	{"subdistributive-uncertainty", CategoryProperties, "x(y+z) radii never exceed xy+xz radii", 3, checkSubdistributiveUncertainty},
	{"project-known-actual-tighter", CategoryProperties, "known-actual projection contains n_a and is no wider when the gap is within u_t", 1, checkProjectKnownActual},
}
