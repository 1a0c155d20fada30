package un_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unalgebra/generator"
	"github.com/katalvlaran/unalgebra/un"
)

const (
	// seedProps seeds the randomized law checks.
	seedProps = int64(4242)

	// seedMeta seeds the metamorphic checks.
	seedMeta = int64(9001)

	// trialsLaw is the number of random operand tuples per law.
	trialsLaw = 2000
)

// tol is the comparison policy used across the law checks.
var tol = un.DefaultTolerance()

// mustUN builds a value or fails the test.
func mustUN(t testing.TB, na, ut, nm, um float64) un.UN {
	t.Helper()
	x, err := un.New(un.Tier{N: na, U: ut}, un.Tier{N: nm, U: um})
	require.NoError(t, err)

	return x
}

// mustAdd / mustMul / mustCatch unwrap operator results.
func mustAdd(t testing.TB, x, y un.UN) un.UN {
	t.Helper()
	z, err := un.Add(x, y)
	require.NoError(t, err, "Add(%v, %v)", x, y)

	return z
}

func mustMul(t testing.TB, x, y un.UN) un.UN {
	t.Helper()
	z, err := un.Mul(x, y, un.DefaultLambda)
	require.NoError(t, err, "Mul(%v, %v)", x, y)

	return z
}

func mustCatch(t testing.TB, x un.UN) un.UN {
	t.Helper()
	z, err := un.Catch(x)
	require.NoError(t, err, "Catch(%v)", x)

	return z
}

// forTriples runs fn over trialsLaw generated (x, y, z) tuples.
func forTriples(t *testing.T, seed int64, fn func(i int, x, y, z un.UN)) {
	t.Helper()
	g := generator.New(generator.WithSeed(seed))
	for i := 0; i < trialsLaw; i++ {
		x, y, z := g.Next(), g.Next(), g.Next()
		fn(i, x, y, z)
	}
}

// forBoundary is forTriples over operands with |n_m − n_a| = u_t + u_m.
func forBoundary(t *testing.T, seed int64, fn func(i int, x, y, z un.UN)) {
	t.Helper()
	g := generator.New(generator.WithSeed(seed))
	for i := 0; i < trialsLaw; i++ {
		x, y, z := g.Boundary(), g.Boundary(), g.Boundary()
		fn(i, x, y, z)
	}
}
