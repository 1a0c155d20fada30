// Package unalgebra is the algebra of Uncertainty Numbers (UN): two-tier
// values that keep what is true and what was measured side by side, each
// with its own uncertainty radius, and propagate both through arithmetic.
//
// 🚀 What is in the box?
//
//	un/         — the UN value, triangle invariant, Add, Mul (λ, Propagator),
//	              Flip, Catch, Project, epistemic budget, Tolerance
//	classical/  — one-tier (n, u) oracle: classical add/mul, interval width,
//	              hull radius
//	generator/  — seeded, boundary-biased UN sampler with parallel streams
//	ssot/       — SSOT.yaml loader: trials, seeds, tolerances, thresholds
//	property/   — the named law catalogue and a parallel deterministic runner
//	cmd/uncheck — CLI: check, list, eval, version
//
// ✨ Guarantees:
//   - Every constructed or computed value satisfies |n_m − n_a| ≤ u_t + u_m;
//     operators fail fast with a sentinel error instead of clamping.
//   - Add and Mul (λ ≥ 1) never report a narrower projection than the
//     classical oracle; at λ = 1 Mul equals the hull radius of the interval
//     product.
//   - Flip is an exact involution; Catch preserves the epistemic budget.
//
// ⚙️ Quick start:
//
//	x, _ := un.New(un.Tier{N: 1.0, U: 0.1}, un.Tier{N: 1.05, U: 0.1})
//	y, _ := un.New(un.Tier{N: 2.0, U: 0.2}, un.Tier{N: 1.9, U: 0.05})
//	p, err := un.Mul(x, y, un.DefaultLambda)
//
//	$ uncheck check --config SSOT.yaml
//	$ uncheck eval add 1,0.1:1.05,0.1 2,0.2:1.9,0.05
package unalgebra
