// SPDX-License-Identifier: MIT

// Package un implements Uncertainty Numbers: two-tier values that carry an
// actual (ground-truth) tier and a measured (observed) tier, each a nominal
// plus a nonnegative uncertainty radius.
//
// 🚀 What is a UN?
//
//	x = ((n_a, u_t), (n_m, u_m))
//
//	  actual tier   (n_a, u_t) — ground-truth nominal and theoretical radius
//	  measured tier (n_m, u_m) — observed nominal and measurement radius
//
//	Every value satisfies the triangle invariant |n_m − n_a| ≤ u_t + u_m.
//
// ✨ Operators:
//   - Add       — componentwise sum; exactly commutative, associative within rounding
//   - Mul       — per-tier nominal product, conservative radius propagation (λ knob)
//   - MulWith   — Mul with a pluggable Propagator
//   - Flip      — swap tiers; exact involution
//   - Catch     — withdraw the actual tier, fold its mass into the measured radius
//   - Project   — collapse to a classical (n, u) pair
//   - Budget    — epistemic budget M(x) = |n_a| + u_t + |n_m| + u_m
//
// ⚙️ Usage:
//
//	x, _ := un.New(un.Tier{N: 1.0, U: 0.1}, un.Tier{N: 1.05, U: 0.1})
//	y, _ := un.New(un.Tier{N: 2.0, U: 0.2}, un.Tier{N: 1.9, U: 0.05})
//
//	s, err := un.Add(x, y)                  // ((3, 0.3), (2.95, 0.15))
//	p, err := un.Mul(x, y, un.DefaultLambda)
//	n := un.Project(p)                      // classical.Number
//
// Numeric policy:
//
//   - Construction validates with an explicit tolerance (New uses 0).
//   - Operators re-check their result with a rounding allowance proportional
//     to the operand budgets and fail fast with a sentinel error; they never
//     clamp or repair.
//   - Callers compare values with Tolerance (Atol + Rtol·|ref|), never with ==,
//     except for Flip whose involution is bitwise.
//
// Concurrency:
//
//	All functions are pure and operate on immutable values; every call is
//	independently goroutine-safe.
package un
