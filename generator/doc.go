// Package generator draws valid Uncertainty Numbers for randomized validation.
//
// What
//
//   - Next: boundary-biased samples over a log-uniform magnitude range
//     (10^-12 … 10^12 by default, 24 decades).
//   - Boundary: samples sitting exactly on |n_m − n_a| = u_t + u_m.
//   - Sample / Stream: batches and independent, reproducible substreams.
//
// Why
//
//	Operators are most likely to break the triangle invariant at its
//	boundary and at extreme magnitudes. The generator puts mass there.
//
// Repair policy
//
//	The generator is the only place where a draft value may be repaired:
//	when the drawn gap exceeds u_t + u_m the surplus (plus a small relative
//	slack) is split at random between u_t and u_m. If rounding still leaves
//	the draft invalid, u_m is nudged up by single ulps. A value failing
//	un.Validate(x, 0) is never emitted.
//
// Determinism & concurrency
//
//	Same seed ⇒ same sequence. A *Generator wraps a *rand.Rand and is NOT
//	goroutine-safe; derive one per worker with Stream.
package generator
