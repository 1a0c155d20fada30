// Package property is the executable law catalogue for the UN algebra: a set
// of named properties (triangle closure, commutativity, conservativity,
// tightness, budget laws ...) and a parallel, deterministic trial runner that
// checks them against generated operands.
//
// What
//
//   - Catalogue / Lookup: the named properties; names match the ids of the
//     SSOT invariant list.
//   - Runner: fans each property out over fixed-size trial chunks with
//     errgroup. Chunk k draws from generator.Stream(seed, k), so a report is
//     identical for any worker count.
//   - Report: per-property trial count, seed, violation count, first
//     counterexamples and the rule-of-three style upper bound on the
//     violation rate; rendered as text or JSON.
//
// Configuration comes from an *ssot.Config (trials, seeds, tolerance,
// thresholds, enabled flags). The runner logs through zap and is silent by
// default.
package property
