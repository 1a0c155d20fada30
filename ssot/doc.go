// Package ssot loads the single-source-of-truth validation settings
// (SSOT.yaml): trial counts, per-category seeds, comparison tolerances,
// named thresholds and the invariant catalogue.
//
// File layout:
//
//	defaults:
//	  trials_per_test: 50000
//	  seeds: {global: 1337, properties: 4242, metamorphic: 9001}
//	  atol: 1e-12
//	  rtol: "1e-9"              # numbers or numeric strings
//	  thresholds:
//	    tightness_slack: 1e-3
//	    violation_rate_bound: "3/N"
//	invariants:
//	  - id: mul-tightness
//	    description: λ=1 product is conservative and tight
//	    trials: 20000
//	    enabled: true
//
// Lookup precedence:
//   - Trials: explicit override > SSOT_TRIALS (captured by ApplyEnv) >
//     per-invariant trials > defaults.trials_per_test > 50000.
//   - Seed: category > "global" > generator.DefaultSeed.
//   - Tolerance: atol/rtol, falling back to un.DefaultAtol / un.DefaultRtol.
//
// A *Config is an explicit value passed by parameter. The package keeps no
// cache and no process-wide state; the environment is read only through
// ApplyEnv with a caller-supplied lookup.
package ssot
