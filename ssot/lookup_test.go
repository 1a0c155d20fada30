package ssot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unalgebra/ssot"
)

const doc = `
defaults:
  trials_per_test: 300
  seeds: {global: 7, properties: 11}
  thresholds:
    tightness_slack: 0.002
    violation_rate_bound: "3/N"
invariants:
  - id: slow
    trials: 40
  - id: plain
`

func mustParse(t *testing.T, s string) *ssot.Config {
	t.Helper()
	cfg, err := ssot.Parse([]byte(s))
	require.NoError(t, err)

	return cfg
}

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestTrials_Precedence(t *testing.T) {
	cfg := mustParse(t, doc)

	assert.Equal(t, 300, cfg.Trials(0))
	assert.Equal(t, 40, cfg.TrialsFor("slow", 0))
	assert.Equal(t, 300, cfg.TrialsFor("plain", 0))
	assert.Equal(t, 300, cfg.TrialsFor("unknown", 0))
	assert.Equal(t, 5, cfg.TrialsFor("slow", 5), "override wins")

	require.NoError(t, cfg.ApplyEnv(env(map[string]string{ssot.EnvTrials: " 12 "})))
	assert.Equal(t, 12, cfg.Trials(0))
	assert.Equal(t, 12, cfg.TrialsFor("slow", 0), "env beats invariant trials")
	assert.Equal(t, 3, cfg.TrialsFor("slow", 3), "override beats env")
}

func TestApplyEnv(t *testing.T) {
	cfg := mustParse(t, doc)

	require.NoError(t, cfg.ApplyEnv(env(nil)))
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{ssot.EnvTrials: ""})))
	assert.Equal(t, 300, cfg.Trials(0))

	for _, bad := range []string{"abc", "0", "-4"} {
		err := cfg.ApplyEnv(env(map[string]string{ssot.EnvTrials: bad}))
		assert.ErrorIs(t, err, ssot.ErrInvalidConfig, bad)
	}
}

func TestSeed_Fallback(t *testing.T) {
	cfg := mustParse(t, doc)
	assert.Equal(t, int64(11), cfg.Seed("properties"))
	assert.Equal(t, int64(7), cfg.Seed("metamorphic"))
}

func TestTolerance_Unset(t *testing.T) {
	cfg := mustParse(t, "defaults: {atol: 0}")
	tol := cfg.Tolerance()
	assert.Equal(t, 0.0, tol.Atol, "explicit zero is kept")
	assert.Equal(t, 1e-9, tol.Rtol)
}

func TestThreshold(t *testing.T) {
	cfg := mustParse(t, doc)

	fixed, ok := cfg.Threshold("tightness_slack")
	require.True(t, ok)
	assert.False(t, fixed.IsExpr())
	v, err := fixed.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, 0.002, v)
	assert.Equal(t, "0.002", fixed.String())

	rate, ok := cfg.Threshold("violation_rate_bound")
	require.True(t, ok)
	assert.True(t, rate.IsExpr())
	assert.Equal(t, "3/N", rate.String())
	v, err = rate.Eval(1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.003, v, 1e-15)

	_, err = rate.Eval(0)
	assert.ErrorIs(t, err, ssot.ErrInvalidConfig)
}
