package ssot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTrials is used when neither override, environment nor file
	// set a trial count.
	DefaultTrials = 50000

	// EnvTrials names the environment variable read by ApplyEnv.
	EnvTrials = "SSOT_TRIALS"

	// GlobalSeed is the fallback seed category.
	GlobalSeed = "global"
)

// Config is the parsed SSOT document.
type Config struct {
	Defaults   Defaults    `yaml:"defaults"`
	Invariants []Invariant `yaml:"invariants"`

	// envTrials holds SSOT_TRIALS once ApplyEnv has run; 0 means unset.
	envTrials int
}

// Defaults holds the global validation settings.
type Defaults struct {
	// TrialsPerTest is the default number of random trials; 0 means unset.
	TrialsPerTest int `yaml:"trials_per_test"`

	// Seeds maps a category ("global", "properties", "metamorphic", ...)
	// to its RNG seed.
	Seeds map[string]int64 `yaml:"seeds"`

	// Atol and Rtol are nil when the file does not set them.
	Atol *Real `yaml:"atol"`
	Rtol *Real `yaml:"rtol"`

	Thresholds map[string]Threshold `yaml:"thresholds"`
}

// Invariant is one catalogue entry. ID matches a property name.
type Invariant struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Trials      int    `yaml:"trials"`
	Enabled     *bool  `yaml:"enabled"`
}

// IsEnabled reports whether the invariant should run; absent means enabled.
func (inv Invariant) IsEnabled() bool {
	return inv.Enabled == nil || *inv.Enabled
}

// Real is a finite float that also accepts numeric strings ("1e-12"),
// as YAML 1.1 writers often quote exponents.
type Real float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Real) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", n.Line)
	}
	v, err := parseFinite(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*r = Real(v)

	return nil
}

// Threshold is either a fixed number or an expression in the trial count N
// of the form "k/N" (for example the rule-of-three bound "3/N").
type Threshold struct {
	Value float64
	Expr  string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Threshold) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: threshold must be a scalar", n.Line)
	}
	if v, err := parseFinite(n.Value); err == nil {
		*t = Threshold{Value: v}
		return nil
	}
	if _, err := parseExpr(n.Value); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*t = Threshold{Expr: strings.TrimSpace(n.Value)}

	return nil
}

// IsExpr reports whether t depends on the trial count.
func (t Threshold) IsExpr() bool { return t.Expr != "" }

// Eval resolves t for n trials. Fixed thresholds ignore n.
func (t Threshold) Eval(n int) (float64, error) {
	if !t.IsExpr() {
		return t.Value, nil
	}
	if n <= 0 {
		return 0, invalidf("threshold %q needs a positive trial count, got %d", t.Expr, n)
	}
	k, err := parseExpr(t.Expr)
	if err != nil {
		return 0, err
	}

	return k / float64(n), nil
}

// String renders the expression or the number.
func (t Threshold) String() string {
	if t.IsExpr() {
		return t.Expr
	}

	return strconv.FormatFloat(t.Value, 'g', -1, 64)
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}

	return v, nil
}

// parseExpr accepts "k/N" with a finite non-negative k.
func parseExpr(s string) (float64, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || strings.TrimSpace(den) != "N" {
		return 0, invalidf("threshold %q: want a number or k/N", s)
	}
	k, err := parseFinite(num)
	if err != nil || k < 0 {
		return 0, invalidf("threshold %q: bad numerator", s)
	}

	return k, nil
}
