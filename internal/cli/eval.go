package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unalgebra/classical"
	"github.com/katalvlaran/unalgebra/un"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Lambda      float64
	Envelope    bool
	KnownActual bool
}

// evalOutput is the JSON shape of one evaluation.
type evalOutput struct {
	Op        string    `json:"op"`
	Operands  []string  `json:"operands"`
	Result    string    `json:"result,omitempty"`
	Classical string    `json:"classical,omitempty"`
	Budget    *float64  `json:"budget,omitempty"`
	Valid     *bool     `json:"valid,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Fields    []float64 `json:"fields,omitempty"`
}

// evalArity lists the operators and their operand counts.
var evalArity = map[string]int{
	"add":      2,
	"mul":      2,
	"flip":     1,
	"catch":    1,
	"project":  1,
	"budget":   1,
	"validate": 1,
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op> <value> [value]",
		Short: "Apply one operator to literal values",
		Long: `Apply add, mul, flip, catch, project, budget or validate to values written
na,ut:nm,um. Put "--" before values that start with a minus sign.`,
		Example: `  uncheck eval add 1,0.1:1.05,0.1 2,0.2:1.9,0.05
  uncheck eval mul 1,0.1:1.05,0.1 2,0.2:1.9,0.05 --lam 0
  uncheck eval project --known-actual -- -2,0:-1,1`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().Float64Var(&opts.Lambda, "lam", un.DefaultLambda, "second-order weight λ for mul")
	cmd.Flags().BoolVar(&opts.Envelope, "envelope", false, "use the envelope propagator for mul")
	cmd.Flags().BoolVar(&opts.KnownActual, "known-actual", false, "project with the realised gap instead of u_t")

	return cmd
}

func runEval(cmd *cobra.Command, opts *EvalOptions, op string, lits []string) error {
	arity, ok := evalArity[op]
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown operator %q", op))
	}
	if len(lits) != arity {
		return NewExitError(ExitCommandError, fmt.Sprintf("%s takes %d value(s), got %d", op, arity, len(lits)))
	}

	if op == "validate" {
		return runValidate(cmd, opts, lits[0])
	}

	ops := make([]un.UN, len(lits))
	for i, lit := range lits {
		x, err := ParseUN(lit)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad value", err)
		}
		ops[i] = x
	}

	out := evalOutput{Op: op, Operands: lits}
	var err error
	switch op {
	case "add":
		err = setResult(&out, func() (un.UN, error) { return un.Add(ops[0], ops[1]) })
	case "mul":
		var p un.Propagator = un.Tiered{}
		if opts.Envelope {
			p = un.Envelope{}
		}
		err = setResult(&out, func() (un.UN, error) { return un.MulWith(p, ops[0], ops[1], opts.Lambda) })
	case "flip":
		err = setResult(&out, func() (un.UN, error) { return un.Flip(ops[0]), nil })
	case "catch":
		err = setResult(&out, func() (un.UN, error) { return un.Catch(ops[0]) })
	case "project":
		var n classical.Number
		if opts.KnownActual {
			n = un.ProjectKnownActual(ops[0])
		} else {
			n = un.Project(ops[0])
		}
		out.Classical = n.String()
		out.Fields = []float64{n.N, n.U}
	case "budget":
		m := ops[0].Budget()
		out.Budget = &m
	}
	if err != nil {
		return WrapExitError(ExitFailure, op+" failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	return writeEvalText(cmd, out)
}

// runValidate checks a literal against the configured tolerance instead of
// rejecting it at parse time.
func runValidate(cmd *cobra.Command, opts *EvalOptions, lit string) error {
	a, m, err := parseLiteral(lit)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad value", err)
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	tol := cfg.Tolerance()
	bound := tol.Bound(math.Abs(a.N) + a.U + math.Abs(m.N) + m.U)
	if math.IsNaN(bound) || math.IsInf(bound, 0) {
		// Non-finite fields are reported by the value check, not the bound.
		bound = tol.Atol
	}

	valid := true
	out := evalOutput{Op: "validate", Operands: []string{lit}, Valid: &valid}
	gap, radius := math.Abs(m.N-a.N), a.U+m.U
	_, verr := un.NewWithin(a, m, bound)
	if verr != nil {
		valid = false
		out.Detail = verr.Error()
	} else {
		out.Detail = fmt.Sprintf("gap %g ≤ %g", gap, radius)
	}

	if opts.Format == "json" {
		err = writeJSON(cmd.OutOrStdout(), out)
	} else {
		err = writeEvalText(cmd, out)
	}
	if err != nil {
		return err
	}
	if !valid {
		return WrapExitError(ExitFailure, "value is invalid", verr)
	}

	return nil
}

func setResult(out *evalOutput, f func() (un.UN, error)) error {
	z, err := f()
	if err != nil {
		return err
	}
	na, ut, nm, um := z.Components()
	out.Result = z.String()
	out.Fields = []float64{na, ut, nm, um}
	m := z.Budget()
	out.Budget = &m

	return nil
}

func writeEvalText(cmd *cobra.Command, out evalOutput) error {
	w := cmd.OutOrStdout()
	var err error
	switch {
	case out.Result != "":
		_, err = fmt.Fprintf(w, "%s\nM = %g\n", out.Result, *out.Budget)
	case out.Classical != "":
		_, err = fmt.Fprintln(w, out.Classical)
	case out.Valid != nil && *out.Valid:
		_, err = fmt.Fprintf(w, "valid (%s)\n", out.Detail)
	case out.Valid != nil:
		_, err = fmt.Fprintf(w, "invalid: %s\n", out.Detail)
	default:
		_, err = fmt.Fprintf(w, "M = %g\n", *out.Budget)
	}
	return err
}

// ParseUN reads a value written na,ut:nm,um. Whitespace around numbers is
// ignored; the value must satisfy the triangle invariant exactly.
func ParseUN(s string) (un.UN, error) {
	a, m, err := parseLiteral(s)
	if err != nil {
		return un.UN{}, err
	}

	return un.New(a, m)
}

func parseLiteral(s string) (actual, measured un.Tier, err error) {
	as, ms, ok := strings.Cut(s, ":")
	if !ok {
		return actual, measured, fmt.Errorf("%q: want na,ut:nm,um", s)
	}
	if actual, err = parseTier(as); err != nil {
		return actual, measured, fmt.Errorf("%q actual tier: %w", s, err)
	}
	if measured, err = parseTier(ms); err != nil {
		return actual, measured, fmt.Errorf("%q measured tier: %w", s, err)
	}

	return actual, measured, nil
}

func parseTier(s string) (un.Tier, error) {
	n, u, ok := strings.Cut(s, ",")
	if !ok {
		return un.Tier{}, fmt.Errorf("%q: want n,u", s)
	}
	nv, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
	if err != nil {
		return un.Tier{}, fmt.Errorf("nominal %q: %w", n, err)
	}
	uv, err := strconv.ParseFloat(strings.TrimSpace(u), 64)
	if err != nil {
		return un.Tier{}, fmt.Errorf("radius %q: %w", u, err)
	}

	return un.Tier{N: nv, U: uv}, nil
}
