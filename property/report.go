package property

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/unalgebra/un"
)

// Report is the outcome of one Runner call.
type Report struct {
	RunID   string   `json:"run_id"`
	Atol    float64  `json:"atol"`
	Rtol    float64  `json:"rtol"`
	Results []Result `json:"results"`
}

// Result is the outcome of one property.
type Result struct {
	Name       string `json:"name"`
	Trials     int    `json:"trials"`
	Seed       int64  `json:"seed"`
	Violations int    `json:"violations"`

	// RateBound is the configured upper bound on the violation rate that a
	// clean run of Trials supports (3/N by default).
	RateBound float64 `json:"rate_bound"`

	Examples []Violation   `json:"examples,omitempty"`
	Elapsed  time.Duration `json:"-"`
}

// Violation is one counterexample.
type Violation struct {
	Trial    int      `json:"trial"`
	Operands []string `json:"operands"`
	Detail   string   `json:"detail"`
}

func newViolation(trial int, ops []un.UN, err error) Violation {
	v := Violation{Trial: trial, Detail: err.Error(), Operands: make([]string, len(ops))}
	for i, x := range ops {
		v.Operands[i] = x.String()
	}

	return v
}

// Passed reports whether the property held on every trial.
func (r Result) Passed() bool { return r.Violations == 0 }

// Passed reports whether every property held.
func (r *Report) Passed() bool { return len(r.Failed()) == 0 }

// Failed lists the names of violated properties in run order.
func (r *Report) Failed() []string {
	var out []string
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res.Name)
		}
	}

	return out
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteText renders a header, one aligned line per property, the
// counterexamples of failed properties and a summary line. mark decorates
// the PASS/FAIL status; nil leaves it plain.
func (r *Report) WriteText(w io.Writer, mark func(passed bool, status string) string) error {
	if mark == nil {
		mark = func(_ bool, s string) string { return s }
	}
	if _, err := fmt.Fprintf(w, "run %s  atol=%g rtol=%g\n", r.RunID, r.Atol, r.Rtol); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, res := range r.Results {
		status, detail := "PASS", fmt.Sprintf("rate ≤ %.3g", res.RateBound)
		if !res.Passed() {
			status, detail = "FAIL", fmt.Sprintf("%d violations", res.Violations)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d trials\tseed %d\t%s\n",
			mark(res.Passed(), status), res.Name, res.Trials, res.Seed, detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, res := range r.Results {
		for _, v := range res.Examples {
			fmt.Fprintf(w, "%s trial %d: %s\n", res.Name, v.Trial, v.Detail)
			for _, op := range v.Operands {
				fmt.Fprintf(w, "    %s\n", op)
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d/%d passed\n", len(r.Results)-len(r.Failed()), len(r.Results))

	return err
}
