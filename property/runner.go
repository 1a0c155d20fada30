package property

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unalgebra/generator"
	"github.com/katalvlaran/unalgebra/ssot"
	"github.com/katalvlaran/unalgebra/un"
)

// Runner checks properties against generated operands.
// A Runner is immutable after construction and safe for concurrent Run calls.
type Runner struct {
	cfg         *ssot.Config
	log         *zap.Logger
	workers     int
	chunk       int
	trials      int
	maxExamples int
}

// NewRunner builds a Runner over cfg; nil cfg means ssot.Default().
func NewRunner(cfg *ssot.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = ssot.Default()
	}
	r := &Runner{
		cfg:         cfg,
		log:         zap.NewNop(),
		workers:     defaultWorkers(),
		chunk:       DefaultChunkSize,
		maxExamples: DefaultMaxExamples,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run checks the named properties, or every enabled one when names is empty.
// Properties disabled in the config are skipped unless named explicitly.
//
// Errors: ErrUnknownProperty, ErrNoTrials, ctx.Err() on cancellation,
// ssot.ErrInvalidConfig for a malformed threshold.
func (r *Runner) Run(ctx context.Context, names ...string) (*Report, error) {
	var props []Property
	if len(names) == 0 {
		for _, p := range Catalogue() {
			if inv, ok := r.cfg.Invariant(p.Name); ok && !inv.IsEnabled() {
				r.log.Debug("property disabled", zap.String("property", p.Name))
				continue
			}
			props = append(props, p)
		}
	} else {
		for _, name := range names {
			p, err := Lookup(name)
			if err != nil {
				return nil, err
			}
			props = append(props, p)
		}
	}

	return r.RunProperties(ctx, props...)
}

// RunProperties checks arbitrary properties, in the given order.
func (r *Runner) RunProperties(ctx context.Context, props ...Property) (*Report, error) {
	if len(props) == 0 {
		return nil, ErrNoTrials
	}
	tol := r.cfg.Tolerance()
	rep := &Report{
		RunID: uuid.NewString(),
		Atol:  tol.Atol,
		Rtol:  tol.Rtol,
	}
	log := r.log.With(zap.String("run_id", rep.RunID))

	for _, p := range props {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.runOne(ctx, log, p, tol)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		rep.Results = append(rep.Results, res)
	}

	log.Info("run complete",
		zap.Int("properties", len(rep.Results)),
		zap.Int("failed", len(rep.Failed())),
	)

	return rep, nil
}

// chunkResult is the outcome of one work unit.
type chunkResult struct {
	violations int
	examples   []Violation
}

func (r *Runner) runOne(ctx context.Context, log *zap.Logger, p Property, tol un.Tolerance) (Result, error) {
	trials := r.cfg.TrialsFor(p.Name, r.trials)
	seed := r.cfg.Seed(p.Category)
	slack, err := r.threshold(ThresholdTightnessSlack, un.TightnessSlack, trials)
	if err != nil {
		return Result{}, err
	}
	rate, err := r.threshold(ThresholdRateBound, 0, trials)
	if err != nil {
		return Result{}, err
	}
	log.Debug("property start",
		zap.String("property", p.Name),
		zap.Int("trials", trials),
		zap.Int64("seed", seed),
	)

	start := time.Now()
	chunks := (trials + r.chunk - 1) / r.chunk
	parts := make([]chunkResult, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for k := 0; k < chunks; k++ {
		k := k
		g.Go(func() error {
			first := k * r.chunk
			n := min(r.chunk, trials-first)
			part, err := r.runChunk(gctx, p, seed, k, first, n, tol, slack)
			parts[k] = part

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Name:      p.Name,
		Trials:    trials,
		Seed:      seed,
		RateBound: rate,
		Elapsed:   time.Since(start),
	}
	for _, part := range parts {
		res.Violations += part.violations
		for _, v := range part.examples {
			if len(res.Examples) < r.maxExamples {
				res.Examples = append(res.Examples, v)
			}
		}
	}

	if res.Violations > 0 {
		fields := []zap.Field{
			zap.String("property", p.Name),
			zap.Int("violations", res.Violations),
			zap.Int("trials", trials),
		}
		if len(res.Examples) > 0 {
			fields = append(fields, zap.String("first", res.Examples[0].Detail))
		}
		log.Warn("property violated", fields...)
	} else {
		log.Debug("property holds", zap.String("property", p.Name), zap.Duration("elapsed", res.Elapsed))
	}

	return res, nil
}

func (r *Runner) runChunk(ctx context.Context, p Property, seed int64, k, first, n int, tol un.Tolerance, slack float64) (chunkResult, error) {
	var out chunkResult
	gen := generator.Stream(seed, uint64(k))
	for i := 0; i < n; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}
		var ops [3]un.UN
		for j := 0; j < p.Arity; j++ {
			ops[j] = gen.Next()
		}
		c := Case{X: ops[0], Y: ops[1], Z: ops[2], Tol: tol, Slack: slack}

		err := p.Check(c)
		if err == nil {
			continue
		}
		out.violations++
		if len(out.examples) < r.maxExamples {
			out.examples = append(out.examples, newViolation(first+i, p.operands(c), err))
		}
	}

	return out, nil
}

// threshold resolves a named threshold for n trials, or def when absent.
// The rate bound falls back to DefaultRateBound.
func (r *Runner) threshold(name string, def float64, n int) (float64, error) {
	t, ok := r.cfg.Threshold(name)
	if !ok {
		if name != ThresholdRateBound {
			return def, nil
		}
		t = ssot.Threshold{Expr: DefaultRateBound}
	}

	return t.Eval(n)
}
