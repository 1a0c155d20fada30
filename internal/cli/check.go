package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unalgebra/property"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Trials      int
	Workers     int
	MaxExamples int
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [property...]",
		Short: "Check algebra laws against generated operands",
		Long: `Run the named properties, or every enabled property of the configuration,
and report violations. Exits 1 when any property is violated.`,
		Example: `  uncheck check
  uncheck check mul-tightness mul-associative --trials 100000
  SSOT_TRIALS=500 uncheck check --config SSOT.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Trials, "trials", "n", 0, "trials per property (0 = configuration)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "parallel chunks (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&opts.MaxExamples, "max-examples", property.DefaultMaxExamples, "counterexamples kept per property")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, names []string) error {
	if opts.Trials < 0 || opts.Workers < 0 || opts.MaxExamples < 0 {
		return NewExitError(ExitCommandError, "--trials, --workers and --max-examples must be non-negative")
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	runOpts := []property.Option{
		property.WithLogger(opts.Logger),
		property.WithTrials(opts.Trials),
		property.WithMaxExamples(opts.MaxExamples),
	}
	if opts.Workers > 0 {
		runOpts = append(runOpts, property.WithWorkers(opts.Workers))
	}

	rep, err := property.NewRunner(cfg, runOpts...).Run(cmd.Context(), names...)
	if err != nil {
		return WrapExitError(ExitCommandError, "check failed to run", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		err = rep.WriteJSON(out)
	} else {
		err = rep.WriteText(out, statusMark)
	}
	if err != nil {
		return err
	}

	if failed := rep.Failed(); len(failed) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d properties violated: %v", len(failed), failed))
	}

	return nil
}
