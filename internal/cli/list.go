package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unalgebra/property"
)

// listEntry is one catalogue row.
type listEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Arity       int    `json:"arity"`
	Trials      int    `json:"trials"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the property catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			var entries []listEntry
			for _, p := range property.Catalogue() {
				enabled := true
				if inv, ok := cfg.Invariant(p.Name); ok {
					enabled = inv.IsEnabled()
				}
				entries = append(entries, listEntry{
					Name:        p.Name,
					Category:    p.Category,
					Arity:       p.Arity,
					Trials:      cfg.TrialsFor(p.Name, 0),
					Enabled:     enabled,
					Description: p.Description,
				})
			}

			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(out, entries)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range entries {
				state := ""
				if !e.Enabled {
					state = " (disabled)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s%s\n", e.Name, e.Category, e.Trials, e.Description, state)
			}
			return tw.Flush()
		},
	}
}
