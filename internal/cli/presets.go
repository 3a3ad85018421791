package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strata-gfx/strata"
)

// newPresetsCmd creates the presets command, which lists the built-in
// export resolutions.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in export presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWIDTH\tHEIGHT")
			for _, p := range strata.Presets() {
				width, height := p.Dimensions()
				fmt.Fprintf(w, "%s\t%d\t%d\n", p.Name, width, height)
			}
			return w.Flush()
		},
	}
}
