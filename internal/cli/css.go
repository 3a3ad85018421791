package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strata-gfx/strata"
)

// newCSSCmd creates the css command, which prints a lossy stylesheet
// approximation of a composition: blend modes and raster effects are
// dropped, gradients and the background color survive.
func newCSSCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "css [file]",
		Short: "Print a CSS approximation of a composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := loadComposition(args[0])
			if err != nil {
				return err
			}
			css := strata.CSS(comp)
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), css)
				return nil
			}
			if err := os.WriteFile(output, []byte(css), 0o644); err != nil {
				return fmt.Errorf("write css: %w", err)
			}
			loggerFromContext(cmd.Context()).Info("wrote", "file", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
