// Package cli implements the strata command-line interface.
//
// This package provides commands for rendering composition documents to
// PNG at export resolutions, converting them to CSS approximations, and
// listing the built-in export presets. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - render: rasterize a composition document to one or more PNGs
//   - css: print a lossy stylesheet approximation of a composition
//   - presets: list the built-in export resolutions
//
// All commands support --verbose (-v) for debug-level logging and
// --config for a TOML configuration file with defaults. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/strata-gfx/strata"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the strata CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "strata",
		Short:        "Strata renders layered gradient compositions",
		Long:         `Strata is a CLI for rendering layered-gradient composition documents: stacked gradients with blend modes and procedural effects, exported as PNG at up to 8K or approximated as CSS.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			ctx := withLogger(cmd.Context(), logger)
			// The charm logger doubles as an slog.Handler, so library
			// logging flows through the same output.
			strata.SetLogger(slog.New(logger))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("strata %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newCSSCmd())
	root.AddCommand(newPresetsCmd())

	return root.ExecuteContext(context.Background())
}
