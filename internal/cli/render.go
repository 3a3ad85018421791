package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/strata-gfx/strata"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (single preset) or base path (multiple)
	presets string // comma-separated preset names
	seed    uint32 // fixed effect seed, 0 means per-export default
}

// newRenderCmd creates the render command. A composition document is
// loaded from YAML and exported as PNG at one or more presets; multiple
// presets export concurrently.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Export a composition document to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single preset) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.presets, "preset", "p", "", "export preset(s), e.g. 4k-landscape (comma-separated)")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 0, "fixed effect seed for reproducible output")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	comp, err := loadComposition(path)
	if err != nil {
		return err
	}

	names := opts.presets
	if names == "" {
		names = cfg.DefaultPreset
	}
	presets, err := resolvePresets(names)
	if err != nil {
		return err
	}

	var renderOptions []strata.Option
	if opts.seed != 0 {
		renderOptions = append(renderOptions, strata.WithSeed(opts.seed))
	}
	if cfg.Tier != "" {
		tier, err := parseTier(cfg.Tier)
		if err != nil {
			return err
		}
		renderOptions = append(renderOptions, strata.WithCapabilities(strata.Capabilities{
			NativeFilter: true,
			Tier:         tier,
		}))
	}

	prog := newProgress(logger)
	g, ctx := errgroup.WithContext(ctx)
	for _, preset := range presets {
		out := outputPath(path, opts.output, cfg.OutputDir, preset, len(presets) > 1)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("exporting", "preset", preset.Name, "output", out)
			if err := writePNG(comp, preset, out, renderOptions); err != nil {
				return fmt.Errorf("export %s: %w", preset.Name, err)
			}
			logger.Info("wrote", "file", out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d file(s)", len(presets)))
	return nil
}

// loadComposition parses a YAML composition document.
func loadComposition(path string) (*strata.Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read composition: %w", err)
	}
	var comp strata.Composition
	if err := yaml.Unmarshal(data, &comp); err != nil {
		return nil, fmt.Errorf("parse composition %s: %w", path, err)
	}
	if comp.Canvas.Width < 1 || comp.Canvas.Height < 1 {
		return nil, fmt.Errorf("composition %s: canvas dimensions must be positive", path)
	}
	return &comp, nil
}

// parseTier maps a config tier name onto a quality tier.
func parseTier(s string) (strata.Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return strata.TierLow, nil
	case "medium":
		return strata.TierMedium, nil
	case "high":
		return strata.TierHigh, nil
	default:
		return 0, fmt.Errorf("unknown tier %q (want low, medium, or high)", s)
	}
}

// resolvePresets parses a comma-separated preset list.
func resolvePresets(s string) ([]strata.ExportPreset, error) {
	var out []strata.ExportPreset
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, ok := strata.PresetByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (run 'strata presets' to list)", name)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no presets given")
	}
	return out, nil
}

// outputPath decides where one exported file lands. With multiple
// presets the preset name is appended to the base stem so exports never
// clobber each other.
func outputPath(input, output, outputDir string, preset strata.ExportPreset, multi bool) string {
	base := output
	if base == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		base = stem + ".png"
	}
	if multi {
		ext := filepath.Ext(base)
		base = strings.TrimSuffix(base, ext) + "-" + preset.Name + ext
	}
	if outputDir != "" && !filepath.IsAbs(base) {
		base = filepath.Join(outputDir, base)
	}
	return base
}

func writePNG(comp *strata.Composition, preset strata.ExportPreset, path string, opts []strata.Option) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := strata.ExportPNG(comp, preset, f, opts...); err != nil {
		return err
	}
	return f.Close()
}
