package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strata-gfx/strata"
)

func TestResolvePresets(t *testing.T) {
	presets, err := resolvePresets("2k-square, 4k-landscape")
	if err != nil {
		t.Fatal(err)
	}
	if len(presets) != 2 {
		t.Fatalf("len = %d, want 2", len(presets))
	}
	if presets[0].Name != "2k-square" || presets[1].Name != "4k-landscape" {
		t.Errorf("presets = %v", presets)
	}

	if _, err := resolvePresets("2k-square, 16k-cube"); err == nil {
		t.Error("unknown preset should error")
	}
	if _, err := resolvePresets(" , ,"); err == nil {
		t.Error("empty preset list should error")
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    strata.Tier
		wantErr bool
	}{
		{"low", strata.TierLow, false},
		{" Medium ", strata.TierMedium, false},
		{"HIGH", strata.TierHigh, false},
		{"ultra", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseTier(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTier(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseTier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	square, _ := strata.PresetByName("2k-square")

	tests := []struct {
		name      string
		input     string
		output    string
		outputDir string
		multi     bool
		want      string
	}{
		{"derives stem from input", "docs/sunset.yaml", "", "", false, "sunset.png"},
		{"explicit output wins", "sunset.yaml", "final.png", "", false, "final.png"},
		{"multi appends preset name", "sunset.yaml", "", "", true, "sunset-2k-square.png"},
		{"multi keeps extension", "sunset.yaml", "art.png", "", true, "art-2k-square.png"},
		{"output dir joins relative", "sunset.yaml", "", "renders", false, filepath.Join("renders", "sunset.png")},
		{"output dir skips absolute", "sunset.yaml", "/abs/final.png", "renders", false, "/abs/final.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.output, tt.outputDir, square, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadComposition(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "comp.yaml")
	doc := []byte(`
canvas:
  width: 200
  height: 100
  backgroundColor: "#101010"
layers:
  - id: base
    name: base
    type: radial
    visible: true
    opacity: 1
    colors:
      - color: "#ff0000"
        position: 0
      - color: "#000000"
        position: 1
`)
	if err := os.WriteFile(good, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	comp, err := loadComposition(good)
	if err != nil {
		t.Fatal(err)
	}
	if comp.Canvas.Width != 200 || comp.Canvas.Height != 100 {
		t.Errorf("canvas = %dx%d", comp.Canvas.Width, comp.Canvas.Height)
	}
	if len(comp.Layers) != 1 || comp.Layers[0].Type != strata.GradientRadial {
		t.Errorf("layers = %+v", comp.Layers)
	}

	if _, err := loadComposition(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	zero := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(zero, []byte("canvas:\n  width: 0\n  height: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadComposition(zero); err == nil {
		t.Error("zero-width canvas should error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadComposition(bad); err == nil {
		t.Error("malformed YAML should error")
	}
}
