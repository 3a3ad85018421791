package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("default_preset = \"4k-landscape\"\noutput_dir = \"/tmp/renders\"\ntier = \"low\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultPreset != "4k-landscape" {
		t.Errorf("DefaultPreset = %q", cfg.DefaultPreset)
	}
	if cfg.OutputDir != "/tmp/renders" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Tier != "low" {
		t.Errorf("Tier = %q", cfg.Tier)
	}
}

func TestLoadConfigMissingExplicitFileErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing explicit config should error")
	}
}

func TestLoadConfigBackfillsDefaultPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("output_dir = \"out\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultPreset != "2k-square" {
		t.Errorf("DefaultPreset = %q, want built-in default", cfg.DefaultPreset)
	}
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_preset = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestConfigContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := configFromContext(ctx); got.DefaultPreset != "2k-square" {
		t.Errorf("empty context config = %+v", got)
	}

	want := Config{DefaultPreset: "8k-portrait", Tier: "high"}
	ctx = withConfig(ctx, want)
	if got := configFromContext(ctx); got != want {
		t.Errorf("configFromContext = %+v, want %+v", got, want)
	}
}
