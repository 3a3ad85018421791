package strata

import (
	"testing"

	"github.com/strata-gfx/strata/internal/blend"
)

// TestBlendModeMappingExhaustive guards the enum tables: every mode has a
// distinct name, parses back to itself, and maps onto a compositing
// operator. Growing the enum without extending the tables fails here.
func TestBlendModeMappingExhaustive(t *testing.T) {
	if len(blendModeNames) != len(blendModeOps) {
		t.Fatalf("name table (%d) and op table (%d) disagree", len(blendModeNames), len(blendModeOps))
	}

	seen := make(map[string]bool)
	for m := BlendNormal; int(m) < len(blendModeNames); m++ {
		name := m.String()
		if name == "" {
			t.Errorf("mode %d has empty name", m)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		if got := ParseBlendMode(name); got != m {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", name, got, m)
		}

		// Every non-normal mode must map to a distinct operator.
		if m != BlendNormal && m.op() == blend.ModeSourceOver {
			t.Errorf("mode %q maps to source-over", name)
		}
	}
}

func TestParseBlendModeUnknown(t *testing.T) {
	tests := []string{"", "bogus", "NORMAL", "plus-lighter"}
	for _, name := range tests {
		if got := ParseBlendMode(name); got != BlendNormal {
			t.Errorf("ParseBlendMode(%q) = %v, want BlendNormal", name, got)
		}
	}
}

func TestBlendModeOutOfRange(t *testing.T) {
	m := BlendMode(99)
	if got := m.String(); got != "normal" {
		t.Errorf("String() = %q, want normal", got)
	}
	if got := m.op(); got != blend.ModeSourceOver {
		t.Errorf("op() = %v, want source-over", got)
	}
	if got := BlendMode(-1).op(); got != blend.ModeSourceOver {
		t.Errorf("negative op() = %v, want source-over", got)
	}
}

func TestBlendModeText(t *testing.T) {
	b, err := BlendScreen.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "screen" {
		t.Errorf("MarshalText = %q", b)
	}

	var m BlendMode
	if err := m.UnmarshalText([]byte("color-dodge")); err != nil {
		t.Fatal(err)
	}
	if m != BlendColorDodge {
		t.Errorf("UnmarshalText = %v, want BlendColorDodge", m)
	}
}
