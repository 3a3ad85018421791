package strata

import (
	"github.com/strata-gfx/strata/internal/blend"
)

// BlendMode identifies the pixel-combination rule used when compositing a
// layer or effect over existing content. It is a closed enum: every mode
// maps one-to-one onto a compositing operator in internal/blend, and an
// unrecognized document string parses to BlendNormal rather than erroring.
type BlendMode int

const (
	// BlendNormal is plain source-over alpha compositing.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination channels.
	BlendMultiply
	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen
	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay
	// BlendDarken keeps the darker of source and destination.
	BlendDarken
	// BlendLighten keeps the lighter of source and destination.
	BlendLighten
	// BlendColorDodge brightens the destination toward the source.
	BlendColorDodge
	// BlendColorBurn darkens the destination toward the source.
	BlendColorBurn
	// BlendHardLight multiplies or screens depending on the source.
	BlendHardLight
	// BlendSoftLight is a softer variant of hard light.
	BlendSoftLight
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendExclusion is a lower-contrast difference.
	BlendExclusion
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
}

// blendModeOps is the exhaustive mapping from the domain enum to the
// compositing operators. Adding a BlendMode without extending this table
// is caught by TestBlendModeMappingExhaustive.
var blendModeOps = [...]blend.Mode{
	BlendNormal:     blend.ModeSourceOver,
	BlendMultiply:   blend.ModeMultiply,
	BlendScreen:     blend.ModeScreen,
	BlendOverlay:    blend.ModeOverlay,
	BlendDarken:     blend.ModeDarken,
	BlendLighten:    blend.ModeLighten,
	BlendColorDodge: blend.ModeColorDodge,
	BlendColorBurn:  blend.ModeColorBurn,
	BlendHardLight:  blend.ModeHardLight,
	BlendSoftLight:  blend.ModeSoftLight,
	BlendDifference: blend.ModeDifference,
	BlendExclusion:  blend.ModeExclusion,
}

// String returns the document name of the blend mode.
func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendModeNames) {
		return "normal"
	}
	return blendModeNames[m]
}

// op returns the compositing operator for the mode.
// Out-of-range values fall back to source-over.
func (m BlendMode) op() blend.Mode {
	if m < 0 || int(m) >= len(blendModeOps) {
		return blend.ModeSourceOver
	}
	return blendModeOps[m]
}

// ParseBlendMode parses a document blend-mode name.
// Unknown or empty names yield BlendNormal.
func ParseBlendMode(name string) BlendMode {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m)
		}
	}
	return BlendNormal
}

// MarshalYAML implements yaml.Marshaler.
func (m BlendMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *BlendMode) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*m = ParseBlendMode(s)
	return nil
}

// MarshalText implements encoding.TextMarshaler, covering JSON documents.
func (m BlendMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	*m = ParseBlendMode(string(text))
	return nil
}
