package blend

import "math"

// blendFunc returns the per-channel blend function B(Cs, Cd) for a mode,
// or nil for modes that reduce to plain source-over.
func blendFunc(mode Mode) func(s, d float64) float64 {
	switch mode {
	case ModeMultiply:
		return multiply
	case ModeScreen:
		return screen
	case ModeOverlay:
		return overlay
	case ModeDarken:
		return math.Min
	case ModeLighten:
		return math.Max
	case ModeColorDodge:
		return colorDodge
	case ModeColorBurn:
		return colorBurn
	case ModeHardLight:
		return hardLight
	case ModeSoftLight:
		return softLight
	case ModeDifference:
		return difference
	case ModeExclusion:
		return exclusion
	default:
		return nil
	}
}

func multiply(s, d float64) float64 {
	return s * d
}

func screen(s, d float64) float64 {
	return s + d - s*d
}

// overlay is hard light with the layers swapped.
func overlay(s, d float64) float64 {
	return hardLight(d, s)
}

func colorDodge(s, d float64) float64 {
	if d == 0 {
		return 0
	}
	if s == 1 {
		return 1
	}
	return math.Min(1, d/(1-s))
}

func colorBurn(s, d float64) float64 {
	if d == 1 {
		return 1
	}
	if s == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return multiply(2*s, d)
	}
	return screen(2*s-1, d)
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float64
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = math.Sqrt(d)
	}
	return d + (2*s-1)*(dd-d)
}

func difference(s, d float64) float64 {
	return math.Abs(s - d)
}

func exclusion(s, d float64) float64 {
	return s + d - 2*s*d
}
