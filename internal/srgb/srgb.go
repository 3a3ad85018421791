// Package srgb converts between sRGB and linear light values.
//
// Gradient color stops are interpolated in linear space so that ramps
// between saturated colors do not pass through muddy midtones.
package srgb

import "math"

// ToLinear converts an sRGB channel value in [0, 1] to linear light.
func ToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// FromLinear converts a linear light value in [0, 1] back to sRGB.
func FromLinear(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// Lerp interpolates a single channel between two sRGB values in linear
// space and returns the sRGB result.
func Lerp(a, b, t float64) float64 {
	la := ToLinear(a)
	lb := ToLinear(b)
	return FromLinear(la + t*(lb-la))
}
