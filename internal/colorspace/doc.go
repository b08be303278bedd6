// Package colorspace provides the 8-bit colour primitives used by the strip
// transform pipeline.
//
// Everything here runs per LED, per strip, per frame, so the package sticks to
// integer arithmetic on 0-255 channels and never allocates.
//
// # HSV
//
// RGBToHSV and HSVToRGB use the following ranges:
//   - Hue: 0-359 degrees
//   - Saturation: 0-255
//   - Value: 0-255
//
// The two functions share the same quantization, so converting a colour to
// RGB and back lands within one unit of where it started for any saturation
// and value of at least 128. Below that, an 8-bit pixel does not carry enough
// chroma to resolve single degrees of hue.
//
// # Gamma
//
// A GammaLUT maps an input byte to a corrected output byte:
//
//	lut := colorspace.NewGammaLUT(2.2)
//	out := lut[in]
//
// A gamma of exactly 1.0 yields the identity table with no floating-point
// rounding involved.
//
// # Channel Order
//
// ChannelOrder names one of the six permutations of a packed RGB triplet:
//
//	order := colorspace.ParseChannelOrder("grb")
//	r, g, b = order.Permute(r, g, b)
package colorspace
