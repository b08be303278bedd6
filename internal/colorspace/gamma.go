package colorspace

import "math"

// GammaLUT is a 256-entry correction table for one channel.
type GammaLUT [256]uint8

// IdentityLUT maps every byte to itself.
var IdentityLUT = func() GammaLUT {
	var lut GammaLUT
	for i := range lut {
		lut[i] = uint8(i)
	}
	return lut
}()

// NewGammaLUT builds the table for out = 255 * (in/255)^(1/gamma), rounded
// to nearest. Gamma 1.0 returns IdentityLUT exactly. Callers are expected to
// pass a finite gamma > 0 (see ValidGamma); entries are clamped regardless and
// the endpoints always map 0->0 and 255->255.
func NewGammaLUT(gamma float64) GammaLUT {
	if gamma == 1.0 {
		return IdentityLUT
	}

	var lut GammaLUT
	inv := 1.0 / gamma
	for i := range lut {
		corrected := math.Pow(float64(i)/255.0, inv)*255.0 + 0.5
		switch {
		case corrected >= 255:
			lut[i] = 255
		case corrected > 0:
			lut[i] = uint8(corrected)
		default:
			// NaN lands here as well
			lut[i] = 0
		}
	}
	lut[0] = 0
	lut[255] = 255
	return lut
}

// ValidGamma reports whether g can be used as a gamma exponent.
func ValidGamma(g float64) bool {
	return g > 0 && !math.IsInf(g, 0) && !math.IsNaN(g)
}
