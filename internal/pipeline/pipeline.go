package pipeline

import (
	"github.com/muurk/sdvxrgb/internal/colorspace"
	"github.com/muurk/sdvxrgb/internal/config"
)

// Apply transforms buf in place according to t. buf holds packed RGB
// triplets; a trailing partial triplet is left alone.
func Apply(t *config.StripTransform, buf []byte) {
	if !t.Active() {
		return
	}

	p := t.Params()
	luts := t.LUTs()
	static, hasStatic := t.StaticHSV()
	gradient, hasGradient := t.GradientHSV()
	adjust := p.HueShift != config.DefaultHueShift || p.Saturation != config.DefaultSaturation
	scale := p.Brightness != config.DefaultBrightness

	n := len(buf) / 3
	interpolate := hasGradient && n > 1
	hueSpan := 0
	if interpolate {
		hueSpan = shortestArc(static.H, gradient.H)
	}

	for i := 0; i < n; i++ {
		px := buf[i*3 : i*3+3 : i*3+3]

		r, g, b := p.ChannelOrder.Permute(px[0], px[1], px[2])

		r, g, b = luts[0][r], luts[1][g], luts[2][b]

		switch {
		case hasStatic:
			_, _, v := colorspace.RGBToHSV(r, g, b)
			h, s := static.H, static.S
			if interpolate {
				h = (static.H + hueSpan*i/(n-1) + colorspace.HueDegrees) % colorspace.HueDegrees
				s = static.S + (gradient.S-static.S)*i/(n-1)
			}
			r, g, b = colorspace.HSVToRGB(h, s, v)
		case adjust:
			h, s, v := colorspace.RGBToHSV(r, g, b)
			h = (h + p.HueShift) % colorspace.HueDegrees
			if p.Saturation != config.DefaultSaturation {
				s = min(s*p.Saturation/100, colorspace.MaxSaturation)
			}
			r, g, b = colorspace.HSVToRGB(h, s, v)
		}

		if scale {
			r = scaleChannel(r, p.Brightness)
			g = scaleChannel(g, p.Brightness)
			b = scaleChannel(b, p.Brightness)
		}

		px[0], px[1], px[2] = r, g, b
	}
}

// shortestArc returns the signed hue difference from -> to, wrapped into
// [-180, 180].
func shortestArc(from, to int) int {
	d := to - from
	if d > 180 {
		d -= colorspace.HueDegrees
	}
	if d < -180 {
		d += colorspace.HueDegrees
	}
	return d
}

func scaleChannel(c uint8, percent int) uint8 {
	return uint8(min(int(c)*percent/100, 255))
}
