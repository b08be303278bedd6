package config

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/muurk/sdvxrgb/internal/colorspace"
)

// Recognized keys. Anything else in a section is ignored.
const (
	KeyChannelOrder  = "channel_order"
	KeyGammaR        = "gamma_r"
	KeyGammaG        = "gamma_g"
	KeyGammaB        = "gamma_b"
	KeyHueShift      = "hue_shift"
	KeySaturation    = "saturation"
	KeyBrightness    = "brightness"
	KeyStaticColor   = "static_color"
	KeyGradientColor = "gradient_color"
)

// values is a read-only view of one configuration section.
type values interface {
	lookup(key string) (string, bool)
}

// mapValues is a values backed by a plain map.
type mapValues map[string]string

func (m mapValues) lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ParseHexColor parses an optional '#' followed by exactly six hex digits.
func ParseHexColor(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, true
}

// resolveChannelOrder inherits the fallback when the key is absent. A present
// value that is not a valid token resolves to RGB.
func resolveChannelOrder(v values, fallback colorspace.ChannelOrder) colorspace.ChannelOrder {
	raw, ok := v.lookup(KeyChannelOrder)
	if !ok {
		return fallback
	}
	return colorspace.ParseChannelOrder(raw)
}

func resolveGamma(v values, key string, fallback float64) float64 {
	raw, ok := v.lookup(key)
	if !ok {
		return fallback
	}
	g, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !colorspace.ValidGamma(g) {
		return fallback
	}
	return g
}

// resolveInt reads the leading integer of the value, the way the profile
// API's integer reader does: "80.5" and "80%" read as 80. A value with no
// leading digits falls back.
func resolveInt(v values, key string, fallback int) int {
	raw, ok := v.lookup(key)
	if !ok {
		return fallback
	}
	n, ok := leadingInt(raw)
	if !ok {
		return fallback
	}
	return n
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// resolveColor treats a missing key and an unparsable value the same way:
// both inherit the fallback.
func resolveColor(v values, key string, fallback OptionalRGB) OptionalRGB {
	raw, ok := v.lookup(key)
	if !ok {
		return fallback
	}
	c, ok := ParseHexColor(raw)
	if !ok {
		return fallback
	}
	return Some(c)
}

// resolveParams reads every field of one section on top of base.
func resolveParams(v values, base Params) Params {
	p := Params{
		ChannelOrder: resolveChannelOrder(v, base.ChannelOrder),
		GammaR:       resolveGamma(v, KeyGammaR, base.GammaR),
		GammaG:       resolveGamma(v, KeyGammaG, base.GammaG),
		GammaB:       resolveGamma(v, KeyGammaB, base.GammaB),
		HueShift:     colorspace.WrapHue(resolveInt(v, KeyHueShift, base.HueShift)),
		Saturation:   clampPercent(resolveInt(v, KeySaturation, base.Saturation)),
		Brightness:   clampPercent(resolveInt(v, KeyBrightness, base.Brightness)),
		Static:       resolveColor(v, KeyStaticColor, base.Static),
	}

	if p.Static.Set {
		p.Gradient = resolveColor(v, KeyGradientColor, base.Gradient)
	} else {
		p.Gradient = OptionalRGB{}
	}
	return p
}
