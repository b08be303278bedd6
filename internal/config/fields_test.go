package config

import (
	"testing"

	"github.com/muurk/sdvxrgb/internal/colorspace"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in     string
		want   RGB
		wantOK bool
	}{
		{"8000FF", RGB{0x80, 0x00, 0xFF}, true},
		{"#8000ff", RGB{0x80, 0x00, 0xFF}, true},
		{"  #00ff80 ", RGB{0x00, 0xFF, 0x80}, true},
		{"000000", RGB{}, true},
		{"", RGB{}, false},
		{"#", RGB{}, false},
		{"zzzzzz", RGB{}, false},
		{"12345", RGB{}, false},
		{"1234567", RGB{}, false},
		{"12345G", RGB{}, false},
		{"##123456", RGB{}, false},
		{"0x1234", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHexColor(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseHexColor(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveChannelOrder(t *testing.T) {
	tests := []struct {
		name     string
		vals     mapValues
		fallback colorspace.ChannelOrder
		want     colorspace.ChannelOrder
	}{
		{"absent inherits", mapValues{}, colorspace.OrderBGR, colorspace.OrderBGR},
		{"valid overrides", mapValues{KeyChannelOrder: "grb"}, colorspace.OrderBGR, colorspace.OrderGRB},
		{"invalid resolves to RGB", mapValues{KeyChannelOrder: "nope"}, colorspace.OrderBGR, colorspace.OrderRGB},
		{"empty resolves to RGB", mapValues{KeyChannelOrder: ""}, colorspace.OrderBGR, colorspace.OrderRGB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveChannelOrder(tt.vals, tt.fallback); got != tt.want {
				t.Errorf("resolveChannelOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveGamma(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		set  bool
		want float64
	}{
		{"absent", "", false, 1.8},
		{"decimal", "2.2", true, 2.2},
		{"integer", "3", true, 3},
		{"padded", " 0.5 ", true, 0.5},
		{"garbage", "bright", true, 1.8},
		{"zero", "0", true, 1.8},
		{"negative", "-2.2", true, 1.8},
		{"infinity", "inf", true, 1.8},
		{"nan", "NaN", true, 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := mapValues{}
			if tt.set {
				vals[KeyGammaR] = tt.raw
			}
			if got := resolveGamma(vals, KeyGammaR, 1.8); got != tt.want {
				t.Errorf("resolveGamma(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveInt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		set  bool
		want int
	}{
		{"absent", "", false, 42},
		{"positive", "80", true, 80},
		{"explicit plus", "+80", true, 80},
		{"negative", "-10", true, -10},
		{"padded", " 15 ", true, 15},
		{"decimal reads leading integer", "80.5", true, 80},
		{"trailing junk is ignored", "12abc", true, 12},
		{"percent sign", "150%", true, 150},
		{"no digits is unparsable", "abc", true, 42},
		{"lone sign is unparsable", "-", true, 42},
		{"leading dot is unparsable", ".5", true, 42},
		{"empty is unparsable", "", true, 42},
		{"overflow is unparsable", "99999999999999999999999", true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := mapValues{}
			if tt.set {
				vals[KeyBrightness] = tt.raw
			}
			if got := resolveInt(vals, KeyBrightness, 42); got != tt.want {
				t.Errorf("resolveInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveColorMalformedEqualsAbsent(t *testing.T) {
	inherited := Some(RGB{0x10, 0x20, 0x30})

	absent := resolveColor(mapValues{}, KeyStaticColor, inherited)
	malformed := resolveColor(mapValues{KeyStaticColor: "zzzzzz"}, KeyStaticColor, inherited)

	if absent != malformed {
		t.Errorf("malformed colour resolved to %v, absent to %v; want identical", malformed, absent)
	}
	if malformed != inherited {
		t.Errorf("malformed colour = %v, want inherited %v", malformed, inherited)
	}

	unset := resolveColor(mapValues{KeyStaticColor: "zzzzzz"}, KeyStaticColor, OptionalRGB{})
	if unset.Set {
		t.Errorf("malformed colour with no inherited value should stay unset, got %v", unset)
	}
}

func TestResolveParams(t *testing.T) {
	base := IdentityParams()
	base.Brightness = 80
	base.GammaG = 2.0
	base.Static = Some(RGB{0xFF, 0, 0})

	tests := []struct {
		name   string
		vals   mapValues
		verify func(t *testing.T, p Params)
	}{
		{
			name: "empty section inherits everything",
			vals: mapValues{},
			verify: func(t *testing.T, p Params) {
				if p != base {
					t.Errorf("params = %+v, want %+v", p, base)
				}
			},
		},
		{
			name: "override subset",
			vals: mapValues{KeyHueShift: "30", KeyGammaR: "2.2"},
			verify: func(t *testing.T, p Params) {
				if p.HueShift != 30 || p.GammaR != 2.2 {
					t.Errorf("overrides not applied: %+v", p)
				}
				if p.Brightness != 80 || p.GammaG != 2.0 || p.Static != base.Static {
					t.Errorf("inherited fields lost: %+v", p)
				}
			},
		},
		{
			name: "hue wraps",
			vals: mapValues{KeyHueShift: "-30"},
			verify: func(t *testing.T, p Params) {
				if p.HueShift != 330 {
					t.Errorf("HueShift = %d, want 330", p.HueShift)
				}
			},
		},
		{
			name: "percentages clamp",
			vals: mapValues{KeySaturation: "500", KeyBrightness: "-5"},
			verify: func(t *testing.T, p Params) {
				if p.Saturation != 200 || p.Brightness != 0 {
					t.Errorf("Saturation, Brightness = %d, %d, want 200, 0", p.Saturation, p.Brightness)
				}
			},
		},
		{
			name: "gradient with inherited static",
			vals: mapValues{KeyGradientColor: "0000FF"},
			verify: func(t *testing.T, p Params) {
				if !p.Gradient.Set || p.Gradient.Color != (RGB{0, 0, 0xFF}) {
					t.Errorf("Gradient = %+v, want set 0000FF", p.Gradient)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, resolveParams(tt.vals, base))
		})
	}
}

func TestResolveParamsGradientNeedsStatic(t *testing.T) {
	p := resolveParams(mapValues{KeyGradientColor: "0000FF"}, IdentityParams())
	if p.Static.Set {
		t.Fatalf("Static should be unset, got %+v", p.Static)
	}
	if p.Gradient.Set {
		t.Errorf("Gradient should be disabled without a static colour, got %+v", p.Gradient)
	}
}
