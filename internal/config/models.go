package config

import (
	"fmt"
	"time"

	"github.com/muurk/sdvxrgb/internal/colorspace"
	"github.com/muurk/sdvxrgb/internal/strip"
)

// Identity values for every transform field.
const (
	DefaultGamma      = 1.0
	DefaultHueShift   = 0
	DefaultSaturation = 100
	DefaultBrightness = 100

	MinPercent = 0
	MaxPercent = 200
)

// RGB is an 8-bit colour as written in the configuration file.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as six upper-case hex digits, the form the editing
// tools write.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// OptionalRGB is a colour that may be unset.
type OptionalRGB struct {
	Color RGB
	Set   bool
}

// Some returns a set OptionalRGB.
func Some(c RGB) OptionalRGB {
	return OptionalRGB{Color: c, Set: true}
}

// Params are the user-facing transform parameters of one strip.
type Params struct {
	ChannelOrder colorspace.ChannelOrder
	GammaR       float64
	GammaG       float64
	GammaB       float64
	HueShift     int // degrees, 0-359
	Saturation   int // percent, 0-200
	Brightness   int // percent, 0-200
	Static       OptionalRGB
	Gradient     OptionalRGB // only meaningful when Static is set
}

// IdentityParams returns parameters that leave pixels untouched.
func IdentityParams() Params {
	return Params{
		ChannelOrder: colorspace.OrderRGB,
		GammaR:       DefaultGamma,
		GammaG:       DefaultGamma,
		GammaB:       DefaultGamma,
		HueShift:     DefaultHueShift,
		Saturation:   DefaultSaturation,
		Brightness:   DefaultBrightness,
	}
}

// normalize enforces the parameter ranges: hue wraps, percentages clamp,
// unusable gammas reset to 1.0 and a gradient needs a static colour.
func (p Params) normalize() Params {
	p.HueShift = colorspace.WrapHue(p.HueShift)
	p.Saturation = clampPercent(p.Saturation)
	p.Brightness = clampPercent(p.Brightness)
	if !colorspace.ValidGamma(p.GammaR) {
		p.GammaR = DefaultGamma
	}
	if !colorspace.ValidGamma(p.GammaG) {
		p.GammaG = DefaultGamma
	}
	if !colorspace.ValidGamma(p.GammaB) {
		p.GammaB = DefaultGamma
	}
	if !p.Static.Set {
		p.Gradient = OptionalRGB{}
	}
	return p
}

// isIdentity reports whether p leaves every pixel unchanged.
func (p Params) isIdentity() bool {
	return p.ChannelOrder == colorspace.OrderRGB &&
		p.GammaR == DefaultGamma &&
		p.GammaG == DefaultGamma &&
		p.GammaB == DefaultGamma &&
		p.HueShift == DefaultHueShift &&
		p.Saturation == DefaultSaturation &&
		p.Brightness == DefaultBrightness &&
		!p.Static.Set &&
		!p.Gradient.Set
}

func clampPercent(v int) int {
	if v < MinPercent {
		return MinPercent
	}
	if v > MaxPercent {
		return MaxPercent
	}
	return v
}

// StripTransform is the fully resolved transform for one strip together with
// the values derived from it. It is built once by NewStripTransform and must
// not be modified afterwards.
type StripTransform struct {
	params      Params
	active      bool
	luts        [3]colorspace.GammaLUT
	staticHSV   colorspace.HSV
	gradientHSV colorspace.HSV
}

// NewStripTransform normalizes p and derives the gamma tables, the active flag
// and the HSV form of the configured colours.
func NewStripTransform(p Params) StripTransform {
	p = p.normalize()
	t := StripTransform{
		params: p,
		active: !p.isIdentity(),
		luts: [3]colorspace.GammaLUT{
			colorspace.NewGammaLUT(p.GammaR),
			colorspace.NewGammaLUT(p.GammaG),
			colorspace.NewGammaLUT(p.GammaB),
		},
	}
	if p.Static.Set {
		c := p.Static.Color
		t.staticHSV = colorspace.ToHSV(c.R, c.G, c.B)
	}
	if p.Gradient.Set {
		c := p.Gradient.Color
		t.gradientHSV = colorspace.ToHSV(c.R, c.G, c.B)
	}
	return t
}

// IdentityTransform returns the transform that leaves pixels untouched.
func IdentityTransform() StripTransform {
	return NewStripTransform(IdentityParams())
}

// Params returns the resolved parameters.
func (t *StripTransform) Params() Params { return t.params }

// Active reports whether any parameter differs from identity.
func (t *StripTransform) Active() bool { return t.active }

// LUTs returns the red, green and blue gamma tables. The caller must not
// modify them.
func (t *StripTransform) LUTs() *[3]colorspace.GammaLUT { return &t.luts }

// StaticHSV returns the static colour in HSV form and whether it is set.
func (t *StripTransform) StaticHSV() (colorspace.HSV, bool) {
	return t.staticHSV, t.params.Static.Set
}

// GradientHSV returns the gradient end colour in HSV form and whether a
// gradient is active.
func (t *StripTransform) GradientHSV() (colorspace.HSV, bool) {
	return t.gradientHSV, t.params.Gradient.Set
}

// Snapshot is an immutable, fully resolved configuration for all strips.
type Snapshot struct {
	strips  [strip.Count]StripTransform
	global  StripTransform
	modTime time.Time
}

var identitySnapshot = func() *Snapshot {
	s := &Snapshot{global: IdentityTransform()}
	for i := range s.strips {
		s.strips[i] = s.global
	}
	return s
}()

// Identity returns the snapshot in which every strip is inactive. The value
// is shared and, like every snapshot, read-only.
func Identity() *Snapshot {
	return identitySnapshot
}

// NewSnapshot builds a snapshot from already resolved transforms.
func NewSnapshot(global StripTransform, strips [strip.Count]StripTransform, modTime time.Time) *Snapshot {
	return &Snapshot{strips: strips, global: global, modTime: modTime}
}

// Strip returns the transform for id. id must be valid.
func (s *Snapshot) Strip(id strip.ID) *StripTransform {
	return &s.strips[id]
}

// Global returns the resolved [global] defaults the strips inherited from.
func (s *Snapshot) Global() *StripTransform {
	return &s.global
}

// ModTime returns the modification time of the file the snapshot was read
// from, or the zero time for the identity snapshot.
func (s *Snapshot) ModTime() time.Time {
	return s.modTime
}

// ActiveStrips returns the IDs of strips that need per-pixel work.
func (s *Snapshot) ActiveStrips() []strip.ID {
	var ids []strip.ID
	for _, id := range strip.All() {
		if s.strips[id].active {
			ids = append(ids, id)
		}
	}
	return ids
}
