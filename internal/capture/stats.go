package capture

import (
	"fmt"

	"github.com/muurk/sdvxrgb/internal/colorspace"
	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/strip"
)

// HueBuckets is the number of 10 degree hue histogram buckets.
const HueBuckets = 36

// StripStats summarises one strip over one or more frames.
type StripStats struct {
	Name  string `yaml:"name" json:"name"`
	LEDs  int    `yaml:"leds" json:"leds"`
	Lit   int    `yaml:"lit" json:"lit"` // pixels that were not black
	Total int    `yaml:"total" json:"total"`

	AvgR float64 `yaml:"avg_r" json:"avg_r"`
	AvgG float64 `yaml:"avg_g" json:"avg_g"`
	AvgB float64 `yaml:"avg_b" json:"avg_b"`

	// AvgBrightness averages the brightest channel of each pixel.
	AvgBrightness float64 `yaml:"avg_brightness" json:"avg_brightness"`
	// AvgSaturation is 0-1, averaged over all pixels with black counting 0.
	AvgSaturation float64 `yaml:"avg_saturation" json:"avg_saturation"`
	// DominantHue is the lower edge in degrees of the most populated bucket.
	DominantHue int `yaml:"dominant_hue" json:"dominant_hue"`

	Hues [HueBuckets]int `yaml:"-" json:"-"`
}

type accum struct {
	r, g, b, bright, sat float64
	lit, total           int
	hues                 [HueBuckets]int
}

// Stats accumulates per-strip statistics over frames.
type Stats struct {
	strips [strip.Count]accum
	frames int
}

// Add folds one frame into the statistics.
func (s *Stats) Add(f *Frame) {
	s.frames++
	for _, id := range strip.All() {
		a := &s.strips[id]
		data := f.Strip(id)
		for i := 0; i+2 < len(data); i += 3 {
			r, g, b := data[i], data[i+1], data[i+2]
			h, sat, v := colorspace.RGBToHSV(r, g, b)

			a.r += float64(r)
			a.g += float64(g)
			a.b += float64(b)
			a.bright += float64(v)
			a.total++
			if v > 0 {
				a.sat += float64(sat) / colorspace.MaxSaturation
				a.hues[h*HueBuckets/colorspace.HueDegrees]++
				a.lit++
			}
		}
	}
}

// Frames returns the number of frames added.
func (s *Stats) Frames() int { return s.frames }

// Result returns the averages for every strip.
func (s *Stats) Result() [strip.Count]StripStats {
	var out [strip.Count]StripStats
	for _, id := range strip.All() {
		a := &s.strips[id]
		st := StripStats{
			Name:  id.Name(),
			LEDs:  id.LEDs(),
			Lit:   a.lit,
			Total: a.total,
			Hues:  a.hues,
		}
		if a.total > 0 {
			n := float64(a.total)
			st.AvgR = a.r / n
			st.AvgG = a.g / n
			st.AvgB = a.b / n
			st.AvgBrightness = a.bright / n
			st.AvgSaturation = a.sat / n
		}
		best := 0
		for i, c := range a.hues {
			if c > a.hues[best] {
				best = i
			}
		}
		st.DominantHue = best * colorspace.HueDegrees / HueBuckets
		out[id] = st
	}
	return out
}

// FrameStats returns the statistics of a single frame.
func FrameStats(f *Frame) [strip.Count]StripStats {
	var s Stats
	s.Add(f)
	return s.Result()
}

// Thresholds below which Suggest ignores a difference.
const (
	brightnessTolerance = 5
	saturationTolerance = 0.05
)

// Suggest proposes configuration keys that would move a strip from looking
// like next towards looking like ref, for example when a game update changed
// its lighting. It returns key=value strings, or nil when the two match.
func Suggest(ref, next StripStats) []string {
	var out []string

	if d := next.AvgBrightness - ref.AvgBrightness; (d > brightnessTolerance || d < -brightnessTolerance) && ref.AvgBrightness > 0 {
		ratio := 1.0
		if next.AvgBrightness > 0 {
			ratio = ref.AvgBrightness / next.AvgBrightness
		}
		out = append(out, fmt.Sprintf("%s=%d", config.KeyBrightness, clampPercent(ratio)))
	}

	if d := next.AvgSaturation - ref.AvgSaturation; (d > saturationTolerance || d < -saturationTolerance) && next.AvgSaturation > 0 {
		out = append(out, fmt.Sprintf("%s=%d", config.KeySaturation, clampPercent(ref.AvgSaturation/next.AvgSaturation)))
	}

	if ref.DominantHue != next.DominantHue {
		if shift := colorspace.WrapHue(ref.DominantHue - next.DominantHue); shift != 0 {
			out = append(out, fmt.Sprintf("%s=%d", config.KeyHueShift, shift))
		}
	}

	return out
}

func clampPercent(ratio float64) int {
	p := int(ratio * 100)
	return max(config.MinPercent, min(config.MaxPercent, p))
}
