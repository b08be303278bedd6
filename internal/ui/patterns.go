package ui

import (
	"github.com/muurk/sdvxrgb/internal/capture"
	"github.com/muurk/sdvxrgb/internal/colorspace"
	"github.com/muurk/sdvxrgb/internal/strip"
)

// Pattern generates a test frame for previewing a configuration.
type Pattern struct {
	Name  string
	Frame func() capture.Frame
}

// Patterns are the built-in preview patterns.
var Patterns = []Pattern{
	{"rainbow", rainbowFrame},
	{"white", func() capture.Frame { return solidFrame(255, 255, 255) }},
	{"ramp", rampFrame},
	{"primaries", primariesFrame},
}

func eachLED(fn func(id strip.ID, i, n int) (uint8, uint8, uint8)) capture.Frame {
	var f capture.Frame
	for _, id := range strip.All() {
		buf := f.Strip(id)
		n := id.LEDs()
		for i := 0; i < n; i++ {
			buf[i*3], buf[i*3+1], buf[i*3+2] = fn(id, i, n)
		}
	}
	return f
}

func solidFrame(r, g, b uint8) capture.Frame {
	return eachLED(func(strip.ID, int, int) (uint8, uint8, uint8) { return r, g, b })
}

// rainbowFrame sweeps the full hue circle across every strip.
func rainbowFrame() capture.Frame {
	return eachLED(func(_ strip.ID, i, n int) (uint8, uint8, uint8) {
		return colorspace.HSVToRGB(i*colorspace.HueDegrees/n, colorspace.MaxSaturation, colorspace.MaxValue)
	})
}

// rampFrame fades each strip from black to white.
func rampFrame() capture.Frame {
	return eachLED(func(_ strip.ID, i, n int) (uint8, uint8, uint8) {
		v := uint8(0)
		if n > 1 {
			v = uint8(i * 255 / (n - 1))
		}
		return v, v, v
	})
}

// primariesFrame repeats red, green and blue.
func primariesFrame() capture.Frame {
	return eachLED(func(_ strip.ID, i, _ int) (uint8, uint8, uint8) {
		switch i % 3 {
		case 0:
			return 255, 0, 0
		case 1:
			return 0, 255, 0
		default:
			return 0, 0, 255
		}
	})
}
