package capture

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/muurk/sdvxrgb/internal/strip"
)

func fill(f *Frame, id strip.ID, r, g, b byte) {
	f.PublishStrip(id, bytes.Repeat([]byte{r, g, b}, id.LEDs()))
}

func TestFrameStats(t *testing.T) {
	var f Frame
	fill(&f, strip.Title, 255, 0, 0)
	fill(&f, strip.Woofer, 0, 0, 128)

	// half the ctrl panel lit green
	panel := f.Strip(strip.CtrlPanel)
	for i := 0; i < len(panel)/2; i += 3 {
		panel[i+1] = 200
	}

	stats := FrameStats(&f)

	title := stats[strip.Title]
	if title.Name != "title" || title.LEDs != 74 || title.Lit != 74 || title.Total != 74 {
		t.Errorf("title counts = %+v", title)
	}
	if title.AvgR != 255 || title.AvgG != 0 || title.AvgBrightness != 255 || title.AvgSaturation != 1 {
		t.Errorf("title averages = %+v", title)
	}
	if title.DominantHue != 0 {
		t.Errorf("title DominantHue = %d, want 0", title.DominantHue)
	}

	woofer := stats[strip.Woofer]
	if woofer.AvgB != 128 || woofer.DominantHue != 240 {
		t.Errorf("woofer = %+v", woofer)
	}

	ctrl := stats[strip.CtrlPanel]
	if ctrl.Lit != 47 || ctrl.DominantHue != 120 {
		t.Errorf("ctrl_panel Lit, DominantHue = %d, %d, want 47, 120", ctrl.Lit, ctrl.DominantHue)
	}
	if ctrl.AvgG != 100 {
		t.Errorf("ctrl_panel AvgG = %v, want 100", ctrl.AvgG)
	}

	dark := stats[strip.VUnit]
	if dark.Lit != 0 || dark.AvgBrightness != 0 || dark.AvgSaturation != 0 {
		t.Errorf("v_unit should be dark, got %+v", dark)
	}
}

func TestStatsAccumulate(t *testing.T) {
	var on, off Frame
	fill(&on, strip.Title, 200, 200, 200)

	var s Stats
	s.Add(&on)
	s.Add(&off)

	if s.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", s.Frames())
	}
	title := s.Result()[strip.Title]
	if title.Total != 148 || title.Lit != 74 || title.AvgR != 100 {
		t.Errorf("title = %+v", title)
	}
}

func TestSuggest(t *testing.T) {
	base := StripStats{AvgBrightness: 200, AvgSaturation: 0.8, DominantHue: 120}

	tests := []struct {
		name string
		next StripStats
		want []string
	}{
		{"identical", base, nil},
		{"within tolerance", StripStats{AvgBrightness: 203, AvgSaturation: 0.78, DominantHue: 120}, nil},
		{"brighter", StripStats{AvgBrightness: 250, AvgSaturation: 0.8, DominantHue: 120}, []string{"brightness=80"}},
		{"went dark", StripStats{AvgBrightness: 0, AvgSaturation: 0.8, DominantHue: 120}, []string{"brightness=100"}},
		{"dimmer clamps", StripStats{AvgBrightness: 50, AvgSaturation: 0.8, DominantHue: 120}, []string{"brightness=200"}},
		{"washed out", StripStats{AvgBrightness: 200, AvgSaturation: 0.4, DominantHue: 120}, []string{"saturation=200"}},
		{"hue moved", StripStats{AvgBrightness: 200, AvgSaturation: 0.8, DominantHue: 180}, []string{"hue_shift=300"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(base, tt.next); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest() = %v, want %v", got, tt.want)
			}
		})
	}
}
