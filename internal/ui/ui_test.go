package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/sdvxrgb/internal/capture"
	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/strip"
)

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Config Check", "sdvxrgb check",
		Param{Key: "Config", Value: "/games/sdvx/sdvxrgb.ini"},
		Param{Key: "Modified", Value: "never"},
	).SetWidth(80).Render()

	for _, want := range []string{"CONFIG CHECK", "sdvxrgb check", "Config:", "/games/sdvx/sdvxrgb.ini", "Modified:"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Config:") > strings.Index(out, "Modified:") {
		t.Error("params should render in the given order")
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Configuration loaded", Param{Key: "Active strips", Value: "3"}),
			want:   []string{"OK", "Configuration loaded", "Active strips:", "3"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Configuration unreadable", errors.New("permission denied"), "check file permissions"),
			want:   []string{"FAILED", "permission denied", "check file permissions"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No configuration file").AddDetail("Path", "x.ini"),
			want:   []string{"WARNING", "No configuration file", "x.ini"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("result missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderSnapshot(t *testing.T) {
	snap, err := config.Parse([]byte("[title]\nstatic_color=8000FF\nbrightness=80\n"), time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	out := RenderSnapshot(snap)
	for _, want := range []string{"global", "8000FF", "80%", "GAMMA R/G/B"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
	for _, id := range strip.All() {
		if !strings.Contains(out, id.Name()) {
			t.Errorf("table missing strip %s", id)
		}
	}
}

func TestRenderLEDs(t *testing.T) {
	tests := []struct {
		name     string
		leds     int
		maxCells int
		want     int
	}{
		{"fits", 12, 40, 12},
		{"sampled", 94, 40, 40},
		{"empty", 0, 40, 0},
		{"no room", 12, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderLEDs(bytes.Repeat([]byte{10, 20, 30}, tt.leds), tt.maxCells)
			if got := strings.Count(out, LEDBlock); got != tt.want {
				t.Errorf("rendered %d LEDs, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderStats(t *testing.T) {
	var f capture.Frame
	f.PublishStrip(strip.Woofer, bytes.Repeat([]byte{0, 0, 200}, strip.Woofer.LEDs()))
	stats := capture.FrameStats(&f)

	out := RenderStats(stats)
	if !strings.Contains(out, "woofer") || !strings.Contains(out, "240°") || !strings.Contains(out, "14/14") {
		t.Errorf("stats table missing woofer row:\n%s", out)
	}

	var g capture.Frame
	g.PublishStrip(strip.Woofer, bytes.Repeat([]byte{0, 0, 100}, strip.Woofer.LEDs()))
	cmp := RenderComparison(stats, capture.FrameStats(&g))
	if !strings.Contains(cmp, "brightness=200") {
		t.Errorf("comparison should suggest doubling woofer brightness:\n%s", cmp)
	}
}

func TestPatterns(t *testing.T) {
	for _, p := range Patterns {
		t.Run(p.Name, func(t *testing.T) {
			f := p.Frame()
			if f == (capture.Frame{}) {
				t.Error("pattern should light at least one LED")
			}
		})
	}

	white := Patterns[1].Frame()
	for i, b := range white {
		if b != 255 {
			t.Fatalf("white byte %d = %d", i, b)
		}
	}
}
