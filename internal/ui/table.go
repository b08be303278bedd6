package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/sdvxrgb/internal/capture"
	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/strip"
)

// LEDBlock is the glyph for one LED in a strip preview.
const LEDBlock = "█"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// value renders v muted when it equals the identity value.
func value(v string, identity bool) string {
	if identity {
		return IdentityValueStyle.Render(v)
	}
	return ActiveValueStyle.Render(v)
}

func formatGamma(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}

func colorCell(c config.OptionalRGB) string {
	if !c.Set {
		return IdentityValueStyle.Render("-")
	}
	return Swatch(c.Color.R, c.Color.G, c.Color.B) + " " + c.Color.Hex()
}

func transformRow(name, leds string, t *config.StripTransform) []string {
	p := t.Params()
	marker := IdentityValueStyle.Render(InactiveMarker)
	if t.Active() {
		marker = lipgloss.NewStyle().Foreground(SuccessColor).Render(ActiveMarker)
	}
	gammaIdentity := p.GammaR == config.DefaultGamma && p.GammaG == config.DefaultGamma && p.GammaB == config.DefaultGamma
	return []string{
		marker,
		name,
		leds,
		value(p.ChannelOrder.String(), p.ChannelOrder.String() == "RGB"),
		value(fmt.Sprintf("%s/%s/%s", formatGamma(p.GammaR), formatGamma(p.GammaG), formatGamma(p.GammaB)), gammaIdentity),
		value(strconv.Itoa(p.HueShift), p.HueShift == config.DefaultHueShift),
		value(strconv.Itoa(p.Saturation)+"%", p.Saturation == config.DefaultSaturation),
		value(strconv.Itoa(p.Brightness)+"%", p.Brightness == config.DefaultBrightness),
		colorCell(p.Static),
		colorCell(p.Gradient),
	}
}

// RenderSnapshot renders the resolved parameters of every strip, preceded by
// the global section they inherit from.
func RenderSnapshot(s *config.Snapshot) string {
	t := newTable("", "STRIP", "LEDS", "ORDER", "GAMMA R/G/B", "HUE", "SAT", "BRI", "STATIC", "GRADIENT")
	t.Row(transformRow(config.GlobalSection, "", s.Global())...)
	for _, id := range strip.All() {
		t.Row(transformRow(id.Name(), strconv.Itoa(id.LEDs()), s.Strip(id))...)
	}
	return t.Render()
}

// RenderLEDs renders a strip buffer as one coloured block per LED. When the
// strip has more LEDs than maxCells, LEDs are sampled evenly.
func RenderLEDs(data []byte, maxCells int) string {
	n := len(data) / 3
	if n == 0 || maxCells <= 0 {
		return ""
	}
	cells := min(n, maxCells)

	var b strings.Builder
	for c := 0; c < cells; c++ {
		i := c * n / cells * 3
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", data[i], data[i+1], data[i+2]))).
			Render(LEDBlock))
	}
	return b.String()
}

// brightnessBar renders an average channel maximum as a bar.
func brightnessBar(avg float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(PrimaryColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return bar.ViewAs(avg / 255)
}

func avgSwatch(s capture.StripStats) string {
	return Swatch(uint8(s.AvgR+0.5), uint8(s.AvgG+0.5), uint8(s.AvgB+0.5))
}

// RenderStats renders per-strip capture statistics.
func RenderStats(stats [strip.Count]capture.StripStats) string {
	t := newTable("STRIP", "AVG", "R", "G", "B", "BRIGHTNESS", "SAT", "HUE", "LIT")
	for _, s := range stats {
		t.Row(
			s.Name,
			avgSwatch(s),
			fmt.Sprintf("%.1f", s.AvgR),
			fmt.Sprintf("%.1f", s.AvgG),
			fmt.Sprintf("%.1f", s.AvgB),
			brightnessBar(s.AvgBrightness, 12)+fmt.Sprintf(" %5.1f", s.AvgBrightness),
			fmt.Sprintf("%.2f", s.AvgSaturation),
			fmt.Sprintf("%d°", s.DominantHue),
			fmt.Sprintf("%d/%d", s.Lit, s.Total),
		)
	}
	return t.Render()
}

// RenderComparison renders the per-strip difference between two sets of
// statistics, with suggested configuration keys.
func RenderComparison(before, after [strip.Count]capture.StripStats) string {
	t := newTable("STRIP", "BEFORE", "AFTER", "ΔR", "ΔG", "ΔB", "ΔBRIGHT", "ΔSAT", "HUE", "SUGGEST")
	for i := range before {
		o, n := before[i], after[i]
		suggest := strings.Join(capture.Suggest(o, n), " ")
		if suggest == "" {
			suggest = IdentityValueStyle.Render("-")
		}
		t.Row(
			o.Name,
			avgSwatch(o),
			avgSwatch(n),
			fmt.Sprintf("%+.1f", n.AvgR-o.AvgR),
			fmt.Sprintf("%+.1f", n.AvgG-o.AvgG),
			fmt.Sprintf("%+.1f", n.AvgB-o.AvgB),
			fmt.Sprintf("%+.1f", n.AvgBrightness-o.AvgBrightness),
			fmt.Sprintf("%+.2f", n.AvgSaturation-o.AvgSaturation),
			fmt.Sprintf("%d°→%d°", o.DominantHue, n.DominantHue),
			suggest,
		)
	}
	return t.Render()
}
