package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/muurk/sdvxrgb/internal/strip"
)

// Document is the resolved, tool-friendly form of a snapshot.
type Document struct {
	Source  string      `yaml:"source,omitempty" json:"source,omitempty"`
	ModTime string      `yaml:"mod_time,omitempty" json:"mod_time,omitempty"`
	Global  StripView   `yaml:"global" json:"global"`
	Strips  []StripView `yaml:"strips" json:"strips"`
}

// StripView is one resolved section.
type StripView struct {
	Name          string  `yaml:"name" json:"name"`
	LEDs          int     `yaml:"leds,omitempty" json:"leds,omitempty"`
	Active        bool    `yaml:"active" json:"active"`
	ChannelOrder  string  `yaml:"channel_order" json:"channel_order"`
	GammaR        float64 `yaml:"gamma_r" json:"gamma_r"`
	GammaG        float64 `yaml:"gamma_g" json:"gamma_g"`
	GammaB        float64 `yaml:"gamma_b" json:"gamma_b"`
	HueShift      int     `yaml:"hue_shift" json:"hue_shift"`
	Saturation    int     `yaml:"saturation" json:"saturation"`
	Brightness    int     `yaml:"brightness" json:"brightness"`
	StaticColor   string  `yaml:"static_color,omitempty" json:"static_color,omitempty"`
	GradientColor string  `yaml:"gradient_color,omitempty" json:"gradient_color,omitempty"`
}

func newStripView(name string, leds int, t *StripTransform) StripView {
	p := t.Params()
	v := StripView{
		Name:         name,
		LEDs:         leds,
		Active:       t.Active(),
		ChannelOrder: p.ChannelOrder.String(),
		GammaR:       p.GammaR,
		GammaG:       p.GammaG,
		GammaB:       p.GammaB,
		HueShift:     p.HueShift,
		Saturation:   p.Saturation,
		Brightness:   p.Brightness,
	}
	if p.Static.Set {
		v.StaticColor = p.Static.Color.Hex()
	}
	if p.Gradient.Set {
		v.GradientColor = p.Gradient.Color.Hex()
	}
	return v
}

// NewDocument describes s. source is informational and may be empty.
func NewDocument(s *Snapshot, source string) Document {
	doc := Document{
		Source: source,
		Global: newStripView(GlobalSection, 0, s.Global()),
		Strips: make([]StripView, 0, strip.Count),
	}
	if !s.ModTime().IsZero() {
		doc.ModTime = s.ModTime().Format(time.RFC3339)
	}
	for _, id := range strip.All() {
		doc.Strips = append(doc.Strips, newStripView(id.Name(), id.LEDs(), s.Strip(id)))
	}
	return doc
}

// YAML renders the document as YAML.
func (d Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

// JSON renders the document as indented JSON.
func (d Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// WriteINI writes s as a configuration file in which every strip section is
// spelled out in full. Reading the output back resolves to the same
// parameters.
func WriteINI(w io.Writer, s *Snapshot) error {
	f := ini.Empty(loadOptions)

	if err := writeSection(f, GlobalSection, s.Global()); err != nil {
		return err
	}
	for _, id := range strip.All() {
		if err := writeSection(f, id.Name(), s.Strip(id)); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func writeSection(f *ini.File, name string, t *StripTransform) error {
	sec, err := f.NewSection(name)
	if err != nil {
		return fmt.Errorf("failed to create section %s: %w", name, err)
	}

	p := t.Params()
	keys := []struct {
		key, value string
	}{
		{KeyChannelOrder, p.ChannelOrder.String()},
		{KeyGammaR, formatGamma(p.GammaR)},
		{KeyGammaG, formatGamma(p.GammaG)},
		{KeyGammaB, formatGamma(p.GammaB)},
		{KeyHueShift, strconv.Itoa(p.HueShift)},
		{KeySaturation, strconv.Itoa(p.Saturation)},
		{KeyBrightness, strconv.Itoa(p.Brightness)},
	}
	if p.Static.Set {
		keys = append(keys, struct{ key, value string }{KeyStaticColor, p.Static.Color.Hex()})
	}
	if p.Gradient.Set {
		keys = append(keys, struct{ key, value string }{KeyGradientColor, p.Gradient.Color.Hex()})
	}

	for _, kv := range keys {
		if _, err := sec.NewKey(kv.key, kv.value); err != nil {
			return fmt.Errorf("failed to write %s.%s: %w", name, kv.key, err)
		}
	}
	return nil
}

func formatGamma(g float64) string {
	return strconv.FormatFloat(g, 'g', -1, 64)
}
