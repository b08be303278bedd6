package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/sdvxrgb/internal/capture"
	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/pipeline"
	"github.com/muurk/sdvxrgb/internal/strip"
)

func TestStripInput(t *testing.T) {
	tests := []struct {
		name    string
		id      strip.ID
		hex     string
		fill    string
		want    []byte
		wantErr bool
	}{
		{
			name: "fill",
			id:   strip.UpperLeftSpeaker,
			fill: "102030",
			want: bytes.Repeat([]byte{0x10, 0x20, 0x30}, 12),
		},
		{
			name: "hex with whitespace",
			id:   strip.Woofer,
			hex:  strings.Repeat("ff 00 00\n", 14),
			want: bytes.Repeat([]byte{0xff, 0, 0}, 14),
		},
		{name: "bad fill", id: strip.Woofer, fill: "12345", wantErr: true},
		{name: "bad hex", id: strip.Woofer, hex: "zz", wantErr: true},
		{name: "short hex", id: strip.Woofer, hex: "ff0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stripInput(tt.id, tt.hex, tt.fill)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %x, want %x", got, tt.want)
			}
		})
	}

	_, err := stripInput(strip.Woofer, "ff0000", "")
	if !errors.Is(err, pipeline.ErrBufferLength) {
		t.Errorf("short buffer error = %v, want ErrBufferLength", err)
	}
}

func TestWriteEncoded(t *testing.T) {
	v := applyOutput{Strip: "woofer", Output: "00"}

	var buf bytes.Buffer
	if err := writeEncoded(&buf, v, formatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Errorf("JSON output should end with a newline: %q", buf.String())
	}

	buf.Reset()
	if err := writeEncoded(&buf, v, formatYAML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "strip: woofer") {
		t.Errorf("YAML output = %q", buf.String())
	}

	if err := writeEncoded(&buf, v, "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestWriteEncodedDocument(t *testing.T) {
	doc := config.NewDocument(config.Identity(), "/games/sdvx/sdvxrgb.ini")

	tests := []struct {
		format string
		render func() ([]byte, error)
	}{
		{formatYAML, doc.YAML},
		{formatJSON, doc.JSON},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			want, err := tt.render()
			if err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err := writeEncoded(&buf, doc, tt.format); err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSuffix(buf.String(), "\n"); got != strings.TrimSuffix(string(want), "\n") {
				t.Errorf("writeEncoded(%s) = %q, want the document's own encoding %q", tt.format, got, want)
			}
		})
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("sdvxrgb %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestApplyCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdvxrgb.ini")
	if err := os.WriteFile(path, []byte("[woofer]\nbrightness=50\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "apply", "--config", path, "--format", formatJSON, "--strip", "woofer", "--fill", "FF0000")

	var got applyOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !got.Active {
		t.Error("woofer should be active")
	}
	if want := strings.Repeat("7f0000", 14); got.Output != want {
		t.Errorf("output = %s, want %s", got.Output, want)
	}
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "sdvxrgb.ini")
	if err := os.WriteFile(cfg, []byte("[title]\nstatic_color=00FF00\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var frame capture.Frame
	frame.PublishStrip(strip.Title, bytes.Repeat([]byte{200, 0, 0}, strip.Title.LEDs()))
	in := filepath.Join(dir, "in"+capture.FileExtension)
	if err := writeCapture(in, []capture.Record{{Timestamp: 1, Frame: frame}, {Timestamp: 2, Frame: frame}}); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out"+capture.FileExtension)
	execute(t, "replay", in, "--config", cfg, "--format", formatJSON, "--out", outPath)
	t.Cleanup(func() { replayOut = "" })

	recs, err := readCapture(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("replayed %d frames, want 2", len(recs))
	}
	title := recs[1].Frame.Strip(strip.Title)
	if title[0] != 0 || title[1] != 200 || title[2] != 0 {
		t.Errorf("title LED = %v, want static green at the input value", title[:3])
	}
	if recs[1].Timestamp != 2 {
		t.Errorf("timestamp = %v, want 2", recs[1].Timestamp)
	}
}
