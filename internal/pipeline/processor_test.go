package pipeline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/strip"
)

type countingSource struct {
	snap  *config.Snapshot
	ticks int
}

func (s *countingSource) Tick()                      { s.ticks++ }
func (s *countingSource) Snapshot() *config.Snapshot { return s.snap }

func TestProcess(t *testing.T) {
	snap := parseSnapshot(t, "[woofer]\nbrightness=50\n")

	tests := []struct {
		name      string
		index     uint32
		buf       []byte
		wantErr   error
		wantTicks int
		want      []byte
	}{
		{
			name:      "transforms active strip",
			index:     uint32(strip.Woofer),
			buf:       bytes.Repeat([]byte{200}, strip.Woofer.ByteLen()),
			wantTicks: 1,
			want:      bytes.Repeat([]byte{100}, strip.Woofer.ByteLen()),
		},
		{
			name:      "inactive strip untouched",
			index:     uint32(strip.Title),
			buf:       bytes.Repeat([]byte{200}, strip.Title.ByteLen()),
			wantTicks: 1,
			want:      bytes.Repeat([]byte{200}, strip.Title.ByteLen()),
		},
		{
			name:      "unknown index",
			index:     10,
			buf:       []byte{1, 2, 3},
			wantErr:   ErrUnknownStrip,
			wantTicks: 0,
			want:      []byte{1, 2, 3},
		},
		{
			name:      "short buffer",
			index:     uint32(strip.Woofer),
			buf:       bytes.Repeat([]byte{200}, strip.Woofer.ByteLen()-3),
			wantErr:   ErrBufferLength,
			wantTicks: 1,
			want:      bytes.Repeat([]byte{200}, strip.Woofer.ByteLen()-3),
		},
		{
			name:      "long buffer",
			index:     uint32(strip.Woofer),
			buf:       bytes.Repeat([]byte{200}, strip.MaxBytes),
			wantErr:   ErrBufferLength,
			wantTicks: 1,
			want:      bytes.Repeat([]byte{200}, strip.MaxBytes),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingSource{snap: snap}
			p := NewProcessor(src)

			err := p.Process(tt.index, tt.buf)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Process() error = %v, want %v", err, tt.wantErr)
			}
			if src.ticks != tt.wantTicks {
				t.Errorf("ticks = %d, want %d", src.ticks, tt.wantTicks)
			}
			if !bytes.Equal(tt.buf, tt.want) {
				t.Errorf("buffer = %v, want %v", tt.buf, tt.want)
			}
		})
	}
}

func TestNewFixedNil(t *testing.T) {
	f := NewFixed(nil)
	if f.Snapshot() != config.Identity() {
		t.Error("NewFixed(nil) should serve the identity snapshot")
	}
}

func TestProcessDoesNotAllocate(t *testing.T) {
	snap := parseSnapshot(t, `
[global]
gamma_r=2.2
hue_shift=45
saturation=120
brightness=90
`)
	p := NewProcessor(NewFixed(snap))
	buf := pattern(strip.CtrlPanel.LEDs())

	allocs := testing.AllocsPerRun(100, func() {
		if err := p.Process(uint32(strip.CtrlPanel), buf); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Errorf("Process() allocated %v times per run", allocs)
	}
}
