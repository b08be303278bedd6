package capture

import (
	"math"
	"sync"
	"time"

	"github.com/muurk/sdvxrgb/internal/strip"
)

// FrameSize is the size of the shared LED region: every strip back to back.
const FrameSize = strip.RegionSize

// Frame is one copy of the shared LED region.
type Frame [FrameSize]byte

// Strip returns the part of f holding id's LEDs. The slice aliases f.
func (f *Frame) Strip(id strip.ID) []byte {
	off := id.Offset()
	return f[off : off+id.ByteLen() : off+id.ByteLen()]
}

// PublishStrip copies data into id's part of the frame. Extra bytes are
// ignored; a short data leaves the tail of the strip as it was.
func (f *Frame) PublishStrip(id strip.ID, data []byte) {
	copy(f.Strip(id), data)
}

// Region is a Frame shared between the strip update path, which publishes
// strips, and readers that take whole-frame copies.
type Region struct {
	mu    sync.RWMutex
	frame Frame
}

// PublishStrip copies data into id's part of the region.
func (r *Region) PublishStrip(id strip.ID, data []byte) {
	r.mu.Lock()
	r.frame.PublishStrip(id, data)
	r.mu.Unlock()
}

// Frame returns a copy of the whole region.
func (r *Region) Frame() Frame {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frame
}

// Record is one frame of a capture file.
type Record struct {
	// Timestamp is seconds since the Unix epoch.
	Timestamp float64
	Frame     Frame
}

// NewRecord stamps f with t.
func NewRecord(t time.Time, f Frame) Record {
	return Record{
		Timestamp: float64(t.UnixNano()) / float64(time.Second),
		Frame:     f,
	}
}

// Time converts the timestamp to a time.Time.
func (r Record) Time() time.Time {
	sec, frac := math.Modf(r.Timestamp)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}
