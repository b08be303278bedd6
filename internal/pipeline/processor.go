package pipeline

import (
	"errors"
	"fmt"

	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/strip"
)

var (
	// ErrUnknownStrip is returned for a strip index outside 0-9.
	ErrUnknownStrip = errors.New("unknown strip index")

	// ErrBufferLength is returned when a buffer does not match its strip's
	// fixed size.
	ErrBufferLength = errors.New("buffer length does not match strip")
)

// Source supplies the active snapshot. Tick is called once per processed
// strip and may install a new snapshot before Snapshot is read.
type Source interface {
	Tick()
	Snapshot() *config.Snapshot
}

// Fixed is a Source that always returns the same snapshot.
type Fixed struct {
	snap *config.Snapshot
}

// NewFixed returns a Source for s. A nil s means the identity snapshot.
func NewFixed(s *config.Snapshot) *Fixed {
	if s == nil {
		s = config.Identity()
	}
	return &Fixed{snap: s}
}

// Tick is a no-op.
func (f *Fixed) Tick() {}

// Snapshot returns the fixed snapshot.
func (f *Fixed) Snapshot() *config.Snapshot { return f.snap }

// Processor runs strip buffers through the active snapshot.
type Processor struct {
	src Source
}

// NewProcessor creates a processor reading snapshots from src.
func NewProcessor(src Source) *Processor {
	return &Processor{src: src}
}

// Process validates index and buf, ticks the source and transforms buf in
// place. On error buf is untouched and the source is not ticked for an
// unknown index.
func (p *Processor) Process(index uint32, buf []byte) error {
	id := strip.ID(index)
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrip, index)
	}

	p.src.Tick()

	if len(buf) != id.ByteLen() {
		return fmt.Errorf("%w: %s wants %d bytes, got %d", ErrBufferLength, id, id.ByteLen(), len(buf))
	}

	Apply(p.src.Snapshot().Strip(id), buf)
	return nil
}
