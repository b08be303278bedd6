package hook

import (
	"go.uber.org/zap"

	"github.com/muurk/sdvxrgb/internal/logging"
	"github.com/muurk/sdvxrgb/internal/pipeline"
	"github.com/muurk/sdvxrgb/internal/strip"
)

// Forwarder hands strip data on to the game's original update function.
type Forwarder interface {
	Forward(index uint32, data []byte)
}

// ForwarderFunc adapts a function to Forwarder.
type ForwarderFunc func(index uint32, data []byte)

// Forward calls f.
func (f ForwarderFunc) Forward(index uint32, data []byte) { f(index, data) }

// Publisher receives every transformed strip, typically the shared region
// read by external controllers.
type Publisher interface {
	PublishStrip(id strip.ID, data []byte)
}

// Hook sits between the game and its LED output. It is not safe for
// concurrent use; the game calls it from a single thread.
type Hook struct {
	proc     *pipeline.Processor
	forward  Forwarder
	publish  Publisher
	scratch  [strip.MaxBytes]byte
	rejected uint64
}

// New creates a hook that transforms through src and forwards to fwd.
// pub may be nil.
func New(src pipeline.Source, fwd Forwarder, pub Publisher) *Hook {
	return &Hook{
		proc:    pipeline.NewProcessor(src),
		forward: fwd,
		publish: pub,
	}
}

// SetTapeLedData handles one strip update from the game.
//
// For a known strip the first ByteLen bytes of data are copied, transformed,
// published and forwarded; data itself is never written. Unknown indices are
// forwarded untouched.
func (h *Hook) SetTapeLedData(index uint32, data []byte) {
	id := strip.ID(index)
	if !id.Valid() {
		h.forward.Forward(index, data)
		return
	}

	n := id.ByteLen()
	if len(data) < n {
		h.reject(index, data, pipeline.ErrBufferLength)
		return
	}

	buf := h.scratch[:n]
	copy(buf, data[:n])

	if err := h.proc.Process(index, buf); err != nil {
		h.reject(index, data, err)
		return
	}

	if h.publish != nil {
		h.publish.PublishStrip(id, buf)
	}
	h.forward.Forward(index, buf)
}

// reject passes data through unchanged after a boundary check failed. Only
// the first rejection is logged.
func (h *Hook) reject(index uint32, data []byte, err error) {
	h.rejected++
	if h.rejected == 1 {
		logging.Debug("Strip update passed through",
			zap.Uint32("index", index),
			zap.Int("length", len(data)),
			zap.Error(err),
		)
	}
	h.forward.Forward(index, data)
}

// Rejected returns how many updates were passed through because they failed
// the boundary checks.
func (h *Hook) Rejected() uint64 { return h.rejected }
