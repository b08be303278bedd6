package capture

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// FileExtension is the customary extension for capture files.
const FileExtension = ".sdvxcap"

// RecordSize is the on-disk size of one record: a little-endian float64
// timestamp followed by the frame.
const RecordSize = 8 + FrameSize

// ErrShortFrame reports a capture file that ends in the middle of a record.
var ErrShortFrame = errors.New("capture: truncated record")

// Reader reads records from a capture file.
type Reader struct {
	r     *bufio.Reader
	count int
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, RecordSize*4)}
}

// Next returns the next record. It returns io.EOF after the last complete
// record and ErrShortFrame if the input stops partway through one.
func (r *Reader) Next() (Record, error) {
	var rec Record
	var ts [8]byte

	if _, err := io.ReadFull(r.r, ts[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return rec, io.EOF
		}
		return rec, r.wrap(err)
	}
	if _, err := io.ReadFull(r.r, rec.Frame[:]); err != nil {
		return rec, r.wrap(err)
	}

	rec.Timestamp = math.Float64frombits(binary.LittleEndian.Uint64(ts[:]))
	r.count++
	return rec, nil
}

func (r *Reader) wrap(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w after %d records", ErrShortFrame, r.count)
	}
	return fmt.Errorf("failed to read record %d: %w", r.count, err)
}

// ReadAll reads every record from r. On a truncated tail it returns the
// complete records together with ErrShortFrame.
func ReadAll(r io.Reader) ([]Record, error) {
	cr := NewReader(r)
	var recs []Record
	for {
		rec, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Writer writes records in capture file format. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, RecordSize*4)}
}

// Write appends one record.
func (w *Writer) Write(rec Record) error {
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], math.Float64bits(rec.Timestamp))
	if _, err := w.w.Write(ts[:]); err != nil {
		return fmt.Errorf("failed to write timestamp: %w", err)
	}
	if _, err := w.w.Write(rec.Frame[:]); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush capture: %w", err)
	}
	return nil
}
