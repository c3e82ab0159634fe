// Package byteio provides a bounds-checked sequential reader over an
// in-memory byte buffer.
//
// All reads are explicit about byte order and never depend on the host
// architecture. A failed read leaves the cursor where it was.
package byteio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Reader errors.
var (
	// ErrTruncated is returned when a read would run past the end of the buffer.
	ErrTruncated = errors.New("byteio: truncated input")

	// ErrInvalidOffset is returned when seeking outside [0, Len()].
	ErrInvalidOffset = errors.New("byteio: invalid offset")
)

// Reader reads fixed-size values from a byte slice.
//
// Thread safety: Reader is not safe for concurrent use. A Reader is meant to
// be owned by a single parse.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes after the cursor.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// SeekTo moves the cursor to an absolute offset.
// Seeking to Len() is allowed; any read from there fails with ErrTruncated.
func (r *Reader) SeekTo(offset int64) error {
	if offset < 0 || offset > int64(len(r.data)) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, offset, len(r.data))
	}
	r.pos = int(offset)
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// ReadBytes returns the next n bytes. The returned slice aliases the buffer
// and must not be modified.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU32BE reads a big-endian uint32.
func (r *Reader) ReadU32BE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU32sLE fills dst with consecutive little-endian uint32 values.
// Either all of dst is filled or nothing is consumed.
func (r *Reader) ReadU32sLE(dst []uint32) error {
	if len(dst) > (len(r.data)-r.pos)/4 {
		return fmt.Errorf("%w: need %d words at offset %d, have %d bytes",
			ErrTruncated, len(dst), r.pos, r.Remaining())
	}
	src := r.data[r.pos:]
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
	r.pos += len(dst) * 4
	return nil
}

// need checks that n more bytes can be read.
func (r *Reader) need(n int) error {
	if n < 0 || n > len(r.data)-r.pos {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.pos, r.Remaining())
	}
	return nil
}
