// Package source loads cursor files into memory, transparently undoing
// gzip or zstd compression.
//
// Cursor themes are sometimes shipped compressed (cursor.gz, cursor.zst).
// The compression is detected from the content, not the file name.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MaxSize caps the decompressed size of an input file.
const MaxSize = 256 << 20

// ErrTooLarge is returned when the (decompressed) input exceeds MaxSize.
var ErrTooLarge = errors.New("source: input too large")

// Compression identifies the outer encoding of an input file.
type Compression uint8

const (
	// None means the data is used as-is.
	None Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is a Zstandard frame.
	Zstd
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect reports the compression of data from its leading bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	default:
		return None
	}
}

// Load reads the file at path and decompresses it if needed.
func Load(path string) ([]byte, Compression, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, None, err
	}
	defer func() { _ = f.Close() }()

	raw, err := readLimited(f)
	if err != nil {
		return nil, None, fmt.Errorf("source: read %s: %w", path, err)
	}

	data, c, err := Decode(raw)
	if err != nil {
		return nil, c, fmt.Errorf("source: %s: %w", path, err)
	}
	return data, c, nil
}

// Decode undoes the compression detected in raw. Uncompressed input is
// returned unchanged.
func Decode(raw []byte) ([]byte, Compression, error) {
	c := Detect(raw)
	switch c {
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		defer func() { _ = zr.Close() }()

		data, err := readLimited(zr)
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		return data, c, nil

	case Zstd:
		dec, err := zstd.NewReader(bytes.NewReader(raw), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()

		data, err := readLimited(dec)
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		return data, c, nil

	default:
		return raw, None, nil
	}
}

// readLimited reads r fully, failing once MaxSize is exceeded.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
