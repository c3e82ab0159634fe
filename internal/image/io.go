package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when a codec name is not recognized.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Codec selects the raster format frames are written in.
// PNG and TIFF always carry 8 bits per channel RGBA without a palette.
type Codec uint8

const (
	// CodecPNG writes non-interlaced RGBA PNG. This is the default.
	CodecPNG Codec = iota

	// CodecBMP writes 32-bit BMP with an alpha channel. x/image/bmp drops
	// to 24-bit when every pixel is opaque.
	CodecBMP

	// CodecTIFF writes Deflate-compressed TIFF with unassociated alpha.
	CodecTIFF

	codecCount
)

// ParseCodec resolves a codec from its name or file extension,
// case-insensitively ("png", ".tif", "TIFF", ...).
func ParseCodec(name string) (Codec, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png":
		return CodecPNG, nil
	case "bmp":
		return CodecBMP, nil
	case "tif", "tiff":
		return CodecTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case CodecPNG:
		return "png"
	case CodecBMP:
		return "bmp"
	case CodecTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Ext returns the file extension without the leading dot.
func (c Codec) Ext() string {
	if c == CodecTIFF {
		return "tif"
	}
	return c.String()
}

// IsValid reports whether c is a known codec.
func (c Codec) IsValid() bool {
	return c < codecCount
}

// alphaImage is an NRGBA image that never reports itself opaque, so
// image/png keeps the alpha channel (color type 6) for opaque frames.
type alphaImage struct {
	*image.NRGBA
}

func (alphaImage) Opaque() bool { return false }

// Encode writes img to w in the codec's format.
func (c Codec) Encode(w io.Writer, img image.Image) error {
	var err error
	switch c {
	case CodecPNG:
		if m, ok := img.(*image.NRGBA); ok {
			img = alphaImage{m}
		}
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		err = enc.Encode(w, img)
	case CodecBMP:
		err = bmp.Encode(w, img)
	case CodecTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: codec %d", ErrUnsupportedFormat, c)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", c, err)
	}
	return nil
}

// Encode writes the buffer to w using codec c.
func (b *ImageBuf) Encode(w io.Writer, c Codec) error {
	return c.Encode(w, b.ToStdImage())
}

// SaveFile creates path and encodes the buffer into it.
// On failure the partially written file is removed.
func (b *ImageBuf) SaveFile(path string, c Codec) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("image: close file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return b.Encode(f, c)
}
