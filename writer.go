package xcursor

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/xcursor/internal/image"
)

// Format selects the raster format frames are written in.
type Format = image.Codec

// Supported output formats.
const (
	FormatPNG  = image.CodecPNG
	FormatBMP  = image.CodecBMP
	FormatTIFF = image.CodecTIFF
)

// ParseFormat resolves a format name ("png", "bmp", "tiff"/"tif").
func ParseFormat(name string) (Format, error) {
	return image.ParseCodec(name)
}

// FrameWriter writes frames as frame_NNN.<ext> files into one directory.
//
// Thread safety: WriteFrame is safe for concurrent use as long as every call
// uses a distinct index.
type FrameWriter struct {
	dir    string
	format Format
	pool   *image.Pool
}

// NewFrameWriter returns a writer for dir. The directory must exist.
func NewFrameWriter(dir string, format Format) *FrameWriter {
	return &FrameWriter{
		dir:    dir,
		format: format,
		pool:   image.NewPool(4),
	}
}

// FrameFileName returns the file name for a 1-based frame index.
func FrameFileName(index int, format Format) string {
	return fmt.Sprintf("frame_%03d.%s", index, format.Ext())
}

// Path returns the output path of a 1-based frame index.
func (w *FrameWriter) Path(index int) string {
	return filepath.Join(w.dir, FrameFileName(index, w.format))
}

// WriteFrame unpremultiplies f into a scratch buffer and encodes it to
// Path(index). f is not modified. Any failure is an *EncodeError and leaves
// no file behind.
func (w *FrameWriter) WriteFrame(index int, f *Frame) (string, error) {
	path := w.Path(index)

	buf, err := w.pool.Get(int(f.Width), int(f.Height))
	if err != nil {
		return "", &EncodeError{Frame: index, Path: path, Err: err}
	}
	defer w.pool.Put(buf)

	if err := buf.FillARGBPremul(f.Pixels); err != nil {
		return "", &EncodeError{Frame: index, Path: path, Err: err}
	}
	if err := buf.SaveFile(path, w.format); err != nil {
		return "", &EncodeError{Frame: index, Path: path, Err: err}
	}
	return path, nil
}
