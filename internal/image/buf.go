// Package image holds straight-alpha frame buffers and the raster codecs
// used to write them out.
//
// Buffers are always 8-bit RGBA, non-premultiplied, row-major with the top
// row first. Pixels arrive as premultiplied Xcursor ARGB words and are
// converted on fill.
package image

import (
	"errors"
	"image"

	"github.com/gogpu/xcursor/internal/color"
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrPixelCount is returned when a pixel slice does not match width*height.
	ErrPixelCount = errors.New("image: pixel count does not match dimensions")
)

// bytesPerPixel is fixed: R, G, B, A.
const bytesPerPixel = 4

// ImageBuf is a straight-alpha RGBA8 pixel buffer.
//
// Thread safety: ImageBuf is not safe for concurrent mutation. Each frame
// writer owns its own buffer.
type ImageBuf struct {
	data   []byte
	width  int
	height int
}

// NewImageBuf allocates a zeroed (fully transparent) buffer.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ImageBuf{
		data:   make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// FromARGBPremul builds a buffer from premultiplied ARGB words in row-major
// order, unpremultiplying every pixel.
func FromARGBPremul(width, height int, pixels []uint32) (*ImageBuf, error) {
	b, err := NewImageBuf(width, height)
	if err != nil {
		return nil, err
	}
	if err := b.FillARGBPremul(pixels); err != nil {
		return nil, err
	}
	return b, nil
}

// FillARGBPremul overwrites the buffer from premultiplied ARGB words.
// len(pixels) must equal Width()*Height().
func (b *ImageBuf) FillARGBPremul(pixels []uint32) error {
	if len(pixels) != b.width*b.height {
		return ErrPixelCount
	}
	for y := range b.height {
		color.UnpremultiplyRow(b.RowBytes(y), pixels[y*b.width:(y+1)*b.width])
	}
	return nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.width * bytesPerPixel
}

// RowBytes returns the bytes of row y, or nil if y is out of range.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	s := b.Stride()
	return b.data[y*s : (y+1)*s]
}

// rgbaAt returns the straight color at (x, y), or zeros when out of bounds.
func (b *ImageBuf) rgbaAt(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := y*b.Stride() + x*bytesPerPixel
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// Clear sets all pixels to transparent black.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// ToStdImage wraps the buffer as a non-premultiplied *image.NRGBA.
// The returned image shares memory with the buffer.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
