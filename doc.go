// Package xcursor extracts the frames of an Xcursor file as standalone
// raster images.
//
// # Overview
//
// An Xcursor file is a small chunk container: a header, a table of contents,
// and chunks holding either images (premultiplied ARGB with hotspot and
// animation delay) or text comments. xcursor parses the container, converts
// every image to straight alpha, and writes one image file per frame plus a
// text manifest.
//
// # Quick Start
//
//	import "github.com/gogpu/xcursor"
//
//	// Parse only
//	res, err := xcursor.ParseFile("/usr/share/icons/Adwaita/cursors/left_ptr")
//	if err != nil {
//		return err
//	}
//	for i, f := range res.Frames {
//		fmt.Printf("frame %d: %dx%d hot=(%d,%d)\n", i+1, f.Width, f.Height, f.XHot, f.YHot)
//	}
//
//	// Full extraction: frame_001.png ... and cursor_info.txt
//	ex := xcursor.NewExtractor(xcursor.WithWorkers(4))
//	report, err := ex.Extract(ctx, "left_ptr", "out/")
//
// # Errors
//
// Structural problems in the container are reported as *ParseError and
// match the sentinels ErrBadMagic, ErrUnsupportedVersion, ErrTruncatedInput,
// ErrInvalidOffset, ErrMalformedImageChunk and ErrMalformedComment through
// errors.Is. A failed parse never returns a partial result. Encoder failures
// are reported as *EncodeError naming the frame and path.
//
// # Policies
//
// Every image chunk is extracted, including several chunks with the same
// nominal size; no best-size selection takes place. A corrupt chunk aborts
// the whole parse. Comment text that is not valid UTF-8 is decoded with
// replacement characters instead of failing.
//
// # Logging
//
// The package is silent by default. See SetLogger.
package xcursor
