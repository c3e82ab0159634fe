package xcursor

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/gogpu/xcursor/internal/byteio"
	"github.com/gogpu/xcursor/internal/source"
)

// On-disk constants. Every field is a little-endian uint32.
const (
	fileMagic     = 0x72756358 // "Xcur"
	fileHeaderLen = 16
	fileMajor     = 1
	maxTocEntries = 0x10000
	tocEntryLen   = 12

	chunkHeaderLen = 16

	imageHeaderLen = 36
	imageMaxSize   = 0x7fff

	commentHeaderLen = 20
	commentMaxLen    = 0x100000
)

// ParseFile loads path (plain, gzip or zstd) and parses it.
// I/O failures are wrapped with the path; structural
// problems as *ParseError.
func ParseFile(path string) (*ParseResult, error) {
	data, c, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("xcursor: read %s: %w", path, err)
	}
	if c != source.None {
		Logger().Debug("xcursor: decompressed input", slog.String("path", path),
			slog.String("compression", c.String()), slog.Int("bytes", len(data)))
	}
	return Parse(data)
}

// Parse decodes an Xcursor container.
//
// Every image chunk becomes a Frame and every comment chunk a Comment, both
// in table-of-contents order. Chunks of unknown type are skipped. Any
// structural problem aborts the parse with a *ParseError; no partial result
// is returned. A valid file without images yields an empty Frames slice.
func Parse(data []byte) (*ParseResult, error) {
	p := &parser{
		r:     byteio.NewReader(data),
		log:   Logger(),
		sizes: make(map[uint32]int),
	}
	res, err := p.parse()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// parser holds the state of one Parse call.
type parser struct {
	r     *byteio.Reader
	log   *slog.Logger
	sizes map[uint32]int // nominal size -> first frame index
}

func (p *parser) parse() (*ParseResult, error) {
	version, toc, err := p.readHeader()
	if err != nil {
		return nil, err
	}

	res := &ParseResult{Version: version}
	for i, e := range toc {
		switch e.Type {
		case ChunkImage:
			f, err := p.readImage(e)
			if err != nil {
				return nil, err
			}
			if first, dup := p.sizes[f.Size]; dup {
				p.log.Debug("xcursor: keeping duplicate nominal size",
					slog.Int("toc", i), slog.Uint64("size", uint64(f.Size)),
					slog.Int("first_frame", first+1))
			} else {
				p.sizes[f.Size] = len(res.Frames)
			}
			res.Frames = append(res.Frames, f)

		case ChunkComment:
			c, err := p.readComment(e)
			if err != nil {
				return nil, err
			}
			res.Comments = append(res.Comments, c)

		default:
			if err := p.checkUnknown(e); err != nil {
				return nil, err
			}
			p.log.Debug("xcursor: skipping unknown chunk",
				slog.Int("toc", i), slog.String("type", fmt.Sprintf("%#08x", uint32(e.Type))),
				slog.Uint64("position", uint64(e.Position)))
		}
	}
	return res, nil
}

// readHeader validates the file header and reads the table of contents.
func (p *parser) readHeader() (uint32, []TocEntry, error) {
	magic, err := p.r.ReadU32LE()
	if err != nil {
		return 0, nil, p.wrap(err)
	}
	if magic != fileMagic {
		return 0, nil, p.fail(KindBadMagic, 0, fmt.Errorf("got %#08x", magic))
	}

	var hdr [3]uint32 // header length, version, ntoc
	for i := range hdr {
		if hdr[i], err = p.r.ReadU32LE(); err != nil {
			return 0, nil, p.wrap(err)
		}
	}
	headerLen, version, ntoc := hdr[0], hdr[1], hdr[2]

	if headerLen < fileHeaderLen {
		return 0, nil, p.fail(KindBadMagic, 4, fmt.Errorf("header length %d", headerLen))
	}
	if version>>16 != fileMajor {
		return 0, nil, p.fail(KindUnsupportedVersion, 8, fmt.Errorf("version %#08x", version))
	}
	if err := p.r.Skip(int(int64(headerLen) - fileHeaderLen)); err != nil {
		return 0, nil, p.wrap(err)
	}

	// The count is untrusted: check it against the bytes actually present
	// before allocating or reading anything.
	if ntoc > maxTocEntries || int64(ntoc)*tocEntryLen > int64(p.r.Remaining()) {
		return 0, nil, p.fail(KindTruncatedInput, int64(p.r.Offset()),
			fmt.Errorf("table of contents declares %d entries, %d bytes remain", ntoc, p.r.Remaining()))
	}

	toc := make([]TocEntry, ntoc)
	for i := range toc {
		var f [3]uint32
		for j := range f {
			if f[j], err = p.r.ReadU32LE(); err != nil {
				return 0, nil, p.wrap(err)
			}
		}
		toc[i] = TocEntry{Type: ChunkType(f[0]), Subtype: f[1], Position: f[2]}
	}
	return version, toc, nil
}

// readChunkHeader seeks to e and checks that the chunk agrees with its TOC
// entry. It returns the chunk's header length and version.
func (p *parser) readChunkHeader(e TocEntry, malformed ParseErrorKind) (uint32, uint32, error) {
	if err := p.r.SeekTo(int64(e.Position)); err != nil {
		return 0, 0, p.wrap(err)
	}

	var f [4]uint32 // header length, type, subtype, version
	for i := range f {
		var err error
		if f[i], err = p.r.ReadU32LE(); err != nil {
			return 0, 0, p.wrap(err)
		}
	}
	if ChunkType(f[1]) != e.Type || f[2] != e.Subtype {
		return 0, 0, p.fail(malformed, int64(e.Position),
			fmt.Errorf("chunk type/subtype %#08x/%d does not match table of contents %#08x/%d",
				f[1], f[2], uint32(e.Type), e.Subtype))
	}
	return f[0], f[3], nil
}

// checkUnknown bounds-checks a chunk whose type is not understood. Its
// layout is unknown, so the declared extent is its header length, never
// less than the generic 16-byte chunk header.
func (p *parser) checkUnknown(e TocEntry) error {
	if err := p.r.SeekTo(int64(e.Position)); err != nil {
		return p.wrap(err)
	}
	headerLen, err := p.r.ReadU32LE()
	if err != nil {
		return p.wrap(err)
	}
	if err := p.r.Skip(int(max(headerLen, chunkHeaderLen)) - 4); err != nil {
		return p.wrap(err)
	}
	return nil
}

func (p *parser) readImage(e TocEntry) (*Frame, error) {
	headerLen, version, err := p.readChunkHeader(e, KindMalformedImageChunk)
	if err != nil {
		return nil, err
	}
	if headerLen < imageHeaderLen {
		return nil, p.fail(KindMalformedImageChunk, int64(e.Position),
			fmt.Errorf("image header length %d", headerLen))
	}

	var f [5]uint32 // width, height, xhot, yhot, delay
	for i := range f {
		if f[i], err = p.r.ReadU32LE(); err != nil {
			return nil, p.wrap(err)
		}
	}
	frame := &Frame{
		Size:    e.Subtype,
		Width:   f[0],
		Height:  f[1],
		XHot:    f[2],
		YHot:    f[3],
		Delay:   f[4],
		Version: version,
	}

	switch {
	case frame.Width == 0 || frame.Height == 0 || frame.Width > imageMaxSize || frame.Height > imageMaxSize:
		return nil, p.fail(KindMalformedImageChunk, int64(e.Position),
			fmt.Errorf("dimensions %dx%d", frame.Width, frame.Height))
	case frame.XHot >= frame.Width || frame.YHot >= frame.Height:
		return nil, p.fail(KindMalformedImageChunk, int64(e.Position),
			fmt.Errorf("hotspot (%d,%d) outside %dx%d", frame.XHot, frame.YHot, frame.Width, frame.Height))
	}

	// Both sides are bounded by imageMaxSize, so the product fits in 32 bits;
	// the byte length is computed in 64.
	count := int64(frame.Width) * int64(frame.Height)
	if count*4 > int64(p.r.Remaining()) {
		return nil, p.fail(KindTruncatedInput, int64(p.r.Offset()),
			fmt.Errorf("image %dx%d needs %d bytes, %d remain", frame.Width, frame.Height, count*4, p.r.Remaining()))
	}

	frame.Pixels = make([]uint32, count)
	if err := p.r.ReadU32sLE(frame.Pixels); err != nil {
		return nil, p.wrap(err)
	}
	return frame, nil
}

func (p *parser) readComment(e TocEntry) (Comment, error) {
	headerLen, _, err := p.readChunkHeader(e, KindMalformedComment)
	if err != nil {
		return Comment{}, err
	}
	if headerLen < commentHeaderLen {
		return Comment{}, p.fail(KindMalformedComment, int64(e.Position),
			fmt.Errorf("comment header length %d", headerLen))
	}

	n, err := p.r.ReadU32LE()
	if err != nil {
		return Comment{}, p.wrap(err)
	}
	if n > commentMaxLen {
		return Comment{}, p.fail(KindMalformedComment, int64(e.Position),
			fmt.Errorf("comment length %d exceeds %d", n, commentMaxLen))
	}
	raw, err := p.r.ReadBytes(int(n))
	if err != nil {
		return Comment{}, p.wrap(err)
	}

	return Comment{
		Kind: classifyComment(e.Subtype),
		Type: e.Subtype,
		Text: p.decodeText(raw, e),
	}, nil
}

// decodeText returns raw as UTF-8, replacing invalid sequences with U+FFFD.
func (p *parser) decodeText(raw []byte, e TocEntry) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	p.log.Debug("xcursor: comment is not valid UTF-8, decoding lossily",
		slog.Uint64("position", uint64(e.Position)))

	// The UTF-8 decoder substitutes U+FFFD and never fails on bad input.
	text, _ := unicode.UTF8.NewDecoder().Bytes(raw)
	return string(text)
}

// fail builds a *ParseError.
func (p *parser) fail(kind ParseErrorKind, offset int64, err error) error {
	return &ParseError{Kind: kind, Offset: offset, Err: err}
}

// wrap converts a byteio error into a *ParseError at the current offset.
func (p *parser) wrap(err error) error {
	kind := KindTruncatedInput
	if errors.Is(err, byteio.ErrInvalidOffset) {
		kind = KindInvalidOffset
	}
	return p.fail(kind, int64(p.r.Offset()), err)
}
