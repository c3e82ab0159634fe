package xcursor

// ChunkType is the raw type field of a TOC entry or chunk header.
type ChunkType uint32

const (
	// ChunkComment holds a text comment.
	ChunkComment ChunkType = 0xfffe0001
	// ChunkImage holds one cursor image.
	ChunkImage ChunkType = 0xfffd0002
)

// String returns "image", "comment" or "unknown".
func (t ChunkType) String() string {
	switch t {
	case ChunkImage:
		return "image"
	case ChunkComment:
		return "comment"
	default:
		return "unknown"
	}
}

// TocEntry locates one chunk in the file.
type TocEntry struct {
	Type     ChunkType
	Subtype  uint32 // nominal size for images, comment kind for comments
	Position uint32 // absolute byte offset of the chunk header
}

// CommentKind classifies a comment chunk.
type CommentKind uint32

const (
	CommentCopyright CommentKind = 1
	CommentLicense   CommentKind = 2
	CommentOther     CommentKind = 3
)

// String returns the kind name.
func (k CommentKind) String() string {
	switch k {
	case CommentCopyright:
		return "copyright"
	case CommentLicense:
		return "license"
	default:
		return "other"
	}
}

// classifyComment maps a raw comment subtype to a kind. Unknown subtypes
// are Other.
func classifyComment(subtype uint32) CommentKind {
	switch k := CommentKind(subtype); k {
	case CommentCopyright, CommentLicense:
		return k
	default:
		return CommentOther
	}
}

// Comment is a text comment embedded in the file.
type Comment struct {
	Kind CommentKind
	Type uint32 // raw subtype as stored in the file
	Text string
}

// Frame is one decoded cursor image.
//
// Pixels holds Width*Height premultiplied ARGB words (alpha in the high
// byte), row-major with the top row first. Frames returned by Parse are
// never modified by this package.
type Frame struct {
	Size    uint32 // nominal size
	Width   uint32
	Height  uint32
	XHot    uint32
	YHot    uint32
	Delay   uint32 // milliseconds
	Version uint32 // image chunk version
	Pixels  []uint32
}

// ParseResult is everything extracted from one container.
// Frames and Comments keep file (TOC) order.
type ParseResult struct {
	Version  uint32
	Frames   []*Frame
	Comments []Comment
}

// Sizes returns the distinct nominal sizes in first-seen order.
func (r *ParseResult) Sizes() []uint32 {
	seen := make(map[uint32]bool, len(r.Frames))
	var sizes []uint32
	for _, f := range r.Frames {
		if !seen[f.Size] {
			seen[f.Size] = true
			sizes = append(sizes, f.Size)
		}
	}
	return sizes
}
