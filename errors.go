package xcursor

import (
	"errors"
	"fmt"
)

// Parse error sentinels. A *ParseError matches exactly one of them via
// errors.Is.
var (
	// ErrBadMagic means the input does not start with a valid Xcursor header.
	ErrBadMagic = errors.New("xcursor: bad magic")

	// ErrUnsupportedVersion means the file version is not 1.x.
	ErrUnsupportedVersion = errors.New("xcursor: unsupported version")

	// ErrTruncatedInput means a read ran past the end of the data, or a
	// declared count or length cannot fit in what remains.
	ErrTruncatedInput = errors.New("xcursor: truncated input")

	// ErrInvalidOffset means a chunk position points outside the data.
	ErrInvalidOffset = errors.New("xcursor: invalid offset")

	// ErrMalformedImageChunk means an image chunk header is inconsistent.
	ErrMalformedImageChunk = errors.New("xcursor: malformed image chunk")

	// ErrMalformedComment means a comment chunk header is inconsistent.
	ErrMalformedComment = errors.New("xcursor: malformed comment chunk")
)

// Extraction errors.
var (
	// ErrNoFrames is returned by Extract when a valid file holds no images.
	ErrNoFrames = errors.New("xcursor: no images found in cursor file")

	// ErrNotDirectory is returned when the output path exists but is not a
	// directory.
	ErrNotDirectory = errors.New("xcursor: output path is not a directory")
)

// ParseErrorKind classifies structural parse failures.
type ParseErrorKind uint8

const (
	KindBadMagic ParseErrorKind = iota
	KindUnsupportedVersion
	KindTruncatedInput
	KindInvalidOffset
	KindMalformedImageChunk
	KindMalformedComment
)

// String returns the kind name.
func (k ParseErrorKind) String() string {
	switch k {
	case KindBadMagic:
		return "bad magic"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindTruncatedInput:
		return "truncated input"
	case KindInvalidOffset:
		return "invalid offset"
	case KindMalformedImageChunk:
		return "malformed image chunk"
	case KindMalformedComment:
		return "malformed comment chunk"
	default:
		return "unknown"
	}
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case KindBadMagic:
		return ErrBadMagic
	case KindUnsupportedVersion:
		return ErrUnsupportedVersion
	case KindTruncatedInput:
		return ErrTruncatedInput
	case KindInvalidOffset:
		return ErrInvalidOffset
	case KindMalformedImageChunk:
		return ErrMalformedImageChunk
	case KindMalformedComment:
		return ErrMalformedComment
	default:
		return nil
	}
}

// ParseError reports a structural problem in an Xcursor container.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int64 // byte offset where the problem was detected
	Err    error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("xcursor: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("xcursor: %s at offset %d: %v", e.Kind, e.Offset, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// EncodeError reports a failure writing one frame.
type EncodeError struct {
	Frame int // 1-based frame index
	Path  string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("xcursor: failed to save frame %d to %s: %v", e.Frame, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EncodeError) Unwrap() error { return e.Err }
