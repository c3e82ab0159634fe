package xcursor

import (
	"bytes"
	"fmt"
	"io"
)

// DefaultManifestName is the manifest file written next to the frames.
const DefaultManifestName = "cursor_info.txt"

// WriteManifest writes the human-readable description of res to w:
// a header naming source and the frame count, a tab-separated frame table
// (Frame, Size, Width, Height, XHot, YHot, Delay) numbered from 1, and a
// Comments section when res has comments.
func WriteManifest(w io.Writer, source string, res *ParseResult) error {
	var b bytes.Buffer

	fmt.Fprintf(&b, "Cursor File: %s\n", source)
	fmt.Fprintf(&b, "Number of frames: %d\n", len(res.Frames))
	b.WriteString("\nFrame Details:\n")
	b.WriteString("Frame\tSize\tWidth\tHeight\tXHot\tYHot\tDelay\n")

	for i, f := range res.Frames {
		fmt.Fprintf(&b, "%d\t%dx%d\t%d\t%d\t%d\t%d\t%d\n",
			i+1, f.Size, f.Size, f.Width, f.Height, f.XHot, f.YHot, f.Delay)
	}

	if len(res.Comments) > 0 {
		b.WriteString("\nComments:\n")
		for _, c := range res.Comments {
			fmt.Fprintf(&b, "Type %d: %s\n", c.Type, c.Text)
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

// Manifest returns the manifest text for res.
func Manifest(source string, res *ParseResult) string {
	var b bytes.Buffer
	_ = WriteManifest(&b, source, res)
	return b.String()
}
