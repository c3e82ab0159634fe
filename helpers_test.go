package xcursor

import "encoding/binary"

// testChunk is a chunk to be laid out by buildCursor. body is everything
// after the 16-byte chunk header.
type testChunk struct {
	typ       ChunkType
	subtype   uint32
	headerLen uint32
	version   uint32
	body      []byte
}

func le32(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
	return b
}

func imageChunk(size, w, h, xhot, yhot, delay uint32, pixels []uint32) testChunk {
	body := le32(w, h, xhot, yhot, delay)
	body = append(body, le32(pixels...)...)
	return testChunk{typ: ChunkImage, subtype: size, headerLen: imageHeaderLen, version: 1, body: body}
}

func commentChunk(kind uint32, text string) testChunk {
	body := le32(uint32(len(text)))
	body = append(body, text...)
	return testChunk{typ: ChunkComment, subtype: kind, headerLen: commentHeaderLen, version: 1, body: body}
}

// rawChunk declares its whole body as header, so the chunk's extent is known
// even when its type is not.
func rawChunk(typ ChunkType, subtype uint32, body []byte) testChunk {
	return testChunk{typ: typ, subtype: subtype, headerLen: chunkHeaderLen + uint32(len(body)), version: 1, body: body}
}

// buildCursor lays out a version 1.0 file: header, TOC, then the chunks in
// order.
func buildCursor(chunks ...testChunk) []byte {
	pos := uint32(fileHeaderLen + tocEntryLen*len(chunks))

	out := le32(fileMagic, fileHeaderLen, 0x00010000, uint32(len(chunks)))
	var bodies []byte
	for _, c := range chunks {
		out = append(out, le32(uint32(c.typ), c.subtype, pos)...)
		chunk := le32(c.headerLen, uint32(c.typ), c.subtype, c.version)
		chunk = append(chunk, c.body...)
		bodies = append(bodies, chunk...)
		pos += uint32(len(chunk))
	}
	return append(out, bodies...)
}

// solid returns n copies of p.
func solid(n int, p uint32) []uint32 {
	px := make([]uint32, n)
	for i := range px {
		px[i] = p
	}
	return px
}

// sampleCursor is a 2x2 frame (delay 0, hot 0,0), a 4x4 frame (delay 100,
// hot 1,1) and a copyright comment.
func sampleCursor() []byte {
	return buildCursor(
		imageChunk(2, 2, 2, 0, 0, 0, []uint32{0xffff0000, 0x80008000, 0x00000000, 0xffffffff}),
		imageChunk(4, 4, 4, 1, 1, 100, solid(16, 0x40404040)),
		commentChunk(1, "(c) The Cursor Authors"),
	)
}
