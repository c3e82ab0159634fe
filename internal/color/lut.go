package color

// unpremulLUT maps [alpha][channel] to the straight channel value.
// 64KB, built once; row 0 is all zeros. Entries equal unpremulChannel
// exactly, so the batch path and Unpremultiply never disagree.
var unpremulLUT [256][256]uint8

func init() {
	for a := 1; a < 256; a++ {
		for c := 0; c < 256; c++ {
			unpremulLUT[a][c] = unpremulChannel(uint8(c), uint8(a))
		}
	}
}

// UnpremultiplyRow converts premultiplied ARGB words in src into straight
// RGBA bytes in dst (4 bytes per pixel, R first).
// dst must hold at least 4*len(src) bytes; extra bytes are left untouched.
//
// Example:
//
//	row := make([]byte, 4*len(pixels))
//	color.UnpremultiplyRow(row, pixels)
func UnpremultiplyRow(dst []byte, src []uint32) {
	dst = dst[:4*len(src)]
	for i, p := range src {
		a := uint8(p >> 24)
		o := i * 4
		if a == 0 {
			dst[o], dst[o+1], dst[o+2], dst[o+3] = 0, 0, 0, 0
			continue
		}
		lut := &unpremulLUT[a]
		dst[o] = lut[uint8(p>>16)]
		dst[o+1] = lut[uint8(p>>8)]
		dst[o+2] = lut[uint8(p)]
		dst[o+3] = a
	}
}
