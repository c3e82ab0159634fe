// Package color converts Xcursor pixels between premultiplied and straight
// alpha.
//
// Xcursor stores each pixel as a 32-bit ARGB word (alpha in the high byte)
// with the color channels already scaled by alpha/255. Output codecs expect
// straight (non-premultiplied) RGBA, so every pixel goes through
// Unpremultiply before encoding.
package color

// ARGB is a decomposed 8-bit-per-channel pixel.
type ARGB struct {
	A, R, G, B uint8
}

// SplitARGB decomposes a packed a<<24|r<<16|g<<8|b word.
func SplitARGB(p uint32) ARGB {
	return ARGB{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// PackRGBA packs straight-alpha channels as r<<24|g<<16|b<<8|a, which is the
// byte order of image.NRGBA pixels when stored big-endian.
func PackRGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpremultiply converts one premultiplied ARGB word into a straight-alpha
// RGBA word (see PackRGBA for the output layout).
//
// A zero alpha yields 0. Otherwise each color channel becomes
// (c*255 + a/2) / a, clamped to 255. Only integer arithmetic is used, so the
// result is identical on every platform.
func Unpremultiply(p uint32) uint32 {
	px := SplitARGB(p)
	if px.A == 0 {
		return 0
	}
	return PackRGBA(
		unpremulChannel(px.R, px.A),
		unpremulChannel(px.G, px.A),
		unpremulChannel(px.B, px.A),
		px.A,
	)
}

// unpremulChannel reverses premultiplication of one channel. a must be > 0.
// Malformed input with c > a would exceed 255; the clamp keeps it in range.
func unpremulChannel(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
