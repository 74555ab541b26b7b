package pixfmt

import "fmt"

// MakeColor packs r, g, b into f's native bit layout. The result is in
// host order; the PC flag only matters when the pixel is stored.
//
// MakeColor panics for 24-bit and unknown formats. Those are rejected
// when a scaler is constructed, so reaching them here is a bug.
func MakeColor(f Format, r, g, b uint8) uint32 {
	R, G, B := uint32(r), uint32(g), uint32(b)
	switch f.Layout() {
	case RGB555:
		return (R>>3)<<10 | (G>>3)<<5 | B>>3
	case BGR555:
		return (B>>3)<<10 | (G>>3)<<5 | R>>3
	case RGB565:
		return (R>>3)<<11 | (G>>2)<<5 | B>>3
	case BGR565:
		return (B>>3)<<11 | (G>>2)<<5 | R>>3
	case ARGB8888, BGRA8888:
		return R<<16 | G<<8 | B
	case RGBA8888:
		return R<<24 | G<<16 | B<<8
	}
	panic(fmt.Errorf("%w: %v", ErrUnsupported, f))
}

// Unpack is the inverse of MakeColor. Narrow channels are widened by bit
// replication, so full intensity maps back to 255.
func Unpack(f Format, p uint32) (r, g, b uint8) {
	switch f.Layout() {
	case RGB555:
		return expand5(p >> 10), expand5(p >> 5), expand5(p)
	case BGR555:
		return expand5(p), expand5(p >> 5), expand5(p >> 10)
	case RGB565:
		return expand5(p >> 11), expand6(p >> 5), expand5(p)
	case BGR565:
		return expand5(p), expand6(p >> 5), expand5(p >> 11)
	case ARGB8888, BGRA8888:
		return uint8(p >> 16), uint8(p >> 8), uint8(p)
	case RGBA8888:
		return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8)
	}
	panic(fmt.Errorf("%w: %v", ErrUnsupported, f))
}

func expand5(v uint32) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

func expand6(v uint32) uint8 {
	v &= 0x3f
	return uint8(v<<2 | v>>4)
}

// RGB24 packs a 0xRRGGBB palette word into f.
func RGB24(f Format, rgb uint32) uint32 {
	return MakeColor(f, uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}
