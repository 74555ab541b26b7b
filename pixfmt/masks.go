package pixfmt

import (
	"fmt"
	"math/bits"
)

// Masks holds the per-format constants used to average packed pixels.
// A Masks value is derived once per destination format and never changes.
type Masks struct {
	Format Format

	// ColorMask clears the lowest bit of every channel, LowPixelMask
	// keeps only that bit.
	ColorMask    uint32
	LowPixelMask uint32

	// QColorMask and QLowPixelMask are the two-bit analogues used when
	// averaging four pixels.
	QColorMask    uint32
	QLowPixelMask uint32

	// SwapBytes is set for PC formats.
	SwapBytes bool

	// PixelsPerWord is 2 when two pixels fit one 32-bit store.
	PixelsPerWord int
}

// channelBits returns the red, green and blue widths of f.
func channelBits(f Format) (r, g, b uint) {
	switch f.Depth() {
	case 15:
		return 5, 5, 5
	case 16:
		return 5, 6, 5
	default:
		return 8, 8, 8
	}
}

// NewMasks derives the averaging masks for f from the smallest step each
// channel can represent.
func NewMasks(f Format) (Masks, error) {
	if !f.Supported() {
		return Masks{}, fmt.Errorf("%w: %v", ErrUnsupported, f)
	}

	rb, gb, bb := channelBits(f)
	ri, gi, bi := uint8(1)<<(8-rb), uint8(1)<<(8-gb), uint8(1)<<(8-bb)

	full := MakeColor(f, 0xff, 0xff, 0xff)
	low := MakeColor(f, ri, gi, bi)
	qlow := MakeColor(f, 3*ri, 3*gi, 3*bi)

	m := Masks{
		Format:        f,
		ColorMask:     full &^ low,
		LowPixelMask:  low,
		QColorMask:    full &^ qlow,
		QLowPixelMask: qlow,
		SwapBytes:     f.Swapped(),
		PixelsPerWord: 1,
	}
	if f.Depth() <= 16 {
		m.PixelsPerWord = 2
	}
	return m, nil
}

// Interpolate averages two packed pixels channel by channel. The shared
// low bit is added back so equal inputs return themselves exactly.
func (m Masks) Interpolate(a, b uint32) uint32 {
	return (a&m.ColorMask)>>1 + (b&m.ColorMask)>>1 + (a & b & m.LowPixelMask)
}

// QInterpolate averages four packed pixels channel by channel.
func (m Masks) QInterpolate(a, b, c, d uint32) uint32 {
	x := (a&m.QColorMask)>>2 +
		(b&m.QColorMask)>>2 +
		(c&m.QColorMask)>>2 +
		(d&m.QColorMask)>>2
	y := (a & m.QLowPixelMask) +
		(b & m.QLowPixelMask) +
		(c & m.QLowPixelMask) +
		(d & m.QLowPixelMask)
	return x + (y>>2)&m.QLowPixelMask
}

// Swap converts a host-order pixel to its stored form.
func (m Masks) Swap(p uint32) uint32 {
	if !m.SwapBytes {
		return p
	}
	if m.PixelsPerWord == 2 {
		return uint32(bits.ReverseBytes16(uint16(p)))
	}
	return bits.ReverseBytes32(p)
}
