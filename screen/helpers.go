package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// rgb24 converts any color to an 8-bit-per-channel triple.
func rgb24(c color.Color) (r, g, b uint8) {
	cc, _ := clr.MakeColor(c)
	return cc.Clamped().RGB255()
}

type rgb24Color uint32

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func clampInt(min, max, i int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
