package screen

import (
	"image/color"

	"github.com/32bitkid/sai/pixfmt"
	clr "github.com/lucasb-eyer/go-colorful"
)

// Layout selects the 16-bit packing of Palette.Packed16.
type Layout uint8

const (
	Packed565 Layout = iota
	Packed555
)

// Format returns the pixel format Packed16 entries are encoded in.
func (l Layout) Format() pixfmt.Format {
	if l == Packed555 {
		return pixfmt.RGB555
	}
	return pixfmt.RGB565
}

// Palette is the pair of lookup tables a source index resolves through.
// Truecolor holds 0xRRGGBB words, Packed16 the same colors pre-packed in
// Layout. The owner may rewrite entries between frames; scalers read them
// on every Scale call.
type Palette struct {
	Truecolor [256]uint32
	Packed16  [256]uint16
	Layout    Layout
}

func NewPalette(layout Layout) *Palette {
	return &Palette{Layout: layout}
}

// SetRGB updates both tables for entry i.
func (p *Palette) SetRGB(i uint8, r, g, b uint8) {
	p.Truecolor[i] = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	p.Packed16[i] = uint16(pixfmt.MakeColor(p.Layout.Format(), r, g, b))
}

// SetRGB24 updates entry i from a 0xRRGGBB word.
func (p *Palette) SetRGB24(i uint8, rgb uint32) {
	p.SetRGB(i, uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// SetColors loads pal into the first len(pal) entries. Entries past 256
// are ignored.
func (p *Palette) SetColors(pal color.Palette) {
	for i, c := range pal {
		if i > 255 {
			break
		}
		r, g, b := rgb24(c)
		p.SetRGB(uint8(i), r, g, b)
	}
}

// Color returns entry i.
func (p *Palette) Color(i uint8) clr.Color {
	c, _ := clr.MakeColor(rgb24Color(p.Truecolor[i]))
	return c
}

// lookup resolves every entry into f. Packed16 is used directly when it
// is already in the destination layout.
func (p *Palette) lookup(f pixfmt.Format, lut *[256]uint32) {
	if f.Layout() == p.Layout.Format() {
		for i, c := range p.Packed16 {
			lut[i] = uint32(c)
		}
		return
	}
	for i, c := range p.Truecolor {
		lut[i] = pixfmt.RGB24(f, c)
	}
}

var DefaultPalettes = struct {
	EGA     color.Palette
	DB32EGA color.Palette
}{
	EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x0000AA),
		rgb24Color(0x00AA00),
		rgb24Color(0x00AAAA),
		rgb24Color(0xAA0000),
		rgb24Color(0xAA00AA),
		rgb24Color(0xAA5500),
		rgb24Color(0xAAAAAA),

		rgb24Color(0x555555),
		rgb24Color(0x5555FF),
		rgb24Color(0x55FF55),
		rgb24Color(0x55FFFF),
		rgb24Color(0xFF5555),
		rgb24Color(0xFF55FF),
		rgb24Color(0xFFFF55),
		rgb24Color(0xFFFFFF),
	},
	DB32EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x3f3f74),
		rgb24Color(0x4b692f),
		rgb24Color(0x306082),
		rgb24Color(0xac3232),
		rgb24Color(0x45283c),
		rgb24Color(0x8f563b),
		rgb24Color(0x847e87),

		rgb24Color(0x323c39),
		rgb24Color(0x639bff),
		rgb24Color(0x6abe30),
		rgb24Color(0x5fcde4),
		rgb24Color(0xd95763),
		rgb24Color(0xd77bba),
		rgb24Color(0xfbf236),
		rgb24Color(0xffffff),
	},
}
