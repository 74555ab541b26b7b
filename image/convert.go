// Package image moves frames between the scaler and the standard image
// types: decoding paletted sources and converting locked destinations
// back to RGBA for encoding.
package image

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/32bitkid/sai/pixfmt"
	"github.com/32bitkid/sai/screen"
	xdraw "golang.org/x/image/draw"
)

// ToRGBA decodes every pixel of l into a new RGBA image.
func ToRGBA(l screen.Lock) (*image.RGBA, error) {
	masks, err := pixfmt.NewMasks(l.Format)
	if err != nil {
		return nil, err
	}
	if bpp := l.Format.BytesPerPixel(); l.BytesPerPixel != bpp {
		return nil, fmt.Errorf("image: %v lock with %d bytes per pixel, expected %d", l.Format, l.BytesPerPixel, bpp)
	}

	dst := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	for y := 0; y < l.Height; y++ {
		row := l.Pix[y*l.Pitch:]
		for x := 0; x < l.Width; x++ {
			var p uint32
			if l.BytesPerPixel == 2 {
				p = uint32(binary.NativeEndian.Uint16(row[2*x:]))
			} else {
				p = binary.NativeEndian.Uint32(row[4*x:])
			}
			r, g, b := pixfmt.Unpack(l.Format, masks.Swap(p))
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return dst, nil
}

// ToPaletted returns img unchanged when it is already paletted, and
// otherwise dithers it onto pal.
func ToPaletted(img image.Image, pal color.Palette) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok {
		return p
	}
	r := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, r.Dx(), r.Dy()), pal)
	xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), img, r.Min)
	return dst
}
