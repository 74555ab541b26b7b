// Package sai upscales 8-bit palette-indexed frames to truecolor.
//
// Low resolution games of the EGA and VGA era drew into 320x200 indexed
// buffers. The scalers in package screen double such a frame with
// edge-adaptive interpolation (2xSaI, Super Eagle, AdvMame2x) so that
// diagonals stay smooth and flat areas stay flat, writing 15, 16 or 32
// bit pixels straight into a destination surface.
//
// Upscale wires the pieces together for one-shot conversions.
package sai

import (
	"fmt"
	"image"

	"github.com/32bitkid/sai/bitmap"
	saiimage "github.com/32bitkid/sai/image"
	"github.com/32bitkid/sai/pixfmt"
	"github.com/32bitkid/sai/screen"
)

// Upscale scales src with scaler id through an intermediate surface of
// the given format and returns the result as RGBA.
func Upscale(src *image.Paletted, id screen.ID, format pixfmt.Format) (*image.RGBA, error) {
	pal := screen.NewPalette(screen.Packed565)
	pal.SetColors(src.Palette)
	return UpscaleBitmap(bitmap.FromPaletted(src), pal, id, format)
}

// UpscaleBitmap is Upscale for a raw bitmap and palette.
func UpscaleBitmap(bm *bitmap.Bitmap, pal *screen.Palette, id screen.ID, format pixfmt.Format) (*image.RGBA, error) {
	n := id.Factor()
	dst := screen.NewMemorySurface(bm.Width*n, bm.Height*n, format, 1)

	s, err := screen.New(id, bm, pal, dst)
	if err != nil {
		return nil, err
	}
	if err := s.Prepare(dst); err != nil {
		return nil, fmt.Errorf("sai: %w", err)
	}
	s.Scale(0, 0, 0, 0, bm.Width, bm.Height)
	s.Finish()

	return saiimage.ToRGBA(dst.Front())
}
