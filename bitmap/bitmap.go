// Package bitmap holds 8-bit palette-indexed source images.
package bitmap

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrInvalidSize = errors.New("bitmap: invalid size")
	ErrShortPixels = errors.New("bitmap: not enough pixel data")
)

// Bitmap is a palette-indexed image whose row stride equals its width.
type Bitmap struct {
	Pix    []uint8
	Width  int
	Height int
}

func New(width, height int) *Bitmap {
	return &Bitmap{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// FromPaletted copies the indices of src into a new Bitmap anchored at
// the origin.
func FromPaletted(src *image.Paletted) *Bitmap {
	r := src.Bounds()
	bm := New(r.Dx(), r.Dy())
	for y := 0; y < bm.Height; y++ {
		offset := src.PixOffset(r.Min.X, r.Min.Y+y)
		copy(bm.Pix[y*bm.Width:(y+1)*bm.Width], src.Pix[offset:offset+bm.Width])
	}
	return bm
}

func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.Width, bm.Height)
}

func (bm *Bitmap) At(x, y int) uint8 {
	return bm.Pix[y*bm.Width+x]
}

func (bm *Bitmap) Set(x, y int, i uint8) {
	bm.Pix[y*bm.Width+x] = i
}

// Row returns the indices of row y.
func (bm *Bitmap) Row(y int) []uint8 {
	return bm.Pix[y*bm.Width : (y+1)*bm.Width]
}

// Fill sets every pixel to i.
func (bm *Bitmap) Fill(i uint8) {
	for p, max := 0, len(bm.Pix); p < max; p++ {
		bm.Pix[p] = i
	}
}

// Validate checks that Pix is large enough for Width x Height.
func (bm *Bitmap) Validate() error {
	if bm.Width <= 0 || bm.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, bm.Width, bm.Height)
	}
	if len(bm.Pix) < bm.Width*bm.Height {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrShortPixels, len(bm.Pix), bm.Width*bm.Height)
	}
	return nil
}
