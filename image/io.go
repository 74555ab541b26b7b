package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var (
	// ErrNotPaletted is returned by Load for truecolor images.
	ErrNotPaletted = errors.New("image: not a paletted image")

	// ErrUnknownExtension is returned by SaveFile for unsupported names.
	ErrUnknownExtension = errors.New("image: unknown file extension")
)

// Decode reads a PNG, GIF or BMP image.
func Decode(r io.Reader) (image.Image, string, error) {
	img, kind, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: %w", err)
	}
	return img, kind, nil
}

// Load reads a palette-indexed PNG, GIF or 8-bit BMP.
func Load(r io.Reader) (*image.Paletted, error) {
	img, kind, err := Decode(r)
	if err != nil {
		return nil, err
	}
	p, ok := img.(*image.Paletted)
	if !ok {
		return nil, fmt.Errorf("%w: %s %T", ErrNotPaletted, kind, img)
	}
	return p, nil
}

func LoadFile(path string) (*image.Paletted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Save encodes img as "png" or "bmp".
func Save(w io.Writer, img image.Image, kind string) error {
	switch strings.ToLower(kind) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownExtension, kind)
}

// SaveFile picks the encoder from the extension of path.
func SaveFile(path string, img image.Image) error {
	kind := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(kind) {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExtension, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, img, kind); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
