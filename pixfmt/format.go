// Package pixfmt packs 8-bit RGB triples into the truecolor pixel layouts
// a destination surface can report, and derives the bit-masks used to
// average packed pixels without unpacking them.
package pixfmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is reported for 24-bit layouts and unknown tags.
var ErrUnsupported = errors.New("pixfmt: unsupported pixel format")

// Format is a pixel layout tag. The low bits select the channel layout,
// the PC bit marks a layout stored byte-swapped relative to the host.
type Format uint8

const (
	Unknown Format = iota
	RGB555
	BGR555
	RGB565
	BGR565
	RGB888
	BGR888
	ARGB8888
	BGRA8888
	RGBA8888
)

// PC flags a format whose packed pixels are written with their bytes
// reversed.
const PC Format = 0x80

const (
	RGB555PC   = RGB555 | PC
	BGR555PC   = BGR555 | PC
	RGB565PC   = RGB565 | PC
	BGR565PC   = BGR565 | PC
	RGB888PC   = RGB888 | PC
	BGR888PC   = BGR888 | PC
	ARGB8888PC = ARGB8888 | PC
	BGRA8888PC = BGRA8888 | PC
	RGBA8888PC = RGBA8888 | PC
)

var layoutNames = [...]string{
	Unknown:  "unknown",
	RGB555:   "rgb555",
	BGR555:   "bgr555",
	RGB565:   "rgb565",
	BGR565:   "bgr565",
	RGB888:   "rgb888",
	BGR888:   "bgr888",
	ARGB8888: "argb8888",
	BGRA8888: "bgra8888",
	RGBA8888: "rgba8888",
}

// Layout strips the PC flag.
func (f Format) Layout() Format { return f &^ PC }

// Swapped reports whether pixels must be byte-reversed on store.
func (f Format) Swapped() bool { return f&PC != 0 }

// Depth returns the number of significant color bits, or 0 for an
// unknown tag.
func (f Format) Depth() int {
	switch f.Layout() {
	case RGB555, BGR555:
		return 15
	case RGB565, BGR565:
		return 16
	case RGB888, BGR888:
		return 24
	case ARGB8888, BGRA8888, RGBA8888:
		return 32
	}
	return 0
}

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	return (f.Depth() + 7) / 8
}

// Supported reports whether the scalers can write this format.
func (f Format) Supported() bool {
	switch f.Depth() {
	case 15, 16, 32:
		return true
	}
	return false
}

func (f Format) String() string {
	l := f.Layout()
	if int(l) >= len(layoutNames) {
		return fmt.Sprintf("Format(%#02x)", uint8(f))
	}
	if f.Swapped() {
		return layoutNames[l] + "-pc"
	}
	return layoutNames[l]
}

// ParseFormat resolves a format name such as "rgb565" or "argb8888-pc".
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	var flag Format
	if strings.HasSuffix(name, "-pc") {
		name = strings.TrimSuffix(name, "-pc")
		flag = PC
	}
	for i, n := range layoutNames {
		if i != int(Unknown) && n == name {
			return Format(i) | flag, nil
		}
	}
	return Unknown, fmt.Errorf("pixfmt: unknown format name %q", s)
}
