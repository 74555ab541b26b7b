package screen

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/32bitkid/sai/bitmap"
	"github.com/32bitkid/sai/pixfmt"
)

var (
	// ErrUnknownScaler is returned by New for ids outside the registry.
	ErrUnknownScaler = errors.New("screen: unknown scaler")

	// ErrFormatChanged is returned by Prepare when the locked destination
	// no longer matches the format the scaler was built for. The scaler
	// must be recreated.
	ErrFormatChanged = errors.New("screen: destination format changed")
)

// Scaler converts an indexed source bitmap into a truecolor destination.
//
// A frame is Prepare, any number of Scale calls, then Finish. Scale
// outside that bracket does nothing.
type Scaler interface {
	ID() ID
	Factor() int

	// Prepare locks dst for this frame. On error the scaler stays
	// unprepared; the caller may retry next frame.
	Prepare(dst Surface) error

	// Scale converts the w*h source rectangle at (srcX, srcY) into the
	// destination at (dstX, dstY). The caller keeps the rectangle inside
	// the source and destination.
	Scale(srcX, srcY, dstX, dstY, w, h int)

	// Finish releases the destination. It is safe to call repeatedly.
	Finish()
}

type kernel func(e *engine, sx, sy, dx, dy, w, h int)

var kernels = [...]kernel{
	None:       scaleNormal,
	Point:      scalePoint,
	AdvMame2x:  windowed(advMame2x),
	SuperEagle: windowed(superEagle),
	Super2xSaI: windowed(super2xSaI),
}

type engine struct {
	id     ID
	src    *bitmap.Bitmap
	pal    *Palette
	masks  pixfmt.Masks
	kernel kernel

	dst    Surface
	lock   Lock
	locked bool

	lut [256]uint32
}

// New builds a scaler for src and pal writing into surfaces of dst's
// format. Unsupported destination formats fail with
// pixfmt.ErrUnsupported; such a configuration cannot be used at all.
func New(id ID, src *bitmap.Bitmap, pal *Palette, dst Surface) (Scaler, error) {
	if id < 0 || int(id) >= len(kernels) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScaler, id)
	}
	if src == nil || pal == nil || dst == nil {
		return nil, errors.New("screen: missing source, palette or destination")
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	masks, err := pixfmt.NewMasks(dst.Format())
	if err != nil {
		return nil, fmt.Errorf("screen: %v scaler: %w", id, err)
	}

	Logger().Debug("scaler created",
		"scaler", id.String(),
		"format", masks.Format.String(),
		"width", src.Width,
		"height", src.Height)

	return &engine{
		id:     id,
		src:    src,
		pal:    pal,
		masks:  masks,
		kernel: kernels[id],
	}, nil
}

func (e *engine) ID() ID      { return e.id }
func (e *engine) Factor() int { return e.id.Factor() }

func (e *engine) Prepare(dst Surface) error {
	e.Finish()
	if dst == nil {
		return errors.New("screen: prepare: no destination")
	}

	lock, err := dst.Lock()
	if err != nil {
		Logger().Warn("prepare failed", "scaler", e.id.String(), "err", err)
		return fmt.Errorf("screen: prepare: %w", err)
	}

	if lock.Format != e.masks.Format || lock.BytesPerPixel != e.masks.Format.BytesPerPixel() {
		dst.Unlock()
		Logger().Warn("prepare failed", "scaler", e.id.String(),
			"format", lock.Format.String(), "expected", e.masks.Format.String())
		return fmt.Errorf("%w: %v, built for %v", ErrFormatChanged, lock.Format, e.masks.Format)
	}

	e.dst, e.lock, e.locked = dst, lock, true
	return nil
}

func (e *engine) Scale(srcX, srcY, dstX, dstY, w, h int) {
	if !e.locked || w <= 0 || h <= 0 {
		return
	}
	e.pal.lookup(e.masks.Format, &e.lut)
	e.kernel(e, srcX, srcY, dstX, dstY, w, h)
}

func (e *engine) Finish() {
	if !e.locked {
		return
	}
	e.dst.Unlock()
	e.dst, e.lock, e.locked = nil, Lock{}, false
}

var hostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// put stores one pixel at byte offset off.
func (e *engine) put(off int, p uint32) {
	p = e.masks.Swap(p)
	if e.masks.PixelsPerWord == 2 {
		binary.NativeEndian.PutUint16(e.lock.Pix[off:], uint16(p))
	} else {
		binary.NativeEndian.PutUint32(e.lock.Pix[off:], p)
	}
}

// pair stores two horizontally adjacent pixels. Sixteen-bit pixels go
// out as a single 32-bit store.
func (e *engine) pair(off int, a, b uint32) {
	a, b = e.masks.Swap(a), e.masks.Swap(b)
	if e.masks.PixelsPerWord == 2 {
		var w uint32
		if hostLittleEndian {
			w = a | b<<16
		} else {
			w = a<<16 | b
		}
		binary.NativeEndian.PutUint32(e.lock.Pix[off:], w)
		return
	}
	binary.NativeEndian.PutUint32(e.lock.Pix[off:], a)
	binary.NativeEndian.PutUint32(e.lock.Pix[off+4:], b)
}

// block stores a 2x2 output block with its top-left corner at
// destination pixel (x, y).
func (e *engine) block(x, y int, tl, tr, bl, br uint32) {
	off := y*e.lock.Pitch + x*e.lock.BytesPerPixel
	e.pair(off, tl, tr)
	e.pair(off+e.lock.Pitch, bl, br)
}
