package screen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/32bitkid/sai/pixfmt"
)

// ErrLocked is returned when a surface is locked twice.
var ErrLocked = errors.New("screen: surface already locked")

// Lock describes destination memory held for one frame.
type Lock struct {
	Pix           []byte
	Pitch         int
	BytesPerPixel int
	Format        pixfmt.Format
	Width, Height int
}

// Surface is the destination a scaler writes into. Lock may hand out a
// different buffer each frame.
type Surface interface {
	Format() pixfmt.Format
	Lock() (Lock, error)
	Unlock()
}

// MemorySurface is a software Surface with one or two pages. With two
// pages Lock returns the back page and Flip presents it.
type MemorySurface struct {
	mu     sync.Mutex
	format pixfmt.Format
	width  int
	height int
	pitch  int
	pages  [][]byte
	front  int
	locked bool
}

func NewMemorySurface(width, height int, format pixfmt.Format, pages int) *MemorySurface {
	if pages < 1 {
		pages = 1
	} else if pages > 2 {
		pages = 2
	}

	pitch := width * format.BytesPerPixel()
	s := &MemorySurface{
		format: format,
		width:  width,
		height: height,
		pitch:  pitch,
	}
	for i := 0; i < pages; i++ {
		s.pages = append(s.pages, make([]byte, pitch*height))
	}
	return s
}

func (s *MemorySurface) Format() pixfmt.Format { return s.format }

func (s *MemorySurface) back() int {
	return (s.front + 1) % len(s.pages)
}

func (s *MemorySurface) page(i int) Lock {
	return Lock{
		Pix:           s.pages[i],
		Pitch:         s.pitch,
		BytesPerPixel: s.format.BytesPerPixel(),
		Format:        s.format,
		Width:         s.width,
		Height:        s.height,
	}
}

func (s *MemorySurface) Lock() (Lock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return Lock{}, ErrLocked
	}
	s.locked = true
	return s.page(s.back()), nil
}

func (s *MemorySurface) Unlock() {
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
}

// Flip presents the back page. The newly hidden page receives a copy of
// the presented one so partial updates next frame start from the same
// picture.
func (s *MemorySurface) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return fmt.Errorf("screen: flip: %w", ErrLocked)
	}
	if len(s.pages) == 1 {
		return nil
	}
	s.front = s.back()
	copy(s.pages[s.back()], s.pages[s.front])
	return nil
}

// Front returns the presented page for reading.
func (s *MemorySurface) Front() Lock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page(s.front)
}
