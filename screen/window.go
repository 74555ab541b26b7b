package screen

import "github.com/32bitkid/sai/pixfmt"

// window is the 4x4 neighbourhood around the source pixel being scaled,
// stored row-major:
//
//	 0  1  2  3
//	 4 [5] 6  7
//	 8  9 10 11
//	12 13 14 15
//
// Sample 5 is the current pixel. Moving right shifts every row one
// sample left and fetches one new column; moving down rotates the row
// slices and fetches only the new bottom row of the line start.
type window struct {
	e     *engine
	rows  [4][]uint8
	y     int
	x0, x int
	start [16]uint32
	s     [16]uint32
}

func newWindow(e *engine, x, y int) *window {
	w := &window{e: e, x0: x, x: x, y: y}
	for r := range w.rows {
		w.rows[r] = w.row(y - 1 + r)
	}
	for i := range w.start {
		w.start[i] = w.fetch(i/4, x-1+i%4)
	}
	w.s = w.start
	return w
}

func (w *window) row(y int) []uint8 {
	return w.e.src.Row(clampInt(0, w.e.src.Height-1, y))
}

func (w *window) fetch(r, x int) uint32 {
	return w.e.lut[w.rows[r][clampInt(0, w.e.src.Width-1, x)]]
}

// right advances one column.
func (w *window) right() {
	w.x++
	for r := 0; r < 16; r += 4 {
		w.s[r], w.s[r+1], w.s[r+2] = w.s[r+1], w.s[r+2], w.s[r+3]
		w.s[r+3] = w.fetch(r/4, w.x+2)
	}
}

// down moves to the start of the next line.
func (w *window) down() {
	w.y++
	w.x = w.x0
	w.rows[0], w.rows[1], w.rows[2] = w.rows[1], w.rows[2], w.rows[3]
	w.rows[3] = w.row(w.y + 2)

	copy(w.start[:12], w.start[4:])
	for i := 0; i < 4; i++ {
		w.start[12+i] = w.fetch(3, w.x0-1+i)
	}
	w.s = w.start
}

// rule computes the 2x2 output block for the window around one source
// pixel: top-left, top-right, bottom-left, bottom-right.
type rule func(m *pixfmt.Masks, s *[16]uint32) (tl, tr, bl, br uint32)

// windowed drives rule across a region with a sliding window.
func windowed(fn rule) kernel {
	return func(e *engine, sx, sy, dx, dy, w, h int) {
		win := newWindow(e, sx, sy)
		for y := 0; y < h; y++ {
			if y > 0 {
				win.down()
			}
			for x := 0; x < w; x++ {
				if x > 0 {
					win.right()
				}
				tl, tr, bl, br := fn(&e.masks, &win.s)
				e.block(dx+2*x, dy+2*y, tl, tr, bl, br)
			}
		}
	}
}

// getResult votes +1 when b matches both c and d while a does not, and
// -1 for the opposite.
func getResult(a, b, c, d uint32) int {
	return b2i(a != c || a != d) - b2i(b != c || b != d)
}
