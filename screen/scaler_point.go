package screen

// scalePoint doubles every source pixel into a 2x2 block.
func scalePoint(e *engine, sx, sy, dx, dy, w, h int) {
	for y := 0; y < h; y++ {
		row := e.src.Row(sy + y)[sx : sx+w]
		for x, i := range row {
			c := e.lut[i]
			e.block(dx+2*x, dy+2*y, c, c, c, c)
		}
	}
}
