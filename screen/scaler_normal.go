package screen

// scaleNormal converts the region one to one, without scaling. It backs
// the "none" registry entry and serves as the plain blit fallback.
func scaleNormal(e *engine, sx, sy, dx, dy, w, h int) {
	bpp := e.lock.BytesPerPixel
	for y := 0; y < h; y++ {
		row := e.src.Row(sy + y)[sx : sx+w]
		off := (dy+y)*e.lock.Pitch + dx*bpp
		for _, i := range row {
			e.put(off, e.lut[i])
			off += bpp
		}
	}
}
