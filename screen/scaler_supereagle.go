package screen

import "github.com/32bitkid/sai/pixfmt"

// superEagle reads twelve samples of the window:
//
//	   B1 B2
//	4  5  6  S2
//	1  2  3  S1
//	   A1 A2
//
// and produces the block for pixel 5.
func superEagle(m *pixfmt.Masks, s *[16]uint32) (p1a, p1b, p2a, p2b uint32) {
	var (
		colorB1, colorB2                = s[1], s[2]
		color4, color5, color6, colorS2 = s[4], s[5], s[6], s[7]
		color1, color2, color3, colorS1 = s[8], s[9], s[10], s[11]
		colorA1, colorA2                = s[13], s[14]
	)

	switch {
	case color2 == color6 && color5 != color3:
		p1b, p2a = color2, color2

		if color1 == color2 || color6 == colorB2 {
			p1a = m.Interpolate(color2, m.Interpolate(color2, color5))
		} else {
			p1a = m.Interpolate(color5, color6)
		}

		if color6 == colorS2 || color2 == colorA1 {
			p2b = m.Interpolate(color2, m.Interpolate(color2, color3))
		} else {
			p2b = m.Interpolate(color2, color3)
		}

	case color5 == color3 && color2 != color6:
		p2b, p1a = color5, color5

		if colorB1 == color5 || color3 == colorS1 {
			p1b = m.Interpolate(color5, m.Interpolate(color5, color6))
		} else {
			p1b = m.Interpolate(color5, color6)
		}

		if color3 == colorA2 || color4 == color5 {
			p2a = m.Interpolate(color5, m.Interpolate(color5, color2))
		} else {
			p2a = m.Interpolate(color2, color3)
		}

	case color5 == color3 && color2 == color6:
		r := getResult(color6, color5, color1, colorA1) +
			getResult(color6, color5, color4, colorB1) +
			getResult(color6, color5, colorA2, colorS1) +
			getResult(color6, color5, colorB2, colorS2)

		mid := m.Interpolate(color5, color6)
		switch {
		case r > 0:
			p1b, p2a = color2, color2
			p1a, p2b = mid, mid
		case r < 0:
			p2b, p1a = color5, color5
			p1b, p2a = mid, mid
		default:
			p1a, p1b, p2a, p2b = mid, mid, mid, mid
		}

	default:
		p2b = m.Interpolate(color2, color6)
		p1a = m.QInterpolate(color5, color5, color5, p2b)
		p2b = m.QInterpolate(color3, color3, color3, p2b)

		p1b = m.Interpolate(color5, color3)
		p2a = m.QInterpolate(color2, color2, color2, p1b)
		p1b = m.QInterpolate(color6, color6, color6, p1b)
	}

	return p1a, p1b, p2a, p2b
}
