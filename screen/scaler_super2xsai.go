package screen

import "github.com/32bitkid/sai/pixfmt"

// super2xSaI reads all sixteen samples of the window:
//
//	B0 B1 B2 B3
//	4  5  6  S2
//	1  2  3  S1
//	A0 A1 A2 A3
//
// and produces the block for pixel 5.
func super2xSaI(m *pixfmt.Masks, s *[16]uint32) (p1a, p1b, p2a, p2b uint32) {
	var (
		colorB0, colorB1, colorB2, colorB3 = s[0], s[1], s[2], s[3]
		color4, color5, color6, colorS2    = s[4], s[5], s[6], s[7]
		color1, color2, color3, colorS1    = s[8], s[9], s[10], s[11]
		colorA0, colorA1, colorA2, colorA3 = s[12], s[13], s[14], s[15]
	)

	switch {
	case color2 == color6 && color5 != color3:
		p1b, p2b = color2, color2

	case color5 == color3 && color2 != color6:
		p1b, p2b = color5, color5

	case color5 == color3 && color2 == color6:
		r := getResult(color6, color5, color1, colorA1) +
			getResult(color6, color5, color4, colorB1) +
			getResult(color6, color5, colorA2, colorS1) +
			getResult(color6, color5, colorB2, colorS2)

		switch {
		case r > 0:
			p1b, p2b = color6, color6
		case r < 0:
			p1b, p2b = color5, color5
		default:
			mid := m.Interpolate(color5, color6)
			p1b, p2b = mid, mid
		}

	default:
		switch {
		case color6 == color3 && color3 == colorA1 && color2 != colorA2 && color3 != colorA0:
			p2b = m.QInterpolate(color3, color3, color3, color2)
		case color5 == color2 && color2 == colorA2 && colorA1 != color3 && color2 != colorA3:
			p2b = m.QInterpolate(color2, color2, color2, color3)
		default:
			p2b = m.Interpolate(color2, color3)
		}

		switch {
		case color6 == color3 && color6 == colorB1 && color5 != colorB2 && color6 != colorB0:
			p1b = m.QInterpolate(color6, color6, color6, color5)
		case color5 == color2 && color5 == colorB2 && colorB1 != color6 && color5 != colorB3:
			p1b = m.QInterpolate(color5, color5, color5, color6)
		default:
			p1b = m.Interpolate(color5, color6)
		}
	}

	switch {
	case color5 == color3 && color2 != color6 && color4 == color5 && color5 != colorA2:
		p2a = m.Interpolate(color2, color5)
	case color5 == color1 && color6 == color5 && color4 != color2 && color5 != colorA0:
		p2a = m.Interpolate(color2, color5)
	default:
		p2a = color2
	}

	switch {
	case color2 == color6 && color5 != color3 && color1 == color2 && color2 != colorB2:
		p1a = m.Interpolate(color2, color5)
	case color4 == color2 && color3 == color2 && color1 != color5 && color2 != colorB0:
		p1a = m.Interpolate(color2, color5)
	default:
		p1a = color5
	}

	return p1a, p1b, p2a, p2b
}
