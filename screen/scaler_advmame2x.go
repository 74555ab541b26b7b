package screen

import "github.com/32bitkid/sai/pixfmt"

// advMame2x is the EPX rule. With E at the center and B, D, F, H its
// upper, left, right and lower neighbours, a corner takes a neighbour's
// color only when that neighbour agrees with the adjacent one and both
// disagree with the opposite pair:
//
//	  B        TL TR
//	D E F  =>
//	  H        BL BR
func advMame2x(_ *pixfmt.Masks, s *[16]uint32) (tl, tr, bl, br uint32) {
	b, d, e, f, h := s[1], s[4], s[5], s[6], s[9]

	tl, tr, bl, br = e, e, e, e
	if d == b && b != f && d != h {
		tl = d
	}
	if b == f && b != d && f != h {
		tr = f
	}
	if d == h && d != b && h != f {
		bl = d
	}
	if h == f && d != h && b != f {
		br = f
	}
	return
}
