package screen

import (
	"testing"

	"github.com/32bitkid/sai/bitmap"
	"github.com/32bitkid/sai/pixfmt"
)

// Palette indices used by the window fixtures.
const (
	red   = 1 // 0xFF0000
	green = 2 // 0x00FF00
	blue  = 3 // 0x0000FF
	white = 4 // 0xFFFFFF
	black = 5 // 0x000000
)

func fixturePalette() *Palette {
	pal := NewPalette(Packed565)
	pal.SetRGB24(red, 0xFF0000)
	pal.SetRGB24(green, 0x00FF00)
	pal.SetRGB24(blue, 0x0000FF)
	pal.SetRGB24(white, 0xFFFFFF)
	pal.SetRGB24(black, 0x000000)
	return pal
}

type windowTestCase struct {
	name     string
	grid     [16]uint8
	expected [4]uint32 // top-left, top-right, bottom-left, bottom-right
}

// runWindowTest scales only pixel (1,1) of a 4x4 bitmap, so every sample
// of the window comes from the grid itself.
func runWindowTest(t *testing.T, id ID, cases []windowTestCase) {
	t.Helper()
	for _, tCase := range cases {
		bm := &bitmap.Bitmap{Pix: tCase.grid[:], Width: 4, Height: 4}
		dst := NewMemorySurface(2, 2, pixfmt.ARGB8888, 1)

		s, err := New(id, bm, fixturePalette(), dst)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Prepare(dst); err != nil {
			t.Fatal(err)
		}
		s.Scale(1, 1, 0, 0, 1, 1)
		s.Finish()

		lock := dst.Front()
		actual := [4]uint32{
			pixelAt(lock, 0, 0), pixelAt(lock, 1, 0),
			pixelAt(lock, 0, 1), pixelAt(lock, 1, 1),
		}
		if actual != tCase.expected {
			t.Errorf("%v %s: expected(%06x) != actual(%06x)", id, tCase.name, tCase.expected, actual)
		}
	}
}

func TestAdvMame2xCorners(t *testing.T) {
	const x = black
	runWindowTest(t, AdvMame2x, []windowTestCase{
		{
			name: "B=1 D=2 E=3 F=2 H=4",
			grid: [16]uint8{
				x, 1, x, x,
				2, 3, 2, x,
				x, 4, x, x,
				x, x, x, x,
			},
			// no corner sees an unambiguous edge, every corner keeps E
			expected: [4]uint32{0x0000FF, 0x0000FF, 0x0000FF, 0x0000FF},
		},
		{
			name: "top-left",
			grid: [16]uint8{
				x, 1, x, x,
				1, 4, 2, x,
				x, 3, x, x,
				x, x, x, x,
			},
			expected: [4]uint32{0xFF0000, 0xFFFFFF, 0xFFFFFF, 0xFFFFFF},
		},
		{
			name: "top-right",
			grid: [16]uint8{
				x, 1, x, x,
				2, 4, 1, x,
				x, 3, x, x,
				x, x, x, x,
			},
			expected: [4]uint32{0xFFFFFF, 0xFF0000, 0xFFFFFF, 0xFFFFFF},
		},
		{
			name: "bottom-left",
			grid: [16]uint8{
				x, 2, x, x,
				1, 4, 3, x,
				x, 1, x, x,
				x, x, x, x,
			},
			expected: [4]uint32{0xFFFFFF, 0xFFFFFF, 0xFF0000, 0xFFFFFF},
		},
		{
			name: "bottom-right",
			grid: [16]uint8{
				x, 3, x, x,
				2, 4, 1, x,
				x, 1, x, x,
				x, x, x, x,
			},
			expected: [4]uint32{0xFFFFFF, 0xFFFFFF, 0xFFFFFF, 0xFF0000},
		},
		{
			name: "all neighbours equal",
			grid: [16]uint8{
				x, 1, x, x,
				1, 4, 1, x,
				x, 1, x, x,
				x, x, x, x,
			},
			expected: [4]uint32{0xFFFFFF, 0xFFFFFF, 0xFFFFFF, 0xFFFFFF},
		},
		{
			name: "diagonal edge",
			grid: [16]uint8{
				white, white, white, white,
				white, red, green, white,
				white, green, blue, white,
				white, white, white, white,
			},
			expected: [4]uint32{0xFFFFFF, 0xFF0000, 0xFF0000, 0x00FF00},
		},
	})
}

var (
	// 5==3 and 2==6; the four votes are +1, +1, +1, -1.
	voteGridPositive = [16]uint8{
		blue, red, green, blue,
		red, red, green, green,
		red, green, red, red,
		blue, red, red, blue,
	}

	// 5==3 and 2==6; the four votes are +1, +1, -1, -1.
	voteGridTied = [16]uint8{
		blue, red, green, blue,
		red, red, green, green,
		red, green, red, green,
		blue, red, green, blue,
	}

	// 2==6, 5!=3
	edgeGridA = [16]uint8{
		white, white, white, white,
		white, red, green, white,
		white, green, blue, white,
		white, white, white, white,
	}

	// 5==3, 2!=6
	edgeGridB = [16]uint8{
		white, white, white, white,
		white, red, green, white,
		white, blue, red, white,
		white, white, white, white,
	}

	// no diagonal agrees
	noEdgeGrid = [16]uint8{
		white, white, white, white,
		white, red, green, white,
		white, blue, black, white,
		white, white, white, white,
	}
)

func TestSuperEagleRules(t *testing.T) {
	runWindowTest(t, SuperEagle, []windowTestCase{
		{"vote r>0", voteGridPositive, [4]uint32{0x7F7F00, 0x00FF00, 0x00FF00, 0x7F7F00}},
		{"vote r==0", voteGridTied, [4]uint32{0x7F7F00, 0x7F7F00, 0x7F7F00, 0x7F7F00}},
		{"edge 2-6", edgeGridA, [4]uint32{0x7F7F00, 0x00FF00, 0x00FF00, 0x007F7F}},
		{"edge 5-3", edgeGridB, [4]uint32{0xFF0000, 0x7F7F00, 0x7F007F, 0xFF0000}},
		{"no edge", noEdgeGrid, [4]uint32{0xBF1F1F, 0x1FBF00, 0x1F00BF, 0x001F1F}},
	})
}

func TestSuperEagleReinforcedEdge(t *testing.T) {
	// 1==2 and 6==S2 confirm the 2-6 edge continues, pulling both
	// corners three quarters of the way to the edge color.
	runWindowTest(t, SuperEagle, []windowTestCase{
		{
			name: "edge 2-6 continued",
			grid: [16]uint8{
				white, white, white, white,
				white, red, green, green,
				green, green, blue, white,
				white, white, white, white,
			},
			expected: [4]uint32{0x3FBF00, 0x00FF00, 0x00FF00, 0x00BF3F},
		},
	})
}

func TestSuper2xSaIRules(t *testing.T) {
	runWindowTest(t, Super2xSaI, []windowTestCase{
		{"vote r>0", voteGridPositive, [4]uint32{0xFF0000, 0x00FF00, 0x00FF00, 0x00FF00}},
		{"vote r==0", voteGridTied, [4]uint32{0xFF0000, 0x7F7F00, 0x00FF00, 0x7F7F00}},
		{"edge 2-6", edgeGridA, [4]uint32{0xFF0000, 0x00FF00, 0x00FF00, 0x00FF00}},
		{"edge 5-3", edgeGridB, [4]uint32{0xFF0000, 0xFF0000, 0x0000FF, 0xFF0000}},
		{"no edge", noEdgeGrid, [4]uint32{0xFF0000, 0x7F7F00, 0x0000FF, 0x00007F}},
	})
}

func TestGetResult(t *testing.T) {
	const a, b, c = 1, 2, 3
	cases := []struct {
		c, d     uint32
		expected int
	}{
		{b, b, 1},
		{a, a, -1},
		{a, b, 0},
		{c, c, 0},
		{b, c, 0},
	}
	for _, tCase := range cases {
		if r := getResult(a, b, tCase.c, tCase.d); r != tCase.expected {
			t.Errorf("getResult(a, b, %d, %d): expected(%d) != actual(%d)", tCase.c, tCase.d, tCase.expected, r)
		}
	}
}
