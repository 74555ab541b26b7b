package pixfmt

import (
	"errors"
	"testing"
)

type colorTestCase struct {
	format  Format
	packed  uint32
	r, g, b uint8
}

func runColorTest(t *testing.T, r, g, b uint8, cases []colorTestCase) {
	for i, tCase := range cases {
		packed := MakeColor(tCase.format, r, g, b)
		if packed != tCase.packed {
			t.Errorf("%d (%v): expected(%#x) != actual(%#x)", i, tCase.format, tCase.packed, packed)
			continue
		}
		ur, ug, ub := Unpack(tCase.format, packed)
		if ur != tCase.r || ug != tCase.g || ub != tCase.b {
			t.Errorf("%d (%v): expected(%d,%d,%d) != actual(%d,%d,%d)",
				i, tCase.format, tCase.r, tCase.g, tCase.b, ur, ug, ub)
		}
	}
}

func TestMakeColorRoundTrip(t *testing.T) {
	runColorTest(t, 255, 128, 0, []colorTestCase{
		{RGB555, 0x7e00, 255, 132, 0},
		{BGR555, 0x021f, 255, 132, 0},
		{RGB565, 0xfc00, 255, 130, 0},
		{BGR565, 0x041f, 255, 130, 0},
		{ARGB8888, 0xff8000, 255, 128, 0},
		{BGRA8888, 0xff8000, 255, 128, 0},
		{RGBA8888, 0xff800000, 255, 128, 0},

		// byte order does not change the host-order value
		{RGB565PC, 0xfc00, 255, 130, 0},
		{ARGB8888PC, 0xff8000, 255, 128, 0},
	})
}

func TestMakeColorExtremes(t *testing.T) {
	runColorTest(t, 255, 255, 255, []colorTestCase{
		{RGB555, 0x7fff, 255, 255, 255},
		{RGB565, 0xffff, 255, 255, 255},
		{ARGB8888, 0xffffff, 255, 255, 255},
		{RGBA8888, 0xffffff00, 255, 255, 255},
	})
	runColorTest(t, 0, 0, 0, []colorTestCase{
		{BGR555, 0, 0, 0, 0},
		{BGR565, 0, 0, 0, 0},
		{BGRA8888, 0, 0, 0, 0},
	})
}

func TestMakeColorRejects24Bit(t *testing.T) {
	for _, f := range []Format{RGB888, BGR888, RGB888PC, Unknown, Format(0x0f)} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%v: expected panic", f)
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrUnsupported) {
					t.Fatalf("%v: unexpected panic value %v", f, r)
				}
			}()
			MakeColor(f, 1, 2, 3)
		}()
	}
}

func TestFormatProperties(t *testing.T) {
	cases := []struct {
		format    Format
		depth     int
		bpp       int
		supported bool
		swapped   bool
		name      string
	}{
		{RGB555, 15, 2, true, false, "rgb555"},
		{BGR565PC, 16, 2, true, true, "bgr565-pc"},
		{RGB888, 24, 3, false, false, "rgb888"},
		{BGR888PC, 24, 3, false, true, "bgr888-pc"},
		{ARGB8888, 32, 4, true, false, "argb8888"},
		{RGBA8888PC, 32, 4, true, true, "rgba8888-pc"},
		{Unknown, 0, 0, false, false, "unknown"},
	}

	for _, c := range cases {
		if d := c.format.Depth(); d != c.depth {
			t.Errorf("%v: expected depth(%d) != actual(%d)", c.format, c.depth, d)
		}
		if b := c.format.BytesPerPixel(); b != c.bpp {
			t.Errorf("%v: expected bpp(%d) != actual(%d)", c.format, c.bpp, b)
		}
		if s := c.format.Supported(); s != c.supported {
			t.Errorf("%v: expected supported(%v) != actual(%v)", c.format, c.supported, s)
		}
		if s := c.format.Swapped(); s != c.swapped {
			t.Errorf("%v: expected swapped(%v) != actual(%v)", c.format, c.swapped, s)
		}
		if n := c.format.String(); n != c.name {
			t.Errorf("expected name(%s) != actual(%s)", c.name, n)
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"rgb565":      RGB565,
		"RGB565-PC":   RGB565PC,
		" bgra8888 ":  BGRA8888,
		"rgba8888-pc": RGBA8888PC,
		"rgb888":      RGB888,
	}
	for name, expected := range cases {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatal(err)
		}
		if f != expected {
			t.Errorf("%q: expected(%v) != actual(%v)", name, expected, f)
		}
	}

	for _, name := range []string{"", "unknown", "rgb999", "-pc"} {
		if _, err := ParseFormat(name); err == nil {
			t.Errorf("%q: expected error", name)
		}
	}
}
