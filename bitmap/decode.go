package bitmap

import (
	"bufio"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

// Decode reads width*height packed indices of the given depth (1, 2, 4
// or 8 bits) from r. Pixels are packed most significant bit first and
// every row starts on a byte boundary, as in CGA/EGA screen dumps.
func Decode(r io.Reader, width, height int, depth uint) (*Bitmap, error) {
	switch depth {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("bitmap: unsupported depth %d", depth)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	var (
		bm      = New(width, height)
		bits    = bitreader.NewReader(bufio.NewReader(r))
		rowBits = uint(width) * depth
		padding = (8 - rowBits%8) % 8
	)

	for y := 0; y < height; y++ {
		row := bm.Row(y)
		for x := range row {
			i, err := bits.Read8(depth)
			if err != nil {
				return nil, fmt.Errorf("bitmap: row %d: %w", y, err)
			}
			row[x] = i
		}
		if padding > 0 {
			if _, err := bits.Read8(padding); err != nil {
				return nil, fmt.Errorf("bitmap: row %d: %w", y, err)
			}
		}
	}

	return bm, nil
}
