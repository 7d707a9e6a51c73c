package testing

import (
	"bytes"
	"crypto/rand"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/dargueta/zplimage/utilities/monochrome"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// Colors used by the row-based fixture builders.
var (
	Ink         = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Paper       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = color.NRGBA{}
)

func colorForCell(t *testing.T, cell byte) color.NRGBA {
	switch cell {
	case '#':
		return Ink
	case '.':
		return Paper
	case ' ':
		return Transparent
	}
	require.FailNowf(t, "bad fixture", "unrecognized cell character %q", cell)
	return color.NRGBA{}
}

// NRGBAFromRows builds an image from rows of text: `#` is opaque black, `.` is
// opaque white, and a space is fully transparent. All rows must be the same
// length.
func NRGBAFromRows(t *testing.T, rows ...string) *image.NRGBA {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		require.Lenf(t, row, width, "row %d has the wrong length", y)
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, colorForCell(t, row[x]))
		}
	}
	return img
}

// RGBAFromRows is like [NRGBAFromRows] but returns the raw pixel buffer and its
// width, as consumed by the conversion pipeline.
func RGBAFromRows(t *testing.T, rows ...string) ([]byte, int) {
	img := NRGBAFromRows(t, rows...)
	return img.Pix, img.Rect.Dx()
}

// SolidRGBA returns a pixel buffer of the given size filled with one color.
func SolidRGBA(width, height int, fill color.NRGBA) []byte {
	pixel := []byte{fill.R, fill.G, fill.B, fill.A}
	return bytes.Repeat(pixel, width*height)
}

// GridFromRows builds a monochrome grid from rows of `#` (ink) and `.`
// (background).
func GridFromRows(t *testing.T, rows ...string) *monochrome.Grid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	grid := monochrome.NewGrid(width, len(rows))
	for y, row := range rows {
		require.Lenf(t, row, width, "row %d has the wrong length", y)
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
				grid.Set(x, y, true)
			case '.':
			default:
				require.FailNowf(t, "bad fixture", "unrecognized cell character %q", row[x])
			}
		}
	}
	return grid
}

// RandomGrid creates a grid of the given size with random contents. It is
// guaranteed to either return a valid grid or fail the test and abort.
func RandomGrid(t *testing.T, width, height int) *monochrome.Grid {
	noise := make([]byte, width*height)
	_, err := rand.Read(noise)
	require.NoErrorf(t, err, "failed to generate %dx%d random cells", width, height)

	grid := monochrome.NewGrid(width, height)
	for i, b := range noise {
		grid.Set(i%width, i/width, b&1 == 1)
	}
	return grid
}

// EncodePNG encodes an image as PNG and returns a stream to read it back.
//
//   - The stream is backed by a private copy of the encoded bytes.
//   - Its size is fixed to the encoded size; writing past the end triggers an
//     error.
func EncodePNG(t *testing.T, img image.Image) io.ReadWriteSeeker {
	encoded := bytes.Buffer{}
	require.NoError(t, png.Encode(&encoded, img), "failed to encode fixture image")
	require.Greater(t, encoded.Len(), 0, "encoded image is empty")

	return bytesextra.NewReadWriteSeeker(encoded.Bytes())
}
