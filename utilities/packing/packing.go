// Package packing converts a monochrome grid into the row-aligned bitmap layout
// used by ZPL graphic fields.
//
// Eight cells are stored per byte, leftmost cell in the most significant bit.
// Every row starts on a byte boundary; if the width isn't a multiple of 8, the
// unused low bits of the last byte in each row are zero.

package packing

import (
	"fmt"
	"strings"

	zerr "github.com/dargueta/zplimage/errors"
	"github.com/dargueta/zplimage/utilities/monochrome"
	"github.com/noxer/bytewriter"
)

// Orientation selects the scan order used when packing a grid.
type Orientation int

const (
	// Normal scans the grid top to bottom, left to right.
	Normal Orientation = iota
	// Invert rotates the grid by 180 degrees.
	Invert
	// RotateLeft rotates the grid 90 degrees counterclockwise. Output
	// dimensions are transposed.
	RotateLeft
	// RotateRight rotates the grid 90 degrees clockwise. Output dimensions are
	// transposed.
	RotateRight
)

var orientationTags = map[Orientation]string{
	Normal:      "N",
	Invert:      "I",
	RotateLeft:  "L",
	RotateRight: "R",
}

// String returns the single-letter tag for the orientation.
func (o Orientation) String() string {
	tag, ok := orientationTags[o]
	if !ok {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return tag
}

// IsValid returns true if `o` is one of the defined orientations.
func (o Orientation) IsValid() bool {
	_, ok := orientationTags[o]
	return ok
}

// ParseOrientation converts a rotation tag to an [Orientation]. Recognized tags
// are N, I, L, B (same as L) and R, in either case. An empty tag is Normal.
func ParseOrientation(tag string) (Orientation, error) {
	switch strings.ToUpper(tag) {
	case "", "N":
		return Normal, nil
	case "I":
		return Invert, nil
	case "L", "B":
		return RotateLeft, nil
	case "R":
		return RotateRight, nil
	}
	return Normal, zerr.ErrInvalidOption.WithMessage(
		fmt.Sprintf("unrecognized rotation %q: expected one of N, I, L, B, R", tag))
}

// Bitmap is a packed monochrome image.
type Bitmap struct {
	// Data holds RowLength() * Height bytes.
	Data   []byte
	Width  int
	Height int
}

// RowLength returns the number of bytes used to store one row.
func (b Bitmap) RowLength() int {
	return RowLength(b.Width)
}

// Len returns the total size of the packed data, in bytes.
func (b Bitmap) Len() int {
	return len(b.Data)
}

// Grid unpacks the bitmap back into a monochrome grid.
func (b Bitmap) Grid() *monochrome.Grid {
	rowLength := b.RowLength()
	grid := monochrome.NewGrid(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		row := b.Data[y*rowLength : (y+1)*rowLength]
		for x := 0; x < b.Width; x++ {
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				grid.Set(x, y, true)
			}
		}
	}
	return grid
}

// RowLength returns the number of bytes needed to store `width` cells.
func RowLength(width int) int {
	return (width + 7) / 8
}

// cellFunc returns the grid cell that lands at the given position of the output.
type cellFunc func(row, column int) byte

// Pack converts a grid to a [Bitmap] using the given scan order.
func Pack(grid *monochrome.Grid, orientation Orientation) (Bitmap, error) {
	width := grid.Width()
	height := grid.Height()

	outWidth, outHeight := width, height
	var cell cellFunc

	switch orientation {
	case Normal:
		cell = func(row, column int) byte {
			return grid.Bit(column, row)
		}
	case Invert:
		cell = func(row, column int) byte {
			return grid.Bit(width-1-column, height-1-row)
		}
	case RotateLeft:
		// Columns from right to left, each read top to bottom.
		outWidth, outHeight = height, width
		cell = func(row, column int) byte {
			return grid.Bit(width-1-row, column)
		}
	case RotateRight:
		// Columns from left to right, each read bottom to top.
		outWidth, outHeight = height, width
		cell = func(row, column int) byte {
			return grid.Bit(row, height-1-column)
		}
	default:
		return Bitmap{}, zerr.ErrInvalidOption.WithMessage(
			fmt.Sprintf("unsupported orientation %s", orientation))
	}

	data, err := packRows(outWidth, outHeight, cell)
	if err != nil {
		return Bitmap{}, err
	}
	return Bitmap{Data: data, Width: outWidth, Height: outHeight}, nil
}

// packRows builds each output row MSB-first and writes it into an output buffer
// sized for exactly `height` rows.
func packRows(width, height int, cell cellFunc) ([]byte, error) {
	rowLength := RowLength(width)
	output := make([]byte, rowLength*height)
	if len(output) == 0 {
		// Rows of zero bytes would be rejected by the writer once the slice is
		// "full", which it is from the start.
		return output, nil
	}
	writer := bytewriter.New(output)

	row := make([]byte, rowLength)
	for y := 0; y < height; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < width; x++ {
			row[x/8] |= cell(y, x) << (7 - uint(x%8))
		}

		n, err := writer.Write(row)
		if err != nil {
			return nil, zerr.ErrBufferOverflow.Wrap(err)
		}
		if n != rowLength {
			return nil, zerr.ErrBufferOverflow.WithMessage(
				fmt.Sprintf("row %d: wrote %d of %d bytes", y, n, rowLength))
		}
	}
	return output, nil
}
