// Package monochrome reduces RGBA pixel data to a one-bit-per-pixel grid.
//
// A set cell is "ink", i.e. a dot the printer burns. Cleared cells are
// background.

package monochrome

import (
	"fmt"
	"strings"

	"github.com/boljen/go-bitmap"
)

// Grid is a rectangular monochrome image. Cells are addressed by (x, y) with
// (0, 0) in the top left corner.
type Grid struct {
	cells  bitmap.Bitmap
	width  int
	height int
}

// NewGrid creates a grid of the given dimensions with every cell cleared.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		cells:  bitmap.New(width * height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the total number of cells, always Width() * Height().
func (g *Grid) Len() int {
	return g.width * g.height
}

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf(
			"cell (%d, %d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns true if the cell at (x, y) is ink.
func (g *Grid) Get(x, y int) bool {
	return g.cells.Get(g.index(x, y))
}

// Bit is like [Grid.Get] but returns the cell as 0 or 1.
func (g *Grid) Bit(x, y int) byte {
	if g.cells.Get(g.index(x, y)) {
		return 1
	}
	return 0
}

// Set changes the cell at (x, y).
func (g *Grid) Set(x, y int, ink bool) {
	g.cells.Set(g.index(x, y), ink)
}

// InkCount returns the number of set cells.
func (g *Grid) InkCount() int {
	total := 0
	for i := 0; i < g.Len(); i++ {
		if g.cells.Get(i) {
			total++
		}
	}
	return total
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := 0; i < g.Len(); i++ {
		if g.cells.Get(i) != other.cells.Get(i) {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, using `#` for ink and `.` for
// background.
func (g *Grid) String() string {
	var builder strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				builder.WriteByte('#')
			} else {
				builder.WriteByte('.')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
