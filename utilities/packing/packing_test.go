package packing_test

import (
	"testing"

	zerr "github.com/dargueta/zplimage/errors"
	zt "github.com/dargueta/zplimage/testing"
	"github.com/dargueta/zplimage/utilities/monochrome"
	p "github.com/dargueta/zplimage/utilities/packing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOrientations = []p.Orientation{p.Normal, p.Invert, p.RotateLeft, p.RotateRight}

type packTestCase struct {
	Orientation    p.Orientation
	ExpectedData   []byte
	ExpectedWidth  int
	ExpectedHeight int
}

func TestPack__SmallGrid(t *testing.T) {
	grid := zt.GridFromRows(
		t,
		"#..",
		"##.",
	)

	tests := []packTestCase{
		{p.Normal, []byte{0x80, 0xc0}, 3, 2},
		{p.Invert, []byte{0x60, 0x20}, 3, 2},
		{p.RotateLeft, []byte{0x00, 0x40, 0xc0}, 2, 3},
		{p.RotateRight, []byte{0xc0, 0x80, 0x00}, 2, 3},
	}

	for _, test := range tests {
		t.Run(
			test.Orientation.String(),
			func(t *testing.T) {
				bitmap, err := p.Pack(grid, test.Orientation)
				require.NoError(t, err)
				assert.Equal(t, test.ExpectedData, bitmap.Data)
				assert.Equal(t, test.ExpectedWidth, bitmap.Width)
				assert.Equal(t, test.ExpectedHeight, bitmap.Height)
			},
		)
	}
}

func TestPack__RowsDoNotShareBytes(t *testing.T) {
	grid := zt.GridFromRows(
		t,
		"##########",
		"#........#",
	)

	bitmap, err := p.Pack(grid, p.Normal)
	require.NoError(t, err)
	assert.Equal(t, 2, bitmap.RowLength())
	assert.Equal(t, []byte{0xff, 0xc0, 0x80, 0x40}, bitmap.Data)
}

func TestPack__AllInkTwoByTwo(t *testing.T) {
	bitmap, err := p.Pack(zt.GridFromRows(t, "##", "##"), p.Normal)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc0, 0xc0}, bitmap.Data)
	assert.Equal(t, 1, bitmap.RowLength())
}

func TestPack__EmptyGrid(t *testing.T) {
	for _, orientation := range allOrientations {
		bitmap, err := p.Pack(monochrome.NewGrid(0, 0), orientation)
		require.NoError(t, err)
		assert.Empty(t, bitmap.Data)
		assert.Equal(t, 0, bitmap.RowLength())
	}
}

func TestPack__NoRows(t *testing.T) {
	testCases := []struct {
		Orientation    p.Orientation
		ExpectedWidth  int
		ExpectedHeight int
	}{
		{p.Normal, 7, 0},
		{p.Invert, 7, 0},
		{p.RotateLeft, 0, 7},
		{p.RotateRight, 0, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.Orientation.String(), func(t *testing.T) {
			bitmap, err := p.Pack(monochrome.NewGrid(7, 0), tc.Orientation)
			require.NoError(t, err)
			assert.Empty(t, bitmap.Data)
			assert.Equal(t, tc.ExpectedWidth, bitmap.Width)
			assert.Equal(t, tc.ExpectedHeight, bitmap.Height)
			assert.Equal(t, bitmap.RowLength()*bitmap.Height, bitmap.Len())
		})
	}
}

func TestPack__ByteCountInvariant(t *testing.T) {
	dimensions := [][2]int{{1, 1}, {7, 3}, {8, 8}, {9, 2}, {17, 5}, {3, 33}, {64, 1}}

	for _, dim := range dimensions {
		grid := zt.RandomGrid(t, dim[0], dim[1])
		for _, orientation := range allOrientations {
			bitmap, err := p.Pack(grid, orientation)
			require.NoError(t, err)

			assert.Equal(t, (bitmap.Width+7)/8, bitmap.RowLength())
			assert.Equal(
				t,
				bitmap.RowLength()*bitmap.Height,
				bitmap.Len(),
				"%dx%d %s: wrong byte count",
				dim[0],
				dim[1],
				orientation,
			)
			assert.Equal(t, grid.InkCount(), bitmap.Grid().InkCount(), "ink was lost")
		}
	}
}

func TestPack__TrailingBitsAreZero(t *testing.T) {
	grid := monochrome.NewGrid(11, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 11; x++ {
			grid.Set(x, y, true)
		}
	}

	for _, orientation := range allOrientations {
		bitmap, err := p.Pack(grid, orientation)
		require.NoError(t, err)

		rowLength := bitmap.RowLength()
		usedBits := bitmap.Width % 8
		if usedBits == 0 {
			continue
		}
		mask := byte(0xff >> uint(usedBits))
		for y := 0; y < bitmap.Height; y++ {
			last := bitmap.Data[(y+1)*rowLength-1]
			assert.Zerof(t, last&mask, "%s row %d has padding bits set", orientation, y)
		}
	}
}

func TestPack__RotationsCancel(t *testing.T) {
	grid := zt.RandomGrid(t, 13, 6)

	left, err := p.Pack(grid, p.RotateLeft)
	require.NoError(t, err)
	assert.Equal(t, 6, left.Width)
	assert.Equal(t, 13, left.Height)

	restored, err := p.Pack(left.Grid(), p.RotateRight)
	require.NoError(t, err)
	assert.Equal(t, 13, restored.Width)
	assert.Equal(t, 6, restored.Height)
	assert.True(t, grid.Equal(restored.Grid()), "left then right isn't the identity")

	right, err := p.Pack(grid, p.RotateRight)
	require.NoError(t, err)
	restored, err = p.Pack(right.Grid(), p.RotateLeft)
	require.NoError(t, err)
	assert.True(t, grid.Equal(restored.Grid()), "right then left isn't the identity")
}

func TestPack__InvertTwiceIsIdentity(t *testing.T) {
	grid := zt.RandomGrid(t, 21, 9)
	normal, err := p.Pack(grid, p.Normal)
	require.NoError(t, err)

	once, err := p.Pack(grid, p.Invert)
	require.NoError(t, err)
	twice, err := p.Pack(once.Grid(), p.Invert)
	require.NoError(t, err)

	assert.Equal(t, normal, twice)
}

func TestPack__UnknownOrientation(t *testing.T) {
	_, err := p.Pack(monochrome.NewGrid(1, 1), p.Orientation(42))
	assert.ErrorIs(t, err, zerr.ErrInvalidOption)
}

func TestParseOrientation(t *testing.T) {
	expected := map[string]p.Orientation{
		"":  p.Normal,
		"N": p.Normal,
		"n": p.Normal,
		"I": p.Invert,
		"L": p.RotateLeft,
		"B": p.RotateLeft,
		"R": p.RotateRight,
		"r": p.RotateRight,
	}
	for tag, orientation := range expected {
		result, err := p.ParseOrientation(tag)
		require.NoErrorf(t, err, "tag %q", tag)
		assert.Equalf(t, orientation, result, "tag %q", tag)
	}

	_, err := p.ParseOrientation("X")
	assert.ErrorIs(t, err, zerr.ErrInvalidOption)
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "L", p.RotateLeft.String())
	assert.Equal(t, "Orientation(9)", p.Orientation(9).String())
	assert.False(t, p.Orientation(9).IsValid())
	assert.True(t, p.Invert.IsValid())
}
