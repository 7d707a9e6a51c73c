package monochrome

import (
	"fmt"
	"image"

	zerr "github.com/dargueta/zplimage/errors"
)

// DefaultBlackPercent is the threshold used when the caller doesn't specify one.
const DefaultBlackPercent = 50

// BytesPerPixel is the size of one RGBA pixel record in a pixel buffer.
const BytesPerPixel = 4

// Luminance computes the gray level of a non-premultiplied RGBA pixel. Opaque
// pixels fall in [0, 255]; a fully transparent pixel is 765.
//
// The transparency term is added once per channel rather than once overall.
// Existing labels depend on this, so it must not be "corrected". Each product
// is converted explicitly so the compiler can't fuse it into a multiply-add,
// which would change rounding at the threshold on some architectures.
func Luminance(r, g, b, a byte) float64 {
	alpha := float64(a) / 255
	transparency := float64(255 * (1 - alpha))

	gray := float64(0.3*float64(r)*alpha) + transparency
	gray = gray + float64(0.59*float64(g)*alpha) + transparency
	gray = gray + float64(0.11*float64(b)*alpha) + transparency
	return gray
}

// BlackLevel converts a threshold percentage to the luminance at or below which
// a pixel counts as ink.
func BlackLevel(blackPercent int) float64 {
	return float64(255*blackPercent) / 100
}

// Height returns the number of complete rows in a pixel buffer. Trailing bytes
// that don't make up a complete row are ignored.
func Height(pixels []byte, width int) int {
	if width <= 0 {
		return 0
	}
	return len(pixels) / width / BytesPerPixel
}

// Threshold converts a row-major RGBA pixel buffer of the given width to a
// monochrome grid. A pixel is ink if its [Luminance] is at or below the black
// level derived from `blackPercent`.
//
// If `noTrim` is false, the result is cropped to the smallest rectangle holding
// every ink pixel. An image without any ink then yields an empty 0x0 grid.
func Threshold(pixels []byte, width, blackPercent int, noTrim bool) (*Grid, error) {
	if width <= 0 {
		return nil, zerr.ErrInvalidWidth.WithMessage(
			fmt.Sprintf("width must be positive, got %d", width))
	}

	height := Height(pixels, width)
	black := BlackLevel(blackPercent)

	bounds := image.Rect(0, 0, width, height)
	if !noTrim {
		bounds = InkBounds(pixels, width, blackPercent)
	}

	grid := NewGrid(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := (y*width + bounds.Min.X) * BytesPerPixel
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isInk(pixels[i:i+BytesPerPixel], black) {
				grid.Set(x-bounds.Min.X, y-bounds.Min.Y, true)
			}
			i += BytesPerPixel
		}
	}
	return grid, nil
}

// InkBounds returns the smallest rectangle containing every ink pixel. If there
// are no ink pixels, it returns the zero rectangle.
func InkBounds(pixels []byte, width, blackPercent int) image.Rectangle {
	height := Height(pixels, width)
	black := BlackLevel(blackPercent)

	// Max is exclusive, unlike the inclusive coordinates being scanned.
	minX, minY := width, height
	maxX, maxY := -1, -1
	found := false

	for y := 0; y < height; y++ {
		rowStart := y * width * BytesPerPixel
		for x := 0; x < width; x++ {
			i := rowStart + x*BytesPerPixel
			if !isInk(pixels[i:i+BytesPerPixel], black) {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if !found {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func isInk(pixel []byte, black float64) bool {
	return Luminance(pixel[0], pixel[1], pixel[2], pixel[3]) <= black
}
