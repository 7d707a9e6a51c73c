// Package imageio loads image files and prepares them for conversion: decoding,
// scaling to the label size in dots, and flattening onto white paper.

package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	zerr "github.com/dargueta/zplimage/errors"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DotsPerCentimeter is the resolution of a 203 DPI print head.
const DotsPerCentimeter = 80

// CentimetersToDots converts a length on the label to print head dots, rounded
// to the nearest dot.
func CentimetersToDots(cm float64) int {
	return int(math.Round(cm * DotsPerCentimeter))
}

// Decode reads an image in any registered format: PNG, JPEG, GIF, BMP, TIFF or
// WebP. It returns the image and the name of the format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", zerr.ErrImageDecode.Wrap(err)
	}
	return img, format, nil
}

// Scale resizes an image to exactly `width` x `height` pixels with Lanczos
// resampling. If one of the dimensions is 0 it's computed from the other so the
// aspect ratio is kept. If both are 0, or the image is already the requested
// size, it is returned unchanged.
func Scale(img image.Image, width, height int) image.Image {
	size := img.Bounds().Size()
	if (width == 0 && height == 0) || (width == size.X && height == size.Y) {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// Flatten composites an image over an opaque white background of the same size.
// The result's origin is always (0, 0).
func Flatten(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)
	return canvas
}

// Load decodes an image, scales it to the given size (see [Scale]) and flattens
// it onto white.
func Load(r io.Reader, width, height int) (*image.NRGBA, error) {
	if width < 0 || height < 0 {
		return nil, zerr.ErrInvalidOption.WithMessage(
			fmt.Sprintf("target size can't be negative, got %dx%d", width, height))
	}

	img, _, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Flatten(Scale(img, width, height)), nil
}

// Pixels returns a copy of an image's pixels as tightly packed,
// non-premultiplied RGBA bytes in row-major order, along with its width.
func Pixels(img image.Image) ([]byte, int) {
	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)
	return canvas.Pix, bounds.Dx()
}
