// Package markup assembles ZPL label text around an encoded image.

package markup

import (
	"fmt"
	"strings"

	"github.com/dargueta/zplimage"
	"github.com/dargueta/zplimage/imageio"
	"github.com/hashicorp/go-multierror"
)

// LabelOptions describes the physical label an image is printed on.
type LabelOptions struct {
	// WidthCM is the label width in centimeters.
	WidthCM float64
	// HeightCM is the label height in centimeters.
	HeightCM float64
	// Darkness is the value emitted in the `^MD` directive, in percent.
	Darkness int
}

// DefaultLabelOptions returns the settings for an 8cm x 4.5cm label.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{
		WidthCM:  8,
		HeightCM: 4.5,
		Darkness: 70,
	}
}

// Dots returns the label size in print head dots.
func (o LabelOptions) Dots() (width, height int) {
	return imageio.CentimetersToDots(o.WidthCM), imageio.CentimetersToDots(o.HeightCM)
}

// Validate checks every field and returns all problems found.
func (o LabelOptions) Validate() error {
	var result *multierror.Error

	if o.WidthCM <= 0 {
		result = multierror.Append(result, zplimage.ErrInvalidOption.WithMessage(
			fmt.Sprintf("label width must be positive, got %g", o.WidthCM)))
	}
	if o.HeightCM <= 0 {
		result = multierror.Append(result, zplimage.ErrInvalidOption.WithMessage(
			fmt.Sprintf("label height must be positive, got %g", o.HeightCM)))
	}
	if o.Darkness < 0 || o.Darkness > 100 {
		result = multierror.Append(result, zplimage.ErrInvalidOption.WithMessage(
			fmt.Sprintf("darkness must be in [0, 100], got %d", o.Darkness)))
	}
	return result.ErrorOrNil()
}

// GraphicField returns the `^GFA` directive declaring the encoded image. The
// total and data byte counts are both the packed bitmap length.
func GraphicField(result zplimage.Result) string {
	return fmt.Sprintf(
		"^GFA,%d,%d,%d,%s",
		result.Length,
		result.Length,
		result.RowLength,
		result.Payload,
	)
}

// Label returns a complete label format printing the image at the origin.
// `opts` are the options the image was converted with; they're only used for
// the descriptive comment.
func Label(result zplimage.Result, opts zplimage.Options, label LabelOptions) string {
	opts = opts.WithDefaults()

	var builder strings.Builder
	builder.WriteString("^XA\n")
	fmt.Fprintf(
		&builder,
		"^FO0,0^FX Image (%dx%dpx, %s-Rotate, %d%% Black)^FS\n",
		result.Width,
		result.Height,
		opts.Rotation,
		opts.BlackPercent,
	)
	builder.WriteString(GraphicField(result))
	builder.WriteByte('\n')
	fmt.Fprintf(&builder, "^MD%d\n", label.Darkness)
	builder.WriteString("^XZ")
	return builder.String()
}
