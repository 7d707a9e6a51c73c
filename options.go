package zplimage

import (
	"fmt"

	"github.com/dargueta/zplimage/utilities/compression"
	"github.com/dargueta/zplimage/utilities/monochrome"
	"github.com/dargueta/zplimage/utilities/packing"
	"github.com/hashicorp/go-multierror"
)

type Orientation = packing.Orientation

const (
	Normal      = packing.Normal
	Invert      = packing.Invert
	RotateLeft  = packing.RotateLeft
	RotateRight = packing.RotateRight
)

type Format = compression.Format

const (
	FormatACS = compression.FormatACS
	FormatZ64 = compression.FormatZ64
)

// Options controls how an image is converted. The zero value is usable and is
// equivalent to [DefaultOptions].
type Options struct {
	// BlackPercent is the luminance threshold, as a percentage of full white, at
	// or below which a pixel is printed. Must be in [1, 99]; 0 selects the
	// default of 50.
	BlackPercent int
	// NoTrim disables cropping the image to the bounding box of its ink.
	NoTrim bool
	// Rotation is the orientation applied while packing the bitmap.
	Rotation Orientation
	// Format selects the payload encoding.
	Format Format
}

// DefaultOptions returns the options used when nothing is specified.
func DefaultOptions() Options {
	return Options{
		BlackPercent: monochrome.DefaultBlackPercent,
		NoTrim:       false,
		Rotation:     Normal,
		Format:       FormatACS,
	}
}

// WithDefaults returns a copy of the options with unset fields filled in.
func (o Options) WithDefaults() Options {
	if o.BlackPercent == 0 {
		o.BlackPercent = monochrome.DefaultBlackPercent
	}
	return o
}

// Validate checks every field and returns all problems found, not just the
// first. Each problem matches [ErrInvalidOption].
func (o Options) Validate() error {
	var result *multierror.Error

	if o.BlackPercent != 0 && (o.BlackPercent < 1 || o.BlackPercent > 99) {
		result = multierror.Append(
			result,
			ErrInvalidOption.WithMessage(fmt.Sprintf(
				"black percentage must be in [1, 99], got %d", o.BlackPercent)),
		)
	}
	if !o.Rotation.IsValid() {
		result = multierror.Append(
			result,
			ErrInvalidOption.WithMessage(fmt.Sprintf("unknown rotation %s", o.Rotation)),
		)
	}
	if o.Format != FormatACS && o.Format != FormatZ64 {
		result = multierror.Append(
			result,
			ErrInvalidOption.WithMessage(fmt.Sprintf("unknown format %s", o.Format)),
		)
	}
	return result.ErrorOrNil()
}

// ParseRotation converts a rotation tag (N, I, L, B or R) to an [Orientation].
// B is an alias for L.
func ParseRotation(tag string) (Orientation, error) {
	return packing.ParseOrientation(tag)
}

// ParseFormat converts a format name (ACS or Z64) to a [Format].
func ParseFormat(name string) (Format, error) {
	return compression.ParseFormat(name)
}
