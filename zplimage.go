// Package zplimage converts raster images to the monochrome graphic field
// payloads understood by ZPL label printers.
//
// The pipeline has three stages, each in its own package:
//
//  1. [monochrome.Threshold] reduces RGBA pixels to one bit per pixel, optionally
//     trimming the image to the area that contains ink.
//  2. [packing.Pack] packs the bits into byte-aligned rows in one of four
//     orientations.
//  3. A [compression.Codec] encodes the packed bytes as Z64 or ACS text.
//
// [ConvertRGBA] runs all three and returns the payload together with the
// dimensions needed to declare the field.

package zplimage

import (
	"bytes"
	"fmt"
	"image"

	"github.com/dargueta/zplimage/imageio"
	"github.com/dargueta/zplimage/utilities/compression"
	"github.com/dargueta/zplimage/utilities/monochrome"
	"github.com/dargueta/zplimage/utilities/packing"
)

// Result is an encoded image ready to be embedded in a `^GF` directive.
type Result struct {
	// Format is the encoding used for Payload.
	Format Format
	// Length is the size of the packed bitmap in bytes, before encoding.
	Length int
	// RowLength is the number of bytes in one packed row.
	RowLength int
	// Width is the width of the packed image in dots, after trimming and
	// rotation.
	Width int
	// Height is the height of the packed image in dots, after trimming and
	// rotation.
	Height int
	// Payload is the encoded bitmap.
	Payload string
	// Packed holds the bitmap bytes the payload was encoded from.
	Packed []byte
}

// ConvertRGBA converts a buffer of non-premultiplied RGBA pixels, `width` pixels
// per row, using the encoding selected in `opts`. The height is derived from the
// buffer size; a trailing partial row is ignored.
func ConvertRGBA(pixels []byte, width int, opts Options) (Result, error) {
	if width <= 0 {
		return Result{}, ErrInvalidWidth.WithMessage(
			fmt.Sprintf("width must be positive, got %d", width))
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	opts = opts.WithDefaults()

	grid, err := monochrome.Threshold(pixels, width, opts.BlackPercent, opts.NoTrim)
	if err != nil {
		return Result{}, err
	}

	bitmap, err := packing.Pack(grid, opts.Rotation)
	if err != nil {
		return Result{}, err
	}

	codec, err := compression.NewCodec(opts.Format)
	if err != nil {
		return Result{}, err
	}
	payload, err := codec.Encode(bitmap.Data)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Format:    opts.Format,
		Length:    bitmap.Len(),
		RowLength: bitmap.RowLength(),
		Width:     bitmap.Width,
		Height:    bitmap.Height,
		Payload:   payload,
		Packed:    bitmap.Data,
	}, nil
}

// RGBAToZ64 is [ConvertRGBA] with the format forced to Z64.
func RGBAToZ64(pixels []byte, width int, opts Options) (Result, error) {
	opts.Format = FormatZ64
	return ConvertRGBA(pixels, width, opts)
}

// RGBAToACS is [ConvertRGBA] with the format forced to ACS.
func RGBAToACS(pixels []byte, width int, opts Options) (Result, error) {
	opts.Format = FormatACS
	return ConvertRGBA(pixels, width, opts)
}

// ConvertImage converts any image. Its pixels are used as they are, so a
// transparent background stays transparent (and is never ink).
func ConvertImage(img image.Image, opts Options) (Result, error) {
	pixels, width := imageio.Pixels(img)
	if width == 0 {
		return Result{}, ErrInvalidWidth.WithMessage("image has no columns")
	}
	return ConvertRGBA(pixels, width, opts)
}

// DecodePayload reverses the encoding of a result and returns the packed bitmap
// bytes. It fails if the decoded size doesn't match the recorded length.
func DecodePayload(result Result) ([]byte, error) {
	codec, err := compression.NewCodec(result.Format)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decode(result.Payload)
	if err != nil {
		return nil, err
	}
	if len(data) != result.Length {
		return nil, ErrMalformedPayload.WithMessage(fmt.Sprintf(
			"decoded %d bytes, expected %d", len(data), result.Length))
	}
	return data, nil
}

// VerifyPayload decodes the payload of a result and checks that it reproduces
// the packed bitmap exactly.
func VerifyPayload(result Result) error {
	data, err := DecodePayload(result)
	if err != nil {
		return err
	}
	if !bytes.Equal(data, result.Packed) {
		return ErrMalformedPayload.WithMessage(
			"decoded payload doesn't match the packed bitmap")
	}
	return nil
}
