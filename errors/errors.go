// Package errors defines the error values shared by every stage of the image
// conversion pipeline.
//
// All sentinel errors implement [ConversionError], and can be refined with a
// more specific message or wrap an underlying cause while still matching the
// sentinel with [errors.Is].

package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type ConversionError interface {
	error
	WithMessage(message string) ConversionError
	Wrap(err error) ConversionError
}

type baseConversionError string

const rootError = baseConversionError("")

var ErrInvalidWidth = rootError.WithMessage("Invalid width")
var ErrCharacterOutOfRange = rootError.WithMessage("Character out of range")
var ErrCompressionFailed = rootError.WithMessage("Compression failed")
var ErrInvalidOption = rootError.WithMessage("Invalid option")
var ErrImageDecode = rootError.WithMessage("Failed to decode image")
var ErrMalformedPayload = rootError.WithMessage("Malformed payload")
var ErrChecksumMismatch = rootError.WithMessage("Checksum mismatch")
var ErrBufferOverflow = rootError.WithMessage("Output buffer overflow")

func (e baseConversionError) Error() string {
	return string(e)
}

func (e baseConversionError) WithMessage(message string) ConversionError {
	return customConversionError{
		message:       message,
		originalError: e,
	}
}

func (e baseConversionError) Wrap(err error) ConversionError {
	return customConversionError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customConversionError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customConversionError) Error() string {
	return e.message
}

func (e customConversionError) WithMessage(message string) ConversionError {
	return customConversionError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customConversionError) Wrap(err error) ConversionError {
	return customConversionError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customConversionError) Unwrap() error {
	return e.originalError
}
