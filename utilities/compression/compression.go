package compression

import (
	"fmt"
	"strings"

	zerr "github.com/dargueta/zplimage/errors"
	"github.com/klauspost/compress/zlib"
)

// Format identifies a payload encoding.
type Format int

const (
	// FormatACS is the hex run-length encoding.
	FormatACS Format = iota
	// FormatZ64 is zlib + base64 with a trailing checksum.
	FormatZ64
)

func (f Format) String() string {
	switch f {
	case FormatACS:
		return "ACS"
	case FormatZ64:
		return "Z64"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts a format name (ACS or Z64, in any case) to a [Format].
// An empty name selects ACS.
func ParseFormat(name string) (Format, error) {
	switch strings.ToUpper(name) {
	case "", "ACS":
		return FormatACS, nil
	case "Z64":
		return FormatZ64, nil
	}
	return FormatACS, zerr.ErrInvalidOption.WithMessage(
		fmt.Sprintf("unrecognized format %q: expected ACS or Z64", name))
}

// Codec converts packed bitmap bytes to a text payload and back.
type Codec interface {
	Format() Format
	Encode(data []byte) (string, error)
	Decode(payload string) ([]byte, error)
}

// ACSCodec encodes with [EncodeACS].
type ACSCodec struct{}

func (ACSCodec) Format() Format {
	return FormatACS
}

func (ACSCodec) Encode(data []byte) (string, error) {
	return EncodeACS(data)
}

func (ACSCodec) Decode(payload string) ([]byte, error) {
	return DecodeACS(payload)
}

// DeflateCodec encodes with [EncodeZ64].
type DeflateCodec struct {
	// Level is a zlib compression level, from [zlib.HuffmanOnly] to
	// [zlib.BestCompression].
	Level int
}

// NewDeflateCodec creates a [DeflateCodec] using the default compression level.
func NewDeflateCodec() DeflateCodec {
	return DeflateCodec{Level: zlib.DefaultCompression}
}

func (DeflateCodec) Format() Format {
	return FormatZ64
}

func (c DeflateCodec) Encode(data []byte) (string, error) {
	return EncodeZ64(data, c.Level)
}

func (DeflateCodec) Decode(payload string) ([]byte, error) {
	return DecodeZ64(payload)
}

// NewCodec returns a codec with default settings for the given format.
func NewCodec(format Format) (Codec, error) {
	switch format {
	case FormatACS:
		return ACSCodec{}, nil
	case FormatZ64:
		return NewDeflateCodec(), nil
	}
	return nil, zerr.ErrInvalidOption.WithMessage(
		fmt.Sprintf("unsupported format %s", format))
}
