package compression

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	zerr "github.com/dargueta/zplimage/errors"
)

const (
	// MinACSRunLength is the shortest run of a hex digit that gets replaced with
	// count markers.
	MinACSRunLength = 3

	longRunMarker = 'z'
	longRunLength = 400
	tensRunLength = 20

	tensMarkers = "_ghijklmnopqrstuvwxy"
	unitMarkers = "_GHIJKLMNOPQRSTUVWXY"
)

// CompressACS reads lowercase hex text from the input and writes the ACS
// encoding of it to the output until the input is exhausted. The return value
// is the number of bytes written, only valid if no error occurred.
func CompressACS(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRunGrouper(input)

	totalBytesWritten := int64(0)
	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, err
		}

		var chunk []byte
		if run.Length >= MinACSRunLength {
			chunk = append(RunMarker(run.Length), run.Value)
		} else {
			chunk = bytes.Repeat([]byte{run.Value}, run.Length)
		}

		n, err := output.Write(chunk)
		totalBytesWritten += int64(n)
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
	}
}

// RunMarker returns the count markers for a run of `length` identical digits.
// It returns nothing for lengths below 1.
func RunMarker(length int) []byte {
	marker := make([]byte, 0, length/longRunLength+2)
	for length >= longRunLength {
		marker = append(marker, longRunMarker)
		length -= longRunLength
	}
	if length >= tensRunLength {
		marker = append(marker, tensMarkers[length/tensRunLength])
		length %= tensRunLength
	}
	if length > 0 {
		marker = append(marker, unitMarkers[length])
	}
	return marker
}

// EncodeACS returns the ACS encoding of `data`.
func EncodeACS(data []byte) (string, error) {
	var output strings.Builder
	_, err := CompressACS(strings.NewReader(hex.EncodeToString(data)), &output)
	if err != nil {
		return "", err
	}
	return output.String(), nil
}

// ExpandACS undoes the run-length markers in an ACS payload and returns the
// plain hex text.
func ExpandACS(payload string) (string, error) {
	var output strings.Builder
	output.Grow(len(payload))

	count := 0
	for i := 0; i < len(payload); i++ {
		char := payload[i]
		switch {
		case char == longRunMarker:
			count += longRunLength
		case char >= 'g' && char <= 'y':
			count += tensRunLength * strings.IndexByte(tensMarkers, char)
		case char >= 'G' && char <= 'Y':
			count += strings.IndexByte(unitMarkers, char)
		case isHexDigit(char):
			if count == 0 {
				count = 1
			}
			output.WriteString(strings.Repeat(string(char), count))
			count = 0
		default:
			return "", zerr.ErrMalformedPayload.WithMessage(
				fmt.Sprintf("unexpected character %q at offset %d in ACS data", char, i))
		}
	}

	if count != 0 {
		return "", zerr.ErrMalformedPayload.WithMessage(
			"ACS data ends with a repeat count but no digit")
	}
	return output.String(), nil
}

// DecodeACS converts an ACS payload back to the bytes it was built from.
func DecodeACS(payload string) ([]byte, error) {
	hexText, err := ExpandACS(payload)
	if err != nil {
		return nil, err
	}

	data, err := hex.DecodeString(hexText)
	if err != nil {
		return nil, zerr.ErrMalformedPayload.Wrap(err)
	}
	return data, nil
}

func isHexDigit(char byte) bool {
	return (char >= '0' && char <= '9') ||
		(char >= 'a' && char <= 'f') ||
		(char >= 'A' && char <= 'F')
}
