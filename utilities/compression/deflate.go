package compression

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	zerr "github.com/dargueta/zplimage/errors"
	"github.com/dargueta/zplimage/utilities/checksum"
	"github.com/klauspost/compress/zlib"
)

// Z64Prefix starts every Z64 payload.
const Z64Prefix = ":Z64:"

// CompressZ64 compresses everything read from the input with zlib at the given
// compression level and writes the result to the output as base64 text. The
// base64 text is returned as well, since the checksum is computed over it.
func CompressZ64(input io.Reader, output io.Writer, level int) (string, error) {
	compressed := bytes.Buffer{}

	zWriter, err := zlib.NewWriterLevel(&compressed, level)
	if err != nil {
		return "", zerr.ErrCompressionFailed.Wrap(err)
	}
	if _, err = io.Copy(zWriter, input); err != nil {
		zWriter.Close()
		return "", zerr.ErrCompressionFailed.Wrap(err)
	}
	// Close flushes the final block and the Adler-32 trailer.
	if err = zWriter.Close(); err != nil {
		return "", zerr.ErrCompressionFailed.Wrap(err)
	}

	encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())
	if _, err = io.WriteString(output, encoded); err != nil {
		return "", fmt.Errorf("failed to write to output: %w", err)
	}
	return encoded, nil
}

// EncodeZ64 returns the complete Z64 payload for `data`, in the form
// `:Z64:<base64>:<crc>`.
func EncodeZ64(data []byte, level int) (string, error) {
	var output strings.Builder
	output.WriteString(Z64Prefix)

	encoded, err := CompressZ64(bytes.NewReader(data), &output, level)
	if err != nil {
		return "", err
	}

	crc, err := checksum.CRC16(encoded)
	if err != nil {
		return "", err
	}
	output.WriteByte(':')
	output.WriteString(crc)
	return output.String(), nil
}

// DecodeZ64 verifies the checksum of a Z64 payload and returns the
// decompressed data.
func DecodeZ64(payload string) ([]byte, error) {
	if !strings.HasPrefix(payload, Z64Prefix) {
		return nil, zerr.ErrMalformedPayload.WithMessage(
			fmt.Sprintf("Z64 data must start with %q", Z64Prefix))
	}

	body := payload[len(Z64Prefix):]
	separator := strings.LastIndexByte(body, ':')
	if separator < 0 {
		return nil, zerr.ErrMalformedPayload.WithMessage("Z64 data has no checksum")
	}
	encoded, expectedCRC := body[:separator], body[separator+1:]

	actualCRC, err := checksum.CRC16(encoded)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(actualCRC, expectedCRC) {
		return nil, zerr.ErrChecksumMismatch.WithMessage(
			fmt.Sprintf("expected %s, got %s", expectedCRC, actualCRC))
	}

	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, zerr.ErrMalformedPayload.Wrap(err)
	}

	zReader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, zerr.ErrMalformedPayload.Wrap(err)
	}
	defer zReader.Close()

	data, err := io.ReadAll(zReader)
	if err != nil {
		return nil, zerr.ErrMalformedPayload.Wrap(err)
	}
	return data, nil
}
