// Package checksum implements the 16-bit checksum appended to compressed ZPL
// graphic fields (the `:Z64:<data>:<crc>` form).
//
// The lookup table is generated from the reflected CRC-32 polynomial, but the
// update loop consumes it most-significant byte first and only the low 16 bits
// of the register survive. This is not CRC-16/CCITT and not CRC-32; it has to be
// reproduced exactly for printers and tools that verify the field.

package checksum

import (
	"fmt"

	zerr "github.com/dargueta/zplimage/errors"
)

const polynomial = 0xedb88320

var table = makeTable()

func makeTable() [256]uint32 {
	var t [256]uint32
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = polynomial ^ (crc >> 1)
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update adds `data` to the running checksum `crc` and returns the new value.
// Every byte is valid input. Only the low 16 bits of the result are meaningful.
func Update(crc uint32, data []byte) uint32 {
	for _, c := range data {
		j := (uint32(c) ^ (crc >> 8)) & 0xff
		crc = table[j] ^ (crc << 8)
	}
	return crc
}

// Sum16 returns the checksum of `data` as a number.
func Sum16(data []byte) uint16 {
	return uint16(Update(0, data) & 0xffff)
}

// CRC16 returns the checksum of `text` as four lowercase, zero-padded hex
// digits. Every character of `text` must be in the range [0, 255]; the first one
// that isn't fails with [zerr.ErrCharacterOutOfRange].
//
// `text` is decoded as UTF-8, so a string of raw Latin-1 bytes such as "\xe9"
// is rejected (it decodes to U+FFFD). Use [Sum16] for byte data.
func CRC16(text string) (string, error) {
	buf := make([]byte, 0, len(text))
	offset := 0
	for _, char := range text {
		if char > 0xff {
			msg := fmt.Sprintf("%U at offset %d is not in [0, 255]", char, offset)
			return "", zerr.ErrCharacterOutOfRange.WithMessage(msg)
		}
		buf = append(buf, byte(char))
		offset++
	}
	return fmt.Sprintf("%04x", Sum16(buf)), nil
}
