// Package compression encodes packed monochrome bitmaps as text that can be
// embedded in a ZPL `^GF` graphic field.
//
// Two encodings are supported:
//
// # Z64
//
// The bitmap is compressed with zlib (deflate with a zlib header and Adler-32
// trailer), the result is base64-encoded, and a 16-bit checksum of the base64
// text is appended:
//
//	:Z64:eJxjYGBgAAAABQAB:b53a
//
// # ACS
//
// The ASCII compression scheme works on the hexadecimal rendering of the bitmap.
// A run of three or more of the same hex digit is replaced by one or more count
// markers followed by the digit once. Counts are built additively:
//
//	z       400
//	g .. y  20, 40, ..., 380
//	G .. Y  1, 2, ..., 19
//
// For example, 22 copies of `a` are written as `gHa`, and a run of 425 zeroes as
// `zgK0`. Runs of one or two digits are copied unchanged, so an ACS payload is
// never longer than the hex text it was built from.
//
// ACS payloads carry no checksum.

package compression
