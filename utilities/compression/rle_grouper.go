package compression

import (
	"bufio"
	"io"
)

// Run represents a single run of one character value in a text stream.
type Run struct {
	// Value is the character repeated in this run.
	Value byte
	// Length gives the number of times the character occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates either EOF was encountered, or an error occurred.
	Length int
	// Offset is the position of the first character of the run in the stream.
	Offset int64
}

// InvalidRun is returned by [RunGrouper.GetNextRun] when no run could be read.
var InvalidRun = Run{}

// RunGrouper splits a stream into maximal runs of identical characters.
type RunGrouper struct {
	rd     *bufio.Reader
	offset int64
}

func NewRunGrouper(rd io.Reader) *RunGrouper {
	return &RunGrouper{rd: bufio.NewReader(rd)}
}

// GetNextRun returns a [Run] for the next character or run of characters in the
// stream. At the end of the stream it returns [InvalidRun] and [io.EOF].
func (grouper *RunGrouper) GetNextRun() (Run, error) {
	first, err := grouper.rd.ReadByte()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return InvalidRun, err
	}

	run := Run{Value: first, Length: 1, Offset: grouper.offset}
	for {
		current, err := grouper.rd.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return InvalidRun, err
		}
		if current != first {
			// Hit a different character, back up and return.
			grouper.rd.UnreadByte()
			break
		}
		run.Length++
	}

	grouper.offset += int64(run.Length)
	return run, nil
}
