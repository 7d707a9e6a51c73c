package zplimage_test

import (
	"errors"
	"testing"

	"github.com/dargueta/zplimage"
	zerr "github.com/dargueta/zplimage/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorsAreShared(t *testing.T) {
	newErr := zerr.ErrInvalidWidth.WithMessage("width must be positive, got 0")
	assert.ErrorIs(t, newErr, zplimage.ErrInvalidWidth)
	assert.Equal(t, "Invalid width: width must be positive, got 0", newErr.Error())
}

func TestErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := zplimage.ErrCompressionFailed.Wrap(originalErr)
	expectedMessage := "Compression failed: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, zplimage.ErrCompressionFailed, "sentinel not set as parent")
}
