package zplimage

import (
	zerr "github.com/dargueta/zplimage/errors"
)

type ConversionError = zerr.ConversionError

var ErrInvalidWidth = zerr.ErrInvalidWidth
var ErrCharacterOutOfRange = zerr.ErrCharacterOutOfRange
var ErrCompressionFailed = zerr.ErrCompressionFailed
var ErrInvalidOption = zerr.ErrInvalidOption
var ErrImageDecode = zerr.ErrImageDecode
var ErrMalformedPayload = zerr.ErrMalformedPayload
var ErrChecksumMismatch = zerr.ErrChecksumMismatch
var ErrBufferOverflow = zerr.ErrBufferOverflow
