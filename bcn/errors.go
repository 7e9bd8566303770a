package bcn

import "errors"

// Code classifies codec and surface errors.
type Code uint32

const (
	// Success is the zero code; it is never carried by a non-nil error.
	Success Code = 0

	// ErrInvalidBlockMode reports a BC6H or BC7 block whose mode selector
	// has no valid interpretation.
	ErrInvalidBlockMode Code = 1

	// ErrNotEnoughData reports a buffer shorter than the computed layout size.
	ErrNotEnoughData Code = 2

	// ErrInvalidDimensions reports zero or otherwise unusable surface dimensions.
	ErrInvalidDimensions Code = 3

	// ErrUnsupportedFormat reports a format requested for an operation it
	// does not support.
	ErrUnsupportedFormat Code = 4

	// ErrPixelCountOverflow reports dimensions whose pixel or byte count
	// overflows the host int.
	ErrPixelCountOverflow Code = 5

	// ErrMipmapOutOfBounds reports a layer or mipmap index outside the surface.
	ErrMipmapOutOfBounds Code = 6

	// ErrTooManyMipmaps reports a mipmap count larger than the dimensions allow.
	ErrTooManyMipmaps Code = 7

	// ErrEncodeFailed reports a failure inside an external block encoder.
	ErrEncodeFailed Code = 8
)

// String returns a stable name for the code, or "" for unknown codes.
func (c Code) String() string {
	switch c {
	case Success:
		return "BCN_SUCCESS"
	case ErrInvalidBlockMode:
		return "BCN_ERR_INVALID_BLOCK_MODE"
	case ErrNotEnoughData:
		return "BCN_ERR_NOT_ENOUGH_DATA"
	case ErrInvalidDimensions:
		return "BCN_ERR_INVALID_DIMENSIONS"
	case ErrUnsupportedFormat:
		return "BCN_ERR_UNSUPPORTED_FORMAT"
	case ErrPixelCountOverflow:
		return "BCN_ERR_PIXEL_COUNT_OVERFLOW"
	case ErrMipmapOutOfBounds:
		return "BCN_ERR_MIPMAP_OUT_OF_BOUNDS"
	case ErrTooManyMipmaps:
		return "BCN_ERR_TOO_MANY_MIPMAPS"
	case ErrEncodeFailed:
		return "BCN_ERR_ENCODE_FAILED"
	default:
		return ""
	}
}

// Error is a typed error carrying a codec error code.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if s := e.Code.String(); s != "" {
		return "bcn: " + s
	}
	return "bcn: error"
}

// CodeOf returns the error code for err, or Success for nil.
//
// For non-*Error errors it returns ErrInvalidDimensions as a conservative
// fallback.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInvalidDimensions
}

func newError(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}
