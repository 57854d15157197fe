package colwidth

import "errors"

var (
	// ErrInvalidArgument is returned for unrecognized configuration values,
	// such as an unknown encoding name.
	ErrInvalidArgument = errors.New("colwidth: invalid argument")
	// ErrOutOfRange is returned when an offset lies outside the text or a
	// span is inverted.
	ErrOutOfRange = errors.New("colwidth: offset out of range")
	// ErrType is returned when a value is neither encoded bytes nor decoded
	// text.
	ErrType = errors.New("colwidth: unsupported text type")
)
