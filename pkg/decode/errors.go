package decode

import "errors"

var (
	// ErrShortBuffer indicates fewer bytes than the type needs.
	ErrShortBuffer = errors.New("decode: short buffer")

	// ErrUnknownType indicates a type name that is not recognized.
	ErrUnknownType = errors.New("decode: unknown type")

	// ErrUnknownByteOrder indicates a byte order name that is not recognized.
	ErrUnknownByteOrder = errors.New("decode: unknown byte order")
)
