package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is wrapped by every *TokenError.
	ErrInvalidToken = errors.New("layout: invalid token")

	// ErrNotEnoughData indicates the buffer ended before the layout did.
	ErrNotEnoughData = errors.New("layout: not enough data")

	ErrEmptyField    = errors.New("field name cannot be empty")
	ErrSkipSyntax    = errors.New("invalid skip syntax")
	ErrZeroSkip      = errors.New("skip size cannot be 0")
	ErrUnalignedSkip = errors.New("skip size must be a multiple of 8 bits")
)

// TokenError reports a token that could not be parsed.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("layout: invalid token %q: %v", e.Token, e.Err)
}

func (e *TokenError) Unwrap() []error {
	return []error{ErrInvalidToken, e.Err}
}

// TruncatedError reports a field that needed more bytes than remained.
type TruncatedError struct {
	Token  Token
	Offset int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("layout: not enough data: type %s at offset %d needs %d bytes, but only %d available",
		e.Token.Type, e.Offset, e.Token.Size(), e.Have)
}

func (e *TruncatedError) Unwrap() error {
	return ErrNotEnoughData
}
