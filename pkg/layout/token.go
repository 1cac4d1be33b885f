package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianm/hexnote/pkg/decode"
)

// Token is one element of a layout: a field of some type, or a skip.
type Token struct {
	Type  decode.Type
	Field string

	// Skip is the number of bytes to pass over. Tokens with Skip > 0 have
	// no Type.
	Skip int
}

// Parse reads a single token.
func Parse(s string) (Token, error) {
	if bits, ok := strings.CutPrefix(s, "."); ok {
		return parseSkip(s, bits)
	}

	typ, field, hasField := strings.Cut(s, ":")
	if hasField && field == "" {
		return Token{}, &TokenError{Token: s, Err: ErrEmptyField}
	}

	t, err := decode.ParseType(typ)
	if err != nil {
		return Token{}, &TokenError{Token: s, Err: err}
	}
	return Token{Type: t, Field: field}, nil
}

func parseSkip(s, bits string) (Token, error) {
	n, err := strconv.ParseUint(bits, 10, 32)
	switch {
	case err != nil:
		return Token{}, &TokenError{Token: s, Err: fmt.Errorf("%w: expected .N where N is a number of bits", ErrSkipSyntax)}
	case n == 0:
		return Token{}, &TokenError{Token: s, Err: ErrZeroSkip}
	case n%8 != 0:
		return Token{}, &TokenError{Token: s, Err: fmt.Errorf("%w, got %d", ErrUnalignedSkip, n)}
	}
	return Token{Skip: int(n / 8)}, nil
}

// ParseAll parses every token, stopping at the first error.
func ParseAll(tokens []string) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	for _, s := range tokens {
		t, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// IsSkip reports whether t skips bytes rather than decoding a field.
func (t Token) IsSkip() bool {
	return t.Skip > 0
}

// Size is the number of bytes t consumes.
func (t Token) Size() int {
	if t.IsSkip() {
		return t.Skip
	}
	return t.Type.Size()
}

// Name is the field name, or the type name when the field is unnamed.
func (t Token) Name() string {
	if t.Field != "" {
		return t.Field
	}
	return t.Type.String()
}

// String returns the token as it would be written on the command line.
func (t Token) String() string {
	switch {
	case t.IsSkip():
		return "." + strconv.Itoa(t.Skip*8)
	case t.Field != "":
		return t.Type.String() + ":" + t.Field
	}
	return t.Type.String()
}
