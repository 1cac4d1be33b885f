package layout

import (
	"fmt"

	"github.com/brianm/hexnote/pkg/decode"
	"github.com/brianm/hexnote/pkg/hexdump"
)

// Build lays tokens over data starting at offset 0 and returns one
// annotation per field, in token order.
//
// A skip that runs past the end of data is an error and no annotations are
// returned. A field that runs past the end produces an error annotation over
// whatever bytes remain, ends the walk, and is reported as a *TruncatedError
// together with the annotations built up to and including it.
func Build(tokens []Token, data []byte, order decode.ByteOrder, format *LabelFormat) ([]hexdump.Annotation, error) {
	annotations := make([]hexdump.Annotation, 0, len(tokens))
	offset := 0

	for _, tok := range tokens {
		size := tok.Size()
		remaining := len(data) - offset

		if tok.IsSkip() {
			if size > remaining {
				return nil, fmt.Errorf("%w: cannot skip %d bytes at offset %d, only %d available",
					ErrNotEnoughData, size, offset, remaining)
			}
			offset += size
			continue
		}

		if size > remaining {
			label := fmt.Sprintf("%s: expected %d bytes, only %d available", tok.Name(), size, remaining)
			annotations = append(annotations, hexdump.ErrorAnnotation(offset, remaining, label))
			return annotations, &TruncatedError{Token: tok, Offset: offset, Have: remaining}
		}

		value, err := tok.Type.Decode(data[offset:offset+size], order)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s at offset %d: %w", tok, offset, err)
		}
		label, err := format.Format(tok, value, offset)
		if err != nil {
			return nil, err
		}

		annotations = append(annotations, hexdump.NewAnnotation(offset, size, label))
		offset += size
	}

	return annotations, nil
}
