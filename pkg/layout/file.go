package layout

import (
	"fmt"

	"github.com/brianm/hexnote/pkg/config"
	"github.com/brianm/hexnote/pkg/decode"
)

// File is a layout stored on disk, as YAML, JSON or CUE:
//
//	byte_order: big
//	fields:
//	  - u16:magic
//	  - ".32"
//	  - u16:data
//	label_format: "{{{name}}} = {{{value}}}"
type File struct {
	ByteOrder   string   `yaml:"byte_order,omitempty" json:"byte_order,omitempty"`
	Fields      []string `yaml:"fields" json:"fields"`
	LabelFormat string   `yaml:"label_format,omitempty" json:"label_format,omitempty"`
}

// LoadFile reads and validates the layout file at path.
func LoadFile(path string) (*File, error) {
	f, err := config.LoadFromFile[File](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return f, nil
}

// Validate checks that every field parses and that the byte order and
// label format, when set, are usable.
func (f *File) Validate() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("fields is required")
	}
	if _, err := f.Tokens(); err != nil {
		return err
	}
	if _, _, err := f.Order(); err != nil {
		return fmt.Errorf("invalid byte_order: %w", err)
	}
	if _, err := NewLabelFormat(f.LabelFormat); err != nil {
		return fmt.Errorf("invalid label_format: %w", err)
	}
	return nil
}

// Tokens parses Fields.
func (f *File) Tokens() ([]Token, error) {
	return ParseAll(f.Fields)
}

// Order returns the byte order named by the file. The boolean is false
// when the file leaves it unset.
func (f *File) Order() (decode.ByteOrder, bool, error) {
	if f.ByteOrder == "" {
		return decode.Little, false, nil
	}
	o, err := decode.ParseByteOrder(f.ByteOrder)
	if err != nil {
		return 0, false, err
	}
	return o, true, nil
}
