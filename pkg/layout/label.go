package layout

import (
	"fmt"

	"github.com/cbroglie/mustache"
)

// DefaultTemplate renders labels as "name: value". Triple braces keep
// mustache from HTML-escaping field names.
const DefaultTemplate = "{{{name}}}: {{{value}}}"

// LabelFormat renders annotation labels from a mustache template. The
// template sees name, type, value, offset and size.
type LabelFormat struct {
	tmpl *mustache.Template
}

// NewLabelFormat compiles tmpl. An empty tmpl selects DefaultTemplate.
func NewLabelFormat(tmpl string) (*LabelFormat, error) {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	t, err := mustache.ParseString(tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label format: %w", err)
	}
	return &LabelFormat{tmpl: t}, nil
}

var defaultFormat = must(NewLabelFormat(DefaultTemplate))

func must(f *LabelFormat, err error) *LabelFormat {
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders the label for tok decoded as value at offset. A nil
// LabelFormat uses DefaultTemplate.
func (f *LabelFormat) Format(tok Token, value string, offset int) (string, error) {
	if f == nil {
		f = defaultFormat
	}
	out, err := f.tmpl.Render(map[string]any{
		"name":   tok.Name(),
		"type":   tok.Type.String(),
		"value":  value,
		"offset": offset,
		"size":   tok.Size(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render label for %s: %w", tok, err)
	}
	return out, nil
}
