package hexdump

// Kind determines how an annotation is colored.
type Kind int

const (
	// KindNormal marks a successfully decoded range.
	KindNormal Kind = iota

	// KindError marks a range that could not be decoded, such as a field
	// cut short by the end of the input.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Annotation labels the byte range [Offset, Offset+Length).
type Annotation struct {
	Offset int
	Length int
	Label  string
	Kind   Kind
}

// NewAnnotation creates a normal annotation.
func NewAnnotation(offset, length int, label string) Annotation {
	return Annotation{Offset: offset, Length: length, Label: label, Kind: KindNormal}
}

// ErrorAnnotation creates an annotation marking undecodable bytes.
func ErrorAnnotation(offset, length int, label string) Annotation {
	return Annotation{Offset: offset, Length: length, Label: label, Kind: KindError}
}

// End returns the offset one past the last annotated byte.
func (a Annotation) End() int {
	return a.Offset + a.Length
}

// span clamps the annotation to a buffer of size n. It reports false when
// nothing of the annotation lies inside the buffer.
func (a Annotation) span(n int) (start, end int, ok bool) {
	if a.Offset < 0 || a.Length <= 0 || a.Offset >= n {
		return 0, 0, false
	}
	end = n
	if a.Length < n-a.Offset {
		end = a.Offset + a.Length
	}
	return a.Offset, end, true
}

func (a Annotation) role() Role {
	if a.Kind == KindError {
		return RoleError
	}
	return RoleHex
}
