package decode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"
)

// Type is a fixed-size numeric encoding.
type Type int

const (
	U8 Type = iota + 1
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F16
	F32
	F64
)

var typeNames = map[Type]string{
	U8:  "u8",
	U16: "u16",
	U32: "u32",
	U64: "u64",
	I8:  "i8",
	I16: "i16",
	I32: "i32",
	I64: "i64",
	F16: "f16",
	F32: "f32",
	F64: "f64",
}

var aliases = map[string]Type{
	"half":   F16,
	"float":  F32,
	"double": F64,
}

// Types lists every known type in declaration order.
func Types() []Type {
	return []Type{U8, U16, U32, U64, I8, I16, I32, I64, F16, F32, F64}
}

// ParseType returns the type named s. Names are case-insensitive and
// half, float and double are accepted for f16, f32 and f64.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(s)
	if t, ok := aliases[name]; ok {
		return t, nil
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Size returns the number of bytes t occupies, or 0 for an invalid type.
func (t Type) Size() int {
	switch t {
	case U8, I8:
		return 1
	case U16, I16, F16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	}
	return 0
}

// Decode formats the first t.Size() bytes of b. Extra bytes are ignored.
func (t Type) Decode(b []byte, order ByteOrder) (string, error) {
	size := t.Size()
	if size == 0 {
		return "", fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
	if len(b) < size {
		return "", fmt.Errorf("%w: %v needs %d bytes, got %d", ErrShortBuffer, t, size, len(b))
	}

	bo := order.Binary()
	switch t {
	case U8:
		return strconv.FormatUint(uint64(b[0]), 10), nil
	case U16:
		return strconv.FormatUint(uint64(bo.Uint16(b)), 10), nil
	case U32:
		return strconv.FormatUint(uint64(bo.Uint32(b)), 10), nil
	case U64:
		return strconv.FormatUint(bo.Uint64(b), 10), nil
	case I8:
		return strconv.FormatInt(int64(int8(b[0])), 10), nil
	case I16:
		return strconv.FormatInt(int64(int16(bo.Uint16(b))), 10), nil
	case I32:
		return strconv.FormatInt(int64(int32(bo.Uint32(b))), 10), nil
	case I64:
		return strconv.FormatInt(int64(bo.Uint64(b)), 10), nil
	case F16:
		return formatFloat(float64(float16.Frombits(bo.Uint16(b)).Float32()), 32), nil
	case F32:
		return formatFloat(float64(math.Float32frombits(bo.Uint32(b))), 32), nil
	default:
		return formatFloat(math.Float64frombits(bo.Uint64(b)), 64), nil
	}
}

func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'f', 6, bitSize)
}
