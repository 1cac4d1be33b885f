package decode

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ByteOrder selects how multi-byte values are read. The zero value is
// Little.
type ByteOrder int

const (
	Little ByteOrder = iota
	Big
	Native
)

// ParseByteOrder accepts native, little (le) and big (be), ignoring case.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	case "native":
		return Native, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownByteOrder, s)
}

// Binary returns the encoding/binary order for o. Native resolves to the
// order of the running machine.
func (o ByteOrder) Binary() binary.ByteOrder {
	switch o {
	case Big:
		return binary.BigEndian
	case Native:
		return binary.NativeEndian
	default:
		return binary.LittleEndian
	}
}

func (o ByteOrder) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	case Native:
		return "native"
	}
	return fmt.Sprintf("ByteOrder(%d)", int(o))
}

// UnmarshalText lets a ByteOrder be read from config files.
func (o *ByteOrder) UnmarshalText(text []byte) error {
	v, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (o ByteOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
