package decode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseByteOrder(t *testing.T) {
	tests := map[string]ByteOrder{
		"little": Little,
		"LE":     Little,
		"big":    Big,
		"be":     Big,
		"Native": Native,
	}
	for in, want := range tests {
		got, err := ParseByteOrder(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseByteOrder("middle")
	require.ErrorIs(t, err, ErrUnknownByteOrder)
}

func TestByteOrder_ZeroValueIsLittle(t *testing.T) {
	var o ByteOrder
	require.Equal(t, Little, o)
	require.Equal(t, binary.LittleEndian, o.Binary())
}

func TestByteOrder_Binary(t *testing.T) {
	require.Equal(t, binary.BigEndian, Big.Binary())
	require.Equal(t, binary.NativeEndian, Native.Binary())
}

func TestByteOrder_Text(t *testing.T) {
	for _, o := range []ByteOrder{Little, Big, Native} {
		text, err := o.MarshalText()
		require.NoError(t, err)

		var got ByteOrder
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, o, got)
	}

	var o ByteOrder
	require.Error(t, o.UnmarshalText([]byte("sideways")))
}
