// Package decode turns raw bytes into the display strings used for
// annotation labels.
//
// A Type names a fixed-size numeric encoding (u8 through u64, i8 through
// i64, f16, f32 and f64). Decode reads exactly Type.Size bytes in the given
// ByteOrder and formats integers in decimal and floats with six fractional
// digits:
//
//	s, _ := decode.U16.Decode([]byte{0x34, 0x12}, decode.Little) // "4660"
//	s, _ = decode.F32.Decode(b, decode.Big)                      // "3.141590"
package decode
