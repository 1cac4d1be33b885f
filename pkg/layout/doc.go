// Package layout turns a list of type tokens into annotations over a byte
// buffer.
//
// A token is one of:
//
//	u16          a field decoded as u16 and labeled with the type name
//	u16:magic    the same field labeled "magic"
//	.32          skip 32 bits; the count must be a non-zero multiple of 8
//
// Build walks the tokens from offset 0, decoding each field in place. When
// the buffer ends inside a field, the bytes that remain get an error
// annotation and Build reports a *TruncatedError alongside the annotations
// built so far, so the dump can still be shown.
package layout
