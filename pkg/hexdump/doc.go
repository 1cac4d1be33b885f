// Package hexdump renders annotated hexdumps.
//
// A dump is a sequence of 16-byte lines. Every line starts with the offset
// of its first byte followed by the bytes in hex, grouped 8+8:
//
//	00000000  2a 34 12 78 56 34 12
//	         └──┘                                               u8: 42
//	            └─────┘                                         u16: 4660
//	                  └───────────┘                             u32: 305419896
//	00000007
//
// Each annotation that overlaps a line gets its own underline row below
// it, in the order the annotations were given. Labels start at
// LabelColumn on every row, whatever the width of the underline, so the
// decoded values read as a single column.
//
// Annotations that span several lines are drawn open-ended: the first row
// has the opening corner and the label, the last row has the closing
// corner, and rows in between are plain horizontal runs.
//
// # Out of range annotations
//
// An annotation that runs past the end of the buffer is clamped to the
// buffer and closed at its last byte. One that starts at or beyond the end
// of the buffer overlaps no line and is not drawn. Zero-length annotations
// are not drawn either.
//
// # Colors
//
// Rendering is driven by a ColorPolicy value. Color capability detection is
// left to the caller; Render never consults the environment.
package hexdump
