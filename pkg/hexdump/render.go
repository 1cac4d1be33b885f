package hexdump

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// BytesPerLine is the number of bytes shown on each address line.
	BytesPerLine = 16

	// LabelColumn is the display column at which every label starts. The
	// widest underline closes at column 58, under the separator after the
	// 16th byte.
	LabelColumn = 60

	groupSize   = 8
	addrDigits  = 8
	hexStart    = addrDigits + 2
	cornerOpen  = '└'
	cornerClose = '┘'
	horizontal  = "─"
)

// hexColumn returns the display column of the first hex digit of the byte
// at line-local index i.
func hexColumn(i int) int {
	col := hexStart + 3*i
	if i >= groupSize {
		col++
	}
	return col
}

// Render produces the annotated dump of data, one string per output line.
// The last line holds the offset just past the end of data.
//
// Render does not fail; see the package documentation for how degenerate
// annotations are handled.
func Render(data []byte, annotations []Annotation, policy ColorPolicy) []string {
	lines := make([]string, 0, (len(data)+BytesPerLine-1)/BytesPerLine+1)

	var rows []string
	for start := 0; start < len(data); start += BytesPerLine {
		end := min(start+BytesPerLine, len(data))

		// The first annotation covering a byte decides its color.
		var roles [BytesPerLine]Role
		for i := range roles {
			roles[i] = noRole
		}

		rows = rows[:0]
		for _, a := range annotations {
			first, last, ok := a.span(len(data))
			if !ok || first >= end || last <= start {
				continue
			}
			for i := max(first, start); i < min(last, end); i++ {
				if roles[i-start] == noRole {
					roles[i-start] = a.role()
				}
			}
			rows = append(rows, underline(a, first, last, start, end, policy))
		}

		lines = append(lines, addressLine(data[start:end], start, &roles, policy))
		lines = append(lines, rows...)
	}

	return append(lines, address(len(data), policy))
}

func address(offset int, policy ColorPolicy) string {
	return policy.Paint(RoleAddress, fmt.Sprintf("%08x", offset))
}

// addressLine formats the bytes of one line starting at offset, painting
// each with its entry in roles.
func addressLine(line []byte, offset int, roles *[BytesPerLine]Role, policy ColorPolicy) string {
	var b strings.Builder
	b.WriteString(address(offset, policy))
	b.WriteString("  ")

	for i, c := range line {
		switch i {
		case 0:
		case groupSize:
			b.WriteString("  ")
		default:
			b.WriteByte(' ')
		}

		hex := fmt.Sprintf("%02x", c)
		if roles[i] != noRole {
			hex = policy.Paint(roles[i], hex)
		}
		b.WriteString(hex)
	}

	return b.String()
}

// underline draws the row for the part of a (clamped to [first, last))
// that falls on the line [start, end).
func underline(a Annotation, first, last, start, end int, policy ColorPolicy) string {
	from := max(first, start) - start
	to := min(last, end) - start

	openCol := hexColumn(from) - 1
	closeCol := hexColumn(to-1) + 2

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", openCol))
	if first >= start {
		b.WriteRune(cornerOpen)
	} else {
		b.WriteString(horizontal)
	}
	b.WriteString(strings.Repeat(horizontal, closeCol-openCol-1))
	if last <= end {
		b.WriteRune(cornerClose)
	}

	// Only the line holding the first byte carries the label.
	if first < start || a.Label == "" {
		return b.String()
	}

	width := utf8.RuneCountInString(b.String())
	b.WriteString(strings.Repeat(" ", max(LabelColumn-width, 1)))
	b.WriteString(policy.paintLabel(a))
	return b.String()
}
