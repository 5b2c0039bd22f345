// Package cube - console rendering of single layers.
//
// The format mirrors the fixed-width layout used throughout the project's
// tooling: a "z = <digit>" header, sixteen rows of space-separated hex
// digits grouped into four block columns, and a horizontal divider between
// block bands.
package cube

import (
	"fmt"
	"io"
	"strings"
)

// bandDivider separates the four 4-row bands of a rendered layer.
const bandDivider = "-----------+-----------+-----------+-----------"

// WriteLayer renders the face at the given layer index to w:
//
//	z = 0
//	0 1 2 3 | 4 5 6 7 | 8 9 a b | c d e f
//	...
//	-----------+-----------+-----------+-----------
//	...
//
// The output ends with a blank line so consecutive layers stay visually
// separated. Returns ErrCoordOutOfRange when layer lies outside [0, Size);
// write failures are returned unwrapped.
// Complexity: O(Size²).
func (c *Cube) WriteLayer(w io.Writer, layer int) error {
	if layer < 0 || layer >= Size {
		return ErrCoordOutOfRange
	}

	// Render into a local buffer first so w sees a single write.
	var b strings.Builder
	b.Grow(1 << 10)

	fmt.Fprintf(&b, "z = %c\n", HexDigits[layer])
	for row := 0; row < Size; row++ {
		if row%BlockSize == 0 && row != 0 {
			b.WriteString(bandDivider)
			b.WriteByte('\n')
		}
		for band := 0; band < Size; band += BlockSize {
			if band != 0 {
				b.WriteString(" | ")
			}
			for col := band; col < band+BlockSize; col++ {
				if col != band {
					b.WriteByte(' ')
				}
				b.WriteByte(c.cells[layer][row][col].Hex())
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}

// FormatLayer renders the face at the given layer index as a string. It is
// WriteLayer captured into memory; see WriteLayer for the layout.
// Complexity: O(Size²).
func (c *Cube) FormatLayer(layer int) (string, error) {
	var b strings.Builder
	if err := c.WriteLayer(&b, layer); err != nil {
		return "", err
	}

	return b.String(), nil
}
