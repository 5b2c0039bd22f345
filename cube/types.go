// Package cube defines core types, dimension constants, and sentinel errors
// for the hexcube construction.
package cube

import (
	"errors"
)

// Sentinel errors for cube operations.
var (
	// ErrCoordOutOfRange indicates a coordinate component outside [0, Size).
	ErrCoordOutOfRange = errors.New("cube: coordinate out of range")
	// ErrBadSymbol indicates a byte that is not a hexadecimal digit.
	ErrBadSymbol = errors.New("cube: not a hexadecimal symbol")
)

// Dimension constants. Size is the edge length of the cube and the number of
// distinct symbols; BlockSize is the edge of the square sub-blocks tiling
// every face, with Size = BlockSize².
const (
	// BlockSize is the edge length of one face block.
	BlockSize = 4

	// Size is the cube edge length and the cardinality of the symbol set.
	Size = BlockSize * BlockSize

	// CellCount is the total number of cells, Size³.
	CellCount = Size * Size * Size
)

// HexDigits is the fixed symbol alphabet. Symbol s renders as HexDigits[s].
// It is process-wide read-only state; never mutate it.
const HexDigits = "0123456789abcdef"

// Symbol is a cube cell value in [0, Size).
type Symbol uint8

// String returns the lowercase hexadecimal digit for s, or "?" when s is
// outside [0, Size).
func (s Symbol) String() string {
	if int(s) >= Size {
		return "?"
	}

	return HexDigits[s : s+1]
}

// Hex returns the lowercase hexadecimal digit byte for s.
// Contract: s must be in [0, Size); use ParseSymbol for untrusted bytes.
func (s Symbol) Hex() byte {
	return HexDigits[s]
}

// ParseSymbol converts a single hexadecimal digit into a Symbol.
// Both cases are accepted ('a'–'f' and 'A'–'F'); anything else returns
// ErrBadSymbol.
func ParseSymbol(b byte) (Symbol, error) {
	switch {
	case b >= '0' && b <= '9':
		return Symbol(b - '0'), nil
	case b >= 'a' && b <= 'f':
		return Symbol(b-'a') + 10, nil
	case b >= 'A' && b <= 'F':
		return Symbol(b-'A') + 10, nil
	default:
		return 0, ErrBadSymbol
	}
}

// Coord identifies a single cell as an ordered (row, col, layer) triple,
// each component in [0, Size).
type Coord struct {
	Row   int
	Col   int
	Layer int
}

// InBounds reports whether every component of p lies within [0, Size).
// Complexity: O(1).
func (p Coord) InBounds() bool {
	return p.Row >= 0 && p.Row < Size &&
		p.Col >= 0 && p.Col < Size &&
		p.Layer >= 0 && p.Layer < Size
}

// Index maps p to its canonical flat index in [0, CellCount) using the
// internal (layer, row, col) iteration order.
// Contract: p must be in bounds.
// Complexity: O(1).
func (p Coord) Index() int {
	return (p.Layer*Size+p.Row)*Size + p.Col
}

// CoordOf converts a canonical flat index back into a Coord. It is the
// inverse of Coord.Index for indices in [0, CellCount).
// Complexity: O(1).
func CoordOf(idx int) Coord {
	return Coord{
		Row:   (idx / Size) % Size,
		Col:   idx % Size,
		Layer: idx / (Size * Size),
	}
}
