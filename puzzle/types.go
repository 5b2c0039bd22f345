// Package puzzle defines core types and sentinel errors for the puzzle
// document model.
package puzzle

import (
	"errors"

	"github.com/katalvlaran/hexcube/cube"
)

// Sentinel errors for document handling. Validation failures wrap these
// with positional context; classify with errors.Is.
var (
	// ErrUnknownDifficulty indicates a difficulty label outside the grade
	// set.
	ErrUnknownDifficulty = errors.New("puzzle: unknown difficulty")
	// ErrBadVersion indicates a document version this package does not
	// speak.
	ErrBadVersion = errors.New("puzzle: unsupported document version")
	// ErrBadCellCount indicates given/empty counts that disagree with the
	// cell list or the difficulty grade.
	ErrBadCellCount = errors.New("puzzle: inconsistent cell counts")
	// ErrBadPosition indicates a cell position outside the cube bounds.
	ErrBadPosition = errors.New("puzzle: cell position out of range")
	// ErrDuplicatePosition indicates two cells claiming the same position.
	ErrDuplicatePosition = errors.New("puzzle: duplicate cell position")
	// ErrBadValue indicates a cell value that is not one lowercase
	// hexadecimal digit.
	ErrBadValue = errors.New("puzzle: cell value is not a hexadecimal digit")
	// ErrBadCellType indicates a cell type other than "given".
	ErrBadCellType = errors.New("puzzle: unsupported cell type")
	// ErrNoTimestamp indicates a document without a generation time.
	ErrNoTimestamp = errors.New("puzzle: missing generation timestamp")
)

// Version is the document schema version this package reads and writes.
const Version = 1

// CellType tags how a stored cell behaves in the game client.
type CellType string

// CellTypeGiven marks a pre-filled, non-editable cell. Empty cells are
// never stored, so no other type appears in version 1 documents.
const CellTypeGiven CellType = "given"

// Position is a cell address on the wire: [row, col, layer], each
// component in [0, cube.Size).
type Position [3]int

// PositionOf converts a cube coordinate into its wire form.
func PositionOf(p cube.Coord) Position {
	return Position{p.Row, p.Col, p.Layer}
}

// Coord converts the wire form back into a cube coordinate.
func (p Position) Coord() cube.Coord {
	return cube.Coord{Row: p[0], Col: p[1], Layer: p[2]}
}

// InBounds reports whether every component lies within [0, cube.Size).
func (p Position) InBounds() bool {
	return p.Coord().InBounds()
}

// Cell is one stored (given) cell of a puzzle document.
type Cell struct {
	Position Position `json:"position"`
	Value    string   `json:"value"`
	Type     CellType `json:"type"`
}

// Symbol parses the cell's value digit.
func (c Cell) Symbol() (cube.Symbol, error) {
	if len(c.Value) != 1 {
		return 0, ErrBadValue
	}

	s, err := cube.ParseSymbol(c.Value[0])
	if err != nil {
		return 0, ErrBadValue
	}

	return s, nil
}
