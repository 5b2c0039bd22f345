package puzzle

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/hexcube/cube"
)

// Document is one cached puzzle: the given cells carved from a solved
// cube together with the bookkeeping a game client needs to start
// instantly. Only given cells are stored; the remaining positions are
// empty and editable.
type Document struct {
	Version        int        `json:"version"`
	Difficulty     Difficulty `json:"difficulty"`
	GeneratedAt    time.Time  `json:"generatedAt"`
	Cells          []Cell     `json:"cells"`
	GivenCellCount int        `json:"givenCellCount"`
	EmptyCellCount int        `json:"emptyCellCount"`
}

// Encode writes d to w as two-space-indented JSON, the layout game
// clients cache. The document is validated first so a malformed artifact
// never reaches the writer.
func (d *Document) Encode(w io.Writer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("puzzle: encode: %w", err)
	}

	return nil
}

// Decode reads one document from r and validates it. Unknown difficulty
// labels and malformed timestamps fail during decoding; every schema
// invariant is checked before the document is returned.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("puzzle: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate enforces the version 1 schema invariants:
//
//   - the version matches Version and the difficulty is a declared grade;
//   - a generation timestamp is present;
//   - givenCellCount equals both the stored cell count and the grade's
//     revealed-cell count, and given + empty covers the whole cube;
//   - every cell holds an in-bounds, unique position, a hexadecimal
//     value digit, and the "given" type.
//
// The first broken invariant is returned, wrapping its sentinel.
func (d *Document) Validate() error {
	if d.Version != Version {
		return fmt.Errorf("%w: %d", ErrBadVersion, d.Version)
	}
	if !d.Difficulty.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDifficulty, uint8(d.Difficulty))
	}
	if d.GeneratedAt.IsZero() {
		return ErrNoTimestamp
	}
	if d.GivenCellCount != len(d.Cells) {
		return fmt.Errorf("%w: givenCellCount %d but %d cells stored", ErrBadCellCount, d.GivenCellCount, len(d.Cells))
	}
	if d.GivenCellCount+d.EmptyCellCount != cube.CellCount {
		return fmt.Errorf("%w: given %d + empty %d does not cover %d cells", ErrBadCellCount, d.GivenCellCount, d.EmptyCellCount, cube.CellCount)
	}
	if want := d.Difficulty.GivenCount(); d.GivenCellCount != want {
		return fmt.Errorf("%w: grade %s reveals %d cells, document stores %d", ErrBadCellCount, d.Difficulty, want, d.GivenCellCount)
	}

	seen := make(map[int]struct{}, len(d.Cells))
	for i, c := range d.Cells {
		if !c.Position.InBounds() {
			return fmt.Errorf("%w: cell %d at %v", ErrBadPosition, i, c.Position)
		}
		idx := c.Position.Coord().Index()
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: cell %d at %v", ErrDuplicatePosition, i, c.Position)
		}
		seen[idx] = struct{}{}

		if _, err := c.Symbol(); err != nil {
			return fmt.Errorf("%w: cell %d holds %q", ErrBadValue, i, c.Value)
		}
		if c.Type != CellTypeGiven {
			return fmt.Errorf("%w: cell %d tagged %q", ErrBadCellType, i, c.Type)
		}
	}

	return nil
}
