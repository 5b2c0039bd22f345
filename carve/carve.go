package carve

import (
	"time"

	"github.com/katalvlaran/hexcube/cube"
	"github.com/katalvlaran/hexcube/puzzle"
)

// Puzzle carves a playable document of the given grade out of the solved
// cube c.
//
// All cell positions are shuffled by the seeded stream from opts; the
// first Difficulty.GivenCount positions become the document's given
// cells, recorded in shuffle order with their solved values. The
// remaining positions stay empty and are not stored.
//
// A nil opts means DefaultOptions. The assembled document is validated
// before it is returned, so the result always satisfies
// puzzle.Document.Validate; in particular, grades outside the declared
// set fail with puzzle.ErrUnknownDifficulty.
// Complexity: O(cube.CellCount).
func Puzzle(c *cube.Cube, d puzzle.Difficulty, opts *Options) (*puzzle.Document, error) {
	if c == nil {
		return nil, ErrNilCube
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	order := shuffledIndices(cube.CellCount, rngFromSeed(o.Seed))
	given := d.GivenCount()

	cells := make([]puzzle.Cell, 0, given)
	for _, idx := range order[:given] {
		p := cube.CoordOf(idx)
		cells = append(cells, puzzle.Cell{
			Position: puzzle.PositionOf(p),
			Value:    c.At(p.Row, p.Col, p.Layer).String(),
			Type:     puzzle.CellTypeGiven,
		})
	}

	doc := &puzzle.Document{
		Version:        puzzle.Version,
		Difficulty:     d,
		GeneratedAt:    stamp(o.Timestamp),
		Cells:          cells,
		GivenCellCount: given,
		EmptyCellCount: cube.CellCount - given,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// stamp normalizes the generation time to whole seconds in UTC; the zero
// time means the current wall clock.
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}

	return t.UTC().Truncate(time.Second)
}
