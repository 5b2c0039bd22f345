package store

import (
	"errors"
	"time"

	"github.com/katalvlaran/hexcube/puzzle"
)

// Sentinel errors for storage operations; classify with errors.Is.
var (
	// ErrNilDocument indicates Save was handed a nil document.
	ErrNilDocument = errors.New("store: nil document")
	// ErrBadID indicates an empty id or one that would escape the
	// storage root.
	ErrBadID = errors.New("store: invalid puzzle id")
	// ErrNotFound indicates no stored puzzle matches the requested id.
	ErrNotFound = errors.New("store: puzzle not found")
)

// Meta is the listing view of one stored puzzle: the document header
// plus the filename-borne id, without the cell payload.
type Meta struct {
	ID             string
	Difficulty     puzzle.Difficulty
	GeneratedAt    time.Time
	GivenCellCount int
	EmptyCellCount int
}
