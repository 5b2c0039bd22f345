package carve

import (
	"errors"
	"time"
)

// ErrNilCube indicates Puzzle was handed a nil cube.
var ErrNilCube = errors.New("carve: nil cube")

// Options tune one carve. The zero value is the default configuration.
type Options struct {
	// Seed drives the deterministic position shuffle. 0 selects the fixed
	// default stream, so unseeded runs stay reproducible.
	Seed int64

	// Timestamp is recorded as the document's generation time, normalized
	// to whole seconds in UTC. The zero time means the current wall
	// clock.
	Timestamp time.Time
}

// DefaultOptions returns the baseline carving configuration: the default
// shuffle stream and the current wall clock.
func DefaultOptions() Options {
	return Options{}
}
