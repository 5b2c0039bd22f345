// Package verify defines the audit's sentinel errors, constraint
// vocabulary, and options.
package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexcube/cube"
)

// Sentinel errors for the audit. Violations wrap ErrViolation so callers
// can classify outcomes with errors.Is and recover detail with errors.As.
var (
	// ErrViolation marks any broken cube constraint.
	ErrViolation = errors.New("verify: constraint violated")
	// ErrNilGrid indicates Verify was handed a nil Grid.
	ErrNilGrid = errors.New("verify: nil grid")
	// ErrBadWorkers indicates a negative Options.Workers.
	ErrBadWorkers = errors.New("verify: workers must be >= 0")
)

// Grid is the read surface the audit walks. *cube.Cube satisfies it; tests
// may substitute any synthetic implementation. At must be safe for
// concurrent readers and is only called with components in [0, cube.Size).
type Grid interface {
	At(row, col, layer int) cube.Symbol
}

// Kind names the constraint family a violation belongs to.
type Kind uint8

const (
	// KindSymbol flags a cell whose value lies outside [0, cube.Size).
	KindSymbol Kind = iota
	// KindBeam flags a layer-axis line with a repeated symbol.
	KindBeam
	// KindRow flags a face row with a repeated symbol.
	KindRow
	// KindCol flags a face column with a repeated symbol.
	KindCol
	// KindBlock flags a 4×4 face block with a repeated symbol.
	KindBlock
)

// String returns the lowercase name of the constraint kind.
func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindBeam:
		return "beam"
	case KindRow:
		return "row"
	case KindCol:
		return "col"
	case KindBlock:
		return "block"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Face names a slice orientation. The slice index of a violation fixes the
// named axis: the layer for FaceXY, the column for FaceXZ, the row for
// FaceYZ.
type Face uint8

const (
	// FaceNone marks families that are not tied to a face (beams, symbol
	// range).
	FaceNone Face = iota
	// FaceXY is a fixed-layer slice.
	FaceXY
	// FaceXZ is a fixed-column slice.
	FaceXZ
	// FaceYZ is a fixed-row slice.
	FaceYZ
)

// String returns the lowercase name of the face orientation.
func (f Face) String() string {
	switch f {
	case FaceNone:
		return "none"
	case FaceXY:
		return "xy"
	case FaceXZ:
		return "xz"
	case FaceYZ:
		return "yz"
	default:
		return fmt.Sprintf("face(%d)", uint8(f))
	}
}

// Violation describes one broken constraint.
//
// Field meaning by Kind:
//
//   - KindSymbol: At and Symbol identify the out-of-range cell; Face is
//     FaceNone and Slice/Index are zero.
//   - KindBeam: Slice is the beam's row, Index its column; Face is
//     FaceNone.
//   - KindRow / KindCol: Slice fixes the face (see Face), Index is the
//     row or column position within that slice.
//   - KindBlock: Slice fixes the face, Index is the block ordinal in
//     [0,16), row-major over the slice's 4×4 block grid.
//
// Symbol is the repeated symbol and At the cell where the repeat was
// detected (the second occurrence in scan order).
type Violation struct {
	Kind   Kind
	Face   Face
	Slice  int
	Index  int
	Symbol cube.Symbol
	At     cube.Coord
}

// Error renders the violation in the vocabulary of its constraint family.
func (v *Violation) Error() string {
	at := fmt.Sprintf("(%d,%d,%d)", v.At.Row, v.At.Col, v.At.Layer)
	switch v.Kind {
	case KindSymbol:
		return fmt.Sprintf("verify: cell %s: symbol %d outside the alphabet", at, v.Symbol)
	case KindBeam:
		return fmt.Sprintf("verify: beam (row=%d, col=%d): symbol %s repeats at %s", v.Slice, v.Index, v.Symbol, at)
	case KindBlock:
		return fmt.Sprintf("verify: %s slice %d, block %d: symbol %s repeats at %s", v.Face, v.Slice, v.Index, v.Symbol, at)
	default:
		return fmt.Sprintf("verify: %s slice %d, %s %d: symbol %s repeats at %s", v.Face, v.Slice, v.Kind, v.Index, v.Symbol, at)
	}
}

// Unwrap ties every Violation to ErrViolation for errors.Is chains.
func (v *Violation) Unwrap() error {
	return ErrViolation
}

// Violations is the audit result in canonical order: beams first, then XY,
// XZ, and YZ slices, each slice scanned rows, columns, blocks.
type Violations []Violation

// Options tune how the audit runs. The zero value is NOT the default;
// obtain a baseline from DefaultOptions.
type Options struct {
	// CollectAll keeps auditing after the first violation and returns
	// every failure. When false the audit stops at the first one.
	CollectAll bool

	// Workers caps the goroutines that audit slices concurrently.
	// 0 and 1 both mean serial. Negative values are rejected with
	// ErrBadWorkers.
	Workers int
}

// DefaultOptions returns the baseline audit configuration: fail-fast and
// serial.
func DefaultOptions() Options {
	return Options{
		CollectAll: false,
		Workers:    1,
	}
}

// validate rejects malformed options with sentinel errors only.
func (o *Options) validate() error {
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}
