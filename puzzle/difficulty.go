package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/hexcube/cube"
)

// Difficulty grades how much of the solved cube a puzzle reveals.
type Difficulty uint8

const (
	// Easy reveals 70% of all cells.
	Easy Difficulty = iota
	// Medium reveals 50% of all cells.
	Medium
	// Hard reveals 30% of all cells.
	Hard
)

// Difficulties lists every grade in ascending hardness, for iteration and
// user-facing listings.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a textual label onto a grade. Labels are matched
// case-insensitively after trimming surrounding space; anything outside
// the grade set returns ErrUnknownDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// String returns the lowercase label of the grade.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

// valid reports whether d is one of the declared grades.
func (d Difficulty) valid() bool {
	return d <= Hard
}

// Ratio returns the fraction of cells revealed as givens. Grades outside
// the declared set keep the easy ratio, preserving the historical
// fallback of the original puzzle cache format.
func (d Difficulty) Ratio() float64 {
	switch d {
	case Medium:
		return 0.50
	case Hard:
		return 0.30
	default:
		return 0.70
	}
}

// GivenCount returns how many cells a puzzle of this grade reveals:
// the ratio applied to the full cell count, truncated to a whole cell
// (2867, 2048, 1228 for easy, medium, hard).
func (d Difficulty) GivenCount() int {
	return int(float64(cube.CellCount) * d.Ratio())
}

// EmptyCount returns how many cells a puzzle of this grade leaves blank.
func (d Difficulty) EmptyCount() int {
	return cube.CellCount - d.GivenCount()
}

// MarshalJSON encodes the grade as its lowercase label. Grades outside
// the declared set fail with ErrUnknownDifficulty.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	if !d.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, uint8(d))
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a difficulty label, rejecting unknown ones.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("puzzle: difficulty must be a string: %w", err)
	}

	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
