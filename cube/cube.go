package cube

// Value returns the symbol at (row, col, layer) through the closed-form
// construction. It is pure and deterministic: identical inputs always yield
// the identical symbol, fixed at design time rather than generated per run.
//
// Each axis splits into a base-4 pair (row = 4·ur + vr, and likewise for
// col and layer). The symbol is rebuilt from two base-4 digits mixed by XOR,
// which on [0,4) behaves as addition in a rank-2 binary vector space —
// associative, commutative, and self-inverse:
//
//	us = vr ⊕ uc ⊕ uz ⊕ vz    (high digit)
//	vs = ur ⊕ vc ⊕ vz         (low digit)
//
// Fixing two axes and sweeping the third drives (us, vs) bijectively across
// all sixteen combinations, which is exactly the permutation property the
// beams, face lines, and blocks require. There is no failure mode: the
// function is total over [0, Size)³.
//
// Contract: row, col, layer must lie in [0, Size); use ValueAt for
// untrusted coordinates.
// Complexity: O(1).
func Value(row, col, layer int) Symbol {
	ur, vr := row/BlockSize, row%BlockSize
	uc, vc := col/BlockSize, col%BlockSize
	uz, vz := layer/BlockSize, layer%BlockSize

	us := vr ^ uc ^ uz ^ vz
	vs := ur ^ vc ^ vz

	return Symbol(us<<2 | vs)
}

// ValueAt is the bounds-checked form of Value. It returns
// ErrCoordOutOfRange when any component of p lies outside [0, Size).
// Complexity: O(1).
func ValueAt(p Coord) (Symbol, error) {
	if !p.InBounds() {
		return 0, ErrCoordOutOfRange
	}

	return Value(p.Row, p.Col, p.Layer), nil
}

// Cube is a materialized 16×16×16 symbol array. The zero value is NOT a
// valid solved cube; obtain one from New. Cells are stored in the internal
// (layer, row, col) order. A Cube is an immutable value after construction:
// nothing in this package mutates it, so it may be shared freely across
// goroutines.
type Cube struct {
	cells [Size][Size][Size]Symbol // [layer][row][col]
}

// New materializes the full solved cube by evaluating Value at every
// coordinate.
// Complexity: O(Size³) time and memory.
func New() *Cube {
	var c Cube
	for layer := 0; layer < Size; layer++ {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				c.cells[layer][row][col] = Value(row, col, layer)
			}
		}
	}

	return &c
}

// At returns the symbol stored at (row, col, layer).
// Contract: all components must lie in [0, Size); use AtCoord for untrusted
// coordinates.
// Complexity: O(1).
func (c *Cube) At(row, col, layer int) Symbol {
	return c.cells[layer][row][col]
}

// AtCoord is the bounds-checked form of At. It returns ErrCoordOutOfRange
// when any component of p lies outside [0, Size).
// Complexity: O(1).
func (c *Cube) AtCoord(p Coord) (Symbol, error) {
	if !p.InBounds() {
		return 0, ErrCoordOutOfRange
	}

	return c.cells[p.Layer][p.Row][p.Col], nil
}

// Layer returns a copy of the 16×16 face at the given layer index, indexed
// [row][col]. The copy shares no storage with the cube.
// Returns ErrCoordOutOfRange when layer lies outside [0, Size).
// Complexity: O(Size²).
func (c *Cube) Layer(layer int) ([Size][Size]Symbol, error) {
	var face [Size][Size]Symbol
	if layer < 0 || layer >= Size {
		return face, ErrCoordOutOfRange
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			face[row][col] = c.cells[layer][row][col]
		}
	}

	return face, nil
}
