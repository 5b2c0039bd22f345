package cube_test

import (
	"testing"

	"github.com/katalvlaran/hexcube/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullMask has one bit set per symbol; a line covering all sixteen symbols
// accumulates exactly this mask.
const fullMask = 1<<cube.Size - 1

// TestValue_Anchors pins the construction to known coordinates so an
// accidental change to the mixing rule cannot slip through unnoticed.
func TestValue_Anchors(t *testing.T) {
	// Layer 0, row 0 is the identity sequence: symbol == col.
	for col := 0; col < cube.Size; col++ {
		assert.Equal(t, cube.Symbol(col), cube.Value(0, col, 0), "layer 0 row 0 must be the identity sequence")
	}

	assert.Equal(t, cube.Symbol(0), cube.Value(0, 0, 0), "origin cell")
	assert.Equal(t, cube.Symbol(4), cube.Value(1, 0, 0), "row low digit feeds the high symbol digit")
	assert.Equal(t, cube.Symbol(1), cube.Value(4, 0, 0), "row high digit feeds the low symbol digit")
	assert.Equal(t, cube.Symbol(5), cube.Value(0, 0, 1), "layer low digit feeds both symbol digits")
	assert.Equal(t, cube.Symbol(3), cube.Value(15, 15, 15), "far corner cell")
}

// TestValue_TotalAndDeterministic sweeps every coordinate: each value must
// land in [0, Size) and re-evaluation must reproduce it exactly.
func TestValue_TotalAndDeterministic(t *testing.T) {
	for layer := 0; layer < cube.Size; layer++ {
		for row := 0; row < cube.Size; row++ {
			for col := 0; col < cube.Size; col++ {
				s := cube.Value(row, col, layer)
				require.Less(t, int(s), cube.Size, "symbol out of range at (%d,%d,%d)", row, col, layer)
				require.Equal(t, s, cube.Value(row, col, layer), "re-evaluation must be identical at (%d,%d,%d)", row, col, layer)
			}
		}
	}
}

// TestValue_AxisLinesArePermutations checks that every full row, column, and
// beam covers all sixteen symbols. The exhaustive face/block audit lives in
// the verify package; this guards the construction in isolation.
func TestValue_AxisLinesArePermutations(t *testing.T) {
	for a := 0; a < cube.Size; a++ {
		for b := 0; b < cube.Size; b++ {
			var rowMask, colMask, beamMask uint16
			for i := 0; i < cube.Size; i++ {
				rowMask |= 1 << cube.Value(a, i, b)
				colMask |= 1 << cube.Value(i, a, b)
				beamMask |= 1 << cube.Value(a, b, i)
			}
			require.Equal(t, uint16(fullMask), rowMask, "row (row=%d, layer=%d) is not a permutation", a, b)
			require.Equal(t, uint16(fullMask), colMask, "column (col=%d, layer=%d) is not a permutation", a, b)
			require.Equal(t, uint16(fullMask), beamMask, "beam (row=%d, col=%d) is not a permutation", a, b)
		}
	}
}

// TestValueAt_Bounds verifies the checked accessor: in-bounds coordinates
// agree with Value, and each out-of-range component yields
// ErrCoordOutOfRange.
func TestValueAt_Bounds(t *testing.T) {
	s, err := cube.ValueAt(cube.Coord{Row: 3, Col: 7, Layer: 11})
	require.NoError(t, err, "in-bounds coordinate must not error")
	assert.Equal(t, cube.Value(3, 7, 11), s, "checked and unchecked access must agree")

	bad := []cube.Coord{
		{Row: -1, Col: 0, Layer: 0},
		{Row: cube.Size, Col: 0, Layer: 0},
		{Row: 0, Col: -1, Layer: 0},
		{Row: 0, Col: cube.Size, Layer: 0},
		{Row: 0, Col: 0, Layer: -1},
		{Row: 0, Col: 0, Layer: cube.Size},
	}
	for _, p := range bad {
		_, err := cube.ValueAt(p)
		assert.ErrorIs(t, err, cube.ErrCoordOutOfRange, "coordinate %+v must be rejected", p)
	}
}

// TestNew_MatchesValue materializes the cube and cross-checks every cell
// against the closed form through both accessors.
func TestNew_MatchesValue(t *testing.T) {
	c := cube.New()
	for layer := 0; layer < cube.Size; layer++ {
		for row := 0; row < cube.Size; row++ {
			for col := 0; col < cube.Size; col++ {
				want := cube.Value(row, col, layer)
				require.Equal(t, want, c.At(row, col, layer), "At mismatch at (%d,%d,%d)", row, col, layer)

				got, err := c.AtCoord(cube.Coord{Row: row, Col: col, Layer: layer})
				require.NoError(t, err)
				require.Equal(t, want, got, "AtCoord mismatch at (%d,%d,%d)", row, col, layer)
			}
		}
	}

	_, err := c.AtCoord(cube.Coord{Row: 0, Col: 0, Layer: cube.Size})
	assert.ErrorIs(t, err, cube.ErrCoordOutOfRange, "AtCoord must reject out-of-range coordinates")
}

// TestCube_Layer verifies face extraction returns an accurate copy and
// rejects bad indices.
func TestCube_Layer(t *testing.T) {
	c := cube.New()

	face, err := c.Layer(9)
	require.NoError(t, err, "valid layer index must not error")
	for row := 0; row < cube.Size; row++ {
		for col := 0; col < cube.Size; col++ {
			assert.Equal(t, cube.Value(row, col, 9), face[row][col], "face cell (%d,%d) mismatch", row, col)
		}
	}

	_, err = c.Layer(-1)
	assert.ErrorIs(t, err, cube.ErrCoordOutOfRange, "negative layer must be rejected")
	_, err = c.Layer(cube.Size)
	assert.ErrorIs(t, err, cube.ErrCoordOutOfRange, "layer == Size must be rejected")
}

// TestSymbol_HexAndString covers the rendering pair: Hex for trusted
// symbols, String with its "?" fallback for out-of-range values.
func TestSymbol_HexAndString(t *testing.T) {
	for s := cube.Symbol(0); s < cube.Size; s++ {
		assert.Equal(t, cube.HexDigits[s], s.Hex(), "Hex must index the shared alphabet")
		assert.Equal(t, string(cube.HexDigits[s]), s.String(), "String must agree with Hex for valid symbols")
	}
	assert.Equal(t, "?", cube.Symbol(16).String(), "out-of-range symbols render as ?")
	assert.Equal(t, "?", cube.Symbol(200).String(), "out-of-range symbols render as ?")
}

// TestParseSymbol covers both hexadecimal cases and rejection of
// non-digit bytes.
func TestParseSymbol(t *testing.T) {
	// Round-trip through the canonical lowercase alphabet.
	for s := cube.Symbol(0); s < cube.Size; s++ {
		got, err := cube.ParseSymbol(s.Hex())
		require.NoError(t, err, "canonical digit %q must parse", s.Hex())
		assert.Equal(t, s, got, "round-trip through Hex must be the identity")
	}

	// Uppercase digits map to the same symbols.
	for i, b := range []byte("ABCDEF") {
		got, err := cube.ParseSymbol(b)
		require.NoError(t, err, "uppercase digit %q must parse", b)
		assert.Equal(t, cube.Symbol(10+i), got, "uppercase digit %q maps to symbol %d", b, 10+i)
	}

	for _, b := range []byte{'g', 'G', ' ', '-', 0x00, 0xff} {
		_, err := cube.ParseSymbol(b)
		assert.ErrorIs(t, err, cube.ErrBadSymbol, "byte 0x%02x must be rejected", b)
	}
}

// TestCoord_IndexRoundTrip verifies Index and CoordOf are mutual inverses
// over the whole cell range and that InBounds flags each bad component.
func TestCoord_IndexRoundTrip(t *testing.T) {
	for idx := 0; idx < cube.CellCount; idx++ {
		p := cube.CoordOf(idx)
		require.True(t, p.InBounds(), "CoordOf(%d) must be in bounds", idx)
		require.Equal(t, idx, p.Index(), "Index(CoordOf(%d)) must be the identity", idx)
	}

	assert.Equal(t, 0, cube.Coord{}.Index(), "origin maps to index 0")
	assert.Equal(t, cube.CellCount-1, cube.Coord{Row: 15, Col: 15, Layer: 15}.Index(), "far corner maps to the last index")

	assert.False(t, cube.Coord{Row: -1}.InBounds(), "negative row is out of bounds")
	assert.False(t, cube.Coord{Col: cube.Size}.InBounds(), "col == Size is out of bounds")
	assert.False(t, cube.Coord{Layer: 16}.InBounds(), "layer == Size is out of bounds")
}
