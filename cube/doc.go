// Package cube constructs a fully-solved 16×16×16 hexadecimal Latin cube.
//
// What:
//
//   - Value / ValueAt map a (row, col, layer) coordinate to a symbol in
//     [0,16) through a closed-form algebraic rule — no search, no
//     backtracking, no randomness.
//   - New materializes the whole cube as a dense array; At reads single
//     cells, Layer extracts a 16×16 face at a fixed layer.
//   - WriteLayer / FormatLayer render a layer as hex digits with 4×4
//     block dividers for console inspection.
//
// Why:
//
//   - Puzzle generation: a solved cube is the answer key from which
//     playable puzzles are carved.
//   - The construction is correct by design: every axis-aligned line of
//     16 cells and every 4×4 block of every face orientation holds each
//     symbol exactly once (certified exhaustively by package verify).
//
// Construction:
//
//	Each axis index decomposes into a base-4 pair, row = 4·ur + vr and
//	likewise for col and layer. XOR on [0,4) is addition in a rank-2
//	binary vector space, so mixing the six sub-digits linearly,
//
//	    us = vr ⊕ uc ⊕ uz ⊕ vz
//	    vs = ur ⊕ vc ⊕ vz
//	    symbol = us<<2 | vs
//
//	makes the symbol sweep bijectively over [0,16) whenever one axis
//	varies with the other two held fixed.
//
// Complexity:
//
//   - Value/At:     O(1) per cell.
//   - New:          O(n³) over the 4096 cells, O(n³) memory.
//   - WriteLayer:   O(n²) per layer.
//
// Errors:
//
//   - ErrCoordOutOfRange: a coordinate component lies outside [0,16).
//   - ErrBadSymbol: a byte is not a hexadecimal digit.
package cube
