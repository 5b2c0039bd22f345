// Package carve turns a solved hexadecimal Latin cube into a playable
// puzzle document.
//
// What:
//
//   - Puzzle shuffles all 4096 cell positions with a deterministic,
//     seedable stream, reveals the first Difficulty.GivenCount of them
//     as given cells, and assembles a puzzle.Document. Hidden cells are
//     never stored.
//
// Why:
//
//   - Carving is the only randomized step of the pipeline, so the seed
//     policy lives here: identical seeds reproduce identical documents
//     byte for byte (given an identical timestamp), which keeps cached
//     puzzle artifacts diffable and regression-testable.
//
// Determinism:
//
//   - Options.Seed == 0 selects a fixed default stream rather than a
//     time-based source; passing the same non-zero seed replays the same
//     carve. No randomness source other than the seeded stream is
//     consulted.
//
// Complexity: O(cube.CellCount) time and memory per carve.
//
// Errors:
//
//   - ErrNilCube: Puzzle was handed a nil cube.
//   - puzzle sentinel errors: the assembled document is validated before
//     it is returned, so grade and schema failures surface here.
package carve
