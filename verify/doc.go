// Package verify audits a 16×16×16 hexadecimal Latin cube against every
// constraint family it must satisfy.
//
// What:
//
//   - Verify walks all beams (layer-axis lines) and all three face
//     orientations. Every face contributes 16 slices, and every slice is
//     audited line by line: 16 rows, 16 columns, and 16 non-overlapping
//     4×4 blocks, each of which must hold all sixteen symbols exactly
//     once.
//   - Failures surface as Violation values that name the constraint kind,
//     the face orientation, the slice and line, the repeated symbol, and
//     the exact cell where the repeat was observed.
//
// Why:
//
//   - The cube construction is algebraic and deterministic, so the audit
//     is expected to pass; running it turns "correct by design" into
//     "certified on this build" before any puzzle is carved from the
//     cube.
//   - The audit deliberately re-checks lines that multiple face framings
//     share (a beam is also a row of an XZ slice and of a YZ slice).
//     Each family is stated and checked in its own terms so a failure
//     report reads in the vocabulary of the constraint that broke.
//
// Inputs:
//
//   - Verify accepts any Grid, the minimal read surface (*cube.Cube
//     satisfies it), so corrupted or synthetic grids can be audited the
//     same way as the canonical construction.
//
// Modes:
//
//   - Fail-fast (default): the first violation aborts the audit.
//   - CollectAll: the full audit runs and every violation is returned in
//     canonical order (beams, then XY, XZ, YZ slices).
//   - Workers > 1 fans slices out across goroutines. CollectAll results
//     stay canonically ordered; fail-fast parallel returns some
//     violation, not necessarily the canonically first one.
//
// Complexity: O(n³) cell reads for edge length n; each cell is visited a
// constant number of times. Memory is O(1) beyond the violation list.
//
// Errors:
//
//   - ErrNilGrid: Verify was handed a nil Grid.
//   - ErrBadWorkers: Options.Workers is negative.
//   - ErrViolation: wrapped by every Violation; test with errors.Is.
package verify
