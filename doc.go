// Package hexcube generates, certifies, and caches 16×16×16 hexadecimal
// Latin cube puzzles — a three-dimensional sudoku over the alphabet 0–f.
//
// 🚀 What is hexcube?
//
//	A small, deterministic toolkit that brings together:
//		• Closed-form construction: every cell from one XOR mixing rule — no search,
//		  no backtracking, no luck
//		• Exhaustive certification: beams plus rows, columns and 4×4 blocks of
//		  every face orientation, audited line by line
//		• Puzzle carving: seeded, reproducible selection of given cells at
//		  easy/medium/hard grades
//		• A compact JSON cache format that game clients load instantly
//		• Filesystem persistence for generated artifacts
//
// ✨ Why hexcube?
//
//   - Correct by design – the algebra guarantees every constraint; the audit
//     turns the guarantee into a certificate on each build
//   - Reproducible – one seed replays one carve, byte for byte
//   - Pure Go – small API, explicit errors, no hidden state
//
// Under the hood, everything is organized under five subpackages and one
// command:
//
//	cube/   — the closed-form construction, coordinates & layer rendering
//	verify/ — the constraint audit across all face framings
//	puzzle/ — difficulty grades & the JSON document model
//	carve/  — deterministic carving of playable puzzles
//	store/  — filesystem persistence of carved artifacts
//	cmd/hexcube-gen — the whole pipeline as a CLI
//
// Quick ASCII example (top band of one solved layer):
//
//	z = 0
//	0 1 2 3 | 4 5 6 7 | 8 9 a b | c d e f
//	4 5 6 7 | 0 1 2 3 | c d e f | 8 9 a b
//	...
//
//	go get github.com/katalvlaran/hexcube
package hexcube
