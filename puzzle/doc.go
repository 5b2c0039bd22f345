// Package puzzle defines the playable-puzzle document model: difficulty
// grades and the JSON wire format consumed by game clients.
//
// What:
//
//   - Difficulty grades (easy, medium, hard) fix the fraction of the 4096
//     cube cells revealed as givens: 70%, 50%, and 30%, truncated to
//     whole cells (2867, 2048, 1228).
//   - Document is the cached-puzzle artifact. Only given cells are
//     stored; every absent cell is implicitly empty and editable.
//   - Encode and Decode move documents across JSON; Validate enforces the
//     schema invariants on any document regardless of origin.
//
// Wire format (version 1):
//
//	{
//	  "version": 1,
//	  "difficulty": "easy",
//	  "generatedAt": "2026-01-02T15:04:05Z",
//	  "cells": [
//	    {"position": [3, 14, 0], "value": "2", "type": "given"},
//	    ...
//	  ],
//	  "givenCellCount": 2867,
//	  "emptyCellCount": 1229
//	}
//
// A cell position is the [row, col, layer] triple, each component in
// [0,16); values are single lowercase hexadecimal digits. Cell order in
// the array carries no meaning and decoders must not rely on it.
//
// Errors: every validation failure wraps one of the package sentinels
// (ErrUnknownDifficulty, ErrBadVersion, ErrBadCellCount, ErrBadPosition,
// ErrDuplicatePosition, ErrBadValue, ErrBadCellType, ErrNoTimestamp), so
// callers classify with errors.Is.
package puzzle
