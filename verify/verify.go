// Package verify - audit engine.
//
// The audit runs in two stages. Stage one sweeps every cell and rejects
// symbols outside the alphabet, so stage two can index bitmasks without
// guarding each read. Stage two walks the line families in canonical
// order: beams, then the XY, XZ, and YZ slices, each slice scanned rows,
// columns, blocks.
package verify

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/hexcube/cube"
)

// Verify audits g against every constraint family and returns the
// violations found.
//
// A nil opts means DefaultOptions. On success both results are nil. On
// failure the error is the first returned Violation; it wraps
// ErrViolation, so errors.Is(err, ErrViolation) classifies the outcome
// and errors.As recovers the detail.
//
// Stage one (the alphabet sweep) always runs serially and, when it finds
// out-of-range symbols, the line families are not audited: their bitmask
// arithmetic is only meaningful over well-formed symbols.
// Complexity: O(cube.CellCount) cell reads.
func Verify(g Grid, opts *Options) (Violations, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	vs := auditSymbols(g, o.CollectAll)
	if len(vs) == 0 {
		if o.Workers > 1 {
			vs = auditParallel(g, o)
		} else {
			vs = auditSerial(g, o.CollectAll)
		}
	}
	if len(vs) == 0 {
		return nil, nil
	}

	first := vs[0]

	return vs, &first
}

// auditSymbols is stage one: every cell must hold a symbol in
// [0, cube.Size).
func auditSymbols(g Grid, collectAll bool) Violations {
	var out Violations
	for layer := 0; layer < cube.Size; layer++ {
		for row := 0; row < cube.Size; row++ {
			for col := 0; col < cube.Size; col++ {
				s := g.At(row, col, layer)
				if int(s) < cube.Size {
					continue
				}
				out = append(out, Violation{
					Kind:   KindSymbol,
					Symbol: s,
					At:     cube.Coord{Row: row, Col: col, Layer: layer},
				})
				if !collectAll {
					return out
				}
			}
		}
	}

	return out
}

// scanLine walks the 16 cells produced by at and reports the first
// repeated symbol, or nil when the line is a permutation.
// Contract: every symbol read is already known to be in [0, cube.Size).
func scanLine(g Grid, kind Kind, face Face, slice, index int, at func(i int) cube.Coord) *Violation {
	var seen uint16
	for i := 0; i < cube.Size; i++ {
		p := at(i)
		s := g.At(p.Row, p.Col, p.Layer)
		bit := uint16(1) << s
		if seen&bit != 0 {
			return &Violation{Kind: kind, Face: face, Slice: slice, Index: index, Symbol: s, At: p}
		}
		seen |= bit
	}

	return nil
}

// collector appends scan results and reports whether the audit should
// continue.
type collector struct {
	out        Violations
	collectAll bool
}

func (c *collector) add(v *Violation) bool {
	if v == nil {
		return true
	}
	c.out = append(c.out, *v)

	return c.collectAll
}

// auditBeamRow audits the 16 beams whose row index is fixed.
func auditBeamRow(g Grid, row int, collectAll bool) Violations {
	c := collector{collectAll: collectAll}
	for col := 0; col < cube.Size; col++ {
		v := scanLine(g, KindBeam, FaceNone, row, col, func(i int) cube.Coord {
			return cube.Coord{Row: row, Col: col, Layer: i}
		})
		if !c.add(v) {
			break
		}
	}

	return c.out
}

// auditSliceXY audits the rows, columns, and blocks of one fixed-layer
// slice.
func auditSliceXY(g Grid, layer int, collectAll bool) Violations {
	c := collector{collectAll: collectAll}
	for row := 0; row < cube.Size; row++ {
		v := scanLine(g, KindRow, FaceXY, layer, row, func(i int) cube.Coord {
			return cube.Coord{Row: row, Col: i, Layer: layer}
		})
		if !c.add(v) {
			return c.out
		}
	}
	for col := 0; col < cube.Size; col++ {
		v := scanLine(g, KindCol, FaceXY, layer, col, func(i int) cube.Coord {
			return cube.Coord{Row: i, Col: col, Layer: layer}
		})
		if !c.add(v) {
			return c.out
		}
	}
	for block := 0; block < cube.Size; block++ {
		baseRow := block / cube.BlockSize * cube.BlockSize
		baseCol := block % cube.BlockSize * cube.BlockSize
		v := scanLine(g, KindBlock, FaceXY, layer, block, func(i int) cube.Coord {
			return cube.Coord{
				Row:   baseRow + i/cube.BlockSize,
				Col:   baseCol + i%cube.BlockSize,
				Layer: layer,
			}
		})
		if !c.add(v) {
			return c.out
		}
	}

	return c.out
}

// auditSliceXZ audits one fixed-column slice: rows sweep the layer axis,
// columns sweep the row axis, blocks tile the (row, layer) plane.
func auditSliceXZ(g Grid, col int, collectAll bool) Violations {
	c := collector{collectAll: collectAll}
	for row := 0; row < cube.Size; row++ {
		v := scanLine(g, KindRow, FaceXZ, col, row, func(i int) cube.Coord {
			return cube.Coord{Row: row, Col: col, Layer: i}
		})
		if !c.add(v) {
			return c.out
		}
	}
	for layer := 0; layer < cube.Size; layer++ {
		v := scanLine(g, KindCol, FaceXZ, col, layer, func(i int) cube.Coord {
			return cube.Coord{Row: i, Col: col, Layer: layer}
		})
		if !c.add(v) {
			return c.out
		}
	}
	for block := 0; block < cube.Size; block++ {
		baseRow := block / cube.BlockSize * cube.BlockSize
		baseLayer := block % cube.BlockSize * cube.BlockSize
		v := scanLine(g, KindBlock, FaceXZ, col, block, func(i int) cube.Coord {
			return cube.Coord{
				Row:   baseRow + i/cube.BlockSize,
				Col:   col,
				Layer: baseLayer + i%cube.BlockSize,
			}
		})
		if !c.add(v) {
			return c.out
		}
	}

	return c.out
}

// auditSliceYZ audits one fixed-row slice: rows sweep the layer axis,
// columns sweep the column axis, blocks tile the (col, layer) plane.
func auditSliceYZ(g Grid, row int, collectAll bool) Violations {
	c := collector{collectAll: collectAll}
	for col := 0; col < cube.Size; col++ {
		v := scanLine(g, KindRow, FaceYZ, row, col, func(i int) cube.Coord {
			return cube.Coord{Row: row, Col: col, Layer: i}
		})
		if !c.add(v) {
			return c.out
		}
	}
	for layer := 0; layer < cube.Size; layer++ {
		v := scanLine(g, KindCol, FaceYZ, row, layer, func(i int) cube.Coord {
			return cube.Coord{Row: row, Col: i, Layer: layer}
		})
		if !c.add(v) {
			return c.out
		}
	}
	for block := 0; block < cube.Size; block++ {
		baseCol := block / cube.BlockSize * cube.BlockSize
		baseLayer := block % cube.BlockSize * cube.BlockSize
		v := scanLine(g, KindBlock, FaceYZ, row, block, func(i int) cube.Coord {
			return cube.Coord{
				Row:   row,
				Col:   baseCol + i/cube.BlockSize,
				Layer: baseLayer + i%cube.BlockSize,
			}
		})
		if !c.add(v) {
			return c.out
		}
	}

	return c.out
}

// auditSerial is stage two in canonical order on the calling goroutine.
func auditSerial(g Grid, collectAll bool) Violations {
	var out Violations
	units := auditUnits()
	for _, unit := range units {
		out = append(out, unit(g, collectAll)...)
		if len(out) > 0 && !collectAll {
			return out[:1]
		}
	}

	return out
}

// auditUnits lists stage two's schedulable units in canonical order: 16
// beam rows, then 16 slices for each face orientation.
func auditUnits() []func(Grid, bool) Violations {
	units := make([]func(Grid, bool) Violations, 0, 4*cube.Size)
	for row := 0; row < cube.Size; row++ {
		units = append(units, func(g Grid, all bool) Violations {
			return auditBeamRow(g, row, all)
		})
	}
	for layer := 0; layer < cube.Size; layer++ {
		units = append(units, func(g Grid, all bool) Violations {
			return auditSliceXY(g, layer, all)
		})
	}
	for col := 0; col < cube.Size; col++ {
		units = append(units, func(g Grid, all bool) Violations {
			return auditSliceXZ(g, col, all)
		})
	}
	for row := 0; row < cube.Size; row++ {
		units = append(units, func(g Grid, all bool) Violations {
			return auditSliceYZ(g, row, all)
		})
	}

	return units
}

// auditParallel fans stage two's units across Workers goroutines. Results
// merge in canonical unit order, so CollectAll output is deterministic. In
// fail-fast mode a found violation flags the remaining units to be
// skipped and the merge keeps only the canonically earliest result.
func auditParallel(g Grid, o Options) Violations {
	units := auditUnits()
	results := make([]Violations, len(units))

	workers := o.Workers
	if workers > len(units) {
		workers = len(units)
	}

	var cursor atomic.Int64
	var stop atomic.Bool
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(cursor.Add(1)) - 1
				if i >= len(units) {
					return
				}
				if !o.CollectAll && stop.Load() {
					return
				}
				vs := units[i](g, o.CollectAll)
				if len(vs) > 0 {
					results[i] = vs
					if !o.CollectAll {
						stop.Store(true)
					}
				}
			}
		}()
	}
	wg.Wait()

	var out Violations
	for _, vs := range results {
		out = append(out, vs...)
		if len(out) > 0 && !o.CollectAll {
			return out[:1]
		}
	}

	return out
}
