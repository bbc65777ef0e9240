// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"sync"

	"github.com/bioniceye/visualsystem/rfield"
	"github.com/emer/etable/v2/etensor"
)

// LayerBase manages the structural elements common to all layer types.
// The shape is fixed at construction and never changes.
type LayerBase struct {
	Nm     string        `desc:"name of the layer, unique within its network"`
	Shp    etensor.Shape `desc:"shape of the layer grid, row-major (Y, X)"`
	NIters int           `desc:"number of iterations the layer has run"`
}

func (ls *LayerBase) Name() string          { return ls.Nm }
func (ls *LayerBase) Shape() *etensor.Shape { return &ls.Shp }
func (ls *LayerBase) Rows() int             { return ls.Shp.Dim(0) }
func (ls *LayerBase) Cols() int             { return ls.Shp.Dim(1) }
func (ls *LayerBase) IterationCount() int   { return ls.NIters }

// SetShape sets the 2D grid shape with the standard dimension names.
func (ls *LayerBase) SetShape(rows, cols int) {
	ls.Shp.SetShape([]int{rows, cols}, nil, []string{"Y", "X"})
}

// Offset returns the 1D offset of the given position in this layer's
// row-major grids.  Wiring tables store these offsets.
func (ls *LayerBase) Offset(p rfield.Pos) int {
	return p.Row*ls.Cols() + p.Col
}

// CopyGrid returns a defensive copy of a response grid.
func CopyGrid(src *etensor.Int) *etensor.Int {
	out := etensor.NewInt(src.Shp, src.Strd, src.Nms)
	copy(out.Values, src.Values)
	return out
}

// sweep runs fun over [0, n) in nthr contiguous chunks, one goroutine
// each.  Cells only read the previous layer's already-final grids, so
// chunks never contend and order cannot affect the result.
func sweep(n, nthr int, fun func(lo, hi int)) {
	if nthr <= 1 || n < nthr {
		fun(0, n)
		return
	}
	var wg sync.WaitGroup
	chk := (n + nthr - 1) / nthr
	for lo := 0; lo < n; lo += chk {
		hi := lo + chk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fun(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
