// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"github.com/bioniceye/visualsystem/rfield"
	"github.com/bioniceye/visualsystem/tolerance"
	"github.com/emer/etable/v2/etensor"
)

// Simple is the binary simple cortical cell: it detects an edge of one
// orientation by comparing the share of active inputs in the on-region
// of its receptive field against the off-region, with the same
// tolerance mechanism as the ganglion stage (the on/off region
// thresholds play the center/surround roles).  When fed by both
// ganglion sub-grids, the two branches are evaluated independently
// over the same wiring and the response is their product (logical AND).
type Simple struct {
	CellBase
	Orient rfield.Orients   `desc:"edge orientation this cell detects"`
	Input  InputSublayers   `desc:"which ganglion sub-grid(s) feed this cell"`
	Tol    tolerance.Params `view:"inline" desc:"on/off region tolerance policy and thresholds"`
	OnIdx  []int            `view:"-" desc:"1D offsets of the on-region inputs in the ganglion layer's response grids"`
	OffIdx []int            `view:"-" desc:"1D offsets of the off-region inputs in the ganglion layer's response grids"`
}

// branch evaluates the tolerance test over one ganglion sub-grid.
func (sc *Simple) branch(prev *etensor.Int) int {
	on := 0
	for _, ix := range sc.OnIdx {
		on += prev.Values[ix]
	}
	off := 0
	for _, ix := range sc.OffIdx {
		off += prev.Values[ix]
	}
	onShr := float32(on) / float32(len(sc.OnIdx))
	offShr := float32(off) / float32(len(sc.OffIdx))
	if sc.Tol.Pass(onShr, offShr) {
		return 1
	}
	return 0
}

// Run performs one iteration against the ganglion layer's on- and
// off-center response grids, both already final for the current
// iteration.
func (sc *Simple) Run(onPrev, offPrev *etensor.Int) {
	switch sc.Input {
	case OnInput:
		sc.Resp = sc.branch(onPrev)
	case OffInput:
		sc.Resp = sc.branch(offPrev)
	case BothInputs:
		sc.Resp = sc.branch(onPrev) * sc.branch(offPrev)
	}
	sc.NIters++
}
