// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"github.com/bioniceye/visualsystem/tolerance"
	"github.com/emer/etable/v2/etensor"
)

// Ganglion is the binary center-surround cell (the retinal bipolar /
// ganglion stage): it compares the share of active inputs in the
// center of its receptive field against the share in the antagonistic
// surround under a tolerance policy.  An OffCenter cell complements
// both shares before the policy test, so it detects dark centers on
// bright surrounds.
type Ganglion struct {
	CellBase
	Polarity    Polarities       `desc:"on-center or off-center receptive field"`
	Tol         tolerance.Params `view:"inline" desc:"center-surround tolerance policy and thresholds"`
	CenterIdx   []int            `view:"-" desc:"1D offsets of the center inputs in the previous layer's response grid, resolved once at construction"`
	SurroundIdx []int            `view:"-" desc:"1D offsets of the surround inputs in the previous layer's response grid"`
}

// Run performs one iteration against the previous layer's response
// grid, which is already final for the current iteration.
func (gc *Ganglion) Run(prev *etensor.Int) {
	cn := 0
	for _, ix := range gc.CenterIdx {
		cn += prev.Values[ix]
	}
	sn := 0
	for _, ix := range gc.SurroundIdx {
		sn += prev.Values[ix]
	}
	cshr := float32(cn) / float32(len(gc.CenterIdx))
	sshr := float32(sn) / float32(len(gc.SurroundIdx))
	if gc.Polarity == OffCenter {
		cshr = 1 - cshr
		sshr = 1 - sshr
	}
	if gc.Tol.Pass(cshr, sshr) {
		gc.Resp = 1
	} else {
		gc.Resp = 0
	}
	gc.NIters++
}
