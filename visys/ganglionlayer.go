// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"fmt"
	"log"

	"github.com/bioniceye/visualsystem/rfield"
	"github.com/bioniceye/visualsystem/tolerance"
	"github.com/emer/etable/v2/etensor"
)

// GanglionLayer is the center-surround stage: for every valid position
// it instantiates one on-center and one off-center cell over the same
// receptive field, wired once at construction into the rod layer's
// response grid.  The layer shape shrinks by the surround radius on
// every edge so that each receptive field is fully in bounds -- border
// cells are excluded, there is no padding.
type GanglionLayer struct {
	LayerBase
	CenterRad   int              `desc:"radius of the receptive field's center disk"`
	SurroundRad int              `desc:"radius of the receptive field's surround disk"`
	Tol         tolerance.Params `view:"inline" desc:"tolerance policy and thresholds shared by all cells"`
	Prev        *RodLayer        `view:"-" desc:"input layer, response read at every Run"`
	On          []Ganglion       `desc:"flat row-major grid of on-center cells"`
	Off         []Ganglion       `desc:"flat row-major grid of off-center cells"`
	OnResp      etensor.Int      `view:"no-inline" desc:"current on-center response grid"`
	OffResp     etensor.Int      `view:"no-inline" desc:"current off-center response grid"`
	Threads     int              `desc:"goroutines for the sweep, <= 1 runs single-threaded"`
}

// NewGanglionLayer builds the center-surround layer over prev with the
// given receptive field radii and tolerance parameters.
func NewGanglionLayer(name string, prev *RodLayer, centerRad, surroundRad int, tol tolerance.Params) (*GanglionLayer, error) {
	if prev == nil {
		err := fmt.Errorf("visys.NewGanglionLayer: %s: nil input layer", name)
		log.Println(err)
		return nil, err
	}
	if err := tol.Validate(); err != nil {
		return nil, err
	}
	rows := prev.Rows() - 2*surroundRad
	cols := prev.Cols() - 2*surroundRad
	if rows < 1 || cols < 1 {
		err := fmt.Errorf("visys.NewGanglionLayer: %s: surround radius %d leaves no cells for input shape %d x %d", name, surroundRad, prev.Rows(), prev.Cols())
		log.Println(err)
		return nil, err
	}

	ly := &GanglionLayer{CenterRad: centerRad, SurroundRad: surroundRad, Tol: tol, Prev: prev}
	ly.Nm = name
	ly.SetShape(rows, cols)
	ly.OnResp.SetShape([]int{rows, cols}, nil, []string{"Y", "X"})
	ly.OffResp.SetShape([]int{rows, cols}, nil, []string{"Y", "X"})
	ly.On = make([]Ganglion, rows*cols)
	ly.Off = make([]Ganglion, rows*cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ctr := rfield.Pos{Row: i + surroundRad, Col: j + surroundRad}
			cps, sps, err := rfield.CenterSurround(centerRad, surroundRad, ctr)
			if err != nil {
				return nil, err
			}
			cix := make([]int, len(cps))
			for k, p := range cps {
				cix[k] = prev.Offset(p)
			}
			six := make([]int, len(sps))
			for k, p := range sps {
				six[k] = prev.Offset(p)
			}
			ix := i*cols + j
			on := &ly.On[ix]
			on.Pos = rfield.Pos{Row: i, Col: j}
			on.Polarity = OnCenter
			on.Tol = tol
			on.CenterIdx = cix
			on.SurroundIdx = six
			// off cell shares the read-only wiring
			off := &ly.Off[ix]
			off.Pos = rfield.Pos{Row: i, Col: j}
			off.Polarity = OffCenter
			off.Tol = tol
			off.CenterIdx = cix
			off.SurroundIdx = six
		}
	}
	return ly, nil
}

// Run performs one synchronized sweep over both sub-grids, reading the
// rod layer's response grid finalized for this iteration.
func (ly *GanglionLayer) Run() {
	prev := ly.Prev.Response()
	sweep(len(ly.On), ly.Threads, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ly.On[i].Run(prev)
			ly.OnResp.Values[i] = ly.On[i].Resp
			ly.Off[i].Run(prev)
			ly.OffResp.Values[i] = ly.Off[i].Resp
		}
	})
	ly.NIters++
}

// Response returns the live response grid of the given polarity.
func (ly *GanglionLayer) Response(pol Polarities) *etensor.Int {
	if pol == OffCenter {
		return &ly.OffResp
	}
	return &ly.OnResp
}
