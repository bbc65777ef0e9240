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

// SimpleLayer is the simple cortical stage: four orientation sub-grids
// (vertical, horizontal, and the two inclines) over the ganglion
// layer's output.  The layer shape shrinks by fieldSize-1 relative to
// the ganglion layer so that every oriented window is fully in bounds.
type SimpleLayer struct {
	LayerBase
	FieldSize int                          `desc:"side of the square oriented receptive field, must be odd"`
	Input     InputSublayers               `desc:"which ganglion sub-grid(s) feed the cells"`
	Tol       tolerance.Params             `view:"inline" desc:"on/off region tolerance policy and thresholds shared by all cells"`
	Prev      *GanglionLayer               `view:"-" desc:"input layer, responses read at every Run"`
	Cells     [rfield.OrientsN][]Simple    `desc:"flat row-major cell grid per orientation"`
	Resp      [rfield.OrientsN]etensor.Int `view:"no-inline" desc:"current response grid per orientation"`
	Threads   int                          `desc:"goroutines for the sweep, <= 1 runs single-threaded"`
}

// NewSimpleLayer builds the oriented cortical layer over prev with the
// given field size, input sublayer selection and tolerance parameters.
func NewSimpleLayer(name string, prev *GanglionLayer, fieldSize int, input InputSublayers, tol tolerance.Params) (*SimpleLayer, error) {
	if prev == nil {
		err := fmt.Errorf("visys.NewSimpleLayer: %s: nil input layer", name)
		log.Println(err)
		return nil, err
	}
	if input < 0 || input >= InputSublayersN {
		err := fmt.Errorf("visys.NewSimpleLayer: %s: unknown input sublayer selector %d", name, input)
		log.Println(err)
		return nil, err
	}
	if err := tol.Validate(); err != nil {
		return nil, err
	}
	if fieldSize < 3 || fieldSize%2 == 0 {
		err := fmt.Errorf("visys.NewSimpleLayer: %s: field size must be odd and >= 3, got %d", name, fieldSize)
		log.Println(err)
		return nil, err
	}
	rows := prev.Rows() - (fieldSize - 1)
	cols := prev.Cols() - (fieldSize - 1)
	if rows < 1 || cols < 1 {
		err := fmt.Errorf("visys.NewSimpleLayer: %s: field size %d leaves no cells for input shape %d x %d", name, fieldSize, prev.Rows(), prev.Cols())
		log.Println(err)
		return nil, err
	}

	ly := &SimpleLayer{FieldSize: fieldSize, Input: input, Tol: tol, Prev: prev}
	ly.Nm = name
	ly.SetShape(rows, cols)
	half := fieldSize / 2

	for ori := rfield.Orients(0); ori < rfield.OrientsN; ori++ {
		ly.Resp[ori].SetShape([]int{rows, cols}, nil, []string{"Y", "X"})
		cells := make([]Simple, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				ctr := rfield.Pos{Row: i + half, Col: j + half}
				ons, offs, err := rfield.Oriented(fieldSize, ori, ctr)
				if err != nil {
					return nil, err
				}
				onIx := make([]int, len(ons))
				for k, p := range ons {
					onIx[k] = prev.Offset(p)
				}
				offIx := make([]int, len(offs))
				for k, p := range offs {
					offIx[k] = prev.Offset(p)
				}
				sc := &cells[i*cols+j]
				sc.Pos = rfield.Pos{Row: i, Col: j}
				sc.Orient = ori
				sc.Input = input
				sc.Tol = tol
				sc.OnIdx = onIx
				sc.OffIdx = offIx
			}
		}
		ly.Cells[ori] = cells
	}
	return ly, nil
}

// Run performs one synchronized sweep over all four orientation
// sub-grids, reading the ganglion grids finalized for this iteration.
func (ly *SimpleLayer) Run() {
	onPrev := ly.Prev.Response(OnCenter)
	offPrev := ly.Prev.Response(OffCenter)
	for ori := rfield.Orients(0); ori < rfield.OrientsN; ori++ {
		cells := ly.Cells[ori]
		resp := &ly.Resp[ori]
		sweep(len(cells), ly.Threads, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				cells[i].Run(onPrev, offPrev)
				resp.Values[i] = cells[i].Resp
			}
		})
	}
	ly.NIters++
}

// Response returns the live response grid for the given orientation.
func (ly *SimpleLayer) Response(ori rfield.Orients) *etensor.Int {
	return &ly.Resp[ori]
}
