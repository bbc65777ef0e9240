// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"fmt"
	"log"

	"github.com/bioniceye/visualsystem/rfield"
	"github.com/emer/etable/v2/etensor"
)

// FrameSource supplies the current input frame once per network
// iteration: a 2D grid of {0, 1} values matching the rod layer's
// shape.  Values outside {0, 1} violate the contract and are not
// checked.
type FrameSource interface {
	// Frame advances to and returns the current input frame.
	Frame() *etensor.Int
}

// RodLayer is the leaf photoreceptor layer: one Rod cell per frame
// position, reading the raw frame directly.
type RodLayer struct {
	LayerBase
	Src   FrameSource `view:"-" desc:"source of input frames, called once per Run"`
	Cells []Rod       `desc:"flat row-major grid of rod cells"`
	Resp  etensor.Int `view:"no-inline" desc:"current response grid"`
}

// NewRodLayer builds a rod layer of the given shape reading from src.
func NewRodLayer(name string, rows, cols int, src FrameSource) (*RodLayer, error) {
	if rows < 1 || cols < 1 {
		err := fmt.Errorf("visys.NewRodLayer: %s: invalid shape %d x %d", name, rows, cols)
		log.Println(err)
		return nil, err
	}
	if src == nil {
		err := fmt.Errorf("visys.NewRodLayer: %s: nil frame source", name)
		log.Println(err)
		return nil, err
	}
	ly := &RodLayer{}
	ly.Nm = name
	ly.SetShape(rows, cols)
	ly.Src = src
	ly.Resp.SetShape([]int{rows, cols}, nil, []string{"Y", "X"})
	ly.Cells = make([]Rod, rows*cols)
	for i := range ly.Cells {
		ly.Cells[i].Pos = rfield.Pos{Row: i / cols, Col: i % cols}
	}
	return ly, nil
}

// Run pulls one frame from the source and runs every cell on it.  A
// frame shape mismatch is fatal: the error is returned before any cell
// runs and no state changes.
func (ly *RodLayer) Run() error {
	frame := ly.Src.Frame()
	if frame == nil || frame.NumDims() != 2 || frame.Dim(0) != ly.Rows() || frame.Dim(1) != ly.Cols() {
		err := fmt.Errorf("visys.RodLayer: %s: input frame does not match layer shape %d x %d", ly.Nm, ly.Rows(), ly.Cols())
		log.Println(err)
		return err
	}
	for i := range ly.Cells {
		ly.Cells[i].Run(frame)
		ly.Resp.Values[i] = ly.Cells[i].Resp
	}
	ly.NIters++
	return nil
}

// Response returns the layer's live response grid -- the network
// accessors copy, this does not.
func (ly *RodLayer) Response() *etensor.Int { return &ly.Resp }
