// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"fmt"
	"log"

	"github.com/bioniceye/visualsystem/tolerance"
)

// GanglionParams configures the center-surround stage.
type GanglionParams struct {
	CenterRadius   int              `def:"1" desc:"radius of the receptive field's center disk"`
	SurroundRadius int              `def:"4" desc:"radius of the receptive field's surround disk, must exceed the center radius"`
	Tol            tolerance.Params `view:"inline" desc:"center-surround tolerance policy and thresholds"`
}

func (gp *GanglionParams) Defaults() {
	gp.CenterRadius = 1
	gp.SurroundRadius = 4
	gp.Tol.Policy = tolerance.Constant
	gp.Tol.CenterThr = 0.8
	gp.Tol.SurroundThr = 0.73
}

// SimpleParams configures the simple cortical stage.
type SimpleParams struct {
	FieldSize int              `def:"7" desc:"side of the square oriented receptive field, must be odd"`
	Input     InputSublayers   `desc:"which ganglion sub-grid(s) feed the cells"`
	Tol       tolerance.Params `view:"inline" desc:"on/off region tolerance policy and thresholds"`
}

func (sp *SimpleParams) Defaults() {
	sp.FieldSize = 7
	sp.Input = OnInput
	sp.Tol.Policy = tolerance.Linear
	sp.Tol.CenterThr = 0.3
	sp.Tol.SurroundThr = 0.75
}

// Config collects the construction parameters for a full network.  The
// defaults are tuned values for edge and line detection on small
// binary fixation windows.
type Config struct {
	FrameRows int            `def:"19" desc:"rows of the input frame and rod layer"`
	FrameCols int            `def:"19" desc:"columns of the input frame and rod layer"`
	Ganglion  GanglionParams `view:"add-fields" desc:"center-surround stage parameters"`
	Simple    SimpleParams   `view:"add-fields" desc:"simple cortical stage parameters"`
	Threads   int            `desc:"goroutines per layer sweep, <= 1 runs single-threaded"`
}

func (cf *Config) Defaults() {
	cf.FrameRows = 19
	cf.FrameCols = 19
	cf.Ganglion.Defaults()
	cf.Simple.Defaults()
}

// Validate performs the construction-time configuration checks that do
// not need the layers themselves.  Layer constructors re-check what
// depends on the resulting shapes.
func (cf *Config) Validate() error {
	if cf.FrameRows < 1 || cf.FrameCols < 1 {
		err := fmt.Errorf("visys.Config: invalid frame shape %d x %d", cf.FrameRows, cf.FrameCols)
		log.Println(err)
		return err
	}
	if err := cf.Ganglion.Tol.Validate(); err != nil {
		return err
	}
	if err := cf.Simple.Tol.Validate(); err != nil {
		return err
	}
	if cf.Simple.Input < 0 || cf.Simple.Input >= InputSublayersN {
		err := fmt.Errorf("visys.Config: unknown input sublayer selector %d", cf.Simple.Input)
		log.Println(err)
		return err
	}
	return nil
}
