// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"github.com/bioniceye/visualsystem/rfield"
	"github.com/emer/etable/v2/etensor"
)

// Network chains the three layers into one forward-stepping pipeline:
// rods -> ganglia -> simples.  Topology is fixed at construction --
// no layer is ever added or removed -- and iteration counters advance
// monotonically, one per Run, in lockstep across all layers.
type Network struct {
	Nm      string         `desc:"overall name of the network"`
	Rods    *RodLayer      `desc:"photoreceptor layer"`
	Ganglia *GanglionLayer `desc:"center-surround layer"`
	Simples *SimpleLayer   `desc:"simple cortical layer"`
	NIters  int            `desc:"number of iterations the network has run"`
}

// NewNetwork builds the full pipeline reading frames from src with the
// given configuration.  All configuration errors surface here, before
// the first iteration.
func NewNetwork(name string, src FrameSource, cfg *Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rods, err := NewRodLayer("Rods", cfg.FrameRows, cfg.FrameCols, src)
	if err != nil {
		return nil, err
	}
	gang, err := NewGanglionLayer("Ganglia", rods, cfg.Ganglion.CenterRadius, cfg.Ganglion.SurroundRadius, cfg.Ganglion.Tol)
	if err != nil {
		return nil, err
	}
	gang.Threads = cfg.Threads
	simp, err := NewSimpleLayer("Simples", gang, cfg.Simple.FieldSize, cfg.Simple.Input, cfg.Simple.Tol)
	if err != nil {
		return nil, err
	}
	simp.Threads = cfg.Threads
	return &Network{Nm: name, Rods: rods, Ganglia: gang, Simples: simp}, nil
}

// Run advances the whole network one iteration: each layer runs once
// in dependency order, reading only the already-final output of the
// layer before it.  A frame error aborts the iteration with no state
// change anywhere.
func (nt *Network) Run() error {
	if err := nt.Rods.Run(); err != nil {
		return err
	}
	nt.Ganglia.Run()
	nt.Simples.Run()
	nt.NIters++
	return nil
}

// IterationCount returns the number of completed network iterations.
func (nt *Network) IterationCount() int { return nt.NIters }

// RodResponse returns a copy of the rod layer's current response grid.
func (nt *Network) RodResponse() *etensor.Int {
	return CopyGrid(&nt.Rods.Resp)
}

// GanglionResponse returns a copy of the ganglion layer's current
// response grid for the given polarity.
func (nt *Network) GanglionResponse(pol Polarities) *etensor.Int {
	return CopyGrid(nt.Ganglia.Response(pol))
}

// SimpleResponse returns a copy of the simple cortical layer's current
// response grid for the given orientation.
func (nt *Network) SimpleResponse(ori rfield.Orients) *etensor.Int {
	return CopyGrid(nt.Simples.Response(ori))
}
