// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"testing"

	"github.com/bioniceye/visualsystem/rfield"
	"github.com/bioniceye/visualsystem/tolerance"
	"github.com/stretchr/testify/require"
)

func TestNetworkDefaultsShape(t *testing.T) {
	src := &gridSource{grid: makeGrid(19, 19, 0)}
	cfg := &Config{}
	cfg.Defaults()
	nt, err := NewNetwork("VisNet", src, cfg)
	require.NoError(t, err)

	require.Equal(t, 19, nt.Rods.Rows())
	require.Equal(t, 11, nt.Ganglia.Rows())
	require.Equal(t, 5, nt.Simples.Rows())
}

func TestNetworkIterationLockstep(t *testing.T) {
	src := &gridSource{grid: makeGrid(19, 19, 1)}
	cfg := &Config{}
	cfg.Defaults()
	cfg.Threads = 2
	nt, err := NewNetwork("VisNet", src, cfg)
	require.NoError(t, err)

	const n = 3
	for i := 0; i < n; i++ {
		require.NoError(t, nt.Run())
	}

	require.Equal(t, n, nt.IterationCount())
	require.Equal(t, n, nt.Rods.IterationCount())
	require.Equal(t, n, nt.Ganglia.IterationCount())
	require.Equal(t, n, nt.Simples.IterationCount())

	// every cell ran exactly once per iteration
	require.Equal(t, n, nt.Rods.Cells[0].NIters)
	require.Equal(t, n, nt.Ganglia.On[0].NIters)
	require.Equal(t, n, nt.Ganglia.Off[0].NIters)
	for ori := rfield.Orients(0); ori < rfield.OrientsN; ori++ {
		require.Equal(t, n, nt.Simples.Cells[ori][0].NIters)
	}

	// a uniform bright frame has no contrast: rods saturate, nothing
	// downstream fires
	for _, v := range nt.RodResponse().Values {
		require.Equal(t, 1, v)
	}
	for _, pol := range []Polarities{OnCenter, OffCenter} {
		for _, v := range nt.GanglionResponse(pol).Values {
			require.Equal(t, 0, v)
		}
	}
	for ori := rfield.Orients(0); ori < rfield.OrientsN; ori++ {
		for _, v := range nt.SimpleResponse(ori).Values {
			require.Equal(t, 0, v)
		}
	}
}

func TestNetworkFrameErrorAborts(t *testing.T) {
	src := &gridSource{grid: makeGrid(19, 19, 1)}
	cfg := &Config{}
	cfg.Defaults()
	nt, err := NewNetwork("VisNet", src, cfg)
	require.NoError(t, err)

	require.NoError(t, nt.Run())
	src.grid = makeGrid(5, 5, 1)
	require.Error(t, nt.Run())
	require.Equal(t, 1, nt.IterationCount())
	require.Equal(t, 1, nt.Ganglia.IterationCount())
	require.Equal(t, 1, nt.Simples.IterationCount())
}

func TestNetworkResponseCopies(t *testing.T) {
	src := &gridSource{grid: makeGrid(19, 19, 1)}
	cfg := &Config{}
	cfg.Defaults()
	nt, err := NewNetwork("VisNet", src, cfg)
	require.NoError(t, err)
	require.NoError(t, nt.Run())

	got := nt.RodResponse()
	got.Values[0] = 99
	require.Equal(t, 1, nt.RodResponse().Values[0])

	gg := nt.GanglionResponse(OnCenter)
	gg.Values[0] = 99
	require.Equal(t, 0, nt.GanglionResponse(OnCenter).Values[0])
}

func TestNetworkConfigErrors(t *testing.T) {
	src := &gridSource{grid: makeGrid(19, 19, 0)}

	cfg := &Config{}
	cfg.Defaults()
	cfg.Ganglion.Tol.Policy = tolerance.PoliciesN
	_, err := NewNetwork("VisNet", src, cfg)
	require.Error(t, err)

	cfg.Defaults()
	cfg.Simple.FieldSize = 4
	_, err = NewNetwork("VisNet", src, cfg)
	require.Error(t, err)

	// frame too small for the default surround radius
	cfg.Defaults()
	cfg.FrameRows = 5
	cfg.FrameCols = 5
	_, err = NewNetwork("VisNet", src, cfg)
	require.Error(t, err)
}
