// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"testing"

	"github.com/bioniceye/visualsystem/tolerance"
	"github.com/emer/etable/v2/etensor"
	"github.com/stretchr/testify/require"
)

func makeGrid(rows, cols, fill int) *etensor.Int {
	g := etensor.NewInt([]int{rows, cols}, nil, []string{"Y", "X"})
	for i := range g.Values {
		g.Values[i] = fill
	}
	return g
}

func TestGanglionConstantBoundaries(t *testing.T) {
	prev := makeGrid(5, 5, 0)
	gc := &Ganglion{
		Polarity:    OnCenter,
		Tol:         tolerance.Params{Policy: tolerance.Constant, CenterThr: 0.8, SurroundThr: 0.2},
		CenterIdx:   []int{0, 1, 2, 3, 4},
		SurroundIdx: []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	}

	// all center active, no surround: fires
	for _, ix := range gc.CenterIdx {
		prev.Values[ix] = 1
	}
	gc.Run(prev)
	require.Equal(t, 1, gc.Resp)
	require.Equal(t, 1, gc.NIters)

	// surround share exactly at threshold still fires (boundary equality)
	prev.Values[5] = 1
	prev.Values[6] = 1
	gc.Run(prev)
	require.Equal(t, 1, gc.Resp)

	// surround share 0.3 exceeds 0.2: suppressed
	prev.Values[7] = 1
	gc.Run(prev)
	require.Equal(t, 0, gc.Resp)

	// center share exactly at threshold fires (4 of 5 = 0.8)
	prev.Values[5] = 0
	prev.Values[6] = 0
	prev.Values[7] = 0
	prev.Values[4] = 0
	gc.Run(prev)
	require.Equal(t, 1, gc.Resp)

	// center share below threshold never fires, even with zero surround
	prev.Values[3] = 0
	gc.Run(prev)
	require.Equal(t, 0, gc.Resp)

	require.Equal(t, 5, gc.NIters)
}

func TestGanglionOffCenter(t *testing.T) {
	prev := makeGrid(5, 5, 1)
	tol := tolerance.Params{Policy: tolerance.Constant, CenterThr: 0.8, SurroundThr: 0.2}
	on := &Ganglion{Polarity: OnCenter, Tol: tol,
		CenterIdx: []int{0, 1, 2, 3, 4}, SurroundIdx: []int{5, 6, 7, 8, 9}}
	off := &Ganglion{Polarity: OffCenter, Tol: tol,
		CenterIdx: []int{0, 1, 2, 3, 4}, SurroundIdx: []int{5, 6, 7, 8, 9}}

	// dark center on dark surround: neither fires
	for i := range prev.Values {
		prev.Values[i] = 0
	}
	on.Run(prev)
	off.Run(prev)
	require.Equal(t, 0, on.Resp)
	require.Equal(t, 0, off.Resp) // complemented surround share is 1

	// dark center, bright surround: only the off cell fires
	for _, ix := range off.SurroundIdx {
		prev.Values[ix] = 1
	}
	on.Run(prev)
	off.Run(prev)
	require.Equal(t, 0, on.Resp)
	require.Equal(t, 1, off.Resp)

	// bright center, dark surround: only the on cell fires
	for _, ix := range on.CenterIdx {
		prev.Values[ix] = 1
	}
	for _, ix := range on.SurroundIdx {
		prev.Values[ix] = 0
	}
	on.Run(prev)
	off.Run(prev)
	require.Equal(t, 1, on.Resp)
	require.Equal(t, 0, off.Resp)

	// responses always binary
	for _, gc := range []*Ganglion{on, off} {
		if gc.Resp != 0 && gc.Resp != 1 {
			t.Errorf("non-binary response %d", gc.Resp)
		}
	}
}

func TestSimpleBranches(t *testing.T) {
	onPrev := makeGrid(5, 5, 0)
	offPrev := makeGrid(5, 5, 0)
	tol := tolerance.Params{Policy: tolerance.Constant, CenterThr: 1.0, SurroundThr: 0.0}

	sc := &Simple{Input: OnInput, Tol: tol, OnIdx: []int{0, 1, 2}, OffIdx: []int{3, 4}}
	onPrev.Values[0] = 1
	onPrev.Values[1] = 1
	onPrev.Values[2] = 1
	sc.Run(onPrev, offPrev)
	require.Equal(t, 1, sc.Resp)
	require.Equal(t, 1, sc.NIters)

	// one off-region input active suppresses
	onPrev.Values[3] = 1
	sc.Run(onPrev, offPrev)
	require.Equal(t, 0, sc.Resp)
	onPrev.Values[3] = 0

	// off-input cell reads the other grid
	sc.Input = OffInput
	sc.Run(onPrev, offPrev)
	require.Equal(t, 0, sc.Resp) // off grid is all dark

	// both-inputs is the AND of the two branches
	sc.Input = BothInputs
	sc.Run(onPrev, offPrev)
	require.Equal(t, 0, sc.Resp)
	offPrev.Values[0] = 1
	offPrev.Values[1] = 1
	offPrev.Values[2] = 1
	sc.Run(onPrev, offPrev)
	require.Equal(t, 1, sc.Resp)
	require.Equal(t, 5, sc.NIters)
}
