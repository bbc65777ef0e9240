// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"fmt"

	"github.com/bioniceye/visualsystem/rfield"
	"github.com/goki/ki/kit"
)

// CellBase holds the state common to all cell models.  A cell's
// response is replaced atomically once per Run and is a pure function
// of its inputs' responses at the same iteration (or of the raw frame
// for leaf cells).
type CellBase struct {
	Pos    rfield.Pos `desc:"position of the cell within its layer's grid"`
	NIters int        `desc:"number of iterations the cell has run"`
	Resp   int        `desc:"current response, 0 or 1"`
}

// Response returns the cell's current response, 0 or 1.
func (cb *CellBase) Response() int { return cb.Resp }

// Position returns the cell's position within its layer.
func (cb *CellBase) Position() rfield.Pos { return cb.Pos }

//////////////////////////////////////////////////////////////////////
// Enums

// Polarities are the center-surround receptive field polarities.
type Polarities int32

//go:generate stringer -type=Polarities

var KiT_Polarities = kit.Enums.AddEnum(PolaritiesN, kit.NotBitFlag, nil)

func (ev Polarities) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Polarities) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// OnCenter responds to a bright center on a dark surround.
	OnCenter Polarities = iota

	// OffCenter is the polarity inverse: both shares are complemented
	// before the tolerance test.
	OffCenter

	PolaritiesN
)

var polarityNames = [...]string{"OnCenter", "OffCenter", "PolaritiesN"}

func (ev Polarities) String() string {
	if ev < 0 || ev > PolaritiesN {
		return fmt.Sprintf("Polarities(%d)", ev)
	}
	return polarityNames[ev]
}

// PolarityFromString returns the polarity named by the given tag.
func PolarityFromString(nm string) (Polarities, error) {
	for ev := OnCenter; ev < PolaritiesN; ev++ {
		if polarityNames[ev] == nm {
			return ev, nil
		}
	}
	return PolaritiesN, fmt.Errorf("visys.PolarityFromString: unknown polarity tag %q", nm)
}

// InputSublayers selects which ganglion sub-grid(s) feed a simple
// cortical cell.
type InputSublayers int32

//go:generate stringer -type=InputSublayers

var KiT_InputSublayers = kit.Enums.AddEnum(InputSublayersN, kit.NotBitFlag, nil)

func (ev InputSublayers) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *InputSublayers) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// OnInput reads only the on-center sub-grid.
	OnInput InputSublayers = iota

	// OffInput reads only the off-center sub-grid.
	OffInput

	// BothInputs evaluates both sub-grids independently and responds
	// with the logical AND of the two branch results.
	BothInputs

	InputSublayersN
)

var sublayerNames = [...]string{"OnInput", "OffInput", "BothInputs", "InputSublayersN"}

func (ev InputSublayers) String() string {
	if ev < 0 || ev > InputSublayersN {
		return fmt.Sprintf("InputSublayers(%d)", ev)
	}
	return sublayerNames[ev]
}

// SublayerFromString returns the input sublayer selector named by the
// given tag.
func SublayerFromString(nm string) (InputSublayers, error) {
	for ev := OnInput; ev < InputSublayersN; ev++ {
		if sublayerNames[ev] == nm {
			return ev, nil
		}
	}
	return InputSublayersN, fmt.Errorf("visys.SublayerFromString: unknown sublayer tag %q", nm)
}
