// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rfield generates the receptive-field geometry for the visual
system layers: the list of previous-layer positions feeding each
functional region of a cell's receptive field.

Generators are pure: deterministic position lists, no side effects.
Callers must only request fields whose positions are all in bounds --
layers guarantee this by shrinking their own shape relative to their
input layer, excluding border cells outright rather than padding.
*/
package rfield

import (
	"fmt"
	"log"
)

// Pos is a (row, column) cell coordinate within a layer's grid, origin
// at the top-left.  Wiring tables hold positions (or the 1D offsets
// derived from them) rather than cell references.
type Pos struct {
	Row int
	Col int
}

// Add returns p translated by off.
func (p Pos) Add(off Pos) Pos {
	return Pos{p.Row + off.Row, p.Col + off.Col}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// CenterSurround returns the center and surround input positions of a
// center-surround antagonistic receptive field centered on ctr: every
// position within surroundRad, partitioned by the concentric disk it
// falls in (squared euclidean distance <= centerRad^2 is center, else
// surround -- the discrete equivalent of two filled circles).
// Requires 1 <= centerRad < surroundRad so both regions are non-empty.
func CenterSurround(centerRad, surroundRad int, ctr Pos) (center, surround []Pos, err error) {
	if centerRad < 1 || surroundRad <= centerRad {
		err = fmt.Errorf("rfield.CenterSurround: invalid radii (%d, %d): need 1 <= center < surround", centerRad, surroundRad)
		log.Println(err)
		return
	}
	cr2 := centerRad * centerRad
	sr2 := surroundRad * surroundRad
	for dr := -surroundRad; dr <= surroundRad; dr++ {
		for dc := -surroundRad; dc <= surroundRad; dc++ {
			d2 := dr*dr + dc*dc
			switch {
			case d2 <= cr2:
				center = append(center, ctr.Add(Pos{dr, dc}))
			case d2 <= sr2:
				surround = append(surround, ctr.Add(Pos{dr, dc}))
			}
		}
	}
	return
}
