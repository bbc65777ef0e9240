// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rfield

import (
	"fmt"
	"log"
	"math"

	"github.com/goki/ki/kit"
)

// angular band limits for classifying window positions: tan(27 deg)
// and tan(62 deg), complementary about 45 deg so the four bands tile
// the full angular range.
var (
	kLo = math.Tan(27 * math.Pi / 180)
	kHi = math.Tan(62 * math.Pi / 180)
)

// Oriented returns the on-region and off-region input positions of an
// oriented receptive field: a size x size window centered on ctr (size
// must be odd), with each position classified by the angle of the ray
// from the window center to it.  A position whose angle lies within the
// orientation's band is on-region, everything else in the window is
// off-region, so the two regions always cover the window exactly.  The
// window center itself lies on every orientation's line and is always
// on-region.  The four on-regions are the rotated bowtie shapes that
// detect oriented edges from center-surround output.
func Oriented(size int, ori Orients, ctr Pos) (on, off []Pos, err error) {
	if size < 3 || size%2 == 0 {
		err = fmt.Errorf("rfield.Oriented: field size must be odd and >= 3, got %d", size)
		log.Println(err)
		return
	}
	if ori < 0 || ori >= OrientsN {
		err = fmt.Errorf("rfield.Oriented: unknown orientation %d", ori)
		log.Println(err)
		return
	}
	half := size / 2
	for dr := -half; dr <= half; dr++ {
		for dc := -half; dc <= half; dc++ {
			if onRegion(ori, dr, dc) {
				on = append(on, ctr.Add(Pos{dr, dc}))
			} else {
				off = append(off, ctr.Add(Pos{dr, dc}))
			}
		}
	}
	return
}

// onRegion classifies one window offset for the given orientation.
// Rows grow downward, so the upward slope of the ray is -dr/dc.
func onRegion(ori Orients, dr, dc int) bool {
	if dr == 0 && dc == 0 {
		return true // window center lies on every orientation's line
	}
	if dc == 0 {
		return ori == Vertical // 90 deg ray
	}
	s := float64(-dr) / float64(dc)
	switch ori {
	case Vertical:
		return s >= kHi || s <= -kHi
	case Horizontal:
		return s >= -kLo && s <= kLo
	case LeftInclined:
		return s >= -kHi && s <= -kLo
	case RightInclined:
		return s >= kLo && s <= kHi
	}
	return false
}

//////////////////////////////////////////////////////////////////////
// Enums

// Orients are the edge orientations detected by the simple cortical
// sublayers, each claiming one band of ray angles from the window
// center (measured upward from horizontal).
type Orients int32

//go:generate stringer -type=Orients

var KiT_Orients = kit.Enums.AddEnum(OrientsN, kit.NotBitFlag, nil)

func (ev Orients) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Orients) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Vertical claims angles from 62 to 90 deg on either side.
	Vertical Orients = iota

	// Horizontal claims angles within 27 deg of horizontal.
	Horizontal

	// LeftInclined claims the descending diagonal band, -62 to -27 deg.
	LeftInclined

	// RightInclined claims the ascending diagonal band, 27 to 62 deg.
	RightInclined

	OrientsN
)

var orientNames = [...]string{"Vertical", "Horizontal", "LeftInclined", "RightInclined", "OrientsN"}

func (ev Orients) String() string {
	if ev < 0 || ev > OrientsN {
		return fmt.Sprintf("Orients(%d)", ev)
	}
	return orientNames[ev]
}

// OrientFromString returns the orientation named by the given tag.
// Unknown tags are a configuration error, not a silent fallback.
func OrientFromString(nm string) (Orients, error) {
	for ev := Vertical; ev < OrientsN; ev++ {
		if orientNames[ev] == nm {
			return ev, nil
		}
	}
	return OrientsN, fmt.Errorf("rfield.OrientFromString: unknown orientation tag %q", nm)
}
