// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tolerance provides the center-surround antagonism tolerance
functions that determine whether a binary cell fires, given the share of
active inputs in the agonist (center / on) region of its receptive field
vs. the antagonist (surround / off) region.

A tolerance function maps the current center share x to the maximum
surround share still compatible with a positive response, given the
minimum center share x1 (CenterThr) required for any response at all, and
the surround share y2 (SurroundThr) allowed when the center is fully
active (x = 1).  Below or at x1 no surround share permits a response.
*/
package tolerance

import (
	"fmt"
	"log"

	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// Suppress is the sentinel returned by the tolerance curves when the
// center share is at or below CenterThr: every real share is >= 0, so a
// curve value of Suppress fails the surround test unconditionally.
const Suppress = float32(-1)

// Params are the tolerance parameters for one cell population, selecting
// the response-shape policy and its two thresholds.
type Params struct {
	Policy      Policies `desc:"response-shape policy relating the center share to the maximum allowed surround share"`
	CenterThr   float32  `min:"0" max:"1" def:"0.8" desc:"x1: minimum share of active center inputs required for any positive response"`
	SurroundThr float32  `min:"0" max:"1" def:"0.2" desc:"y2: maximum share of active surround inputs allowed when the center is fully active"`
}

func (tp *Params) Defaults() {
	tp.Policy = Linear
	tp.CenterThr = 0.8
	tp.SurroundThr = 0.2
}

func (tp *Params) Update() {
}

// Validate returns an error for an unknown policy or out-of-range
// thresholds.  Construction-time check: cells never run with an invalid
// policy and silently respond 0.
func (tp *Params) Validate() error {
	if tp.Policy < 0 || tp.Policy >= PoliciesN {
		err := fmt.Errorf("tolerance.Params: unknown policy %d", tp.Policy)
		log.Println(err)
		return err
	}
	if tp.CenterThr < 0 || tp.CenterThr > 1 || tp.SurroundThr < 0 || tp.SurroundThr > 1 {
		err := fmt.Errorf("tolerance.Params: thresholds must be in [0, 1], got center %g surround %g", tp.CenterThr, tp.SurroundThr)
		log.Println(err)
		return err
	}
	return nil
}

// Line is the linear tolerance curve: Suppress at or below CenterThr,
// then growing linearly from 0 at x = CenterThr to SurroundThr at x = 1.
func (tp *Params) Line(x float32) float32 {
	if x <= tp.CenterThr {
		return Suppress
	}
	return tp.SurroundThr * (x - tp.CenterThr) / (1 - tp.CenterThr)
}

// Ellipse is the elliptical tolerance curve: Suppress at or below
// CenterThr, then the quarter-ellipse arc from (CenterThr, 0) to
// (1, SurroundThr) with center (1, 0) and half-axes 1-CenterThr and
// SurroundThr.
func (tp *Params) Ellipse(x float32) float32 {
	if x <= tp.CenterThr {
		return Suppress
	}
	t := (x - 1) / (tp.CenterThr - 1)
	return tp.SurroundThr * mat32.Sqrt(1-t*t)
}

// MaxSurround returns the policy's maximum allowed surround share at
// center share x.  For Constant there is no curve: the result is
// SurroundThr whenever x reaches CenterThr (boundary inclusive).
func (tp *Params) MaxSurround(x float32) float32 {
	switch tp.Policy {
	case Constant:
		if x >= tp.CenterThr {
			return tp.SurroundThr
		}
		return Suppress
	case Linear:
		return tp.Line(x)
	case Elliptical:
		return tp.Ellipse(x)
	}
	return Suppress
}

// Pass evaluates the full policy test: the response is positive iff the
// surround share does not exceed the tolerance at the given center share.
func (tp *Params) Pass(center, surround float32) bool {
	return surround <= tp.MaxSurround(center)
}

//////////////////////////////////////////////////////////////////////
// Enums

// Policies are the response-shape policies relating center activity to
// the maximum permitted surround activity.
type Policies int32

//go:generate stringer -type=Policies

var KiT_Policies = kit.Enums.AddEnum(PoliciesN, kit.NotBitFlag, nil)

func (ev Policies) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Policies) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Constant ignores the center share beyond the threshold test:
	// positive response iff center >= CenterThr and surround <= SurroundThr.
	Constant Policies = iota

	// Linear grows the surround tolerance linearly above CenterThr.
	Linear

	// Elliptical grows the surround tolerance along a quarter-ellipse arc
	// above CenterThr, converging to the same endpoint as Linear at x = 1.
	Elliptical

	PoliciesN
)

var policyNames = [...]string{"Constant", "Linear", "Elliptical", "PoliciesN"}

func (ev Policies) String() string {
	if ev < 0 || ev > PoliciesN {
		return fmt.Sprintf("Policies(%d)", ev)
	}
	return policyNames[ev]
}

// PolicyFromString returns the policy named by the given tag.  Unknown
// tags are a configuration error, not a silent fallback.
func PolicyFromString(nm string) (Policies, error) {
	for ev := Constant; ev < PoliciesN; ev++ {
		if policyNames[ev] == nm {
			return ev, nil
		}
	}
	return PoliciesN, fmt.Errorf("tolerance.PolicyFromString: unknown policy tag %q", nm)
}
