// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visys

import (
	"github.com/emer/etable/v2/etensor"
)

// Rod is the binary photoreceptor cell: its response is simply the
// frame value at its own position.  Leaf of the pipeline, no
// aggregation.
type Rod struct {
	CellBase
}

// Run performs one iteration on the current input frame, which must
// hold only {0, 1} values (a contract of the frame source, not checked
// here).
func (rd *Rod) Run(frame *etensor.Int) {
	rd.Resp = frame.Value([]int{rd.Pos.Row, rd.Pos.Col})
	rd.NIters++
}
