// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visenv

import (
	"fmt"
	"log"

	"github.com/bioniceye/visualsystem/rfield"
	"github.com/emer/emergent/v2/env"
	"github.com/emer/etable/v2/etensor"
)

// Eye is a mechanical eye: a movable square fixation window over a
// larger binary scene.  Each Frame returns a copy of the current
// window, so the network never aliases the scene.  A driver moves the
// fixation point between iterations; movement clamps so the window
// always stays fully inside the scene.
type Eye struct {
	Nm        string       `desc:"name of this source"`
	Scene     *etensor.Int `view:"no-inline" desc:"full binary scene the eye looks at"`
	FieldSize int          `desc:"side of the square fixation window, must be odd"`
	Center    rfield.Pos   `desc:"scene position of the window center"`
	Ctr       env.Ctr      `view:"inline" desc:"fixation counter, one per served frame"`
}

// NewEye builds an eye over the given scene, fixated at the scene
// center.  fieldSize must be odd and fit inside the scene.
func NewEye(name string, scene *etensor.Int, fieldSize int) (*Eye, error) {
	if scene == nil || scene.NumDims() != 2 {
		err := fmt.Errorf("visenv.NewEye: %s: scene must be a 2D grid", name)
		log.Println(err)
		return nil, err
	}
	if fieldSize < 3 || fieldSize%2 == 0 {
		err := fmt.Errorf("visenv.NewEye: %s: field size must be odd and >= 3, got %d", name, fieldSize)
		log.Println(err)
		return nil, err
	}
	if fieldSize > scene.Dim(0) || fieldSize > scene.Dim(1) {
		err := fmt.Errorf("visenv.NewEye: %s: field size %d exceeds scene shape %d x %d", name, fieldSize, scene.Dim(0), scene.Dim(1))
		log.Println(err)
		return nil, err
	}
	ey := &Eye{Nm: name, Scene: scene, FieldSize: fieldSize}
	ey.Center = rfield.Pos{Row: scene.Dim(0) / 2, Col: scene.Dim(1) / 2}
	ey.clamp()
	ey.Ctr.Init()
	return ey, nil
}

func (ey *Eye) Name() string { return ey.Nm }

// Move shifts the fixation point by (drow, dcol), clamped so the
// window stays inside the scene.
func (ey *Eye) Move(drow, dcol int) {
	ey.Center.Row += drow
	ey.Center.Col += dcol
	ey.clamp()
}

// MoveTo fixates the given scene position, clamped like Move.
func (ey *Eye) MoveTo(p rfield.Pos) {
	ey.Center = p
	ey.clamp()
}

func (ey *Eye) clamp() {
	half := ey.FieldSize / 2
	if ey.Center.Row < half {
		ey.Center.Row = half
	}
	if max := ey.Scene.Dim(0) - 1 - half; ey.Center.Row > max {
		ey.Center.Row = max
	}
	if ey.Center.Col < half {
		ey.Center.Col = half
	}
	if max := ey.Scene.Dim(1) - 1 - half; ey.Center.Col > max {
		ey.Center.Col = max
	}
}

// Frame returns a copy of the current fixation window.
func (ey *Eye) Frame() *etensor.Int {
	half := ey.FieldSize / 2
	fr := etensor.NewInt([]int{ey.FieldSize, ey.FieldSize}, nil, []string{"Y", "X"})
	for i := 0; i < ey.FieldSize; i++ {
		for j := 0; j < ey.FieldSize; j++ {
			v := ey.Scene.Value([]int{ey.Center.Row - half + i, ey.Center.Col - half + j})
			fr.Set([]int{i, j}, v)
		}
	}
	ey.Ctr.Incr()
	return fr
}
