// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package visenv provides frame sources that feed the visual system
network: fixed binary image sequences and a movable fixation window
(mechanical eye) over a larger scene.

Sources produce binary etensor grids directly; acquiring and
binarizing real images is outside this package.
*/
package visenv

import (
	"fmt"
	"log"

	"github.com/emer/emergent/v2/env"
	"github.com/emer/etable/v2/etensor"
)

// ImageBank serves frames from a fixed list of binary images, in
// order.  Once the end of the list is reached it keeps returning the
// last image, so a driver can iterate past the sequence length.
type ImageBank struct {
	Nm     string         `desc:"name of this source"`
	Images []*etensor.Int `desc:"binary frames served in order"`
	Ctr    env.Ctr        `view:"inline" desc:"frame counter, Cur indexes the next frame to serve"`
	last   *etensor.Int
}

// NewImageBank builds a source over the given frames, which must be
// non-empty and uniformly shaped.
func NewImageBank(name string, images []*etensor.Int) (*ImageBank, error) {
	if len(images) == 0 {
		err := fmt.Errorf("visenv.NewImageBank: %s: no images", name)
		log.Println(err)
		return nil, err
	}
	r0, c0 := images[0].Dim(0), images[0].Dim(1)
	for i, im := range images {
		if im.NumDims() != 2 || im.Dim(0) != r0 || im.Dim(1) != c0 {
			err := fmt.Errorf("visenv.NewImageBank: %s: image %d shape differs from %d x %d", name, i, r0, c0)
			log.Println(err)
			return nil, err
		}
	}
	ib := &ImageBank{Nm: name, Images: images}
	ib.Ctr.Init()
	return ib, nil
}

func (ib *ImageBank) Name() string { return ib.Nm }

// Frame advances to and returns the current frame.
func (ib *ImageBank) Frame() *etensor.Int {
	ix := ib.Ctr.Cur
	if ix >= len(ib.Images) {
		ix = len(ib.Images) - 1
	}
	ib.last = ib.Images[ix]
	ib.Ctr.Incr()
	return ib.last
}

// LastFrame returns the most recently served frame without advancing,
// nil before the first Frame call.
func (ib *ImageBank) LastFrame() *etensor.Int { return ib.last }
