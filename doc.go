// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package visualsystem is the overall repository for a feed-forward layered
model of early visual processing (retina to primary visual cortex),
implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* tolerance: the center-surround antagonism tolerance functions that decide
whether a binary cell fires, given the share of active inputs in its
agonist vs. antagonist receptive field regions, under a selectable
response-shape policy (constant, linear, elliptical).

* rfield: pure receptive-field geometry generators, mapping a cell's grid
position to the input positions of its center/surround disks or of the
on/off regions of an oriented field.

* visys: the core model -- cells (rod photoreceptors, center-surround
ganglion cells, oriented simple cortical cells), layers that wire dense
grids of cells into the previous layer's output, and the network that
steps the whole pipeline one synchronized iteration at a time.

* visenv: frame sources that feed the network -- fixed image sequences and
a movable fixation window (mechanical eye) over a larger scene.

* examples: these compile into runnable programs. examples/edges scans a
synthetic scene with the mechanical eye and accumulates detected borders;
examples/tolplot tabulates the tolerance curves for external plotting.
*/
package visualsystem
