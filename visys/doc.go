// Copyright (c) 2024, The Visualsystem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package visys implements the core feed-forward visual system model: a
rod photoreceptor layer binarizing nothing (frames arrive binary), a
center-surround ganglion layer detecting local contrast, and a simple
cortical layer detecting oriented edges, chained into a network that
advances one synchronized iteration at a time.

Iteration follows a bulk-synchronous contract: within one network
iteration each layer runs only after the layer before it has fully
published its response grid for the same iteration, and every cell's
inputs were resolved to fixed positions of the previous layer once at
construction.  Sweep order within a layer therefore cannot affect the
result, and sweeps may be split across goroutines freely.

Cells hold their wiring as 1D offsets into the previous layer's
row-major response grid rather than as references to cell objects, so
wiring tables are plain data, testable and serializable on their own.
*/
package visys
