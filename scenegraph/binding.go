// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import "cogentcore.org/voxel/voxel"

// Binding describes how a [Node] holds its volume. It is one of
// [Owned], [Borrowed], [Shared] or [Linked]; a nil Binding means the
// node has no volume. Using a single variant instead of separate
// pointer, ownership and reference fields means they cannot disagree.
type Binding interface {
	binding()
}

// Owned is a volume the node is responsible for releasing.
type Owned struct {
	Volume *voxel.RawVolume
}

// Borrowed is a volume owned elsewhere. The node never releases it.
type Borrowed struct {
	Volume *voxel.RawVolume
}

// Shared is one reference of a reference counted volume.
// The node drops its reference when released.
type Shared struct {
	Handle *voxel.Shared
}

// Linked presents the volume of another node of the same graph,
// without holding storage of its own (instancing).
type Linked struct {
	NodeID int
}

func (Owned) binding()    {}
func (Borrowed) binding() {}
func (Shared) binding()   {}
func (Linked) binding()   {}

// volumeOf returns the volume held directly by b, nil for Linked and nil.
func volumeOf(b Binding) *voxel.RawVolume {
	switch b := b.(type) {
	case Owned:
		return b.Volume
	case Borrowed:
		return b.Volume
	case Shared:
		return b.Handle.Volume()
	}
	return nil
}
