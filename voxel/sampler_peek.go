// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// Neighbor reads. PeekVoxel<X><Y><Z> reads the voxel offset from the
// current position by the encoded step on each axis: 1n is -1, 0p is 0
// and 1p is +1. For example PeekVoxel1nx0py1pz reads (x-1, y, z+1).

// PeekVoxel1nx1ny1nz returns the voxel at (x-1, y-1, z-1).
func (s *Sampler) PeekVoxel1nx1ny1nz() Voxel { return s.Peek(-1, -1, -1) }

// PeekVoxel1nx1ny0pz returns the voxel at (x-1, y-1, z).
func (s *Sampler) PeekVoxel1nx1ny0pz() Voxel { return s.Peek(-1, -1, 0) }

// PeekVoxel1nx1ny1pz returns the voxel at (x-1, y-1, z+1).
func (s *Sampler) PeekVoxel1nx1ny1pz() Voxel { return s.Peek(-1, -1, 1) }

// PeekVoxel1nx0py1nz returns the voxel at (x-1, y, z-1).
func (s *Sampler) PeekVoxel1nx0py1nz() Voxel { return s.Peek(-1, 0, -1) }

// PeekVoxel1nx0py0pz returns the voxel at (x-1, y, z).
func (s *Sampler) PeekVoxel1nx0py0pz() Voxel { return s.Peek(-1, 0, 0) }

// PeekVoxel1nx0py1pz returns the voxel at (x-1, y, z+1).
func (s *Sampler) PeekVoxel1nx0py1pz() Voxel { return s.Peek(-1, 0, 1) }

// PeekVoxel1nx1py1nz returns the voxel at (x-1, y+1, z-1).
func (s *Sampler) PeekVoxel1nx1py1nz() Voxel { return s.Peek(-1, 1, -1) }

// PeekVoxel1nx1py0pz returns the voxel at (x-1, y+1, z).
func (s *Sampler) PeekVoxel1nx1py0pz() Voxel { return s.Peek(-1, 1, 0) }

// PeekVoxel1nx1py1pz returns the voxel at (x-1, y+1, z+1).
func (s *Sampler) PeekVoxel1nx1py1pz() Voxel { return s.Peek(-1, 1, 1) }

// PeekVoxel0px1ny1nz returns the voxel at (x, y-1, z-1).
func (s *Sampler) PeekVoxel0px1ny1nz() Voxel { return s.Peek(0, -1, -1) }

// PeekVoxel0px1ny0pz returns the voxel at (x, y-1, z).
func (s *Sampler) PeekVoxel0px1ny0pz() Voxel { return s.Peek(0, -1, 0) }

// PeekVoxel0px1ny1pz returns the voxel at (x, y-1, z+1).
func (s *Sampler) PeekVoxel0px1ny1pz() Voxel { return s.Peek(0, -1, 1) }

// PeekVoxel0px0py1nz returns the voxel at (x, y, z-1).
func (s *Sampler) PeekVoxel0px0py1nz() Voxel { return s.Peek(0, 0, -1) }

// PeekVoxel0px0py0pz returns the voxel at (x, y, z).
func (s *Sampler) PeekVoxel0px0py0pz() Voxel { return s.Peek(0, 0, 0) }

// PeekVoxel0px0py1pz returns the voxel at (x, y, z+1).
func (s *Sampler) PeekVoxel0px0py1pz() Voxel { return s.Peek(0, 0, 1) }

// PeekVoxel0px1py1nz returns the voxel at (x, y+1, z-1).
func (s *Sampler) PeekVoxel0px1py1nz() Voxel { return s.Peek(0, 1, -1) }

// PeekVoxel0px1py0pz returns the voxel at (x, y+1, z).
func (s *Sampler) PeekVoxel0px1py0pz() Voxel { return s.Peek(0, 1, 0) }

// PeekVoxel0px1py1pz returns the voxel at (x, y+1, z+1).
func (s *Sampler) PeekVoxel0px1py1pz() Voxel { return s.Peek(0, 1, 1) }

// PeekVoxel1px1ny1nz returns the voxel at (x+1, y-1, z-1).
func (s *Sampler) PeekVoxel1px1ny1nz() Voxel { return s.Peek(1, -1, -1) }

// PeekVoxel1px1ny0pz returns the voxel at (x+1, y-1, z).
func (s *Sampler) PeekVoxel1px1ny0pz() Voxel { return s.Peek(1, -1, 0) }

// PeekVoxel1px1ny1pz returns the voxel at (x+1, y-1, z+1).
func (s *Sampler) PeekVoxel1px1ny1pz() Voxel { return s.Peek(1, -1, 1) }

// PeekVoxel1px0py1nz returns the voxel at (x+1, y, z-1).
func (s *Sampler) PeekVoxel1px0py1nz() Voxel { return s.Peek(1, 0, -1) }

// PeekVoxel1px0py0pz returns the voxel at (x+1, y, z).
func (s *Sampler) PeekVoxel1px0py0pz() Voxel { return s.Peek(1, 0, 0) }

// PeekVoxel1px0py1pz returns the voxel at (x+1, y, z+1).
func (s *Sampler) PeekVoxel1px0py1pz() Voxel { return s.Peek(1, 0, 1) }

// PeekVoxel1px1py1nz returns the voxel at (x+1, y+1, z-1).
func (s *Sampler) PeekVoxel1px1py1nz() Voxel { return s.Peek(1, 1, -1) }

// PeekVoxel1px1py0pz returns the voxel at (x+1, y+1, z).
func (s *Sampler) PeekVoxel1px1py0pz() Voxel { return s.Peek(1, 1, 0) }

// PeekVoxel1px1py1pz returns the voxel at (x+1, y+1, z+1).
func (s *Sampler) PeekVoxel1px1py1pz() Voxel { return s.Peek(1, 1, 1) }
