// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "cogentcore.org/voxel/math32"

// Sampler is a cursor over a [RawVolume]. It keeps the index of the
// current voxel while the position is inside the region, so moving by
// one step and reading any of the 26 neighbors costs a stride addition
// instead of a full index computation. Outside the region, or when a
// neighbor falls outside it, reads go through [RawVolume.Voxel] and
// return the border value.
//
// A Sampler borrows its volume; it panics with [ErrReleased] once the
// volume has been released.
type Sampler struct {
	volume *RawVolume
	pos    math32.Vector3i

	// index is only meaningful while validX, validY and validZ all hold.
	index int

	validX, validY, validZ bool
}

// NewSampler returns a sampler over volume positioned at the origin.
func NewSampler(volume *RawVolume) *Sampler {
	s := &Sampler{volume: volume}
	s.SetPosition(0, 0, 0)
	return s
}

// Volume returns the volume the sampler is bound to.
func (s *Sampler) Volume() *RawVolume {
	return s.volume
}

// Position returns the current position.
func (s *Sampler) Position() math32.Vector3i {
	return s.pos
}

// IsCurrentPositionValid returns whether the current position is inside the region.
func (s *Sampler) IsCurrentPositionValid() bool {
	return s.validX && s.validY && s.validZ
}

// SetPosition moves the cursor to (x, y, z).
func (s *Sampler) SetPosition(x, y, z int32) {
	v := s.volume
	v.check()
	s.pos.Set(x, y, z)
	s.validX = v.region.ContainsPointInX(x)
	s.validY = v.region.ContainsPointInY(y)
	s.validZ = v.region.ContainsPointInZ(z)
	if s.IsCurrentPositionValid() {
		s.index = v.index(x, y, z)
	}
}

// SetPositionVec is [Sampler.SetPosition] for a vector.
func (s *Sampler) SetPositionVec(p math32.Vector3i) {
	s.SetPosition(p.X, p.Y, p.Z)
}

// Voxel returns the voxel at the current position,
// or the border value outside the region.
func (s *Sampler) Voxel() Voxel {
	v := s.volume
	v.check()
	if s.IsCurrentPositionValid() {
		return v.data[s.index]
	}
	return v.Voxel(s.pos.X, s.pos.Y, s.pos.Z)
}

// SetVoxel writes vox at the current position. It returns false,
// and writes nothing, if the position is outside the region.
func (s *Sampler) SetVoxel(vox Voxel) bool {
	v := s.volume
	v.check()
	if s.IsCurrentPositionValid() {
		v.data[s.index] = vox
		return true
	}
	return false
}

// MovePositiveX moves the cursor one voxel towards +x.
func (s *Sampler) MovePositiveX() { s.move(math32.X, 1) }

// MovePositiveY moves the cursor one voxel towards +y.
func (s *Sampler) MovePositiveY() { s.move(math32.Y, 1) }

// MovePositiveZ moves the cursor one voxel towards +z.
func (s *Sampler) MovePositiveZ() { s.move(math32.Z, 1) }

// MoveNegativeX moves the cursor one voxel towards -x.
func (s *Sampler) MoveNegativeX() { s.move(math32.X, -1) }

// MoveNegativeY moves the cursor one voxel towards -y.
func (s *Sampler) MoveNegativeY() { s.move(math32.Y, -1) }

// MoveNegativeZ moves the cursor one voxel towards -z.
func (s *Sampler) MoveNegativeZ() { s.move(math32.Z, -1) }

// move steps one axis by delta, updating only that axis' validity flag.
// The cached index follows by the axis stride while the cursor stays
// inside; entering the region recomputes it.
func (s *Sampler) move(axis math32.Dims, delta int32) {
	v := s.volume
	v.check()
	wasValid := s.IsCurrentPositionValid()
	var stride int
	switch axis {
	case math32.X:
		s.pos.X += delta
		s.validX = v.region.ContainsPointInX(s.pos.X)
		stride = 1
	case math32.Y:
		s.pos.Y += delta
		s.validY = v.region.ContainsPointInY(s.pos.Y)
		stride = v.width
	case math32.Z:
		s.pos.Z += delta
		s.validZ = v.region.ContainsPointInZ(s.pos.Z)
		stride = v.slice
	}
	if !s.IsCurrentPositionValid() {
		return
	}
	if wasValid {
		s.index += int(delta) * stride
		return
	}
	s.index = v.index(s.pos.X, s.pos.Y, s.pos.Z)
}

// Peek returns the voxel at the current position plus (dx, dy, dz).
// While the cursor and the target are both inside the region this is
// a single slice read at a fixed stride from the cached index.
func (s *Sampler) Peek(dx, dy, dz int32) Voxel {
	v := s.volume
	v.check()
	x, y, z := s.pos.X+dx, s.pos.Y+dy, s.pos.Z+dz
	if s.validX && s.validY && s.validZ && v.region.ContainsPoint(x, y, z) {
		return v.data[s.index+int(dx)+int(dy)*v.width+int(dz)*v.slice]
	}
	return v.Voxel(x, y, z)
}
