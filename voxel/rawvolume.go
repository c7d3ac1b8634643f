// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"fmt"
	"math"
	"slices"
	"unsafe"

	"cogentcore.org/voxel/base/errors"
	"cogentcore.org/voxel/math32"
)

// ErrReleased is the panic value for any access to a volume
// (directly or through a [Sampler]) after [RawVolume.Release].
var ErrReleased = errors.New("voxel: use of released volume")

// ErrRegionTooLarge is the panic value of [NewRawVolume] for a region
// with more than [MaxVoxelCount] voxels.
var ErrRegionTooLarge = errors.New("voxel: region too large for a volume")

// MaxVoxelCount is the largest number of voxels a [RawVolume] can hold.
const MaxVoxelCount = math.MaxInt32

// RawVolume stores the voxels of a [Region] in a single dense slice,
// x fastest, then y, then z. Reads outside the region return the
// border value and writes outside the region are ignored.
type RawVolume struct {
	region Region
	border Voxel
	data   []Voxel

	// width and slice are the y and z strides of data.
	width int
	slice int

	released bool
}

// NewRawVolume returns a volume covering region with every voxel
// set to [Empty]. A volume over an invalid region holds no voxels
// and answers every read with the border value. It panics with
// [ErrRegionTooLarge] for a region that can not be indexed.
func NewRawVolume(region Region) *RawVolume {
	if region.VoxelCount() > MaxVoxelCount {
		panic(fmt.Errorf("%w: %s", ErrRegionTooLarge, region))
	}
	v := &RawVolume{region: region}
	v.width = int(region.Width())
	v.slice = v.width * int(region.Height())
	v.data = make([]Voxel, region.VoxelCount())
	return v
}

// NewRawVolumeFrom returns a new volume covering region, filled with
// the voxels of src where the two overlap. The border value is copied.
func NewRawVolumeFrom(src *RawVolume, region Region) *RawVolume {
	src.check()
	v := NewRawVolume(region)
	v.border = src.border
	overlap := region
	overlap.Crop(src.region)
	if !overlap.IsValid() {
		return v
	}
	lo, hi := overlap.Lower(), overlap.Upper()
	for z := lo.Z; z <= hi.Z; z++ {
		for y := lo.Y; y <= hi.Y; y++ {
			si := src.index(lo.X, y, z)
			di := v.index(lo.X, y, z)
			n := int(hi.X-lo.X) + 1
			copy(v.data[di:di+n], src.data[si:si+n])
		}
	}
	return v
}

// index returns the position of (x, y, z) in data.
// The point must be inside the region. [Sampler] relies on
// this layout for its strides.
func (v *RawVolume) index(x, y, z int32) int {
	lo := v.region.lower
	return int(x-lo.X) + v.width*int(y-lo.Y) + v.slice*int(z-lo.Z)
}

func (v *RawVolume) check() {
	if v.released {
		panic(ErrReleased)
	}
}

// Voxel returns the voxel at (x, y, z), or the border value
// if the point is outside the region.
func (v *RawVolume) Voxel(x, y, z int32) Voxel {
	v.check()
	if v.region.ContainsPoint(x, y, z) {
		return v.data[v.index(x, y, z)]
	}
	return v.border
}

// VoxelAt is [RawVolume.Voxel] for a vector.
func (v *RawVolume) VoxelAt(p math32.Vector3i) Voxel {
	return v.Voxel(p.X, p.Y, p.Z)
}

// SetVoxel sets the voxel at (x, y, z). It does nothing if the point
// is outside the region; check [Region.ContainsPoint] first if that matters.
func (v *RawVolume) SetVoxel(x, y, z int32, vox Voxel) {
	v.check()
	if v.region.ContainsPoint(x, y, z) {
		v.data[v.index(x, y, z)] = vox
	}
}

// SetVoxelAt is [RawVolume.SetVoxel] for a vector.
func (v *RawVolume) SetVoxelAt(p math32.Vector3i, vox Voxel) {
	v.SetVoxel(p.X, p.Y, p.Z, vox)
}

// Fill sets every voxel inside the region.
func (v *RawVolume) Fill(vox Voxel) {
	v.check()
	for i := range v.data {
		v.data[i] = vox
	}
}

// BorderValue returns the voxel returned for reads outside the region.
func (v *RawVolume) BorderValue() Voxel {
	return v.border
}

// SetBorderValue sets the voxel returned for reads outside the region.
func (v *RawVolume) SetBorderValue(vox Voxel) {
	v.border = vox
}

// Region returns the region covered by the volume.
func (v *RawVolume) Region() Region {
	return v.region
}

func (v *RawVolume) Width() int32  { return v.region.Width() }
func (v *RawVolume) Height() int32 { return v.region.Height() }
func (v *RawVolume) Depth() int32  { return v.region.Depth() }

// CalculateSizeInBytes returns the memory footprint of the volume.
func (v *RawVolume) CalculateSizeInBytes() int {
	return int(unsafe.Sizeof(*v)) + cap(v.data)*int(unsafe.Sizeof(Voxel{}))
}

// SizeInBytes returns the memory footprint of a new volume over region,
// for checking a budget before allocating it. It saturates at [math.MaxInt].
func SizeInBytes(region Region) int {
	header, size := int(unsafe.Sizeof(RawVolume{})), int(unsafe.Sizeof(Voxel{}))
	n := region.VoxelCount()
	if n > (math.MaxInt-header)/size {
		return math.MaxInt
	}
	return header + n*size
}

// Translate moves the region by t. The stored voxels keep their
// order, so every voxel moves with the coordinate system.
func (v *RawVolume) Translate(t math32.Vector3i) {
	v.region.Translate(t)
}

// Clone returns a deep copy of the volume.
func (v *RawVolume) Clone() *RawVolume {
	v.check()
	c := *v
	c.data = slices.Clone(v.data)
	return &c
}

// CopyFrom replaces region, border value and voxels with a deep
// copy of src, reusing the existing buffer when it is large enough.
func (v *RawVolume) CopyFrom(src *RawVolume) {
	src.check()
	if v == src {
		return
	}
	data := v.data
	if cap(data) < len(src.data) {
		data = make([]Voxel, len(src.data))
	}
	data = data[:len(src.data)]
	copy(data, src.data)
	*v = *src
	v.data = data
}

// Release drops the voxel buffer. Any later access to the volume or a
// [Sampler] bound to it panics with [ErrReleased]. Release is idempotent.
func (v *RawVolume) Release() {
	v.data = nil
	v.released = true
}

// Released returns whether [RawVolume.Release] has been called.
func (v *RawVolume) Released() bool {
	return v.released
}
