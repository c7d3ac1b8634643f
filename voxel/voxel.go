// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voxel provides a bounded dense voxel volume ([RawVolume]),
// its coordinate space ([Region]) and a cursor ([Sampler]) with O(1)
// access to the 26 neighbors of a moving position, for use by meshing
// and extraction algorithms.
//
// Volumes and samplers are not safe for concurrent use.
package voxel

// VoxelType is the material class of a [Voxel].
type VoxelType uint8

const (
	// Air is the empty material.
	Air VoxelType = iota

	// Generic is an opaque solid material.
	Generic

	// Transparent is a solid material that does not occlude.
	Transparent
)

// String returns the name of the material class.
func (t VoxelType) String() string {
	switch t {
	case Air:
		return "Air"
	case Generic:
		return "Generic"
	case Transparent:
		return "Transparent"
	}
	return "VoxelType(" + itoa(int64(t)) + ")"
}

// Voxel is the value stored in a single cell of a volume:
// a material class, a palette color index and flags.
// It is comparable with ==.
type Voxel struct {
	Material VoxelType
	Color    uint8
	Flags    uint8
}

// Empty is the air voxel. It is the zero value and the
// default border value of a volume.
var Empty = Voxel{}

// CreateVoxel returns a voxel of the given material and palette color.
func CreateVoxel(material VoxelType, color uint8) Voxel {
	return Voxel{Material: material, Color: color}
}

// IsAir returns whether the voxel is empty.
func (v Voxel) IsAir() bool {
	return v.Material == Air
}

// IsBlocked returns whether the voxel is solid and opaque.
func (v Voxel) IsBlocked() bool {
	return v.Material == Generic
}

// IsTransparent returns whether the voxel is solid but see-through.
func (v Voxel) IsTransparent() bool {
	return v.Material == Transparent
}
