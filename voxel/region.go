// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"math"
	"strconv"

	"cogentcore.org/voxel/math32"
)

// Region is an axis-aligned integer box, inclusive on both ends,
// describing the valid coordinate space of a volume.
//
// A Region is a value type. The only operations that change it in
// place are [Region.Translate], [Region.Accumulate] and [Region.Crop].
type Region struct {
	lower math32.Vector3i
	upper math32.Vector3i
}

// InvalidRegion is the sentinel for "no region". Its upper corner is
// below its lower corner, so all its sizes are 0 and it contains no point.
var InvalidRegion = Region{lower: math32.Vec3i(0, 0, 0), upper: math32.Vec3i(-1, -1, -1)}

// NewRegion returns the region with the given inclusive bounds.
func NewRegion(lowerX, lowerY, lowerZ, upperX, upperY, upperZ int32) Region {
	return Region{lower: math32.Vec3i(lowerX, lowerY, lowerZ), upper: math32.Vec3i(upperX, upperY, upperZ)}
}

// NewRegionFromVectors returns the region with the given inclusive corners.
func NewRegionFromVectors(lower, upper math32.Vector3i) Region {
	return Region{lower: lower, upper: upper}
}

// RegionFromSize returns the region of the given size with its lower corner at the origin.
func RegionFromSize(size math32.Vector3i) Region {
	return Region{upper: size.SubScalar(1)}
}

// IsValid returns whether lower <= upper on every axis.
func (r Region) IsValid() bool {
	return r.lower.X <= r.upper.X && r.lower.Y <= r.upper.Y && r.lower.Z <= r.upper.Z
}

// Lower returns the lower corner.
func (r Region) Lower() math32.Vector3i { return r.lower }

// Upper returns the upper corner.
func (r Region) Upper() math32.Vector3i { return r.upper }

// LowerX returns the lowest x coordinate inside the region.
func (r Region) LowerX() int32 { return r.lower.X }

// LowerY returns the lowest y coordinate inside the region.
func (r Region) LowerY() int32 { return r.lower.Y }

// LowerZ returns the lowest z coordinate inside the region.
func (r Region) LowerZ() int32 { return r.lower.Z }

// UpperX returns the highest x coordinate inside the region.
func (r Region) UpperX() int32 { return r.upper.X }

// UpperY returns the highest y coordinate inside the region.
func (r Region) UpperY() int32 { return r.upper.Y }

// UpperZ returns the highest z coordinate inside the region.
func (r Region) UpperZ() int32 { return r.upper.Z }

// Width returns the number of voxels along x, or 0 for an invalid extent.
// Extents that do not fit in an int32 saturate at [math.MaxInt32].
func (r Region) Width() int32 { return extent(r.lower.X, r.upper.X) }

// Height returns the number of voxels along y, or 0 for an invalid extent.
func (r Region) Height() int32 { return extent(r.lower.Y, r.upper.Y) }

// Depth returns the number of voxels along z, or 0 for an invalid extent.
func (r Region) Depth() int32 { return extent(r.lower.Z, r.upper.Z) }

func extent(lo, hi int32) int32 {
	if hi < lo {
		return 0
	}
	return int32(min(int64(hi)-int64(lo)+1, math.MaxInt32))
}

// Dimensions returns width, height and depth as a vector.
func (r Region) Dimensions() math32.Vector3i {
	return math32.Vec3i(r.Width(), r.Height(), r.Depth())
}

// VoxelCount returns the number of cells, 0 for an invalid region.
// It saturates at [math.MaxInt].
func (r Region) VoxelCount() int {
	if !r.IsValid() {
		return 0
	}
	// each extent is below 2^31, so the first product fits
	wh := int64(r.Width()) * int64(r.Height())
	d := int64(r.Depth())
	if wh > math.MaxInt/d {
		return math.MaxInt
	}
	return int(wh * d)
}

// Center returns the (rounded down) center cell.
func (r Region) Center() math32.Vector3i {
	return math32.Vec3i(
		middle(r.lower.X, r.upper.X),
		middle(r.lower.Y, r.upper.Y),
		middle(r.lower.Z, r.upper.Z),
	)
}

func middle(lo, hi int32) int32 {
	return lo + int32((int64(hi)-int64(lo))/2)
}

// ContainsPoint returns whether (x, y, z) lies inside the region.
func (r Region) ContainsPoint(x, y, z int32) bool {
	return r.ContainsPointInX(x) && r.ContainsPointInY(y) && r.ContainsPointInZ(z)
}

// ContainsPointVec is [Region.ContainsPoint] for a vector.
func (r Region) ContainsPointVec(p math32.Vector3i) bool {
	return r.ContainsPoint(p.X, p.Y, p.Z)
}

// ContainsPointInX returns whether x lies within the region's x extent.
func (r Region) ContainsPointInX(x int32) bool { return x >= r.lower.X && x <= r.upper.X }

// ContainsPointInY returns whether y lies within the region's y extent.
func (r Region) ContainsPointInY(y int32) bool { return y >= r.lower.Y && y <= r.upper.Y }

// ContainsPointInZ returns whether z lies within the region's z extent.
func (r Region) ContainsPointInZ(z int32) bool { return z >= r.lower.Z && z <= r.upper.Z }

// ContainsRegion returns whether other lies entirely inside the region.
// An invalid other region is never contained.
func (r Region) ContainsRegion(other Region) bool {
	return other.IsValid() && r.ContainsPointVec(other.lower) && r.ContainsPointVec(other.upper)
}

// Intersects returns whether the two regions share at least one cell.
func (r Region) Intersects(other Region) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.lower.X <= other.upper.X && r.upper.X >= other.lower.X &&
		r.lower.Y <= other.upper.Y && r.upper.Y >= other.lower.Y &&
		r.lower.Z <= other.upper.Z && r.upper.Z >= other.lower.Z
}

// IsEqual returns whether both regions have the same bounds.
func (r Region) IsEqual(other Region) bool {
	return r.lower.IsEqual(other.lower) && r.upper.IsEqual(other.upper)
}

// Translate shifts both corners by v, keeping the size.
func (r *Region) Translate(v math32.Vector3i) {
	r.lower.SetAdd(v)
	r.upper.SetAdd(v)
}

// Moved returns a copy of the region translated by v.
func (r Region) Moved(v math32.Vector3i) Region {
	r.Translate(v)
	return r
}

// Accumulate grows the region to also cover other. An invalid
// other is ignored; accumulating into an invalid region replaces it.
func (r *Region) Accumulate(other Region) {
	if !other.IsValid() {
		return
	}
	if !r.IsValid() {
		*r = other
		return
	}
	r.lower.SetMin(other.lower)
	r.upper.SetMax(other.upper)
}

// Crop shrinks the region to its intersection with other.
// The result is invalid if they do not intersect.
func (r *Region) Crop(other Region) {
	r.lower.SetMax(other.lower)
	r.upper.SetMin(other.upper)
}

// String returns the region as "lower-upper".
func (r Region) String() string {
	return r.lower.String() + "-" + r.upper.String()
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}
