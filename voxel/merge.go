// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// Merge returns a new volume covering the accumulated region of the
// given volumes, with every non-air voxel copied in argument order, so
// later volumes win where they overlap. It returns nil without volumes
// and a clone for a single one. The border value is taken from the first.
func Merge(volumes ...*RawVolume) *RawVolume {
	switch len(volumes) {
	case 0:
		return nil
	case 1:
		return volumes[0].Clone()
	}
	region := InvalidRegion
	for _, v := range volumes {
		region.Accumulate(v.Region())
	}
	merged := NewRawVolume(region)
	merged.SetBorderValue(volumes[0].BorderValue())
	for _, v := range volumes {
		mergeInto(merged, v)
	}
	return merged
}

func mergeInto(dst, src *RawVolume) {
	r := src.Region()
	if !r.IsValid() {
		return
	}
	s := NewSampler(src)
	d := NewSampler(dst)
	lo, hi := r.Lower(), r.Upper()
	for z := lo.Z; z <= hi.Z; z++ {
		for y := lo.Y; y <= hi.Y; y++ {
			s.SetPosition(lo.X, y, z)
			d.SetPosition(lo.X, y, z)
			for x := lo.X; x <= hi.X; x++ {
				if vox := s.Voxel(); !vox.IsAir() {
					d.SetVoxel(vox)
				}
				s.MovePositiveX()
				d.MovePositiveX()
			}
		}
	}
}
