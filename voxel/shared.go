// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "sync/atomic"

// Shared is a reference counted handle to a volume held by more than
// one owner. The volume is released when the last reference is dropped.
type Shared struct {
	volume *RawVolume
	refs   atomic.Int32
}

// NewShared wraps volume in a handle holding one reference.
func NewShared(volume *RawVolume) *Shared {
	h := &Shared{volume: volume}
	h.refs.Store(1)
	return h
}

// Acquire adds a reference and returns the handle. It panics with
// [ErrReleased], leaving the count unchanged, once the last
// reference has been dropped.
func (h *Shared) Acquire() *Shared {
	for {
		n := h.refs.Load()
		if n <= 0 {
			panic(ErrReleased)
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return h
		}
	}
}

// Release drops a reference, releasing the volume with the last one.
// Releasing more often than acquiring panics with [ErrReleased].
func (h *Shared) Release() {
	for {
		n := h.refs.Load()
		if n <= 0 {
			panic(ErrReleased)
		}
		if h.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				h.volume.Release()
			}
			return
		}
	}
}

// Volume returns the shared volume.
func (h *Shared) Volume() *RawVolume {
	return h.volume
}

// Refs returns the current number of references.
func (h *Shared) Refs() int {
	return int(h.refs.Load())
}
