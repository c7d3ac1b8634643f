// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ordmap implements an ordered map that retains the order in which
keys were first added, while also providing fast key-based lookup.

It backs the string property map of scene graph nodes, where the order
of properties is visible to import and export collaborators, and the
id-keyed node table of the scene graph itself, where iteration must be
deterministic.

Adding and lookup are O(1). Deleting is O(n) because the index map above
the deleted entry has to be renumbered.
*/
package ordmap

import (
	"fmt"
	"iter"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map. The map stores an index into
// the Order slice, which holds the keys and values.
// The zero value is ready to use.
type Map[K comparable, V any] struct {

	// Order is the list of entries in the order they were added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Make constructs a new ordered map with the given key-value pairs.
// Later duplicates of a key overwrite the value of the first one.
func Make[K comparable, V any](vals []KeyValue[K, V]) *Map[K, V] {
	om := New[K, V]()
	for _, kv := range vals {
		om.Add(kv.Key, kv.Value)
	}
	return om
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Reset removes all entries.
func (om *Map[K, V]) Reset() {
	om.Map = nil
	om.Order = nil
}

// Add sets the value for the given key. An existing key keeps
// its position, a new key is appended at the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value for the given key, or the
// zero value for a missing key. See [Map.ValueByKeyTry].
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value for the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if om != nil {
		if idx, ok := om.Map[key]; ok {
			return om.Order[idx].Value, true
		}
	}
	var zv V
	return zv, false
}

// Has returns whether the key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	if om == nil {
		return false
	}
	_, ok := om.Map[key]
	return ok
}

// IndexIsValid returns an error if the given index is invalid.
func (om *Map[K, V]) IndexIsValid(idx int) error {
	if idx >= om.Len() || idx < 0 {
		return fmt.Errorf("ordmap.Map: IndexIsValid: index %d is out of range of a map of length %d", idx, om.Len())
	}
	return nil
}

// IndexByKey returns the index of the given key, with -1 for a missing key.
func (om *Map[K, V]) IndexByKey(key K) int {
	if om == nil {
		return -1
	}
	idx, ok := om.Map[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteIndex deletes the entries within the index range [i:j].
func (om *Map[K, V]) DeleteIndex(i, j int) {
	sz := len(om.Order)
	ndel := j - i
	if ndel <= 0 {
		panic("index range is <= 0")
	}
	for o := j; o < sz; o++ {
		om.Map[om.Order[o].Key] = o - ndel
	}
	for o := i; o < j; o++ {
		delete(om.Map, om.Order[o].Key)
	}
	om.Order = slices.Delete(om.Order, i, j)
}

// DeleteKey deletes the entry with the given key,
// returning false if it does not find it.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx := om.IndexByKey(key)
	if idx < 0 {
		return false
	}
	om.DeleteIndex(idx, idx+1)
	return true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// All returns an iterator over the entries in order.
// The map must not be modified during iteration.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Copy copies all of the entries from the given ordered map
// into this one. Existing entries are kept unless the given map
// has the same key, in which case its value wins.
func (om *Map[K, V]) Copy(from *Map[K, V]) {
	if from == nil {
		return
	}
	for _, kv := range from.Order {
		om.Add(kv.Key, kv.Value)
	}
}

// Clone returns an independent copy of the map.
func (om *Map[K, V]) Clone() *Map[K, V] {
	c := New[K, V]()
	c.Copy(om)
	return c
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
