// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"cogentcore.org/voxel/voxel"
)

var (
	nodesDesc = prometheus.NewDesc(
		"voxel_scenegraph_nodes",
		"Number of scene graph nodes by type",
		[]string{"type"}, nil)

	volumeBytesDesc = prometheus.NewDesc(
		"voxel_scenegraph_volume_bytes",
		"Memory held by the distinct volumes of the scene graph",
		nil, nil)

	voxelsDesc = prometheus.NewDesc(
		"voxel_scenegraph_voxels",
		"Number of voxels in the distinct volumes of the scene graph",
		nil, nil)
)

// Collector is a [prometheus.Collector] that reports the size of a
// [Graph] on every scrape. Volumes shared by several nodes are counted once.
type Collector struct {
	graph *Graph

	// mu guards graph while collecting; it is the lock the
	// owner of the graph holds for structural edits.
	mu sync.Locker
}

// NewCollector returns a collector for g. A nil mu means the caller
// guarantees no concurrent edits during scrapes.
func NewCollector(g *Graph, mu sync.Locker) *Collector {
	return &Collector{graph: g, mu: mu}
}

// Describe implements [prometheus.Collector].
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- nodesDesc
	ch <- volumeBytesDesc
	ch <- voxelsDesc
}

// Collect implements [prometheus.Collector].
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	counts := make(map[NodeType]int)
	seen := make(map[*voxel.RawVolume]bool)
	bytes, voxels := 0, 0
	for n := range c.graph.Nodes() {
		counts[n.typ]++
		v := n.Volume()
		if v == nil || seen[v] || v.Released() {
			continue
		}
		seen[v] = true
		bytes += v.CalculateSizeInBytes()
		voxels += v.Region().VoxelCount()
	}
	for t := Root; t <= Camera; t++ {
		ch <- prometheus.MustNewConstMetric(nodesDesc, prometheus.GaugeValue, float64(counts[t]), t.String())
	}
	ch <- prometheus.MustNewConstMetric(volumeBytesDesc, prometheus.GaugeValue, float64(bytes))
	ch <- prometheus.MustNewConstMetric(voxelsDesc, prometheus.GaugeValue, float64(voxels))
}
