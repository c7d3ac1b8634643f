// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/voxel/voxel"
)

func TestCollector(t *testing.T) {
	g := New()
	model, v := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	shared := NewNode(Model)
	shared.SetVolume(v, false)
	_, err := g.Emplace(shared, 0)
	require.NoError(t, err)
	ref := NewNode(ModelReference)
	ref.SetReference(model)
	_, err = g.Emplace(ref, 0)
	require.NoError(t, err)

	var mu sync.Mutex
	c := NewCollector(g, &mu)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	assert.Equal(t, 7, testutil.CollectAndCount(c))

	expected := `
# HELP voxel_scenegraph_voxels Number of voxels in the distinct volumes of the scene graph
# TYPE voxel_scenegraph_voxels gauge
voxel_scenegraph_voxels 8
# HELP voxel_scenegraph_volume_bytes Memory held by the distinct volumes of the scene graph
# TYPE voxel_scenegraph_volume_bytes gauge
voxel_scenegraph_volume_bytes ` + strconv.Itoa(v.CalculateSizeInBytes()) + `
# HELP voxel_scenegraph_nodes Number of scene graph nodes by type
# TYPE voxel_scenegraph_nodes gauge
voxel_scenegraph_nodes{type="Camera"} 0
voxel_scenegraph_nodes{type="Group"} 0
voxel_scenegraph_nodes{type="Model"} 2
voxel_scenegraph_nodes{type="ModelReference"} 1
voxel_scenegraph_nodes{type="Root"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))

	g.Clear()
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP voxel_scenegraph_voxels Number of voxels in the distinct volumes of the scene graph
# TYPE voxel_scenegraph_voxels gauge
voxel_scenegraph_voxels 0
`), "voxel_scenegraph_voxels"))
}
