// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/voxel/base/errors"
	"cogentcore.org/voxel/logx"
	"cogentcore.org/voxel/scenegraph"
	"cogentcore.org/voxel/voxel"
)

func testConfig() *Config {
	c := &Config{}
	c.Defaults()
	c.LogLevel = "error"
	c.DefaultSize = 4
	return c
}

func TestNew(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, logx.Info, logx.UserLevel)
	assert.Equal(t, 1, c.Graph.Len())
	count, err := testutil.GatherAndCount(c.Registry)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	cfg := testConfig()
	cfg.Metrics = false
	c, err = New(cfg)
	require.NoError(t, err)
	assert.Equal(t, logx.Error, logx.UserLevel)
	count, err = testutil.GatherAndCount(c.Registry)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	cfg = testConfig()
	cfg.DefaultSize = -1
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestNewVolume(t *testing.T) {
	cfg := testConfig()
	cfg.BorderColor = 5
	cfg.MaxVolumeBytes = voxel.SizeInBytes(voxel.NewRegion(0, 0, 0, 3, 3, 3))
	c, err := New(cfg)
	require.NoError(t, err)

	v, err := c.NewDefaultVolume()
	require.NoError(t, err)
	assert.Equal(t, voxel.NewRegion(0, 0, 0, 3, 3, 3), v.Region())
	assert.Equal(t, uint8(5), v.Voxel(-1, 0, 0).Color)
	assert.True(t, v.Voxel(0, 0, 0).IsAir())

	_, err = c.NewVolume(voxel.NewRegion(0, 0, 0, 4, 3, 3))
	assert.True(t, errors.Is(err, ErrVolumeBudget))

	cfg.MaxVolumeBytes = 0
	_, err = c.NewVolume(voxel.NewRegion(0, 0, 0, 4, 3, 3))
	assert.NoError(t, err)

	// too many voxels to index, even without a byte limit
	_, err = c.NewVolume(voxel.NewRegion(0, 0, 0, math.MaxInt32, 1, 0))
	assert.True(t, errors.Is(err, voxel.ErrRegionTooLarge))
}

func TestAddModel(t *testing.T) {
	c, err := New(testConfig())
	require.NoError(t, err)

	a, err := c.NewDefaultVolume()
	require.NoError(t, err)
	b, err := c.NewDefaultVolume()
	require.NoError(t, err)
	aID, err := c.AddModel("a", a, 0)
	require.NoError(t, err)
	bID, err := c.AddModel("b", b, 0)
	require.NoError(t, err)
	assert.Equal(t, bID, c.Graph.ActiveNode())
	assert.Same(t, a, c.Graph.Node(aID).Volume())

	assert.NoError(t, testutil.GatherAndCompare(c.Registry, strings.NewReader(`
# HELP voxel_scenegraph_voxels Number of voxels in the distinct volumes of the scene graph
# TYPE voxel_scenegraph_voxels gauge
voxel_scenegraph_voxels 128
`), "voxel_scenegraph_voxels"))

	bad, err := c.NewDefaultVolume()
	require.NoError(t, err)
	_, err = c.AddModel("bad", bad, 42)
	assert.True(t, errors.Is(err, scenegraph.ErrInvalidParent))
	assert.True(t, bad.Released())

	err = c.Edit(func(g *scenegraph.Graph) error {
		if !g.RemoveNode(aID, false) {
			return errors.New("not removed")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, a.Released())

	c.Close()
	assert.True(t, b.Released())
	assert.Equal(t, 1, c.Graph.Len())
	count, err := testutil.GatherAndCount(c.Registry)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
