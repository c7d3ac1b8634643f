// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app ties the voxel packages together into an editing
// session: a [Config], the default logger, a scene graph and the
// metrics registry, all held by an explicit [Context] that is passed
// to whoever needs it instead of being reached through globals.
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"cogentcore.org/voxel/base/errors"
	"cogentcore.org/voxel/logx"
	"cogentcore.org/voxel/math32"
	"cogentcore.org/voxel/scenegraph"
	"cogentcore.org/voxel/voxel"
)

// ErrVolumeBudget is returned for a volume larger than [Config.MaxVolumeBytes].
var ErrVolumeBudget = errors.New("app: volume exceeds the memory budget")

// Context is an editing session. Its methods are safe for concurrent
// use; direct access to [Context.Graph] must be done within [Context.Edit].
type Context struct {

	// Config is the configuration the context was created with.
	Config *Config

	// Graph is the scene graph being edited.
	Graph *scenegraph.Graph

	// Registry holds the scene graph metrics if [Config.Metrics] is set.
	Registry *prometheus.Registry

	collector *scenegraph.Collector
	mu        sync.Mutex
}

// New returns a new context for the given config, which is validated.
// A nil config means the defaults. It installs the default logger at
// the configured level.
func New(cfg *Config) (*Context, error) {
	if cfg == nil {
		cfg = &Config{}
		cfg.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logx.LevelFromString(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logx.UserLevel = level
	logx.SetDefaultLogger()

	c := &Context{
		Config:   cfg,
		Graph:    scenegraph.New(),
		Registry: prometheus.NewRegistry(),
	}
	if cfg.Metrics {
		c.collector = scenegraph.NewCollector(c.Graph, &c.mu)
		if err := c.Registry.Register(c.collector); err != nil {
			return nil, err
		}
	}
	slog.Info("app: new context", "level", level, "metrics", cfg.Metrics)
	return c, nil
}

// Edit calls f with the scene graph while holding the context lock.
func (c *Context) Edit(f func(g *scenegraph.Graph) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return f(c.Graph)
}

// NewVolume returns an empty volume over region with the configured
// border color, or [ErrVolumeBudget] if it would exceed the budget.
// A region too large for any volume is [voxel.ErrRegionTooLarge].
func (c *Context) NewVolume(region voxel.Region) (*voxel.RawVolume, error) {
	if region.VoxelCount() > voxel.MaxVoxelCount {
		return nil, fmt.Errorf("%w: %s", voxel.ErrRegionTooLarge, region)
	}
	size := voxel.SizeInBytes(region)
	if limit := c.Config.MaxVolumeBytes; limit > 0 && size > limit {
		return nil, fmt.Errorf("%w: %s needs %d bytes, limit %d", ErrVolumeBudget, region, size, limit)
	}
	v := voxel.NewRawVolume(region)
	if c.Config.BorderColor != 0 {
		v.SetBorderValue(voxel.CreateVoxel(voxel.Generic, c.Config.BorderColor))
	}
	return v, nil
}

// NewDefaultVolume returns an empty cube volume of [Config.DefaultSize]
// with its lower corner at the origin.
func (c *Context) NewDefaultVolume() (*voxel.RawVolume, error) {
	return c.NewVolume(voxel.RegionFromSize(math32.Vector3iScalar(c.Config.DefaultSize)))
}

// AddModel adds a model node owning volume under parent and makes
// it the active node. On error the volume has been released.
func (c *Context) AddModel(name string, volume *voxel.RawVolume, parent int) (int, error) {
	n := scenegraph.NewNode(scenegraph.Model)
	n.Name = name
	n.SetVolume(volume, true)
	var id int
	err := c.Edit(func(g *scenegraph.Graph) error {
		var err error
		id, err = g.Emplace(n, parent)
		if err != nil {
			return err
		}
		g.SetActiveNode(id)
		return nil
	})
	return id, err
}

// Close releases every volume owned by the scene graph and
// unregisters the metrics. The context must not be used afterwards.
func (c *Context) Close() {
	c.mu.Lock()
	c.Graph.Clear()
	c.mu.Unlock()
	if c.collector != nil {
		c.Registry.Unregister(c.collector)
		c.collector = nil
	}
	slog.Debug("app: closed context")
}
