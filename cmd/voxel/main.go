// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command voxel builds a scene of voxel models from a config and
// reports on it: the node tree, or the scene graph metrics.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"cogentcore.org/voxel/app"
	"cogentcore.org/voxel/logx"
	"cogentcore.org/voxel/math32"
	"cogentcore.org/voxel/scenegraph"
	"cogentcore.org/voxel/voxel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the flags shared by all commands.
type options struct {
	configs []string
	debug   bool
	verbose bool
	quiet   bool
	models  int
	refs    int
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "voxel",
		Short:        "Build and inspect voxel scenes",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringSliceVarP(&o.configs, "config", "c", nil, "config files (.toml, .yaml), later files win")
	pf.BoolVar(&o.debug, "debug", false, "show debug messages")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")
	pf.IntVar(&o.models, "models", 1, "number of models side by side")
	pf.IntVar(&o.refs, "refs", 0, "number of references to the first model")

	root.AddCommand(&cobra.Command{
		Use:   "describe",
		Short: "Print the scene graph as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(func(c *app.Context) error {
				return describe(cmd.OutOrStdout(), c)
			})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "metrics",
		Short: "Print the scene graph metrics in the Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(func(c *app.Context) error {
				return metrics(cmd.OutOrStdout(), c)
			})
		},
	})
	return root
}

// run opens the config, builds the scene and calls f with the context.
func (o *options) run(f func(c *app.Context) error) error {
	cfg, err := app.OpenConfig(o.configs...)
	if err != nil {
		return err
	}
	if o.debug || o.verbose || o.quiet {
		cfg.LogLevel = strings.ToLower(logx.LevelFromFlags(o.debug, o.verbose, o.quiet).String())
	}
	cfg.Metrics = true
	c, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := buildScene(c, o.models, o.refs); err != nil {
		return err
	}
	return f(c)
}

// buildScene adds models default sized models along x under a group,
// each with a floor of voxels, and refs references to the first one.
func buildScene(c *app.Context, models, refs int) error {
	group := scenegraph.NewNode(scenegraph.Group)
	group.Name = "models"
	var gid int
	err := c.Edit(func(g *scenegraph.Graph) error {
		var err error
		gid, err = g.Emplace(group, 0)
		return err
	})
	if err != nil {
		return err
	}
	first := scenegraph.InvalidNodeID
	for i := range models {
		v, err := c.NewDefaultVolume()
		if err != nil {
			return err
		}
		v.Translate(math32.Vec3i(int32(i)*c.Config.DefaultSize, 0, 0))
		fillFloor(v, voxel.CreateVoxel(voxel.Generic, uint8(i+1)))
		id, err := c.AddModel(fmt.Sprintf("model %d", i), v, gid)
		if err != nil {
			return err
		}
		if first == scenegraph.InvalidNodeID {
			first = id
		}
	}
	if first == scenegraph.InvalidNodeID {
		return nil
	}
	return c.Edit(func(g *scenegraph.Graph) error {
		for i := range refs {
			n := scenegraph.NewNode(scenegraph.ModelReference)
			n.Name = fmt.Sprintf("reference %d", i)
			n.SetReference(first)
			n.SetTranslation(math32.Vec3(0, 0, float32((i+1)*int(c.Config.DefaultSize))))
			if _, err := g.Emplace(n, 0); err != nil {
				return err
			}
		}
		return nil
	})
}

// fillFloor sets the lowest y layer of v to vox.
func fillFloor(v *voxel.RawVolume, vox voxel.Voxel) {
	r := v.Region()
	s := voxel.NewSampler(v)
	for z := r.LowerZ(); z <= r.UpperZ(); z++ {
		s.SetPosition(r.LowerX(), r.LowerY(), z)
		for s.IsCurrentPositionValid() {
			s.SetVoxel(vox)
			s.MovePositiveX()
		}
	}
}

func describe(w io.Writer, c *app.Context) error {
	return c.Edit(func(g *scenegraph.Graph) error {
		s, err := g.Describe()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s# region %s\n", s, g.Region())
		return err
	})
}

func metrics(w io.Writer, c *app.Context) error {
	mfs, err := c.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
