// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/voxel/base/errors"
	"cogentcore.org/voxel/math32"
	"cogentcore.org/voxel/voxel"
)

func addNode(t *testing.T, g *Graph, typ NodeType, name string, parent int) int {
	t.Helper()
	n := NewNode(typ)
	n.Name = name
	id, err := g.Emplace(n, parent)
	require.NoError(t, err)
	return id
}

func addModel(t *testing.T, g *Graph, name string, region voxel.Region, parent int) (int, *voxel.RawVolume) {
	t.Helper()
	v := voxel.NewRawVolume(region)
	n := NewNode(Model)
	n.Name = name
	n.SetVolume(v, true)
	id, err := g.Emplace(n, parent)
	require.NoError(t, err)
	return id, v
}

func ids(seq func(func(*Node) bool)) []int {
	var r []int
	for n := range seq {
		r = append(r, n.ID())
	}
	return r
}

func TestNewGraph(t *testing.T) {
	g := New()
	assert.Equal(t, 1, g.Len())
	root := g.Root()
	require.NotNil(t, root)
	assert.Equal(t, 0, root.ID())
	assert.Equal(t, "root", root.Name)
	assert.Equal(t, Root, root.Type())
	assert.Equal(t, InvalidNodeID, root.Parent())
	assert.Equal(t, InvalidNodeID, g.ActiveNode())
	assert.True(t, g.Empty(Model))
	assert.Equal(t, voxel.InvalidRegion, g.Region())
	assert.Nil(t, g.Merge())
}

func TestEmplace(t *testing.T) {
	g := New()
	v := voxel.NewRawVolume(voxel.NewRegion(0, 0, 0, 1, 1, 1))
	n := NewNode(Model)
	n.Name = "first"
	n.SetVolume(v, true)
	id, err := g.Emplace(n, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	assert.Nil(t, n.Binding())
	assert.Equal(t, Unknown, n.Type())

	stored := g.Node(id)
	require.NotNil(t, stored)
	assert.Same(t, v, stored.Volume())
	assert.Equal(t, 0, stored.Parent())
	assert.Equal(t, 0, stored.ModelID())
	assert.Equal(t, []int{1}, g.Root().Children())
	assert.Equal(t, 1, g.ActiveNode())

	group := addNode(t, g, Group, "group", 0)
	second, _ := addModel(t, g, "second", voxel.NewRegion(0, 0, 0, 0, 0, 0), group)
	assert.Equal(t, 1, g.Node(second).ModelID())
	assert.Equal(t, 1, g.ActiveNode())
	assert.Equal(t, []int{second}, g.Node(group).Children())
}

func TestEmplaceRejected(t *testing.T) {
	g := New()
	tests := []struct {
		name   string
		typ    NodeType
		parent int
		err    error
	}{
		{"second root", Root, 0, ErrSecondRoot},
		{"negative parent", Model, -1, ErrInvalidParent},
		{"unassigned parent", Model, 5, ErrInvalidParent},
		{"next id as parent", Model, 1, ErrInvalidParent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := voxel.NewRawVolume(voxel.NewRegion(0, 0, 0, 1, 1, 1))
			n := NewNode(tt.typ)
			n.SetVolume(v, true)
			id, err := g.Emplace(n, tt.parent)
			assert.Equal(t, InvalidNodeID, id)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
			assert.True(t, v.Released())
			assert.Equal(t, 1, g.Len())
		})
	}

	group := addNode(t, g, Group, "group", 0)
	require.True(t, g.RemoveNode(group, false))
	_, err := g.Emplace(NewNode(Model), group)
	assert.True(t, errors.Is(err, ErrParentNotFound))
}

func TestLookups(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	a, _ := addModel(t, g, "a", voxel.NewRegion(0, 0, 0, 1, 1, 1), group)
	cam := addNode(t, g, Camera, "camera", 0)
	b, _ := addModel(t, g, "b", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)

	assert.True(t, g.HasNode(cam))
	assert.False(t, g.HasNode(42))
	assert.Nil(t, g.Node(42))
	assert.Equal(t, []int{0, group, a, cam, b}, ids(g.Nodes()))
	assert.Equal(t, []int{a, b}, ids(g.Nodes(Model)))
	assert.Equal(t, []int{group, cam}, ids(g.Nodes(Group, Camera)))
	assert.Equal(t, 2, g.Size(Model))
	assert.Equal(t, 1, g.Size(Root))
	assert.False(t, g.Empty(Camera))
	assert.True(t, g.Empty(ModelReference))

	assert.Equal(t, b, g.ModelNode(1).ID())
	assert.Nil(t, g.ModelNode(7))
	assert.Equal(t, cam, g.FindNodeByName("camera").ID())
	assert.Nil(t, g.FindNodeByName("missing"))

	assert.True(t, g.SetActiveNode(b))
	assert.Equal(t, b, g.ActiveNode())
	assert.False(t, g.SetActiveNode(42))
	assert.Equal(t, b, g.ActiveNode())
}

func TestChangeParent(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	model, _ := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)

	assert.True(t, g.ChangeParent(model, group))
	assert.Equal(t, group, g.Node(model).Parent())
	assert.Equal(t, []int{group}, g.Root().Children())
	assert.Equal(t, []int{model}, g.Node(group).Children())

	assert.False(t, g.ChangeParent(group, model), "cycle")
	assert.False(t, g.ChangeParent(group, group), "self")
	assert.False(t, g.ChangeParent(0, group), "root")
	assert.False(t, g.ChangeParent(42, 0))
	assert.False(t, g.ChangeParent(model, 42))
	assert.Equal(t, group, g.Node(model).Parent())
}

func TestRemoveNodeReparents(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	a, av := addModel(t, g, "a", voxel.NewRegion(0, 0, 0, 1, 1, 1), group)
	b, _ := addModel(t, g, "b", voxel.NewRegion(0, 0, 0, 1, 1, 1), group)

	assert.True(t, g.RemoveNode(group, false))
	assert.False(t, g.HasNode(group))
	assert.Equal(t, []int{a, b}, g.Root().Children())
	assert.Equal(t, 0, g.Node(a).Parent())
	assert.Equal(t, 0, g.Node(b).Parent())
	assert.False(t, av.Released())
	assert.False(t, g.RemoveNode(group, false))
}

func TestRemoveNodeRecursive(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	sub := addNode(t, g, Group, "sub", group)
	a, av := addModel(t, g, "a", voxel.NewRegion(0, 0, 0, 1, 1, 1), sub)
	keep, _ := addModel(t, g, "keep", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)

	assert.True(t, g.RemoveNode(group, true))
	for _, id := range []int{group, sub, a} {
		assert.False(t, g.HasNode(id))
	}
	assert.True(t, av.Released())
	assert.Equal(t, []int{keep}, g.Root().Children())
	assert.Equal(t, keep, g.ActiveNode())
}

func TestRemoveModelRemovesReferences(t *testing.T) {
	g := New()
	model, _ := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	ref := NewNode(ModelReference)
	ref.SetReference(model)
	refID, err := g.Emplace(ref, 0)
	require.NoError(t, err)
	other := addNode(t, g, ModelReference, "other", 0)

	assert.True(t, g.RemoveNode(model, false))
	assert.False(t, g.HasNode(refID))
	assert.True(t, g.HasNode(other))
	assert.Equal(t, 0, g.ActiveNode())
}

func TestRemoveRootClears(t *testing.T) {
	g := New()
	_, v := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	assert.True(t, g.RemoveNode(0, true))
	assert.True(t, v.Released())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, InvalidNodeID, g.ActiveNode())

	id, _ := addModel(t, g, "again", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	assert.Equal(t, 1, id)
	assert.Equal(t, 0, g.Node(id).ModelID())
}

func TestResolveVolume(t *testing.T) {
	g := New()
	model, v := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	ref := NewNode(ModelReference)
	ref.SetReference(model)
	refID, err := g.Emplace(ref, 0)
	require.NoError(t, err)

	assert.Same(t, v, g.ResolveVolume(g.Node(refID)))
	assert.Equal(t, v.Region(), g.NodeRegion(refID))

	// writes through the model are visible through the reference
	v.SetVoxel(1, 1, 1, voxel.CreateVoxel(voxel.Generic, 7))
	assert.Equal(t, uint8(7), g.ResolveVolume(g.Node(refID)).Voxel(1, 1, 1).Color)

	// releasing the reference does not free the model's volume
	g.Node(refID).Release()
	assert.False(t, v.Released())

	// a cycle of links resolves to nothing
	a, b := NewNode(ModelReference), NewNode(ModelReference)
	a.SetReference(refID + 2)
	b.SetReference(refID + 1)
	aID, _ := g.Emplace(a, 0)
	bID, _ := g.Emplace(b, 0)
	assert.Equal(t, refID+1, aID)
	assert.Nil(t, g.ResolveVolume(g.Node(aID)))
	assert.Equal(t, voxel.InvalidRegion, g.NodeRegion(bID))
	assert.Nil(t, g.ResolveVolume(nil))
}

func TestRegionMergeTranslate(t *testing.T) {
	g := New()
	_, a := addModel(t, g, "a", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	_, b := addModel(t, g, "b", voxel.NewRegion(2, 0, 0, 3, 1, 1), 0)
	a.SetVoxel(0, 0, 0, voxel.CreateVoxel(voxel.Generic, 1))
	b.SetVoxel(3, 1, 1, voxel.CreateVoxel(voxel.Generic, 2))

	assert.Equal(t, voxel.NewRegion(0, 0, 0, 3, 1, 1), g.Region())
	merged := g.Merge()
	require.NotNil(t, merged)
	assert.Equal(t, g.Region(), merged.Region())
	assert.Equal(t, uint8(1), merged.Voxel(0, 0, 0).Color)
	assert.Equal(t, uint8(2), merged.Voxel(3, 1, 1).Color)
	assert.True(t, merged.Voxel(2, 0, 0).IsAir())

	g.Translate(math32.Vec3i(0, 0, 5))
	assert.Equal(t, voxel.NewRegion(0, 0, 5, 3, 1, 6), g.Region())
}

func TestWorldTransform(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	g.Node(group).SetTranslation(math32.Vec3(1, 0, 0))
	model, _ := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), group)
	g.Node(model).SetTranslation(math32.Vec3(0, 2, 0))

	m := g.WorldTransform(model)
	assert.Equal(t, math32.Vec3(1, 2, 0), m.Translation())
	p := m.MulVector3AsPoint(math32.Vec3(1, 1, 1))
	assert.True(t, p.IsEqualTol(math32.Vec3(2, 3, 1), 1e-6))

	root := g.WorldTransform(0)
	assert.True(t, root.IsIdentity())
}

func TestForEachGroup(t *testing.T) {
	g := New()
	var visited []int
	g.ForEachGroup(func(id int) { visited = append(visited, id) })
	assert.Empty(t, visited)

	a, _ := addModel(t, g, "a", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	b, _ := addModel(t, g, "b", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	c, _ := addModel(t, g, "c", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)

	g.ForEachGroup(func(id int) { visited = append(visited, id) })
	assert.Equal(t, []int{a}, visited)

	g.Node(a).Locked = true
	g.Node(c).Locked = true
	visited = nil
	g.ForEachGroup(func(id int) { visited = append(visited, id) })
	assert.Equal(t, []int{a, c}, visited)
	assert.False(t, slices.Contains(visited, b))
}

func TestDescribe(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	model, _ := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), group)
	g.Node(model).SetProperty("zeta", "1")
	g.Node(model).SetProperty("alpha", "2")
	ref := NewNode(ModelReference)
	ref.Name = "instance"
	ref.Visible = false
	ref.SetReference(model)
	_, err := g.Emplace(ref, 0)
	require.NoError(t, err)

	s, err := g.Describe()
	require.NoError(t, err)
	assert.Contains(t, s, "name: root")
	assert.Contains(t, s, "type: Group")
	assert.Contains(t, s, "(0, 0, 0)-(1, 1, 1)")
	assert.Contains(t, s, "reference: 2")
	assert.Contains(t, s, "hidden: true")
	assert.Less(t, strings.Index(s, "zeta"), strings.Index(s, "alpha"))
	assert.Less(t, strings.Index(s, "name: model"), strings.Index(s, "name: instance"))
}

func TestClear(t *testing.T) {
	g := New()
	_, v := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), 0)
	g.Clear()
	assert.True(t, v.Released())
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, g.Root().Children())
}

func TestEmplaceClone(t *testing.T) {
	g := New()
	group := addNode(t, g, Group, "group", 0)
	model, v := addModel(t, g, "model", voxel.NewRegion(0, 0, 0, 1, 1, 1), group)

	c := g.Node(group).Clone()
	c.Name = "copy"
	copyID, err := g.Emplace(c, 0)
	require.NoError(t, err)
	assert.Empty(t, g.Node(copyID).Children())
	assert.NotEqual(t, g.Node(group).UUID(), g.Node(copyID).UUID())

	assert.True(t, g.RemoveNode(copyID, true))
	assert.True(t, g.HasNode(model))
	assert.Equal(t, []int{model}, g.Node(group).Children())
	assert.Equal(t, []int{group}, g.Root().Children())
	assert.False(t, v.Released())
}

func TestEmplaceMovedFrom(t *testing.T) {
	g := New()
	v := voxel.NewRawVolume(voxel.NewRegion(0, 0, 0, 1, 1, 1))
	src := NewNode(Model)
	src.SetVolume(v, true)
	dst := NewNode(Group)
	dst.MoveFrom(src)

	id, err := g.Emplace(src, 0)
	assert.Equal(t, InvalidNodeID, id)
	assert.True(t, errors.Is(err, ErrUnknownNode))
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, g.Root().Children())
	assert.False(t, v.Released())

	id, err = g.Emplace(dst, 0)
	require.NoError(t, err)
	assert.Same(t, v, g.Node(id).Volume())
}
