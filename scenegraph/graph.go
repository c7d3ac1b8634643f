// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"cogentcore.org/voxel/base/errors"
	"cogentcore.org/voxel/base/ordmap"
	"cogentcore.org/voxel/math32"
	"cogentcore.org/voxel/voxel"
)

var (
	// ErrSecondRoot is returned when emplacing a [Root] node.
	ErrSecondRoot = errors.New("scenegraph: only one root node is allowed")

	// ErrInvalidParent is returned for a negative parent id or one
	// that has not been assigned yet.
	ErrInvalidParent = errors.New("scenegraph: invalid parent id")

	// ErrParentNotFound is returned when the parent id was removed.
	ErrParentNotFound = errors.New("scenegraph: parent node not found")

	// ErrUnknownNode is returned when emplacing a node of type [Unknown],
	// such as one that has been moved from.
	ErrUnknownNode = errors.New("scenegraph: node of unknown type")
)

// Graph is a tree of nodes keyed by integer ids. The root node always
// exists with id 0; ids are assigned in increasing order and never reused
// until [Graph.Clear].
type Graph struct {
	nodes        ordmap.Map[int, *Node]
	nextNodeID   int
	nextModelID  int
	activeNodeID int
}

// New returns a graph holding only the root node.
func New() *Graph {
	g := &Graph{}
	g.Clear()
	return g
}

// Clear releases every node and resets the graph to a single root node.
func (g *Graph) Clear() {
	for _, n := range g.nodes.All() {
		n.Release()
	}
	g.nodes.Reset()
	g.nextNodeID = 1
	g.nextModelID = 0
	g.activeNodeID = InvalidNodeID

	root := NewNode(Root)
	root.Name = "root"
	root.id = 0
	g.nodes.Add(0, root)
}

// Emplace moves node into the graph as the last child of parent and
// returns its new id. Model nodes get the next model id, and the first
// model added becomes the active node. A second root and a node that has
// been moved from are rejected. node is left inert whether or not it was
// added; a rejected node's volume is released.
func (g *Graph) Emplace(node *Node, parent int) (int, error) {
	switch node.Type() {
	case Root:
		node.Release()
		return InvalidNodeID, ErrSecondRoot
	case Unknown:
		node.Release()
		return InvalidNodeID, ErrUnknownNode
	}
	id := g.nextNodeID
	if parent < 0 || parent >= id {
		node.Release()
		return InvalidNodeID, fmt.Errorf("%w: %d", ErrInvalidParent, parent)
	}
	p := g.Node(parent)
	if p == nil {
		node.Release()
		return InvalidNodeID, fmt.Errorf("%w: %d", ErrParentNotFound, parent)
	}
	slog.Debug("scenegraph: add child", "child", id, "parent", parent)
	p.AddChild(id)
	g.nextNodeID++

	n := &Node{}
	n.MoveFrom(node)
	n.id = id
	n.SetParent(parent)
	if n.typ == Model {
		n.modelID = g.nextModelID
		g.nextModelID++
		if g.activeNodeID <= 0 {
			g.activeNodeID = id
		}
	}
	slog.Debug("scenegraph: add node", "type", n.typ, "id", id, "parent", parent)
	g.nodes.Add(id, n)
	return id, nil
}

// Len returns the number of nodes, including the root.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id int) *Node {
	return g.nodes.ValueByKey(id)
}

// HasNode returns whether a node with the given id exists.
func (g *Graph) HasNode(id int) bool {
	return g.nodes.Has(id)
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	return g.Node(0)
}

// ActiveNode returns the id of the node being edited,
// or [InvalidNodeID] if no model was added yet.
func (g *Graph) ActiveNode() int {
	return g.activeNodeID
}

// SetActiveNode sets the node being edited, returning false for an unknown id.
func (g *Graph) SetActiveNode(id int) bool {
	if !g.HasNode(id) {
		return false
	}
	g.activeNodeID = id
	return true
}

// Nodes returns an iterator over the nodes in id order, restricted
// to the given types if any are given.
func (g *Graph) Nodes(types ...NodeType) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range g.nodes.All() {
			if len(types) > 0 && !slices.Contains(types, n.typ) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Size returns the number of nodes of the given type.
func (g *Graph) Size(typ NodeType) int {
	c := 0
	for range g.Nodes(typ) {
		c++
	}
	return c
}

// Empty returns whether there is no node of the given type.
func (g *Graph) Empty(typ NodeType) bool {
	for range g.Nodes(typ) {
		return false
	}
	return true
}

// ModelNode returns the model node with the given model id, or nil.
func (g *Graph) ModelNode(modelID int) *Node {
	for n := range g.Nodes(Model) {
		if n.modelID == modelID {
			return n
		}
	}
	slog.Error("scenegraph: no node for model id", "model", modelID)
	return nil
}

// FindNodeByName returns the first node with the given name, or nil.
func (g *Graph) FindNodeByName(name string) *Node {
	for n := range g.Nodes() {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// isAncestor returns whether anc is id or one of its ancestors.
func (g *Graph) isAncestor(anc, id int) bool {
	for id != InvalidNodeID {
		if id == anc {
			return true
		}
		n := g.Node(id)
		if n == nil {
			return false
		}
		id = n.parent
	}
	return false
}

// ChangeParent moves the node to the end of newParent's children.
// It returns false for the root, unknown ids, or a newParent inside
// the node's own subtree.
func (g *Graph) ChangeParent(id, newParent int) bool {
	if id == 0 || !g.HasNode(id) || !g.HasNode(newParent) {
		return false
	}
	if g.isAncestor(id, newParent) {
		return false
	}
	n := g.Node(id)
	if old := g.Node(n.parent); old == nil || !old.RemoveChild(id) {
		return false
	}
	g.Node(newParent).AddChild(id)
	n.SetParent(newParent)
	return true
}

// RemoveNode removes a node. Removing a model also removes every
// model reference linked to it. With recursive the children are removed
// as well, otherwise they move up to the node's parent. Removing the
// root clears the graph. It returns false if the node does not exist
// or, when recursive, if none of its children could be removed.
func (g *Graph) RemoveNode(id int, recursive bool) bool {
	n := g.Node(id)
	if n == nil {
		slog.Debug("scenegraph: could not remove node, not found", "id", id)
		return false
	}
	switch n.typ {
	case Root:
		g.Clear()
		return true
	case Model:
		var refs []int
		for r := range g.Nodes(ModelReference) {
			if r.ReferencedNodeID() == id {
				refs = append(refs, r.id)
			}
		}
		for _, r := range refs {
			g.RemoveNode(r, false)
		}
	}
	state := true
	parent := g.Node(n.parent)
	if recursive {
		children := slices.Clone(n.children)
		state = len(children) == 0
		for _, c := range children {
			if g.RemoveNode(c, true) {
				state = true
			}
		}
	} else if parent != nil {
		for _, c := range n.children {
			if cn := g.Node(c); cn != nil {
				cn.SetParent(parent.id)
				parent.AddChild(c)
			}
		}
	}
	if parent != nil {
		parent.RemoveChild(id)
	}
	n.Release()
	g.nodes.DeleteKey(id)
	if g.activeNodeID == id {
		g.activeNodeID = 0
		for m := range g.Nodes(Model) {
			g.activeNodeID = m.id
			break
		}
	}
	return state
}

// ResolveVolume returns the volume presented by the node, following
// [Linked] bindings. It returns nil for a node without a volume or a
// link to a missing node.
func (g *Graph) ResolveVolume(n *Node) *voxel.RawVolume {
	for hops := 0; n != nil && hops <= g.nodes.Len(); hops++ {
		l, ok := n.binding.(Linked)
		if !ok {
			return n.Volume()
		}
		n = g.Node(l.NodeID)
	}
	return nil
}

// NodeRegion returns the region of the volume presented by the node,
// or [voxel.InvalidRegion].
func (g *Graph) NodeRegion(id int) voxel.Region {
	if v := g.ResolveVolume(g.Node(id)); v != nil {
		return v.Region()
	}
	return voxel.InvalidRegion
}

// Region returns the region covering all model volumes,
// or [voxel.InvalidRegion] if there are none.
func (g *Graph) Region() voxel.Region {
	r := voxel.InvalidRegion
	for n := range g.Nodes(Model) {
		r.Accumulate(n.Region())
	}
	return r
}

// Merge returns a new volume with the content of all model volumes,
// or nil if there are none.
func (g *Graph) Merge() *voxel.RawVolume {
	var volumes []*voxel.RawVolume
	for n := range g.Nodes(Model) {
		if v := n.Volume(); v != nil {
			volumes = append(volumes, v)
		}
	}
	return voxel.Merge(volumes...)
}

// Translate moves the regions of all model volumes by v.
func (g *Graph) Translate(v math32.Vector3i) {
	for n := range g.Nodes(Model) {
		n.Translate(v)
	}
}

// WorldTransform returns the product of the local transforms from
// the root down to the node.
func (g *Graph) WorldTransform(id int) math32.Matrix4 {
	m := math32.Identity4()
	for n := g.Node(id); n != nil; n = g.Node(n.parent) {
		m = n.Transform.Mul(m)
		if n.parent == InvalidNodeID {
			break
		}
	}
	return m
}

// ForEachGroup calls f for the active node, or, if the active node is
// locked, for every locked model node, so that edits apply to the group.
func (g *Graph) ForEachGroup(f func(id int)) {
	active := g.Node(g.activeNodeID)
	if active == nil {
		return
	}
	if !active.Locked {
		f(active.id)
		return
	}
	for n := range g.Nodes(Model) {
		if n.Locked {
			f(n.id)
		}
	}
}
