// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenegraph composes voxel volumes into a tree of nodes.
// Each [Node] owns, borrows, shares or links to at most one volume
// and carries a local transform, a pivot and string properties.
// The [Graph] assigns integer node ids and keeps parent and child
// links consistent.
//
// Nodes and graphs are not safe for concurrent use; structural edits
// must come from one goroutine or be serialized by the caller.
package scenegraph

import (
	"iter"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"cogentcore.org/voxel/base/errors"
	"cogentcore.org/voxel/base/ordmap"
	"cogentcore.org/voxel/math32"
	"cogentcore.org/voxel/voxel"
)

// InvalidNodeID marks an unset node, parent or model id.
const InvalidNodeID = -1

// NodeType is the kind of a scene graph node.
type NodeType int32

const (
	// Root is the single top node of a graph, id 0.
	Root NodeType = iota

	// Model is a node with voxel content.
	Model

	// ModelReference presents the volume of a Model node.
	ModelReference

	// Group arranges child nodes.
	Group

	// Camera is a viewpoint.
	Camera

	// Unknown is the type of a node that has been moved from.
	Unknown
)

// String returns the name of the node type.
func (t NodeType) String() string {
	switch t {
	case Root:
		return "Root"
	case Model:
		return "Model"
	case ModelReference:
		return "ModelReference"
	case Group:
		return "Group"
	case Camera:
		return "Camera"
	case Unknown:
		return "Unknown"
	}
	return "NodeType(" + itoa(int(t)) + ")"
}

// Node is an element of a scene graph. Create nodes with [NewNode]
// and hand them to [Graph.Emplace], which moves them into the graph.
//
// A Node can not be copied by value without sharing its children and
// properties; use [Node.MoveFrom] to transfer and [Node.Clone] to duplicate.
type Node struct {

	// Name is the display name, not necessarily unique.
	Name string

	// Transform is the local transform relative to the parent node.
	Transform math32.Matrix4

	// Pivot is the normalized rotation and scale origin within the region.
	Pivot math32.Vector3

	// Visible is whether the node is shown.
	Visible bool

	// Locked is whether the node is grouped for editing.
	Locked bool

	id       int
	parent   int
	modelID  int
	typ      NodeType
	uuid     uuid.UUID
	binding  Binding
	children []int

	properties ordmap.Map[string, string]
}

// NewNode returns a visible node of the given type with an identity
// transform, no volume and unset ids.
func NewNode(typ NodeType) *Node {
	return &Node{
		Transform: math32.Identity4(),
		Visible:   true,
		id:        InvalidNodeID,
		parent:    InvalidNodeID,
		modelID:   InvalidNodeID,
		typ:       typ,
		uuid:      uuid.New(),
	}
}

// ID returns the id assigned by the graph, or [InvalidNodeID].
func (n *Node) ID() int { return n.id }

// Parent returns the parent id, or [InvalidNodeID].
func (n *Node) Parent() int { return n.parent }

// SetParent sets the parent id. Use [Graph.ChangeParent] to move a node
// within a graph, which also updates the child lists.
func (n *Node) SetParent(id int) { n.parent = id }

// ModelID returns the index of a model node among the graph's models.
func (n *Node) ModelID() int { return n.modelID }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// UUID returns the stable identity of the node across save and load.
func (n *Node) UUID() uuid.UUID { return n.uuid }

// SetUUID sets the stable identity, e.g. when loading a scene.
func (n *Node) SetUUID(id uuid.UUID) { n.uuid = id }

// IsModel returns whether the node is a [Model] node.
func (n *Node) IsModel() bool { return n.typ == Model }

// Volumes:

// SetVolume releases the current binding and binds v. With
// transferOwnership the node releases v in [Node.Release];
// otherwise v is borrowed and the caller stays responsible for it.
// A nil v leaves the node without a volume.
func (n *Node) SetVolume(v *voxel.RawVolume, transferOwnership bool) {
	n.Release()
	switch {
	case v == nil:
	case transferOwnership:
		n.binding = Owned{Volume: v}
	default:
		n.binding = Borrowed{Volume: v}
	}
}

// SetSharedVolume releases the current binding and takes a new
// reference of h, dropped again in [Node.Release]. A nil h leaves
// the node without a volume.
func (n *Node) SetSharedVolume(h *voxel.Shared) {
	n.Release()
	if h != nil {
		n.binding = Shared{Handle: h.Acquire()}
	}
}

// SetReference releases the current binding and links the node to
// the volume of the node with the given id.
func (n *Node) SetReference(nodeID int) {
	n.Release()
	n.binding = Linked{NodeID: nodeID}
}

// Release frees an owned volume, drops a shared reference, and
// clears the binding. It is idempotent.
func (n *Node) Release() {
	switch b := n.binding.(type) {
	case Owned:
		b.Volume.Release()
	case Shared:
		b.Handle.Release()
	}
	n.binding = nil
}

// ReleaseOwnership turns an owned volume into a borrowed one without
// freeing it, for handing the responsibility to another owner.
func (n *Node) ReleaseOwnership() {
	if b, ok := n.binding.(Owned); ok {
		n.binding = Borrowed(b)
	}
}

// Binding returns how the node holds its volume, nil for none.
func (n *Node) Binding() Binding {
	return n.binding
}

// Volume returns the volume the node holds directly, or nil.
// For a [Linked] node use [Graph.ResolveVolume].
func (n *Node) Volume() *voxel.RawVolume {
	return volumeOf(n.binding)
}

// Owned returns whether the node is responsible for releasing its volume.
func (n *Node) Owned() bool {
	_, ok := n.binding.(Owned)
	return ok
}

// ReferencedNodeID returns the id of the linked node, or [InvalidNodeID].
func (n *Node) ReferencedNodeID() int {
	if b, ok := n.binding.(Linked); ok {
		return b.NodeID
	}
	return InvalidNodeID
}

// Region returns the region of the held volume, or
// [voxel.InvalidRegion] without one.
func (n *Node) Region() voxel.Region {
	if v := n.Volume(); v != nil {
		return v.Region()
	}
	return voxel.InvalidRegion
}

// Translate moves the held volume's region by v. It does nothing without a volume.
func (n *Node) Translate(v math32.Vector3i) {
	if vol := n.Volume(); vol != nil {
		vol.Translate(v)
	}
}

// SetTranslation sets the translation of the local transform.
func (n *Node) SetTranslation(v math32.Vector3) {
	n.Transform.SetTranslation(v.X, v.Y, v.Z)
}

// Children:

// AddChild appends a child id. Duplicates are not checked.
func (n *Node) AddChild(id int) {
	n.children = append(n.children, id)
}

// RemoveChild removes the first occurrence of id, returning false if absent.
func (n *Node) RemoveChild(id int) bool {
	i := slices.Index(n.children, id)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	return true
}

// Children returns the child ids in insertion order.
// The slice must not be modified.
func (n *Node) Children() []int {
	return n.children
}

// HasChildren returns whether the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Properties:

// Property returns the value for key, or "" if it is not set.
func (n *Node) Property(key string) string {
	return n.properties.ValueByKey(key)
}

// SetProperty sets the value for key.
func (n *Node) SetProperty(key, value string) {
	n.properties.Add(key, value)
}

// AddProperties merges the given entries in order; later values
// overwrite earlier ones for the same key.
func (n *Node) AddProperties(props iter.Seq2[string, string]) {
	for k, v := range props {
		n.properties.Add(k, v)
	}
}

// Properties returns the property map in insertion order.
func (n *Node) Properties() *ordmap.Map[string, string] {
	return &n.properties
}

// Transfer:

// MoveFrom moves src into n. The current binding of n is released
// first, then n takes src's binding and every other field. src is left
// inert: no binding, ids reset to [InvalidNodeID], type [Unknown], and
// no children or properties, so releasing it afterwards frees nothing.
// Moving a node onto itself does nothing.
func (n *Node) MoveFrom(src *Node) {
	if n == src {
		return
	}
	n.Release()
	n.binding, src.binding = src.binding, nil
	n.Name = src.Name
	n.Transform = src.Transform
	n.Pivot = src.Pivot
	n.Visible = src.Visible
	n.Locked = src.Locked
	n.id, src.id = src.id, InvalidNodeID
	n.parent, src.parent = src.parent, InvalidNodeID
	n.modelID, src.modelID = src.modelID, InvalidNodeID
	n.typ, src.typ = src.typ, Unknown
	n.uuid, src.uuid = src.uuid, uuid.Nil
	n.children, src.children = src.children, nil
	n.properties, src.properties = src.properties, ordmap.Map[string, string]{}
}

// fields are the exported fields of a [Node], which [Node.Clone] copies
// as they are. Ids, children and the UUID belong to the graph position
// and identity of a node and never go through copier.
type fields struct {
	Name      string
	Transform math32.Matrix4
	Pivot     math32.Vector3
	Visible   bool
	Locked    bool
}

// Clone returns a copy of the node with a new UUID, unset ids and no
// children, ready to be added to a graph. An owned volume is deep
// copied; borrowed, shared and linked volumes are shared with n.
func (n *Node) Clone() *Node {
	var f fields
	errors.Log(copier.CopyWithOption(&f, n, copier.Option{DeepCopy: true}))
	c := NewNode(n.typ)
	errors.Log(copier.Copy(c, &f))
	c.properties = *n.properties.Clone()
	switch b := n.binding.(type) {
	case Owned:
		c.binding = Owned{Volume: b.Volume.Clone()}
	case Shared:
		c.binding = Shared{Handle: b.Handle.Acquire()}
	default:
		c.binding = b
	}
	return c
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
