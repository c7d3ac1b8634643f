// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import (
	"gopkg.in/yaml.v3"
)

// description is the YAML form of a node and its subtree.
type description struct {
	ID         int            `yaml:"id"`
	Name       string         `yaml:"name"`
	Type       string         `yaml:"type"`
	UUID       string         `yaml:"uuid"`
	Region     string         `yaml:"region,omitempty"`
	Reference  *int           `yaml:"reference,omitempty"`
	Hidden     bool           `yaml:"hidden,omitempty"`
	Locked     bool           `yaml:"locked,omitempty"`
	Properties *yaml.Node     `yaml:"properties,omitempty"`
	Children   []*description `yaml:"children,omitempty"`
}

func (g *Graph) describe(n *Node) *description {
	d := &description{
		ID:     n.id,
		Name:   n.Name,
		Type:   n.typ.String(),
		UUID:   n.uuid.String(),
		Hidden: !n.Visible,
		Locked: n.Locked,
	}
	if r := g.NodeRegion(n.id); r.IsValid() {
		d.Region = r.String()
	}
	if ref := n.ReferencedNodeID(); ref != InvalidNodeID {
		d.Reference = &ref
	}
	if n.properties.Len() > 0 {
		// a mapping node keeps the property order
		d.Properties = &yaml.Node{Kind: yaml.MappingNode}
		for k, v := range n.properties.All() {
			d.Properties.Content = append(d.Properties.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Value: v})
		}
	}
	for _, c := range n.children {
		if cn := g.Node(c); cn != nil {
			d.Children = append(d.Children, g.describe(cn))
		}
	}
	return d
}

// MarshalYAML implements [yaml.Marshaler], describing the node tree
// from the root down.
func (g *Graph) MarshalYAML() (any, error) {
	return g.describe(g.Root()), nil
}

// Describe returns the node tree as YAML, for logging and debugging.
func (g *Graph) Describe() (string, error) {
	b, err := yaml.Marshal(g)
	return string(b), err
}
