// Package render defines the neutral contract between the poset core and
// concrete diagram renderers.
//
// The core never imports a rendering library; it produces a [Diagram] -
// nodes with levels and positions, covering edges, and optional
// presentation hints - and renderers consume it. The only renderer
// shipped with this module lives in the dot subpackage.
package render

import (
	"fmt"

	"github.com/matzehuels/hasseviz/pkg/hasse"
)

// Node is one positioned diagram node.
type Node struct {
	ID    string  `json:"id"`
	Level int     `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge is one covering edge, drawn between the nodes it connects.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Diagram is the full input handed to a renderer.
//
// Title and NodeColor are presentation hints the core does not interpret;
// renderers validate NodeColor against [IsRecognizedColor] and may reject
// unknown names.
type Diagram struct {
	Nodes     []Node `json:"nodes"`
	Edges     []Edge `json:"edges"`
	Title     string `json:"title,omitempty"`
	NodeColor string `json:"node_color,omitempty"`
}

// Renderer produces output bytes (SVG, PNG, ...) from a diagram.
type Renderer interface {
	Render(d Diagram) ([]byte, error)
}

// FromLayout converts a positioned layout into a renderer-neutral diagram.
// Element labels are their fmt.Sprint representation. Nodes appear row by
// row (top row first) and edges keep the covering relation's order, so
// the diagram is deterministic for a given layout.
func FromLayout[E comparable](l hasse.Layout[E]) Diagram {
	var d Diagram
	for _, row := range l.Rows {
		for _, e := range row {
			pos := l.Positions[e]
			d.Nodes = append(d.Nodes, Node{
				ID:    fmt.Sprint(e),
				Level: l.Levels[e],
				X:     pos.X,
				Y:     pos.Y,
			})
		}
	}
	for _, e := range l.Edges {
		d.Edges = append(d.Edges, Edge{From: fmt.Sprint(e.A), To: fmt.Sprint(e.B)})
	}
	return d
}

// LevelCount returns the number of distinct levels in the diagram.
func (d Diagram) LevelCount() int {
	seen := make(map[int]struct{})
	for _, n := range d.Nodes {
		seen[n.Level] = struct{}{}
	}
	return len(seen)
}
