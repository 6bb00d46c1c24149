// Package hasse turns a covering relation and its level assignment into
// 2D positions for diagram rendering.
//
// The layout is deliberately simple: one horizontal row per level, rows
// centered around x = 0, and the vertical coordinate growing with the
// level so that minimal elements sit in row 0. Renderers that want
// minimal elements at the bottom (the usual Hasse convention) flip the
// axis; the DOT renderer does this with rankdir.
package hasse

import (
	"github.com/matzehuels/hasseviz/pkg/poset"
)

// Default spacing between node centers, in abstract layout units.
const (
	DefaultNodeSpacing  = 1.0
	DefaultLevelSpacing = 1.0
)

// Position is a 2D placement for one element.
type Position struct {
	X float64
	Y float64
}

// Options controls layout spacing.
type Options struct {
	// NodeSpacing is the horizontal distance between neighbouring nodes
	// in the same row. Defaults to DefaultNodeSpacing when zero or negative.
	NodeSpacing float64

	// LevelSpacing is the vertical distance between rows.
	// Defaults to DefaultLevelSpacing when zero or negative.
	LevelSpacing float64
}

// Layout is the positioned diagram skeleton handed to renderers.
type Layout[E comparable] struct {
	// Elements in first-appearance order.
	Elements []E

	// Edges are the covering edges, in the covering relation's order.
	Edges []poset.Pair[E]

	// Levels maps each element to its row.
	Levels map[E]int

	// Rows lists the elements of each level, top row first. Within a row
	// elements keep their first-appearance order, so layout is stable
	// across runs.
	Rows [][]E

	// Positions maps each element to its placement.
	Positions map[E]Position
}

// Build computes a layout from a covering relation and its levels.
//
// Rows are indexed by level; every level between 0 and the maximum is
// present even if empty (a level can only be empty when the level map
// itself skips it, which a correct assignment never does). Each row is
// centered horizontally, matching the reference diagrams where chains
// form a straight vertical line.
func Build[E comparable](cov poset.Covering[E], levels map[E]int, opts Options) Layout[E] {
	if opts.NodeSpacing <= 0 {
		opts.NodeSpacing = DefaultNodeSpacing
	}
	if opts.LevelSpacing <= 0 {
		opts.LevelSpacing = DefaultLevelSpacing
	}

	elems := cov.Elements()

	maxLevel := 0
	for _, lvl := range levels {
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}

	rows := make([][]E, maxLevel+1)
	if len(elems) == 0 {
		rows = nil
	}
	for _, e := range elems {
		lvl := levels[e]
		rows[lvl] = append(rows[lvl], e)
	}

	positions := make(map[E]Position, len(elems))
	for lvl, row := range rows {
		xStart := -float64(len(row)-1) / 2 * opts.NodeSpacing
		for i, e := range row {
			positions[e] = Position{
				X: xStart + float64(i)*opts.NodeSpacing,
				Y: float64(lvl) * opts.LevelSpacing,
			}
		}
	}

	return Layout[E]{
		Elements:  elems,
		Edges:     cov.Edges(),
		Levels:    levels,
		Rows:      rows,
		Positions: positions,
	}
}

// Height returns the number of rows in the layout.
func (l Layout[E]) Height() int { return len(l.Rows) }

// Width returns the size of the largest row.
func (l Layout[E]) Width() int {
	w := 0
	for _, row := range l.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
