// Package dot renders Hasse diagrams through Graphviz.
//
// ToDOT emits DOT text with one rank per level and arrowheads suppressed,
// the usual Hasse drawing convention. RenderSVG and RenderPNG run the DOT
// through the embedded Graphviz engine.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hasseviz/pkg/render"
)

// Options configures DOT emission.
type Options struct {
	// Detailed appends the level number to each node label.
	Detailed bool
}

// UnknownColorError reports a node color outside the recognized set.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unrecognized node color %q", e.Name)
}

// ToDOT converts a diagram to Graphviz DOT format.
//
// Levels become same-rank groups and rankdir=BT puts minimal elements at
// the bottom. Edges are drawn without arrowheads. Node size shrinks as
// the diagram grows, mirroring how small posets are drawn with generous
// circles and large ones with compact nodes.
//
// Returns an [UnknownColorError] if the diagram's NodeColor is set but
// not in the recognized color set.
func ToDOT(d render.Diagram, opts Options) (string, error) {
	color := d.NodeColor
	if color == "" {
		color = render.DefaultNodeColor
	} else if !render.IsRecognizedColor(color) {
		return "", &UnknownColorError{Name: d.NodeColor}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph hasse {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if d.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", d.Title)
		buf.WriteString("  labelloc=t;\n")
		buf.WriteString("  fontsize=20;\n")
	}
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, color=black, fontsize=%d, margin=0.05];\n",
		color, fontSize(len(d.Nodes)))
	buf.WriteString("  edge [dir=none];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, fmtLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, level := range levelGroups(d) {
		buf.WriteString("  { rank=same;")
		for _, id := range level {
			fmt.Fprintf(&buf, " %q;", id)
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// fontSize scales node text with diagram size: generous for small posets,
// shrinking toward a floor for large ones.
func fontSize(nodes int) int {
	if nodes <= 10 {
		return 16
	}
	size := 160 / nodes
	if size < 8 {
		return 8
	}
	return size
}

func fmtLabel(n render.Node, detailed bool) string {
	if !detailed {
		return n.ID
	}
	return fmt.Sprintf("%s\nlevel %d", n.ID, n.Level)
}

// levelGroups collects node IDs per level, preserving node order.
// The returned groups are ordered by level.
func levelGroups(d render.Diagram) [][]string {
	maxLevel := -1
	for _, n := range d.Nodes {
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
	}
	if maxLevel < 0 {
		return nil
	}
	groups := make([][]string, maxLevel+1)
	for _, n := range d.Nodes {
		groups[n.Level] = append(groups[n.Level], n.ID)
	}
	return groups
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root tag so the viewBox starts at the
// origin with explicit pixel dimensions, which keeps embedding predictable.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// SVGRenderer implements [render.Renderer] by composing ToDOT and RenderSVG.
type SVGRenderer struct {
	Opts Options
}

// Render emits the diagram as SVG bytes.
func (r SVGRenderer) Render(d render.Diagram) ([]byte, error) {
	dotSrc, err := ToDOT(d, r.Opts)
	if err != nil {
		return nil, err
	}
	return RenderSVG(dotSrc)
}

var _ render.Renderer = SVGRenderer{}
