package dot

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/hasseviz/pkg/render"
)

func chainDiagram() render.Diagram {
	return render.Diagram{
		Nodes: []render.Node{
			{ID: "1", Level: 0},
			{ID: "2", Level: 1},
			{ID: "3", Level: 2},
		},
		Edges: []render.Edge{
			{From: "1", To: "2"},
			{From: "2", To: "3"},
		},
	}
}

func TestToDOT_Basic(t *testing.T) {
	got, err := ToDOT(chainDiagram(), Options{})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}

	for _, want := range []string{
		"digraph hasse {",
		"rankdir=BT;",
		"edge [dir=none];",
		`"1" -> "2";`,
		`"2" -> "3";`,
		`fillcolor="white"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT output missing %q:\n%s", want, got)
		}
	}
}

func TestToDOT_RankGroups(t *testing.T) {
	d := render.Diagram{
		Nodes: []render.Node{
			{ID: "a", Level: 0},
			{ID: "b", Level: 1},
			{ID: "c", Level: 1},
		},
		Edges: []render.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}},
	}

	got, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	if !strings.Contains(got, `{ rank=same; "b"; "c"; }`) {
		t.Errorf("DOT output missing same-rank group for level 1:\n%s", got)
	}
}

func TestToDOT_Title(t *testing.T) {
	d := chainDiagram()
	d.Title = "My Poset"

	got, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	if !strings.Contains(got, `label="My Poset";`) {
		t.Errorf("DOT output missing title:\n%s", got)
	}
	if !strings.Contains(got, "labelloc=t;") {
		t.Errorf("DOT output missing title placement:\n%s", got)
	}
}

func TestToDOT_Color(t *testing.T) {
	d := chainDiagram()
	d.NodeColor = "lightblue"

	got, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	if !strings.Contains(got, `fillcolor="lightblue"`) {
		t.Errorf("DOT output missing fill color:\n%s", got)
	}
}

func TestToDOT_UnknownColor(t *testing.T) {
	d := chainDiagram()
	d.NodeColor = "sparkle"

	_, err := ToDOT(d, Options{})
	if err == nil {
		t.Fatal("ToDOT() = nil, want unknown color error")
	}
	var colErr *UnknownColorError
	if !errors.As(err, &colErr) {
		t.Fatalf("error %v is not an UnknownColorError", err)
	}
	if colErr.Name != "sparkle" {
		t.Errorf("Name = %q, want sparkle", colErr.Name)
	}
}

func TestToDOT_DetailedLabels(t *testing.T) {
	got, err := ToDOT(chainDiagram(), Options{Detailed: true})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	if !strings.Contains(got, `label="2\nlevel 1"`) {
		t.Errorf("DOT output missing detailed label:\n%s", got)
	}
}

func TestToDOT_EmptyDiagram(t *testing.T) {
	got, err := ToDOT(render.Diagram{}, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	if !strings.Contains(got, "digraph hasse {") {
		t.Errorf("empty diagram should still emit a valid graph:\n%s", got)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		nodes int
		want  int
	}{
		{1, 16},
		{10, 16},
		{16, 10},
		{1000, 8},
	}
	for _, tt := range tests {
		if got := fontSize(tt.nodes); got != tt.want {
			t.Errorf("fontSize(%d) = %d, want %d", tt.nodes, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 120.50 80.25" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 120.50 80.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="121"`) && !strings.Contains(out, `width="120"`) {
		t.Errorf("width not rewritten: %s", out)
	}
}
