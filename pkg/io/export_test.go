package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/hasseviz/pkg/render"
)

func sampleDiagram() render.Diagram {
	return render.Diagram{
		Nodes: []render.Node{
			{ID: "1", Level: 0, X: 0, Y: 0},
			{ID: "2", Level: 1, X: 0, Y: 1},
		},
		Edges: []render.Edge{{From: "1", To: "2"}},
		Title: "Chain",
	}
}

func TestWriteDiagram_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDiagram(sampleDiagram(), &buf); err != nil {
		t.Fatalf("WriteDiagram() error = %v", err)
	}

	var got render.Diagram
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got.Nodes) != 2 || got.Nodes[1].Level != 1 {
		t.Errorf("nodes not preserved: %+v", got.Nodes)
	}
	if len(got.Edges) != 1 || got.Edges[0] != (render.Edge{From: "1", To: "2"}) {
		t.Errorf("edges not preserved: %+v", got.Edges)
	}
	if got.Title != "Chain" {
		t.Errorf("Title = %q, want Chain", got.Title)
	}
}

func TestWriteDiagram_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteDiagram(sampleDiagram(), &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteDiagram(sampleDiagram(), &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("repeated writes produced different bytes")
	}
}

func TestExportDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportDiagram(sampleDiagram(), path); err != nil {
		t.Fatalf("ExportDiagram() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got render.Diagram
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
}

func TestMarshalDiagram_MatchesWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDiagram(sampleDiagram(), &buf); err != nil {
		t.Fatal(err)
	}
	data, err := MarshalDiagram(sampleDiagram())
	if err != nil {
		t.Fatalf("MarshalDiagram() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("MarshalDiagram output differs from WriteDiagram:\n%s\nvs\n%s", data, buf.Bytes())
	}
}
