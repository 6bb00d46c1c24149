package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/hasseviz/pkg/render"
)

// WriteDiagram encodes a computed diagram as indented JSON and writes it
// to w. The output carries nodes (with level and position), covering
// edges, and the presentation hints, in the diagram's deterministic
// order, so repeated runs produce byte-identical files.
func WriteDiagram(d render.Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportDiagram writes a diagram to a JSON file at path.
// This is a convenience wrapper around [WriteDiagram] for file output.
func ExportDiagram(d render.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDiagram(d, f)
}

// MarshalDiagram returns the diagram's JSON encoding as bytes.
func MarshalDiagram(d render.Diagram) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return append(data, '\n'), nil
}
