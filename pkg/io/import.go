// Package io reads relation documents and writes computed diagrams.
//
// Relation documents are small JSON or TOML files:
//
//	{
//	  "title": "Divisors of 12",
//	  "color": "lightblue",
//	  "elements": ["7"],
//	  "pairs": [[1, 2], [2, 4], [1, 3]]
//	}
//
// Pair endpoints may be strings or numbers; both are normalized to string
// element IDs. "elements" lists isolated elements that appear in no pair,
// and "title"/"color" are optional presentation hints passed through to
// the renderer.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hasseviz/pkg/poset"
)

// Input is a decoded relation document.
type Input struct {
	Relation *poset.Relation[string]
	Title    string
	Color    string
}

// document is the raw wire shape shared by the JSON and TOML decoders.
type document struct {
	Title    string  `json:"title" toml:"title"`
	Color    string  `json:"color" toml:"color"`
	Elements []any   `json:"elements" toml:"elements"`
	Pairs    [][]any `json:"pairs" toml:"pairs"`
}

// ReadJSON decodes a JSON relation document from r.
//
// Returns an error if the JSON is malformed, a pair does not have exactly
// two endpoints, or an endpoint is not a string, number, or boolean.
func ReadJSON(r io.Reader) (*Input, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}

// ReadTOML decodes a TOML relation document from r.
// The document shape matches [ReadJSON] with TOML syntax.
func ReadTOML(r io.Reader) (*Input, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}

// Import reads a relation document from path, dispatching on the file
// extension: .json for JSON, .toml for TOML.
func Import(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON(f)
	case ".toml":
		return ReadTOML(f)
	default:
		return nil, fmt.Errorf("unsupported input extension %q (want .json or .toml)", ext)
	}
}

func fromDocument(doc document) (*Input, error) {
	rel := poset.NewRelation[string](nil)

	for i, p := range doc.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("pair %d: got %d endpoints, want 2", i, len(p))
		}
		a, err := elementID(p[0])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		b, err := elementID(p[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		rel.Add(a, b)
	}

	for i, e := range doc.Elements {
		id, err := elementID(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		rel.AddElement(id)
	}

	return &Input{Relation: rel, Title: doc.Title, Color: doc.Color}, nil
}

// elementID normalizes a decoded scalar to a string element ID.
// Integral floats lose their trailing ".0" so JSON 2 and TOML 2.0 name
// the same element.
func elementID(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return "", fmt.Errorf("empty element ID")
		}
		return x, nil
	case json.Number:
		return x.String(), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatInt(int64(x), 10), nil
		}
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("unsupported element type %T", v)
	}
}
