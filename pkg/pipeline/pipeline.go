// Package pipeline provides the core diagram pipeline for Hasseviz.
//
// This package implements the complete check → layout → render pipeline
// that can be used by the CLI or embedded directly. By centralizing this
// logic, we ensure consistent behavior across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Check: Close the input relation and validate the partial-order laws
//  2. Layout: Compute the covering relation, levels, and node positions
//  3. Render: Generate output in various formats (DOT, SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Title:   "Divisors of 60",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, rel, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hasseviz/pkg/cache"
	apperrors "github.com/matzehuels/hasseviz/pkg/errors"
	"github.com/matzehuels/hasseviz/pkg/poset"
	"github.com/matzehuels/hasseviz/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

const (
	// DefaultNodeSpacing is the horizontal distance between adjacent nodes
	// in a row, in layout units.
	DefaultNodeSpacing = 1.0

	// DefaultLevelSpacing is the vertical distance between levels, in
	// layout units.
	DefaultLevelSpacing = 1.0
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization for reproducible runs.
type Options struct {
	// Diagram options
	Title string `json:"title,omitempty"`
	Color string `json:"color,omitempty"` // Node fill color (must be a recognized name)

	// Layout options
	NodeSpacing  float64 `json:"node_spacing,omitempty"`
	LevelSpacing float64 `json:"level_spacing,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Append the level number to node labels
	Refresh  bool     `json:"refresh,omitempty"`  // Skip the artifact cache and re-render

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Covering is the covering relation of the validated poset.
	Covering poset.Covering[string]

	// Levels maps each element to its level (longest chain from a minimal
	// element).
	Levels map[string]int

	// RelationHash is the content hash of the input relation.
	RelationHash string

	// Diagram is the renderer-ready diagram.
	Diagram render.Diagram

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	ClosureSize  int // Pair count of the reflexive-transitive closure
	EdgeCount    int // Covering edge count
	LevelCount   int
	CheckTime    time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateColor checks that a color name is in the recognized set.
// The empty string is valid and means the default color.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !render.IsRecognizedColor(color) {
		return apperrors.New(apperrors.ErrCodeInvalidColor,
			"unrecognized color: %q", color)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateColor(o.Color); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.NodeSpacing == 0 {
		o.NodeSpacing = DefaultNodeSpacing
	}
	if o.LevelSpacing == 0 {
		o.LevelSpacing = DefaultLevelSpacing
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateColor(o.Color)
}

// artifactOpts captures every option that affects rendered bytes. It feeds
// the artifact cache key, so two runs with the same relation, format, and
// artifactOpts must produce the same output.
type artifactOpts struct {
	Title        string  `json:"title"`
	Color        string  `json:"color"`
	Detailed     bool    `json:"detailed"`
	NodeSpacing  float64 `json:"node_spacing"`
	LevelSpacing float64 `json:"level_spacing"`
}

// artifactKey returns the cache key for one rendered format.
func (o *Options) artifactKey(relationHash, format string) string {
	return cache.ArtifactKey(relationHash, format, artifactOpts{
		Title:        o.Title,
		Color:        o.Color,
		Detailed:     o.Detailed,
		NodeSpacing:  o.NodeSpacing,
		LevelSpacing: o.LevelSpacing,
	})
}
