package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hasseviz/pkg/cache"
	apperrors "github.com/matzehuels/hasseviz/pkg/errors"
	"github.com/matzehuels/hasseviz/pkg/hasse"
	"github.com/matzehuels/hasseviz/pkg/poset"
	"github.com/matzehuels/hasseviz/pkg/render"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete check → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, rel *poset.Relation[string], opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts:    make(map[string][]byte),
		RelationHash: RelationHash(rel),
	}

	// Stage 1: Check
	checkStart := time.Now()
	cov, levels, err := r.Check(rel)
	if err != nil {
		return nil, err
	}
	result.Covering = cov
	result.Levels = levels
	result.Stats.CheckTime = time.Since(checkStart)
	result.Stats.ElementCount = cov.ElementCount()
	result.Stats.EdgeCount = cov.EdgeCount()
	result.Stats.ClosureSize = rel.Close().PairCount()

	r.Logger.Info("checked partial order",
		"elements", cov.ElementCount(),
		"edges", cov.EdgeCount(),
		"duration", result.Stats.CheckTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	layout := r.Layout(cov, levels, opts)
	result.Diagram = render.FromLayout(layout)
	result.Diagram.Title = opts.Title
	result.Diagram.NodeColor = opts.Color
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LevelCount = layout.Height()

	r.Logger.Info("computed layout",
		"levels", layout.Height(),
		"width", layout.Width(),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.RelationHash, result.Diagram, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Check closes the relation, validates the partial-order laws, and
// computes the covering relation and levels. Violations come back as
// structured errors carrying the specific law that failed.
func (r *Runner) Check(rel *poset.Relation[string]) (poset.Covering[string], map[string]int, error) {
	cov, levels, err := poset.Build(rel)
	if err != nil {
		return poset.Covering[string]{}, nil, classifyCheckError(err)
	}
	return cov, levels, nil
}

// Layout positions the covering relation on the plane, one row per level.
func (r *Runner) Layout(cov poset.Covering[string], levels map[string]int, opts Options) hasse.Layout[string] {
	opts.SetLayoutDefaults()
	return hasse.Build(cov, levels, hasse.Options{
		NodeSpacing:  opts.NodeSpacing,
		LevelSpacing: opts.LevelSpacing,
	})
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. relationHash identifies the input; use [RelationHash].
func (r *Runner) RenderWithCacheInfo(ctx context.Context, relationHash string, d render.Diagram, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	if !opts.Refresh {
		allCached := true
		artifacts := make(map[string][]byte)

		for _, format := range opts.Formats {
			key := opts.artifactKey(relationHash, format)
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := renderArtifacts(d, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := opts.artifactKey(relationHash, format)
		_ = r.Cache.Set(ctx, key, data, cache.DefaultTTL)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, relationHash string, d render.Diagram, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, relationHash, d, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// RelationHash computes the content hash of a relation from its canonical
// element and pair lists. Relations built from the same document hash the
// same, which makes the hash usable as a cache key component.
func RelationHash(rel *poset.Relation[string]) string {
	type canonical struct {
		Elements []string             `json:"elements"`
		Pairs    []poset.Pair[string] `json:"pairs"`
	}
	data, _ := json.Marshal(canonical{
		Elements: rel.Elements(),
		Pairs:    rel.Pairs(),
	})
	return cache.Hash(data)
}

// classifyCheckError wraps validation failures from the check stage in
// structured errors so callers can branch on the violated law.
func classifyCheckError(err error) error {
	var anti *poset.AntisymmetryError[string]
	if errors.As(err, &anti) {
		return apperrors.Wrap(apperrors.ErrCodeAntisymmetry, err, "not a partial order")
	}
	var trans *poset.TransitivityError[string]
	if errors.As(err, &trans) {
		return apperrors.Wrap(apperrors.ErrCodeTransitivity, err, "not a partial order")
	}
	if errors.Is(err, poset.ErrCycle) {
		return apperrors.Wrap(apperrors.ErrCodeCycle, err, "covering relation has a cycle")
	}
	if errors.Is(err, poset.ErrNotAPoset) {
		return apperrors.Wrap(apperrors.ErrCodeNotAPoset, err, "not a partial order")
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, err, "check failed")
}
