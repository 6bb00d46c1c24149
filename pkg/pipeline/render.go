package pipeline

import (
	"errors"

	apperrors "github.com/matzehuels/hasseviz/pkg/errors"
	hio "github.com/matzehuels/hasseviz/pkg/io"
	"github.com/matzehuels/hasseviz/pkg/render"
	"github.com/matzehuels/hasseviz/pkg/render/dot"
)

// renderArtifacts produces every requested format from the diagram.
// DOT is emitted once and reused for the Graphviz-backed formats.
func renderArtifacts(d render.Diagram, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	dotOpts := dot.Options{Detailed: opts.Detailed}
	var dotSrc string

	// DOT source, computed lazily since the JSON format doesn't need it.
	ensureDOT := func() error {
		if dotSrc != "" {
			return nil
		}
		src, err := dot.ToDOT(d, dotOpts)
		if err != nil {
			return classifyRenderError(err)
		}
		dotSrc = src
		return nil
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			if err := ensureDOT(); err != nil {
				return nil, err
			}
			artifacts[FormatDOT] = []byte(dotSrc)

		case FormatSVG:
			if err := ensureDOT(); err != nil {
				return nil, err
			}
			svg, err := dot.RenderSVG(dotSrc)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render svg")
			}
			artifacts[FormatSVG] = svg

		case FormatPNG:
			if err := ensureDOT(); err != nil {
				return nil, err
			}
			png, err := dot.RenderPNG(dotSrc)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render png")
			}
			artifacts[FormatPNG] = png

		case FormatJSON:
			data, err := hio.MarshalDiagram(d)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "marshal diagram")
			}
			artifacts[FormatJSON] = data

		default:
			return nil, ValidateFormat(format)
		}
	}

	return artifacts, nil
}

// classifyRenderError maps renderer errors to structured codes.
func classifyRenderError(err error) error {
	var unknown *dot.UnknownColorError
	if errors.As(err, &unknown) {
		return apperrors.Wrap(apperrors.ErrCodeInvalidColor, err, "render")
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, err, "render")
}
