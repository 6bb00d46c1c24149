package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	hio "github.com/matzehuels/hasseviz/pkg/io"
	"github.com/matzehuels/hasseviz/pkg/pipeline"
)

// renderCommand creates the render command for drawing Hasse diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a partial order as a Hasse diagram",
		Long: `Render a partial order as a Hasse diagram.

The relation file is closed, validated, reduced to its covering relation,
and drawn with one row per level, minimal elements at the bottom. Output
formats are dot (Graphviz source), svg, png, and json (the computed
diagram with positions).

Rendered artifacts are cached locally for faster subsequent runs; use
--no-cache to disable the cache or --refresh to re-render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateColor(opts.Color); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Diagram flags
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title (defaults to the file's title)")
	cmd.Flags().StringVar(&opts.Color, "color", "", "node fill color (defaults to the file's color)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "append the level number to node labels")
	cmd.Flags().Float64Var(&opts.NodeSpacing, "node-spacing", 0, "horizontal spacing between nodes")
	cmd.Flags().Float64Var(&opts.LevelSpacing, "level-spacing", 0, "vertical spacing between levels")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "skip the artifact cache and re-render")

	return cmd
}

// runRender loads the relation file and runs the full pipeline.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	in, err := hio.Import(input)
	if err != nil {
		return err
	}

	// Flags win over the document's presentation hints.
	if opts.Title == "" {
		opts.Title = in.Title
	}
	if opts.Color == "" {
		opts.Color = in.Color
	}
	if err := pipeline.ValidateColor(opts.Color); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, in.Relation, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if result.Stats.ElementCount == 0 {
		printWarning("relation is empty, diagram has no nodes")
	}

	if err := writeArtifacts(result.Artifacts, opts.Formats, input, output); err != nil {
		return err
	}
	printStats(result.Stats.ElementCount, result.Stats.EdgeCount, result.Stats.LevelCount,
		result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes rendered artifacts to files, one per format, in
// the order the formats were requested.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	// A single format with an explicit output path writes exactly there.
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		if err := writeArtifact(output, artifacts[formats[0]]); err != nil {
			return err
		}
		return nil
	}

	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact writes one artifact and prints the output line.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
