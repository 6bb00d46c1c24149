package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	hio "github.com/matzehuels/hasseviz/pkg/io"
	"github.com/matzehuels/hasseviz/pkg/pipeline"
)

// inspectCommand creates the inspect command for examining poset structure.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the covering relation and levels of a partial order",
		Long: `Print the covering relation and levels of a partial order.

The relation is closed, validated, and reduced to its covering relation,
then shown one element per row with its level and its direct upper
neighbors. Elements appear in the order they first occur in the input
file, so the table is stable across runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}

	return cmd
}

// runInspect imports the relation and prints its structural skeleton.
func (c *CLI) runInspect(input string) error {
	in, err := hio.Import(input)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	defer runner.Close()

	cov, levels, err := runner.Check(in.Relation)
	if err != nil {
		printError("%s is not a partial order", input)
		return err
	}

	title := in.Title
	if title == "" {
		title = input
	}
	fmt.Println(StyleTitle.Render(title))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader.Padding(0, 1)
			}
			return styleTableCell
		}).
		Headers("ELEMENT", "LEVEL", "COVERED BY")

	for _, e := range cov.Elements() {
		coveredBy := cov.Successors(e)
		t.Row(e, fmt.Sprintf("%d", levels[e]), strings.Join(coveredBy, ", "))
	}

	fmt.Println(t)
	printStats(cov.ElementCount(), cov.EdgeCount(), maxLevel(levels)+1, false)
	return nil
}

// maxLevel returns the highest level in the assignment, or -1 when empty.
func maxLevel(levels map[string]int) int {
	max := -1
	for _, l := range levels {
		if l > max {
			max = l
		}
	}
	return max
}
