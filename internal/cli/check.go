package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/hasseviz/pkg/errors"
	hio "github.com/matzehuels/hasseviz/pkg/io"
	"github.com/matzehuels/hasseviz/pkg/pipeline"
)

// checkCommand creates the check command for validating partial orders.
func (c *CLI) checkCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that a relation file describes a partial order",
		Long: `Check that a relation file describes a partial order.

The input relation is closed under reflexivity and transitivity first, so
pairs only need to list the generating comparisons. The closed relation is
then tested against the partial-order laws; the first violation found is
reported with the elements involved.

Exit status is 0 for a valid partial order and 1 otherwise, so check works
in scripts with --quiet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report via exit status only")

	return cmd
}

// runCheck imports the relation and validates it, printing a styled report.
func (c *CLI) runCheck(input string, quiet bool) error {
	in, err := hio.Import(input)
	if err != nil {
		if !quiet {
			printError("%s", err)
		}
		return err
	}

	prog := newProgress(c.Logger)
	runner := pipeline.NewRunner(nil, c.Logger)
	defer runner.Close()

	cov, levels, err := runner.Check(in.Relation)
	if err != nil {
		if !quiet {
			printError("%s is not a partial order", input)
			var aerr *apperrors.Error
			if errors.As(err, &aerr) && aerr.Cause != nil {
				printDetail("%s", aerr.Cause)
			} else {
				printDetail("%s", apperrors.UserMessage(err))
			}
		}
		return err
	}
	prog.done(fmt.Sprintf("Checked %d elements", cov.ElementCount()))

	if quiet {
		return nil
	}

	printSuccess("%s is a partial order", input)
	printStats(cov.ElementCount(), cov.EdgeCount(), maxLevel(levels)+1, false)
	printNextStep("Draw it", fmt.Sprintf("hasseviz render %s", input))
	return nil
}
