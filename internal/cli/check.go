package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/hilbert/internal/ir"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <formula>...",
		Short: "Check formulas in order",
		Long: `Check one or more formulas in a single session.

Formulas are checked left to right; each accepted formula can justify the
ones after it.

Exit codes:
  0 - Every formula was accepted
  1 - At least one formula was invalid or not derivable
  2 - Command error (bad axiom definitions, etc.)

Examples:
  hilbert check "p->(q->p)"
  hilbert check "p->(q->p)" "a->(b->a)" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, formulas []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	v, err := newVerifier(opts, cmd)
	if err != nil {
		return axiomLoadError(formatter, err)
	}

	for _, text := range formulas {
		v.Submit(text)
	}

	if err := formatter.Report(v.Report()); err != nil {
		return err
	}
	return rejectedError(v.Verdicts())
}

// rejectedError returns an ExitFailure error when any verdict is not an
// acceptance.
func rejectedError(verdicts []ir.Verdict) error {
	rejected := 0
	for _, v := range verdicts {
		if !v.Accepted() {
			rejected++
		}
	}
	if rejected > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d formula(s) rejected", rejected, len(verdicts)))
	}
	return nil
}
