package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/hilbert/internal/ir"
)

// AxiomsResult is the JSON payload of the axioms command.
type AxiomsResult struct {
	Axioms []ir.AxiomSpec `json:"axioms"`
}

// NewAxiomsCommand creates the axioms command.
func NewAxiomsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axioms",
		Short: "List the active axiom schemas",
		Long: `List the axiom schemas a session would start with, in declaration
order: K, S and E unless --no-default-axioms, then any definitions loaded
with --axioms.

Examples:
  hilbert axioms
  hilbert axioms --axioms ./axioms --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAxioms(rootOpts, cmd)
		},
	}

	return cmd
}

func runAxioms(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	set, err := buildAxioms(opts)
	if err != nil {
		return axiomLoadError(formatter, err)
	}

	result := AxiomsResult{Axioms: []ir.AxiomSpec{}}
	for _, a := range set.List() {
		result.Axioms = append(result.Axioms, a.Spec())
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	for _, a := range result.Axioms {
		fmt.Fprintf(formatter.Writer, "%s : %s\n", a.Template, a.Name)
	}
	return nil
}
