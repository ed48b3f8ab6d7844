package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/hilbert/internal/engine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose         bool
	Format          string // "json" | "text"
	AxiomsDir       string // directory of CUE axiom definitions
	NoDefaultAxioms bool   // start without K, S and E
	Workdir         string // base for relative import/export paths

	// Sessions overrides the session token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Sessions engine.SessionGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hilbert CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hilbert",
		Short: "Hilbert-style proof checker for implicational logic",
		Long: `Check formulas of the implicational fragment of propositional logic.

Each formula is accepted when it is an instance of a previously accepted
formula, an instance of an axiom schema, or follows by modus ponens.
Accepted formulas become available to every later check in the session.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.AxiomsDir, "axioms", "", "directory of CUE axiom definitions to add")
	cmd.PersistentFlags().BoolVar(&opts.NoDefaultAxioms, "no-default-axioms", false, "start without the K, S and E schemas")
	cmd.PersistentFlags().StringVar(&opts.Workdir, "workdir", "", "base directory for relative file paths (default: current directory)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewAxiomsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
