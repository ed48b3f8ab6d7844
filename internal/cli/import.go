package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/hilbert/internal/engine"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Export string // path of the verdict log to write
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Check every line of a file",
		Long: `Check a file of formulas, one per line, in a single session.

Blank lines are skipped. Malformed lines are reported as invalid and the
remaining lines are still checked. Relative paths are resolved against
--workdir, or the current directory when it is unset.

Exit codes:
  0 - File processed (rejected lines do not fail the import)
  2 - Command error (unreadable input, unwritable export, bad axioms)

Examples:
  hilbert import proofs.txt
  hilbert import proofs.txt --export verdicts.txt
  hilbert --workdir ./session import proofs.txt --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Export, "export", "", "write the verdict log to this file")

	return cmd
}

func runImport(opts *ImportOptions, file string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	v, err := newVerifier(opts.RootOptions, cmd)
	if err != nil {
		return axiomLoadError(formatter, err)
	}

	if err := importFile(opts.RootOptions, v, file); err != nil {
		_ = formatter.Error(ErrCodeIOUnavailable, err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}
	formatter.VerboseLog("Imported %d formula(s) from %s", len(v.Verdicts()), file)

	if opts.Export != "" {
		if err := exportFile(opts.RootOptions, v, opts.Export); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "export failed", err)
		}
		formatter.VerboseLog("Exported verdict log to %s", opts.Export)
	}

	return formatter.Report(v.Report())
}

// importFile submits every line of file. Verdicts for lines read before an
// I/O error stay in the session.
func importFile(opts *RootOptions, v *engine.Verifier, file string) error {
	path, err := resolvePath(opts, file)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file, err)
	}
	defer f.Close()

	if _, err := v.ImportReader(f); err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	return nil
}

// exportFile writes the verdict log of the session to file.
func exportFile(opts *RootOptions, v *engine.Verifier, file string) error {
	path, err := resolvePath(opts, file)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", file, err)
	}
	if err := v.WriteExport(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", file, err)
	}
	return f.Close()
}
