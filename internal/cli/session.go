package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/hilbert/internal/engine"
	"github.com/roach88/hilbert/internal/ir"
	"github.com/roach88/hilbert/internal/logging"
)

// buildAxioms returns the starting axiom set: K, S and E unless
// --no-default-axioms, followed by the definitions under --axioms.
func buildAxioms(opts *RootOptions) (*engine.AxiomSet, error) {
	var specs []ir.AxiomSpec
	if !opts.NoDefaultAxioms {
		specs = append(specs, engine.DefaultAxiomSpecs()...)
	}

	if opts.AxiomsDir != "" {
		dir, err := resolvePath(opts, opts.AxiomsDir)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeIOUnavailable, Message: err.Error()}
		}
		result, errs := LoadAxioms(dir, LoadModeFailFast)
		if len(errs) > 0 {
			return nil, errs[0]
		}
		specs = append(specs, result.Axioms...)
	}

	set, err := engine.NewAxiomSetFromSpecs(specs)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeAxiomRejected, Message: err.Error()}
	}
	return set, nil
}

// newVerifier builds the Verifier for one command invocation. Debug logs go
// to the command's stderr so they never mix with verdict output.
func newVerifier(opts *RootOptions, cmd *cobra.Command) (*engine.Verifier, error) {
	axioms, err := buildAxioms(opts)
	if err != nil {
		return nil, err
	}

	vopts := []engine.Option{
		engine.WithLogger(logging.New(cmd.ErrOrStderr(), logging.Level(opts.Verbose))),
	}
	if opts.Sessions != nil {
		vopts = append(vopts, engine.WithSessionGenerator(opts.Sessions))
	}
	return engine.New(axioms, vopts...), nil
}

// resolvePath joins a relative path onto --workdir, or onto the process
// working directory when --workdir is unset.
func resolvePath(opts *RootOptions, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	base := opts.Workdir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("working directory unavailable: %w", err)
		}
		base = wd
	}
	return filepath.Join(base, path), nil
}

// axiomLoadError reports a failure from buildAxioms in the configured format.
func axiomLoadError(formatter *OutputFormatter, err error) error {
	code, msg := ErrCodeGeneric, err.Error()
	var le *LoadError
	if errors.As(err, &le) {
		code, msg = le.Code, le.Message
	}
	_ = formatter.Error(code, msg, nil)
	return WrapExitError(ExitCommandError, "failed to load axioms", err)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
