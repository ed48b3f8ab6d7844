package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"github.com/spf13/cobra"

	"github.com/roach88/hilbert/internal/compiler"
	"github.com/roach88/hilbert/internal/engine"
	"github.com/roach88/hilbert/internal/ir"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool                       `json:"valid"`
	Axioms   int                        `json:"axioms"`
	Errors   []compiler.ValidationError `json:"errors,omitempty"`
	Warnings []compiler.ValidationError `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [axioms-dir]",
		Short: "Validate axiom definitions without starting a session",
		Long: `Validate the CUE axiom definitions in a directory.

Every definition is checked, not just the first bad one: templates must be
well-formed formulas, params single letters declared once, and names unique
(including against K, S and E unless --no-default-axioms). A param that
never occurs in its template is reported as a warning.

The directory defaults to --axioms.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := rootOpts.AxiomsDir
			if len(args) == 1 {
				dir = args[0]
			}
			return runValidate(rootOpts, dir, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if dir == "" {
		return outputValidateError(formatter, ErrCodeNotFound, "no axioms directory given (pass one or set --axioms)")
	}

	path, err := resolvePath(opts, dir)
	if err != nil {
		return outputValidateError(formatter, ErrCodeIOUnavailable, err.Error())
	}

	loadResult, loadErrors := LoadAxioms(path, LoadModeCollectAll)
	if loadResult == nil && len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			return outputValidateError(formatter, loadErr.Code, loadErr.Message)
		}
		return outputValidateError(formatter, ErrCodeGeneric, loadErrors[0].Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, dir)

	var problems []compiler.ValidationError
	for _, err := range loadErrors {
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			problems = append(problems, compiler.ValidationError{Field: "load", Message: err.Error(), Code: ErrCodeGeneric})
			continue
		}
		line := 0
		if loadErr.Pos.IsValid() {
			line = loadErr.Pos.Line()
		}
		problems = append(problems, compiler.ValidationError{
			Field:   "load",
			Message: loadErr.Message,
			Code:    loadErr.Code,
			Line:    line,
		})
	}

	specs := loadResult.Axioms
	if !opts.NoDefaultAxioms {
		specs = append(engine.DefaultAxiomSpecs(), specs...)
	}
	for _, a := range loadResult.Axioms {
		formatter.VerboseLog("Validating axiom: %s", a.Name)
	}
	for _, ve := range compiler.Validate(specs) {
		ve.Line = axiomLine(loadResult.CUEValue, ve, loadResult.Axioms)
		problems = append(problems, ve)
	}

	result := ValidationResult{Axioms: len(loadResult.Axioms)}
	for _, p := range problems {
		if p.Code == compiler.ErrParamNotInTemplate {
			result.Warnings = append(result.Warnings, p)
		} else {
			result.Errors = append(result.Errors, p)
		}
	}
	result.Valid = len(result.Errors) == 0

	if !result.Valid {
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

// axiomLine returns the source line of the definition a validation error
// refers to, or 0 when it cannot be located.
func axiomLine(v cue.Value, ve compiler.ValidationError, loaded []ir.AxiomSpec) int {
	if ve.Line > 0 || !v.Exists() {
		return ve.Line
	}
	for _, a := range loaded {
		prefix := "axiom." + a.Name
		if ve.Field != prefix && !hasFieldPrefix(ve.Field, prefix) {
			continue
		}
		pos := v.LookupPath(cue.MakePath(cue.Str("axiom"), cue.Str(a.Name))).Pos()
		if pos.IsValid() {
			return pos.Line()
		}
	}
	return 0
}

func hasFieldPrefix(field, prefix string) bool {
	rest, ok := strings.CutPrefix(field, prefix)
	return ok && (strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "["))
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ All axioms valid (%d loaded)\n", result.Axioms)
	writeValidationList(formatter, "warning", result.Warnings)
	return nil
}

// outputValidateError outputs a single load failure.
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs every validation error.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	exitErr := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    result.Errors[0].Code,
				Message: result.Errors[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return exitErr
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	writeValidationList(formatter, "error", result.Errors)
	writeValidationList(formatter, "warning", result.Warnings)
	return exitErr
}

func writeValidationList(formatter *OutputFormatter, label string, errs []compiler.ValidationError) {
	for _, e := range errs {
		if e.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", e.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s %s: %s: %s\n", label, e.Code, e.Field, e.Message)
	}
}
