package compiler

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
)

// Validation error codes (E100-E199)
const (
	ErrAxiomNameEmpty     = "E101" // axiom name is required
	ErrTemplateEmpty      = "E102" // template is required
	ErrTemplateMalformed  = "E103" // template is not a well-formed formula
	ErrInvalidParam       = "E104" // param is not a single letter
	ErrDuplicateParam     = "E105" // param declared twice
	ErrDuplicateAxiomName = "E106" // two axioms share a name
	ErrParamNotInTemplate = "E107" // param never occurs in the template
)

// ValidationError represents a schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks compiled axiom specs.
// Returns all errors found (does not fail-fast).
//
// A param that does not occur in the template is reported with
// ErrParamNotInTemplate. The engine accepts such params, so callers may
// treat that code as a warning.
func Validate(specs []ir.AxiomSpec) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)

	for i, spec := range specs {
		field := fmt.Sprintf("axiom.%s", spec.Name)
		if spec.Name == "" {
			field = fmt.Sprintf("axiom[%d]", i)
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "axiom name is required",
				Code:    ErrAxiomNameEmpty,
			})
		} else if seen[spec.Name] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicate axiom name: %q", spec.Name),
				Code:    ErrDuplicateAxiomName,
			})
		}
		seen[spec.Name] = true

		errs = append(errs, validateAxiom(field, spec)...)
	}

	return errs
}

func validateAxiom(field string, spec ir.AxiomSpec) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(spec.Template) == "" {
		return append(errs, ValidationError{
			Field:   field + ".template",
			Message: "template is required and must be non-empty",
			Code:    ErrTemplateEmpty,
		})
	}

	root, err := formula.Parse(spec.Template)
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   field + ".template",
			Message: err.Error(),
			Code:    ErrTemplateMalformed,
		})
	}

	var occurring map[string]bool
	if root != nil {
		occurring = make(map[string]bool)
		for _, id := range formula.Identifiers(root) {
			occurring[id] = true
		}
	}

	declared := make(map[string]bool)
	for j, p := range spec.Params {
		pf := fmt.Sprintf("%s.params[%d]", field, j)
		if !isSingleLetter(p) {
			errs = append(errs, ValidationError{
				Field:   pf,
				Message: fmt.Sprintf("param %q must be a single letter", p),
				Code:    ErrInvalidParam,
			})
			continue
		}
		if declared[p] {
			errs = append(errs, ValidationError{
				Field:   pf,
				Message: fmt.Sprintf("param %q declared twice", p),
				Code:    ErrDuplicateParam,
			})
		}
		declared[p] = true

		if occurring != nil && !occurring[p] {
			errs = append(errs, ValidationError{
				Field:   pf,
				Message: fmt.Sprintf("param %q does not occur in the template", p),
				Code:    ErrParamNotInTemplate,
			})
		}
	}

	return errs
}

func isSingleLetter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && unicode.IsLetter(r)
}
