package engine

import (
	"errors"
	"fmt"
)

// AxiomError represents a rejected change to the axiom set.
//
// Axiom errors include:
//   - Duplicate name: an axiom with the same name already exists
//   - Not found: remove matched no axiom by name, text or structure
//   - Invalid template: the template is not a well-formed formula
//   - Invalid parameter: a declared parameter is not a single identifier
//
// Rejected changes leave the axiom set untouched.
type AxiomError struct {
	// Code identifies the error category.
	Code AxiomErrorCode

	// Name is the axiom name or removal key involved.
	Name string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, typically a *formula.SyntaxError.
	Err error
}

// AxiomErrorCode categorizes axiom errors.
type AxiomErrorCode string

const (
	// ErrCodeDuplicateAxiom indicates the name is already taken.
	ErrCodeDuplicateAxiom AxiomErrorCode = "DUPLICATE_AXIOM"

	// ErrCodeAxiomNotFound indicates no axiom matched a removal key.
	ErrCodeAxiomNotFound AxiomErrorCode = "AXIOM_NOT_FOUND"

	// ErrCodeInvalidTemplate indicates the template does not parse.
	ErrCodeInvalidTemplate AxiomErrorCode = "INVALID_TEMPLATE"

	// ErrCodeInvalidParam indicates a bad parameter list or empty name.
	ErrCodeInvalidParam AxiomErrorCode = "INVALID_PARAM"
)

// Error implements the error interface.
func (e *AxiomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (axiom=%s): %v", e.Code, e.Message, e.Name, e.Err)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (axiom=%s)", e.Code, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AxiomError) Unwrap() error {
	return e.Err
}

// IsDuplicateAxiom returns true if the error is a duplicate axiom error.
// Uses errors.As to handle wrapped errors.
func IsDuplicateAxiom(err error) bool {
	return axiomErrorCode(err) == ErrCodeDuplicateAxiom
}

// IsAxiomNotFound returns true if the error reports a failed removal.
func IsAxiomNotFound(err error) bool {
	return axiomErrorCode(err) == ErrCodeAxiomNotFound
}

// IsInvalidTemplate returns true if the template failed to parse.
func IsInvalidTemplate(err error) bool {
	return axiomErrorCode(err) == ErrCodeInvalidTemplate
}

func axiomErrorCode(err error) AxiomErrorCode {
	var ae *AxiomError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
