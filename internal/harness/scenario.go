package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/hilbert/internal/ir"
)

// Scenario defines a scripted proof session.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Axioms are declared after the defaults, in order.
	Axioms []ir.AxiomSpec `yaml:"axioms,omitempty"`

	// NoDefaultAxioms starts from an empty axiom set instead of K, S and E.
	NoDefaultAxioms bool `yaml:"no_default_axioms,omitempty"`

	// Session is an optional fixed session token.
	// If empty, defaults to "test-session-default".
	Session string `yaml:"session,omitempty"`

	// Steps run in order. Each step does exactly one thing.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final verdict log and proof store.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one scenario action: a submission or an axiom change.
type Step struct {
	// Submit is the formula text to check. A pointer so that an explicit
	// empty string can be submitted.
	Submit *string `yaml:"submit,omitempty"`

	// AddAxiom declares a new schema.
	AddAxiom *ir.AxiomSpec `yaml:"add_axiom,omitempty"`

	// RemoveAxiom retracts schemas by name, template text or structure.
	RemoveAxiom string `yaml:"remove_axiom,omitempty"`

	// Expect checks the outcome of the step. If nil, submissions may have
	// any verdict and axiom changes must succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
//
// For submissions Kind is required; Rule, Axiom, Source and Minor are
// compared only when set. For axiom changes only Error applies: the change
// must fail with an error containing it.
type ExpectClause struct {
	Kind   string `yaml:"kind,omitempty"`
	Rule   string `yaml:"rule,omitempty"`
	Axiom  string `yaml:"axiom,omitempty"`
	Source string `yaml:"source,omitempty"`
	Minor  string `yaml:"minor,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// Assertion validates the final state of the session.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Count is the expected number (theorem_count, verdict_count).
	Count *int `yaml:"count,omitempty"`

	// Kind filters verdicts (verdict_count).
	Kind string `yaml:"kind,omitempty"`

	// Formula is looked up structurally in the store (store_contains).
	Formula string `yaml:"formula,omitempty"`

	// Line is a substring of an export line (export_contains).
	Line string `yaml:"line,omitempty"`
}

// Assertion type constants.
const (
	AssertTheoremCount   = "theorem_count"
	AssertStoreContains  = "store_contains"
	AssertVerdictCount   = "verdict_count"
	AssertExportContains = "export_contains"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, a := range s.Axioms {
		if a.Name == "" || a.Template == "" {
			return fmt.Errorf("axioms[%d]: name and template are required", i)
		}
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(index int, s *Step) error {
	actions := 0
	if s.Submit != nil {
		actions++
	}
	if s.AddAxiom != nil {
		actions++
	}
	if s.RemoveAxiom != "" {
		actions++
	}
	if actions != 1 {
		return fmt.Errorf("steps[%d]: exactly one of submit, add_axiom, remove_axiom is required", index)
	}

	if s.AddAxiom != nil && (s.AddAxiom.Name == "" || s.AddAxiom.Template == "") {
		return fmt.Errorf("steps[%d].add_axiom: name and template are required", index)
	}

	if s.Expect == nil {
		return nil
	}
	if s.Submit != nil {
		if s.Expect.Error != "" {
			return fmt.Errorf("steps[%d].expect: error applies to axiom steps only", index)
		}
		switch ir.VerdictKind(s.Expect.Kind) {
		case ir.VerdictAccepted, ir.VerdictInvalid, ir.VerdictUnprovable:
		default:
			return fmt.Errorf("steps[%d].expect: kind must be accepted, invalid or unprovable, got %q", index, s.Expect.Kind)
		}
		return nil
	}
	if s.Expect.Error == "" {
		return fmt.Errorf("steps[%d].expect: error is required for axiom steps", index)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTheoremCount:
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for theorem_count", index)
		}
	case AssertVerdictCount:
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for verdict_count", index)
		}
		if a.Kind == "" {
			return fmt.Errorf("assertions[%d]: kind is required for verdict_count", index)
		}
	case AssertStoreContains:
		if a.Formula == "" {
			return fmt.Errorf("assertions[%d]: formula is required for store_contains", index)
		}
	case AssertExportContains:
		if a.Line == "" {
			return fmt.Errorf("assertions[%d]: line is required for export_contains", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
