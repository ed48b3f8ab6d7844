package ir

// VerdictKind is the outcome of submitting one formula.
type VerdictKind string

const (
	// VerdictAccepted means the formula was derived and stored.
	VerdictAccepted VerdictKind = "accepted"

	// VerdictInvalid means the formula is not well-formed. Never stored.
	VerdictInvalid VerdictKind = "invalid"

	// VerdictUnprovable means the formula is well-formed but no single-step
	// derivation was found. Never stored.
	VerdictUnprovable VerdictKind = "unprovable"
)

// Rule names the justification used to accept a formula.
type Rule string

const (
	// RuleTheorem: instance of a previously accepted formula.
	RuleTheorem Rule = "theorem"

	// RuleAxiom: instance of an axiom schema.
	RuleAxiom Rule = "axiom"

	// RuleModusPonens: from stored A and stored A->F.
	RuleModusPonens Rule = "modus_ponens"

	// RuleModusPonensAxiom: from stored A->F where A is an axiom instance.
	RuleModusPonensAxiom Rule = "modus_ponens_axiom"
)

// Binding records one schema variable and the canonical text of the
// subformula it was bound to.
type Binding struct {
	Var   string `json:"var" yaml:"var"`
	Value string `json:"value" yaml:"value"`
}

// Justification explains why a formula was accepted.
//
// Field use by rule:
//   - RuleTheorem: Source is the matched prior theorem, Bindings its substitution
//   - RuleAxiom: Axiom is the schema name, Bindings its substitution
//   - RuleModusPonens: Source is the implication A->F, Minor is A
//   - RuleModusPonensAxiom: Source is A->F, Axiom names the schema A instantiates
type Justification struct {
	Rule     Rule      `json:"rule"`
	Axiom    string    `json:"axiom,omitempty"`
	Source   string    `json:"source,omitempty"`
	Minor    string    `json:"minor,omitempty"`
	Bindings []Binding `json:"bindings,omitempty"`
}

// Verdict is the result of one submission.
type Verdict struct {
	// Seq orders verdicts within a session. Starts at 1.
	Seq int64 `json:"seq"`

	// Input is the raw submitted text.
	Input string `json:"input"`

	// Formula is the normalized text. Empty only when normalization left
	// nothing.
	Formula string `json:"formula"`

	// Kind is the outcome.
	Kind VerdictKind `json:"kind"`

	// ID is the content-addressed id of the accepted formula (see FormulaID).
	ID string `json:"id,omitempty"`

	// Justification is set for accepted verdicts only.
	Justification *Justification `json:"justification,omitempty"`

	// Reason explains an invalid verdict.
	Reason string `json:"reason,omitempty"`
}

// Accepted reports whether the verdict accepted the formula.
func (v Verdict) Accepted() bool {
	return v.Kind == VerdictAccepted
}

// Report is the exported session log.
type Report struct {
	Session  string    `json:"session"`
	Verdicts []Verdict `json:"verdicts"`
}

// AxiomSpec declares an axiom schema before compilation into the engine.
// When Params is empty every identifier of Template is a schema variable.
type AxiomSpec struct {
	Name     string   `json:"name" yaml:"name"`
	Template string   `json:"template" yaml:"template"`
	Params   []string `json:"params,omitempty" yaml:"params,omitempty"`
}
