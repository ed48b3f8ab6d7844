package harness

import (
	"github.com/roach88/hilbert/internal/ir"
)

// Trace event types.
const (
	EventSubmit      = "submit"
	EventAddAxiom    = "add_axiom"
	EventRemoveAxiom = "remove_axiom"
)

// TraceEvent records one executed scenario step.
type TraceEvent struct {
	Type string `json:"type"`
	Step int    `json:"step"`

	// Submit steps.
	Seq     int64          `json:"seq,omitempty"`
	Input   string         `json:"input,omitempty"`
	Verdict ir.VerdictKind `json:"verdict,omitempty"`
	Rule    ir.Rule        `json:"rule,omitempty"`
	Message string         `json:"message,omitempty"`

	// Axiom steps. Axioms lists the names added or removed.
	Axioms []string `json:"axioms,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every expect clause and assertion
	// held.
	Pass bool `json:"pass"`

	// Trace contains one event per executed step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Verdicts is the verifier's verdict log.
	Verdicts []ir.Verdict `json:"verdicts"`

	// Theorems lists the stored formulas, oldest first.
	Theorems []string `json:"theorems"`

	// Export is the verdict log as written by export.
	Export string `json:"export"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Trace:    []TraceEvent{},
		Errors:   []string{},
		Verdicts: []ir.Verdict{},
		Theorems: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func (r *Result) addTrace(e TraceEvent) {
	r.Trace = append(r.Trace, e)
}
