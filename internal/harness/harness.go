package harness

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/hilbert/internal/engine"
	"github.com/roach88/hilbert/internal/ir"
	"github.com/roach88/hilbert/internal/logging"
	"github.com/roach88/hilbert/internal/testutil"
)

// Harness executes one scenario against a fresh Verifier.
type Harness struct {
	verifier *engine.Verifier
}

// Option configures a harness run.
type Option func(*runConfig)

type runConfig struct {
	logger *slog.Logger
}

// WithLogger routes verifier debug output to l. Default: discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = l
	}
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Build the axiom set: K, S, E (unless no_default_axioms), then the
//     scenario's own axioms
//  2. Create a Verifier with a deterministic clock and fixed session
//  3. Execute steps, checking each expect clause
//  4. Evaluate assertions against the final verdict log and store
//
// An error is returned only when the scenario cannot be set up (e.g. a bad
// axiom declaration). Step and assertion failures are reported in Result.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	cfg := runConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	axioms, err := buildAxioms(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to build axioms: %w", err)
	}

	h := &Harness{
		verifier: engine.New(axioms,
			engine.WithSequencer(testutil.NewDeterministicClock()),
			engine.WithSessionGenerator(testutil.NewFixedSessionGenerator(scenario.Session)),
			engine.WithLogger(cfg.logger),
		),
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		h.executeStep(i, step, result)
	}

	result.Verdicts = h.verifier.Verdicts()
	for _, e := range h.verifier.Theorems() {
		result.Theorems = append(result.Theorems, e.Formula.Text)
	}
	result.Export = h.verifier.Export()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func buildAxioms(scenario *Scenario) (*engine.AxiomSet, error) {
	var specs []ir.AxiomSpec
	if !scenario.NoDefaultAxioms {
		specs = append(specs, engine.DefaultAxiomSpecs()...)
	}
	specs = append(specs, scenario.Axioms...)
	return engine.NewAxiomSetFromSpecs(specs)
}

func (h *Harness) executeStep(i int, step Step, result *Result) {
	switch {
	case step.Submit != nil:
		h.executeSubmit(i, *step.Submit, step.Expect, result)
	case step.AddAxiom != nil:
		a, err := h.verifier.AddAxiom(step.AddAxiom.Name, step.AddAxiom.Template, step.AddAxiom.Params...)
		event := TraceEvent{Type: EventAddAxiom, Step: i}
		if a != nil {
			event.Axioms = []string{a.Name}
		}
		h.finishAxiomStep(i, event, err, step.Expect, result)
	default:
		removed, err := h.verifier.RemoveAxiom(step.RemoveAxiom)
		event := TraceEvent{Type: EventRemoveAxiom, Step: i}
		for _, a := range removed {
			event.Axioms = append(event.Axioms, a.Name)
		}
		h.finishAxiomStep(i, event, err, step.Expect, result)
	}
}

func (h *Harness) executeSubmit(i int, text string, expect *ExpectClause, result *Result) {
	v := h.verifier.Submit(text)

	event := TraceEvent{
		Type:    EventSubmit,
		Step:    i,
		Seq:     v.Seq,
		Input:   text,
		Verdict: v.Kind,
		Message: v.Message(),
	}
	if v.Justification != nil {
		event.Rule = v.Justification.Rule
	}
	result.addTrace(event)

	if expect == nil {
		return
	}
	for _, mismatch := range compareVerdict(v, expect) {
		result.AddError(fmt.Sprintf("steps[%d] (%s): %s", i, text, mismatch))
	}
}

func (h *Harness) finishAxiomStep(i int, event TraceEvent, err error, expect *ExpectClause, result *Result) {
	if err != nil {
		event.Error = err.Error()
	}
	result.addTrace(event)

	switch {
	case expect == nil && err != nil:
		result.AddError(fmt.Sprintf("steps[%d] (%s): unexpected error: %v", i, event.Type, err))
	case expect != nil && err == nil:
		result.AddError(fmt.Sprintf("steps[%d] (%s): expected error containing %q, got success", i, event.Type, expect.Error))
	case expect != nil && !strings.Contains(err.Error(), expect.Error):
		result.AddError(fmt.Sprintf("steps[%d] (%s): expected error containing %q, got %v", i, event.Type, expect.Error, err))
	}
}

// compareVerdict returns one message per expect field that does not hold.
func compareVerdict(v ir.Verdict, expect *ExpectClause) []string {
	var out []string
	if string(v.Kind) != expect.Kind {
		out = append(out, fmt.Sprintf("expected verdict %s, got %s (%s)", expect.Kind, v.Kind, v.Message()))
		return out
	}

	var j ir.Justification
	if v.Justification != nil {
		j = *v.Justification
	}
	if expect.Rule != "" && string(j.Rule) != expect.Rule {
		out = append(out, fmt.Sprintf("expected rule %s, got %q", expect.Rule, j.Rule))
	}
	if expect.Axiom != "" && j.Axiom != expect.Axiom {
		out = append(out, fmt.Sprintf("expected axiom %s, got %q", expect.Axiom, j.Axiom))
	}
	if expect.Source != "" && j.Source != expect.Source {
		out = append(out, fmt.Sprintf("expected source %s, got %q", expect.Source, j.Source))
	}
	if expect.Minor != "" && j.Minor != expect.Minor {
		out = append(out, fmt.Sprintf("expected minor premise %s, got %q", expect.Minor, j.Minor))
	}
	return out
}
