package engine

import (
	"log/slog"

	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
	"github.com/roach88/hilbert/internal/logging"
	"github.com/roach88/hilbert/internal/store"
)

// Verifier decides submitted formulas against an axiom set and a growing
// proof store.
//
// INVARIANTS:
//   - Verdicts are recorded in submission order, one per Submit
//   - Only accepted formulas enter the proof store
//   - A rejected submission changes neither the store nor the axiom set
//
// Verifier is not safe for concurrent use. Each session owns one Verifier
// and drives it from a single goroutine.
type Verifier struct {
	axioms   *AxiomSet
	store    *store.Store
	clock    Sequencer
	session  string
	verdicts []ir.Verdict
	logger   *slog.Logger
}

// Option configures a Verifier.
type Option func(*verifierConfig)

type verifierConfig struct {
	clock    Sequencer
	sessions SessionGenerator
	logger   *slog.Logger
}

// WithLogger sets the logger used for per-decision debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *verifierConfig) {
		c.logger = l
	}
}

// WithSequencer replaces the logical clock.
// Use testutil.NewDeterministicClock() for reproducible tests.
func WithSequencer(s Sequencer) Option {
	return func(c *verifierConfig) {
		c.clock = s
	}
}

// WithSessionGenerator sets the source of the session token.
// Default: UUIDv7Generator.
func WithSessionGenerator(g SessionGenerator) Option {
	return func(c *verifierConfig) {
		c.sessions = g
	}
}

// New creates a Verifier over the given axiom set. The verifier takes
// ownership of axioms: AddAxiom and RemoveAxiom edit it in place. A nil set
// is treated as empty.
func New(axioms *AxiomSet, opts ...Option) *Verifier {
	cfg := verifierConfig{
		clock:    NewClock(),
		sessions: UUIDv7Generator{},
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if axioms == nil {
		axioms = &AxiomSet{}
	}

	return &Verifier{
		axioms:  axioms,
		store:   store.New(),
		clock:   cfg.clock,
		session: cfg.sessions.Generate(),
		logger:  cfg.logger,
	}
}

// Session returns the session token.
func (v *Verifier) Session() string {
	return v.session
}

// Submit validates, parses and checks one formula and records the verdict.
func (v *Verifier) Submit(text string) ir.Verdict {
	seq := v.clock.Next()
	verdict := ir.Verdict{
		Seq:     seq,
		Input:   text,
		Formula: formula.Normalize(text),
	}

	f, err := formula.New(text)
	if err != nil {
		verdict.Kind = ir.VerdictInvalid
		verdict.Reason = err.Error()
		return v.record(verdict)
	}

	j, ok := v.derive(f)
	if !ok {
		verdict.Kind = ir.VerdictUnprovable
		return v.record(verdict)
	}

	id := ir.FormulaID(f.Canonical())
	if err := v.store.Append(store.Entry{Seq: seq, Formula: f, ID: id, Justification: j}); err != nil {
		// Unreachable with a monotonic sequencer; reject rather than report
		// an acceptance the store does not hold.
		v.logger.Error("proof store rejected entry", "seq", seq, "formula", f.Text, "error", err)
		verdict.Kind = ir.VerdictUnprovable
		return v.record(verdict)
	}

	verdict.Kind = ir.VerdictAccepted
	verdict.ID = id
	verdict.Justification = &j
	return v.record(verdict)
}

func (v *Verifier) record(verdict ir.Verdict) ir.Verdict {
	v.verdicts = append(v.verdicts, verdict)

	attrs := []any{"seq", verdict.Seq, "formula", verdict.Formula, "verdict", verdict.Kind}
	if verdict.Justification != nil {
		attrs = append(attrs, "rule", verdict.Justification.Rule)
	}
	if verdict.Reason != "" {
		attrs = append(attrs, "reason", verdict.Reason)
	}
	v.logger.Debug("formula checked", attrs...)
	return verdict
}

// Verdicts returns every verdict so far in submission order.
func (v *Verifier) Verdicts() []ir.Verdict {
	out := make([]ir.Verdict, len(v.verdicts))
	copy(out, v.verdicts)
	return out
}

// Theorems returns the proof store entries, oldest first.
func (v *Verifier) Theorems() []store.Entry {
	return v.store.Entries()
}

// Store exposes the proof store for read-only use (e.g. WriteText).
func (v *Verifier) Store() *store.Store {
	return v.store
}

// AddAxiom declares a new schema at the end of the axiom set. With no
// params, every identifier of the template is a schema variable.
func (v *Verifier) AddAxiom(name, template string, params ...string) (*AxiomSchema, error) {
	a, err := NewAxiomSchema(name, template, params...)
	if err != nil {
		return nil, err
	}
	if err := v.axioms.Add(a); err != nil {
		return nil, err
	}
	v.logger.Debug("axiom added", "name", a.Name, "template", a.Template, "params", a.Params)
	return a, nil
}

// RemoveAxiom retracts the schemas identified by name, template text or
// template structure. Previously accepted theorems stay in the store.
func (v *Verifier) RemoveAxiom(key string) ([]*AxiomSchema, error) {
	removed, err := v.axioms.Remove(key)
	if err != nil {
		return nil, err
	}
	for _, a := range removed {
		v.logger.Debug("axiom removed", "name", a.Name, "template", a.Template)
	}
	return removed, nil
}

// ListAxioms returns the active schemas in declaration order.
func (v *Verifier) ListAxioms() []*AxiomSchema {
	return v.axioms.List()
}

// Axioms returns the axiom set the verifier searches.
func (v *Verifier) Axioms() *AxiomSet {
	return v.axioms
}
