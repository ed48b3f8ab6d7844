package engine

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hilbert/internal/ir"
	"github.com/roach88/hilbert/internal/logging"
	"github.com/roach88/hilbert/internal/testutil"
)

func newTestVerifier(t *testing.T, axioms *AxiomSet) *Verifier {
	t.Helper()
	return New(axioms,
		WithSequencer(testutil.NewDeterministicClock()),
		WithSessionGenerator(testutil.NewFixedSessionGenerator("test-session")),
	)
}

func TestSubmit_AxiomInstance(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	got := v.Submit("p->(q->p)")

	require.True(t, got.Accepted())
	assert.Equal(t, int64(1), got.Seq)
	assert.Equal(t, "p->(q->p)", got.Formula)
	assert.NotEmpty(t, got.ID)
	require.NotNil(t, got.Justification)
	assert.Equal(t, ir.RuleAxiom, got.Justification.Rule)
	assert.Equal(t, "K", got.Justification.Axiom)
	assert.Equal(t, []ir.Binding{{Var: "p", Value: "p"}, {Var: "q", Value: "q"}}, got.Justification.Bindings)
	assert.Equal(t, 1, v.Store().Len())
}

func TestSubmit_EveryDefaultInstanceAccepted(t *testing.T) {
	inputs := []string{
		"a->(b->a)",
		"a->(a->a)",
		"(a->b)->(c->(a->b))",
		"((a->b)->b)->a",
		"(a->(b->c))->((a->b)->(a->c))",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v := newTestVerifier(t, DefaultAxioms())
			got := v.Submit(in)
			require.True(t, got.Accepted(), got.Message())
			assert.Equal(t, ir.RuleAxiom, got.Justification.Rule)
		})
	}
}

func TestSubmit_PriorTheoremWinsOverAxiom(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	require.True(t, v.Submit("p->(q->p)").Accepted())

	got := v.Submit("a->(b->a)")

	require.True(t, got.Accepted())
	assert.Equal(t, ir.RuleTheorem, got.Justification.Rule, "stored formulas are checked before axioms")
	assert.Equal(t, "p->(q->p)", got.Justification.Source)
	assert.Equal(t, "p -> a, q -> b", ir.FormatBindings(got.Justification.Bindings))
}

func TestSubmit_Unprovable(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	require.True(t, v.Submit("p->(q->p)").Accepted())

	for _, in := range []string{"z", "q->p", "p->q"} {
		got := v.Submit(in)
		assert.Equal(t, ir.VerdictUnprovable, got.Kind, in)
		assert.Nil(t, got.Justification, in)
		assert.Empty(t, got.ID, in)
	}
	assert.Equal(t, 1, v.Store().Len(), "unprovable formulas never enter the store")
}

func TestSubmit_Invalid(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	for _, in := range []string{"p->", "(p->q", "", "p + q", "p>q", "->p"} {
		got := v.Submit(in)
		assert.Equal(t, ir.VerdictInvalid, got.Kind, "%q", in)
		assert.NotEmpty(t, got.Reason, "%q", in)
	}
	assert.Equal(t, 0, v.Store().Len())
	assert.Len(t, v.Verdicts(), 6, "invalid submissions are still logged")

	got := v.Submit("p->(q->p)")
	assert.True(t, got.Accepted(), "invalid input leaves the verifier usable")
	assert.Equal(t, int64(7), got.Seq)
}

func TestSubmit_WhitespaceNormalized(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	got := v.Submit("  p ->\t( q -> p )\n")

	require.True(t, got.Accepted())
	assert.Equal(t, "p->(q->p)", got.Formula)
	assert.Equal(t, "p->(q->p)", v.Theorems()[0].Formula.Text)
}

func TestSubmit_Resubmission(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	first := v.Submit("p->(q->p)")
	second := v.Submit("p->(q->p)")

	require.True(t, second.Accepted())
	assert.Equal(t, ir.RuleTheorem, second.Justification.Rule)
	assert.Equal(t, first.ID, second.ID, "same formula, same id")
	assert.Equal(t, 2, v.Store().Len())
	assert.Len(t, v.Store().LookupID(first.ID), 2)
}

// TestSubmit_IdentityProof walks the textbook derivation of p->p from K
// and S.
func TestSubmit_IdentityProof(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	steps := []struct {
		input string
		rule  ir.Rule
		want  string
	}{
		{
			"(p->((p->p)->p))->((p->(p->p))->(p->p))", ir.RuleAxiom,
			"Formula (p->((p->p)->p))->((p->(p->p))->(p->p)) is derivable from axiom S with substitution: s -> p, p -> (p->p), q -> p",
		},
		{
			"p->((p->p)->p)", ir.RuleAxiom,
			"Formula p->((p->p)->p) is derivable from axiom K with substitution: p -> p, q -> (p->p)",
		},
		{
			"(p->(p->p))->(p->p)", ir.RuleModusPonens,
			"Formula (p->(p->p))->(p->p) is derivable from formulas p->((p->p)->p) and (p->((p->p)->p))->((p->(p->p))->(p->p)) by modus ponens",
		},
		{
			"p->(p->p)", ir.RuleAxiom,
			"Formula p->(p->p) is derivable from axiom K with substitution: p -> p, q -> p",
		},
		{
			"p->p", ir.RuleModusPonens,
			"Formula p->p is derivable from formulas p->(p->p) and (p->(p->p))->(p->p) by modus ponens",
		},
		{
			"q->q", ir.RuleTheorem,
			"Formula q->q is derivable from formula p->p with substitution: p -> q",
		},
	}

	for _, step := range steps {
		got := v.Submit(step.input)
		require.True(t, got.Accepted(), got.Message())
		assert.Equal(t, step.rule, got.Justification.Rule, step.input)
		assert.Equal(t, step.want, got.Message())
	}
	assert.Equal(t, len(steps), v.Store().Len())
}

func TestSubmit_ModusPonensNeedsMinorPremise(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	_, err := v.AddAxiom("H", "(x->y)->z", "w")
	require.NoError(t, err)
	require.True(t, v.Submit("(x->y)->z").Accepted())

	got := v.Submit("z")
	assert.Equal(t, ir.VerdictUnprovable, got.Kind, "x->y is neither stored nor an axiom instance")

	_, err = v.AddAxiom("M", "x->y", "w")
	require.NoError(t, err)
	require.True(t, v.Submit("x->y").Accepted())

	got = v.Submit("z")
	require.True(t, got.Accepted(), got.Message())
	assert.Equal(t, ir.RuleModusPonens, got.Justification.Rule)
	assert.Equal(t, "(x->y)->z", got.Justification.Source)
	assert.Equal(t, "x->y", got.Justification.Minor)
}

func TestSubmit_ModusPonensAntecedentIsAxiomInstance(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	require.True(t, v.Submit("(p->((p->p)->p))->((p->(p->p))->(p->p))").Accepted())

	// The antecedent is a K instance but not yet stored.
	got := v.Submit("(p->(p->p))->(p->p)")
	require.True(t, got.Accepted())
	assert.Equal(t, ir.RuleModusPonensAxiom, got.Justification.Rule)
	assert.Equal(t, "K", got.Justification.Axiom)

	require.True(t, v.Submit("p->((p->p)->p)").Accepted())
	got = v.Submit("(p->(p->p))->(p->p)")
	require.True(t, got.Accepted())
	assert.Equal(t, ir.RuleTheorem, got.Justification.Rule, "now stored, so the theorem check wins")
}

func TestSubmit_ModusPonensWithAxiomAntecedent(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	_, err := v.AddAxiom("H", "(a->(b->a))->c", "w")
	require.NoError(t, err)

	major := v.Submit("(a->(b->a))->c")
	require.True(t, major.Accepted())
	assert.Equal(t, "H", major.Justification.Axiom)
	assert.Empty(t, major.Justification.Bindings, "a parameter that never occurs never binds")

	got := v.Submit("c")
	require.True(t, got.Accepted(), got.Message())
	assert.Equal(t, ir.RuleModusPonensAxiom, got.Justification.Rule)
	assert.Equal(t, "(a->(b->a))->c", got.Justification.Source)
	assert.Equal(t, "K", got.Justification.Axiom)
	assert.Equal(t,
		"Formula c is derivable from formula (a->(b->a))->c and an instance of axiom K by modus ponens with substitution: p -> a, q -> b",
		got.Message())
}

func TestAxiomLifecycle(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	_, err := v.AddAxiom("K", "p->p")
	assert.True(t, IsDuplicateAxiom(err))

	_, err = v.AddAxiom("I", "p->")
	assert.True(t, IsInvalidTemplate(err))

	a, err := v.AddAxiom("I", "p->p")
	require.NoError(t, err)
	assert.Equal(t, []string{"p"}, a.Params)
	assert.Equal(t, []string{"K", "S", "E", "I"}, names(v.ListAxioms()))

	got := v.Submit("(a->b)->(a->b)")
	require.True(t, got.Accepted())
	assert.Equal(t, "I", got.Justification.Axiom)

	removed, err := v.RemoveAxiom("I")
	require.NoError(t, err)
	assert.Equal(t, []string{"I"}, names(removed))

	// Retraction does not touch theorems already accepted.
	assert.Equal(t, 1, v.Store().Len())
	resubmitted := v.Submit("(a->b)->(a->b)")
	require.True(t, resubmitted.Accepted())
	assert.Equal(t, ir.RuleTheorem, resubmitted.Justification.Rule)

	_, err = v.RemoveAxiom("I")
	assert.True(t, IsAxiomNotFound(err))
}

func TestRemoveAxiom_AffectsLaterChecks(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	_, err := v.RemoveAxiom("p->(q->p)")
	require.NoError(t, err)

	got := v.Submit("a->(b->a)")
	assert.Equal(t, ir.VerdictUnprovable, got.Kind)
}

func TestNew_NilAxioms(t *testing.T) {
	v := newTestVerifier(t, nil)

	assert.Empty(t, v.ListAxioms())
	assert.Equal(t, ir.VerdictUnprovable, v.Submit("p->(q->p)").Kind)

	_, err := v.AddAxiom("K", "p->(q->p)")
	require.NoError(t, err)
	assert.True(t, v.Submit("p->(q->p)").Accepted())
}

func TestVerifier_Deterministic(t *testing.T) {
	inputs := []string{"p->(q->p)", "z", "p->", "a->(b->a)", "((a->b)->b)->a"}

	run := func() []ir.Verdict {
		v := newTestVerifier(t, DefaultAxioms())
		for _, in := range inputs {
			v.Submit(in)
		}
		return v.Verdicts()
	}

	assert.Equal(t, run(), run())
}

func TestVerifier_SessionAndLogging(t *testing.T) {
	var buf bytes.Buffer
	v := New(DefaultAxioms(),
		WithSessionGenerator(testutil.NewFixedSessionGenerator("s-1")),
		WithLogger(logging.New(&buf, slog.LevelDebug)),
	)

	v.Submit("p->(q->p)")

	assert.Equal(t, "s-1", v.Session())
	assert.Equal(t, "s-1", v.Report().Session)
	assert.Contains(t, buf.String(), "formula checked")
	assert.Contains(t, buf.String(), "rule=axiom")
}

func TestVerifier_DefaultSessionIsUUID(t *testing.T) {
	v := New(DefaultAxioms())
	assert.Len(t, v.Session(), 36)
}
