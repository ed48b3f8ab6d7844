package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
)

func mustParse(t *testing.T, s string) formula.Node {
	t.Helper()
	n, err := formula.Parse(s)
	require.NoError(t, err)
	return n
}

func TestMatch_AtomicBindings(t *testing.T) {
	b, ok := Match(mustParse(t, "p->(q->p)"), mustParse(t, "a->(b->a)"), Frees("p", "q"))
	require.True(t, ok)

	assert.Equal(t, []string{"p", "q"}, b.Names())
	assert.Equal(t, []ir.Binding{{Var: "p", Value: "a"}, {Var: "q", Value: "b"}}, b.Records())
}

func TestMatch_BindsWholeSubtree(t *testing.T) {
	b, ok := Match(mustParse(t, "p->(q->p)"), mustParse(t, "(a->b)->(c->(a->b))"), Frees("p", "q"))
	require.True(t, ok)

	p, ok := b.Get("p")
	require.True(t, ok)
	assert.Equal(t, "(a->b)", formula.Render(p), "a schema variable binds the complete subformula")
	assert.Equal(t, "p -> (a->b), q -> c", b.String())
}

func TestMatch_InconsistentSubstitutionFails(t *testing.T) {
	testCases := []struct {
		name   string
		target string
	}{
		{"atom mismatch", "a->(b->c)"},
		{"subtree mismatch", "(a->b)->(c->(b->a))"},
		{"atom vs subtree", "a->(b->(a->a))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := Match(mustParse(t, "p->(q->p)"), mustParse(t, tc.target), Frees("p", "q"))
			assert.False(t, ok)
			assert.Nil(t, b, "failed match must not expose partial bindings")
		})
	}
}

func TestMatch_LiteralLeaves(t *testing.T) {
	pattern := mustParse(t, "p->x")
	frees := Frees("p")

	assert.True(t, IsInstance(pattern, mustParse(t, "(a->b)->x"), frees))
	assert.False(t, IsInstance(pattern, mustParse(t, "a->y"), frees), "non-free leaf must match literally")
}

func TestMatch_ShapeMismatch(t *testing.T) {
	frees := Frees("p", "q")

	assert.False(t, IsInstance(mustParse(t, "p->q"), mustParse(t, "a"), frees),
		"implication never matches a leaf")
	assert.False(t, IsInstance(mustParse(t, "x"), mustParse(t, "a->b"), frees),
		"literal leaf never matches an implication")
}

func TestMatch_NotCommutative(t *testing.T) {
	assert.True(t, IsInstance(mustParse(t, "p"), mustParse(t, "a->b"), Frees("p")))
	assert.False(t, IsInstance(mustParse(t, "a->b"), mustParse(t, "p"), Frees("a", "b")))
}

func TestMatch_EmptyFreesIsEqual(t *testing.T) {
	samples := []string{"p", "q", "p->q", "q->p", "p->(q->p)", "(p->q)->p", "p->p"}

	for _, a := range samples {
		for _, b := range samples {
			na, nb := mustParse(t, a), mustParse(t, b)
			assert.Equal(t, formula.Equal(na, nb), IsInstance(na, nb, nil), "%s vs %s", a, b)
			assert.Equal(t, formula.Equal(na, nb), IsInstance(na, nb, Frees()), "%s vs %s", a, b)
		}
	}
}

func TestMatch_Reflexive(t *testing.T) {
	for _, s := range []string{"p", "p->(q->p)", "(s->(p->q))->((s->p)->(s->q))"} {
		n := mustParse(t, s)
		b, ok := Match(n, n, Frees(formula.Identifiers(n)...))
		require.True(t, ok, s)

		for _, name := range b.Names() {
			bound, _ := b.Get(name)
			assert.Equal(t, name, formula.Render(bound), "self match binds each variable to itself")
		}
	}
}

func TestMatch_SubstituteRoundTrip(t *testing.T) {
	pattern := mustParse(t, "(s->(p->q))->((s->p)->(s->q))")
	target := mustParse(t, "(a->((b->c)->a))->((a->(b->c))->(a->a))")

	b, ok := Match(pattern, target, Frees("s", "p", "q"))
	require.True(t, ok)

	rebuilt := formula.Substitute(pattern, b.Map())
	assert.True(t, formula.Equal(target, rebuilt), "substituting the bindings reproduces the target")
}

func TestBindings_Empty(t *testing.T) {
	b, ok := Match(mustParse(t, "x->y"), mustParse(t, "x->y"), nil)
	require.True(t, ok)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "none", b.String())
}
