package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Leaf(t *testing.T) {
	n, err := Parse("p")
	require.NoError(t, err)

	leaf, ok := n.(*Leaf)
	require.True(t, ok, "single identifier should parse to a leaf")
	assert.Equal(t, "p", leaf.Name)
}

func TestParse_RightAssociative(t *testing.T) {
	n, err := Parse("p->q->r")
	require.NoError(t, err)

	want := Imp(NewLeaf("p"), Imp(NewLeaf("q"), NewLeaf("r")))
	assert.True(t, Equal(want, n), "got %s", Render(n))
}

func TestParse_ParenthesizedLeft(t *testing.T) {
	n, err := Parse("(p->q)->r")
	require.NoError(t, err)

	want := Imp(Imp(NewLeaf("p"), NewLeaf("q")), NewLeaf("r"))
	assert.True(t, Equal(want, n), "got %s", Render(n))
}

func TestParse_AxiomS(t *testing.T) {
	n, err := Parse("(s->(p->q))->((s->p)->(s->q))")
	require.NoError(t, err)

	s, p, q := NewLeaf("s"), NewLeaf("p"), NewLeaf("q")
	want := Imp(
		Imp(s, Imp(p, q)),
		Imp(Imp(s, p), Imp(s, q)),
	)
	assert.True(t, Equal(want, n))
}

func TestParse_StripsWhitespace(t *testing.T) {
	a, err := Parse(" p -> ( q\t-> p ) ")
	require.NoError(t, err)

	b := MustParse("p->(q->p)")
	assert.True(t, Equal(a, b))
}

func TestParse_RedundantParentheses(t *testing.T) {
	a, err := Parse("((p))->(((q)))")
	require.NoError(t, err)
	assert.True(t, Equal(MustParse("p->q"), a))
}

func TestParse_UnicodeIdentifiers(t *testing.T) {
	n, err := Parse("α->(β->α)")
	require.NoError(t, err)
	assert.Equal(t, []string{"α", "β"}, Identifiers(n))
}

func TestParse_NFCNormalization(t *testing.T) {
	// "e" + combining acute accent composes to a single identifier under NFC.
	decomposed := "e\u0301->e\u0301"
	composed := "\u00e9->\u00e9"

	a, err := Parse(decomposed)
	require.NoError(t, err)
	b, err := Parse(composed)
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.Equal(t, []string{"\u00e9"}, Identifiers(a))
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		code  SyntaxErrorCode
	}{
		{"empty", "", ErrCodeEmpty},
		{"whitespace only", "   ", ErrCodeEmpty},
		{"dangling arrow", "p->", ErrCodeGrammar},
		{"leading arrow", "->p", ErrCodeGrammar},
		{"unclosed paren", "(p->q", ErrCodeUnbalanced},
		{"extra close paren", "p->q)", ErrCodeUnbalanced},
		{"close before open", ")p(", ErrCodeUnbalanced},
		{"empty parens", "()", ErrCodeGrammar},
		{"juxtaposed atoms", "pq", ErrCodeGrammar},
		{"juxtaposed groups", "(p)(q)", ErrCodeGrammar},
		{"digit", "p->1", ErrCodeInvalidChar},
		{"other connective", "p&q", ErrCodeInvalidChar},
		{"lone dash", "p-q", ErrCodeInvalidChar},
		{"lone gt", "p>q", ErrCodeInvalidChar},
		{"double arrow", "p->->q", ErrCodeGrammar},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, n, "malformed input must not produce a tree")
			assert.True(t, IsSyntaxError(err))
			assert.Equal(t, tc.code, SyntaxCode(err), "error: %v", err)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("p->q)")
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 4, se.Pos)
	assert.Contains(t, se.Error(), "UNBALANCED at 4")
}

func TestIsWellFormed(t *testing.T) {
	valid := []string{
		"p",
		"p->q",
		"p->(q->p)",
		"((p->f)->f)->p",
		"(s->(p->q))->((s->p)->(s->q))",
		"(p)",
		"P->p",
	}
	for _, s := range valid {
		assert.True(t, IsWellFormed(s), "expected %q to be well-formed", s)
	}

	invalid := []string{"", "p->", "(p->q", "p q r", "p=>q", ")("}
	for _, s := range invalid {
		assert.False(t, IsWellFormed(s), "expected %q to be malformed", s)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("p->") })
}

func TestNew_KeepsNormalizedText(t *testing.T) {
	f, err := New(" p -> q ")
	require.NoError(t, err)
	assert.Equal(t, "p->q", f.Text)
	assert.Equal(t, "(p->q)", f.Canonical())
	assert.Equal(t, "p->q", f.String())
}

func TestNew_Invalid(t *testing.T) {
	f, err := New("(p")
	assert.Nil(t, f)
	assert.True(t, IsSyntaxError(err))
}
