package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hilbert/internal/ir"
)

func TestImport(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	verdicts := v.Import([]string{"p->(q->p)", "", "   ", "(p->q", "z\r"})

	require.Len(t, verdicts, 3, "blank lines are skipped")
	assert.Equal(t, ir.VerdictAccepted, verdicts[0].Kind)
	assert.Equal(t, ir.VerdictInvalid, verdicts[1].Kind)
	assert.Equal(t, ir.VerdictUnprovable, verdicts[2].Kind)
	assert.Equal(t, "z", verdicts[2].Formula)
}

func TestImportReader_Export(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	in := "p->(q->p)\n\n(p->q\nz\na->(b->a)\n"

	verdicts, err := v.ImportReader(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, verdicts, 4)

	want := strings.Join([]string{
		"Formula p->(q->p) is derivable from axiom K with substitution: p -> p, q -> q",
		"Formula (p->q is invalid: UNBALANCED: 1 unclosed '('",
		"Formula z is not derivable",
		"Formula a->(b->a) is derivable from formula p->(q->p) with substitution: p -> a, q -> b",
	}, "\n") + "\n"
	assert.Equal(t, want, v.Export())

	var buf bytes.Buffer
	require.NoError(t, v.WriteExport(&buf))
	assert.Equal(t, want, buf.String())
}

func TestExport_Empty(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	assert.Equal(t, "", v.Export())
}

type failingReader struct{ data string }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, errors.New("disk gone")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestImportReader_KeepsVerdictsBeforeError(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())

	verdicts, err := v.ImportReader(&failingReader{data: "p->(q->p)\n"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Len(t, verdicts, 1)
	assert.Equal(t, 1, v.Store().Len())
}

func TestReport(t *testing.T) {
	v := newTestVerifier(t, DefaultAxioms())
	v.Import([]string{"p->(q->p)", "z"})

	r := v.Report()
	assert.Equal(t, "test-session", r.Session)
	require.Len(t, r.Verdicts, 2)
	assert.Equal(t, int64(2), r.Verdicts[1].Seq)

	// Report returns a copy.
	r.Verdicts[0].Formula = "changed"
	assert.Equal(t, "p->(q->p)", v.Verdicts()[0].Formula)
}
