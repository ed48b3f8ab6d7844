package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepl_ChecksEachLine(t *testing.T) {
	in := "p->(q->p)\n\n  a->(b->a)  \np->q\n"
	out, _, err := runCLI(t, in, "repl")
	require.NoError(t, err)
	assert.Equal(t,
		"✓ Formula p->(q->p) is derivable from axiom K with substitution: p -> p, q -> q\n"+
			"✓ Formula a->(b->a) is derivable from formula p->(q->p) with substitution: p -> a, q -> b\n"+
			"? Formula p->q is not derivable\n",
		out)
}

func TestRepl_NoPromptWhenPiped(t *testing.T) {
	out, _, err := runCLI(t, "p->(q->p)\n", "repl")
	require.NoError(t, err)
	assert.NotContains(t, out, "> ")
	assert.NotContains(t, out, ":help for commands")
}

func TestRepl_ExitStopsReading(t *testing.T) {
	for _, quit := range []string{"exit", ":quit"} {
		t.Run(quit, func(t *testing.T) {
			out, _, err := runCLI(t, "p->(q->p)\n"+quit+"\np->q\n", "repl")
			require.NoError(t, err)
			assert.NotContains(t, out, "p->q")
		})
	}
}

func TestRepl_ListAxioms(t *testing.T) {
	out, _, err := runCLI(t, ":axioms\n", "repl")
	require.NoError(t, err)
	assert.Equal(t,
		"p->(q->p) : K\n"+
			"(s->(p->q))->((s->p)->(s->q)) : S\n"+
			"((p->f)->f)->p : E\n",
		out)
}

func TestRepl_AddAndRemoveAxioms(t *testing.T) {
	in := strings.Join([]string{
		":add I p -> p",
		"a->a",
		":remove K",
		"x->(y->x)",
		":axioms",
	}, "\n")

	out, _, err := runCLI(t, in, "repl")
	require.NoError(t, err)
	assert.Equal(t,
		"Added axiom p->p : I\n"+
			"✓ Formula a->a is derivable from axiom I with substitution: p -> a\n"+
			"Removed axiom p->(q->p) : K\n"+
			"? Formula x->(y->x) is not derivable\n"+
			"(s->(p->q))->((s->p)->(s->q)) : S\n"+
			"((p->f)->f)->p : E\n"+
			"p->p : I\n",
		out)
}

func TestRepl_AxiomCommandErrors(t *testing.T) {
	in := strings.Join([]string{
		":add K p->p",
		":add Bad p->",
		":add",
		":remove Z",
		":remove",
	}, "\n")

	out, _, err := runCLI(t, in, "repl")
	require.NoError(t, err, "command failures do not end the session")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "DUPLICATE_AXIOM")
	assert.Contains(t, lines[1], "INVALID_TEMPLATE")
	assert.Equal(t, "Usage: :add <name> <template>", lines[2])
	assert.Contains(t, lines[3], "AXIOM_NOT_FOUND")
	assert.Equal(t, "Usage: :remove <name|template>", lines[4])
}

func TestRepl_Theorems(t *testing.T) {
	out, _, err := runCLI(t, "p->(q->p)\np->q\n:theorems\n", "repl")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "? Formula p->q is not derivable\np->(q->p)\n"))
}

func TestRepl_ImportAndExport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "proofs.txt", "p->(q->p)\na->(b->a)\n")

	in := ":import proofs.txt\np->q\n:export log.txt\n"
	out, _, err := runCLI(t, in, "--workdir", dir, "repl")
	require.NoError(t, err)
	assert.Equal(t,
		"✓ Formula p->(q->p) is derivable from axiom K with substitution: p -> p, q -> q\n"+
			"✓ Formula a->(b->a) is derivable from formula p->(q->p) with substitution: p -> a, q -> b\n"+
			"? Formula p->q is not derivable\n"+
			"Exported 3 verdict(s) to log.txt\n",
		out)

	data, err := os.ReadFile(filepath.Join(dir, "log.txt"))
	require.NoError(t, err)
	assert.Equal(t,
		"Formula p->(q->p) is derivable from axiom K with substitution: p -> p, q -> q\n"+
			"Formula a->(b->a) is derivable from formula p->(q->p) with substitution: p -> a, q -> b\n"+
			"Formula p->q is not derivable\n",
		string(data))
}

func TestRepl_ImportMissingFileKeepsSession(t *testing.T) {
	out, _, err := runCLI(t, ":import missing.txt\np->(q->p)\n", "--workdir", t.TempDir(), "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: cannot read missing.txt")
	assert.Contains(t, out, "✓ Formula p->(q->p)")
}

func TestRepl_UnknownCommand(t *testing.T) {
	out, _, err := runCLI(t, ":frobnicate\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, "Unknown command \":frobnicate\" (try :help)\n", out)
}

func TestRepl_Help(t *testing.T) {
	out, _, err := runCLI(t, ":help\n", "repl")
	require.NoError(t, err)
	for _, cmd := range []string{":axioms", ":add", ":remove", ":import", ":export", ":quit"} {
		assert.Contains(t, out, cmd)
	}
}

func TestRepl_RejectsJSON(t *testing.T) {
	_, _, err := runCLI(t, "p->p\n", "--format", "json", "repl")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
