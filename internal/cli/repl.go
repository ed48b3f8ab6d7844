package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/roach88/hilbert/internal/engine"
)

const replHelp = `Enter a formula to check it, or one of:
  :axioms                   list active axioms as "template : name"
  :theorems                 list accepted formulas
  :add <name> <template>    declare an axiom; every identifier is a parameter
  :remove <name|template>   retract axioms by name, text or structure
  :import <file>            check every line of a file
  :export <file>            write the verdict log to a file
  :help                     show this help
  :quit, exit               leave`

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check formulas interactively",
		Long: `Read formulas from standard input, one per line, and check each as it
arrives. Lines starting with ':' are commands; see :help.

A prompt is shown only when standard input is a terminal, so the same
command can replay a piped session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(rootOpts, cmd)
		},
	}

	return cmd
}

func runRepl(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	if opts.Format == "json" {
		_ = formatter.Error(ErrCodeGeneric, "repl supports text output only", nil)
		return NewExitError(ExitCommandError, "repl supports text output only")
	}

	v, err := newVerifier(opts, cmd)
	if err != nil {
		return axiomLoadError(formatter, err)
	}

	r := &repl{
		opts:        opts,
		verifier:    v,
		out:         formatter,
		interactive: isTerminal(cmd.InOrStdin()),
	}
	return r.run(cmd.InOrStdin())
}

// isTerminal reports whether r is a terminal file.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type repl struct {
	opts        *RootOptions
	verifier    *engine.Verifier
	out         *OutputFormatter
	interactive bool
}

func (r *repl) run(in io.Reader) error {
	w := r.out.Writer
	if r.interactive {
		fmt.Fprintln(w, "hilbert: enter formulas, :help for commands, exit to quit")
	}

	sc := bufio.NewScanner(in)
	for {
		if r.interactive {
			fmt.Fprint(w, "> ")
		}
		if !sc.Scan() {
			break
		}

		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == "exit" || line == ":quit":
			return nil
		case strings.HasPrefix(line, ":"):
			r.command(line)
		default:
			r.out.Verdict(r.verifier.Submit(line))
		}
	}

	if err := sc.Err(); err != nil {
		return WrapExitError(ExitCommandError, "reading input", err)
	}
	return nil
}

// command runs one meta command. Failures are reported and the session
// continues.
func (r *repl) command(line string) {
	w := r.out.Writer
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case ":help":
		fmt.Fprintln(w, replHelp)

	case ":axioms":
		for _, a := range r.verifier.ListAxioms() {
			fmt.Fprintf(w, "%s : %s\n", a.Template, a.Name)
		}

	case ":theorems":
		if err := r.verifier.Store().WriteText(w); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

	case ":add":
		axiom, template, ok := strings.Cut(rest, " ")
		if !ok || strings.TrimSpace(template) == "" {
			fmt.Fprintln(w, "Usage: :add <name> <template>")
			return
		}
		a, err := r.verifier.AddAxiom(axiom, template)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "Added axiom %s : %s\n", a.Template, a.Name)

	case ":remove":
		if rest == "" {
			fmt.Fprintln(w, "Usage: :remove <name|template>")
			return
		}
		removed, err := r.verifier.RemoveAxiom(rest)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
		for _, a := range removed {
			fmt.Fprintf(w, "Removed axiom %s : %s\n", a.Template, a.Name)
		}

	case ":import":
		if rest == "" {
			fmt.Fprintln(w, "Usage: :import <file>")
			return
		}
		before := len(r.verifier.Verdicts())
		err := importFile(r.opts, r.verifier, rest)
		for _, v := range r.verifier.Verdicts()[before:] {
			r.out.Verdict(v)
		}
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

	case ":export":
		if rest == "" {
			fmt.Fprintln(w, "Usage: :export <file>")
			return
		}
		if err := exportFile(r.opts, r.verifier, rest); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "Exported %d verdict(s) to %s\n", len(r.verifier.Verdicts()), rest)

	default:
		fmt.Fprintf(w, "Unknown command %q (try :help)\n", name)
	}
}
