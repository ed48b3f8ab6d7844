package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/hilbert/internal/ir"
)

// Import submits each line in order and returns the verdicts. Blank lines
// are skipped; malformed lines produce invalid verdicts and processing
// continues with the next line.
func (v *Verifier) Import(lines []string) []ir.Verdict {
	var out []ir.Verdict
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, v.Submit(strings.TrimRight(line, "\r\n")))
	}
	return out
}

// ImportReader reads r line by line and submits each line as Import does.
// Verdicts for lines read before a read error are kept.
func (v *Verifier) ImportReader(r io.Reader) ([]ir.Verdict, error) {
	var out []ir.Verdict
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, v.Import([]string{sc.Text()})...)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("import: %w", err)
	}
	return out, nil
}

// Export returns the verdict log: one report line per verdict, submission
// order, each terminated by a newline.
func (v *Verifier) Export() string {
	var sb strings.Builder
	for _, verdict := range v.verdicts {
		sb.WriteString(verdict.Message())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteExport writes the verdict log to w.
func (v *Verifier) WriteExport(w io.Writer) error {
	_, err := io.WriteString(w, v.Export())
	return err
}

// Report returns the verdict log with the session token, for JSON export.
func (v *Verifier) Report() ir.Report {
	return ir.Report{
		Session:  v.session,
		Verdicts: v.Verdicts(),
	}
}
