package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mvp-joe/minigrep/internal/config"
	"github.com/mvp-joe/minigrep/internal/search"
)

// Reporter writes search results.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes matches in order, one per line, exactly as they appear in
// the source. With cfg.LineNumbers each line is prefixed with "N:"; with
// cfg.CountOnly only the number of matches is written.
func (r *Reporter) Report(matches search.MatchSet, cfg config.SearchConfig) error {
	w := bufio.NewWriter(r.out)

	if cfg.CountOnly {
		fmt.Fprintln(w, len(matches))
		return w.Flush()
	}

	for _, m := range matches {
		if cfg.LineNumbers {
			fmt.Fprintf(w, "%d:", m.Number)
		}
		w.WriteString(m.Line)
		w.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error and returns it here
	return w.Flush()
}
