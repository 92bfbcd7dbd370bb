package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/readylabs/winready/internal/domain"
)

// Table renders the report as aligned two-column terminal output: the
// live facts first, the minimum-requirement reference text below.
type Table struct{}

func (Table) Render(w io.Writer, report domain.Report, requirements []domain.RequirementEntry) error {
	width := 0
	for _, entry := range report.Entries {
		width = max(width, runewidth.StringWidth(label(entry.Probe)))
	}
	for _, req := range requirements {
		width = max(width, runewidth.StringWidth(req.Category))
	}

	if _, err := fmt.Fprintln(w, "This PC"); err != nil {
		return err
	}
	for _, entry := range report.Entries {
		value := entry.Display
		if !entry.OK() {
			value += " (" + entry.Unavailable + ")"
		}
		if _, err := fmt.Fprintf(w, "  %s  %s\n", pad(label(entry.Probe), width), value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nWindows 11 minimum requirements"); err != nil {
		return err
	}
	for _, req := range requirements {
		if _, err := fmt.Fprintf(w, "  %s  %s\n", pad(req.Category, width), req.Description); err != nil {
			return err
		}
	}
	return nil
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
