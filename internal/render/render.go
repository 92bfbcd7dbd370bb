// Package render holds the presentation adapters. A renderer consumes a
// finished report plus the requirement catalog and writes them out; it
// runs strictly after aggregation, so it can never block the producer.
package render

import (
	"io"

	"github.com/readylabs/winready/internal/domain"
)

// Renderer writes a report and the requirement catalog to w.
type Renderer interface {
	Render(w io.Writer, report domain.Report, requirements []domain.RequirementEntry) error
}

// labels maps probe names to the captions shown next to their values.
var labels = map[string]string{
	"platform":  "Operating system",
	"processor": "Processor",
	"memory":    "Memory",
	"storage":   "Free storage",
	"graphics":  "Graphics card",
	"display":   "Display",
	"network":   "Network connected",
}

func label(probe string) string {
	if caption, ok := labels[probe]; ok {
		return caption
	}
	return probe
}
