package render

import (
	"encoding/json"
	"io"

	"github.com/readylabs/winready/internal/domain"
)

// JSON renders the report and catalog as one indented JSON document.
type JSON struct{}

type jsonDocument struct {
	Report       domain.Report             `json:"report"`
	Requirements []domain.RequirementEntry `json:"requirements"`
}

func (JSON) Render(w io.Writer, report domain.Report, requirements []domain.RequirementEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{Report: report, Requirements: requirements})
}
