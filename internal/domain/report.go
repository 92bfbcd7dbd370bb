package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one probe's contribution to a Report. Exactly one of
// Value/Unavailable is meaningful: a successful probe sets Value and
// Display, an unavailable one leaves Value nil and records the reason.
type Entry struct {
	Probe       string    `json:"probe"`
	Value       FactValue `json:"value,omitempty"`
	Display     string    `json:"display"`
	Unavailable string    `json:"unavailable,omitempty"`
}

// OK reports whether the probe produced a value.
func (e Entry) OK() bool { return e.Value != nil }

// Report is the ordered aggregate of all probe results for one
// collection pass. Entries appear in probe registration order and the
// report always contains exactly one entry per registered probe.
type Report struct {
	ID          uuid.UUID `json:"id"`
	CollectedAt time.Time `json:"collected_at"`
	Entries     []Entry   `json:"entries"`
}

// RequirementEntry is a static minimum-requirement description. It is
// reference text bundled with the binary, never computed or compared
// against live measurements.
type RequirementEntry struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}
