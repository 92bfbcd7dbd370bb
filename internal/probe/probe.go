// Package probe implements the capability probes: independent, stateless
// queries against one specific characteristic of the host. Each probe
// returns a structured fact value or an error; it never panics out and
// never blocks past its context.
package probe

import (
	"context"

	"github.com/readylabs/winready/internal/domain"
)

// Probe queries one host capability.
type Probe interface {
	// Name identifies the probe and its report entry.
	Name() string

	// Collect performs the query. It returns a structured fact value
	// or an error; *domain.UnavailableError marks an expected
	// could-not-collect condition (no rows, no drives, no tool).
	Collect(ctx context.Context) (domain.FactValue, error)
}
