package domain

import "fmt"

// UnavailableError marks a probe result that could not be collected on
// this host. It is an expected condition, not a defect: the aggregator
// turns it into a placeholder entry instead of aborting the report.
type UnavailableError struct {
	Probe  string
	Reason string
}

func (e *UnavailableError) Error() string {
	return e.Probe + " unavailable: " + e.Reason
}

// Unavailablef builds an UnavailableError with a formatted reason.
func Unavailablef(probe, format string, args ...any) *UnavailableError {
	return &UnavailableError{Probe: probe, Reason: fmt.Sprintf(format, args...)}
}

// ProbePanicError is produced when a probe panics; the aggregator
// recovers it into an unavailable entry.
type ProbePanicError struct {
	Probe string
	Value any
}

func (e *ProbePanicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.Probe, e.Value)
}
