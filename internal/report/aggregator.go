// Package report assembles probe results into a single ordered report.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/readylabs/winready/internal/domain"
	"github.com/readylabs/winready/internal/format"
	"github.com/readylabs/winready/internal/probe"
)

// UnavailableText is the display placeholder for probes that produced
// no value. Every capability is always rendered with something.
const UnavailableText = "unavailable"

// Aggregator invokes every registered probe once per Produce call and
// collects the results in registration order. Probes run concurrently;
// each gets its own timeout and writes to its own slot, so one probe's
// failure or delay cannot corrupt another's result.
type Aggregator struct {
	probes  []probe.Probe
	timeout time.Duration
	logger  *slog.Logger
}

// New creates an Aggregator over the given probes with a per-probe
// timeout.
func New(probes []probe.Probe, timeout time.Duration, logger *slog.Logger) *Aggregator {
	return &Aggregator{probes: probes, timeout: timeout, logger: logger}
}

// Produce runs all probes and returns their results as a Report. The
// report always holds exactly one entry per registered probe, in
// registration order; failed or timed-out probes contribute placeholder
// entries.
func (a *Aggregator) Produce(ctx context.Context) domain.Report {
	entries := make([]domain.Entry, len(a.probes))

	var wg sync.WaitGroup
	for i, p := range a.probes {
		wg.Add(1)
		go func(i int, p probe.Probe) {
			defer wg.Done()
			entries[i] = a.collect(ctx, p)
		}(i, p)
	}
	wg.Wait()

	return domain.Report{
		ID:          uuid.New(),
		CollectedAt: time.Now().UTC(),
		Entries:     entries,
	}
}

type outcome struct {
	value domain.FactValue
	err   error
}

// collect runs one probe under its own timeout. A probe that ignores
// its context is abandoned once the timeout fires; its goroutine can
// finish in the background without touching the report.
func (a *Aggregator) collect(ctx context.Context, p probe.Probe) domain.Entry {
	probeCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	results := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- outcome{err: &domain.ProbePanicError{Probe: p.Name(), Value: r}}
			}
		}()
		value, err := p.Collect(probeCtx)
		results <- outcome{value: value, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			a.logger.Warn("probe unavailable", "probe", p.Name(), "err", res.err)
			return unavailableEntry(p.Name(), res.err)
		}
		entry := domain.Entry{
			Probe:   p.Name(),
			Value:   res.value,
			Display: format.Text(res.value),
		}
		a.logger.Debug("probe collected", "probe", p.Name(), "value", entry.Display)
		return entry
	case <-probeCtx.Done():
		err := fmt.Errorf("timed out after %s", a.timeout)
		a.logger.Warn("probe unavailable", "probe", p.Name(), "err", err)
		return unavailableEntry(p.Name(), err)
	}
}

// unavailableEntry builds the placeholder entry for a failed probe.
func unavailableEntry(name string, err error) domain.Entry {
	reason := err.Error()
	var unavailable *domain.UnavailableError
	if errors.As(err, &unavailable) {
		reason = unavailable.Reason
	}
	return domain.Entry{
		Probe:       name,
		Display:     UnavailableText,
		Unavailable: reason,
	}
}
