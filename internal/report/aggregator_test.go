package report

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readylabs/winready/internal/domain"
	"github.com/readylabs/winready/internal/probe"
)

// fakeProbe is a scriptable probe for aggregator tests.
type fakeProbe struct {
	name    string
	value   domain.FactValue
	err     error
	delay   time.Duration
	panics  bool
	useCtx  bool
}

func (f fakeProbe) Name() string { return f.name }

func (f fakeProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	if f.panics {
		panic("probe exploded")
	}
	if f.delay > 0 {
		if f.useCtx {
			select {
			case <-time.After(f.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		} else {
			time.Sleep(f.delay)
		}
	}
	return f.value, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProduceOneEntryPerProbe(t *testing.T) {
	probes := []probe.Probe{
		fakeProbe{name: "memory", value: domain.Memory{TotalKB: 16777216}},
		fakeProbe{name: "broken", err: domain.Unavailablef("broken", "no rows")},
		fakeProbe{name: "panicky", panics: true},
		fakeProbe{name: "display", value: domain.Display{Width: 1920, Height: 1080}},
	}

	rep := New(probes, time.Second, testLogger()).Produce(context.Background())

	require.Len(t, rep.Entries, len(probes))
	for i, p := range probes {
		assert.Equal(t, p.Name(), rep.Entries[i].Probe, "entry %d out of order", i)
	}
	assert.NotZero(t, rep.ID)
	assert.False(t, rep.CollectedAt.IsZero())
}

func TestProduceSuccessEntry(t *testing.T) {
	probes := []probe.Probe{fakeProbe{name: "memory", value: domain.Memory{TotalKB: 16777216}}}

	rep := New(probes, time.Second, testLogger()).Produce(context.Background())

	require.Len(t, rep.Entries, 1)
	entry := rep.Entries[0]
	assert.True(t, entry.OK())
	assert.Equal(t, "16GB", entry.Display)
	assert.Empty(t, entry.Unavailable)
}

func TestProduceUnavailableEntry(t *testing.T) {
	probes := []probe.Probe{
		fakeProbe{name: "storage", err: domain.Unavailablef("storage", "no ready drives")},
	}

	rep := New(probes, time.Second, testLogger()).Produce(context.Background())

	require.Len(t, rep.Entries, 1)
	entry := rep.Entries[0]
	assert.False(t, entry.OK())
	assert.Equal(t, UnavailableText, entry.Display)
	assert.Equal(t, "no ready drives", entry.Unavailable)
}

func TestProducePanicIsolated(t *testing.T) {
	probes := []probe.Probe{
		fakeProbe{name: "panicky", panics: true},
		fakeProbe{name: "network", value: domain.Network{Up: true}},
	}

	rep := New(probes, time.Second, testLogger()).Produce(context.Background())

	require.Len(t, rep.Entries, 2)
	assert.False(t, rep.Entries[0].OK())
	assert.Contains(t, rep.Entries[0].Unavailable, "panicked")
	assert.True(t, rep.Entries[1].OK())
}

func TestProduceTimeoutIsolated(t *testing.T) {
	probes := []probe.Probe{
		// Ignores its context entirely; must still be cut off.
		fakeProbe{name: "stuck", delay: 5 * time.Second, value: domain.Network{Up: true}},
		fakeProbe{name: "memory", value: domain.Memory{TotalKB: 16777216}},
	}

	start := time.Now()
	rep := New(probes, 50*time.Millisecond, testLogger()).Produce(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, rep.Entries, 2)
	assert.False(t, rep.Entries[0].OK())
	assert.Contains(t, rep.Entries[0].Unavailable, "timed out")
	assert.True(t, rep.Entries[1].OK())
}

func TestProduceContextAwareProbeCancelled(t *testing.T) {
	probes := []probe.Probe{
		fakeProbe{name: "slow", delay: 5 * time.Second, useCtx: true},
	}

	rep := New(probes, 50*time.Millisecond, testLogger()).Produce(context.Background())

	require.Len(t, rep.Entries, 1)
	assert.False(t, rep.Entries[0].OK())
}

func TestProduceIdempotentDisplayText(t *testing.T) {
	probes := []probe.Probe{
		fakeProbe{name: "processor", value: domain.Processor{ClockMHz: 3400, LogicalCores: 8, ArchBits: 64}},
		fakeProbe{name: "memory", value: domain.Memory{TotalKB: 16777216}},
		fakeProbe{name: "display", value: domain.Display{Width: 1920, Height: 1080}},
		fakeProbe{name: "graphics", value: domain.Graphics{DirectXVersion: 12}},
	}
	agg := New(probes, time.Second, testLogger())

	first := agg.Produce(context.Background())
	second := agg.Produce(context.Background())

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, second.Entries, len(first.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].Display, second.Entries[i].Display)
	}
}

func TestProduceNoProbes(t *testing.T) {
	rep := New(nil, time.Second, testLogger()).Produce(context.Background())
	assert.Empty(t, rep.Entries)
}
