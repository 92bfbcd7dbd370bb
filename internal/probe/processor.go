package probe

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/readylabs/winready/internal/domain"
)

// ProcessorProbe reads the maximum CPU clock speed, the logical core
// count, and the process bit width. A query that returns no rows or a
// zero clock is reported as unavailable rather than as a zero
// measurement, so the two cases stay distinguishable downstream.
type ProcessorProbe struct{}

func (ProcessorProbe) Name() string { return "processor" }

func (p ProcessorProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cpu info: %w", err)
	}
	if len(infos) == 0 {
		return nil, domain.Unavailablef(p.Name(), "cpu query returned no rows")
	}

	clock := infos[0].Mhz
	// On Windows the instrumentation layer reports the precise maximum
	// clock speed; prefer it over the generic figure when present.
	if mhz, err := maxClockSpeedMHz(ctx); err == nil && mhz > 0 {
		clock = mhz
	}
	if clock <= 0 {
		return nil, domain.Unavailablef(p.Name(), "clock speed not reported")
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}

	return domain.Processor{
		ClockMHz:     clock,
		LogicalCores: cores,
		ArchBits:     strconv.IntSize,
	}, nil
}
