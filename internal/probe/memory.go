package probe

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/readylabs/winready/internal/domain"
)

// MemoryProbe reads total visible physical memory. The OS reports
// bytes; the fact value carries kilobytes, matching the unit of the
// underlying instrumentation counter.
type MemoryProbe struct{}

func (MemoryProbe) Name() string { return "memory" }

func (p MemoryProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query memory: %w", err)
	}
	if vm.Total == 0 {
		return nil, domain.Unavailablef(p.Name(), "memory query returned no rows")
	}
	return domain.Memory{TotalKB: vm.Total / 1024}, nil
}
