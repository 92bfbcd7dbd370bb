//go:build windows

package probe

import (
	"context"

	"github.com/yusufpapurcu/wmi"
)

type win32Processor struct {
	MaxClockSpeed uint32
}

// maxClockSpeedMHz queries Win32_Processor for the rated maximum clock
// speed in MHz.
func maxClockSpeedMHz(_ context.Context) (float64, error) {
	var procs []win32Processor
	q := "SELECT MaxClockSpeed FROM Win32_Processor"
	if err := wmi.Query(q, &procs); err != nil {
		return 0, err
	}
	if len(procs) == 0 {
		return 0, nil
	}
	return float64(procs[0].MaxClockSpeed), nil
}
