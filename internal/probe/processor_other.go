//go:build !windows

package probe

import (
	"context"
	"errors"
)

var errNoClockSource = errors.New("no dedicated clock speed source on this platform")

func maxClockSpeedMHz(_ context.Context) (float64, error) {
	return 0, errNoClockSource
}
