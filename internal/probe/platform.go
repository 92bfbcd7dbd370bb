package probe

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/readylabs/winready/internal/domain"
)

// PlatformProbe reads the operating system description and machine
// architecture. It has no failure path: when the host query fails it
// falls back to runtime introspection.
type PlatformProbe struct{}

func (PlatformProbe) Name() string { return "platform" }

func (PlatformProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info.Platform == "" {
		return domain.Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}, nil
	}

	desc := info.Platform
	if info.PlatformVersion != "" {
		desc += " " + info.PlatformVersion
	}

	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}

	return domain.Platform{OS: strings.TrimSpace(desc), Arch: arch}, nil
}
