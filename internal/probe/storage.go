package probe

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/readylabs/winready/internal/domain"
)

// StorageProbe enumerates ready drives and reports the largest free
// space found on any single one. A host with no ready drives yields an
// unavailable result instead of a zero measurement.
type StorageProbe struct{}

func (StorageProbe) Name() string { return "storage" }

func (p StorageProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("enumerate drives: %w", err)
	}

	drives := make([]driveSpace, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			// Not ready (empty removable drive, unreadable mount).
			continue
		}
		drives = append(drives, driveSpace{mount: part.Mountpoint, free: usage.Free})
	}

	maxFree, ok := maxFreeSpace(drives)
	if !ok {
		return nil, domain.Unavailablef(p.Name(), "no ready drives")
	}

	return domain.Storage{MaxFreeBytes: maxFree, ReadyDrives: len(drives)}, nil
}

type driveSpace struct {
	mount string
	free  uint64
}

// maxFreeSpace returns the largest free-space figure across ready
// drives. ok is false when no drive is ready.
func maxFreeSpace(drives []driveSpace) (maxFree uint64, ok bool) {
	for _, d := range drives {
		if d.free >= maxFree {
			maxFree = d.free
		}
	}
	return maxFree, len(drives) > 0
}
