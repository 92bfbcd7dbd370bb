package probe

import (
	"context"
	"fmt"
	"slices"

	gnet "github.com/shirou/gopsutil/v4/net"

	"github.com/readylabs/winready/internal/domain"
)

// NetworkProbe reports whether any non-loopback network interface is
// up. The value is a plain boolean; a host with only a loopback
// interface counts as not connected.
type NetworkProbe struct{}

func (NetworkProbe) Name() string { return "network" }

func (p NetworkProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	ifaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate interfaces: %w", err)
	}
	return domain.Network{Up: anyInterfaceUp(ifaces)}, nil
}

func anyInterfaceUp(ifaces []gnet.InterfaceStat) bool {
	for _, iface := range ifaces {
		if slices.Contains(iface.Flags, "loopback") {
			continue
		}
		if slices.Contains(iface.Flags, "up") {
			return true
		}
	}
	return false
}
