package network

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	gopsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/jailop/syssnapshot/pkg/types"
)

// interfaces allows tests to stub gopsutil.
var interfaces = gopsnet.InterfacesWithContext

// Collector lists network interfaces and their bound addresses.
type Collector struct{}

// NewCollector returns a network interface collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot returns every interface in system order with bare IP addresses.
func (c *Collector) Snapshot(ctx context.Context) ([]types.NetInterface, error) {
	list, err := interfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}

	out := make([]types.NetInterface, 0, len(list))
	for _, iface := range list {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, addr := range iface.Addrs {
			addrs = append(addrs, bareIP(addr.Addr))
		}
		out = append(out, types.NetInterface{Name: iface.Name, Addresses: addrs})
	}
	return out, nil
}

// bareIP drops the prefix length from a CIDR string.
func bareIP(cidr string) string {
	if prefix, err := netip.ParsePrefix(cidr); err == nil {
		return prefix.Addr().String()
	}
	ip, _, _ := strings.Cut(cidr, "/")
	return ip
}
