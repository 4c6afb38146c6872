package routing

import (
	"github.com/Jibboo41/NetworkEmulator/ipaddr"
	"github.com/Jibboo41/NetworkEmulator/topology"
)

// connectedEntries returns one Connected RoutingEntry per configured
// interface on d, in declared order, at metric 0. Every protocol pass
// seeds its router's table from these before layering on its own
// routes; RIPv2 raises their metric to 1 (see ripConnectedEntries).
func connectedEntries(d *topology.Device) []RoutingEntry {
	var out []RoutingEntry
	for _, iface := range d.Interfaces {
		if !iface.Configured() {
			continue
		}
		out = append(out, RoutingEntry{
			Destination:   ipaddr.Format(iface.NetworkAddr()),
			Mask:          iface.Mask,
			NextHop:       "directly connected",
			ExitInterface: iface.Name,
			Metric:        0,
			Protocol:      "Connected",
		})
	}
	return out
}

// findEntry returns the index of the (destination, mask) entry in
// table, or -1 if absent.
func findEntry(table []RoutingEntry, destination, mask string) int {
	for i, e := range table {
		if e.Destination == destination && e.Mask == mask {
			return i
		}
	}
	return -1
}
