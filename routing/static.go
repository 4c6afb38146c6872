package routing

import (
	"github.com/Jibboo41/NetworkEmulator/ipaddr"
	"github.com/Jibboo41/NetworkEmulator/topology"
)

// ComputeStatic builds the routing table of every router configured
// for the Static protocol: a Connected entry per configured interface,
// followed by one Static entry per user-defined static route. The
// exit interface for a static route is the first configured interface
// whose subnet contains the route's next hop; if none matches, the
// exit interface is left empty.
func ComputeStatic(net *topology.Network) map[string][]RoutingEntry {
	tables := make(map[string][]RoutingEntry)

	for _, router := range net.Routers() {
		if router.Router.Protocol != "Static" {
			continue
		}

		table := connectedEntries(router)

		for _, sr := range router.Router.StaticRoutes {
			if sr.Destination == "" || sr.Mask == "" {
				continue
			}
			entry := RoutingEntry{
				Destination: sr.Destination,
				Mask:        sr.Mask,
				NextHop:     sr.NextHop,
				Metric:      sr.Metric,
				Protocol:    "Static",
			}
			for _, iface := range router.Interfaces {
				if !iface.Configured() {
					continue
				}
				if ipaddr.SameSubnet(sr.NextHop, iface.IP, iface.Mask) {
					entry.ExitInterface = iface.Name
					break
				}
			}
			table = append(table, entry)
		}

		tables[router.ID] = table
	}

	return tables
}
