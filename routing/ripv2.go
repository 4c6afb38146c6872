package routing

import (
	"github.com/Jibboo41/NetworkEmulator/topology"
)

const ripMaxMetric = 15

// learnedKey identifies one (router, destination, mask) tuple for the
// split-horizon bookkeeping: a router must not re-advertise a route
// back out the neighbor it was learned from.
type learnedKey struct {
	routerID    string
	destination string
	mask        string
}

// ripConnectedEntries seeds a RIPv2 router's table with its directly
// connected networks at metric 1, not the shared metric-0 Connected
// entries the Static/OSPF passes use. RIPv2 counts a directly attached
// network as one hop away from the router advertising it; relaxation
// then adds one more hop per router crossed, so a neighbor one hop
// away learns it at metric 2.
func ripConnectedEntries(d *topology.Device) []RoutingEntry {
	entries := connectedEntries(d)
	for i := range entries {
		entries[i].Metric = 1
	}
	return entries
}

// ComputeRIPv2 runs distance-vector Bellman-Ford relaxation with split
// horizon over every RIPv2-speaking router. Each router is seeded with
// its directly connected networks at metric 1 (see ripConnectedEntries),
// then routes are relaxed across RIPv2-to-RIPv2 links until a full pass
// changes nothing. Metrics above 15 are treated as infinity and never
// propagated.
func ComputeRIPv2(net *topology.Network) map[string][]RoutingEntry {
	tables := make(map[string][]RoutingEntry)
	var ripRouters []*topology.Device

	for _, router := range net.Routers() {
		if router.Router.Protocol != "RIPv2" {
			continue
		}
		ripRouters = append(ripRouters, router)
		tables[router.ID] = ripConnectedEntries(router)
	}

	// learnedFrom[{routerID, destination, mask}] = neighborID the route
	// was learned from.
	// Connected entries have no learnedFrom record and are therefore
	// always eligible for advertisement.
	learnedFrom := make(map[learnedKey]string)

	changed := true
	for changed {
		changed = false

		for _, router := range ripRouters {
			for _, link := range net.LinksForDevice(router.ID) {
				neighborDev := net.Neighbor(link, router.ID)
				if neighborDev == nil || neighborDev.Kind != topology.RouterKind {
					continue
				}
				if neighborDev.Router.Protocol != "RIPv2" {
					continue
				}

				neighborIfaceName := net.InterfaceForLink(link, neighborDev.ID)
				routerIfaceName := net.InterfaceForLink(link, router.ID)
				routerIface := router.GetInterface(routerIfaceName)
				if routerIface == nil {
					continue
				}
				routerIP := routerIface.IP

				for _, entry := range tables[router.ID] {
					key := learnedKey{router.ID, entry.Destination, entry.Mask}
					if learnedFrom[key] == neighborDev.ID {
						continue // split horizon
					}

					metric := entry.Metric + 1
					if metric > ripMaxMetric {
						continue
					}

					neighborTable := tables[neighborDev.ID]
					idx := findEntry(neighborTable, entry.Destination, entry.Mask)
					if idx >= 0 {
						if metric < neighborTable[idx].Metric {
							neighborTable[idx].Metric = metric
							neighborTable[idx].NextHop = routerIP
							neighborTable[idx].ExitInterface = neighborIfaceName
							neighborTable[idx].Protocol = "RIPv2"
							learnedFrom[learnedKey{neighborDev.ID, entry.Destination, entry.Mask}] = router.ID
							changed = true
						}
					} else {
						neighborTable = append(neighborTable, RoutingEntry{
							Destination:   entry.Destination,
							Mask:          entry.Mask,
							NextHop:       routerIP,
							ExitInterface: neighborIfaceName,
							Metric:        metric,
							Protocol:      "RIPv2",
						})
						tables[neighborDev.ID] = neighborTable
						learnedFrom[learnedKey{neighborDev.ID, entry.Destination, entry.Mask}] = router.ID
						changed = true
					}
				}
			}
		}
	}

	return tables
}
