package routing

import (
	"github.com/Jibboo41/NetworkEmulator/topology"
)

// protocolDisplayName maps a router's configured protocol to the
// string the aggregated result reports it under. PIM-DM gets a space
// for display consistency with the rest of the UI's labels.
func protocolDisplayName(protocol string) string {
	if protocol == "PIM-DM" {
		return "PIM Dense Mode"
	}
	return protocol
}

// Run invokes every protocol pass over net and aggregates the result.
// Static/Connected, RIPv2, and OSPF run in that order; PIM-DM routers
// independently receive Connected-only tables, since PIM-DM derives no
// unicast routes of its own. If both pimSourceIP and pimGroup are
// non-empty, one MulticastTree is appended to the result.
func Run(net *topology.Network, pimSourceIP, pimGroup string) SimulationResult {
	var result SimulationResult

	staticTables := ComputeStatic(net)
	ripTables := ComputeRIPv2(net)
	ospfTables := ComputeOSPF(net)

	for _, router := range net.Routers() {
		var table []RoutingEntry
		switch router.Router.Protocol {
		case "Static":
			table = staticTables[router.ID]
		case "RIPv2":
			table = ripTables[router.ID]
		case "OSPF":
			table = ospfTables[router.ID]
		case "PIM-DM":
			table = connectedEntries(router)
		}

		result.RouterResults = append(result.RouterResults, RouterResult{
			RouterID:     router.ID,
			RouterName:   router.Name,
			Protocol:     protocolDisplayName(router.Router.Protocol),
			RoutingTable: table,
		})
	}

	if pimSourceIP != "" && pimGroup != "" {
		result.MulticastTrees = append(result.MulticastTrees, ComputePIMDM(net, pimSourceIP, pimGroup))
	}

	return result
}
