package routing

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/Jibboo41/NetworkEmulator/ipaddr"
	"github.com/Jibboo41/NetworkEmulator/topology"
)

// ospfEdge carries the metadata gonum's weighted graph can't: which
// local interface an edge leaves by, and which neighbor IP a packet
// following it arrives at — both are needed to report a next hop, not
// just a distance.
type ospfEdge struct {
	neighborID    string
	cost          int
	localIface    string
	neighborIface string
	neighborIP    string
}

// ComputeOSPF runs per-router Dijkstra shortest-path-first over the
// subgraph of OSPF-speaking routers. Edge cost is the advertising
// side's configured interface cost (directional: A's outgoing cost to
// B need not equal B's outgoing cost to A). The first hop toward a
// reachable router is inherited along the shortest-path tree from the
// root's direct neighbor on that path, exactly as OSPF propagates a
// route's next hop unchanged across intermediate routers.
func ComputeOSPF(net *topology.Network) map[string][]RoutingEntry {
	tables := make(map[string][]RoutingEntry)

	var ospfRouters []*topology.Device
	for _, router := range net.Routers() {
		if router.Router.Protocol == "OSPF" {
			ospfRouters = append(ospfRouters, router)
		}
	}
	if len(ospfRouters) == 0 {
		return tables
	}

	nodeID := make(map[string]int64)
	idNode := make(map[int64]string)
	for i, r := range ospfRouters {
		nodeID[r.ID] = int64(i)
		idNode[int64(i)] = r.ID
	}

	adjacency := make(map[string][]ospfEdge)
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for id := range nodeID {
		g.AddNode(simple.Node(nodeID[id]))
	}

	for _, router := range ospfRouters {
		for _, link := range net.LinksForDevice(router.ID) {
			neighborDev := net.Neighbor(link, router.ID)
			if neighborDev == nil || neighborDev.Kind != topology.RouterKind {
				continue
			}
			if neighborDev.Router.Protocol != "OSPF" {
				continue
			}

			localIface := net.InterfaceForLink(link, router.ID)
			neighborIface := net.InterfaceForLink(link, neighborDev.ID)

			cost := 1
			if iface := router.GetInterface(localIface); iface != nil {
				cost = iface.OSPFCost
			}

			var neighborIP string
			if iface := neighborDev.GetInterface(neighborIface); iface != nil {
				neighborIP = iface.IP
			}

			adjacency[router.ID] = append(adjacency[router.ID], ospfEdge{
				neighborID:    neighborDev.ID,
				cost:          cost,
				localIface:    localIface,
				neighborIface: neighborIface,
				neighborIP:    neighborIP,
			})

			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(nodeID[router.ID]),
				T: simple.Node(nodeID[neighborDev.ID]),
				W: float64(cost),
			})
		}
	}

	for _, root := range ospfRouters {
		table := connectedEntries(root)

		rootNode := simple.Node(nodeID[root.ID])
		spTree := path.DijkstraFrom(rootNode, g)

		for _, other := range ospfRouters {
			if other.ID == root.ID {
				continue
			}

			nodes, weight := spTree.To(nodeID[other.ID])
			if len(nodes) == 0 || math.IsInf(weight, 1) {
				continue // unreachable
			}

			firstHopIP := "unknown"
			firstHopIface := "unknown"
			if len(nodes) >= 2 {
				firstHopID := idNode[nodes[1].ID()]
				for _, e := range adjacency[root.ID] {
					if e.neighborID == firstHopID {
						firstHopIP = e.neighborIP
						firstHopIface = e.localIface
						break
					}
				}
			}

			for _, iface := range other.Interfaces {
				if !iface.Configured() {
					continue
				}
				dest := ipaddr.Format(iface.NetworkAddr())
				if findEntry(table, dest, iface.Mask) >= 0 {
					continue // Connected entries shadow OSPF entries
				}

				table = append(table, RoutingEntry{
					Destination:   dest,
					Mask:          iface.Mask,
					NextHop:       firstHopIP,
					ExitInterface: firstHopIface,
					Metric:        int(weight),
					Protocol:      "OSPF",
				})
			}
		}

		tables[root.ID] = table
	}

	return tables
}
