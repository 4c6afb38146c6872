package routing

import (
	"github.com/Jibboo41/NetworkEmulator/topology"
)

// bfsNode is one router visited while flooding multicast from the
// first-hop router across the PIM-DM subgraph.
type bfsNode struct {
	routerID string
	parentID string
	inIface  string
}

// routerOwningIP returns the router that has an interface configured
// with the given IP, or nil.
func routerOwningIP(net *topology.Network, ip string) *topology.Device {
	for _, r := range net.Routers() {
		for _, iface := range r.Interfaces {
			if iface.IP == ip {
				return r
			}
		}
	}
	return nil
}

// findFirstHopRouter locates the PIM-DM first-hop router for a
// multicast source: either a router that owns the source IP directly,
// or the first router discovered by a BFS outward from the host that
// owns it, crossing any link.
func findFirstHopRouter(net *topology.Network, sourceIP string) *topology.Device {
	if r := routerOwningIP(net, sourceIP); r != nil {
		return r
	}

	var srcHost *topology.Device
	for _, h := range net.Hosts() {
		if iface := h.FirstInterface(); iface != nil && iface.IP == sourceIP {
			srcHost = h
			break
		}
	}
	if srcHost == nil {
		return nil
	}

	visited := map[string]bool{}
	queue := []string{srcHost.ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, link := range net.LinksForDevice(current) {
			nbr := net.Neighbor(link, current)
			if nbr == nil {
				continue
			}
			if nbr.Kind == topology.RouterKind {
				return nbr
			}
			queue = append(queue, nbr.ID)
		}
	}
	return nil
}

// hasPCDownstream reports whether any host is reachable from routerID,
// excluding the edge back toward parentID, by walking through hosts,
// switches, hubs, and other PIM-DM routers. visited prevents revisiting
// a node and guarantees termination on any topology, looped or not.
func hasPCDownstream(net *topology.Network, routerID, parentID string, visited map[string]bool) bool {
	if visited[routerID] {
		return false
	}
	visited[routerID] = true

	for _, link := range net.LinksForDevice(routerID) {
		nbr := net.Neighbor(link, routerID)
		if nbr == nil || nbr.ID == parentID {
			continue
		}

		switch nbr.Kind {
		case topology.HostKind:
			return true
		case topology.SwitchKind, topology.HubKind:
			if hasPCDownstream(net, nbr.ID, routerID, visited) {
				return true
			}
		case topology.RouterKind:
			if nbr.Router.Protocol == "PIM-DM" {
				if hasPCDownstream(net, nbr.ID, routerID, visited) {
					return true
				}
			}
		}
	}
	return false
}

// ComputePIMDM builds the dense-mode multicast distribution tree for
// one (source, group) pair: flood from the first-hop router across
// every PIM-DM-speaking router, then prune branches without downstream
// receivers. If the source cannot be resolved to a first-hop router,
// the returned tree carries only the source and group, with no entries
// and nothing pruned.
func ComputePIMDM(net *topology.Network, sourceIP, group string) MulticastTree {
	tree := MulticastTree{SourceIP: sourceIP, GroupAddress: group}

	firstHop := findFirstHopRouter(net, sourceIP)
	if firstHop == nil {
		return tree
	}

	var flood []bfsNode
	visited := map[string]bool{}
	queue := []bfsNode{{routerID: firstHop.ID}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node.routerID] {
			continue
		}
		visited[node.routerID] = true
		flood = append(flood, node)

		for _, link := range net.LinksForDevice(node.routerID) {
			nbr := net.Neighbor(link, node.routerID)
			if nbr == nil || nbr.Kind != topology.RouterKind {
				continue
			}
			if nbr.Router.Protocol != "PIM-DM" || visited[nbr.ID] {
				continue
			}
			inIface := net.InterfaceForLink(link, nbr.ID)
			queue = append(queue, bfsNode{routerID: nbr.ID, parentID: node.routerID, inIface: inIface})
		}
	}

	for _, node := range flood {
		router := net.Device(node.routerID)
		if router == nil {
			continue
		}

		var oil []string
		hasDownstreamReceiver := false

		for _, link := range net.LinksForDevice(node.routerID) {
			nbr := net.Neighbor(link, node.routerID)
			if nbr == nil {
				continue
			}

			switch nbr.Kind {
			case topology.HostKind:
				hasDownstreamReceiver = true

			case topology.SwitchKind, topology.HubKind:
				if hasPCDownstream(net, nbr.ID, node.routerID, map[string]bool{}) {
					hasDownstreamReceiver = true
					oil = append(oil, net.InterfaceForLink(link, node.routerID))
				}

			case topology.RouterKind:
				if nbr.Router.Protocol != "PIM-DM" || nbr.ID == node.parentID {
					continue
				}
				if hasPCDownstream(net, nbr.ID, node.routerID, map[string]bool{}) {
					oil = append(oil, net.InterfaceForLink(link, node.routerID))
				} else {
					tree.Pruned = append(tree.Pruned, nbr.Name)
				}
			}
		}

		if !hasDownstreamReceiver && len(oil) == 0 && node.routerID != firstHop.ID {
			tree.Pruned = append(tree.Pruned, router.Name)
			continue
		}

		tree.Entries = append(tree.Entries, MulticastTreeEntry{
			RouterName:         router.Name,
			RouterID:           router.ID,
			IncomingInterface:  node.inIface,
			OutgoingInterfaces: oil,
		})
	}

	return tree
}
