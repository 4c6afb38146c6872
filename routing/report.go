// Package routing computes per-router routing tables and PIM dense-mode
// multicast trees for a topology.Network, one control-plane pass per
// protocol, and exposes the result as plain value records a UI or text
// reporter can display. The engine never mutates the topology it reads;
// every result is returned rather than written back into the model, so
// a run leaves the topology untouched and reproducible by construction.
package routing

// RoutingEntry is one row of a router's computed routing table.
type RoutingEntry struct {
	Destination   string
	Mask          string
	NextHop       string
	ExitInterface string
	Metric        int
	Protocol      string
}

// RouterResult bundles one router's display protocol name and its
// computed routing table.
type RouterResult struct {
	RouterID     string
	RouterName   string
	Protocol     string
	RoutingTable []RoutingEntry
}

// MulticastTreeEntry describes one router's place in a PIM-DM
// distribution tree: the interface multicast arrives on, and the set
// of interfaces it is replicated out of.
type MulticastTreeEntry struct {
	RouterName         string
	RouterID           string
	IncomingInterface  string
	OutgoingInterfaces []string
}

// MulticastTree is the flood-and-prune result for one (source, group) pair.
type MulticastTree struct {
	SourceIP     string
	GroupAddress string
	Entries      []MulticastTreeEntry
	Pruned       []string
}

// SimulationResult aggregates every router's routing table plus any
// requested multicast tree, the complete output of one engine Run.
type SimulationResult struct {
	RouterResults  []RouterResult
	MulticastTrees []MulticastTree
}
