package routing

import (
	"testing"

	"github.com/Jibboo41/NetworkEmulator/topology"
)

func configure(d *topology.Device, ifaceName, ip, mask string) {
	iface := d.GetInterface(ifaceName)
	iface.IP = ip
	iface.Mask = mask
}

func findIn(table []RoutingEntry, destination, mask string) (RoutingEntry, bool) {
	for _, e := range table {
		if e.Destination == destination && e.Mask == mask {
			return e, true
		}
	}
	return RoutingEntry{}, false
}

// TestRIPv2TwoRouterChain is scenario 1 from spec: R1-R2, each with a
// LAN host; R1 should learn R2's LAN via RIPv2 with metric 2.
func TestRIPv2TwoRouterChain(t *testing.T) {
	net := topology.NewNetwork("t")

	r1 := topology.NewRouter("R1")
	r1.Router.Protocol = "RIPv2"
	configure(r1, "Gi0/0", "10.0.0.1", "255.255.255.252")
	configure(r1, "Gi0/1", "192.168.1.1", "255.255.255.0")
	net.AddDevice(r1)

	r2 := topology.NewRouter("R2")
	r2.Router.Protocol = "RIPv2"
	configure(r2, "Gi0/0", "10.0.0.2", "255.255.255.252")
	configure(r2, "Gi0/1", "172.16.0.1", "255.255.255.0")
	net.AddDevice(r2)

	pc1 := topology.NewHost("PC1")
	configure(pc1, "eth0", "192.168.1.10", "255.255.255.0")
	pc1.Host.DefaultGateway = "192.168.1.1"
	net.AddDevice(pc1)

	pc2 := topology.NewHost("PC2")
	configure(pc2, "eth0", "172.16.0.10", "255.255.255.0")
	net.AddDevice(pc2)

	net.AddLink(topology.NewLink(r1.ID, "Gi0/0", r2.ID, "Gi0/0"))
	net.AddLink(topology.NewLink(r1.ID, "Gi0/1", pc1.ID, "eth0"))
	net.AddLink(topology.NewLink(r2.ID, "Gi0/1", pc2.ID, "eth0"))

	result := Run(net, "", "")

	var r1Table []RoutingEntry
	for _, rr := range result.RouterResults {
		if rr.RouterID == r1.ID {
			r1Table = rr.RoutingTable
		}
	}

	if _, ok := findIn(r1Table, "10.0.0.0", "255.255.255.252"); !ok {
		t.Error("missing connected 10.0.0.0/30")
	}
	if _, ok := findIn(r1Table, "192.168.1.0", "255.255.255.0"); !ok {
		t.Error("missing connected 192.168.1.0/24")
	}
	entry, ok := findIn(r1Table, "172.16.0.0", "255.255.255.0")
	if !ok {
		t.Fatal("missing RIPv2 172.16.0.0/24")
	}
	if entry.NextHop != "10.0.0.2" || entry.Metric != 2 || entry.Protocol != "RIPv2" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

// TestOSPFTwoRouter is scenario 2 from spec.
func TestOSPFTwoRouter(t *testing.T) {
	net := topology.NewNetwork("t")

	or1 := topology.NewRouter("OR1")
	or1.Router.Protocol = "OSPF"
	configure(or1, "Gi0/0", "10.1.0.1", "255.255.255.252")
	or1.Interfaces[0].OSPFCost = 10
	configure(or1, "Gi0/1", "192.168.10.1", "255.255.255.0")
	net.AddDevice(or1)

	or2 := topology.NewRouter("OR2")
	or2.Router.Protocol = "OSPF"
	configure(or2, "Gi0/0", "10.1.0.2", "255.255.255.252")
	or2.Interfaces[0].OSPFCost = 10
	configure(or2, "Gi0/1", "172.16.10.1", "255.255.255.0")
	net.AddDevice(or2)

	net.AddLink(topology.NewLink(or1.ID, "Gi0/0", or2.ID, "Gi0/0"))

	result := Run(net, "", "")

	var or1Table []RoutingEntry
	for _, rr := range result.RouterResults {
		if rr.RouterID == or1.ID {
			or1Table = rr.RoutingTable
		}
	}

	entry, ok := findIn(or1Table, "172.16.10.0", "255.255.255.0")
	if !ok {
		t.Fatal("missing OSPF 172.16.10.0/24")
	}
	if entry.Metric != 10 || entry.Protocol != "OSPF" || entry.NextHop != "10.1.0.2" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

// TestStaticRoute is scenario 3 from spec.
func TestStaticRoute(t *testing.T) {
	net := topology.NewNetwork("t")

	sr1 := topology.NewRouter("SR1")
	configure(sr1, "Gi0/0", "10.0.0.1", "255.255.255.252")
	sr1.Router.StaticRoutes = append(sr1.Router.StaticRoutes, topology.StaticRoute{
		Destination: "172.16.20.0", Mask: "255.255.255.0", NextHop: "10.0.0.2", Metric: 1,
	})
	net.AddDevice(sr1)

	sr2 := topology.NewRouter("SR2")
	configure(sr2, "Gi0/0", "10.0.0.2", "255.255.255.252")
	net.AddDevice(sr2)

	net.AddLink(topology.NewLink(sr1.ID, "Gi0/0", sr2.ID, "Gi0/0"))

	result := Run(net, "", "")

	var sr1Table []RoutingEntry
	for _, rr := range result.RouterResults {
		if rr.RouterID == sr1.ID {
			sr1Table = rr.RoutingTable
		}
	}

	entry, ok := findIn(sr1Table, "172.16.20.0", "255.255.255.0")
	if !ok {
		t.Fatal("missing static 172.16.20.0/24")
	}
	if entry.NextHop != "10.0.0.2" || entry.ExitInterface != "Gi0/0" || entry.Protocol != "Static" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

// TestPIMDMWithPruning is scenario 5 from spec.
func TestPIMDMWithPruning(t *testing.T) {
	net := topology.NewNetwork("t")

	r1 := topology.NewRouter("R1")
	r1.Router.Protocol = "PIM-DM"
	configure(r1, "Gi0/0", "192.168.1.1", "255.255.255.0")
	configure(r1, "Gi0/1", "10.0.1.1", "255.255.255.252")
	net.AddDevice(r1)

	r2 := topology.NewRouter("R2")
	r2.Router.Protocol = "PIM-DM"
	configure(r2, "Gi0/0", "10.0.1.2", "255.255.255.252")
	configure(r2, "Gi0/1", "10.0.2.1", "255.255.255.252")
	net.AddDevice(r2)

	r3 := topology.NewRouter("R3")
	r3.Router.Protocol = "PIM-DM"
	configure(r3, "Gi0/0", "10.0.2.2", "255.255.255.252")
	configure(r3, "Gi0/1", "192.168.3.1", "255.255.255.0")
	net.AddDevice(r3)

	pc1 := topology.NewHost("PC1")
	configure(pc1, "eth0", "192.168.1.10", "255.255.255.0")
	net.AddDevice(pc1)

	pc3 := topology.NewHost("PC3")
	configure(pc3, "eth0", "192.168.3.10", "255.255.255.0")
	net.AddDevice(pc3)

	net.AddLink(topology.NewLink(r1.ID, "Gi0/0", pc1.ID, "eth0"))
	net.AddLink(topology.NewLink(r1.ID, "Gi0/1", r2.ID, "Gi0/0"))
	net.AddLink(topology.NewLink(r2.ID, "Gi0/1", r3.ID, "Gi0/0"))
	net.AddLink(topology.NewLink(r3.ID, "Gi0/1", pc3.ID, "eth0"))

	tree := ComputePIMDM(net, "192.168.1.10", "239.1.1.1")

	if len(tree.Pruned) != 0 {
		t.Errorf("expected no pruned routers, got %v", tree.Pruned)
	}

	var r2Entry, r3Entry *MulticastTreeEntry
	for i := range tree.Entries {
		switch tree.Entries[i].RouterID {
		case r2.ID:
			r2Entry = &tree.Entries[i]
		case r3.ID:
			r3Entry = &tree.Entries[i]
		}
	}
	if r2Entry == nil || len(r2Entry.OutgoingInterfaces) != 1 || r2Entry.OutgoingInterfaces[0] != "Gi0/1" {
		t.Errorf("unexpected R2 entry: %+v", r2Entry)
	}
	if r3Entry == nil || len(r3Entry.OutgoingInterfaces) != 0 {
		t.Errorf("unexpected R3 entry: %+v", r3Entry)
	}

	// Removing R3's host should prune R3 and empty R2's OIL.
	net.RemoveDevice(pc3.ID)
	tree2 := ComputePIMDM(net, "192.168.1.10", "239.1.1.1")

	prunedNames := map[string]bool{}
	for _, n := range tree2.Pruned {
		prunedNames[n] = true
	}
	if !prunedNames["R3"] {
		t.Errorf("expected R3 to be pruned, got %v", tree2.Pruned)
	}

	for _, e := range tree2.Entries {
		if e.RouterID == r2.ID && len(e.OutgoingInterfaces) != 0 {
			t.Errorf("expected R2's OIL to empty after pruning R3, got %v", e.OutgoingInterfaces)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	net := topology.NewNetwork("t")
	r1 := topology.NewRouter("R1")
	r1.Router.Protocol = "RIPv2"
	configure(r1, "Gi0/0", "10.0.0.1", "255.255.255.252")
	net.AddDevice(r1)

	r2 := topology.NewRouter("R2")
	r2.Router.Protocol = "RIPv2"
	configure(r2, "Gi0/0", "10.0.0.2", "255.255.255.252")
	configure(r2, "Gi0/1", "172.16.0.1", "255.255.255.0")
	net.AddDevice(r2)
	net.AddLink(topology.NewLink(r1.ID, "Gi0/0", r2.ID, "Gi0/0"))

	first := Run(net, "", "")
	second := Run(net, "", "")

	if len(first.RouterResults) != len(second.RouterResults) {
		t.Fatal("result count differs between runs")
	}
	for i := range first.RouterResults {
		if len(first.RouterResults[i].RoutingTable) != len(second.RouterResults[i].RoutingTable) {
			t.Errorf("router %s table size differs between runs", first.RouterResults[i].RouterID)
		}
	}
}

func TestRoutingTableUniquePerDestination(t *testing.T) {
	net := topology.NewNetwork("t")
	r1 := topology.NewRouter("R1")
	r1.Router.Protocol = "OSPF"
	configure(r1, "Gi0/0", "10.0.0.1", "255.255.255.252")
	net.AddDevice(r1)

	result := Run(net, "", "")
	seen := map[string]bool{}
	for _, rr := range result.RouterResults {
		for _, e := range rr.RoutingTable {
			key := e.Destination + "/" + e.Mask
			if seen[key] {
				t.Errorf("duplicate entry for %s", key)
			}
			seen[key] = true
		}
	}
}
