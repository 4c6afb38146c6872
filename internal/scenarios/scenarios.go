// Package scenarios builds the fixed set of sample topologies the
// headless test harness exercises: one per routing protocol, one
// intentionally broken for the validator, and one multicast tree.
package scenarios

import "github.com/Jibboo41/NetworkEmulator/topology"

func configure(d *topology.Device, ifaceName, ip, mask string) {
	iface := d.GetInterface(ifaceName)
	iface.IP = ip
	iface.Mask = mask
}

// RIPv2TwoRouterChain is R1--R2 over a /30, each with its own LAN host,
// both routers speaking RIPv2.
func RIPv2TwoRouterChain() *topology.Network {
	net := topology.NewNetwork("RIPv2 two-router chain")

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
	pc2.Host.DefaultGateway = "172.16.0.1"
	net.AddDevice(pc2)

	net.AddLink(topology.NewLink(r1.ID, "Gi0/0", r2.ID, "Gi0/0"))
	net.AddLink(topology.NewLink(r1.ID, "Gi0/1", pc1.ID, "eth0"))
	net.AddLink(topology.NewLink(r2.ID, "Gi0/1", pc2.ID, "eth0"))

	return net
}

// OSPFTwoRouter is OR1--OR2 over a /30 with OSPF cost 10 on the shared link.
func OSPFTwoRouter() *topology.Network {
	net := topology.NewNetwork("OSPF two-router")

	or1 := topology.NewRouter("OR1")
	or1.Router.Protocol = "OSPF"
	or1.Router.OSPF.RouterID = "1.1.1.1"
	configure(or1, "Gi0/0", "10.1.0.1", "255.255.255.252")
	or1.GetInterface("Gi0/0").OSPFCost = 10
	configure(or1, "Gi0/1", "192.168.10.1", "255.255.255.0")
	net.AddDevice(or1)

	or2 := topology.NewRouter("OR2")
	or2.Router.Protocol = "OSPF"
	or2.Router.OSPF.RouterID = "2.2.2.2"
	configure(or2, "Gi0/0", "10.1.0.2", "255.255.255.252")
	or2.GetInterface("Gi0/0").OSPFCost = 10
	configure(or2, "Gi0/1", "172.16.10.1", "255.255.255.0")
	net.AddDevice(or2)

	net.AddLink(topology.NewLink(or1.ID, "Gi0/0", or2.ID, "Gi0/0"))

	return net
}

// StaticThreeRouterChain is a static-routing chain SR1--SR2, each with
// a static route pointing at the other's LAN.
func StaticThreeRouterChain() *topology.Network {
	net := topology.NewNetwork("Static chain")

	sr1 := topology.NewRouter("SR1")
	configure(sr1, "Gi0/0", "10.0.0.1", "255.255.255.252")
	configure(sr1, "Gi0/1", "192.168.20.1", "255.255.255.0")
	sr1.Router.StaticRoutes = append(sr1.Router.StaticRoutes, topology.StaticRoute{
		Destination: "172.16.20.0", Mask: "255.255.255.0", NextHop: "10.0.0.2", Metric: 1,
	})
	net.AddDevice(sr1)

	sr2 := topology.NewRouter("SR2")
	configure(sr2, "Gi0/0", "10.0.0.2", "255.255.255.252")
	configure(sr2, "Gi0/1", "172.16.20.1", "255.255.255.0")
	sr2.Router.StaticRoutes = append(sr2.Router.StaticRoutes, topology.StaticRoute{
		Destination: "192.168.20.0", Mask: "255.255.255.0", NextHop: "10.0.0.1", Metric: 1,
	})
	net.AddDevice(sr2)

	net.AddLink(topology.NewLink(sr1.ID, "Gi0/0", sr2.ID, "Gi0/0"))

	return net
}

// BrokenNetwork intentionally violates five validator checks: a
// subnet mismatch, a duplicate OSPF router-id, a host with no default
// gateway, and an isolated host whose configured eth0 is also reported
// as unconnected.
func BrokenNetwork() *topology.Network {
	net := topology.NewNetwork("Broken network")

	br1 := topology.NewRouter("BR1")
	br1.Router.Protocol = "OSPF"
	br1.Router.OSPF.RouterID = "3.3.3.3"
	configure(br1, "Gi0/0", "10.0.5.1", "255.255.255.0")
	net.AddDevice(br1)

	br2 := topology.NewRouter("BR2")
	br2.Router.Protocol = "OSPF"
	br2.Router.OSPF.RouterID = "3.3.3.3"
	configure(br2, "Gi0/0", "10.0.5.2", "255.255.255.252")
	net.AddDevice(br2)

	net.AddLink(topology.NewLink(br1.ID, "Gi0/0", br2.ID, "Gi0/0"))

	bpc := topology.NewHost("BPC")
	configure(bpc, "eth0", "192.168.99.5", "255.255.255.0")
	net.AddDevice(bpc)

	return net
}

// PIMDMFloodAndPrune is a three-router PIM-DM chain R1--R2--R3 with a
// multicast source behind R1 and a receiver behind R3. R2 has no host
// of its own, so it stays in the tree only as a transit router.
func PIMDMFloodAndPrune() (net *topology.Network, sourceIP, group string) {
	net = topology.NewNetwork("PIM-DM flood and prune")

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
	pc1.Host.DefaultGateway = "192.168.1.1"
	net.AddDevice(pc1)

	pc3 := topology.NewHost("PC3")
	configure(pc3, "eth0", "192.168.3.10", "255.255.255.0")
	pc3.Host.DefaultGateway = "192.168.3.1"
	net.AddDevice(pc3)

	net.AddLink(topology.NewLink(r1.ID, "Gi0/0", pc1.ID, "eth0"))
	net.AddLink(topology.NewLink(r1.ID, "Gi0/1", r2.ID, "Gi0/0"))
	net.AddLink(topology.NewLink(r2.ID, "Gi0/1", r3.ID, "Gi0/0"))
	net.AddLink(topology.NewLink(r3.ID, "Gi0/1", pc3.ID, "eth0"))

	return net, "192.168.1.10", "239.1.1.1"
}
