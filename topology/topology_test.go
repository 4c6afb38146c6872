package topology

import "testing"

func TestAddRemoveDeviceCascadesLinks(t *testing.T) {
	n := NewNetwork("t")
	r1 := NewRouter("R1")
	r2 := NewRouter("R2")
	r3 := NewRouter("R3")
	n.AddDevice(r1)
	n.AddDevice(r2)
	n.AddDevice(r3)

	l12 := NewLink(r1.ID, "Gi0/0", r2.ID, "Gi0/0")
	l13 := NewLink(r1.ID, "Gi0/1", r3.ID, "Gi0/0")
	l23 := NewLink(r2.ID, "Gi0/1", r3.ID, "Gi0/1")
	n.AddLink(l12)
	n.AddLink(l13)
	n.AddLink(l23)

	n.RemoveDevice(r1.ID)

	if n.Device(r1.ID) != nil {
		t.Fatal("device not removed")
	}
	remaining := n.Links()
	if len(remaining) != 1 || remaining[0].ID != l23.ID {
		t.Fatalf("expected only l23 to remain, got %v", remaining)
	}
}

func TestNeighborAndInterfaceForLink(t *testing.T) {
	n := NewNetwork("t")
	r1 := NewRouter("R1")
	r2 := NewRouter("R2")
	n.AddDevice(r1)
	n.AddDevice(r2)
	l := NewLink(r1.ID, "Gi0/0", r2.ID, "Gi0/1")
	n.AddLink(l)

	if nbr := n.Neighbor(l, r1.ID); nbr.ID != r2.ID {
		t.Errorf("Neighbor(r1) = %v, want r2", nbr)
	}
	if nbr := n.Neighbor(l, r2.ID); nbr.ID != r1.ID {
		t.Errorf("Neighbor(r2) = %v, want r1", nbr)
	}
	if n.Neighbor(l, "bogus") != nil {
		t.Error("Neighbor with unrelated device should be nil")
	}
	if got := n.InterfaceForLink(l, r1.ID); got != "Gi0/0" {
		t.Errorf("InterfaceForLink(r1) = %s, want Gi0/0", got)
	}
	if got := n.InterfaceForLink(l, r2.ID); got != "Gi0/1" {
		t.Errorf("InterfaceForLink(r2) = %s, want Gi0/1", got)
	}
}

func TestAvailableInterfaceAndInUse(t *testing.T) {
	n := NewNetwork("t")
	r1 := NewRouter("R1")
	n.AddDevice(r1)
	if got := n.AvailableInterface(r1.ID); got != "Gi0/0" {
		t.Errorf("AvailableInterface = %s, want Gi0/0", got)
	}

	r2 := NewRouter("R2")
	n.AddDevice(r2)
	l := NewLink(r1.ID, "Gi0/0", r2.ID, "Gi0/0")
	n.AddLink(l)

	if got := n.AvailableInterface(r1.ID); got != "Gi0/1" {
		t.Errorf("AvailableInterface after link = %s, want Gi0/1", got)
	}
	if !n.InterfaceInUse(r1.ID, "Gi0/0") {
		t.Error("expected Gi0/0 to be in use")
	}
	if n.InterfaceInUse(r1.ID, "Gi0/1") {
		t.Error("expected Gi0/1 to be free")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	n := NewNetwork("rt")
	r1 := NewRouter("R1")
	r1.Router.Protocol = "RIPv2"
	r1.Interfaces[0].IP = "10.0.0.1"
	r1.Interfaces[0].Mask = "255.255.255.252"
	n.AddDevice(r1)

	host := NewHost("PC1")
	host.Host.DefaultGateway = "10.0.0.254"
	n.AddDevice(host)

	n.AddLink(NewLink(r1.ID, "Gi0/0", host.ID, "eth0"))

	data, err := n.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	n2 := NewNetwork("")
	if err := n2.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	got := n2.Device(r1.ID)
	if got == nil || got.Router == nil || got.Router.Protocol != "RIPv2" {
		t.Fatalf("router not round-tripped correctly: %+v", got)
	}
	if got.Interfaces[0].IP != "10.0.0.1" {
		t.Errorf("interface IP not round-tripped: %+v", got.Interfaces[0])
	}

	gotHost := n2.Device(host.ID)
	if gotHost == nil || gotHost.Host == nil || gotHost.Host.DefaultGateway != "10.0.0.254" {
		t.Fatalf("host not round-tripped correctly: %+v", gotHost)
	}

	if len(n2.Links()) != 1 {
		t.Fatalf("expected 1 link, got %d", len(n2.Links()))
	}
}

func TestUnknownDeviceTypeDroppedSilently(t *testing.T) {
	doc := `{"name":"n","devices":[{"id":"x","name":"weird","type":"Firewall","interfaces":[]}],"links":[]}`
	n := NewNetwork("")
	if err := n.Unmarshal([]byte(doc)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(n.Devices()) != 0 {
		t.Fatalf("expected unknown device type to be dropped, got %d devices", len(n.Devices()))
	}
}

func TestLoadDefaults(t *testing.T) {
	doc := `{"name":"n","devices":[{"id":"r1","name":"R1","type":"Router","interfaces":[{"name":"Gi0/0"}]}],"links":[]}`
	n := NewNetwork("")
	if err := n.Unmarshal([]byte(doc)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	r := n.Device("r1")
	if r.Router.Protocol != "Static" {
		t.Errorf("default protocol = %s, want Static", r.Router.Protocol)
	}
	if r.Router.OSPF.Area != "0" {
		t.Errorf("default area = %s, want 0", r.Router.OSPF.Area)
	}
	if r.Router.OSPF.ProcessID != 1 {
		t.Errorf("default processId = %d, want 1", r.Router.OSPF.ProcessID)
	}
	if r.Interfaces[0].OSPFCost != 1 {
		t.Errorf("default ospfCost = %d, want 1", r.Interfaces[0].OSPFCost)
	}
}
