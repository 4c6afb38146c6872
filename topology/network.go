package topology

// Network owns every device in a topology; links are held in a keyed
// collection. Every cross-reference outside of ownership is by
// device ID, which avoids cyclic ownership and makes removal trivial.
type Network struct {
	Name string

	devices   map[string]*Device
	devOrder  []string
	links     map[string]*Link
	linkOrder []string
}

// NewNetwork constructs an empty, named topology.
func NewNetwork(name string) *Network {
	if name == "" {
		name = "Untitled Network"
	}
	return &Network{
		Name:    name,
		devices: make(map[string]*Device),
		links:   make(map[string]*Link),
	}
}

// AddDevice inserts a device, keyed by its ID.
func (n *Network) AddDevice(d *Device) {
	if _, exists := n.devices[d.ID]; !exists {
		n.devOrder = append(n.devOrder, d.ID)
	}
	n.devices[d.ID] = d
}

// RemoveDevice removes a device and every link that references it.
func (n *Network) RemoveDevice(id string) {
	if _, ok := n.devices[id]; !ok {
		return
	}
	delete(n.devices, id)
	n.devOrder = removeString(n.devOrder, id)

	var keep []string
	for _, linkID := range n.linkOrder {
		l := n.links[linkID]
		if l.Device1ID == id || l.Device2ID == id {
			delete(n.links, linkID)
			continue
		}
		keep = append(keep, linkID)
	}
	n.linkOrder = keep
}

func removeString(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// Device returns the device with the given ID, or nil.
func (n *Network) Device(id string) *Device {
	return n.devices[id]
}

// Devices returns every device in insertion order.
func (n *Network) Devices() []*Device {
	out := make([]*Device, 0, len(n.devOrder))
	for _, id := range n.devOrder {
		out = append(out, n.devices[id])
	}
	return out
}

// Routers returns every router device in insertion order.
func (n *Network) Routers() []*Device {
	var out []*Device
	for _, d := range n.Devices() {
		if d.Kind == RouterKind {
			out = append(out, d)
		}
	}
	return out
}

// Hosts returns every host device in insertion order.
func (n *Network) Hosts() []*Device {
	var out []*Device
	for _, d := range n.Devices() {
		if d.Kind == HostKind {
			out = append(out, d)
		}
	}
	return out
}

// AddLink inserts a link, keyed by its ID.
func (n *Network) AddLink(l *Link) {
	if _, exists := n.links[l.ID]; !exists {
		n.linkOrder = append(n.linkOrder, l.ID)
	}
	n.links[l.ID] = l
}

// RemoveLink removes the link with the given ID.
func (n *Network) RemoveLink(id string) {
	if _, ok := n.links[id]; !ok {
		return
	}
	delete(n.links, id)
	n.linkOrder = removeString(n.linkOrder, id)
}

// Link returns the link with the given ID, or nil.
func (n *Network) Link(id string) *Link {
	return n.links[id]
}

// Links returns every link in insertion order.
func (n *Network) Links() []*Link {
	out := make([]*Link, 0, len(n.linkOrder))
	for _, id := range n.linkOrder {
		out = append(out, n.links[id])
	}
	return out
}

// Clear empties the topology.
func (n *Network) Clear() {
	n.devices = make(map[string]*Device)
	n.devOrder = nil
	n.links = make(map[string]*Link)
	n.linkOrder = nil
	n.Name = "Untitled Network"
}
