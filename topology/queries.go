package topology

// LinksForDevice returns every link touching deviceID, in insertion order.
func (n *Network) LinksForDevice(deviceID string) []*Link {
	var out []*Link
	for _, l := range n.Links() {
		if l.Device1ID == deviceID || l.Device2ID == deviceID {
			out = append(out, l)
		}
	}
	return out
}

// Neighbor returns the device at the other end of link from deviceID's
// point of view, or nil if the link does not reference deviceID.
func (n *Network) Neighbor(l *Link, deviceID string) *Device {
	if l == nil {
		return nil
	}
	switch deviceID {
	case l.Device1ID:
		return n.Device(l.Device2ID)
	case l.Device2ID:
		return n.Device(l.Device1ID)
	default:
		return nil
	}
}

// InterfaceForLink returns the interface name deviceID uses on l, or
// "" if l does not reference deviceID.
func (n *Network) InterfaceForLink(l *Link, deviceID string) string {
	if l == nil {
		return ""
	}
	switch deviceID {
	case l.Device1ID:
		return l.Interface1
	case l.Device2ID:
		return l.Interface2
	default:
		return ""
	}
}

// AvailableInterface returns the first interface (declared order) on
// deviceID not currently bound to any link, or "" if none.
func (n *Network) AvailableInterface(deviceID string) string {
	d := n.Device(deviceID)
	if d == nil {
		return ""
	}

	used := make(map[string]bool)
	for _, l := range n.links {
		if l.Device1ID == deviceID {
			used[l.Interface1] = true
		}
		if l.Device2ID == deviceID {
			used[l.Interface2] = true
		}
	}

	for _, iface := range d.Interfaces {
		if !used[iface.Name] {
			return iface.Name
		}
	}
	return ""
}

// InterfaceInUse reports whether any link binds deviceID's named interface.
func (n *Network) InterfaceInUse(deviceID, name string) bool {
	for _, l := range n.links {
		if (l.Device1ID == deviceID && l.Interface1 == name) ||
			(l.Device2ID == deviceID && l.Interface2 == name) {
			return true
		}
	}
	return false
}
