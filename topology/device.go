// Package topology models the network the simulator operates on:
// devices with typed variants, per-interface addressing, and the
// undirected links that bind two named interfaces together.
package topology

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Jibboo41/NetworkEmulator/ipaddr"
)

// DeviceKind distinguishes the four device variants the engine cares
// about. Switches and hubs are layer-2 only and behaviorally identical
// to every routing pass; they are kept distinct here only because the
// UI layer distinguishes them.
type DeviceKind string

const (
	RouterKind DeviceKind = "Router"
	SwitchKind DeviceKind = "Switch"
	HubKind    DeviceKind = "Hub"
	HostKind   DeviceKind = "Host"
)

// Interface is owned by exactly one device. Name is unique within its
// owner. An interface is configured when both IP and Mask are non-empty.
type Interface struct {
	Name        string
	IP          string
	Mask        string
	OSPFCost    int
	Description string
	HostBinding string
}

// Configured reports whether the interface carries both an IP and a mask.
func (i *Interface) Configured() bool {
	return i.IP != "" && i.Mask != ""
}

// IPUint32 returns the interface's address as a 32-bit integer.
func (i *Interface) IPUint32() uint32 { return ipaddr.Parse(i.IP) }

// MaskUint32 returns the interface's mask as a 32-bit integer.
func (i *Interface) MaskUint32() uint32 { return ipaddr.Parse(i.Mask) }

// NetworkAddr returns IP AND Mask.
func (i *Interface) NetworkAddr() uint32 {
	return ipaddr.NetworkAddr(i.IPUint32(), i.MaskUint32())
}

// PrefixLen returns the number of leading 1-bits in Mask.
func (i *Interface) PrefixLen() int {
	return ipaddr.MaskToPrefix(i.MaskUint32())
}

// StaticRoute is a user-entered static routing entry.
type StaticRoute struct {
	Destination string
	Mask        string
	NextHop     string
	Metric      int
}

// OSPFConfig holds a router's OSPF process identity.
type OSPFConfig struct {
	RouterID  string
	Area      string
	ProcessID int
}

// RIPv2Config holds the informational set of networks a RIPv2 router
// is configured to advertise. The engine advertises every configured
// interface regardless; the validator checks this list for emptiness.
type RIPv2Config struct {
	Networks []string
}

// PIMDMConfig holds the set of interface names on which PIM-DM is enabled.
type PIMDMConfig struct {
	EnabledInterfaces []string
}

// RouterData holds the fields specific to a router device. Protocol is
// one of "Static", "RIPv2", "OSPF", "PIM-DM".
type RouterData struct {
	Protocol     string
	StaticRoutes []StaticRoute
	OSPF         OSPFConfig
	RIPv2        RIPv2Config
	PIMDM        PIMDMConfig
	IsHostPC     bool
}

// HostData holds the fields specific to a host device.
type HostData struct {
	DefaultGateway string
}

// Device is a node in the topology, identified by a stable opaque ID.
// Router-specific and host-specific data live in Router and Host,
// which are non-nil only for the matching Kind — this is the tagged
// variant called for in place of a class hierarchy with down-casting.
type Device struct {
	ID         string
	Kind       DeviceKind
	Name       string
	X, Y       float64
	Interfaces []*Interface

	Router *RouterData
	Host   *HostData
}

// GetInterface returns the named interface, or nil if absent.
func (d *Device) GetInterface(name string) *Interface {
	for _, iface := range d.Interfaces {
		if iface.Name == name {
			return iface
		}
	}
	return nil
}

// AddInterface appends a new, unconfigured interface and returns it.
func (d *Device) AddInterface(name string) *Interface {
	iface := &Interface{Name: name, OSPFCost: 1}
	d.Interfaces = append(d.Interfaces, iface)
	return iface
}

func newDeviceID() string {
	return uuid.NewString()
}

func defaultName(kind DeviceKind, counter int) string {
	return fmt.Sprintf("%s%d", kind, counter)
}

// NewRouter constructs a router with four Gi0/N interfaces, matching
// the convention the UI layer uses when a user drops a router on the
// canvas. The name is stored as given; a blank name is not replaced.
func NewRouter(name string) *Device {
	d := &Device{
		ID:   newDeviceID(),
		Kind: RouterKind,
		Name: name,
		Router: &RouterData{
			Protocol: "Static",
		},
	}
	for i := 0; i < 4; i++ {
		d.AddInterface(fmt.Sprintf("Gi0/%d", i))
	}
	return d
}

// NewSwitch constructs a switch with eight Fa0/N ports.
func NewSwitch(name string) *Device {
	d := &Device{ID: newDeviceID(), Kind: SwitchKind, Name: name}
	for i := 0; i < 8; i++ {
		d.AddInterface(fmt.Sprintf("Fa0/%d", i))
	}
	return d
}

// NewHub constructs a hub with four PortN ports.
func NewHub(name string) *Device {
	d := &Device{ID: newDeviceID(), Kind: HubKind, Name: name}
	for i := 0; i < 4; i++ {
		d.AddInterface(fmt.Sprintf("Port%d", i))
	}
	return d
}

// NewHost constructs a host with a single eth0 interface.
func NewHost(name string) *Device {
	d := &Device{
		ID:   newDeviceID(),
		Kind: HostKind,
		Name: name,
		Host: &HostData{},
	}
	d.AddInterface("eth0")
	return d
}

// FirstInterface returns the device's first declared interface, or nil
// if it has none. Hosts are expected to have exactly one.
func (d *Device) FirstInterface() *Interface {
	if len(d.Interfaces) == 0 {
		return nil
	}
	return d.Interfaces[0]
}
