package topology

// persist.go converts a Network to and from the wire document shape
// and serializes that document as JSON or YAML, selecting the
// serializer by file extension the way the teacher's WriteToFile /
// ReadDevExecList pair does for its own descriptor files.

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

type interfaceDoc struct {
	Name        string `json:"name" yaml:"name"`
	IPAddress   string `json:"ipAddress" yaml:"ipAddress"`
	SubnetMask  string `json:"subnetMask" yaml:"subnetMask"`
	OSPFCost    int    `json:"ospfCost" yaml:"ospfCost"`
	Description string `json:"description" yaml:"description"`
}

type staticRouteDoc struct {
	Destination string `json:"destination" yaml:"destination"`
	Mask        string `json:"mask" yaml:"mask"`
	NextHop     string `json:"nextHop" yaml:"nextHop"`
	Metric      int    `json:"metric" yaml:"metric"`
}

type ospfConfigDoc struct {
	RouterID  string `json:"routerId" yaml:"routerId"`
	Area      string `json:"area" yaml:"area"`
	ProcessID int    `json:"processId" yaml:"processId"`
}

// deviceDoc is the serializable form of a Device. Router-only and
// PC-only fields are zero-valued (and omitted from JSON/YAML output)
// for the device kinds that don't carry them.
type deviceDoc struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	X          float64         `json:"x" yaml:"x"`
	Y          float64         `json:"y" yaml:"y"`
	Type       string          `json:"type" yaml:"type"`
	Interfaces []interfaceDoc  `json:"interfaces" yaml:"interfaces"`

	Protocol        string           `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	StaticRoutes    []staticRouteDoc `json:"staticRoutes,omitempty" yaml:"staticRoutes,omitempty"`
	OSPFConfig      *ospfConfigDoc   `json:"ospfConfig,omitempty" yaml:"ospfConfig,omitempty"`
	RIPv2Networks   []string         `json:"ripv2Networks,omitempty" yaml:"ripv2Networks,omitempty"`
	PIMDmInterfaces []string         `json:"pimDmInterfaces,omitempty" yaml:"pimDmInterfaces,omitempty"`

	DefaultGateway string `json:"defaultGateway,omitempty" yaml:"defaultGateway,omitempty"`
}

type linkDoc struct {
	ID         string `json:"id" yaml:"id"`
	Device1ID  string `json:"device1Id" yaml:"device1Id"`
	Interface1 string `json:"interface1" yaml:"interface1"`
	Device2ID  string `json:"device2Id" yaml:"device2Id"`
	Interface2 string `json:"interface2" yaml:"interface2"`
	Bandwidth  int    `json:"bandwidth" yaml:"bandwidth"`
	Delay      int    `json:"delay" yaml:"delay"`
}

type networkDoc struct {
	Name    string      `json:"name" yaml:"name"`
	Devices []deviceDoc `json:"devices" yaml:"devices"`
	Links   []linkDoc   `json:"links" yaml:"links"`
}

// deviceTypeTag maps a DeviceKind to the persistence "type" string. The
// wire format calls hosts "PC", a holdover from the UI layer's naming.
func deviceTypeTag(kind DeviceKind) string {
	if kind == HostKind {
		return "PC"
	}
	return string(kind)
}

func interfaceToDoc(iface *Interface) interfaceDoc {
	return interfaceDoc{
		Name:        iface.Name,
		IPAddress:   iface.IP,
		SubnetMask:  iface.Mask,
		OSPFCost:    iface.OSPFCost,
		Description: iface.Description,
	}
}

func interfaceFromDoc(doc interfaceDoc) *Interface {
	cost := doc.OSPFCost
	if cost == 0 {
		cost = 1
	}
	return &Interface{
		Name:        doc.Name,
		IP:          doc.IPAddress,
		Mask:        doc.SubnetMask,
		OSPFCost:    cost,
		Description: doc.Description,
	}
}

func deviceToDoc(d *Device) deviceDoc {
	doc := deviceDoc{
		ID:   d.ID,
		Name: d.Name,
		X:    d.X,
		Y:    d.Y,
		Type: deviceTypeTag(d.Kind),
	}
	for _, iface := range d.Interfaces {
		doc.Interfaces = append(doc.Interfaces, interfaceToDoc(iface))
	}

	switch d.Kind {
	case RouterKind:
		doc.Protocol = d.Router.Protocol
		for _, sr := range d.Router.StaticRoutes {
			doc.StaticRoutes = append(doc.StaticRoutes, staticRouteDoc{
				Destination: sr.Destination,
				Mask:        sr.Mask,
				NextHop:     sr.NextHop,
				Metric:      sr.Metric,
			})
		}
		doc.OSPFConfig = &ospfConfigDoc{
			RouterID:  d.Router.OSPF.RouterID,
			Area:      d.Router.OSPF.Area,
			ProcessID: d.Router.OSPF.ProcessID,
		}
		doc.RIPv2Networks = d.Router.RIPv2.Networks
		doc.PIMDmInterfaces = d.Router.PIMDM.EnabledInterfaces
	case HostKind:
		doc.DefaultGateway = d.Host.DefaultGateway
	}
	return doc
}

// deviceFromDoc builds a Device from its wire form, applying the load
// defaults spec'd for this persistence format: missing ospfCost -> 1,
// missing area -> "0", missing processId -> 1, missing protocol ->
// "Static". Unknown device types are reported via ok=false so the
// caller can drop them silently.
func deviceFromDoc(doc deviceDoc) (*Device, bool) {
	var kind DeviceKind
	switch doc.Type {
	case "Router":
		kind = RouterKind
	case "Switch":
		kind = SwitchKind
	case "Hub":
		kind = HubKind
	case "PC":
		kind = HostKind
	default:
		return nil, false
	}

	d := &Device{ID: doc.ID, Kind: kind, Name: doc.Name, X: doc.X, Y: doc.Y}
	for _, ifdoc := range doc.Interfaces {
		d.Interfaces = append(d.Interfaces, interfaceFromDoc(ifdoc))
	}

	switch kind {
	case RouterKind:
		rd := &RouterData{Protocol: doc.Protocol}
		if rd.Protocol == "" {
			rd.Protocol = "Static"
		}
		for _, sr := range doc.StaticRoutes {
			metric := sr.Metric
			if metric == 0 {
				metric = 1
			}
			rd.StaticRoutes = append(rd.StaticRoutes, StaticRoute{
				Destination: sr.Destination,
				Mask:        sr.Mask,
				NextHop:     sr.NextHop,
				Metric:      metric,
			})
		}
		if doc.OSPFConfig != nil {
			rd.OSPF.RouterID = doc.OSPFConfig.RouterID
			rd.OSPF.Area = doc.OSPFConfig.Area
			rd.OSPF.ProcessID = doc.OSPFConfig.ProcessID
		}
		if rd.OSPF.Area == "" {
			rd.OSPF.Area = "0"
		}
		if rd.OSPF.ProcessID == 0 {
			rd.OSPF.ProcessID = 1
		}
		rd.RIPv2.Networks = doc.RIPv2Networks
		rd.PIMDM.EnabledInterfaces = doc.PIMDmInterfaces
		d.Router = rd
	case HostKind:
		d.Host = &HostData{DefaultGateway: doc.DefaultGateway}
	}

	return d, true
}

func (n *Network) toDoc() networkDoc {
	doc := networkDoc{Name: n.Name}
	for _, d := range n.Devices() {
		doc.Devices = append(doc.Devices, deviceToDoc(d))
	}
	for _, l := range n.Links() {
		doc.Links = append(doc.Links, linkDoc{
			ID:         l.ID,
			Device1ID:  l.Device1ID,
			Interface1: l.Interface1,
			Device2ID:  l.Device2ID,
			Interface2: l.Interface2,
			Bandwidth:  l.Bandwidth,
			Delay:      l.Delay,
		})
	}
	return doc
}

func fromDoc(doc networkDoc) *Network {
	n := NewNetwork(doc.Name)
	for _, ddoc := range doc.Devices {
		if d, ok := deviceFromDoc(ddoc); ok {
			n.AddDevice(d)
		}
	}
	for _, ldoc := range doc.Links {
		bw := ldoc.Bandwidth
		if bw == 0 {
			bw = 1000
		}
		delay := ldoc.Delay
		if delay == 0 {
			delay = 1
		}
		n.AddLink(&Link{
			ID:         ldoc.ID,
			Device1ID:  ldoc.Device1ID,
			Interface1: ldoc.Interface1,
			Device2ID:  ldoc.Device2ID,
			Interface2: ldoc.Interface2,
			Bandwidth:  bw,
			Delay:      delay,
		})
	}
	return n
}

// Marshal renders the network as JSON, matching the persistence shape
// consumed by the UI layer.
func (n *Network) Marshal() ([]byte, error) {
	return json.MarshalIndent(n.toDoc(), "", "  ")
}

// Unmarshal replaces the network's contents from a JSON document.
func (n *Network) Unmarshal(data []byte) error {
	var doc networkDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*n = *fromDoc(doc)
	return nil
}

// Save writes the network to filePath, choosing JSON or YAML by
// extension, and reports failure as (false, message) rather than
// returning a Go error — the core's persistence boundary hands the
// caller a display-ready string, as the engine does for every other
// externally observable failure.
func (n *Network) Save(filePath string) (bool, string) {
	var data []byte
	var err error

	switch path.Ext(filePath) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(n.toDoc())
	default:
		data, err = n.Marshal()
	}
	if err != nil {
		return false, err.Error()
	}

	if werr := os.WriteFile(filePath, data, 0o644); werr != nil {
		return false, werr.Error()
	}
	return true, ""
}

// Load replaces the network's contents from filePath, choosing the
// decoder by extension.
func (n *Network) Load(filePath string) (bool, string) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return false, err.Error()
	}

	var doc networkDoc
	switch path.Ext(filePath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return false, fmt.Sprintf("parsing %s: %v", filePath, err)
	}

	*n = *fromDoc(doc)
	return true, ""
}
