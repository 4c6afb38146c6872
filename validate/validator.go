// Package validate runs a fixed set of structural checks over a
// topology.Network and reports them as plain Issue values. Checks are
// independent of one another and independent of the routing engine;
// none require a computed routing table.
package validate

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"

	"github.com/Jibboo41/NetworkEmulator/ipaddr"
	"github.com/Jibboo41/NetworkEmulator/topology"
)

// Severity distinguishes issues a user must fix from ones merely worth
// their attention.
type Severity string

const (
	Error   Severity = "Error"
	Warning Severity = "Warning"
)

// Issue is one validation finding.
type Issue struct {
	Severity          Severity
	Message           string
	AffectedDeviceIDs []string
}

// Validate runs every check over net and returns the combined issue
// list in a fixed check order: IP conflicts, subnet mismatches, PC
// gateways, OSPF router-id duplicates, unconnected interfaces, RIPv2
// network statements, then reachability.
func Validate(net *topology.Network) []Issue {
	var issues []Issue
	issues = append(issues, checkIPConflicts(net)...)
	issues = append(issues, checkSubnetMismatches(net)...)
	issues = append(issues, checkHostGateways(net)...)
	issues = append(issues, checkOSPFRouterIDs(net)...)
	issues = append(issues, checkUnconnectedInterfaces(net)...)
	issues = append(issues, checkRIPv2Networks(net)...)
	issues = append(issues, checkReachability(net)...)
	return issues
}

// checkIPConflicts flags any IP address assigned to more than one
// configured interface across the whole topology.
func checkIPConflicts(net *topology.Network) []Issue {
	type holder struct {
		label    string
		deviceID string
	}
	byIP := make(map[string][]holder)

	for _, dev := range net.Devices() {
		for _, iface := range dev.Interfaces {
			if !iface.Configured() {
				continue
			}
			byIP[iface.IP] = append(byIP[iface.IP], holder{
				label:    fmt.Sprintf("%s (%s)", dev.Name, iface.Name),
				deviceID: dev.ID,
			})
		}
	}

	var issues []Issue
	for _, ip := range sortedKeys(byIP) {
		holders := byIP[ip]
		if len(holders) <= 1 {
			continue
		}
		var labels, ids []string
		for _, h := range holders {
			labels = append(labels, h.label)
			ids = append(ids, h.deviceID)
		}
		slices.Sort(labels)
		issues = append(issues, Issue{
			Severity:          Error,
			Message:           fmt.Sprintf("IP address conflict: %s is assigned to: %s", ip, joinStrings(labels)),
			AffectedDeviceIDs: ids,
		})
	}
	return issues
}

// checkSubnetMismatches flags links between two configured, non-L2
// interfaces whose network address or mask disagree.
func checkSubnetMismatches(net *topology.Network) []Issue {
	var issues []Issue

	for _, link := range net.Links() {
		d1 := net.Device(link.Device1ID)
		d2 := net.Device(link.Device2ID)
		if d1 == nil || d2 == nil {
			continue
		}
		if isLayer2(d1) || isLayer2(d2) {
			continue
		}

		if1 := d1.GetInterface(link.Interface1)
		if2 := d2.GetInterface(link.Interface2)
		if if1 == nil || if2 == nil || !if1.Configured() || !if2.Configured() {
			continue
		}

		if if1.NetworkAddr() != if2.NetworkAddr() || if1.Mask != if2.Mask {
			issues = append(issues, Issue{
				Severity: Error,
				Message: fmt.Sprintf("Subnet mismatch on link %s (%s: %s/%s) <-> %s (%s: %s/%s)",
					d1.Name, if1.Name, if1.IP, if1.Mask, d2.Name, if2.Name, if2.IP, if2.Mask),
				AffectedDeviceIDs: []string{d1.ID, d2.ID},
			})
		}
	}
	return issues
}

func isLayer2(d *topology.Device) bool {
	return d.Kind == topology.SwitchKind || d.Kind == topology.HubKind
}

// checkHostGateways flags configured hosts with no default gateway
// (Warning) or a gateway off their own subnet (Error).
func checkHostGateways(net *topology.Network) []Issue {
	var issues []Issue

	for _, host := range net.Hosts() {
		iface := host.FirstInterface()
		if iface == nil || !iface.Configured() {
			continue
		}

		if host.Host.DefaultGateway == "" {
			issues = append(issues, Issue{
				Severity:          Warning,
				Message:           fmt.Sprintf("Host '%s' has no default gateway configured.", host.Name),
				AffectedDeviceIDs: []string{host.ID},
			})
			continue
		}

		if !ipaddr.SameSubnet(iface.IP, host.Host.DefaultGateway, iface.Mask) {
			issues = append(issues, Issue{
				Severity: Error,
				Message: fmt.Sprintf("Host '%s': default gateway %s is not on the same subnet as %s/%s.",
					host.Name, host.Host.DefaultGateway, iface.IP, iface.Mask),
				AffectedDeviceIDs: []string{host.ID},
			})
		}
	}
	return issues
}

// checkOSPFRouterIDs flags any non-empty OSPF router-id shared by more
// than one OSPF-speaking router.
func checkOSPFRouterIDs(net *topology.Network) []Issue {
	byID := make(map[string][]string)

	for _, router := range net.Routers() {
		if router.Router.Protocol != "OSPF" {
			continue
		}
		rid := router.Router.OSPF.RouterID
		if rid == "" {
			continue
		}
		byID[rid] = append(byID[rid], router.Name)
	}

	var issues []Issue
	for _, rid := range sortedKeys(byID) {
		names := byID[rid]
		if len(names) <= 1 {
			continue
		}
		slices.Sort(names)
		issues = append(issues, Issue{
			Severity: Error,
			Message:  fmt.Sprintf("Duplicate OSPF router-id %s on: %s", rid, joinStrings(names)),
		})
	}
	return issues
}

// checkUnconnectedInterfaces warns about configured interfaces that
// are not bound to any link.
func checkUnconnectedInterfaces(net *topology.Network) []Issue {
	var issues []Issue
	for _, dev := range net.Devices() {
		for _, iface := range dev.Interfaces {
			if !iface.Configured() {
				continue
			}
			if !net.InterfaceInUse(dev.ID, iface.Name) {
				issues = append(issues, Issue{
					Severity:          Warning,
					Message:           fmt.Sprintf("'%s' interface %s (%s) is configured but not connected.", dev.Name, iface.Name, iface.IP),
					AffectedDeviceIDs: []string{dev.ID},
				})
			}
		}
	}
	return issues
}

// checkRIPv2Networks warns about RIPv2 routers with an empty networks
// list. The list is informational: the routing engine advertises every
// configured interface regardless, so this is a configuration warning
// only.
func checkRIPv2Networks(net *topology.Network) []Issue {
	var issues []Issue
	for _, router := range net.Routers() {
		if router.Router.Protocol != "RIPv2" {
			continue
		}
		if len(router.Router.RIPv2.Networks) == 0 {
			issues = append(issues, Issue{
				Severity:          Warning,
				Message:           fmt.Sprintf("RIPv2 router '%s' has no network statements configured.", router.Name),
				AffectedDeviceIDs: []string{router.ID},
			})
		}
	}
	return issues
}

// checkReachability warns about any device unreachable, by physical
// link, from an arbitrary starting device.
func checkReachability(net *topology.Network) []Issue {
	all := net.Devices()
	if len(all) == 0 {
		return nil
	}

	visited := map[string]bool{}
	queue := []string{all[0].ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, link := range net.LinksForDevice(current) {
			if nbr := net.Neighbor(link, current); nbr != nil && !visited[nbr.ID] {
				queue = append(queue, nbr.ID)
			}
		}
	}

	var issues []Issue
	for _, dev := range all {
		if !visited[dev.ID] {
			issues = append(issues, Issue{
				Severity:          Warning,
				Message:           fmt.Sprintf("Device '%s' is not connected to the rest of the network.", dev.Name),
				AffectedDeviceIDs: []string{dev.ID},
			})
		}
	}
	return issues
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinStrings(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
