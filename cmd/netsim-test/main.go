// Command netsim-test is a headless PASS/FAIL integration harness over
// the routing and validation engines. It builds a fixed set of sample
// topologies, runs the engine and validator over each, asserts on the
// results, and exits non-zero if any assertion fails.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Jibboo41/NetworkEmulator/internal/scenarios"
	"github.com/Jibboo41/NetworkEmulator/internal/simconfig"
	"github.com/Jibboo41/NetworkEmulator/internal/simlog"
	"github.com/Jibboo41/NetworkEmulator/routing"
	"github.com/Jibboo41/NetworkEmulator/topology"
	"github.com/Jibboo41/NetworkEmulator/validate"
)

// check is one named boolean assertion, along with the section it
// belongs to.
type check struct {
	Section string `json:"section"`
	Desc    string `json:"description"`
	Passed  bool   `json:"passed"`
}

type report struct {
	Checks []check `json:"checks"`
	Passed int     `json:"passed"`
	Failed int     `json:"failed"`
}

func (r *report) add(section, desc string, passed bool) {
	r.Checks = append(r.Checks, check{Section: section, Desc: desc, Passed: passed})
	if passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

func hasRoute(table []routing.RoutingEntry, dest, mask, protocol string) bool {
	for _, e := range table {
		if e.Destination == dest && e.Mask == mask && (protocol == "" || e.Protocol == protocol) {
			return true
		}
	}
	return false
}

func nextHopFor(table []routing.RoutingEntry, dest string) string {
	for _, e := range table {
		if e.Destination == dest {
			return e.NextHop
		}
	}
	return ""
}

func tableFor(result routing.SimulationResult, routerName string) []routing.RoutingEntry {
	for _, rr := range result.RouterResults {
		if rr.RouterName == routerName {
			return rr.RoutingTable
		}
	}
	return nil
}

func hasIssue(issues []validate.Issue, sev validate.Severity, fragment string) bool {
	for _, i := range issues {
		if i.Severity == sev && contains(i.Message, fragment) {
			return true
		}
	}
	return false
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func runRIPv2(r *report) {
	net := scenarios.RIPv2TwoRouterChain()
	result := routing.Run(net, "", "")

	r1 := tableFor(result, "R1")
	r2 := tableFor(result, "R2")

	r.add("RIPv2", "R1 has connected route 10.0.0.0/30", hasRoute(r1, "10.0.0.0", "255.255.255.252", "Connected"))
	r.add("RIPv2", "R1 has connected route 192.168.1.0/24", hasRoute(r1, "192.168.1.0", "255.255.255.0", "Connected"))
	r.add("RIPv2", "R1 learned 172.16.0.0/24 via RIPv2", hasRoute(r1, "172.16.0.0", "255.255.255.0", "RIPv2"))
	r.add("RIPv2", "R2 learned 192.168.1.0/24 via RIPv2", hasRoute(r2, "192.168.1.0", "255.255.255.0", "RIPv2"))
	r.add("RIPv2", "R2 has connected route 172.16.0.0/24", hasRoute(r2, "172.16.0.0", "255.255.255.0", "Connected"))
	r.add("RIPv2", "R1 next-hop for 172.16.0.0/24 is 10.0.0.2", nextHopFor(r1, "172.16.0.0") == "10.0.0.2")
}

func runOSPF(r *report) {
	net := scenarios.OSPFTwoRouter()
	result := routing.Run(net, "", "")

	or1 := tableFor(result, "OR1")
	or2 := tableFor(result, "OR2")

	r.add("OSPF", "OR1 has connected route 10.1.0.0/30", hasRoute(or1, "10.1.0.0", "255.255.255.252", "Connected"))
	r.add("OSPF", "OR1 has connected route 192.168.10.0/24", hasRoute(or1, "192.168.10.0", "255.255.255.0", "Connected"))
	r.add("OSPF", "OR1 learned 172.16.10.0/24 via OSPF", hasRoute(or1, "172.16.10.0", "255.255.255.0", "OSPF"))
	r.add("OSPF", "OR2 learned 192.168.10.0/24 via OSPF", hasRoute(or2, "192.168.10.0", "255.255.255.0", "OSPF"))

	metric := 0
	for _, e := range or1 {
		if e.Destination == "172.16.10.0" {
			metric = e.Metric
		}
	}
	r.add("OSPF", "OR1 OSPF metric for 172.16.10.0/24 is 10 (link cost)", metric == 10)
}

func runStatic(r *report) {
	net := scenarios.StaticThreeRouterChain()
	result := routing.Run(net, "", "")

	sr1 := tableFor(result, "SR1")
	sr2 := tableFor(result, "SR2")

	r.add("Static", "SR1 has connected route 192.168.20.0/24", hasRoute(sr1, "192.168.20.0", "255.255.255.0", "Connected"))
	r.add("Static", "SR1 has static route to 172.16.20.0/24", hasRoute(sr1, "172.16.20.0", "255.255.255.0", "Static"))
	r.add("Static", "SR2 has static route to 192.168.20.0/24", hasRoute(sr2, "192.168.20.0", "255.255.255.0", "Static"))
	r.add("Static", "SR1 static route next-hop is 10.0.0.2", nextHopFor(sr1, "172.16.20.0") == "10.0.0.2")
}

func runValidationClean(r *report) {
	net := scenarios.RIPv2TwoRouterChain()
	issues := validate.Validate(net)

	errors := 0
	for _, i := range issues {
		if i.Severity == validate.Error {
			errors++
		}
	}
	r.add("Validation", "No errors on a correctly configured RIPv2 network", errors == 0)
}

func runValidationErrors(r *report) {
	net := scenarios.BrokenNetwork()
	issues := validate.Validate(net)

	r.add("Validation", "Detected subnet mismatch between BR1 (/24) and BR2 (/30)", hasIssue(issues, validate.Error, "Subnet mismatch"))
	r.add("Validation", "Detected duplicate OSPF router-id 3.3.3.3", hasIssue(issues, validate.Error, "router-id"))
	r.add("Validation", "Detected host with no default gateway", hasIssue(issues, validate.Warning, "gateway"))
	r.add("Validation", "Detected isolated device (BPC)", hasIssue(issues, validate.Warning, "not connected"))
}

func runPIMDM(r *report) {
	net, sourceIP, group := scenarios.PIMDMFloodAndPrune()
	tree := routing.ComputePIMDM(net, sourceIP, group)

	r.add("PIM-DM", "no routers pruned when R3's branch has a receiver", len(tree.Pruned) == 0)

	var r2OIL []string
	for _, e := range tree.Entries {
		if e.RouterName == "R2" {
			r2OIL = e.OutgoingInterfaces
		}
	}
	r.add("PIM-DM", "R2 forwards out Gi0/1 toward R3's receiver", len(r2OIL) == 1 && r2OIL[0] == "Gi0/1")
}

func runSaveLoad(r *report) {
	original := scenarios.RIPv2TwoRouterChain()
	path := os.TempDir() + "/netsim-test-roundtrip.net.json"
	defer os.Remove(path)

	ok, msg := original.Save(path)
	r.add("Save/Load", "Network saves without error", ok)
	if !ok {
		log.Errorf("save failed: %s", msg)
		return
	}

	loaded := topology.NewNetwork("")
	ok, msg = loaded.Load(path)
	r.add("Save/Load", "Network loads without error", ok)
	if !ok {
		log.Errorf("load failed: %s", msg)
		return
	}

	r.add("Save/Load", "Loaded device count matches original", len(loaded.Devices()) == len(original.Devices()))
	r.add("Save/Load", "Loaded link count matches original", len(loaded.Links()) == len(original.Links()))

	result := routing.Run(loaded, "", "")
	r1 := tableFor(result, "R1")
	r.add("Save/Load", "R1 still learns 172.16.0.0/24 via RIPv2 after save/load", hasRoute(r1, "172.16.0.0", "255.255.255.0", "RIPv2"))
}

var allScenarios = map[string]func(*report){
	"ripv2":      runRIPv2,
	"ospf":       runOSPF,
	"static":     runStatic,
	"validation": func(r *report) { runValidationClean(r); runValidationErrors(r) },
	"pimdm":      runPIMDM,
	"saveload":   runSaveLoad,
}

func printText(r report) {
	fmt.Println()
	fmt.Println("NetworkEmulator — Simulation & Validation Tests")
	fmt.Println("================================================")

	section := ""
	for _, c := range r.Checks {
		if c.Section != section {
			section = c.Section
			fmt.Printf("\n=== %s ===\n", section)
		}
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Printf("  %s  %s\n", status, c.Desc)
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("Results: %d passed, %d failed.\n", r.Passed, r.Failed)
}

func printJSON(r report) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		log.Fatalf("encoding report: %v", err)
	}
	fmt.Println(string(data))
}

func main() {
	scenarioFlag := flag.String("scenario", "", "scenario to run (ripv2, ospf, static, validation, pimdm, saveload, all); overrides config file")
	formatFlag := flag.String("format", "", "report format: text or json; overrides config file")
	configFlag := flag.String("config", "", "path to an optional TOML config file")
	logFileFlag := flag.String("logfile", "", "rotate logs to this file in addition to stdout")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := simconfig.Load(*configFlag)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *scenarioFlag != "" {
		cfg.Scenario = *scenarioFlag
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *logFileFlag != "" {
		cfg.LogFile = *logFileFlag
	}
	if *verboseFlag {
		cfg.Verbose = true
	}

	simlog.Setup(cfg.LogFile, cfg.Verbose)
	log.Debugf("running with scenario=%s format=%s", cfg.Scenario, cfg.Format)

	var r report
	if cfg.Scenario == "" || cfg.Scenario == "all" {
		for _, name := range []string{"ripv2", "ospf", "static", "validation", "pimdm", "saveload"} {
			allScenarios[name](&r)
		}
	} else {
		run, ok := allScenarios[cfg.Scenario]
		if !ok {
			log.Fatalf("unknown scenario %q", cfg.Scenario)
		}
		run(&r)
	}

	if cfg.Format == "json" {
		printJSON(r)
	} else {
		printText(r)
	}

	if r.Failed > 0 {
		os.Exit(1)
	}
}
