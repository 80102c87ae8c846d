package metricgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/synthwatch/telegen/internal/config"
)

// Topology is the authoritative label-dimension configuration for the
// metric generator. It is validated once at startup; a missing
// (provider, connection type) interface entry is a configuration error,
// not a runtime condition.
type Topology struct {
	Tenants         []string `yaml:"tenants"`
	Providers       []string `yaml:"providers"`
	ConnectionTypes []string `yaml:"connection_types"`
	NodeTypes       []string `yaml:"node_types"`
	Nodes           []string `yaml:"nodes"`

	// Interfaces maps provider -> connection type -> interface names.
	// Every provider/connection-type pair the fixed sets can produce
	// must have an entry.
	Interfaces map[string]map[string][]string `yaml:"interfaces"`
}

// DefaultTopology returns the built-in provider/interface tables with
// the supplied tenant set. Interface naming follows each provider's
// conventions so dashboards exercising per-interface breakdowns see
// realistic values.
func DefaultTopology(tenants []string) Topology {
	return Topology{
		Tenants:         tenants,
		Providers:       []string{"AWS", "GCP", "Azure", "Cloudflare", "Akamai", "DigitalOcean"},
		ConnectionTypes: []string{"Direct", "Transit", "Peering", "VPN"},
		NodeTypes:       []string{"router"},
		Nodes:           []string{"bot0", "bot1", "bot2", "bot3"},
		Interfaces: map[string]map[string][]string{
			"AWS": {
				"Direct":  {"eth0", "eth1", "ens5"},
				"Transit": {"eth0", "eth2", "ens6"},
				"Peering": {"eth1", "ens5", "ens7"},
				"VPN":     {"tun0", "tun1", "eth0"},
			},
			"GCP": {
				"Direct":  {"ens4", "ens5", "gce0"},
				"Transit": {"ens4", "ens6", "gce1"},
				"Peering": {"ens5", "gce0", "gce2"},
				"VPN":     {"tun0", "tun1", "ens4"},
			},
			"Azure": {
				"Direct":  {"eth0", "eth1", "eth2"},
				"Transit": {"eth0", "eth3", "eth4"},
				"Peering": {"eth1", "eth2", "eth5"},
				"VPN":     {"tun0", "tun1", "eth0"},
			},
			"Cloudflare": {
				"Direct":  {"cf-wan0", "cf-wan1", "eth0"},
				"Transit": {"cf-wan0", "cf-wan2", "eth1"},
				"Peering": {"cf-peer0", "cf-peer1", "cf-wan0"},
				"VPN":     {"tun0", "tun1", "cf-wan0"},
			},
			"Akamai": {
				"Direct":  {"aka0", "aka1", "eth0"},
				"Transit": {"aka0", "aka2", "eth1"},
				"Peering": {"aka-peer0", "aka-peer1", "aka0"},
				"VPN":     {"tun0", "tun1", "aka0"},
			},
			"DigitalOcean": {
				"Direct":  {"eth0", "eth1", "vtnet0"},
				"Transit": {"eth0", "eth2", "vtnet1"},
				"Peering": {"eth1", "vtnet0", "vtnet2"},
				"VPN":     {"tun0", "tun1", "eth0"},
			},
		},
	}
}

// LoadTopologyFile reads a Topology from a YAML file. The tenant set
// still comes from the runtime configuration, not the file.
func LoadTopologyFile(path string, tenants []string) (Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Topology{}, fmt.Errorf("failed to read topology file: %w", err)
	}
	var topo Topology
	if err := yaml.Unmarshal(data, &topo); err != nil {
		return Topology{}, fmt.Errorf("failed to parse topology file: %w", err)
	}
	topo.Tenants = tenants
	return topo, nil
}

// Validate checks that all dimension sets are non-empty and that the
// interface mapping covers the full provider x connection-type grid.
func (t Topology) Validate() error {
	if len(t.Tenants) == 0 {
		return config.Errorf("tenant set is empty; set TENANTS")
	}
	named := []struct {
		name string
		set  []string
	}{
		{"provider set", t.Providers},
		{"connection-type set", t.ConnectionTypes},
		{"node-type set", t.NodeTypes},
		{"node set", t.Nodes},
	}
	for _, s := range named {
		if len(s.set) == 0 {
			return config.Errorf("%s is empty", s.name)
		}
	}
	for _, provider := range t.Providers {
		byConn, ok := t.Interfaces[provider]
		if !ok {
			return config.Errorf("no interface mapping for provider %q", provider)
		}
		for _, connType := range t.ConnectionTypes {
			ifaces, ok := byConn[connType]
			if !ok || len(ifaces) == 0 {
				return config.Errorf("no interfaces for provider %q connection type %q", provider, connType)
			}
		}
	}
	return nil
}
