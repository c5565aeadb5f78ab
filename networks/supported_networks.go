package networks

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

// Insert more Network implementation here to support
// more chains. Order matters for GetNetworkByPrefix: the first network
// registered for a prefix is the one reported for it.
var supportedNetworks = []Network{
	Polkadot,
	Kusama,
	Astar,
	Substrate,
	Moonbeam,
	Moonriver,
	AssetHubPolkadot,
	AssetHubKusama,
	Westend,
	Paseo,
}

var ErrNetworkNotFound = fmt.Errorf("network not found")

var (
	registryMu        sync.Mutex
	customNetworksDir = defaultCustomNetworksDir()
	// built on first use so custom networks are read from the directory in
	// effect at that time
	globalSupportedNetworks *networks
)

func registry() *networks {
	registryMu.Lock()
	defer registryMu.Unlock()
	if globalSupportedNetworks == nil {
		globalSupportedNetworks = newSupportedNetworks(customNetworksDir)
	}
	return globalSupportedNetworks
}

// CustomNetworksDir is where AddNetwork persists networks and where they are
// loaded from.
func CustomNetworksDir() string {
	registryMu.Lock()
	defer registryMu.Unlock()
	return customNetworksDir
}

// SetCustomNetworksDir switches the custom network directory. The registry
// is rebuilt from dir on next use.
func SetCustomNetworksDir(dir string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	customNetworksDir = dir
	globalSupportedNetworks = nil
}

type networks struct {
	networks       map[string]Network
	networksByPref map[uint16]Network
	names          []string
}

func defaultCustomNetworksDir() string {
	usr, err := user.Current()
	if err != nil {
		return ""
	}
	return filepath.Join(usr.HomeDir, ".addrbridge", "networks")
}

func (n *networks) getSupportedNetworkNames() []string {
	res := append([]string{}, n.names...)
	sort.Strings(res)
	return res
}

func (n *networks) getNetworkByPrefix(prefix uint16) (Network, error) {
	res, found := n.networksByPref[prefix]
	if !found {
		return nil, fmt.Errorf("ss58 prefix %d: %w", prefix, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[normalizeName(name)]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) register(network Network, override bool) error {
	names := append([]string{network.GetName()}, network.GetAlternativeNames()...)
	if !override {
		for _, name := range names {
			if _, found := n.networks[name]; found {
				return fmt.Errorf("network with name or alternative name of '%s' already exists", name)
			}
		}
	}
	for _, name := range names {
		if _, found := n.networks[name]; !found {
			n.names = append(n.names, name)
		}
		n.networks[name] = network
	}
	if _, found := n.networksByPref[network.GetSS58Prefix()]; !found || override {
		n.networksByPref[network.GetSS58Prefix()] = network
	}
	return nil
}

func (n *networks) suggest(name string) []string {
	matches := fuzzy.Find(strings.ToLower(name), n.names)
	res := []string{}
	for i, m := range matches {
		if i >= 3 {
			break
		}
		res = append(res, m.Str)
	}
	return res
}

func newSupportedNetworks(customDir string) *networks {
	result := networks{
		networks:       map[string]Network{},
		networksByPref: map[uint16]Network{},
	}
	for _, n := range supportedNetworks {
		if err := result.register(n, false); err != nil {
			panic(err)
		}
	}

	customNetworks, err := loadCustomNetworks(customDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
		return &result
	}

	for _, n := range customNetworks {
		if _, found := result.networks[n.GetName()]; found {
			fmt.Fprintf(os.Stderr, "Network with name '%s' already exists. Using custom network.\n", n.GetName())
		}
		result.register(n, true)
	}
	return &result
}

func loadCustomNetworks(dir string) ([]Network, error) {
	if dir == "" {
		return nil, nil
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	networks := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse network from file %s: %s. Ignore and continue with other custom networks.\n", file, err)
			continue
		}

		networks = append(networks, network)
	}
	return networks, nil
}
