package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tranvictor/addrbridge/ss58"
)

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	networkConfig.Name = normalizeName(networkConfig.Name)
	if networkConfig.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	aliases := []string{}
	for _, alias := range networkConfig.AlternativeNames {
		if alias = normalizeName(alias); alias != "" {
			aliases = append(aliases, alias)
		}
	}
	networkConfig.AlternativeNames = aliases
	if networkConfig.SS58Prefix > ss58.MaxPrefix {
		return nil, fmt.Errorf("ss58 prefix %d is above %d", networkConfig.SS58Prefix, ss58.MaxPrefix)
	}
	return NewGenericNetwork(networkConfig), nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func GetSupportedNetworks() []Network {
	reg := registry()
	res := []Network{}
	seen := map[Network]bool{}
	for _, name := range reg.getSupportedNetworkNames() {
		n := reg.networks[name]
		if !seen[n] {
			seen[n] = true
			res = append(res, n)
		}
	}
	return res
}

func GetNetwork(name string) (Network, error) {
	return registry().getNetwork(name)
}

func GetNetworkByPrefix(prefix uint16) (Network, error) {
	return registry().getNetworkByPrefix(prefix)
}

// Suggest returns up to three known network names close to name.
func Suggest(name string) []string {
	return registry().suggest(name)
}

// AddNetwork stores network under CustomNetworksDir so later runs pick it
// up, then registers it for this process.
func AddNetwork(network Network) error {
	dir := CustomNetworksDir()
	if dir == "" {
		return fmt.Errorf("no directory to store custom networks in")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}

	err = os.WriteFile(filepath.Join(dir, fmt.Sprintf("%s.json", network.GetName())), content, 0644)
	if err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}
	return registry().register(network, true)
}
