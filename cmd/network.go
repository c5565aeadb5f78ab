package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrbridge/config"
	"github.com/tranvictor/addrbridge/networks"
	"github.com/tranvictor/addrbridge/ui"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config flag takes a network config json filepath OR a json string. The json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"ss58_prefix": 42,
		"native_token_symbol": "UNIT",
		"native_token_decimal": 12,
		"evm": false
	}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddNetwork(appUI, NetworkConfig, NetworkForce)
	},
}

func runAddNetwork(u ui.UI, networkConfig string, force bool) error {
	networkConfig = strings.TrimSpace(networkConfig)
	var content []byte
	switch {
	case networkConfig == "":
		return fmt.Errorf("--config is required")
	case strings.HasPrefix(networkConfig, "{") && strings.HasSuffix(networkConfig, "}"):
		content = []byte(networkConfig)
	default:
		// in this case, config is supposed to be a path to a json file
		var err error
		content, err = os.ReadFile(networkConfig)
		if err != nil {
			return fmt.Errorf("couldn't read the provided json file: %w", err)
		}
	}

	newNetwork, err := networks.NewNetworkFromJSON(content)
	if err != nil {
		return fmt.Errorf("the provided json is not a valid network config: %w", err)
	}

	allNames := append([]string{newNetwork.GetName()}, newNetwork.GetAlternativeNames()...)
	for _, name := range allNames {
		if _, err := networks.GetNetwork(name); err == nil {
			if !force {
				return fmt.Errorf("network with name %s already exists. Abort. If you want to update the network, use flag --force", name)
			}
			u.Warn("Network with name %s already exists. It will be replaced with the new network.", name)
		}
	}

	if err := networks.AddNetwork(newNetwork); err != nil {
		return fmt.Errorf("failed to add the new network: %w", err)
	}
	u.Success("Network %s with SS58 prefix %d added and saved to %s.", newNetwork.GetName(), newNetwork.GetSS58Prefix(), networks.CustomNetworksDir())
	return nil
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListNetworks(appUI)
	},
}

type networkInfo struct {
	Name             string   `json:"name"`
	AlternativeNames []string `json:"alternative_names"`
	SS58Prefix       uint16   `json:"ss58_prefix"`
	Token            string   `json:"native_token_symbol"`
	Decimals         uint64   `json:"native_token_decimal"`
	EVM              bool     `json:"evm"`
}

func runListNetworks(u ui.UI) error {
	all := networks.GetSupportedNetworks()
	if config.JSONOutput {
		infos := []networkInfo{}
		for _, n := range all {
			infos = append(infos, networkInfo{
				Name:             n.GetName(),
				AlternativeNames: n.GetAlternativeNames(),
				SS58Prefix:       n.GetSS58Prefix(),
				Token:            n.GetNativeTokenSymbol(),
				Decimals:         n.GetNativeTokenDecimal(),
				EVM:              n.HasEVM(),
			})
		}
		return printJSON(u, infos)
	}

	rows := [][]string{}
	for _, n := range all {
		evm := ""
		if n.HasEVM() {
			evm = "yes"
		}
		rows = append(rows, []string{
			n.GetName(),
			strings.Join(n.GetAlternativeNames(), ", "),
			strconv.FormatUint(uint64(n.GetSS58Prefix()), 10),
			n.GetNativeTokenSymbol(),
			strconv.FormatUint(n.GetNativeTokenDecimal(), 10),
			evm,
		})
	}
	u.Table([]string{"Name", "Aliases", "Prefix", "Token", "Decimals", "EVM"}, rows)
	u.Info("To add more networks: addrbridge network add --config <json>")
	u.Info("To delete a network, delete its json file in %s.", networks.CustomNetworksDir())
	return nil
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage all networks that addrbridge supports",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().StringVarP(&NetworkConfig, "config", "c", "", "Path to the network config json file, or the json itself")
	addNetworkCmd.PersistentFlags().BoolVarP(&NetworkForce, "force", "f", false, "Force adding the network even if it already exists")

	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
