package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrbridge/bridge"
	"github.com/tranvictor/addrbridge/config"
	"github.com/tranvictor/addrbridge/ui"
)

var errNotAcknowledged = fmt.Errorf("one-way conversion of a native account was not acknowledged")

type evmConverted struct {
	EvmAddress string `json:"evm_address"`
	Prefix     uint16 `json:"prefix"`
	Address    string `json:"address"`
}

var evmToSubCmd = &cobra.Command{
	Use:   "evm2sub [evm-address...]",
	Short: "Convert EVM addresses to SS58 addresses (reversible)",
	Long: `Pads each 20-byte EVM address with twelve 0xEE bytes and encodes the
resulting 32-byte account with the SS58 prefix of the selected network.
The result converts back to the same EVM address with sub2evm.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvmToSub(appUI, args)
	},
}

func runEvmToSub(u ui.UI, args []string) error {
	prefix, n, err := resolvePrefix()
	if err != nil {
		return err
	}
	if !config.JSONOutput {
		u.Interpret(describePrefix(prefix, n))
	}
	return forEachInput(u, args, func(input string) (evmConverted, error) {
		addr, err := bridge.EvmToSubstrate(input, prefix)
		if err != nil {
			return evmConverted{}, err
		}
		evm, _ := bridge.SubstrateToEvm(addr)
		return evmConverted{EvmAddress: evmText(evm), Prefix: prefix, Address: addr}, nil
	}, func(_ string, r evmConverted) {
		u.Success("%s", r.Address)
	})
}

var subToEvmCmd = &cobra.Command{
	Use:   "sub2evm [ss58-address...]",
	Short: "Convert SS58 addresses to EVM addresses",
	Long: `Decodes each SS58 address. Accounts created from an EVM address (ending
in twelve 0xEE bytes) convert back exactly.

Native Substrate accounts are mapped to the last 20 bytes of
keccak256(account). That mapping is one-way: nobody holds a private key for
the resulting EVM address unless the account was mapped on-chain, so funds
sent to it may be unrecoverable. You are asked to acknowledge this before the
address is shown; --yes acknowledges up front.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubToEvm(appUI, args)
	},
}

func runSubToEvm(u ui.UI, args []string) error {
	return forEachInput(u, args, func(input string) (bridge.Resolution, error) {
		res, err := bridge.Resolve(input)
		if err != nil {
			return res, err
		}
		if err := acknowledgeOneWay(u, res); err != nil {
			return bridge.Resolution{}, err
		}
		res.EvmAddress = evmText(res.EvmAddress)
		return res, nil
	}, func(_ string, r bridge.Resolution) {
		showResolution(u, r)
	})
}

var convertCmd = &cobra.Command{
	Use:   "convert [address...]",
	Short: "Detect the format of each address and convert it to the other one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(appUI, args)
	},
}

func runConvert(u ui.UI, args []string) error {
	prefix, n, err := resolvePrefix()
	if err != nil {
		return err
	}
	return forEachInput(u, args, func(input string) (bridge.Conversion, error) {
		conv, err := bridge.Convert(input, prefix)
		if err != nil {
			return conv, err
		}
		if conv.Ss58 != nil {
			if err := acknowledgeOneWay(u, *conv.Ss58); err != nil {
				return bridge.Conversion{}, err
			}
			conv.Ss58.EvmAddress = evmText(conv.Ss58.EvmAddress)
			conv.Output = conv.Ss58.EvmAddress
		}
		return conv, nil
	}, func(input string, c bridge.Conversion) {
		u.Section(input)
		switch c.Kind {
		case bridge.EvmInput:
			u.Interpret(fmt.Sprintf("evm address, encoding for %s", describePrefix(prefix, n)))
			u.Success("%s", c.Output)
		case bridge.Ss58Input:
			u.Interpret(fmt.Sprintf("ss58 address on %s", describePrefix(c.Ss58.Prefix, networkForPrefix(c.Ss58.Prefix))))
			showResolution(u, *c.Ss58)
		}
	})
}

// acknowledgeOneWay gates the native branch. In JSON mode there is nobody
// to prompt, so --yes is required.
func acknowledgeOneWay(u ui.UI, res bridge.Resolution) error {
	if res.Reversible() || config.AssumeYes {
		return nil
	}
	if config.JSONOutput {
		return fmt.Errorf("%s is a native account: %w, pass --yes", res.Address, errNotAcknowledged)
	}
	u.Critical("%s is a native Substrate account, not one derived from an EVM address.", res.Address)
	u.Critical("Its EVM form is a one-way keccak256 mapping. Unless this account has been mapped on-chain, nobody controls the resulting EVM address and funds sent to it may be lost.")
	if !u.Confirm("Show the derived EVM address for display only?", false) {
		return errNotAcknowledged
	}
	return nil
}

func showResolution(u ui.UI, r bridge.Resolution) {
	evm := ui.StyledText{Text: r.EvmAddress, Severity: ui.SeveritySuccess}
	if !r.Reversible() {
		evm.Severity = ui.SeverityWarn
		evm.Text += " (display only)"
	}
	u.KeyValue([][2]string{
		{"EVM", u.Style(evm)},
		{"Network", describePrefix(r.Prefix, networkForPrefix(r.Prefix))},
		{"Origin", u.Style(originStyle(r.Origin))},
	})
}

func init() {
	rootCmd.AddCommand(evmToSubCmd)
	rootCmd.AddCommand(subToEvmCmd)
	rootCmd.AddCommand(convertCmd)
}
