package cmd

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/tranvictor/addrbridge/bridge"
	"github.com/tranvictor/addrbridge/config"
	"github.com/tranvictor/addrbridge/ss58"
	"github.com/tranvictor/addrbridge/ui"
)

type ss58Encoded struct {
	Account string                `json:"account"`
	Prefix  uint16                `json:"prefix"`
	Address string                `json:"address"`
	Origin  *bridge.AccountOrigin `json:"origin,omitempty"`
}

var ss58EncodeCmd = &cobra.Command{
	Use:   "encode [account-hex...]",
	Short: "Encode raw 32-byte account ids as SS58 for the selected network",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSs58Encode(appUI, args)
	},
}

func runSs58Encode(u ui.UI, args []string) error {
	prefix, n, err := resolvePrefix()
	if err != nil {
		return err
	}
	if !config.JSONOutput {
		u.Interpret(describePrefix(prefix, n))
	}
	return forEachInput(u, args, func(input string) (ss58Encoded, error) {
		addr, err := bridge.AccountToSubstrate(input, prefix)
		if err != nil {
			return ss58Encoded{}, err
		}
		return ss58Encoded{Account: input, Prefix: prefix, Address: addr}, nil
	}, func(_ string, r ss58Encoded) {
		u.Success("%s", r.Address)
	})
}

var ss58DecodeCmd = &cobra.Command{
	Use:   "decode [address...]",
	Short: "Decode SS58 addresses into prefix, account id and origin",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSs58Decode(appUI, args)
	},
}

// runSs58Decode shows the account without its EVM form so no
// acknowledgment is needed here; sub2evm is the gated path.
func runSs58Decode(u ui.UI, args []string) error {
	return forEachInput(u, args, func(input string) (ss58Encoded, error) {
		prefix, account, err := ss58.Decode(input)
		if err != nil {
			return ss58Encoded{}, err
		}
		origin := bridge.OriginOf(account)
		return ss58Encoded{Account: hexutil.Encode(account[:]), Prefix: prefix, Address: input, Origin: &origin}, nil
	}, func(_ string, r ss58Encoded) {
		u.KeyValue([][2]string{
			{"Address", r.Address},
			{"Network", describePrefix(r.Prefix, networkForPrefix(r.Prefix))},
			{"Account", r.Account},
			{"Origin", u.Style(originStyle(*r.Origin))},
		})
	})
}

var ss58ReencodeCmd = &cobra.Command{
	Use:   "reencode [address...]",
	Short: "Re-encode SS58 addresses for the selected network",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSs58Reencode(appUI, args)
	},
}

func runSs58Reencode(u ui.UI, args []string) error {
	prefix, n, err := resolvePrefix()
	if err != nil {
		return err
	}
	if !config.JSONOutput {
		u.Interpret(describePrefix(prefix, n))
	}
	return forEachInput(u, args, func(input string) (ss58Encoded, error) {
		addr, err := ss58.Reencode(input, prefix)
		if err != nil {
			return ss58Encoded{}, err
		}
		_, account, _ := ss58.Decode(addr)
		return ss58Encoded{Account: hexutil.Encode(account[:]), Prefix: prefix, Address: addr}, nil
	}, func(_ string, r ss58Encoded) {
		u.Success("%s", r.Address)
	})
}

var ss58Cmd = &cobra.Command{
	Use:   "ss58",
	Short: "Work with SS58 encoded account addresses",
}

func originStyle(o bridge.AccountOrigin) ui.StyledText {
	if o == bridge.EthDerived {
		return ui.StyledText{Text: "eth-derived (reversible to an EVM address)", Severity: ui.SeveritySuccess}
	}
	return ui.StyledText{Text: "native (EVM form is one-way)", Severity: ui.SeverityWarn}
}

func init() {
	ss58Cmd.AddCommand(ss58EncodeCmd)
	ss58Cmd.AddCommand(ss58DecodeCmd)
	ss58Cmd.AddCommand(ss58ReencodeCmd)
	rootCmd.AddCommand(ss58Cmd)
}
