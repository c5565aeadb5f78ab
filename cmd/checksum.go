package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrbridge/checksum"
	"github.com/tranvictor/addrbridge/common"
	"github.com/tranvictor/addrbridge/ui"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum [address...]",
	Short: "Apply EIP-55 checksum casing to EVM addresses",
	Long: `Validates 20-byte hex addresses (with or without 0x, any case) and prints
them with EIP-55 mixed-case checksum applied.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecksum(appUI, args)
	},
}

func runChecksum(u ui.UI, args []string) error {
	return forEachInput(u, args, func(input string) (string, error) {
		addr, err := checksum.Checksum(input)
		if err != nil {
			return "", err
		}
		return evmText(addr), nil
	}, func(input, result string) {
		if mixedCase(input) && !checksum.IsChecksummed(input) {
			u.Warn("%s is mixed-case but does not match its EIP-55 checksum, double check where it came from", input)
		}
		u.Success("%s", result)
	})
}

func mixedCase(input string) bool {
	raw := common.Strip0x(input)
	return strings.ToLower(raw) != raw && strings.ToUpper(raw) != raw
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}
