package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrbridge/precompile"
	"github.com/tranvictor/addrbridge/ui"
)

type assetAddress struct {
	AssetID uint32 `json:"asset_id"`
	Address string `json:"address"`
}

var assetCmd = &cobra.Command{
	Use:   "asset [asset-id...]",
	Short: "Derive the ERC-20 precompile address of pallet-assets ids",
	Long: `Each asset id must be a base-10 integer between 0 and 4294967295. The
precompile address is the id as 4 big-endian bytes, 12 zero bytes and the
pallet marker 0x01200000, with EIP-55 casing applied.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsset(appUI, args)
	},
}

func runAsset(u ui.UI, args []string) error {
	return forEachInput(u, args, func(input string) (assetAddress, error) {
		id, err := precompile.ParseAssetID(input)
		if err != nil {
			return assetAddress{}, err
		}
		return assetAddress{AssetID: id, Address: evmText(precompile.AssetIDToAddress(id))}, nil
	}, func(_ string, r assetAddress) {
		u.KeyValue([][2]string{
			{"Asset", strconv.FormatUint(uint64(r.AssetID), 10)},
			{"Precompile", u.Style(ui.StyledText{Text: r.Address, Severity: ui.SeveritySuccess})},
		})
	})
}

func init() {
	rootCmd.AddCommand(assetCmd)
}
