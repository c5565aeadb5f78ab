// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrbridge/config"
	"github.com/tranvictor/addrbridge/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "addrbridge",
	Short: "Convert addresses between EVM and Substrate (SS58) formats",
	Long: `addrbridge converts account addresses between the 20-byte EVM format and
the 32-byte SS58 format used by Substrate based chains.

	1. evm2sub pads an EVM address with twelve 0xEE bytes and encodes it as
	SS58 for the selected network. This direction is always reversible.

	2. sub2evm decodes an SS58 address. Accounts that were derived from an
	EVM address convert back exactly. Native accounts are mapped through
	keccak256 which is one-way: the result is for display only unless the
	account has been mapped on-chain, and addrbridge asks you to confirm
	before showing it.

	3. asset derives the ERC-20 precompile address of a pallet-assets id.

The network is selected with --network (see "addrbridge network list") or an
explicit --prefix. Custom networks can be stored in ~/.addrbridge/networks/.

Nothing here talks to a node: every command is a pure function of its input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "polkadot", "network whose SS58 prefix is used for encoding. See \"addrbridge network list\".")
	rootCmd.PersistentFlags().IntVarP(&config.Prefix, "prefix", "p", -1, "explicit SS58 prefix (0-16383), overrides --network")
	rootCmd.PersistentFlags().BoolVarP(&config.JSONOutput, "json", "j", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&config.AssumeYes, "yes", "y", false, "acknowledge one-way conversions without prompting")
	rootCmd.PersistentFlags().BoolVarP(&config.Lowercase, "lowercase", "l", false, "print EVM addresses in lowercase instead of EIP-55 casing")

	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", err)
		os.Exit(1)
	}
}
