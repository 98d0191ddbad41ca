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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingmaker-labs/kingmaker-go/config"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kingmaker",
	Short: "Look up Kingmaker contract addresses and prepare invocations",
	Long: fmt.Sprintf(`kingmaker resolves the addresses of the Kingmaker contracts on every
supported network and prepares invocations for them:

	1. It shows the invoker contract of a network.

	2. It maps underlying tokens to their kTokens and back.

	3. It normalizes addresses and amounts the way the SDK does.

	4. It builds unsigned invocations as JSON, ready to be signed by your
	wallet of choice.

Supported networks: %s.

The RPC node of each network is read from the following env vars:
%s
A YAML config file can override the node and the invoker address, see --config.`,
		strings.Join(networks.GetSupportedNetworkNames(), ", "),
		nodeVariablesHelp(),
	),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveNetwork,
}

func nodeVariablesHelp() string {
	lines := []string{}
	for i, n := range networks.GetSupportedNetworks() {
		lines = append(lines, fmt.Sprintf("\t%d. For %s: %s\n", i+1, n.Name(), n.NodeVariableName()))
	}
	return strings.Join(lines, "")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&config.Network, "network", "k", "mainnet",
		fmt.Sprintf("ethereum network. Valid values: %s.", strings.Join(networks.GetSupportedNetworkNames(), ", ")),
	)
	rootCmd.PersistentFlags().StringVarP(
		&config.ConfigFile, "config", "c", "",
		"YAML config file overriding the network node and the invoker address",
	)
	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false, "print debug information")
}
