package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rows := [][]string{}
		for _, n := range networks.GetSupportedNetworks() {
			invoker, err := deployments.GetInvokerAddress(n)
			if err != nil {
				invoker = appUI.Style(ui.Missing("not deployed"))
			}
			kTokens := []string{}
			for _, st := range deployments.SyntheticTokens(n) {
				kTokens = append(kTokens, st.Underlying.Symbol())
			}
			rows = append(rows, []string{
				n.Name(),
				fmt.Sprintf("%d", n.ChainID()),
				strings.Join(n.AlternativeNames(), ", "),
				invoker,
				strings.Join(kTokens, ", "),
			})
		}
		appUI.Section("Supported networks")
		appUI.Table([]string{"Name", "Chain ID", "Alternative names", "Invoker", "kTokens"}, rows)
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the networks kingmaker supports",
	Long:  ``,
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
