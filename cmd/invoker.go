package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingmaker-labs/kingmaker-go/config"
	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/ui"
)

var invokerCmd = &cobra.Command{
	Use:   "invoker",
	Short: "Show the invoker contract of the selected network",
	Long:  `The invoker relays prepared invocations to their target contracts. There is one per network.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		network := networks.CurrentNetwork()
		cfg, err := config.Resolve(network, config.ConfigFile)
		if err != nil {
			if config.IsNotDeployed(err) {
				deployed := []string{}
				for _, n := range deployments.InvokerNetworks() {
					deployed = append(deployed, n.Name())
				}
				appUI.Warn("Kingmaker has no invoker on %s. Invokers are deployed on: %s.", network, strings.Join(deployed, ", "))
			}
			return err
		}

		node := cfg.Network.NodeURL
		if node == "" {
			node = appUI.Style(ui.Missing("not set, export " + network.NodeVariableName()))
		}
		appUI.KeyValue([][2]string{
			{"Network", networkLabel(network)},
			{"Invoker", appUI.Style(ui.Found(cfg.InvokerAddress))},
			{"Node", node},
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokerCmd)
}
