package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/ui"
)

var listKTokenCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the kTokens deployed on the selected network",
	Long:  ``,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		network := networks.CurrentNetwork()
		deployed := deployments.SyntheticTokens(network)
		if len(deployed) == 0 {
			appUI.Warn("No kToken is deployed on %s.", network)
			return
		}
		rows := [][]string{}
		for _, st := range deployed {
			rows = append(rows, []string{
				st.Underlying.Symbol(),
				fmt.Sprintf("%d", st.Underlying.Decimals()),
				st.Address,
			})
		}
		appUI.Section(fmt.Sprintf("kTokens on %s", network))
		appUI.Table([]string{"Token", "Decimals", "kToken"}, rows)
	},
}

var kTokenAddressCmd = &cobra.Command{
	Use:   "address TOKEN",
	Short: "Show the kToken wrapping TOKEN on the selected network",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network := networks.CurrentNetwork()
		token, err := parseToken(args[0])
		if err != nil {
			return err
		}
		addr, err := deployments.GetSyntheticAddress(network, token)
		if err != nil {
			return err
		}
		appUI.KeyValue([][2]string{
			{"Network", networkLabel(network)},
			{"Token", token.Symbol()},
			{"kToken", appUI.Style(ui.Found(addr))},
		})
		return nil
	},
}

var kTokenResolveCmd = &cobra.Command{
	Use:   "resolve ADDRESS",
	Short: "Show the underlying token of the kToken at ADDRESS",
	Long:  `ADDRESS may be given in any case, with or without the 0x prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network := networks.CurrentNetwork()
		token, err := deployments.ResolveUnderlyingToken(network, args[0])
		if err != nil {
			return err
		}
		appUI.KeyValue([][2]string{
			{"Network", networkLabel(network)},
			{"kToken", kmcommon.NormalizeAddress(args[0])},
			{"Underlying", appUI.Style(ui.Found(token.Symbol()))},
			{"Decimals", fmt.Sprintf("%d", token.Decimals())},
		})
		appUI.Success("%s wraps %s on %s.", kmcommon.NormalizeAddress(args[0]), token, network)
		return nil
	},
}

var kTokenCmd = &cobra.Command{
	Use:   "ktoken",
	Short: "Map underlying tokens to their kTokens and back",
	Long:  ``,
}

func init() {
	kTokenCmd.AddCommand(listKTokenCmd)
	kTokenCmd.AddCommand(kTokenAddressCmd)
	kTokenCmd.AddCommand(kTokenResolveCmd)
	rootCmd.AddCommand(kTokenCmd)
}
