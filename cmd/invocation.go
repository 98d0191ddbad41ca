package cmd

import (
	"encoding/json"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/config"
	"github.com/kingmaker-labs/kingmaker-go/networks"
)

var invocationCmd = &cobra.Command{
	Use:   "invocation",
	Short: "Build an unsigned invocation and print it as JSON",
	Long: `--to is an address or a token symbol standing for its kToken on the selected
network. It defaults to the network's invoker.

--value is in wei, either decimal or 0x hex, or an amount with a token symbol
like "1.5 ETH" which is scaled by the token decimals.

--data is the 0x prefixed calldata.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		network := networks.CurrentNetwork()
		to, err := resolveTarget(config.To, network)
		if err != nil {
			return err
		}

		value := uint256.NewInt(0)
		if config.Value != "" {
			value, err = kmcommon.ParseValue(config.Value)
			if err != nil {
				return err
			}
		}

		invocation, err := kmcommon.NewInvocation(to, kmcommon.NewFixed(value), config.Data)
		if err != nil {
			return err
		}
		DebugPrintf("invocation on %s, value %s\n", network, kmcommon.ReadableNumber(value.Dec()))

		appUI.Critical("Review the invocation before signing it:")
		encoder := json.NewEncoder(appUI.Indent().Writer())
		encoder.SetIndent("", "  ")
		return encoder.Encode(invocation)
	},
}

func init() {
	invocationCmd.Flags().StringVarP(&config.To, "to", "t", "", "target address or token symbol, defaults to the invoker")
	invocationCmd.Flags().StringVarP(&config.Value, "value", "v", "", "value in wei or '<amount> <token>'")
	invocationCmd.Flags().StringVarP(&config.Data, "data", "d", "0x", "calldata")
	rootCmd.AddCommand(invocationCmd)
}
