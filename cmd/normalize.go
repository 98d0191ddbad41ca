package cmd

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/config"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/util/addrbook"
)

var normalizeAddressCmd = &cobra.Command{
	Use:   "address ADDRESS",
	Short: "Lower-case ADDRESS and prefix it with 0x",
	Long: `Without --strict any input is accepted and transformed, the same way the SDK
does before comparing addresses. With --strict a malformed address is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		normalized := kmcommon.NormalizeAddress(input)
		checksummed, err := kmcommon.ChecksumAddress(input)
		if err != nil && config.Strict {
			return err
		}

		rows := [][2]string{
			{"Input", input},
			{"Normalized", normalized},
		}
		if err == nil {
			rows = append(rows,
				[2]string{"Checksummed", checksummed},
				[2]string{"Known as", addrbook.NewDefault(networks.CurrentNetwork()).Resolve(input).Desc},
			)
		}
		appUI.KeyValue(rows)
		if err != nil {
			appUI.Warn("%s is not a well-formed address.", input)
		}
		return nil
	},
}

var normalizeNumberCmd = &cobra.Command{
	Use:   "number VALUE",
	Short: "Convert VALUE to its canonical decimal and uint256 forms",
	Long: `VALUE is a decimal number, an exponent form like 1e18, or an amount with
a token symbol like "1.5 USDC" which is scaled by the token decimals. --decimals
scales a bare number the same way.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		d, decimals, symbol, err := parseNumberInput(input)
		if err != nil {
			return err
		}
		scaled, err := kmcommon.ScaleUp(d, decimals)
		if err != nil {
			return err
		}
		DebugPrintf("%s scaled by %d decimals: %s\n", input, decimals, scaled.String())

		fixed, err := kmcommon.ToFixedWidth(scaled)
		if err != nil {
			appUI.KeyValue([][2]string{
				{"Input", input},
				{"Decimal", scaled.String()},
			})
			appUI.Warn("Not representable as uint256: %s", err)
			return nil
		}
		rows := [][2]string{
			{"Input", input},
			{"Decimal", scaled.Text('f')},
			{"uint256", fixed.Dec()},
			{"Hex", fixed.Hex()},
			{"Readable", kmcommon.ReadableNumber(fixed.Dec())},
		}
		if symbol != "" {
			amount, err := kmcommon.VerboseTokenAmount(fixed, decimals, symbol)
			if err != nil {
				return err
			}
			rows = append(rows, [2]string{"Amount", amount})
		}
		appUI.KeyValue(rows)
		return nil
	},
}

// parseNumberInput returns the number, the decimals to scale it by and the
// token symbol when one was given.
func parseNumberInput(input string) (*apd.Decimal, uint64, string, error) {
	if len(strings.Fields(input)) > 1 {
		amount, err := kmcommon.ParseTokenAmount(input)
		if err != nil {
			return nil, 0, "", err
		}
		d, err := kmcommon.NormalizeNumber(amount.Amount)
		if err != nil {
			return nil, 0, "", err
		}
		return d, amount.Token.Decimals(), amount.Token.Symbol(), nil
	}
	d, err := kmcommon.NormalizeNumber(kmcommon.NewNumberString(input))
	if err != nil {
		return nil, 0, "", fmt.Errorf("invalid number: %w", err)
	}
	return d, config.Decimals, "", nil
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize addresses and numbers the way the SDK does",
	Long:  ``,
}

func init() {
	normalizeAddressCmd.Flags().BoolVar(&config.Strict, "strict", false, "fail on malformed addresses")
	normalizeNumberCmd.Flags().Uint64VarP(&config.Decimals, "decimals", "d", 0, "number of decimals to scale a bare number by")

	normalizeCmd.AddCommand(normalizeAddressCmd)
	normalizeCmd.AddCommand(normalizeNumberCmd)
	rootCmd.AddCommand(normalizeCmd)
}
