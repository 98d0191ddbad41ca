package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/config"
	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/tokens"
)

func DebugPrintf(format string, a ...any) {
	if config.Debug {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

func resolveNetwork(cmd *cobra.Command, args []string) error {
	n, err := networks.SetNetwork(config.Network)
	if err != nil {
		suggestions := networks.SuggestNetworkNames(config.Network)
		if len(suggestions) > 0 {
			return fmt.Errorf("%w. Did you mean: %s?", err, strings.Join(suggestions, ", "))
		}
		return fmt.Errorf(
			"%w. Supported networks: %s",
			err, strings.Join(networks.GetSupportedNetworkNames(), ", "),
		)
	}
	DebugPrintf("network: %s (chain id %d)\n", n.Name(), n.ChainID())
	return nil
}

func parseToken(symbol string) (tokens.Token, error) {
	token, err := tokens.ParseToken(symbol)
	if err != nil {
		suggestions := []string{}
		for _, t := range tokens.SuggestTokens(symbol) {
			suggestions = append(suggestions, t.Symbol())
		}
		if len(suggestions) > 0 {
			return "", fmt.Errorf("%w. Did you mean: %s?", err, strings.Join(suggestions, ", "))
		}
		return "", err
	}
	return token, nil
}

func networkLabel(n networks.Network) string {
	return fmt.Sprintf("%s (chain id %d)", n.Name(), n.ChainID())
}

// resolveTarget interprets the target of an invocation: an address, a token
// symbol standing for its kToken, or empty for the invoker.
func resolveTarget(target string, network networks.Network) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		cfg, err := config.Resolve(network, config.ConfigFile)
		if err != nil {
			return "", err
		}
		DebugPrintf("target defaults to the invoker %s\n", cfg.InvokerAddress)
		return cfg.InvokerAddress, nil
	}
	if addr, err := kmcommon.ValidateAddress(target); err == nil {
		return addr, nil
	}
	token, err := tokens.ParseToken(target)
	if err != nil {
		return "", fmt.Errorf("'%s' is neither an address nor a token symbol", target)
	}
	return deployments.GetSyntheticAddress(network, token)
}
