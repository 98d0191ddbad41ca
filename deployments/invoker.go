package deployments

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kingmaker-labs/kingmaker-go/networks"
)

var ErrInvokerNotFound = errors.New("invoker not deployed")

var invokerLiterals = map[networks.Network]string{
	networks.Mainnet: "0x06d1f34fd7C055aE5CA39aa8c6a8E10100a45c01",
}

var invokers = newInvokerTable(invokerLiterals)

type invokerTable struct {
	byNetwork map[networks.Network]deployedAddress
	ordered   []networks.Network
}

func newInvokerTable(literals map[networks.Network]string) *invokerTable {
	result := &invokerTable{
		byNetwork: map[networks.Network]deployedAddress{},
	}
	for network, literal := range literals {
		if !network.IsValid() {
			panic(fmt.Errorf("invoker registered for unsupported network %d", uint64(network)))
		}
		result.byNetwork[network] = mustParseDeployedAddress(literal)
		result.ordered = append(result.ordered, network)
	}
	sort.Slice(result.ordered, func(i, j int) bool {
		return result.ordered[i] < result.ordered[j]
	})
	return result
}

func (t *invokerTable) get(network networks.Network) (deployedAddress, error) {
	res, found := t.byNetwork[network]
	if !found {
		return deployedAddress{}, fmt.Errorf("network '%s': %w", network, ErrInvokerNotFound)
	}
	return res, nil
}

// GetInvokerAddress returns the invoker address of network exactly as it
// is recorded. There is no fallback to another network.
func GetInvokerAddress(network networks.Network) (string, error) {
	res, err := invokers.get(network)
	if err != nil {
		return "", err
	}
	return res.literal, nil
}

// GetInvoker is GetInvokerAddress returning the parsed address.
func GetInvoker(network networks.Network) (common.Address, error) {
	res, err := invokers.get(network)
	if err != nil {
		return common.Address{}, err
	}
	return res.address, nil
}

// InvokerNetworks lists the networks having an invoker, by chain ID.
func InvokerNetworks() []networks.Network {
	return append([]networks.Network{}, invokers.ordered...)
}
