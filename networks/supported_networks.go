package networks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

var globalSupportedNetworks = newSupportedNetworks()

var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks     map[string]Network
	networksByID map[uint64]Network
	ordered      []Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for _, network := range n.ordered {
		res = append(res, network.Name())
		res = append(res, network.AlternativeNames()...)
	}
	return res
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return 0, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return 0, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *networks {
	result := networks{
		networks:     map[string]Network{},
		networksByID: map[uint64]Network{},
	}
	for n := range networkInfos {
		result.ordered = append(result.ordered, n)
	}
	sort.Slice(result.ordered, func(i, j int) bool {
		return result.ordered[i] < result.ordered[j]
	})

	for _, n := range result.ordered {
		names := append([]string{n.Name()}, n.AlternativeNames()...)
		for _, name := range names {
			if _, found := result.networks[name]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", name),
				)
			}
			result.networks[name] = n
		}
		result.networksByID[n.ChainID()] = n
	}
	return &result
}

// GetSupportedNetworks returns every supported network ordered by chain ID.
func GetSupportedNetworks() []Network {
	return append([]Network{}, globalSupportedNetworks.ordered...)
}

// GetNetwork resolves a network by its name or one of its alternative
// names. Matching is case insensitive.
func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// SuggestNetworkNames returns at most 3 supported names that fuzzily match
// input, best match first.
func SuggestNetworkNames(input string) []string {
	names := GetSupportedNetworkNames()
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(input)), names)
	result := []string{}
	for i := 0; i < len(matches) && i < 3; i++ {
		result = append(result, matches[i].Str)
	}
	return result
}
