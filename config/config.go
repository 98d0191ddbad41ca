package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
)

// CLI flags
var (
	Network    string
	ConfigFile string
	Debug      bool

	Strict   bool
	Decimals uint64

	To    string
	Value string
	Data  string
)

// NetworkConfig is the network specific part of a KingmakerConfig.
type NetworkConfig struct {
	Name    string `yaml:"name" json:"name"`
	ChainID uint64 `yaml:"chain_id" json:"chainId"`
	NodeURL string `yaml:"node_url" json:"nodeUrl"`
}

// KingmakerConfig bundles what a client needs to build invocations on one
// network.
type KingmakerConfig struct {
	InvokerAddress string        `yaml:"invoker_address" json:"invokerAddress"`
	Network        NetworkConfig `yaml:"network" json:"network"`
}

// New builds the configuration of network from the deployment tables. The
// node URL comes from the network's node env var.
func New(network networks.Network) (*KingmakerConfig, error) {
	if !network.IsValid() {
		return nil, fmt.Errorf("network id %d: %w", network.ChainID(), networks.ErrNetworkNotFound)
	}
	invoker, err := deployments.GetInvokerAddress(network)
	if err != nil {
		return nil, err
	}
	return &KingmakerConfig{
		InvokerAddress: invoker,
		Network: NetworkConfig{
			Name:    network.Name(),
			ChainID: network.ChainID(),
			NodeURL: network.NodeURL(),
		},
	}, nil
}

// LoadFile reads a YAML configuration. The network is resolved by name;
// a chain ID, when given, must match it. An absent invoker address is taken
// from the deployment tables and an absent node URL from the env.
//
// Example:
//
//	network:
//	  name: ropsten
//	  node_url: https://ropsten.example.org
//	invoker_address: 0x06d1f34fd7c055ae5ca39aa8c6a8e10100a45c01
func LoadFile(path string) (*KingmakerConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(content)
}

// Parse is LoadFile on in-memory YAML.
func Parse(content []byte) (*KingmakerConfig, error) {
	result := &KingmakerConfig{}
	if err := yaml.Unmarshal(content, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	network, err := networks.GetNetwork(result.Network.Name)
	if err != nil {
		return nil, err
	}
	if result.Network.ChainID != 0 && result.Network.ChainID != network.ChainID() {
		return nil, fmt.Errorf(
			"chain id %d doesn't match network '%s' (%d)",
			result.Network.ChainID, network.Name(), network.ChainID(),
		)
	}
	result.Network.Name = network.Name()
	result.Network.ChainID = network.ChainID()
	if result.Network.NodeURL == "" {
		result.Network.NodeURL = network.NodeURL()
	}

	if result.InvokerAddress == "" {
		result.InvokerAddress, err = deployments.GetInvokerAddress(network)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if _, err := kmcommon.ValidateAddress(result.InvokerAddress); err != nil {
		return nil, fmt.Errorf("invalid invoker_address: %w", err)
	}
	return result, nil
}

// Resolve returns the configuration for network, read from file when file
// is not empty. The file's network must then be network.
func Resolve(network networks.Network, file string) (*KingmakerConfig, error) {
	if file == "" {
		return New(network)
	}
	result, err := LoadFile(file)
	if err != nil {
		return nil, err
	}
	if result.Network.ChainID != network.ChainID() {
		return nil, fmt.Errorf(
			"config file is for network '%s' but '%s' is selected",
			result.Network.Name, network.Name(),
		)
	}
	return result, nil
}

// IsNotDeployed reports whether err means Kingmaker has no invoker on the
// requested network.
func IsNotDeployed(err error) bool {
	return errors.Is(err, deployments.ErrInvokerNotFound)
}
