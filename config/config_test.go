package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/networks"
)

func TestNew(t *testing.T) {
	t.Setenv(networks.Mainnet.NodeVariableName(), "https://node.example.org")

	cfg, err := New(networks.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, &KingmakerConfig{
		InvokerAddress: "0x06d1f34fd7C055aE5CA39aa8c6a8E10100a45c01",
		Network: NetworkConfig{
			Name:    "mainnet",
			ChainID: 1,
			NodeURL: "https://node.example.org",
		},
	}, cfg)
}

func TestNewWithoutInvoker(t *testing.T) {
	_, err := New(networks.Kovan)
	require.Error(t, err)
	assert.True(t, IsNotDeployed(err))

	_, err = New(networks.Network(56))
	assert.True(t, errors.Is(err, networks.ErrNetworkNotFound))
}

func TestParseFillsDefaults(t *testing.T) {
	t.Setenv(networks.Mainnet.NodeVariableName(), "https://env.example.org")

	cfg, err := Parse([]byte("network:\n  name: Ethereum\n"))
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.Network.Name)
	assert.Equal(t, uint64(1), cfg.Network.ChainID)
	assert.Equal(t, "https://env.example.org", cfg.Network.NodeURL)
	assert.Equal(t, "0x06d1f34fd7C055aE5CA39aa8c6a8E10100a45c01", cfg.InvokerAddress)
}

func TestParseExplicitValues(t *testing.T) {
	cfg, err := Parse([]byte(`
network:
  name: kovan
  chain_id: 42
  node_url: https://kovan.example.org
invoker_address: "0x00000000000000000000000000000000000000aa"
`))
	require.NoError(t, err)
	assert.Equal(t, "https://kovan.example.org", cfg.Network.NodeURL)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", cfg.InvokerAddress)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte("network:\n  name: bsc\n"))
	assert.True(t, errors.Is(err, networks.ErrNetworkNotFound))

	_, err = Parse([]byte("network:\n  name: mainnet\n  chain_id: 3\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("network:\n  name: kovan\n"))
	assert.True(t, IsNotDeployed(err))

	_, err = Parse([]byte("network:\n  name: kovan\ninvoker_address: \"0x12\"\n"))
	assert.True(t, errors.Is(err, kmcommon.ErrMalformedAddress))

	_, err = Parse([]byte("network: [\n"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve(networks.Mainnet, "")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.Network.Name)

	path := filepath.Join(t.TempDir(), "kingmaker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
network:
  name: ropsten
invoker_address: "0x00000000000000000000000000000000000000bb"
`), 0644))

	cfg, err = Resolve(networks.Ropsten, path)
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000000bb", cfg.InvokerAddress)

	_, err = Resolve(networks.Mainnet, path)
	assert.Error(t, err)

	_, err = Resolve(networks.Mainnet, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
