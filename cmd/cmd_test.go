package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/config"
	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/tokens"
	"github.com/kingmaker-labs/kingmaker-go/ui"
)

// run executes the root command with args against a fresh RecordingUI.
// Flag variables are reset first since cobra keeps them between runs.
func run(t *testing.T, args ...string) (*ui.RecordingUI, error) {
	t.Helper()
	config.Network = "mainnet"
	config.ConfigFile = ""
	config.Debug = false
	config.Strict = false
	config.Decimals = 0
	config.To = ""
	config.Value = ""
	config.Data = "0x"

	rec := ui.NewRecordingUI()
	previous := appUI
	appUI = rec
	t.Cleanup(func() { appUI = previous })

	rootCmd.SetArgs(args)
	return rec, rootCmd.Execute()
}

type jsonInvocation struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

func decodeInvocation(t *testing.T, rec *ui.RecordingUI) jsonInvocation {
	t.Helper()
	var result jsonInvocation
	require.NoError(t, json.Unmarshal([]byte(rec.Output()), &result))
	return result
}

func TestInvokerCmd(t *testing.T) {
	rec, err := run(t, "invoker", "-k", "mainnet")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Network | mainnet (chain id 1)")
	assert.Contains(t, rec.KeyValueRows(), "Invoker | 0x06d1f34fd7C055aE5CA39aa8c6a8E10100a45c01")
}

func TestInvokerCmdNotDeployed(t *testing.T) {
	rec, err := run(t, "invoker", "--network", "kovan")
	require.Error(t, err)
	assert.True(t, errors.Is(err, deployments.ErrInvokerNotFound))
	assert.True(t, rec.HasMessage("no invoker on kovan"))
}

func TestInvokerCmdWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kingmaker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
network:
  name: goerli
  node_url: https://goerli.example.org
invoker_address: "0x00000000000000000000000000000000000000aa"
`), 0644))

	rec, err := run(t, "invoker", "-k", "goerli", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Invoker | 0x00000000000000000000000000000000000000aa")
	assert.Contains(t, rec.KeyValueRows(), "Node | https://goerli.example.org")
}

func TestUnknownNetworkSuggests(t *testing.T) {
	_, err := run(t, "invoker", "-k", "mainet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, networks.ErrNetworkNotFound))
	assert.Contains(t, err.Error(), "Did you mean: mainnet")
}

func TestKTokenAddressCmd(t *testing.T) {
	rec, err := run(t, "ktoken", "address", "usdc", "-k", "ropsten")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "kToken | 0x3380746b6D42f92A1C1EA61a0f80166d1f0c700F")

	_, err = run(t, "ktoken", "address", "usdc", "-k", "mainnet")
	assert.True(t, errors.Is(err, deployments.ErrSyntheticNotFound))

	_, err = run(t, "ktoken", "address", "usd", "-k", "ropsten")
	assert.True(t, errors.Is(err, tokens.ErrTokenNotFound))
	assert.Contains(t, err.Error(), "Did you mean: USDC")
}

func TestKTokenResolveCmd(t *testing.T) {
	rec, err := run(t, "ktoken", "resolve", "0x3380746B6D42F92A1C1EA61A0F80166D1F0C700F", "-k", "ropsten")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Underlying | USDC")
	assert.Contains(t, rec.KeyValueRows(), "kToken | 0x3380746b6d42f92a1c1ea61a0f80166d1f0c700f")
	assert.Contains(t, rec.Entries(), ui.Entry{
		Method: "Success",
		Value:  "0x3380746b6d42f92a1c1ea61a0f80166d1f0c700f wraps USDC on ropsten.",
	})

	_, err = run(t, "ktoken", "resolve", "0x1234", "-k", "ropsten")
	assert.True(t, errors.Is(err, kmcommon.ErrMalformedAddress))
}

func TestKTokenListCmd(t *testing.T) {
	rec, err := run(t, "ktoken", "list", "-k", "ropsten")
	require.NoError(t, err)
	assert.Contains(t, rec.Entries(), ui.Entry{Method: "Section", Value: "kTokens on ropsten"})
	assert.Equal(t, []string{
		"Token | Decimals | kToken",
		"USDC | 6 | 0x3380746b6D42f92A1C1EA61a0f80166d1f0c700F",
	}, rec.TableRows())

	rec, err = run(t, "ktoken", "list", "-k", "kovan")
	require.NoError(t, err)
	assert.Empty(t, rec.TableRows())
	assert.True(t, rec.HasMessage("No kToken is deployed on kovan"))
	assert.NotContains(t, rec.Entries(), ui.Entry{Method: "Section", Value: "kTokens on kovan"})
}

func TestNetworkListCmd(t *testing.T) {
	rec, err := run(t, "network", "list")
	require.NoError(t, err)
	assert.Equal(t, ui.Entry{Method: "Section", Value: "Supported networks"}, rec.Entries()[0])
	rows := rec.TableRows()
	require.Len(t, rows, 6)
	assert.Equal(t, "Name | Chain ID | Alternative names | Invoker | kTokens", rows[0])
	assert.Equal(t, "mainnet | 1 | ethereum, homestead | 0x06d1f34fd7C055aE5CA39aa8c6a8E10100a45c01 | ", rows[1])
	assert.Equal(t, "ropsten | 3 |  | not deployed | USDC", rows[2])
}

func TestNormalizeAddressCmd(t *testing.T) {
	rec, err := run(t, "normalize", "address", "ABCDEF0123456789000000000000000000000001")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Normalized | 0xabcdef0123456789000000000000000000000001")
	assert.Contains(t, rec.KeyValueRows(), "Known as | unknown")

	rec, err = run(t, "normalize", "address", "0x06D1F34FD7C055AE5CA39AA8C6A8E10100A45C01")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Known as | Kingmaker invoker")

	rec, err = run(t, "normalize", "address", "0x12")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Normalized | 0x12")
	assert.True(t, rec.HasMessage("not a well-formed address"))

	_, err = run(t, "normalize", "address", "--strict", "0x12")
	assert.True(t, errors.Is(err, kmcommon.ErrMalformedAddress))
}

func TestNormalizeNumberCmd(t *testing.T) {
	rec, err := run(t, "normalize", "number", "1000")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Input | 1000",
		"Decimal | 1000",
		"uint256 | 1000",
		"Hex | 0x3e8",
		"Readable | 1000",
	}, rec.KeyValueRows())

	rec, err = run(t, "normalize", "number", "1.5", "USDC")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "uint256 | 1500000")
	assert.Contains(t, rec.KeyValueRows(), "Amount | 1500000 (1.5 USDC)")

	rec, err = run(t, "normalize", "number", "1.5", "--decimals", "6")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "uint256 | 1500000")

	rec, err = run(t, "normalize", "number", "1.5")
	require.NoError(t, err)
	assert.True(t, rec.HasMessage("not representable as uint256"))

	_, err = run(t, "normalize", "number", "abc")
	assert.Error(t, err)
}

func TestNormalizeNumberCmdHugeDecimals(t *testing.T) {
	for _, decimals := range []string{"4294967296", "4294967302"} {
		rec, err := run(t, "normalize", "number", "1", "--decimals", decimals)
		assert.True(t, errors.Is(err, kmcommon.ErrOverflow), "%s: %v", decimals, err)
		assert.Empty(t, rec.KeyValueRows())
	}

	rec, err := run(t, "normalize", "number", "1", "--decimals", "1000")
	require.NoError(t, err)
	assert.Contains(t, rec.KeyValueRows(), "Decimal | 1E+1000")
	assert.True(t, rec.HasMessage("not representable as uint256"))
}

func TestInvocationCmdDefaultsToInvoker(t *testing.T) {
	rec, err := run(t, "invocation", "-k", "mainnet", "--value", "1 eth", "--data", "0xa9059cbb")
	require.NoError(t, err)
	assert.Equal(t, jsonInvocation{
		To:    "0x06d1f34fd7c055ae5ca39aa8c6a8e10100a45c01",
		Value: "1000000000000000000",
		Data:  "0xa9059cbb",
	}, decodeInvocation(t, rec))
	assert.Contains(t, rec.Entries(), ui.Entry{Method: "Critical", Value: "Review the invocation before signing it:"})
}

func TestInvocationCmdTargetsKToken(t *testing.T) {
	rec, err := run(t, "invocation", "-k", "ropsten", "--to", "usdc", "--value", "0x3e8")
	require.NoError(t, err)
	assert.Equal(t, jsonInvocation{
		To:    "0x3380746b6d42f92a1c1ea61a0f80166d1f0c700f",
		Value: "1000",
		Data:  "0x",
	}, decodeInvocation(t, rec))
}

func TestInvocationCmdZeroPaddedHexValue(t *testing.T) {
	rec, err := run(t, "invocation", "-k", "mainnet", "--value", "0x0003e8")
	require.NoError(t, err)
	assert.Equal(t, "1000", decodeInvocation(t, rec).Value)
}

func TestInvocationCmdFailures(t *testing.T) {
	_, err := run(t, "invocation", "-k", "kovan")
	assert.True(t, errors.Is(err, deployments.ErrInvokerNotFound))

	_, err = run(t, "invocation", "--to", "nothing")
	assert.Error(t, err)

	_, err = run(t, "invocation", "--data", "0xzz")
	assert.Error(t, err)

	_, err = run(t, "invocation", "--value", "1.5")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	rec, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, []string{"Version: " + VERSION}, rec.InfoMessages())
}
