package deployments

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/tokens"
)

func TestGetInvokerAddressMainnet(t *testing.T) {
	addr, err := GetInvokerAddress(networks.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, "0x06d1f34fd7C055aE5CA39aa8c6a8E10100a45c01", addr)

	parsed, err := GetInvoker(networks.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(addr), strings.ToLower(parsed.Hex()))
}

func TestGetInvokerAddressMissing(t *testing.T) {
	for _, n := range append(networks.GetSupportedNetworks(), networks.Network(56)) {
		if _, found := invokerLiterals[n]; found {
			continue
		}
		addr, err := GetInvokerAddress(n)
		assert.Empty(t, addr)
		assert.True(t, errors.Is(err, ErrInvokerNotFound), n.String())

		_, err = GetInvoker(n)
		assert.True(t, errors.Is(err, ErrInvokerNotFound), n.String())
	}
}

func TestInvokerNetworks(t *testing.T) {
	assert.Equal(t, []networks.Network{networks.Mainnet}, InvokerNetworks())
}

func TestGetSyntheticAddressRopstenUSDC(t *testing.T) {
	addr, err := GetSyntheticAddress(networks.Ropsten, tokens.USDC)
	require.NoError(t, err)
	assert.Equal(t, "0x3380746b6D42f92A1C1EA61a0f80166d1f0c700F", addr)
}

func TestSyntheticRoundTrip(t *testing.T) {
	for network, byToken := range kTokenLiterals {
		for token := range byToken {
			addr, err := GetSyntheticAddress(network, token)
			require.NoError(t, err)

			got, err := ResolveUnderlyingToken(network, addr)
			require.NoError(t, err)
			assert.Equal(t, token, got)
		}
	}
}

func TestSyntheticAbsentPairs(t *testing.T) {
	for _, network := range networks.GetSupportedNetworks() {
		for _, token := range tokens.All() {
			if _, found := kTokenLiterals[network][token]; found {
				continue
			}
			_, err := GetSyntheticAddress(network, token)
			assert.True(t, errors.Is(err, ErrSyntheticNotFound), "%s %s", network, token)
		}
	}
}

func TestResolveUnderlyingTokenIgnoresCase(t *testing.T) {
	for _, input := range []string{
		"0x3380746b6d42f92a1c1ea61a0f80166d1f0c700f",
		"0x3380746B6D42F92A1C1EA61A0F80166D1F0C700F",
		"3380746b6D42f92A1C1EA61a0f80166d1f0c700F",
	} {
		got, err := ResolveUnderlyingToken(networks.Ropsten, input)
		require.NoError(t, err, input)
		assert.Equal(t, tokens.USDC, got)
	}
}

func TestResolveUnderlyingTokenFailures(t *testing.T) {
	_, err := ResolveUnderlyingToken(networks.Mainnet, "0x3380746b6D42f92A1C1EA61a0f80166d1f0c700F")
	assert.True(t, errors.Is(err, ErrSyntheticNotFound))

	_, err = ResolveUnderlyingToken(networks.Ropsten, "0x0000000000000000000000000000000000000001")
	assert.True(t, errors.Is(err, ErrSyntheticNotFound))

	_, err = ResolveUnderlyingToken(networks.Ropsten, "0x1234")
	assert.True(t, errors.Is(err, kmcommon.ErrMalformedAddress))
}

func TestSyntheticTokens(t *testing.T) {
	assert.Equal(t, []SyntheticToken{{
		Network:    networks.Ropsten,
		Underlying: tokens.USDC,
		Address:    "0x3380746b6D42f92A1C1EA61a0f80166d1f0c700F",
	}}, SyntheticTokens(networks.Ropsten))
	assert.Empty(t, SyntheticTokens(networks.Kovan))
}

var fixtureLiterals = map[networks.Network]map[tokens.Token]string{
	networks.Kovan: {
		tokens.ETH:  "0x00000000000000000000000000000000000000e1",
		tokens.USDC: "0x00000000000000000000000000000000000000C2",
	},
	networks.Rinkeby: {
		tokens.DAI: "0x00000000000000000000000000000000000000d3",
	},
}

func TestKTokenTableReverseIsComplete(t *testing.T) {
	table := newKTokenTable(fixtureLiterals)
	entries := 0
	for network, byToken := range fixtureLiterals {
		for token, literal := range byToken {
			addr, err := table.address(network, token)
			require.NoError(t, err)
			assert.Equal(t, literal, addr)

			got, err := table.underlying(network, addr)
			require.NoError(t, err)
			assert.Equal(t, token, got)
			entries++
		}
	}

	reverseEntries := 0
	for _, byAddress := range table.reverse {
		reverseEntries += len(byAddress)
	}
	assert.Equal(t, entries, reverseEntries)

	_, err := table.underlying(networks.Rinkeby, "0x00000000000000000000000000000000000000e1")
	assert.True(t, errors.Is(err, ErrSyntheticNotFound))
}

func TestKTokenTablePanicsOnSharedAddress(t *testing.T) {
	assert.Panics(t, func() {
		newKTokenTable(map[networks.Network]map[tokens.Token]string{
			networks.Kovan: {
				tokens.ETH: "0x00000000000000000000000000000000000000e1",
				tokens.DAI: "0x00000000000000000000000000000000000000E1",
			},
		})
	})
}

func TestTablesPanicOnBadLiterals(t *testing.T) {
	assert.Panics(t, func() {
		newKTokenTable(map[networks.Network]map[tokens.Token]string{
			networks.Kovan: {tokens.ETH: "0x1234"},
		})
	})
	assert.Panics(t, func() {
		newKTokenTable(map[networks.Network]map[tokens.Token]string{
			networks.Kovan: {"WBTC": "0x00000000000000000000000000000000000000e1"},
		})
	})
	assert.Panics(t, func() {
		newInvokerTable(map[networks.Network]string{networks.Network(56): "0x00000000000000000000000000000000000000e1"})
	})
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr, err := GetSyntheticAddress(networks.Ropsten, tokens.USDC)
			assert.NoError(t, err)
			token, err := ResolveUnderlyingToken(networks.Ropsten, addr)
			assert.NoError(t, err)
			assert.Equal(t, tokens.USDC, token)
			_, err = GetInvokerAddress(networks.Mainnet)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
