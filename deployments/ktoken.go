package deployments

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/networks"
	"github.com/kingmaker-labs/kingmaker-go/tokens"
)

var ErrSyntheticNotFound = errors.New("ktoken not deployed")

// kTokenLiterals is the single source of truth for kToken addresses. The
// reverse table is derived from it.
var kTokenLiterals = map[networks.Network]map[tokens.Token]string{
	networks.Ropsten: {
		tokens.USDC: "0x3380746b6D42f92A1C1EA61a0f80166d1f0c700F",
	},
}

var kTokens = newKTokenTable(kTokenLiterals)

// SyntheticToken is one kToken deployment.
type SyntheticToken struct {
	Network    networks.Network
	Underlying tokens.Token
	Address    string
}

type kTokenTable struct {
	forward map[networks.Network]map[tokens.Token]deployedAddress
	reverse map[networks.Network]map[common.Address]tokens.Token
}

// newKTokenTable builds the forward table from literals and inverts every
// inner map into the reverse table. Two tokens sharing one kToken address
// on the same network would break the inversion, so it panics.
func newKTokenTable(literals map[networks.Network]map[tokens.Token]string) *kTokenTable {
	result := &kTokenTable{
		forward: map[networks.Network]map[tokens.Token]deployedAddress{},
		reverse: map[networks.Network]map[common.Address]tokens.Token{},
	}
	for network, byToken := range literals {
		if !network.IsValid() {
			panic(fmt.Errorf("ktokens registered for unsupported network %d", uint64(network)))
		}
		forward := map[tokens.Token]deployedAddress{}
		reverse := map[common.Address]tokens.Token{}
		for token, literal := range byToken {
			if !token.IsValid() {
				panic(fmt.Errorf("ktoken registered for unsupported token '%s' on %s", token, network))
			}
			deployed := mustParseDeployedAddress(literal)
			if other, found := reverse[deployed.address]; found {
				panic(fmt.Errorf(
					"ktoken %s on %s is registered for both %s and %s",
					literal, network, other, token,
				))
			}
			forward[token] = deployed
			reverse[deployed.address] = token
		}
		result.forward[network] = forward
		result.reverse[network] = reverse
	}
	return result
}

func (t *kTokenTable) address(network networks.Network, token tokens.Token) (string, error) {
	res, found := t.forward[network][token]
	if !found {
		return "", fmt.Errorf("%s on network '%s': %w", token, network, ErrSyntheticNotFound)
	}
	return res.literal, nil
}

func (t *kTokenTable) underlying(network networks.Network, address string) (tokens.Token, error) {
	addr, err := kmcommon.HexToAddress(address)
	if err != nil {
		return "", err
	}
	res, found := t.reverse[network][addr]
	if !found {
		return "", fmt.Errorf("%s on network '%s': %w", address, network, ErrSyntheticNotFound)
	}
	return res, nil
}

func (t *kTokenTable) list(network networks.Network) []SyntheticToken {
	result := []SyntheticToken{}
	for _, token := range tokens.All() {
		if deployed, found := t.forward[network][token]; found {
			result = append(result, SyntheticToken{
				Network:    network,
				Underlying: token,
				Address:    deployed.literal,
			})
		}
	}
	return result
}

// GetSyntheticAddress returns the address of the kToken wrapping token on
// network, exactly as recorded.
func GetSyntheticAddress(network networks.Network, token tokens.Token) (string, error) {
	return kTokens.address(network, token)
}

// ResolveUnderlyingToken returns the token wrapped by the kToken at address
// on network. address may be given in any case, with or without 0x; a
// malformed one fails with common.ErrMalformedAddress.
func ResolveUnderlyingToken(network networks.Network, address string) (tokens.Token, error) {
	return kTokens.underlying(network, address)
}

// SyntheticTokens lists the kTokens deployed on network in token order.
func SyntheticTokens(network networks.Network) []SyntheticToken {
	return kTokens.list(network)
}
