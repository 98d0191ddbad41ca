package addrbook

import (
	"fmt"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
	"github.com/kingmaker-labs/kingmaker-go/deployments"
	"github.com/kingmaker-labs/kingmaker-go/networks"
)

// Default resolves the Kingmaker contracts deployed on one network: its
// invoker and its kTokens.
type Default struct {
	names Map
}

// NewDefault returns a Default resolver for network.
func NewDefault(network networks.Network) AddressResolver {
	names := Map{}
	if invoker, err := deployments.GetInvokerAddress(network); err == nil {
		names[kmcommon.NormalizeAddress(invoker)] = "Kingmaker invoker"
	}
	for _, st := range deployments.SyntheticTokens(network) {
		names[kmcommon.NormalizeAddress(st.Address)] = fmt.Sprintf("k%s", st.Underlying.Symbol())
	}
	return Default{names: names}
}

// Resolve returns the address in its canonical form along with its name.
func (r Default) Resolve(addr string) Address {
	normalized, err := kmcommon.ValidateAddress(addr)
	if err != nil {
		return Address{Address: addr, Desc: Unknown}
	}
	resolved := r.names.Resolve(normalized)
	if checksummed, err := kmcommon.ChecksumAddress(normalized); err == nil {
		resolved.Address = checksummed
	}
	return resolved
}
