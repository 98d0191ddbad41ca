// Package deployments holds the addresses of the Kingmaker contracts on
// every supported network: one invoker per network and one kToken per
// (network, underlying token) pair.
//
// The tables are built once during package initialization from literal
// data and are never mutated afterwards, so every accessor is safe for
// concurrent use. The underlying maps are never handed out; accessors that
// return collections return copies.
package deployments

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
)

// deployedAddress keeps the literal as written in the source table along
// with its parsed 20-byte value. Lookups compare parsed values so the case
// of a caller supplied address never matters.
type deployedAddress struct {
	literal string
	address common.Address
}

func mustParseDeployedAddress(literal string) deployedAddress {
	addr, err := kmcommon.HexToAddress(literal)
	if err != nil {
		panic(fmt.Errorf("invalid deployment address literal: %w", err))
	}
	return deployedAddress{literal: literal, address: addr}
}
