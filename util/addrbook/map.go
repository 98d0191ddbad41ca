package addrbook

import (
	kmcommon "github.com/kingmaker-labs/kingmaker-go/common"
)

// Map is a lightweight AddressResolver for tests. Keys are normalized
// addresses; anything not in the map resolves to Unknown.
//
//	r := addrbook.Map{
//	    "0x06d1f34fd7c055ae5ca39aa8c6a8e10100a45c01": "Kingmaker invoker",
//	}
type Map map[string]string

func (m Map) Resolve(addr string) Address {
	if desc, ok := m[kmcommon.NormalizeAddress(addr)]; ok {
		return Address{Address: addr, Desc: desc}
	}
	return Address{Address: addr, Desc: Unknown}
}
