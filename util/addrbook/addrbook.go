// Package addrbook maps raw Ethereum addresses to human-readable names.
//
// Production code uses [Default], which knows every Kingmaker contract of
// one network. Tests inject [Map], a plain map resolving to deterministic
// names.
package addrbook

// Unknown is the description of an address no resolver knows.
const Unknown = "unknown"

// Address is a hex address with its description.
type Address struct {
	Address string
	Desc    string
}

// AddressResolver maps a raw hex address to a described Address.
//
// Contract: if the address is not known, Desc must be set to Unknown.
type AddressResolver interface {
	Resolve(addr string) Address
}
