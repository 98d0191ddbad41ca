package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrMalformedAddress = errors.New("malformed address")

// NormalizeAddress lower-cases addr and prefixes it with 0x when missing.
// It never fails and performs no validation, use ValidateAddress for that.
func NormalizeAddress(addr string) string {
	result := strings.ToLower(addr)
	if !strings.HasPrefix(result, "0x") {
		result = "0x" + result
	}
	return result
}

// ValidateAddress normalizes addr and checks it is 20 bytes of hex.
func ValidateAddress(addr string) (string, error) {
	normalized := NormalizeAddress(strings.TrimSpace(addr))
	if !common.IsHexAddress(normalized) {
		return "", fmt.Errorf("'%s': %w", addr, ErrMalformedAddress)
	}
	return normalized, nil
}

// HexToAddress parses a validated address.
func HexToAddress(addr string) (common.Address, error) {
	normalized, err := ValidateAddress(addr)
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(normalized), nil
}

// ChecksumAddress renders addr in its EIP-55 mixed-case form.
func ChecksumAddress(addr string) (string, error) {
	a, err := HexToAddress(addr)
	if err != nil {
		return "", err
	}
	return a.Hex(), nil
}
