package common

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ReadableNumber groups the digits of a base 10 integer string by three so
// long wei amounts can be read at a glance. Short values are returned as is.
// Example:
// - ReadableNumber("1000000") = "1000000 (1,000,000)"
func ReadableNumber(value string) string {
	if len(value) <= 4 {
		return value
	}

	groups := []string{}
	for end := len(value); end > 0; end -= 3 {
		start := end - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{value[start:end]}, groups...)
	}
	return fmt.Sprintf("%s (%s)", value, strings.Join(groups, ","))
}

// VerboseTokenAmount renders base units along with the whole token amount.
// Example:
// - VerboseTokenAmount(1500000, 6, "USDC") = "1500000 (1.5 USDC)"
func VerboseTokenAmount(baseUnits *uint256.Int, decimals uint64, symbol string) (string, error) {
	human, err := FormatUnits(baseUnits, decimals)
	if err != nil {
		return "", err
	}
	if symbol != "" {
		return fmt.Sprintf("%s (%s %s)", baseUnits.Dec(), human, symbol), nil
	}
	return fmt.Sprintf("%s (%s)", baseUnits.Dec(), human), nil
}
