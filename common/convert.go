package common

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/kingmaker-labs/kingmaker-go/tokens"
)

// ParseTokenAmount parses the "<amount> <symbol>" form, e.g. "1.5 USDC".
func ParseTokenAmount(str string) (TokenAmount, error) {
	parts := strings.Fields(str)
	if len(parts) != 2 {
		return TokenAmount{}, fmt.Errorf("token amount must look like '1.5 USDC', got '%s'", str)
	}
	token, err := tokens.ParseToken(parts[1])
	if err != nil {
		return TokenAmount{}, err
	}
	amount := NewNumberString(parts[0])
	if _, err := NormalizeNumber(amount); err != nil {
		return TokenAmount{}, err
	}
	return TokenAmount{Token: token, Amount: amount}, nil
}

// ParseValue converts user input into base units. A single token is read
// as an integer (decimal or hex); "<amount> <symbol>" is scaled by the
// token's decimals.
func ParseValue(str string) (*uint256.Int, error) {
	str = strings.TrimSpace(str)
	if len(strings.Fields(str)) <= 1 {
		return ParseInteger(str)
	}
	amount, err := ParseTokenAmount(str)
	if err != nil {
		return nil, err
	}
	return amount.BaseUnits()
}
