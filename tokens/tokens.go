// Package tokens lists the underlying assets the Kingmaker protocol wraps
// into kTokens.
package tokens

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Token is an underlying asset symbol recognized by the protocol.
type Token string

const (
	ETH  Token = "ETH"
	USDC Token = "USDC"
	DAI  Token = "DAI"
)

var ErrTokenNotFound = fmt.Errorf("token not found")

var decimals = map[Token]uint64{
	ETH:  18,
	USDC: 6,
	DAI:  18,
}

var ordered = []Token{ETH, USDC, DAI}

func (t Token) Symbol() string {
	return string(t)
}

func (t Token) String() string {
	return string(t)
}

// Decimals is the number of decimal digits of the token's base unit.
func (t Token) Decimals() uint64 {
	return decimals[t]
}

func (t Token) IsValid() bool {
	_, found := decimals[t]
	return found
}

// All returns every supported token in a stable order.
func All() []Token {
	return append([]Token{}, ordered...)
}

// ParseToken resolves a symbol case insensitively.
func ParseToken(symbol string) (Token, error) {
	t := Token(strings.ToUpper(strings.TrimSpace(symbol)))
	if !t.IsValid() {
		return "", fmt.Errorf("token '%s': %w", symbol, ErrTokenNotFound)
	}
	return t, nil
}

type tokenSource []Token

func (s tokenSource) Len() int {
	return len(s)
}

func (s tokenSource) String(i int) string {
	return string(s[i])
}

// SuggestTokens returns tokens whose symbol fuzzily matches input.
func SuggestTokens(input string) []Token {
	matches := fuzzy.FindFrom(strings.ToUpper(strings.TrimSpace(input)), tokenSource(ordered))
	result := []Token{}
	for _, m := range matches {
		result = append(result, ordered[m.Index])
	}
	return result
}
