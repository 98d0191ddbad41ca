package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/kingmaker-labs/kingmaker-go/tokens"
)

// Invocation is a prepared, unsigned on-chain call. Value is in wei.
type Invocation struct {
	To    string    `json:"to"`
	Value AnyNumber `json:"value"`
	Data  string    `json:"data"`
}

// NewInvocation validates to and data and returns the Invocation with to in
// normalized form. An empty data is stored as "0x".
func NewInvocation(to string, value AnyNumber, data string) (Invocation, error) {
	addr, err := ValidateAddress(to)
	if err != nil {
		return Invocation{}, fmt.Errorf("invalid invocation target: %w", err)
	}
	if data == "" {
		data = "0x"
	}
	if _, err := hexutil.Decode(data); err != nil {
		return Invocation{}, fmt.Errorf("invalid invocation data '%s': %w", data, err)
	}
	if value.IsZeroValue() {
		value = NewFixed(uint256.NewInt(0))
	}
	result := Invocation{To: addr, Value: value, Data: data}
	if _, err := result.ValueWei(); err != nil {
		return Invocation{}, fmt.Errorf("invalid invocation value '%s': %w", value, err)
	}
	return result, nil
}

// ValueWei returns the value as a 256-bit integer.
func (i Invocation) ValueWei() (*uint256.Int, error) {
	if i.Value.IsZeroValue() {
		return uint256.NewInt(0), nil
	}
	d, err := NormalizeNumber(i.Value)
	if err != nil {
		return nil, err
	}
	return ToFixedWidth(d)
}

// Calldata decodes Data.
func (i Invocation) Calldata() ([]byte, error) {
	if i.Data == "" || i.Data == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(i.Data)
}

// Execution describes a call to a named contract. Value and Data are
// optional.
type Execution struct {
	Contract string     `json:"contract"`
	Value    *AnyNumber `json:"value,omitempty"`
	Data     *string    `json:"data,omitempty"`
}

// TokenAmount pairs a token with a quantity expressed in whole token units,
// e.g. 1.5 for 1.5 USDC.
type TokenAmount struct {
	Token  tokens.Token `json:"token"`
	Amount AnyNumber    `json:"amount"`
}

// BaseUnits converts the amount into the token's smallest unit.
func (t TokenAmount) BaseUnits() (*uint256.Int, error) {
	if !t.Token.IsValid() {
		return nil, fmt.Errorf("token '%s': %w", t.Token, tokens.ErrTokenNotFound)
	}
	return ToBaseUnits(t.Amount, t.Token.Decimals())
}

func (t TokenAmount) String() string {
	return fmt.Sprintf("%s %s", t.Amount, t.Token)
}
