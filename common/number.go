package common

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/holiman/uint256"
)

// NumberKind tags the representation held by an AnyNumber.
type NumberKind uint8

const (
	NoKind NumberKind = iota
	DecimalKind
	FixedKind
	FloatKind
	StringKind
)

func (k NumberKind) String() string {
	switch k {
	case DecimalKind:
		return "decimal"
	case FixedKind:
		return "uint256"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	default:
		return "none"
	}
}

// AnyNumber is one of the numeric representations accepted across the SDK:
// an arbitrary precision decimal, a 256-bit unsigned integer, a float64 or
// a numeric string. Build one with NewDecimal, NewFixed, NewFloat or
// NewNumberString and convert it with NormalizeNumber.
//
// The zero value holds no number.
type AnyNumber struct {
	kind  NumberKind
	dec   *apd.Decimal
	fixed *uint256.Int
	float float64
	str   string
}

func NewDecimal(d *apd.Decimal) AnyNumber {
	return AnyNumber{kind: DecimalKind, dec: d}
}

func NewFixed(x *uint256.Int) AnyNumber {
	return AnyNumber{kind: FixedKind, fixed: x}
}

func NewFloat(f float64) AnyNumber {
	return AnyNumber{kind: FloatKind, float: f}
}

func NewNumberString(s string) AnyNumber {
	return AnyNumber{kind: StringKind, str: s}
}

func (n AnyNumber) Kind() NumberKind {
	return n.kind
}

func (n AnyNumber) IsZeroValue() bool {
	return n.kind == NoKind
}

// String renders the number the way it was given, without normalizing it.
func (n AnyNumber) String() string {
	switch n.kind {
	case DecimalKind:
		if n.dec == nil {
			return ""
		}
		return n.dec.Text('f')
	case FixedKind:
		if n.fixed == nil {
			return ""
		}
		return n.fixed.Dec()
	case FloatKind:
		return strconv.FormatFloat(n.float, 'f', -1, 64)
	case StringKind:
		return n.str
	default:
		return ""
	}
}

// MarshalJSON writes the number as a JSON string so no precision is lost
// by consumers parsing JSON numbers as float64.
func (n AnyNumber) MarshalJSON() ([]byte, error) {
	if n.kind == NoKind {
		return []byte("null"), nil
	}
	return json.Marshal(n.String())
}

// UnmarshalJSON accepts a JSON string or a JSON number literal. Both are
// kept verbatim as a numeric string.
func (n *AnyNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = AnyNumber{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NewNumberString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NewNumberString(num.String())
	return nil
}
