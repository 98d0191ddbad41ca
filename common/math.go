package common

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// uint256 max is 78 decimal digits long
const maxFixedWidthDigits = 78

var (
	ErrNoValue     = errors.New("number has no value")
	ErrNonFinite   = errors.New("number is not finite")
	ErrNegative    = errors.New("number is negative")
	ErrNonIntegral = errors.New("number is not integral")
	ErrOverflow    = errors.New("number overflows 256 bits")
)

// NormalizeNumber converts any supported representation into the canonical
// decimal. A decimal input is returned as is, decimals are never mutated
// by this package. Fixed width integers go through their base 10 rendering
// so no precision is lost. Parse failures are returned unchanged apart from
// wrapping; no further validation happens here.
func NormalizeNumber(value AnyNumber) (*apd.Decimal, error) {
	switch value.kind {
	case DecimalKind:
		if value.dec == nil {
			return nil, ErrNoValue
		}
		return value.dec, nil
	case FixedKind:
		if value.fixed == nil {
			return nil, ErrNoValue
		}
		return FromFixedWidth(value.fixed), nil
	case FloatKind:
		d, err := new(apd.Decimal).SetFloat64(value.float)
		if err != nil {
			return nil, fmt.Errorf("couldn't convert %v to decimal: %w", value.float, err)
		}
		return d, nil
	case StringKind:
		d, _, err := apd.NewFromString(strings.TrimSpace(value.str))
		if err != nil {
			return nil, fmt.Errorf("couldn't parse '%s' to decimal: %w", value.str, err)
		}
		return d, nil
	}
	return nil, ErrNoValue
}

// FromFixedWidth converts a 256-bit integer into a decimal without loss.
func FromFixedWidth(x *uint256.Int) *apd.Decimal {
	d, _, err := apd.NewFromString(x.Dec())
	if err != nil {
		// Dec always renders plain base 10 digits
		panic(err)
	}
	return d
}

// ToFixedWidth converts a decimal into a 256-bit integer. Only finite,
// non-negative, integral values fitting in 256 bits are accepted; nothing
// is ever truncated.
func ToFixedWidth(d *apd.Decimal) (*uint256.Int, error) {
	if d == nil {
		return nil, ErrNoValue
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%s: %w", d.String(), ErrNonFinite)
	}
	if d.IsZero() {
		return uint256.NewInt(0), nil
	}
	if d.Negative {
		return nil, fmt.Errorf("%s: %w", d.String(), ErrNegative)
	}

	// digits left of the decimal point
	if d.NumDigits()+int64(d.Exponent) > maxFixedWidthDigits {
		return nil, fmt.Errorf("%s: %w", d.String(), ErrOverflow)
	}
	var reduced apd.Decimal
	reduced.Reduce(d)
	if reduced.Exponent < 0 {
		return nil, fmt.Errorf("%s: %w", d.String(), ErrNonIntegral)
	}

	result, err := uint256.FromDecimal(reduced.Text('f'))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.String(), ErrOverflow)
	}
	return result, nil
}

// ScaleUp returns d * 10^decimals as a new decimal, exactly. It fails with
// ErrOverflow when the resulting exponent doesn't fit in 32 bits.
// Example:
// - ScaleUp(1.5, 6) = 1500000
func ScaleUp(d *apd.Decimal, decimals uint64) (*apd.Decimal, error) {
	if d == nil {
		return nil, ErrNoValue
	}
	if decimals > math.MaxInt32 || int64(d.Exponent)+int64(decimals) > math.MaxInt32 {
		return nil, fmt.Errorf("%s scaled by %d decimals: %w", d.String(), decimals, ErrOverflow)
	}
	result := new(apd.Decimal).Set(d)
	result.Exponent += int32(decimals)
	return result, nil
}

// ToBaseUnits converts an amount expressed in whole token units into base
// units of a token with the given number of decimals.
// Example:
// - ToBaseUnits("1.234", 4) = 12340
// - ToBaseUnits("0.00001", 4) fails, the amount is smaller than a base unit
func ToBaseUnits(value AnyNumber, decimals uint64) (*uint256.Int, error) {
	d, err := NormalizeNumber(value)
	if err != nil {
		return nil, err
	}
	scaled, err := ScaleUp(d, decimals)
	if err != nil {
		return nil, err
	}
	return ToFixedWidth(scaled)
}

// FormatUnits renders base units as whole token units.
// Example:
// - FormatUnits(1100, 3) = "1.1"
// - FormatUnits(1100, 2) = "11"
// - FormatUnits(1100, 5) = "0.011"
func FormatUnits(x *uint256.Int, decimals uint64) (string, error) {
	if decimals > math.MaxInt32 {
		return "", fmt.Errorf("%s with %d decimals: %w", x.Dec(), decimals, ErrOverflow)
	}
	d := FromFixedWidth(x)
	d.Exponent -= int32(decimals)
	s := d.Text('f')
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s, nil
}

// ParseInteger parses a base 10 or 0x prefixed hex integer.
func ParseInteger(str string) (*uint256.Int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, fmt.Errorf("invalid int format: empty string")
	}
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		// hexutil rejects leading zero digits
		digits := strings.TrimLeft(str[2:], "0")
		if digits == "" && len(str) > 2 {
			return uint256.NewInt(0), nil
		}
		b, err := hexutil.DecodeBig("0x" + digits)
		if err != nil {
			return nil, fmt.Errorf("can't convert %s to int: %w", str, err)
		}
		result, overflow := uint256.FromBig(b)
		if overflow {
			return nil, fmt.Errorf("%s: %w", str, ErrOverflow)
		}
		return result, nil
	}
	result, err := uint256.FromDecimal(str)
	if err != nil {
		return nil, fmt.Errorf("can't convert %s to int: %w", str, err)
	}
	return result, nil
}
