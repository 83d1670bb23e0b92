package cheque

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Scale is the number of digits after the decimal point kept by an [Amount].
// One major unit is worth 10^Scale minor units.
const Scale = 2

// MaxMajor is the largest number of major units an [Amount] can hold.
const MaxMajor = 999_999_999_999

// ErrInvalidAmount is returned when a value cannot be used as a cheque amount:
// it is negative, not a number, or too large after rounding.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	amountCeiling = decimal.MustNew(MaxMajor+1, 0)
	halfMinorUnit = decimal.MustNew(5, Scale+1)
)

// Amount type represents a non-negative monetary amount rounded to
// [Scale] digits after the decimal point.
// Its zero value corresponds to 0.00.
// Amount is immutable and safe for concurrent use by multiple goroutines.
type Amount struct {
	value decimal.Decimal // 0 <= value <= MaxMajor.99, scale == Scale
}

// Split is the decomposition of an [Amount] into whole major units and
// the remaining minor units, so that Major*100 + Minor reconstructs the amount.
type Split struct {
	Major int64 // whole major units (dinars)
	Minor int64 // minor units in [0, 99] (centimes)
}

// roundHalfUp rounds a non-negative decimal to [Scale] digits, with ties
// rounded away from zero.
func roundHalfUp(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Scale() <= Scale {
		return d.Pad(Scale), nil
	}
	d, err := d.Add(halfMinorUnit)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Trunc(Scale), nil
}

// newAmountSafe rounds the decimal and checks the range of the result.
func newAmountSafe(d decimal.Decimal) (Amount, error) {
	if d.IsNeg() {
		return Amount{}, fmt.Errorf("%w: %v is negative", ErrInvalidAmount, d)
	}
	r, err := roundHalfUp(d)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: rounding %v: %w", ErrInvalidAmount, d, err)
	}
	if r.Cmp(amountCeiling) >= 0 {
		return Amount{}, fmt.Errorf("%w: %v is not less than %v", ErrInvalidAmount, r, amountCeiling)
	}
	return Amount{value: r}, nil
}

// NewAmount returns an amount equal to coef / 10^scale, rounded half-up to
// [Scale] digits.
//
// NewAmount returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the result is negative;
//   - the result is not less than [MaxMajor] + 1 after rounding.
func NewAmount(coef int64, scale int) (Amount, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: converting coefficient: %w", ErrInvalidAmount, err)
	}
	return newAmountSafe(d)
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(coef int64, scale int) Amount {
	a, err := NewAmount(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns a (possibly rounded) amount with the given value.
// See also method [Amount.Decimal].
func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	return newAmountSafe(d)
}

// NewAmountFromMinorUnits converts an integer number of minor units
// (centimes) to an amount.
// See also method [Amount.MinorUnits].
func NewAmountFromMinorUnits(units int64) (Amount, error) {
	d, err := decimal.New(units, Scale)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: converting minor units: %w", ErrInvalidAmount, err)
	}
	return newAmountSafe(d)
}

// NewAmountFromFloat64 converts a float to a (possibly rounded) amount.
// The float is converted through its shortest decimal representation,
// so 1250000.50 yields exactly 1250000 major and 50 minor units.
//
// NewAmountFromFloat64 returns an error if the float is a special value
// (NaN or Inf), is negative, or is too large.
func NewAmountFromFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("%w: special value %v", ErrInvalidAmount, f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	a, err := ParseAmount(s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// ParseAmount converts a decimal string to a (possibly rounded) amount.
// Both the point and the comma are accepted as the decimal separator,
// so CSV fields such as "1250000,50" parse as is.
// Surrounding white space is ignored.
func ParseAmount(s string) (Amount, error) {
	t := strings.TrimSpace(s)
	if strings.Count(t, ",") == 1 && !strings.Contains(t, ".") {
		t = strings.Replace(t, ",", ".", 1)
	}
	d, err := decimal.Parse(t)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: parsing %q: %w", ErrInvalidAmount, s, err)
	}
	return newAmountSafe(d)
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// Decimal returns the decimal representation of the amount.
// The scale of the result is always [Scale].
func (a Amount) Decimal() decimal.Decimal {
	return a.value.Pad(Scale)
}

// Split returns the whole major units and the remaining minor units of the amount.
// The split is computed on the decimal representation, not on a float,
// so no cent is ever lost to binary rounding.
func (a Amount) Split() Split {
	whole, frac, ok := a.Decimal().Int64(Scale)
	if !ok {
		// unreachable: the amount is bounded by MaxMajor
		panic(fmt.Sprintf("%v.Split() failed: integer overflow", a))
	}
	return Split{Major: whole, Minor: frac}
}

// MinorUnits returns the amount in minor units (centimes).
// See also constructor [NewAmountFromMinorUnits].
func (a Amount) MinorUnits() int64 {
	s := a.Split()
	return s.Major*100 + s.Minor
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// String implements the [fmt.Stringer] interface and returns the amount
// with a decimal point and exactly [Scale] fractional digits, e.g. "1250000.50".
// See also function [FormatAmount] for the cheque rendering.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Decimal().String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
