package cheque

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency that can be written on a cheque.
// The zero value is [DZD], the Algerian dinar.
//
// Currency is implemented as an integer index into in-memory arrays that
// store the ISO 4217 codes, the printed symbol, and the French names of
// the major and minor units.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
type Currency uint8

// ErrInvalidCurrency is returned when a string is not a supported currency code.
var ErrInvalidCurrency = errors.New("invalid currency")

// Unit is the pair of French nouns naming a unit of currency,
// for example "dinar" and "dinars".
type Unit struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// For returns the form of the noun agreeing with a count of n.
// In French the plural starts at two: "zéro dinar", "un dinar", "deux dinars".
func (u Unit) For(n int64) string {
	if n < 2 {
		return u.Singular
	}
	return u.Plural
}

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	DZD
//	dzd
//	012
//
// ParseCurr returns an error if the string does not represent a supported currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return DZD, fmt.Errorf("%w: %q", ErrInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return numLookup[c]
}

// Symbol returns the symbol printed after the digits of an amount,
// for example "DA" for the dinar.
func (c Currency) Symbol() string {
	return symbolLookup[c]
}

// Major returns the French nouns of the major unit, for example "dinar".
func (c Currency) Major() Unit {
	return majorLookup[c]
}

// Minor returns the French nouns of the minor unit, for example "centime".
func (c Currency) Minor() Unit {
	return minorLookup[c]
}

// FormatAmount returns the digit line of the amount using the currency
// symbol, a space as the thousands separator and a comma as the decimal
// separator, e.g. "1 234 567,89 DA".
// See also function [FormatAmount].
func (c Currency) FormatAmount(a Amount) string {
	return FormatAmount(a, c.Symbol(), " ", ",")
}

// AmountToWords spells out the amount with the unit nouns of the currency
// and wraps it onto two lines of at most width characters.
// See also function [AmountToWords].
func (c Currency) AmountToWords(a Amount, width int) (Lines, error) {
	return AmountToWords(a, c.Major(), c.Minor(), width)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DZD, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DZD, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}
