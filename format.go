package cheque

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount returns the digit line of a cheque: the whole major units
// grouped by thousandsSep every three digits, decimalSep, the two minor
// digits, then a space and the symbol.
// For example, 1234567.89 with "DA", " " and "," gives "1 234 567,89 DA".
// The space and the symbol are omitted when symbol is empty.
// See also method [Currency.FormatAmount].
func FormatAmount(a Amount, symbol, thousandsSep, decimalSep string) string {
	s := a.Split()
	digs := strconv.FormatInt(s.Major, 10)

	var b strings.Builder
	b.Grow(len(digs) + len(digs)/3*len(thousandsSep) + len(decimalSep) + 3 + len(symbol))

	// Integer digits
	for i := 0; i < len(digs); i++ {
		if i > 0 && (len(digs)-i)%3 == 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteByte(digs[i])
	}

	// Fractional digits
	b.WriteString(decimalSep)
	b.WriteByte(byte(s.Minor/10) + '0')
	b.WriteByte(byte(s.Minor%10) + '0')

	// Currency symbol
	if symbol != "" {
		b.WriteByte(' ')
		b.WriteString(symbol)
	}

	return b.String()
}

// Output holds everything printed in the amount boxes of a cheque.
type Output struct {
	Digits string // amount in digits, e.g. "1 250 000,50 DA"
	Line1  string // first line of the amount in words
	Line2  string // second line of the amount in words, possibly empty
}

// Style configures how amounts are rendered on a cheque.
// The zero value is not useful, start from [DefaultStyle].
type Style struct {
	Curr         Currency    `json:"currency"`
	Symbol       string      `json:"symbol,omitempty"` // overrides the currency symbol when not empty
	ThousandsSep string      `json:"thousands_sep"`
	DecimalSep   string      `json:"decimal_sep"`
	LineWidth    int         `json:"line_width"` // characters per line of words, 0 disables wrapping
	Orthography  Orthography `json:"orthography"`
	Capitalize   bool        `json:"capitalize"`
}

// DefaultStyle renders Algerian dinars the way French-language cheques expect them.
var DefaultStyle = Style{
	Curr:         DZD,
	ThousandsSep: " ",
	DecimalSep:   ",",
	LineWidth:    70,
	Orthography:  Traditional,
}

// symbol returns the symbol printed after the digits.
func (s Style) symbol() string {
	if s.Symbol != "" {
		return s.Symbol
	}
	return s.Curr.Symbol()
}

// Render returns the digit line and the two lines of words of an amount.
//
// Render returns an error if the words do not fit on two lines of
// [Style.LineWidth] characters.
func (s Style) Render(a Amount) (Output, error) {
	p, err := Phrase(a.Split(), s.Curr.Major(), s.Curr.Minor(), s.Orthography)
	if err != nil {
		return Output{}, fmt.Errorf("rendering %v: %w", a, err)
	}
	lines, err := Wrap(p, s.LineWidth)
	if err != nil {
		return Output{}, fmt.Errorf("rendering %v: %w", a, err)
	}
	if s.Capitalize {
		lines = lines.Capitalize()
	}
	return Output{
		Digits: FormatAmount(a, s.symbol(), s.ThousandsSep, s.DecimalSep),
		Line1:  lines.Line1,
		Line2:  lines.Line2,
	}, nil
}

// Render is like [Style.Render] with [DefaultStyle].
func Render(a Amount) (Output, error) {
	return DefaultStyle.Render(a)
}
