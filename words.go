package cheque

import (
	"errors"
	"fmt"
	"strings"
)

// MaxWords is the largest integer that [Words] can spell out.
const MaxWords = 999_999_999_999

// ErrOutOfRange is returned when an integer is outside the range
// supported by [Words].
var ErrOutOfRange = errors.New("number out of range")

// Orthography selects the spelling convention used for compound numerals.
type Orthography uint8

const (
	// Traditional is the pre-1990 spelling: hyphens join tens and units
	// below one hundred only ("deux cent vingt et un").
	Traditional Orthography = iota
	// Rectified is the 1990 reformed spelling: every word of a numeral is
	// joined by hyphens ("deux-cent-vingt-et-un"). The nouns million and
	// milliard remain separate words.
	Rectified
)

var errInvalidOrthography = errors.New("invalid orthography")

// agreement tells how a magnitude word agrees with its multiplier.
type agreement uint8

const (
	// invariable words are numeral adjectives: never plural, never preceded
	// by "un", and they take away the plural of a preceding cent or vingt.
	invariable agreement = iota
	// noun words are preceded by their multiplier, even "un", and take
	// a plural when the multiplier is two or more.
	noun
)

type magnitude struct {
	value    int64
	singular string
	plural   string
	agree    agreement
}

// magnitudes lists the named base-1000 groups, most significant first.
var magnitudes = [...]magnitude{
	{1_000_000_000, "milliard", "milliards", noun},
	{1_000_000, "million", "millions", noun},
	{1_000, "mille", "mille", invariable},
}

// units holds the irregular words from 0 to 16.
var units = [...]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

// decades holds the words of the tens, indexed by the tens digit.
// Seventy and ninety are built on soixante and quatre-vingt.
var decades = [...]string{
	"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante",
	"soixante", "quatre-vingt", "quatre-vingt",
}

// Words returns the French spelled-out form of n in [Traditional] orthography,
// e.g. 1_000_001 is "un million un".
//
// Words returns an error if n is negative or greater than [MaxWords].
func Words(n int64) (string, error) {
	return Traditional.Words(n)
}

// Words returns the French spelled-out form of n in orthography o.
//
// Words returns an error if n is negative or greater than [MaxWords].
func (o Orthography) Words(n int64) (string, error) {
	if n < 0 || n > MaxWords {
		return "", fmt.Errorf("spelling %v: %w: must be within [0, %v]", n, ErrOutOfRange, int64(MaxWords))
	}
	if n == 0 {
		return units[0], nil
	}

	// Numeral adjectives accumulate in numeral and are joined according to
	// the orthography; nouns and the numerals around them are separated by spaces.
	var phrase, numeral []string
	flush := func() {
		if len(numeral) > 0 {
			phrase = append(phrase, o.join(numeral))
			numeral = nil
		}
	}
	for _, m := range magnitudes {
		g := n / m.value
		n %= m.value
		if g == 0 {
			continue
		}
		switch m.agree {
		case noun:
			numeral = append(numeral, hundreds(g, true)...)
			flush()
			if g < 2 {
				phrase = append(phrase, m.singular)
			} else {
				phrase = append(phrase, m.plural)
			}
		default:
			if g > 1 {
				numeral = append(numeral, hundreds(g, false)...)
			}
			numeral = append(numeral, m.singular)
		}
	}
	if n > 0 {
		numeral = append(numeral, hundreds(n, true)...)
	}
	flush()
	return strings.Join(phrase, " "), nil
}

func (o Orthography) join(words []string) string {
	if o == Rectified {
		return strings.Join(words, "-")
	}
	return strings.Join(words, " ")
}

// hundreds returns the words of n in [1, 999].
// When final is false the number is followed by another numeral adjective
// (mille), so cent and vingt stay singular.
func hundreds(n int64, final bool) []string {
	var words []string
	h, r := n/100, n%100
	if h > 0 {
		if h > 1 {
			words = append(words, units[h])
		}
		if h > 1 && r == 0 && final {
			words = append(words, "cents")
		} else {
			words = append(words, "cent")
		}
	}
	if r > 0 {
		words = append(words, tens(r, final)...)
	}
	return words
}

// tens returns the words of n in [1, 99].
func tens(n int64, final bool) []string {
	switch {
	case n < int64(len(units)):
		return []string{units[n]}
	case n < 20:
		return []string{"dix-" + units[n-10]}
	}
	t, u := n/10, n%10
	base := decades[t]
	switch {
	case t == 7 && u == 1:
		return []string{base, "et", "onze"}
	case t == 7 || t == 9:
		return []string{base + "-" + tens(10+u, final)[0]}
	case t == 8 && u == 0:
		if final {
			return []string{base + "s"}
		}
		return []string{base}
	case t == 8:
		return []string{base + "-" + units[u]}
	case u == 0:
		return []string{base}
	case u == 1:
		return []string{base, "et", "un"}
	}
	return []string{base + "-" + units[u]}
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Orthography) String() string {
	switch o {
	case Traditional:
		return "traditional"
	case Rectified:
		return "rectified"
	}
	return fmt.Sprintf("Orthography(%d)", uint8(o))
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It accepts the values returned by [Orthography.String].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (o *Orthography) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "traditional", "":
		*o = Traditional
	case "rectified", "1990":
		*o = Rectified
	default:
		return fmt.Errorf("unmarshaling %T: %w: %q", Traditional, errInvalidOrthography, text)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (o Orthography) MarshalText() ([]byte, error) {
	if o > Rectified {
		return nil, fmt.Errorf("marshaling %v: %w", o, errInvalidOrthography)
	}
	return []byte(o.String()), nil
}
