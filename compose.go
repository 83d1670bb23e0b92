package cheque

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrTextTooLong is returned when a spelled-out amount does not fit on
// the two lines of a cheque.
var ErrTextTooLong = errors.New("text too long")

// Lines is a spelled-out amount wrapped onto the two printable lines of a cheque.
// Line2 is empty when the whole text fits on the first line.
type Lines struct {
	Line1 string
	Line2 string
}

// String returns both lines separated by a newline.
func (l Lines) String() string {
	if l.Line2 == "" {
		return l.Line1
	}
	return l.Line1 + "\n" + l.Line2
}

// Capitalize returns the lines with the first letter of the first line
// in upper case, following French casing rules ("Un million", "Zéro dinar").
func (l Lines) Capitalize() Lines {
	r, size := utf8.DecodeRuneInString(l.Line1)
	if size == 0 {
		return l
	}
	head := cases.Upper(language.French).String(string(r))
	l.Line1 = head + l.Line1[size:]
	return l
}

// Phrase spells out a split amount with its unit nouns, e.g.
// "mille deux cents dinars et cinquante centimes".
// The minor clause is omitted when there are no minor units.
//
// Phrase returns an error if the major units are out of the range of [Words]
// or the minor units are not within [0, 99].
func Phrase(s Split, major, minor Unit, o Orthography) (string, error) {
	if s.Minor < 0 || s.Minor > 99 {
		return "", fmt.Errorf("spelling %v minor units: %w: must be within [0, 99]", s.Minor, ErrOutOfRange)
	}
	w, err := o.Words(s.Major)
	if err != nil {
		return "", fmt.Errorf("spelling major units: %w", err)
	}
	var b strings.Builder
	b.WriteString(w)
	b.WriteByte(' ')
	b.WriteString(major.For(s.Major))
	if s.Minor > 0 {
		w, err = o.Words(s.Minor)
		if err != nil {
			return "", fmt.Errorf("spelling minor units: %w", err)
		}
		b.WriteString(" et ")
		b.WriteString(w)
		b.WriteByte(' ')
		b.WriteString(minor.For(s.Minor))
	}
	return b.String(), nil
}

// Wrap splits text at the last word boundary that keeps the first line
// within width characters and puts the remainder on the second line.
// Words are never broken; hyphenated compounds count as one word.
// A non-positive width disables wrapping.
//
// Wrap returns an error if a word is longer than width or if the second
// line is longer than width.
func Wrap(text string, width int) (Lines, error) {
	words := strings.Fields(text)
	if width <= 0 {
		return Lines{Line1: strings.Join(words, " ")}, nil
	}
	n, size := 0, 0
	for _, w := range words {
		l := utf8.RuneCountInString(w)
		if n > 0 {
			l++ // space
		}
		if size+l > width {
			break
		}
		size += l
		n++
	}
	if n == 0 && len(words) > 0 {
		return Lines{}, fmt.Errorf("wrapping %q: %w: word %q is longer than %v characters", text, ErrTextTooLong, words[0], width)
	}
	lines := Lines{
		Line1: strings.Join(words[:n], " "),
		Line2: strings.Join(words[n:], " "),
	}
	if l := utf8.RuneCountInString(lines.Line2); l > width {
		return Lines{}, fmt.Errorf("wrapping %q: %w: %v characters left for a line of %v", text, ErrTextTooLong, l, width)
	}
	return lines, nil
}

// Compose spells out a split amount in [Traditional] orthography and wraps
// it onto two lines of at most width characters.
// See also functions [Phrase] and [Wrap].
func Compose(s Split, major, minor Unit, width int) (Lines, error) {
	p, err := Phrase(s, major, minor, Traditional)
	if err != nil {
		return Lines{}, err
	}
	return Wrap(p, width)
}

// AmountToWords spells out an amount with the given unit nouns and wraps it
// onto two lines of at most width characters, e.g. 1500000 dinars becomes
// "un million cinq cent mille dinars".
// See also method [Currency.AmountToWords].
func AmountToWords(a Amount, major, minor Unit, width int) (Lines, error) {
	return Compose(a.Split(), major, minor, width)
}
