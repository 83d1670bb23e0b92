/*
Package cheque renders monetary amounts the way they are written on
French-language bank cheques.
It leverages the [decimal] package for exact handling of amounts and
spells integers out in French words.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact split of an amount into major and minor units, free of binary
    floating-point rounding errors
  - Digit line with thousands grouping and a currency symbol
  - French spelled-out numbers up to 999 999 999 999, in traditional or
    1990 rectified orthography
  - Wrapping of the spelled-out amount onto the two lines of a cheque

# Representation

An [Amount] is a non-negative decimal.Decimal rounded half-up to two digits
after the decimal point and less than 10^12.
Its [Amount.Split] method returns the whole major units (dinars) and the
remaining minor units (centimes).

A [Currency] is an integer index into in-memory arrays containing its ISO
4217 code, its printed symbol, and the French nouns of its units.
Its zero value is [DZD], the Algerian dinar.

# Grammar

[Words] follows the traditional rules of French numerals:

  - "et" joins un and onze to the tens from twenty to seventy:
    "vingt et un", "soixante et onze", but "quatre-vingt-un";
  - vingt and cent take an "s" when multiplied and ending the numeral:
    "quatre-vingts", "deux cents", but "deux cent cinq";
  - mille is invariable and is never preceded by "un";
  - million and milliard are nouns: "un million", "deux cents millions".

Zero groups are omitted: 1000001 is "un million un".

# Errors

Constructors return an error wrapping [ErrInvalidAmount] for negative,
special, malformed, or too large values.
[Words] returns an error wrapping [ErrOutOfRange] outside its range, and
[Wrap] returns an error wrapping [ErrTextTooLong] when the text does not fit
on two lines.
Use [errors.Is] to tell them apart.
*/
package cheque
