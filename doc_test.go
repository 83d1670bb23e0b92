package cheque_test

import (
	"errors"
	"fmt"

	"github.com/govalues/cheque"
)

// In this example, the amounts of a CSV import are rendered one by one.
// A malformed record is reported and skipped, the rest of the batch goes on.
func Example_batch() {
	records := []string{"150,00", "-3", "1234,56", "abc", "89,99"}

	for i, rec := range records {
		a, err := cheque.ParseAmount(rec)
		if errors.Is(err, cheque.ErrInvalidAmount) {
			fmt.Printf("[%d] skipped %q\n", i+1, rec)
			continue
		}
		out, err := cheque.Render(a)
		if err != nil {
			fmt.Printf("[%d] skipped %q\n", i+1, rec)
			continue
		}
		fmt.Printf("[%d] %s | %s\n", i+1, out.Digits, out.Line1)
	}

	// Output:
	// [1] 150,00 DA | cent cinquante dinars
	// [2] skipped "-3"
	// [3] 1 234,56 DA | mille deux cent trente-quatre dinars et cinquante-six centimes
	// [4] skipped "abc"
	// [5] 89,99 DA | quatre-vingt-neuf dinars et quatre-vingt-dix-neuf centimes
}

func ExampleWords() {
	for _, n := range []int64{0, 21, 71, 80, 81, 200, 205, 1000, 2000, 1_000_001} {
		w, err := cheque.Words(n)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%d: %s\n", n, w)
	}
	// Output:
	// 0: zéro
	// 21: vingt et un
	// 71: soixante et onze
	// 80: quatre-vingts
	// 81: quatre-vingt-un
	// 200: deux cents
	// 205: deux cent cinq
	// 1000: mille
	// 2000: deux mille
	// 1000001: un million un
}

func ExampleOrthography_Words() {
	for _, o := range []cheque.Orthography{cheque.Traditional, cheque.Rectified} {
		w, err := o.Words(2_221_080)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v: %s\n", o, w)
	}
	// Output:
	// traditional: deux millions deux cent vingt et un mille quatre-vingts
	// rectified: deux millions deux-cent-vingt-et-un-mille-quatre-vingts
}

func ExampleParseAmount() {
	a := cheque.MustParseAmount("1250000,50")
	fmt.Println(a)
	fmt.Printf("%+v\n", a.Split())
	// Output:
	// 1250000.50
	// {Major:1250000 Minor:50}
}

func ExampleNewAmountFromFloat64() {
	a, err := cheque.NewAmountFromFloat64(0.1 + 0.2)
	if err != nil {
		panic(err)
	}
	fmt.Println(a, a.MinorUnits())
	// Output: 0.30 30
}

func ExampleAmount_Split() {
	a := cheque.MustNewAmount(125000050, 2)
	s := a.Split()
	fmt.Println(s.Major, s.Minor)
	// Output: 1250000 50
}

func ExampleFormatAmount() {
	a := cheque.MustParseAmount("1234567.89")
	fmt.Println(cheque.FormatAmount(a, "DA", " ", ","))
	fmt.Println(cheque.FormatAmount(a, "$", ",", "."))
	// Output:
	// 1 234 567,89 DA
	// 1,234,567.89 $
}

func ExampleAmountToWords() {
	a := cheque.MustParseAmount("2345678.75")
	dinar := cheque.Unit{Singular: "dinar", Plural: "dinars"}
	centime := cheque.Unit{Singular: "centime", Plural: "centimes"}
	l, err := cheque.AmountToWords(a, dinar, centime, 60)
	if err != nil {
		panic(err)
	}
	fmt.Println(l.Line1)
	fmt.Println(l.Line2)
	// Output:
	// deux millions trois cent quarante-cinq mille six cent
	// soixante-dix-huit dinars et soixante-quinze centimes
}

func ExampleCurrency_AmountToWords() {
	a := cheque.MustParseAmount("0.05")
	l, err := cheque.EUR.AmountToWords(a, 70)
	if err != nil {
		panic(err)
	}
	fmt.Println(l.Capitalize())
	// Output: Zéro euro et cinq centimes
}

func ExampleStyle_Render() {
	style := cheque.DefaultStyle
	style.Capitalize = true
	out, err := style.Render(cheque.MustParseAmount("1500000"))
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Digits)
	fmt.Println(out.Line1)
	fmt.Printf("%q\n", out.Line2)
	// Output:
	// 1 500 000,00 DA
	// Un million cinq cent mille dinars
	// ""
}
