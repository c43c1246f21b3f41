package money_test

import (
	"fmt"

	"github.com/decfin/money"
	"github.com/decfin/money/decimal"
)

// In this example, the sales tax is computed from an exact decimal rate and
// rounded to the scale of the currency in a single step.
func Example_salesTax() {
	subtotal := money.MustParse("USD", "49.99")
	rate := decimal.MustParse("0.0825")

	tax, _ := subtotal.Mul(rate, decimal.RoundHalfEven)
	total, _ := subtotal.Add(tax)

	fmt.Println(subtotal)
	fmt.Println(tax)
	fmt.Println(total)
	// Output:
	// USD 49.99
	// USD 4.12
	// USD 54.11
}

// In this example, a bill is split between three parties without losing
// a single cent.
func Example_billSplit() {
	bill := money.MustParse("USD", "10.00")

	parts, _ := bill.Split(3)
	for _, p := range parts {
		fmt.Println(p)
	}
	// Output:
	// USD 3.34
	// USD 3.33
	// USD 3.33
}

func ExampleAmount_Allocate() {
	profit := money.MustParse("USD", "0.05")

	parts, _ := profit.Allocate(3, 7)
	for _, p := range parts {
		fmt.Println(p)
	}
	// Output:
	// USD 0.02
	// USD 0.03
}

func ExampleAmount_Quo() {
	a := money.MustParse("USD", "10.00")
	three := decimal.MustParse("3")

	q, _ := a.Quo(three, decimal.RoundHalfDown)
	fmt.Println(q)
	// Output:
	// USD 3.33
}

func ExampleParseRound() {
	a, _ := money.ParseRound("USD", "1.555", decimal.RoundHalfUp)
	b, _ := money.ParseRound("USD", "1.555", decimal.RoundHalfDown)
	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// USD 1.56
	// USD 1.55
}
