package decimal

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if the division fails.
// It simplifies safe initialization of global variables holding decimals.
func (d Decimal) MustQuo(e Decimal, scale int, mode RoundingMode) Decimal {
	f, err := d.Quo(e, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v, %v) failed: %v", e, scale, mode, err))
	}
	return f
}

// MustRescale is like [Decimal.Rescale] but panics if rescaling fails.
func (d Decimal) MustRescale(scale int, mode RoundingMode) Decimal {
	f, err := d.Rescale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v, %v) failed: %v", scale, mode, err))
	}
	return f
}
