package money

import (
	"fmt"

	"github.com/decfin/money/decimal"
)

// Allocate distributes the amount among parts proportionally to the given
// ratios using the largest-remainder method.
// The result has the same length and order as the ratios, every part carries
// the currency of a, and the parts always sum up to exactly a: no minor unit
// is ever lost or duplicated.
//
// The distribution works on the signed count of smallest units at the scale
// of the amount. Each ratio first receives the floor of its proportional
// share; the units left over from flooring are then handed out one by one to
// the parts with the largest fractional remainders, ties broken by ratio
// order. Negative amounts are allocated the same way.
//
// Allocate returns an error if no ratios are given or any ratio is not
// a positive integer.
// See also method [Amount.Split].
func (a Amount) Allocate(ratios ...int) ([]Amount, error) {
	parts, err := a.value.Allocate(ratios...)
	if err != nil {
		return nil, fmt.Errorf("allocating %v: %w", a, err)
	}
	return a.wrapParts(parts), nil
}

// Split returns a slice of amounts that sum up to exactly a, ensuring the
// parts are as equal as possible.
// If the amount cannot be divided equally among the given number of parts,
// the remaining minor units are distributed to the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
// See also method [Amount.Allocate].
func (a Amount) Split(parts int) ([]Amount, error) {
	res, err := a.value.Split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v: %w", a, err)
	}
	return a.wrapParts(res), nil
}

func (a Amount) wrapParts(parts []decimal.Decimal) []Amount {
	res := make([]Amount, len(parts))
	for i, p := range parts {
		res[i] = Amount{curr: a.curr, value: p}
	}
	return res
}
