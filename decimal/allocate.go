package decimal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decfin/money/bigint"
)

// ErrInvalidRatios is returned when an allocation ratio sequence is empty
// or contains a non-positive ratio.
var ErrInvalidRatios = errors.New("invalid ratios")

// Allocate distributes d among parts proportionally to the given ratios
// using the largest-remainder method.
// The result has the same length and order as the ratios, every part has the
// same scale as d, and the parts always sum up to exactly d: no unit in the
// last place is ever lost or duplicated.
//
// The coefficient of d is treated as a signed count of smallest units.
// Each ratio first receives the floor of its proportional share; the units
// left over from flooring are then handed out one by one to the parts with
// the largest fractional remainders, ties broken by ratio order.
// Negative totals are allocated the same way on the signed unit count.
//
// Allocate returns an error if no ratios are given or any ratio is not
// a positive integer.
// See also method [Decimal.Split].
func (d Decimal) Allocate(ratios ...int) ([]Decimal, error) {
	res, err := d.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v among %v: %w", d, ratios, err)
	}
	return res, nil
}

func (d Decimal) allocate(ratios []int) ([]Decimal, error) {
	if len(ratios) == 0 {
		return nil, ErrInvalidRatios
	}
	sum := bigint.Int{}
	for _, r := range ratios {
		if r <= 0 {
			return nil, fmt.Errorf("ratio %v is not positive: %w", r, ErrInvalidRatios)
		}
		sum = sum.Add(bigint.New(int64(r)))
	}

	// Floor shares and fractional remainders
	units := d.coef
	parts := make([]bigint.Int, len(ratios))
	rems := make([]bigint.Int, len(ratios))
	assigned := bigint.Int{}
	for i, r := range ratios {
		q, rem := floorQuoRem(units.Mul(bigint.New(int64(r))), sum)
		parts[i] = q
		rems[i] = rem
		assigned = assigned.Add(q)
	}

	// Leftover units, one per part at most
	leftover64, ok := units.Sub(assigned).Int64()
	if !ok {
		// Σ floor shares differs from the total by less than len(ratios).
		return nil, fmt.Errorf("leftover out of range: %w", ErrInvalidRatios)
	}
	leftover := int(leftover64)

	// Largest remainders first, original order on ties
	order := make([]int, len(ratios))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rems[order[i]].Cmp(rems[order[j]]) > 0
	})

	one := bigint.New(1)
	for i := 0; i < leftover; i++ {
		parts[order[i]] = parts[order[i]].Add(one)
	}

	res := make([]Decimal, len(parts))
	for i, p := range parts {
		res[i] = Decimal{coef: p, scale: d.scale}
	}
	return res, nil
}

// Split returns a slice of decimals that sum up to exactly d, ensuring the
// parts are as equal as possible: it is equivalent to allocating d with
// equal ratios.
//
// Split returns an error if the number of parts is not a positive integer.
// See also method [Decimal.Allocate].
func (d Decimal) Split(parts int) ([]Decimal, error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", d, parts, ErrInvalidRatios)
	}
	ratios := make([]int, parts)
	for i := range ratios {
		ratios[i] = 1
	}
	res, err := d.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", d, parts, err)
	}
	return res, nil
}

// floorQuoRem computes the floored quotient and the non-negative remainder
// of x / y such that x = q*y + r and 0 <= r < y.
// The divisor y must be positive.
func floorQuoRem(x, y bigint.Int) (q, r bigint.Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("floorQuoRem(%v, %v) failed: %v", x, y, err)) // y is the ratio sum, always positive
	}
	if r.Sign() < 0 {
		q = q.Sub(bigint.New(1))
		r = r.Add(y)
	}
	return q, r
}
