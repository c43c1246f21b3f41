package decimal

import (
	"errors"
	"fmt"

	"github.com/decfin/money/bigint"
)

// RoundingMode determines how the result of an operation is rounded when it
// cannot be represented exactly at the target scale.
// The zero value is [RoundHalfEven].
type RoundingMode uint8

const (
	// RoundHalfEven rounds to the nearest value; ties are rounded to the
	// adjacent even digit (banker's rounding).
	RoundHalfEven RoundingMode = iota

	// RoundHalfUp rounds to the nearest value; ties are rounded away from zero.
	RoundHalfUp

	// RoundHalfDown rounds to the nearest value; ties are rounded towards zero.
	RoundHalfDown

	// RoundHalfCeiling rounds to the nearest value; ties are rounded towards
	// positive infinity.
	RoundHalfCeiling

	// RoundHalfFloor rounds to the nearest value; ties are rounded towards
	// negative infinity.
	RoundHalfFloor

	// RoundUp rounds away from zero whenever the remainder is non-zero.
	RoundUp

	// RoundDown rounds towards zero, discarding the remainder.
	RoundDown

	// RoundCeiling rounds towards positive infinity.
	RoundCeiling

	// RoundFloor rounds towards negative infinity.
	RoundFloor

	// RoundUnnecessary asserts that the operation is exact.
	// If any rounding would be required, the operation fails with
	// [ErrRoundingNecessary].
	RoundUnnecessary
)

var errUnknownMode = errors.New("unknown rounding mode")

var modeNames = map[RoundingMode]string{
	RoundHalfEven:    "half-even",
	RoundHalfUp:      "half-up",
	RoundHalfDown:    "half-down",
	RoundHalfCeiling: "half-ceiling",
	RoundHalfFloor:   "half-floor",
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundUnnecessary: "unnecessary",
}

// ParseMode converts a string to a rounding mode.
// The input string must be one of the names returned by [RoundingMode.String],
// for example "half-even" or "floor".
func ParseMode(mode string) (RoundingMode, error) {
	for m, name := range modeNames {
		if name == mode {
			return m, nil
		}
	}
	return 0, fmt.Errorf("parsing %q: %w", mode, errUnknownMode)
}

// String method implements the [fmt.Stringer] interface and returns
// the name of the rounding mode.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// roundQuo computes num / den rounded to an integer according to the mode.
// The divisor must be non-zero; the caller is expected to have checked it.
func roundQuo(num, den bigint.Int, mode RoundingMode) (bigint.Int, error) {
	if mode > RoundUnnecessary {
		return bigint.Int{}, fmt.Errorf("rounding with mode %v: %w", mode, errUnknownMode)
	}
	neg := num.Sign()*den.Sign() < 0
	q, r, err := num.Abs().QuoRem(den.Abs())
	if err != nil {
		return bigint.Int{}, err
	}
	q, err = roundRem(q, r, den.Abs(), neg, mode)
	if err != nil {
		return bigint.Int{}, err
	}
	if neg {
		q = q.Neg()
	}
	return q, nil
}

// roundRem applies the rounding mode to a truncated quotient.
// q, r and den are magnitudes (non-negative); neg is the sign of the exact
// quotient; r is the remainder of the truncated division |num| / den.
func roundRem(q, r, den bigint.Int, neg bool, mode RoundingMode) (bigint.Int, error) {
	if r.IsZero() {
		return q, nil
	}
	switch mode {
	case RoundUnnecessary:
		return bigint.Int{}, ErrRoundingNecessary
	case RoundDown:
		return q, nil
	case RoundUp:
		return q.Inc(), nil
	case RoundCeiling:
		if neg {
			return q, nil
		}
		return q.Inc(), nil
	case RoundFloor:
		if neg {
			return q.Inc(), nil
		}
		return q, nil
	}

	// Half modes: compare the doubled remainder against the divisor.
	switch r.Dbl().Cmp(den) {
	case -1:
		return q, nil
	case 1:
		return q.Inc(), nil
	}

	// Exact midpoint
	switch mode {
	case RoundHalfUp:
		return q.Inc(), nil
	case RoundHalfDown:
		return q, nil
	case RoundHalfCeiling:
		if neg {
			return q, nil
		}
		return q.Inc(), nil
	case RoundHalfFloor:
		if neg {
			return q.Inc(), nil
		}
		return q, nil
	default: // RoundHalfEven
		if q.IsOdd() {
			return q.Inc(), nil
		}
		return q, nil
	}
}
