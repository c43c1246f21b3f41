package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decfin/money/decimal"
)

// ErrCurrencyMismatch is returned when a binary operation is attempted on
// amounts denominated in different currencies.
// This is the central safety invariant of the [Amount] type: currencies are
// never converted or substituted implicitly.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// DefaultRounding is the rounding mode applied by [Parse] when an amount has
// more fractional digits than its currency allows.
// Rounding an exact midpoint towards zero is a deliberately conservative,
// merchant-favoring choice; use [ParseRound] to override it per call.
const DefaultRounding = decimal.RoundHalfDown

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown
// currency.
// Amount is immutable and safe for concurrent use by multiple goroutines.
//
// The scale of the underlying decimal value is always greater than or equal
// to the scale of the currency.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmount creates a new amount, zero-padding the value to the scale of
// the currency.
func newAmount(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d.Pad(c.Scale())}
}

// NewFromDecimal returns an amount with the given currency and value.
// If the scale of the value is less than the scale of the currency, the
// result is zero-padded to the right; the value is never rounded.
// See also method [Amount.Decimal].
func NewFromDecimal(curr Currency, d decimal.Decimal) Amount {
	return newAmount(curr, d)
}

// NewFromMinorUnits converts an integer, representing minor units of
// a currency (e.g. cents, pennies, fens), to an amount.
// The conversion is exact: the resulting amount has the scale of the
// currency and no rounding is involved.
// See also method [Amount.MinorUnits].
//
// NewFromMinorUnits returns an error if the currency code is not valid.
func NewFromMinorUnits(curr string, units int64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newAmount(c, decimal.New(units, c.Scale())), nil
}

// Parse converts currency and decimal strings to an amount.
// The amount is rescaled to exactly the scale of the currency: fractional
// digits beyond the currency scale are rounded using [DefaultRounding],
// missing ones are zero-padded.
// See also constructors [ParseRound], [ParseCurr], and [decimal.Parse].
func Parse(curr, amount string) (Amount, error) {
	return ParseRound(curr, amount, DefaultRounding)
}

// ParseRound is like [Parse] but rounds the amount to the scale of the
// currency using the given rounding mode.
// Under [decimal.RoundUnnecessary] the parse fails if the input carries
// significant digits beyond the currency scale.
func ParseRound(curr, amount string, mode decimal.RoundingMode) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	d, err = d.Rescale(c.Scale(), mode)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmount(c, d), nil
}

// MustParse is like [Parse] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(curr, amount string) Amount {
	a, err := Parse(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Scale returns the number of digits after the decimal point.
// It is always greater than or equal to the scale of the currency.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// MinorUnits returns the amount as an integer count of minor units of its
// currency (e.g. cents, pennies, fens).
// If the scale of the amount is greater than the scale of the currency,
// the fractional part is rounded using [decimal.RoundHalfEven].
// See also constructor [NewFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	return a.value.Round(a.curr.Scale()).Coef().Int64()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if a = 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns true if a > 0.
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{curr: a.curr, value: a.value.Abs()}
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{curr: a.curr, value: a.value.Neg()}
}

// CopySign returns an amount with the same sign as amount b.
// The currency of amount b is ignored.
func (a Amount) CopySign(b Amount) Amount {
	return Amount{curr: a.curr, value: a.value.CopySign(b.value)}
}

// Zero returns an amount with a value of 0, having the same currency and
// scale as amount a.
func (a Amount) Zero() Amount {
	return Amount{curr: a.curr, value: a.value.Zero()}
}

// One returns an amount with a value of 1, having the same currency and
// scale as amount a.
func (a Amount) One() Amount {
	return Amount{curr: a.curr, value: a.value.One()}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two amounts with the same scale as amount a.
func (a Amount) ULP() Amount {
	return Amount{curr: a.curr, value: a.value.ULP()}
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// SameScale returns true if amounts have the same scale.
// See also method [Amount.Scale].
func (a Amount) SameScale(b Amount) bool {
	return a.value.Scale() == b.value.Scale()
}

// Add returns the sum of amounts a and b.
// The sum is exact: the result has the larger of the two scales.
//
// Add returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmount(a.curr, a.value.Add(b.value)), nil
}

// Sub returns the difference of amounts a and b.
// The difference is exact: the result has the larger of the two scales.
//
// Sub returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmount(a.curr, a.value.Sub(b.value)), nil
}

// Mul returns the product of amount a and factor e, rescaled to the scale of
// the currency using the given rounding mode.
//
// Mul returns an error if the mode is [decimal.RoundUnnecessary] and the
// product cannot be represented exactly at the currency scale.
func (a Amount) Mul(e decimal.Decimal, mode decimal.RoundingMode) (Amount, error) {
	d, err := a.value.Mul(e).Rescale(a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return newAmount(a.curr, d), nil
}

// Quo returns the quotient of amount a and divisor e, rounded to the scale
// of the currency using the given rounding mode.
//
// Quo returns an error if:
//   - the divisor is zero;
//   - the mode is [decimal.RoundUnnecessary] and the division is inexact.
func (a Amount) Quo(e decimal.Decimal, mode decimal.RoundingMode) (Amount, error) {
	d, err := a.value.Quo(e, a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newAmount(a.curr, d), nil
}

// Rescale returns an amount rounded or zero-padded to the given number of
// digits after the decimal point using the given rounding mode.
// If the given scale is less than the scale of the currency, the amount is
// rescaled to the scale of the currency instead.
func (a Amount) Rescale(scale int, mode decimal.RoundingMode) (Amount, error) {
	if scale < a.curr.Scale() {
		scale = a.curr.Scale()
	}
	d, err := a.value.Rescale(scale, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("rescaling %v: %w", a, err)
	}
	return newAmount(a.curr, d), nil
}

// RoundToCurr returns an amount rescaled to the scale of its currency using
// the given rounding mode.
// See also method [Amount.Rescale].
func (a Amount) RoundToCurr(mode decimal.RoundingMode) (Amount, error) {
	return a.Rescale(a.curr.Scale(), mode)
}

// Trim returns an amount with trailing zeros removed up to the given scale.
// If the given scale is less than the scale of the currency, the zeros are
// removed up to the scale of the currency instead.
func (a Amount) Trim(scale int) Amount {
	if scale < a.curr.Scale() {
		scale = a.curr.Scale()
	}
	return Amount{curr: a.curr, value: a.value.Trim(scale)}
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Scales are normalized internally, so "USD 1.5" and "USD 1.50" compare
// as equal.
//
// Cmp returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// Equal reports whether amounts a and b are numerically equal.
//
// Equal returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Equal(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c == 0, err
}

// Less reports whether amount a is numerically less than amount b.
//
// Less returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Less(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// LessOrEqual reports whether amount a is numerically less than or equal
// to amount b.
//
// LessOrEqual returns an error if the amounts are denominated in different
// currencies.
func (a Amount) LessOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c <= 0, err
}

// Greater reports whether amount a is numerically greater than amount b.
//
// Greater returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Greater(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// GreaterOrEqual reports whether amount a is numerically greater than or
// equal to amount b.
//
// GreaterOrEqual returns an error if the amounts are denominated in
// different currencies.
func (a Amount) GreaterOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c >= 0, err
}

// Min returns the smaller amount.
//
// Min returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0:
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0:
		return a, nil
	default:
		return b, nil
	}
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the amount, for example "USD 10.00".
// The decimal part renders the full scale, including trailing zeros, so the
// result round-trips through [Amount.UnmarshalText].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs; the '0' flag with all
// numeric verbs.
// Precision is only supported for the %f verb and defaults to the actual
// scale of the amount.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, a.String(), false)
	case 'q', 'Q':
		writePadded(state, "\""+a.String()+"\"", false)
	case 'f', 'F':
		d := a.value
		if p, ok := state.Precision(); ok {
			if p < a.curr.Scale() {
				p = a.curr.Scale()
			}
			if p > d.Scale() {
				d = d.Pad(p)
			} else {
				d = d.Round(p)
			}
		}
		writePadded(state, d.String(), true)
	case 'd', 'D':
		writePadded(state, a.value.Round(a.curr.Scale()).Coef().String(), true)
	case 'c', 'C':
		writePadded(state, a.curr.Code(), false)
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(money.Amount=%s)", verb, a.String())
	}
}

// writePadded writes text honoring the width, '-' and '0' flags of the state.
func writePadded(state fmt.State, text string, numeric bool) {
	width, ok := state.Width()
	pad := 0
	if ok && width > len(text) {
		pad = width - len(text)
	}
	//nolint:errcheck
	switch {
	case pad == 0:
		state.Write([]byte(text))
	case state.Flag('-'):
		state.Write([]byte(text))
		state.Write([]byte(strings.Repeat(" ", pad)))
	case state.Flag('0') && numeric:
		if len(text) > 0 && text[0] == '-' {
			state.Write([]byte{'-'})
			text = text[1:]
		}
		state.Write([]byte(strings.Repeat("0", pad)))
		state.Write([]byte(text))
	default:
		state.Write([]byte(strings.Repeat(" ", pad)))
		state.Write([]byte(text))
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The expected format is the one produced by [Amount.String]: a currency
// code, a single space, and a decimal amount.
// Unmarshaling never rounds: if the text carries fewer fractional digits
// than the currency scale, the amount is zero-padded.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	s := string(text)
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return fmt.Errorf("unmarshaling %T: missing space between currency and amount", Amount{})
	}
	c, err := ParseCurr(s[:i])
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	d, err := decimal.Parse(s[i+1:])
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = newAmount(c, d)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
