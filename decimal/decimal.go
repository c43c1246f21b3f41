package decimal

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/decfin/money/bigint"
)

// Decimal type represents a finite decimal number of arbitrary precision.
// The zero value is the numeric value of 0 with a scale of 0.
// Decimal is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a struct with two fields:
//
//   - Coefficient: a signed integer of arbitrary precision representing the
//     numeric value of the decimal without the decimal point.
//   - Scale: a non-negative integer indicating the position of the decimal
//     point within the coefficient.
//     For example, a decimal with a coefficient of 12345 and a scale of 2
//     represents the value 123.45.
//
// The same numeric value can have multiple representations.
// For example, 1, 1.0, and 1.00 all represent the same value but have
// different scales and coefficients.
// [Decimal.Equal] distinguishes such representations, whereas [Decimal.Cmp]
// compares numeric values only.
//
// Special values such as NaN, Infinity, or negative zeros are not supported.
// Arithmetic never falls back to binary floating point.
type Decimal struct {
	coef  bigint.Int // the signed coefficient of the decimal
	scale int        // the position of the decimal point, always >= 0
}

var (
	// ErrInvalidNumber is returned when a string does not represent
	// a valid decimal number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = bigint.ErrDivisionByZero

	// ErrRoundingNecessary is returned when an operation performed under
	// [RoundUnnecessary] cannot be represented exactly at the target scale.
	ErrRoundingNecessary = errors.New("rounding necessary")

	// ErrScaleRange is returned when a target scale is negative.
	ErrScaleRange = errors.New("scale out of range")
)

func newDecimal(coef bigint.Int, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrScaleRange
	}
	return Decimal{coef: coef, scale: scale}, nil
}

// New returns a decimal equal to coef / 10^scale.
// New panics if the scale is negative.
func New(coef int64, scale int) Decimal {
	d, err := newDecimal(bigint.New(coef), scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
//
// NewFromBigInt returns an error if the scale is negative.
func NewFromBigInt(coef bigint.Int, scale int) (Decimal, error) {
	d, err := newDecimal(coef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return d, nil
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// The scale of the result equals the number of digits after the decimal point,
// so trailing zeros in the fractional part are preserved.
//
// Parse returns an error if the string does not represent a valid decimal
// number, including strings with more than one decimal point or with no
// digits at all.
func Parse(dec string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		scale   int
		hascoef bool
		haspnt  bool
	)

	width = len(dec)

	// Sign
	switch {
	case pos == width:
		// skip
	case dec[pos] == '-':
		neg = true
		pos++
	case dec[pos] == '+':
		pos++
	}

	digits := make([]byte, 0, width)

	for ; pos < width; pos++ {
		switch {
		case dec[pos] >= '0' && dec[pos] <= '9':
			hascoef = true
			digits = append(digits, dec[pos])
			if haspnt {
				scale++
			}
		case dec[pos] == '.':
			if haspnt {
				return Decimal{}, fmt.Errorf("parsing %q: multiple decimal points: %w", dec, ErrInvalidNumber)
			}
			haspnt = true
		default:
			return Decimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", dec, dec[pos], ErrInvalidNumber)
		}
	}

	if !hascoef {
		return Decimal{}, fmt.Errorf("parsing %q: no coefficient: %w", dec, ErrInvalidNumber)
	}

	coef, err := bigint.Parse(string(digits))
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", dec, ErrInvalidNumber)
	}
	if neg {
		coef = coef.Neg()
	}
	return newDecimal(coef, scale)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(dec string) Decimal {
	d, err := Parse(dec)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", dec, err))
	}
	return d
}

// Coef returns the coefficient of the decimal.
// See also method [Decimal.Scale].
func (d Decimal) Coef() bigint.Int {
	return d.coef
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// MinScale returns the smallest scale that d can be rescaled to
// without rounding.
// See also method [Decimal.Trim].
func (d Decimal) MinScale() int {
	if d.scale == 0 || d.IsZero() {
		return 0
	}
	scale := d.scale
	coef := d.coef
	ten := bigint.New(10)
	for scale > 0 {
		q, r, err := coef.QuoRem(ten)
		if err != nil || !r.IsZero() {
			break
		}
		coef = q
		scale--
	}
	return scale
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.coef.Sign()
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.coef.Sign() < 0
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.coef.Sign() > 0
}

// IsInt returns true if there are no significant digits after the decimal point.
func (d Decimal) IsInt() bool {
	return d.MinScale() == 0
}

// Zero returns a decimal with a value of 0 and the same scale as d.
// See also methods [Decimal.One], [Decimal.ULP].
func (d Decimal) Zero() Decimal {
	return Decimal{scale: d.scale}
}

// One returns a decimal with a value of 1 and the same scale as d.
// See also methods [Decimal.Zero], [Decimal.ULP].
func (d Decimal) One() Decimal {
	return Decimal{coef: bigint.New(1).Lsh(d.scale), scale: d.scale}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two decimals with the same scale as d.
// It can be useful for implementing rounding and comparison algorithms.
// See also methods [Decimal.Zero], [Decimal.One].
func (d Decimal) ULP() Decimal {
	return Decimal{coef: bigint.New(1), scale: d.scale}
}

// Neg returns d with the opposite sign.
func (d Decimal) Neg() Decimal {
	return Decimal{coef: d.coef.Neg(), scale: d.scale}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{coef: d.coef.Abs(), scale: d.scale}
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// align rescales the decimal with the smaller scale to the larger scale
// and returns both coefficients together with the common scale.
func align(d, e Decimal) (dcoef, ecoef bigint.Int, scale int) {
	dcoef, ecoef = d.coef, e.coef
	switch {
	case d.scale == e.scale:
		scale = d.scale
	case e.scale < d.scale:
		scale = d.scale
		ecoef = ecoef.Lsh(d.scale - e.scale)
	default:
		scale = e.scale
		dcoef = dcoef.Lsh(e.scale - d.scale)
	}
	return dcoef, ecoef, scale
}

// Add returns the sum of d and e.
// The scale of the result is the larger of the scales of the operands.
// Add is always exact.
func (d Decimal) Add(e Decimal) Decimal {
	dcoef, ecoef, scale := align(d, e)
	return Decimal{coef: dcoef.Add(ecoef), scale: scale}
}

// Sub returns the difference of d and e.
// The scale of the result is the larger of the scales of the operands.
// Sub is always exact.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the product of d and e.
// The scale of the result is the sum of the scales of the operands.
// Mul is always exact.
func (d Decimal) Mul(e Decimal) Decimal {
	return Decimal{coef: d.coef.Mul(e.coef), scale: d.scale + e.scale}
}

// Quo returns the quotient of d and e rounded to the given scale
// according to the given rounding mode.
// There is no implicit scale inference: the target scale is always explicit.
//
// Quo returns an error if:
//   - e is zero;
//   - the scale is negative;
//   - the mode is [RoundUnnecessary] and the division is inexact.
func (d Decimal) Quo(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	f, err := d.quo(e, scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) quo(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrScaleRange
	}
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}

	// The exact quotient is (dcoef / ecoef) * 10^(e.scale - d.scale).
	// Shift the numerator or the denominator so that truncating the integer
	// quotient lands exactly on the target scale.
	num, den := d.coef, e.coef
	if exp := scale + e.scale - d.scale; exp >= 0 {
		num = num.Lsh(exp)
	} else {
		den = den.Lsh(-exp)
	}

	coef, err := roundQuo(num, den, mode)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimal(coef, scale)
}

// Rescale returns d rounded or zero-padded to the given number of digits
// after the decimal point.
// Increasing the scale pads the coefficient with zeros and is always exact;
// decreasing the scale rounds according to the given mode.
//
// Rescale returns an error if:
//   - the scale is negative;
//   - the mode is [RoundUnnecessary] and rescaling is inexact.
func (d Decimal) Rescale(scale int, mode RoundingMode) (Decimal, error) {
	f, err := d.rescale(scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("rescaling %v to %v digits: %w", d, scale, err)
	}
	return f, nil
}

func (d Decimal) rescale(scale int, mode RoundingMode) (Decimal, error) {
	switch {
	case scale < 0:
		return Decimal{}, ErrScaleRange
	case scale == d.scale:
		return d, nil
	case scale > d.scale:
		return Decimal{coef: d.coef.Lsh(scale - d.scale), scale: scale}, nil
	}
	coef, err := roundQuo(d.coef, bigint.New(1).Lsh(d.scale-scale), mode)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimal(coef, scale)
}

// Pad returns d zero-padded to the given number of digits after the decimal
// point. Padding is always exact.
// If the given scale is smaller than the scale of d, d is returned unchanged.
// See also method [Decimal.Rescale].
func (d Decimal) Pad(scale int) Decimal {
	if scale <= d.scale {
		return d
	}
	return Decimal{coef: d.coef.Lsh(scale - d.scale), scale: scale}
}

// Round returns d rounded to the given number of digits after the decimal
// point using [RoundHalfEven] (banker's rounding).
// If the scale of d is less than the given scale, the result is zero-padded.
//
// Round panics if the scale is negative.
// See also method [Decimal.Rescale].
func (d Decimal) Round(scale int) Decimal {
	f, err := d.rescale(scale, RoundHalfEven)
	if err != nil {
		panic(fmt.Sprintf("%q.Round(%v) failed: %v", d, scale, err))
	}
	return f
}

// Trunc returns d truncated to the given number of digits after the decimal
// point using [RoundDown] (rounding towards zero).
// If the scale of d is less than the given scale, the result is zero-padded.
//
// Trunc panics if the scale is negative.
// See also method [Decimal.Rescale].
func (d Decimal) Trunc(scale int) Decimal {
	f, err := d.rescale(scale, RoundDown)
	if err != nil {
		panic(fmt.Sprintf("%q.Trunc(%v) failed: %v", d, scale, err))
	}
	return f
}

// Trim returns d with trailing zeros removed up to the given scale.
// See also method [Decimal.MinScale].
func (d Decimal) Trim(scale int) Decimal {
	m := d.MinScale()
	if scale < m {
		scale = m
	}
	if scale >= d.scale {
		return d
	}
	return d.Trunc(scale)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Scales are normalized internally, so 1.5 and 1.50 compare as equal.
// See also method [Decimal.Equal].
func (d Decimal) Cmp(e Decimal) int {
	dcoef, ecoef, _ := align(d, e)
	return dcoef.Cmp(ecoef)
}

// Equal reports whether d and e have the same coefficient and the same scale.
// Decimals that are numerically equal but differ in scale, such as 1.5 and
// 1.50, are not Equal.
// For numeric equality regardless of scale, use [Decimal.Cmp].
func (d Decimal) Equal(e Decimal) bool {
	return d.scale == e.scale && d.coef.Cmp(e.coef) == 0
}

// Min returns the smaller of d and e.
// If the decimals are numerically equal, the one with the larger scale
// is returned.
func (d Decimal) Min(e Decimal) Decimal {
	if d.cmpTotal(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger of d and e.
// If the decimals are numerically equal, the one with the smaller scale
// is returned.
func (d Decimal) Max(e Decimal) Decimal {
	if d.cmpTotal(e) >= 0 {
		return d
	}
	return e
}

func (d Decimal) cmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.scale < d.scale:
		return -1
	case d.scale < e.scale:
		return 1
	}
	return 0
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the decimal.
// The result renders the full scale, including trailing zeros, so that
// [Parse] round-trips it exactly:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	digits := d.coef.Abs().String()

	var b strings.Builder
	b.Grow(len(digits) + 3)
	if d.IsNeg() {
		b.WriteByte('-')
	}
	switch {
	case d.scale == 0:
		b.WriteString(digits)
	case d.scale >= len(digits):
		b.WriteString("0.")
		for i := len(digits); i < d.scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	default:
		b.WriteString(digits[:len(digits)-d.scale])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-d.scale:])
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example  | Description    |
//	| ---------- | -------- | -------------- |
//	| %s, %v     | -123.456 | Decimal        |
//	| %q         | "-123.456" | Quoted decimal |
//	| %f         | -123.46  | Decimal, rounded to the given precision |
//
// The '-' and '0' format flags and width are supported for all verbs.
// Precision is only supported for the %f verb and defaults to the actual
// scale of the decimal; rounding uses [RoundHalfEven].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = d.String()
	case 'q', 'Q':
		text = "\"" + d.String() + "\""
	case 'f', 'F':
		f := d
		if p, ok := state.Precision(); ok {
			if p > d.scale {
				f = d.Pad(p)
			} else {
				f = d.Round(p)
			}
		}
		text = f.String()
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
		return
	}
	writePadded(state, text, verb == 'f' || verb == 'F')
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
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d = New(value, 0)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value returns the canonical string form, never a native floating value.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
