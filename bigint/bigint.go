package bigint

import (
	"errors"
	"fmt"
	"math/big"
)

// Int type represents an arbitrary-precision signed integer.
// The zero value is the numeric value of 0 and is ready to use.
//
// Int is immutable: the inner [big.Int] is never modified after construction,
// and every arithmetic method returns a new value.
// This design makes Int safe for concurrent use by multiple goroutines.
type Int struct {
	val *big.Int // nil means 0; never mutated after construction
}

var errInvalidInteger = errors.New("invalid integer")

// bigZero is shared by all zero-valued Ints returned from accessors.
var bigZero = new(big.Int)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = func() [40]*big.Int {
	var p [40]*big.Int
	x := big.NewInt(1)
	ten := big.NewInt(10)
	for i := range p {
		p[i] = new(big.Int).Set(x)
		x.Mul(x, ten)
	}
	return p
}()

// tenPow returns 10^power as a read-only *big.Int.
// If power is negative, the result is unpredictable.
func tenPow(power int) *big.Int {
	if power < len(pow10) {
		return pow10[power]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// wrap adopts z without copying.
// The caller must not retain or mutate z afterwards.
func wrap(z *big.Int) Int {
	return Int{val: z}
}

// ref returns the inner value as a read-only *big.Int.
// The result must never be mutated.
func (x Int) ref() *big.Int {
	if x.val == nil {
		return bigZero
	}
	return x.val
}

// New returns an Int equal to i.
func New(i int64) Int {
	return wrap(big.NewInt(i))
}

// Parse converts a string to an Int.
// The input string must consist of an optional leading '+' or '-' sign
// followed by one or more ASCII digits:
//
//	123
//	-123
//	+00123
//
// Parse returns an error if the string contains any other character or
// has no digits at all.
func Parse(s string) (Int, error) {
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return Int{}, fmt.Errorf("parsing %q: no digits: %w", s, errInvalidInteger)
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return Int{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, rest[i], errInvalidInteger)
		}
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("parsing %q: %w", s, errInvalidInteger)
	}
	return wrap(z), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	return x.ref().Sign()
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.ref().Sign() == 0
}

// IsOdd returns true if x is an odd number.
func (x Int) IsOdd() bool {
	return x.ref().Bit(0) != 0
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	return x.ref().Cmp(y.ref())
}

// CmpAbs compares |x| and |y| and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x Int) CmpAbs(y Int) int {
	return x.ref().CmpAbs(y.ref())
}

// Neg returns x with the opposite sign.
func (x Int) Neg() Int {
	return wrap(new(big.Int).Neg(x.ref()))
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	return wrap(new(big.Int).Abs(x.ref()))
}

// Add returns the sum x + y.
func (x Int) Add(y Int) Int {
	return wrap(new(big.Int).Add(x.ref(), y.ref()))
}

// Sub returns the difference x - y.
func (x Int) Sub(y Int) Int {
	return wrap(new(big.Int).Sub(x.ref(), y.ref()))
}

// Mul returns the product x * y.
func (x Int) Mul(y Int) Int {
	return wrap(new(big.Int).Mul(x.ref(), y.ref()))
}

// ErrDivisionByZero is returned by [Int.QuoRem] when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// QuoRem returns the quotient q and remainder r such that x = q*y + r,
// where q is truncated towards zero and r has the same sign as x.
// This matches the semantics of Go's native integer division.
//
// QuoRem returns an error if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v div %v]: %w", x, y, ErrDivisionByZero)
	}
	zq, zr := new(big.Int), new(big.Int)
	zq.QuoRem(x.ref(), y.ref(), zr)
	return wrap(zq), wrap(zr), nil
}

// Lsh (Left Shift) returns x * 10^shift.
// If shift is negative, x is returned unchanged.
func (x Int) Lsh(shift int) Int {
	if shift <= 0 || x.IsZero() {
		return x
	}
	return wrap(new(big.Int).Mul(x.ref(), tenPow(shift)))
}

// Dbl (Double) returns x * 2.
func (x Int) Dbl() Int {
	return wrap(new(big.Int).Lsh(x.ref(), 1))
}

// Inc returns x + 1.
func (x Int) Inc() Int {
	return x.Add(New(1))
}

// Int64 returns the int64 representation of x.
// If x cannot be represented as an int64, then false is returned.
func (x Int) Int64() (i int64, ok bool) {
	if !x.ref().IsInt64() {
		return 0, false
	}
	return x.ref().Int64(), true
}

// Prec returns the length of x in decimal digits.
// Prec assumes that 0 has no digits.
func (x Int) Prec() int {
	if x.IsZero() {
		return 0
	}
	s := x.ref().String()
	if s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// String method implements the [fmt.Stringer] interface and returns
// the decimal representation of x.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	return x.ref().String()
}
