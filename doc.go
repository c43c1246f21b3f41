/*
Package money implements monetary values in various currencies.
It pairs the [decimal] package's exact arbitrary-precision arithmetic with
a [Currency] type representing ISO 4217 currencies.

# Representation

The package consists of two main types: Amount and Currency.
An [Amount] represents a monetary value and consists of a Currency and
a [decimal.Decimal] value.
The Currency type is implemented as an integer index into an in-memory array
containing information such as code, numeric code, and scale.
The array is populated once at process initialization and is read-only
afterwards.

All values are immutable: every operation returns a new Amount, which makes
the types safe for concurrent use by multiple goroutines without locking.

# Operations

Amounts support arithmetic (Add, Sub, Mul, Quo), comparisons, and rescaling.
Every binary operation between two amounts fails with [ErrCurrencyMismatch]
unless both operands share the same currency; the package never converts
between currencies.
Addition and subtraction are always exact.
Multiplication and division round the result to the scale of the currency
using an explicit [decimal.RoundingMode] supplied by the caller.

[Amount.Allocate] and [Amount.Split] distribute an amount into parts that
sum up to the original exactly, using the largest-remainder method, so no
minor unit is ever lost or duplicated.

# Boundaries

Amounts enter and leave the package as decimal text: [Parse] and
[NewFromMinorUnits] on the way in, [Amount.String] and the marshaling
interfaces on the way out.
The canonical text form always renders the full scale of the currency,
including trailing zeros, and is stable and parseable, which makes it
suitable for storage and transmission.
No conversion to binary floating point happens at any stage.
*/
package money
