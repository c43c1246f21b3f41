/*
Package decimal implements immutable decimal numbers of arbitrary precision.
It is specifically designed for use in transactional financial systems.

# Representation

[Decimal] is a struct with two fields:

  - Coefficient: a signed integer of arbitrary precision ([bigint.Int])
    representing the numeric value of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45.

The numerical value of a decimal is Coefficient / 10^Scale.
In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.
The scale is never inferred or reduced implicitly: [Decimal.Equal]
distinguishes 1.5 from 1.50, while [Decimal.Cmp] treats them as equal.

Special values such as NaN, Infinity, or negative zeros are not supported,
and no operation ever falls back to binary floating point.
The magnitude of a decimal is bounded only by available memory.

# Operations

Addition, subtraction, and multiplication are always exact and never consult
a rounding mode.
Division and rescaling take an explicit target scale and a [RoundingMode];
under [RoundUnnecessary] they fail with [ErrRoundingNecessary] instead of
rounding.
[Decimal.Allocate] and [Decimal.Split] distribute a decimal into parts that
sum up to the original exactly, using the largest-remainder method.

# Errors

All fallible operations return sentinel errors that can be tested with
[errors.Is]: [ErrInvalidNumber], [ErrDivisionByZero], [ErrRoundingNecessary],
[ErrScaleRange], and [ErrInvalidRatios].
The package never silently substitutes a default value for a failed
operation.
*/
package decimal
