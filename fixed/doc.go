// Package fixed provides a fixed point number with an unbounded whole part.
//
// The equation for a fixed point number is:
//
//  number = floor + frac
//
// Where floor is an arbitrary precision integer and frac is a float64 in the
// range [0, 1). The fraction is always floored, so negative numbers carry
// their sign in floor only:
//
//  -0.3 = -1 + 0.7
//
// Keeping the fraction in a native float64 gives roughly 15 significant
// fractional digits and makes the common cases (small whole parts, a handful
// of fractional digits) much cheaper than a full decimal.
//
// Precision
//
// Products of a whole part and a fraction are exact to 15 fractional digits
// only while the whole part is below PreciseLimit (10^15). Beyond that the
// whole part is split into high and low halves:
//
//  (high, low) = divmod(whole, 10^15)
//  whole * frac = high * round(frac * 10^15) + low * frac
//
// So the high half is multiplied in integer arithmetic and only the low half
// passes through a float64.
//
// Division
//
// Division never fails. Dividing by zero, or by a value whose float64
// approximation is zero or infinite, returns zero.
//
// Values
//
// Fixed is an immutable value. Every operation returns a new Fixed and none
// modify their operands, so values may be shared between goroutines freely.
// Compare values with Equal or Cmp rather than ==.
package fixed
