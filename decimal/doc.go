// Package decimal provides an arbitrary precision base 10 number that tracks
// its own precision.
//
// The equation for a decimal number is:
//
//  number = whole + frac * 10^-prec
//
// Where whole and frac are arbitrary precision integers and prec is the number
// of fractional digits. For example:
//
//  1.23 = 1 + 23 * 10^-2
//
// The fraction is always in [0, 10^prec), so negative numbers carry their sign
// in whole only:
//
//  -1.5 = -2 + 5 * 10^-1
//
// Precision
//
// Two decimals with different precisions are brought to the larger of the two
// (Expand) before any arithmetic. Results of arithmetic have trailing zero
// digits stripped (Reduce), so precision never grows without need.
//
// Multiplication is exact; MulPrec may additionally cap the result precision
// by flooring. Division floors the quotient to a target precision which is
// either given (DivPrec) or the dividend's own precision (Div):
//
//  Div(10, 4)          = 2
//  DivPrec(10, 4, 2)   = 2.5
//  DivPrec(1, 3, 4)    = 0.3333
//
// Division by zero returns zero.
//
// Rounding
//
// Round and ToInteger take a RoundingMode:
//
//  | Mode  | 2.5 | -1.5 | -1.25 (1 digit) |
//  |-------|-----|------|-----------------|
//  | Even  | 2   | -2   | -1.2            |
//  | Floor | 2   | -2   | -1.3            |
//  | Ceil  | 3   | -1   | -1.2            |
//  | Up    | 3   | -2   | -1.3            |
//  | Down  | 2   | -1   | -1.2            |
//  |-------|-----|------|-----------------|
//
// Encoding
//
// The binary form is laid out first by the unscaled integer value (whole *
// 10^prec + frac) in the zigzag layout of the integer package, then the
// precision as an unsigned varint. Precision may be up to 2^21.
package decimal
