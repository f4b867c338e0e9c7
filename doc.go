// Package tempo collects exact numeric types for long running clocks and
// money-like quantities.
//
// The work is split across subpackages:
//
//   - fixed: a big integer floor plus a float64 fraction in [0, 1), giving
//     unbounded range with roughly fifteen digits of sub-unit precision.
//   - decimal: an exact decimal with big integer whole and fraction parts and
//     an explicit number of fractional digits.
//   - timestamp: a fixed offset from an epoch plus a count of inserted leap
//     seconds, ordered so that a time inside a leap second sorts between the
//     second before it and the second after it.
//   - integer: the zigzag big integer layout shared by the binary encodings.
//
// All values are immutable: operations return new values and never modify
// their receivers or arguments.
package tempo
