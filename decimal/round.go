package decimal

import "math/big"

// RoundingMode selects how discarded digits are resolved.
type RoundingMode int

// Rounding modes.
const (
	// Even rounds to the nearest value, ties to the even neighbour.
	Even RoundingMode = iota
	// Floor rounds toward negative infinity.
	Floor
	// Ceil rounds toward positive infinity.
	Ceil
	// Up rounds away from zero.
	Up
	// Down rounds toward zero.
	Down
)

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	switch m {
	case Even:
		return "even"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	case Up:
		return "up"
	case Down:
		return "down"
	}

	return "unknown"
}

// Round returns d with at most prec fractional digits, resolving the
// discarded digits with mode. A negative prec is treated as zero.
func (d Decimal) Round(prec int, mode RoundingMode) Decimal {
	if prec < 0 {
		prec = 0
	}

	if prec >= d.prec {
		return d
	}

	q := roundQuo(d.Unscaled(), pow10(d.prec-prec), mode)

	return atScale(q, prec).Reduce()
}

// ToInteger returns d rounded to an integer with mode.
func (d Decimal) ToInteger(mode RoundingMode) *big.Int {
	if d.prec == 0 {
		return d.Whole()
	}

	return roundQuo(d.Unscaled(), pow10(d.prec), mode)
}

// roundQuo returns u / p rounded with mode. p must be positive.
func roundQuo(u, p *big.Int, mode RoundingMode) *big.Int {
	// With a positive divisor DivMod floors q and leaves 0 <= r < p.
	q, r := new(big.Int).DivMod(u, p, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	switch mode {
	case Floor:
	case Ceil:
		q.Add(q, one)
	case Up:
		if u.Sign() > 0 {
			q.Add(q, one)
		}
	case Down:
		if u.Sign() < 0 {
			q.Add(q, one)
		}
	default:
		c := r.Lsh(r, 1).Cmp(p)
		if c > 0 || c == 0 && q.Bit(0) == 1 {
			q.Add(q, one)
		}
	}

	return q
}
