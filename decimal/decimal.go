package decimal

import (
	"math/big"
)

// MaxScale is the largest precision accepted when decoding.
const MaxScale = 1 << 21

var (
	zero = new(big.Int)
	one  = big.NewInt(1)
	ten  = big.NewInt(10)

	powers [32]*big.Int
)

func init() {
	p := big.NewInt(1)
	for i := range powers {
		powers[i] = new(big.Int).Set(p)
		p.Mul(p, ten)
	}
}

// pow10 returns 10^n. The result must not be modified.
func pow10(n int) *big.Int {
	if n < len(powers) {
		return powers[n]
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// digits returns the number of base 10 digits in |i|, or 0 for 0.
func digits(i *big.Int) int {
	if i.Sign() == 0 {
		return 0
	}

	n := len(i.String())
	if i.Sign() < 0 {
		n--
	}

	return n
}

// Decimal is a base 10 number. The zero value is 0.
type Decimal struct {
	whole *big.Int
	frac  *big.Int
	prec  int
}

// New returns whole + frac * 10^-prec. A negative prec is inferred from the
// number of digits in frac. A frac outside [0, 10^prec) borrows from or
// carries into whole.
func New(whole, frac *big.Int, prec int) Decimal {
	w, f := new(big.Int), new(big.Int)
	if whole != nil {
		w.Set(whole)
	}
	if frac != nil {
		f.Set(frac)
	}

	if prec < 0 {
		prec = digits(f)
	}

	return normalize(w, f, prec)
}

// NewFromInt64 is like New for int64 parts.
func NewFromInt64(whole, frac int64, prec int) Decimal {
	return normalize(big.NewInt(whole), big.NewInt(frac), inferPrec(frac, prec))
}

func inferPrec(frac int64, prec int) int {
	if prec >= 0 {
		return prec
	}

	return digits(big.NewInt(frac))
}

// AtScale interprets i as already scaled by 10^-prec:
//
//  AtScale(123, 2) = 1.23
func AtScale(i *big.Int, prec int) Decimal {
	u := new(big.Int)
	if i != nil {
		u.Set(i)
	}

	return atScale(u, prec)
}

// atScale takes ownership of u.
func atScale(u *big.Int, prec int) Decimal {
	if prec < 0 {
		u.Mul(u, pow10(-prec))
		prec = 0
	}

	w, f := u.DivMod(u, pow10(prec), new(big.Int))

	return Decimal{whole: w, frac: f, prec: prec}
}

// normalize takes ownership of w and f.
func normalize(w, f *big.Int, prec int) Decimal {
	p := pow10(prec)
	if f.Sign() < 0 || f.Cmp(p) >= 0 {
		q, r := new(big.Int).DivMod(f, p, new(big.Int))
		w.Add(w, q)
		f = r
	}

	return Decimal{whole: w, frac: f, prec: prec}
}

func (d Decimal) w() *big.Int {
	if d.whole == nil {
		return zero
	}

	return d.whole
}

func (d Decimal) f() *big.Int {
	if d.frac == nil {
		return zero
	}

	return d.frac
}

// Whole returns the largest integer not greater than d.
func (d Decimal) Whole() *big.Int {
	return new(big.Int).Set(d.w())
}

// Frac returns the fractional digits of d as an integer in [0, 10^Prec()).
func (d Decimal) Frac() *big.Int {
	return new(big.Int).Set(d.f())
}

// Prec returns the number of fractional digits.
func (d Decimal) Prec() int {
	return d.prec
}

// Unscaled returns d * 10^Prec().
func (d Decimal) Unscaled() *big.Int {
	u := new(big.Int).Mul(d.w(), pow10(d.prec))

	return u.Add(u, d.f())
}

// Expand returns d with at least prec fractional digits. The value is
// unchanged.
func (d Decimal) Expand(prec int) Decimal {
	if prec <= d.prec {
		return d
	}

	f := new(big.Int).Mul(d.f(), pow10(prec-d.prec))

	return Decimal{whole: d.Whole(), frac: f, prec: prec}
}

// Reduce returns d with trailing zero fractional digits removed. The value is
// unchanged.
func (d Decimal) Reduce() Decimal {
	f := d.Frac()
	prec := d.prec

	if f.Sign() == 0 {
		return Decimal{whole: d.Whole(), frac: f, prec: 0}
	}

	r := new(big.Int)
	for prec > 0 {
		q, m := new(big.Int).QuoRem(f, ten, r)
		if m.Sign() != 0 {
			break
		}

		f = q
		prec--
	}

	return Decimal{whole: d.Whole(), frac: f, prec: prec}
}

// unify returns a and b at a common precision.
func unify(a, b Decimal) (Decimal, Decimal, int) {
	p := a.prec
	if b.prec > p {
		p = b.prec
	}

	return a.Expand(p), b.Expand(p), p
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	if s := d.w().Sign(); s != 0 {
		return s
	}

	return d.f().Sign()
}

// IsNegative reports whether d < 0.
func (d Decimal) IsNegative() bool {
	return d.Sign() < 0
}

// IsPositive reports whether d > 0.
func (d Decimal) IsPositive() bool {
	return d.Sign() > 0
}

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Cmp returns -1 if d < e, 0 if d == e and +1 if d > e.
func (d Decimal) Cmp(e Decimal) int {
	d, e, _ = unify(d, e)

	if c := d.w().Cmp(e.w()); c != 0 {
		return c
	}

	return d.f().Cmp(e.f())
}

// Equal reports whether d == e regardless of precision.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less reports whether d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Add returns d + e.
func (d Decimal) Add(e Decimal) Decimal {
	d, e, p := unify(d, e)

	w := new(big.Int).Add(d.w(), e.w())
	f := new(big.Int).Add(d.f(), e.f())

	if f.Cmp(pow10(p)) >= 0 {
		w.Add(w, one)
		f.Sub(f, pow10(p))
	}

	return Decimal{whole: w, frac: f, prec: p}.Reduce()
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	d, e, p := unify(d, e)

	w := new(big.Int).Sub(d.w(), e.w())
	f := new(big.Int).Sub(d.f(), e.f())

	if f.Sign() < 0 {
		w.Sub(w, one)
		f.Add(f, pow10(p))
	}

	return Decimal{whole: w, frac: f, prec: p}.Reduce()
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	u := d.Unscaled()

	return atScale(u.Neg(u), d.prec)
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.IsNegative() {
		return d.Neg()
	}

	return d
}

// Mul returns d * e exactly.
func (d Decimal) Mul(e Decimal) Decimal {
	return d.MulPrec(e, -1)
}

// MulPrec returns d * e. If maxPrec is not negative the result is floored to
// at most maxPrec fractional digits.
func (d Decimal) MulPrec(e Decimal, maxPrec int) Decimal {
	d, e, p := unify(d, e)

	u := new(big.Int).Mul(d.Unscaled(), e.Unscaled())
	r := atScale(u, 2*p).Reduce()

	if maxPrec >= 0 {
		r = r.Round(maxPrec, Floor)
	}

	return r
}

// Div returns d / e floored to the precision of d.
func (d Decimal) Div(e Decimal) Decimal {
	return d.DivPrec(e, -1)
}

// DivPrec returns d / e floored to maxPrec fractional digits, or to the
// precision of d if maxPrec is negative. Dividing by zero returns zero.
func (d Decimal) DivPrec(e Decimal, maxPrec int) Decimal {
	if d.IsZero() || e.IsZero() {
		return Decimal{whole: new(big.Int), frac: new(big.Int)}
	}

	mp := maxPrec
	if mp < 0 {
		mp = d.prec
	}

	x, y, _ := unify(d, e)

	// Carry mp+1 guard digits past the target precision.
	scale := 2*mp + 1

	n := x.Unscaled()
	n.Mul(n, pow10(scale))

	m := y.Unscaled()
	if m.Sign() < 0 {
		n.Neg(n)
		m.Neg(m)
	}

	q := n.Div(n, m)

	return atScale(q, scale).Round(mp, Floor)
}
