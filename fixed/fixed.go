package fixed

import (
	"math"
	"math/big"
)

const (
	// PreciseLimit is the magnitude below which a whole part is multiplied
	// against a float64 directly.
	PreciseLimit = 1_000_000_000_000_000

	// MaxPrecision is the number of fractional digits a Fixed can carry.
	MaxPrecision = 15
)

var (
	zero         = new(big.Int)
	one          = big.NewInt(1)
	preciseLimit = big.NewInt(PreciseLimit)
)

// Fixed is a fixed point number. The zero value is 0.
type Fixed struct {
	floor *big.Int
	frac  float64
}

// New returns floor + frac. A frac outside [0, 1) is carried into the whole
// part. A NaN or infinite frac is dropped.
func New(floor *big.Int, frac float64) Fixed {
	i := new(big.Int)
	if floor != nil {
		i.Set(floor)
	}

	return normalize(i, frac)
}

// NewInt64 returns i + frac.
func NewInt64(i int64, frac float64) Fixed {
	return normalize(big.NewInt(i), frac)
}

// FromFloat64 returns the fixed point value nearest to d.
func FromFloat64(d float64) Fixed {
	return normalize(new(big.Int), d)
}

// normalize takes ownership of i.
func normalize(i *big.Int, frac float64) Fixed {
	if math.IsNaN(frac) || math.IsInf(frac, 0) {
		return Fixed{floor: i}
	}

	if frac < 0 || frac >= 1 {
		w := math.Floor(frac)
		i.Add(i, floatInt(w))
		frac -= w

		// Subtracting w can round up to exactly 1 (e.g. -1e-20 + 1).
		if frac >= 1 {
			i.Add(i, one)
			frac = 0
		}
	}

	if frac == 0 {
		// Collapse negative zero.
		frac = 0
	}

	return Fixed{floor: i, frac: frac}
}

// floatInt converts an integral float64 into a big.Int.
func floatInt(w float64) *big.Int {
	if w > -(1<<63) && w < 1<<63 {
		return big.NewInt(int64(w))
	}

	i, _ := new(big.Float).SetFloat64(w).Int(nil)

	return i
}

// intFloat converts i to the nearest float64.
func intFloat(i *big.Int) float64 {
	if i.IsInt64() {
		return float64(i.Int64())
	}

	f, _ := new(big.Float).SetInt(i).Float64()

	return f
}

func (a Fixed) int() *big.Int {
	if a.floor == nil {
		return zero
	}

	return a.floor
}

// Floor returns the largest integer not greater than a.
func (a Fixed) Floor() *big.Int {
	return new(big.Int).Set(a.int())
}

// FlooredFraction returns the stored fraction, so that
// Floor() + FlooredFraction() == a.
func (a Fixed) FlooredFraction() float64 {
	return a.frac
}

// Trunc returns a rounded toward zero.
func (a Fixed) Trunc() *big.Int {
	i := a.Floor()
	if i.Sign() < 0 && a.frac != 0 {
		i.Add(i, one)
	}

	return i
}

// Fraction returns the fractional part with the same sign as a, so that
// Trunc() + Fraction() == a.
func (a Fixed) Fraction() float64 {
	if a.int().Sign() < 0 && a.frac != 0 {
		return a.frac - 1
	}

	return a.frac
}

// Int returns a rounded to the nearest integer. Halves round up.
func (a Fixed) Int() *big.Int {
	i := a.Floor()
	if a.frac >= 0.5 {
		i.Add(i, one)
	}

	return i
}

// Float64 returns the float64 nearest to a.
func (a Fixed) Float64() float64 {
	return intFloat(a.int()) + a.frac
}

// Sign returns -1, 0 or +1.
func (a Fixed) Sign() int {
	if s := a.int().Sign(); s != 0 {
		return s
	}

	if a.frac > 0 {
		return 1
	}

	return 0
}

// IsZero reports whether a is 0.
func (a Fixed) IsZero() bool {
	return a.Sign() == 0
}

// IsNegative reports whether a < 0.
func (a Fixed) IsNegative() bool {
	return a.int().Sign() < 0
}

// Add returns a + b.
func (a Fixed) Add(b Fixed) Fixed {
	return normalize(new(big.Int).Add(a.int(), b.int()), a.frac+b.frac)
}

// Sub returns a - b.
func (a Fixed) Sub(b Fixed) Fixed {
	return normalize(new(big.Int).Sub(a.int(), b.int()), a.frac-b.frac)
}

// Neg returns -a.
func (a Fixed) Neg() Fixed {
	return normalize(new(big.Int).Neg(a.int()), -a.frac)
}

// Abs returns |a|.
func (a Fixed) Abs() Fixed {
	if a.IsNegative() {
		return a.Neg()
	}

	return a
}

// Mul returns a * b.
//
//  (i1 + f1) * (i2 + f2) = i1*i2 + i1*f2 + f1*i2 + f1*f2
func (a Fixed) Mul(b Fixed) Fixed {
	r := normalize(new(big.Int).Mul(a.int(), b.int()), a.frac*b.frac)
	r = r.Add(mulFloat(a.int(), b.frac))

	return r.Add(mulFloat(b.int(), a.frac))
}

// Div returns a / b. It returns zero when b is zero or when the float64
// approximation of b is zero or infinite.
func (a Fixed) Div(b Fixed) Fixed {
	d := b.Float64()
	if d == 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		return Fixed{floor: new(big.Int)}
	}

	if b.frac == 0 || b.int().CmpAbs(preciseLimit) >= 0 {
		q, r := new(big.Int).DivMod(a.int(), b.int(), new(big.Int))

		return normalize(q, (intFloat(r)+a.frac)/d)
	}

	inv := 1 / d

	return mulFloat(a.int(), inv).Add(FromFloat64(a.frac * inv))
}

// mulFloat returns i * f without dropping the low digits of a large i.
func mulFloat(i *big.Int, f float64) Fixed {
	if i.Sign() == 0 || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Fixed{floor: new(big.Int)}
	}

	whole := new(big.Int)

	w := math.Floor(f)
	if w != 0 {
		whole.Mul(i, floatInt(w))
		f -= w
	}

	if f == 0 {
		return Fixed{floor: whole}
	}

	if i.CmpAbs(preciseLimit) < 0 {
		return normalize(whole, intFloat(i)*f)
	}

	high, low := new(big.Int).DivMod(i, preciseLimit, new(big.Int))

	scaled := math.Round(f * PreciseLimit)
	high.Mul(high, big.NewInt(int64(scaled)))
	whole.Add(whole, high)

	return normalize(whole, intFloat(low)*f)
}

// Cmp returns -1 if a < b, 0 if a == b and +1 if a > b.
func (a Fixed) Cmp(b Fixed) int {
	if c := a.int().Cmp(b.int()); c != 0 {
		return c
	}

	switch {
	case a.frac < b.frac:
		return -1
	case a.frac > b.frac:
		return 1
	}

	return 0
}

// Equal reports whether a == b.
func (a Fixed) Equal(b Fixed) bool {
	return a.Cmp(b) == 0
}

// Less reports whether a < b.
func (a Fixed) Less(b Fixed) bool {
	return a.Cmp(b) < 0
}

// Min returns the smaller of a and b.
func Min(a, b Fixed) Fixed {
	if b.Less(a) {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max(a, b Fixed) Fixed {
	if a.Less(b) {
		return b
	}

	return a
}

// Round returns a rounded to digits fractional digits. Digits less than one
// round to a whole number. Digits beyond MaxPrecision leave a unchanged.
func (a Fixed) Round(digits int) Fixed {
	if digits <= 0 {
		return Fixed{floor: a.Int()}
	}

	if digits > MaxPrecision {
		return a
	}

	scale := math.Pow10(digits)

	return normalize(a.Floor(), math.Round(a.frac*scale)/scale)
}
