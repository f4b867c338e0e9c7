package timestamp

import (
	"math"
	"math/big"

	"github.com/calebcase/tempo/fixed"
)

var one = fixed.NewInt64(1, 0)

// Epoch is the zero timestamp.
var Epoch = Timestamp{}

// Timestamp is an instant as a continuous offset plus a leap second count.
// The zero value is the epoch.
type Timestamp struct {
	since fixed.Fixed
	leap  int64
}

// New returns the timestamp since seconds after the epoch carrying
// leapSeconds extra leap seconds. A negative leapSeconds is treated as zero.
func New(since fixed.Fixed, leapSeconds int64) Timestamp {
	if leapSeconds < 0 {
		leapSeconds = 0
	}

	return Timestamp{since: since, leap: leapSeconds}
}

// FromSeconds returns the timestamp s whole seconds after the epoch.
func FromSeconds(s int64) Timestamp {
	return Timestamp{since: fixed.NewInt64(s, 0)}
}

// Since returns the continuous offset from the epoch, excluding leap seconds.
func (t Timestamp) Since() fixed.Fixed {
	return t.since
}

// LeapSeconds returns the number of leap seconds carried by t.
func (t Timestamp) LeapSeconds() int64 {
	return t.leap
}

// TotalSeconds returns since + leap seconds.
func (t Timestamp) TotalSeconds() fixed.Fixed {
	return t.since.Add(fixed.NewInt64(t.leap, 0))
}

// WithoutLeapSeconds returns t with its leap seconds dropped.
func (t Timestamp) WithoutLeapSeconds() Timestamp {
	return Timestamp{since: t.since}
}

// AddLeapSeconds returns t advanced by delta leap seconds. A delta that is not
// positive changes nothing.
//
// A delta under one second on a timestamp without leap seconds places t inside
// the inserted leap second: since is held back one second and the leap count
// becomes one. Otherwise the fractional part of delta moves since and the
// whole part is added to the leap count.
func (t Timestamp) AddLeapSeconds(delta fixed.Fixed) Timestamp {
	if delta.Sign() <= 0 {
		return t
	}

	if t.leap == 0 && delta.Less(one) {
		return Timestamp{since: t.since.Sub(one), leap: 1}
	}

	return Timestamp{
		since: t.since.Add(fixed.FromFloat64(delta.Fraction())),
		leap:  saturatingAdd(t.leap, delta.Trunc()),
	}
}

func saturatingAdd(a int64, b *big.Int) int64 {
	sum := new(big.Int).Add(big.NewInt(a), b)
	if !sum.IsInt64() {
		return math.MaxInt64
	}

	return sum.Int64()
}

// CalendarSeconds returns the whole seconds of since, the fraction of the
// current second in [0, 1) and the leap second count.
func (t Timestamp) CalendarSeconds() (seconds *big.Int, frac float64, leap int64) {
	return t.since.Floor(), t.since.FlooredFraction(), t.leap
}

// Add returns t moved forward by span seconds. Leap seconds are unchanged.
func (t Timestamp) Add(span fixed.Fixed) Timestamp {
	return Timestamp{since: t.since.Add(span), leap: t.leap}
}

// Sub returns t moved back by span seconds. Leap seconds are unchanged.
func (t Timestamp) Sub(span fixed.Fixed) Timestamp {
	return Timestamp{since: t.since.Sub(span), leap: t.leap}
}

// Diff returns the flattened number of seconds from u to t.
func (t Timestamp) Diff(u Timestamp) fixed.Fixed {
	return t.TotalSeconds().Sub(u.TotalSeconds())
}

// Round returns t with since rounded to digits fractional digits.
func (t Timestamp) Round(digits int) Timestamp {
	return Timestamp{since: t.since.Round(digits), leap: t.leap}
}

// Cmp returns -1 if t is before u, 0 if they are equal and +1 if t is after u.
func (t Timestamp) Cmp(u Timestamp) int {
	if c := t.since.Cmp(u.since); c != 0 {
		return c
	}

	switch {
	case t.leap < u.leap:
		return -1
	case t.leap > u.leap:
		return 1
	}

	return 0
}

// Equal reports whether t and u are the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.Cmp(u) == 0
}

// Before reports whether t is before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.Cmp(u) < 0
}

// After reports whether t is after u.
func (t Timestamp) After(u Timestamp) bool {
	return t.Cmp(u) > 0
}
