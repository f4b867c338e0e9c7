package decimal

import (
	"encoding/binary"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/calebcase/tempo/integer"
)

// DefaultFloatPrecision is the number of fractional digits kept by
// FromFloat64 when no limit is given.
const DefaultFloatPrecision = 16

var syntax = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?$`)

// parse builds a decimal from already validated digit strings.
func parse(sign, whole, frac string) Decimal {
	w, f := new(big.Int), new(big.Int)
	if whole != "" {
		w.SetString(whole, 10)
	}
	if frac != "" {
		f.SetString(frac, 10)
	}

	d := Decimal{whole: w, frac: f, prec: len(frac)}
	if sign == "-" {
		d = d.Neg()
	}

	return d
}

// Parse converts text of the form [+-]digits[.digits] into a Decimal. The
// precision is the number of fractional digits given, trailing zeros
// included.
func Parse(s string) (Decimal, error) {
	m := syntax.FindStringSubmatch(s)
	if m == nil || m[2] == "" && m[3] == "" {
		return Decimal{}, Error.New("invalid syntax: %q", s)
	}

	return parse(m[1], m[2], m[3]), nil
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// FromFloat64 converts f using its shortest fixed notation, truncated to
// maxPrec fractional digits (DefaultFloatPrecision if negative). NaN and
// infinities convert to zero.
func FromFloat64(f float64, maxPrec int) Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}
	}

	if maxPrec < 0 {
		maxPrec = DefaultFloatPrecision
	}

	// 'f' formatting always matches the syntax.
	m := syntax.FindStringSubmatch(strconv.FormatFloat(f, 'f', -1, 64))

	frac := m[3]
	if len(frac) > maxPrec {
		frac = frac[:maxPrec]
	}

	return parse(m[1], m[2], frac).Reduce()
}

// Float64 returns the float64 nearest to d.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)

	return f
}

// Show renders d in decimal notation after rounding (half to even) to
// maxPrec fractional digits. A negative maxPrec shows every digit.
func (d Decimal) Show(maxPrec int) string {
	r := d
	if maxPrec >= 0 {
		r = d.Round(maxPrec, Even)
	}

	u := r.Unscaled()
	neg := u.Sign() < 0

	s := u.Abs(u).String()
	if r.prec > 0 {
		if len(s) <= r.prec {
			s = strings.Repeat("0", r.prec-len(s)+1) + s
		}

		s = s[:len(s)-r.prec] + "." + s[len(s)-r.prec:]
	}

	if neg {
		s = "-" + s
	}

	return s
}

// String implements fmt.Stringer.
func (d Decimal) String() string {
	return d.Show(-1)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	data = integer.Append(nil, d.Unscaled())

	return binary.AppendUvarint(data, uint64(d.prec)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	u, rest, err := integer.Read(data)
	if err != nil {
		return err
	}

	prec, n := binary.Uvarint(rest)
	if n <= 0 || n != len(rest) {
		return Error.New("invalid precision")
	}

	if prec > MaxScale {
		return Error.New("precision too large: %d", prec)
	}

	*d = atScale(u, int(prec))

	return nil
}
