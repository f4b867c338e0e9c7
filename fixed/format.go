package fixed

import (
	"encoding/binary"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/calebcase/tempo/integer"
)

// Precision sentinels for Show.
const (
	// Auto prints the fewest fractional digits that represent the value.
	Auto = -1

	// Grouped is like Auto, but pads the fractional digits with zeros to a
	// multiple of three (milli, micro, nano, ...).
	Grouped = -2
)

var syntax = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?$`)

// Show renders a in decimal notation. A precision of Auto or Grouped picks the
// number of fractional digits from the value; any other non-negative precision
// truncates or pads the fraction to exactly that many digits. The fraction is
// first rounded to maxPrecision digits (at most MaxPrecision). Whole numbers
// and a precision of zero are printed without a decimal point.
func (a Fixed) Show(precision, maxPrecision int) string {
	if maxPrecision < 0 || maxPrecision > MaxPrecision {
		maxPrecision = MaxPrecision
	}

	neg := a.IsNegative()

	v := a
	if neg {
		v = a.Neg()
	}
	v = v.Round(maxPrecision)

	var digits string
	if v.frac != 0 && precision != 0 {
		// v.frac < 1 so the rendering is always "0.ddd".
		digits = strconv.FormatFloat(v.frac, 'f', maxPrecision, 64)[2:]

		switch precision {
		case Auto:
			digits = strings.TrimRight(digits, "0")
		case Grouped:
			digits = strings.TrimRight(digits, "0")
			if r := len(digits) % 3; r != 0 {
				digits += strings.Repeat("0", 3-r)
			}
		default:
			if precision < len(digits) {
				digits = digits[:precision]
			} else {
				digits += strings.Repeat("0", precision-len(digits))
			}
		}
	}

	var sb strings.Builder

	whole := v.int().String()
	if neg && (whole != "0" || strings.Trim(digits, "0") != "") {
		sb.WriteByte('-')
	}

	sb.WriteString(whole)

	if digits != "" {
		sb.WriteByte('.')
		sb.WriteString(digits)
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (a Fixed) String() string {
	return a.Show(Auto, MaxPrecision)
}

// Parse converts text of the form [+-]digits[.digits] into a Fixed. Either the
// whole or the fractional digits may be omitted, but not both.
func Parse(s string) (Fixed, error) {
	m := syntax.FindStringSubmatch(s)
	if m == nil || m[2] == "" && m[3] == "" {
		return Fixed{}, Error.New("invalid syntax: %q", s)
	}

	whole := new(big.Int)
	if m[2] != "" {
		// The pattern only admits digits.
		whole.SetString(m[2], 10)
	}

	var frac float64
	if m[3] != "" {
		f, err := strconv.ParseFloat("0."+m[3], 64)
		if err != nil {
			return Fixed{}, Error.Wrap(err)
		}

		frac = f
	}

	v := normalize(whole, frac)
	if m[1] == "-" {
		v = v.Neg()
	}

	return v, nil
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(s string) Fixed {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// MarshalText implements encoding.TextMarshaler.
func (a Fixed) MarshalText() (text []byte, err error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Fixed) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The whole part is
// written with the integer package layout followed by the fraction as eight
// big-endian bytes of its IEEE-754 representation.
func (a Fixed) MarshalBinary() (data []byte, err error) {
	data = integer.Append(nil, a.int())

	return binary.BigEndian.AppendUint64(data, math.Float64bits(a.frac)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Fixed) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	floor, rest, err := integer.Read(data)
	if err != nil {
		return err
	}

	if len(rest) != 8 {
		return Error.New("invalid fraction size: %d", len(rest))
	}

	frac := math.Float64frombits(binary.BigEndian.Uint64(rest))
	if !(frac >= 0 && frac < 1) {
		return Error.New("fraction out of range: %v", frac)
	}

	*a = Fixed{floor: floor, frac: frac}

	return nil
}
