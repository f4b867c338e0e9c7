package timestamp

import (
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"

	"github.com/calebcase/tempo/fixed"
)

const (
	// DefaultPrecision is the number of fractional digits String shows.
	DefaultPrecision = 9

	// DefaultWidth is the minimum number of whole second digits String shows.
	DefaultWidth = 1
)

var syntax = regexp.MustCompile(`^(\S+?)(?: \(\+([0-9]+) leap\))?$`)

// Show renders since with at most maxPrecision fractional digits and at least
// secondsWidth whole second digits, followed by " (+N leap)" when t carries
// leap seconds.
func (t Timestamp) Show(maxPrecision, secondsWidth int) string {
	s := t.since.Show(fixed.Auto, maxPrecision)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
	}

	if pad := secondsWidth - len(whole); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}

	s = sign + s

	if t.leap != 0 {
		s += " (+" + strconv.FormatInt(t.leap, 10) + " leap)"
	}

	return s
}

// String implements fmt.Stringer.
func (t Timestamp) String() string {
	return t.Show(DefaultPrecision, DefaultWidth)
}

// Parse reads the format written by String.
func Parse(s string) (Timestamp, error) {
	m := syntax.FindStringSubmatch(s)
	if m == nil {
		return Timestamp{}, Error.New("invalid syntax: %q", s)
	}

	since, err := fixed.Parse(m[1])
	if err != nil {
		return Timestamp{}, Error.Wrap(err)
	}

	var leap int64
	if m[2] != "" {
		leap, err = strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return Timestamp{}, Error.Wrap(err)
		}
	}

	return New(since, leap), nil
}

// MarshalText implements encoding.TextMarshaler. Fractional seconds are
// rounded to DefaultPrecision digits.
func (t Timestamp) MarshalText() (text []byte, err error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The leap second count is
// written first as an unsigned varint, followed by the binary form of since.
func (t Timestamp) MarshalBinary() (data []byte, err error) {
	since, err := t.since.MarshalBinary()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	data = binary.AppendUvarint(nil, uint64(t.leap))

	return append(data, since...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Timestamp) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	leap, n := binary.Uvarint(data)
	if n <= 0 || leap > 1<<63-1 {
		return Error.New("invalid leap seconds")
	}

	var since fixed.Fixed

	err = since.UnmarshalBinary(data[n:])
	if err != nil {
		return err
	}

	*t = Timestamp{since: since, leap: int64(leap)}

	return nil
}
