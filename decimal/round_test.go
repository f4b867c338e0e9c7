package decimal

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

var modes = []RoundingMode{Even, Floor, Ceil, Up, Down}

func TestToInteger(t *testing.T) {
	type TC struct {
		d    Decimal
		mode RoundingMode
		want int64
		Mark error
	}

	tcs := []TC{
		{d: NewFromInt64(2, 5, 1), mode: Even, want: 2, Mark: oops.New("unexpected")},
		{d: NewFromInt64(3, 5, 1), mode: Even, want: 4, Mark: oops.New("unexpected")},
		{d: MustParse("-2.5"), mode: Even, want: -2, Mark: oops.New("unexpected")},
		{d: MustParse("-3.5"), mode: Even, want: -4, Mark: oops.New("unexpected")},
		{d: MustParse("2.51"), mode: Even, want: 3, Mark: oops.New("unexpected")},
		{d: MustParse("-1.5"), mode: Floor, want: -2, Mark: oops.New("unexpected")},
		{d: MustParse("-1.5"), mode: Ceil, want: -1, Mark: oops.New("unexpected")},
		{d: MustParse("-1.5"), mode: Up, want: -2, Mark: oops.New("unexpected")},
		{d: MustParse("-1.5"), mode: Down, want: -1, Mark: oops.New("unexpected")},
		{d: MustParse("1.1"), mode: Floor, want: 1, Mark: oops.New("unexpected")},
		{d: MustParse("1.1"), mode: Ceil, want: 2, Mark: oops.New("unexpected")},
		{d: MustParse("1.1"), mode: Up, want: 2, Mark: oops.New("unexpected")},
		{d: MustParse("1.1"), mode: Down, want: 1, Mark: oops.New("unexpected")},
		{d: MustParse("3.000"), mode: Ceil, want: 3, Mark: oops.New("unexpected")},
		{d: MustParse("-3.000"), mode: Up, want: -3, Mark: oops.New("unexpected")},
		{d: MustParse("7"), mode: Up, want: 7, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s:%s", i, tc.d, tc.mode), func(t *testing.T) {
			require.Equal(t, tc.want, tc.d.ToInteger(tc.mode).Int64(), tc.Mark)
		})
	}
}

func TestRound(t *testing.T) {
	type TC struct {
		d    string
		prec int
		mode RoundingMode
		want string
		Mark error
	}

	tcs := []TC{
		{d: "1.25", prec: 1, mode: Even, want: "1.2", Mark: oops.New("unexpected")},
		{d: "1.35", prec: 1, mode: Even, want: "1.4", Mark: oops.New("unexpected")},
		{d: "1.25", prec: 1, mode: Up, want: "1.3", Mark: oops.New("unexpected")},
		{d: "1.95", prec: 1, mode: Even, want: "2", Mark: oops.New("unexpected")},
		{d: "1.2345", prec: 2, mode: Floor, want: "1.23", Mark: oops.New("unexpected")},
		{d: "-1.2345", prec: 2, mode: Floor, want: "-1.24", Mark: oops.New("unexpected")},
		{d: "-1.2345", prec: 2, mode: Down, want: "-1.23", Mark: oops.New("unexpected")},
		{d: "1.2345", prec: 10, mode: Floor, want: "1.2345", Mark: oops.New("unexpected")},
		{d: "1.5", prec: -3, mode: Even, want: "2", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s@%d:%s", i, tc.d, tc.prec, tc.mode), func(t *testing.T) {
			got := MustParse(tc.d).Round(tc.prec, tc.mode)
			requireInvariant(t, got, tc.Mark)
			require.Equal(t, tc.want, got.String(), tc.Mark)
		})
	}
}

func TestRoundGolden(t *testing.T) {
	inputs := []string{
		"2.25",
		"-1.25",
		"0.05",
		"-0.05",
		"9.95",
		"1.2",
	}

	buf := &bytes.Buffer{}
	for _, s := range inputs {
		d := MustParse(s)

		buf.WriteString(d.String())
		for _, m := range modes {
			buf.WriteString(" | ")
			buf.WriteString(d.Round(1, m).String())
		}
		buf.WriteString("\n")
	}

	g := goldie.New(t)
	g.Assert(t, "round", buf.Bytes())
}

func TestRoundingModeString(t *testing.T) {
	names := []string{}
	for _, m := range modes {
		names = append(names, m.String())
	}

	require.Equal(t, []string{"even", "floor", "ceil", "up", "down"}, names)
	require.Equal(t, "unknown", RoundingMode(99).String())
}
