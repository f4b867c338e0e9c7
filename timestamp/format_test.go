package timestamp

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/tempo/fixed"
)

func TestShow(t *testing.T) {
	type TC struct {
		ts           Timestamp
		maxPrecision int
		width        int
		want         string
		Mark         error
	}

	tcs := []TC{
		{ts: FromSeconds(100), maxPrecision: 9, width: 1, want: "100", Mark: oops.New("unexpected")},
		{ts: New(fixed.NewInt64(99, 0.25), 1), maxPrecision: 9, width: 1, want: "99.25 (+1 leap)", Mark: oops.New("unexpected")},
		{ts: New(fixed.NewInt64(5, 0.5), 0), maxPrecision: 9, width: 4, want: "0005.5", Mark: oops.New("unexpected")},
		{ts: New(fixed.NewInt64(-2, 0.5), 0), maxPrecision: 9, width: 3, want: "-001.5", Mark: oops.New("unexpected")},
		{ts: New(fixed.NewInt64(1, 0.125), 0), maxPrecision: 2, width: 1, want: "1.13", Mark: oops.New("unexpected")},
		{ts: New(fixed.NewInt64(12345, 0), 3), maxPrecision: 9, width: 2, want: "12345 (+3 leap)", Mark: oops.New("unexpected")},
		{ts: Epoch, maxPrecision: 9, width: 2, want: "00", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, tc.ts.Show(tc.maxPrecision, tc.width), tc.Mark)
		})
	}

	require.Equal(t, "99.25 (+1 leap)", New(fixed.NewInt64(99, 0.25), 1).String())
}

func TestParse(t *testing.T) {
	type TC struct {
		input string
		want  Timestamp
		err   bool
		Mark  error
	}

	tcs := []TC{
		{input: "100", want: FromSeconds(100), Mark: oops.New("unexpected")},
		{input: "99.25 (+1 leap)", want: New(fixed.NewInt64(99, 0.25), 1), Mark: oops.New("unexpected")},
		{input: "-1.5", want: New(fixed.NewInt64(-2, 0.5), 0), Mark: oops.New("unexpected")},
		{input: "", err: true, Mark: oops.New("unexpected")},
		{input: "100 (+x leap)", err: true, Mark: oops.New("unexpected")},
		{input: "100 (-1 leap)", err: true, Mark: oops.New("unexpected")},
		{input: "abc", err: true, Mark: oops.New("unexpected")},
		{input: "1 (+99999999999999999999 leap)", err: true, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, Error.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.True(t, tc.want.Equal(got), "want=%s got=%s %v", tc.want, got, tc.Mark)
		})
	}
}

func TestText(t *testing.T) {
	type Event struct {
		At Timestamp `yaml:"at"`
	}

	var ev Event

	err := yaml.Unmarshal([]byte("at: \"1483228798.5 (+1 leap)\"\n"), &ev)
	require.NoError(t, err)
	require.True(t, ev.At.Equal(New(fixed.MustParse("1483228798.5"), 1)), ev.At)

	data, err := yaml.Marshal(ev)
	require.NoError(t, err)

	var again Event
	err = yaml.Unmarshal(data, &again)
	require.NoError(t, err)
	require.True(t, ev.At.Equal(again.At))
}

func TestBinary(t *testing.T) {
	values := []Timestamp{
		Epoch,
		FromSeconds(1483228799),
		New(fixed.MustParse("1483228798.5"), 1),
		New(fixed.NewInt64(-7, 0.125), 27),
	}

	for i, ts := range values {
		t.Run(fmt.Sprintf("[%d]%s", i, ts), func(t *testing.T) {
			data, err := ts.MarshalBinary()
			require.NoError(t, err)

			var got Timestamp
			err = got.UnmarshalBinary(data)
			require.NoError(t, err)
			require.True(t, ts.Equal(got))
		})
	}

	t.Run("invalid", func(t *testing.T) {
		var got Timestamp

		err := got.UnmarshalBinary(nil)
		require.Error(t, err)
		require.True(t, Error.Has(err))

		err = got.UnmarshalBinary([]byte{1})
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})
}
