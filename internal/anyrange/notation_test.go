package anyrange

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "10..20", Between(10, 20).String())
	assert.Equal(t, "10..", From(10).String())
	assert.Equal(t, "..20", To(20).String())
	assert.Equal(t, "..", Full[int]().String())
	assert.Equal(t, "-3..-1", Between(-3, -1).String())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Range[int]
	}{
		{"bounded", "10..20", Between(10, 20)},
		{"from", "10..", From(10)},
		{"to", "..20", To(20)},
		{"full", "..", Full[int]()},
		{"inclusive", "10..=20", Between(10, 21)},
		{"inclusive to", "..=20", To(21)},
		{"inclusive without end", "10..=", From(10)},
		{"negative", "-5..-1", Between(-5, -1)},
		{"reversed bounds are kept", "20..10", Between(20, 10)},
		{"whitespace", "  10 .. 20 ", Between(10, 20)},
		{"zero", "0..0", Between(0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Parse[int](tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r)
		})
	}

	t.Run("resolves", func(t *testing.T) {
		assert.Equal(t, Concrete[int]{Start: 0, End: 20}, MustParse[int]("..20").Resolve(0, 100))
		assert.Equal(t, Concrete[int]{Start: 10, End: 100}, MustParse[int]("10..").Resolve(0, 100))
	})

	t.Run("unsigned", func(t *testing.T) {
		r, err := Parse[uint8]("0..=254")
		require.NoError(t, err)
		assert.Equal(t, Range[uint8](Between[uint8](0, 255)), r)
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		target   error
		contains string
	}{
		{"empty", "", ErrSyntax, "missing \"..\""},
		{"single index", "10", ErrSyntax, "missing \"..\""},
		{"bad start", "x..10", ErrSyntax, "start"},
		{"bad end", "10..y", ErrSyntax, "end"},
		{"three dots", "1...3", ErrSyntax, "end"},
		{"chained", "1..2..3", ErrSyntax, "end"},
		{"negative unsigned", "-1..", ErrSyntax, "start"},
		{"plus sign", "+5..", ErrSyntax, "start"},
		{"plus sign end", "..+5", ErrSyntax, "end"},
		{"start overflow", "300..", ErrOverflow, "start"},
		{"end overflow", "..256", ErrOverflow, "end"},
		{"inclusive end overflow", "..=255", ErrOverflow, "largest value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse[uint8](tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.target)
			assert.Contains(t, err.Error(), tc.contains)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.input, parseErr.Input)
		})
	}

	t.Run("syntax and overflow are distinct", func(t *testing.T) {
		_, err := Parse[int8]("..128")
		assert.ErrorIs(t, err, ErrOverflow)
		assert.False(t, errors.Is(err, ErrSyntax))
	})

	t.Run("plus sign on signed index", func(t *testing.T) {
		_, err := Parse[int8]("+5..")
		assert.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("must parse panics", func(t *testing.T) {
		assert.Panics(t, func() { MustParse[int]("nope") })
	})
}

func TestParseLimits(t *testing.T) {
	r, err := Parse[int64]("-9223372036854775808..9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, Range[int64](Between[int64](math.MinInt64, math.MaxInt64)), r)

	_, err = Parse[int64]("..=9223372036854775807")
	assert.ErrorIs(t, err, ErrOverflow)

	ru, err := Parse[uint64]("..18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, Range[uint64](To[uint64](math.MaxUint64)), ru)
}

func FuzzParse_RoundTrip(f *testing.F) {
	f.Add(int64(10), int64(20), true, true)
	f.Add(int64(10), int64(0), true, false)
	f.Add(int64(0), int64(20), false, true)
	f.Add(int64(0), int64(0), false, false)
	f.Add(int64(-7), int64(-9), true, true)

	f.Fuzz(func(t *testing.T, s, e int64, hasStart, hasEnd bool) {
		if !hasStart {
			s = 0
		}
		if !hasEnd {
			e = 0
		}
		r := New(s, hasStart, e, hasEnd)

		str := r.(interface{ String() string }).String()
		parsed, err := Parse[int64](str)
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
		assert.Equal(t, KindOf[int64](r), KindOf[int64](parsed))
	})
}
