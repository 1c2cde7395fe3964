package dtype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/typeflow/errors"
)

func TestNumericWidenings(t *testing.T) {
	reg := NewBuiltinRegistry()

	tests := []struct {
		name    string
		payload any
		from    *DataType
		to      *DataType
		want    any
	}{
		{"int to number", 7, Integer, Number, 7.0},
		{"long to number", int64(9), Long, Number, 9.0},
		{"double to number", 2.5, Double, Number, 2.5},
		{"int to long", 7, Integer, Long, int64(7)},
		{"int to double", 7, Integer, Double, 7.0},
		{"long to double", int64(3), Long, Double, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := reg.Convert(tt.payload, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)

			rel, err := reg.ConversionReliability(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, Perfect, rel)
		})
	}
}

func TestNumericNarrowingsRound(t *testing.T) {
	reg := NewBuiltinRegistry()

	tests := []struct {
		payload float64
		want    int
	}{
		{2.4, 2},
		{2.5, 3},
		{-2.5, -3}, // half away from zero
		{-2.4, -2},
	}
	for _, tt := range tests {
		out, err := reg.Convert(tt.payload, Double, Integer)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out, "rounding %v", tt.payload)
	}

	rel, err := reg.ConversionReliability(Double, Integer)
	require.NoError(t, err)
	assert.Equal(t, DataLoss, rel)
}

func TestStringFortyTwoReachesIntegerThroughDouble(t *testing.T) {
	reg := NewBuiltinRegistry()

	out, err := reg.Convert("42", String, Integer)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	// The default path is STRING→DOUBLE→INTEGER.
	assert.Equal(t, Dangerous.Cost()+DataLoss.Cost(), reg.ConversionCost(String, Integer))
	rel, err := reg.ConversionReliability(String, Integer)
	require.NoError(t, err)
	assert.Equal(t, Dangerous, rel)
}

func TestBooleanCoercions(t *testing.T) {
	reg := NewBuiltinRegistry()

	out, err := reg.Convert(true, Boolean, Integer)
	require.NoError(t, err)
	assert.Equal(t, 1, out)

	out, err = reg.Convert(false, Boolean, Integer)
	require.NoError(t, err)
	assert.Equal(t, 0, out)

	// Nonzero is true.
	out, err = reg.Convert(-3, Integer, Boolean)
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = reg.Convert(0.0, Double, Boolean)
	require.NoError(t, err)
	assert.Equal(t, false, out)
}

func TestExtraBooleanCoercions(t *testing.T) {
	reg := NewBuiltinRegistry()

	tests := []struct {
		payload float64
		want    ExtraBool
	}{
		{1.5, ExtraTrue},
		{1.0, ExtraTrue},
		{0.7, WeakTrue},
		{0.6, WeakTrue},
		{0.4, WeakFalse},
		{0.3, WeakFalse},
		{0.2, ExtraFalse},
		{-1.0, ExtraFalse},
	}
	for _, tt := range tests {
		out, err := reg.Convert(tt.payload, Double, ExtraBoolean)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out, "threshold for %v", tt.payload)
	}

	out, err := reg.Convert(true, Boolean, ExtraBoolean)
	require.NoError(t, err)
	assert.Equal(t, ExtraTrue, out)

	out, err = reg.Convert(WeakTrue, ExtraBoolean, Boolean)
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = reg.Convert(WeakFalse, ExtraBoolean, Double)
	require.NoError(t, err)
	assert.Equal(t, 0.3, out)
}

func TestUniversalStringification(t *testing.T) {
	reg := NewBuiltinRegistry()
	date := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	datetime := time.Date(2020, 1, 31, 13, 45, 12, 0, time.UTC)

	tests := []struct {
		payload any
		from    *DataType
		want    string
	}{
		{42, Integer, "42"},
		{int64(42), Long, "42"},
		{2.5, Double, "2.5"},
		{2.5, Number, "2.5"},
		{true, Boolean, "true"},
		{WeakTrue, ExtraBoolean, "weak_true"},
		{date, Date, "2020-01-31"},
		{datetime, DateTime, "2020-01-31 13:45:12"},
	}
	for _, tt := range tests {
		out, err := reg.Convert(tt.payload, tt.from, String)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out, "stringifying %s", tt.from)

		rel, err := reg.ConversionReliability(tt.from, String)
		require.NoError(t, err)
		assert.Equal(t, DataLoss, rel)
	}
}

func TestDangerousStringParses(t *testing.T) {
	reg := NewBuiltinRegistry()

	out, err := reg.Convert("2020-01-31", String, Date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC), out)

	out, err = reg.Convert("2020-01-31 13:45:12", String, DateTime)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 31, 13, 45, 12, 0, time.UTC), out)

	out, err = reg.Convert("true", String, Boolean)
	require.NoError(t, err)
	assert.Equal(t, true, out)

	for _, target := range []*DataType{Date, DateTime, Boolean, Double} {
		rel, err := reg.ConversionReliability(String, target)
		require.NoError(t, err)
		assert.Equal(t, Dangerous, rel, "STRING→%s", target)
	}
}

func TestStringParseFailureCarriesContext(t *testing.T) {
	reg := NewBuiltinRegistry()

	_, err := reg.Convert("not a number", String, Double)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParseFailed))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "not a number", parseErr.Payload)
	assert.Same(t, String, parseErr.From)
	assert.Same(t, Double, parseErr.To)
	assert.Error(t, parseErr.Cause, "the low-level cause is preserved")
}

func TestPayloadShapeMismatchIsParseError(t *testing.T) {
	reg := NewBuiltinRegistry()

	// An INTEGER-tagged value carrying a string payload fails at run time.
	_, err := reg.Convert("oops", Integer, Number)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParseFailed))
}

func TestTemporalPrecision(t *testing.T) {
	reg := NewBuiltinRegistry()
	datetime := time.Date(2020, 6, 15, 23, 59, 59, 0, time.UTC)

	out, err := reg.Convert(datetime, DateTime, Date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), out)

	rel, err := reg.ConversionReliability(Date, DateTime)
	require.NoError(t, err)
	assert.Equal(t, Perfect, rel)
}
