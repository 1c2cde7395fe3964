package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtraBoolFromFloatThresholds(t *testing.T) {
	tests := []struct {
		f    float64
		want ExtraBool
	}{
		{2.0, ExtraTrue},
		{1.0, ExtraTrue},
		{0.99, WeakTrue},
		{0.6, WeakTrue},
		{0.59, WeakFalse},
		{0.3, WeakFalse},
		{0.29, ExtraFalse},
		{0.0, ExtraFalse},
		{-5.0, ExtraFalse},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtraBoolFromFloat(tt.f), "threshold for %v", tt.f)
	}
}

func TestExtraBoolCollapse(t *testing.T) {
	assert.True(t, ExtraTrue.Bool())
	assert.True(t, WeakTrue.Bool())
	assert.False(t, WeakFalse.Bool())
	assert.False(t, ExtraFalse.Bool())
}

func TestExtraBoolRoundTripFloat(t *testing.T) {
	for _, b := range []ExtraBool{ExtraFalse, WeakFalse, WeakTrue, ExtraTrue} {
		assert.Equal(t, b, ExtraBoolFromFloat(b.Float()), "%s is a fixed point", b)
	}
}

func TestExtraBoolFromBool(t *testing.T) {
	assert.Equal(t, ExtraTrue, ExtraBoolFromBool(true))
	assert.Equal(t, ExtraFalse, ExtraBoolFromBool(false))
}

func TestExtraBoolString(t *testing.T) {
	assert.Equal(t, "extra_true", ExtraTrue.String())
	assert.Equal(t, "weak_false", WeakFalse.String())
}

func TestReliabilityOrdering(t *testing.T) {
	assert.True(t, Perfect.BetterThan(Reliable))
	assert.True(t, Reliable.BetterThan(DataLoss))
	assert.True(t, DataLoss.BetterThan(MeaningLoss))
	assert.True(t, MeaningLoss.BetterThan(Dangerous))
	assert.False(t, Dangerous.BetterThan(Perfect))
	assert.False(t, Perfect.BetterThan(Perfect), "better-than is strict")

	assert.Equal(t, Dangerous, WorstReliability(Perfect, Dangerous))
	assert.Equal(t, Dangerous, WorstReliability(Dangerous, Perfect))
	assert.Equal(t, DataLoss, WorstReliability(DataLoss, Reliable))
}
