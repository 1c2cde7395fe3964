package dtype

// ExtraBool is a four-level truth value: the payload type of EXTRA_BOOLEAN.
type ExtraBool int

const (
	ExtraFalse ExtraBool = iota
	WeakFalse
	WeakTrue
	ExtraTrue
)

// Numeric thresholds for coercing a double into an ExtraBool.
const (
	extraTrueThreshold = 1.0
	weakTrueThreshold  = 0.6
	weakFalseThreshold = 0.3
)

// ExtraBoolFromFloat maps a numeric payload onto the four truth levels:
// ≥1.0 extra-true, ≥0.6 weak-true, ≥0.3 weak-false, else extra-false.
func ExtraBoolFromFloat(f float64) ExtraBool {
	switch {
	case f >= extraTrueThreshold:
		return ExtraTrue
	case f >= weakTrueThreshold:
		return WeakTrue
	case f >= weakFalseThreshold:
		return WeakFalse
	default:
		return ExtraFalse
	}
}

// ExtraBoolFromBool widens a plain boolean to its extreme level.
func ExtraBoolFromBool(b bool) ExtraBool {
	if b {
		return ExtraTrue
	}
	return ExtraFalse
}

// Bool collapses the four levels onto two: weak-true and extra-true are true.
func (b ExtraBool) Bool() bool {
	return b == WeakTrue || b == ExtraTrue
}

// Float returns the canonical numeric value of each level.
func (b ExtraBool) Float() float64 {
	switch b {
	case ExtraTrue:
		return 1.0
	case WeakTrue:
		return 0.6
	case WeakFalse:
		return 0.3
	default:
		return 0.0
	}
}

func (b ExtraBool) String() string {
	switch b {
	case ExtraTrue:
		return "extra_true"
	case WeakTrue:
		return "weak_true"
	case WeakFalse:
		return "weak_false"
	default:
		return "extra_false"
	}
}
