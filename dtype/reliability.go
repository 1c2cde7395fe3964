package dtype

// Reliability ranks how much information a conversion step preserves.
// Levels are totally ordered; a lower cost is strictly better.
type Reliability int

const (
	// Perfect conversions lose nothing (e.g. INTEGER → NUMBER)
	Perfect Reliability = iota + 1
	// Reliable conversions are deterministic but change representation
	// (e.g. BOOLEAN → INTEGER)
	Reliable
	// DataLoss conversions may drop precision (e.g. DOUBLE → INTEGER)
	DataLoss
	// MeaningLoss conversions reinterpret the value (e.g. NUMBER → BOOLEAN)
	MeaningLoss
	// Dangerous conversions can fail depending on the payload
	// (e.g. STRING → DATE)
	Dangerous
)

// Cost returns the additive route cost of a step at this reliability.
func (r Reliability) Cost() int {
	return int(r)
}

// BetterThan reports whether r is strictly more reliable than other.
func (r Reliability) BetterThan(other Reliability) bool {
	return r.Cost() < other.Cost()
}

func (r Reliability) String() string {
	switch r {
	case Perfect:
		return "PERFECT"
	case Reliable:
		return "RELIABLE"
	case DataLoss:
		return "DATA_LOSS"
	case MeaningLoss:
		return "MEANING_LOSS"
	case Dangerous:
		return "DANGEROUS"
	default:
		return "UNKNOWN"
	}
}

// WorstReliability returns the weaker of the two levels.
func WorstReliability(a, b Reliability) Reliability {
	if a.Cost() >= b.Cost() {
		return a
	}
	return b
}
