package dtype

import "fmt"

// Conversion is an immutable single-step edge descriptor: a transform from
// Source to Target at a given Reliability. Parsers declare their supported
// conversions up front so the graph can be built without invoking any
// transform.
type Conversion struct {
	Source      *DataType
	Target      *DataType
	Reliability Reliability
}

// NewConversion creates an edge descriptor.
func NewConversion(source, target *DataType, reliability Reliability) Conversion {
	return Conversion{Source: source, Target: target, Reliability: reliability}
}

func (c Conversion) String() string {
	return fmt.Sprintf("%s→%s (%s)", c.Source, c.Target, c.Reliability)
}
