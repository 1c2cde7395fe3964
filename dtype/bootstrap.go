package dtype

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/teranos/typeflow/errors"
)

// Canonical textual layouts for the temporal types.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// dateTimeParseLayouts are accepted when coercing STRING → DATETIME, tried
// in order.
var dateTimeParseLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type convFunc func(payload any) (any, error)

// bootstrapParser supplies the default conversions every registry starts
// with: numeric widenings and narrowings, boolean and extra-boolean
// coercions, universal lossy stringification, and the dangerous
// string-to-scalar parses.
type bootstrapParser struct {
	convs []Conversion
	fns   map[[2]*DataType]convFunc
}

func newBootstrapParser() *bootstrapParser {
	p := &bootstrapParser{fns: make(map[[2]*DataType]convFunc)}

	// Numeric widenings are perfect; going back down loses precision.
	p.add(Integer, Number, Perfect, func(v any) (any, error) { return float64(v.(int)), nil })
	p.add(Long, Number, Perfect, func(v any) (any, error) { return float64(v.(int64)), nil })
	p.add(Double, Number, Perfect, func(v any) (any, error) { return v.(float64), nil })
	p.add(Number, Integer, DataLoss, func(v any) (any, error) { return int(math.Round(v.(float64))), nil })
	p.add(Number, Long, DataLoss, func(v any) (any, error) { return int64(math.Round(v.(float64))), nil })
	p.add(Number, Double, DataLoss, func(v any) (any, error) { return v.(float64), nil })

	p.add(Integer, Long, Perfect, func(v any) (any, error) { return int64(v.(int)), nil })
	p.add(Integer, Double, Perfect, func(v any) (any, error) { return float64(v.(int)), nil })
	p.add(Long, Double, Perfect, func(v any) (any, error) { return float64(v.(int64)), nil })
	p.add(Long, Integer, DataLoss, func(v any) (any, error) { return int(v.(int64)), nil })
	p.add(Double, Long, DataLoss, func(v any) (any, error) { return int64(math.Round(v.(float64))), nil })
	p.add(Double, Integer, DataLoss, func(v any) (any, error) { return int(math.Round(v.(float64))), nil })

	// Boolean coercions: nonzero is true; false is 0 and true is 1.
	// BOOLEAN → INTEGER ranks as meaning loss so a textual "42" reaches
	// INTEGER through DOUBLE rather than through a boolean detour.
	p.add(Boolean, Integer, MeaningLoss, func(v any) (any, error) {
		if v.(bool) {
			return 1, nil
		}
		return 0, nil
	})
	p.add(Integer, Boolean, MeaningLoss, func(v any) (any, error) { return v.(int) != 0, nil })
	p.add(Long, Boolean, MeaningLoss, func(v any) (any, error) { return v.(int64) != 0, nil })
	p.add(Double, Boolean, MeaningLoss, func(v any) (any, error) { return v.(float64) != 0, nil })
	p.add(Number, Boolean, MeaningLoss, func(v any) (any, error) { return v.(float64) != 0, nil })

	p.add(Boolean, ExtraBoolean, Perfect, func(v any) (any, error) { return ExtraBoolFromBool(v.(bool)), nil })
	p.add(ExtraBoolean, Boolean, DataLoss, func(v any) (any, error) { return v.(ExtraBool).Bool(), nil })
	p.add(Double, ExtraBoolean, MeaningLoss, func(v any) (any, error) { return ExtraBoolFromFloat(v.(float64)), nil })
	p.add(ExtraBoolean, Double, MeaningLoss, func(v any) (any, error) { return v.(ExtraBool).Float(), nil })

	// Stringification is universal but lossy.
	p.add(Integer, String, DataLoss, func(v any) (any, error) { return strconv.Itoa(v.(int)), nil })
	p.add(Long, String, DataLoss, func(v any) (any, error) { return strconv.FormatInt(v.(int64), 10), nil })
	p.add(Double, String, DataLoss, func(v any) (any, error) { return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil })
	p.add(Number, String, DataLoss, func(v any) (any, error) { return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil })
	p.add(Boolean, String, DataLoss, func(v any) (any, error) { return strconv.FormatBool(v.(bool)), nil })
	p.add(ExtraBoolean, String, DataLoss, func(v any) (any, error) { return v.(ExtraBool).String(), nil })
	p.add(Date, String, DataLoss, func(v any) (any, error) { return v.(time.Time).Format(DateLayout), nil })
	p.add(DateTime, String, DataLoss, func(v any) (any, error) { return v.(time.Time).Format(DateTimeLayout), nil })

	// String parses fail or succeed depending on the payload. INTEGER and
	// NUMBER are reached through DOUBLE, so only DOUBLE gets a direct edge.
	p.add(String, Double, Dangerous, func(v any) (any, error) {
		return strconv.ParseFloat(strings.TrimSpace(v.(string)), 64)
	})
	p.add(String, Boolean, Dangerous, func(v any) (any, error) {
		return strconv.ParseBool(strings.TrimSpace(v.(string)))
	})
	p.add(String, Date, Dangerous, func(v any) (any, error) {
		return time.Parse(DateLayout, strings.TrimSpace(v.(string)))
	})
	p.add(String, DateTime, Dangerous, func(v any) (any, error) {
		s := strings.TrimSpace(v.(string))
		var lastErr error
		for _, layout := range dateTimeParseLayouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				return t, nil
			}
			lastErr = err
		}
		return nil, lastErr
	})

	// Temporal precision.
	p.add(Date, DateTime, Perfect, func(v any) (any, error) { return v.(time.Time), nil })
	p.add(DateTime, Date, DataLoss, func(v any) (any, error) {
		t := v.(time.Time)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	})

	return p
}

func (p *bootstrapParser) add(from, to *DataType, reliability Reliability, fn convFunc) {
	p.convs = append(p.convs, NewConversion(from, to, reliability))
	p.fns[[2]*DataType{from, to}] = fn
}

func (p *bootstrapParser) Conversions() []Conversion {
	out := make([]Conversion, len(p.convs))
	copy(out, p.convs)
	return out
}

func (p *bootstrapParser) Parse(payload any, from, to *DataType) (any, error) {
	fn, ok := p.fns[[2]*DataType{from, to}]
	if !ok {
		return nil, &ParseError{Payload: payload, From: from, To: to,
			Cause: errors.New("edge not declared by bootstrap parser")}
	}

	out, err := safeConvert(fn, payload)
	if err != nil {
		return nil, &ParseError{Payload: payload, From: from, To: to, Cause: err}
	}
	return out, nil
}

// safeConvert runs a conversion function, turning a payload whose runtime
// shape mismatches the declared source type (a type-assertion panic) into
// an ordinary error.
func safeConvert(fn convFunc, payload any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("payload shape mismatch: %v", r)
		}
	}()
	return fn(payload)
}
