package dtype

import (
	"fmt"
	"reflect"
	"time"

	"github.com/teranos/typeflow/errors"
)

// Value is an immutable (DataType, payload-or-absent) pair. A nil payload
// is a typed null: it represents absence without losing type information.
// Typed accessors transparently convert the payload through the registry
// the Value was built from.
type Value struct {
	reg     *Registry
	typ     *DataType
	payload any
}

// NewValue builds a Value carrying payload tagged with the given type.
// The payload's runtime shape is checked lazily, at conversion time.
func (r *Registry) NewValue(t *DataType, payload any) Value {
	return Value{reg: r, typ: t, payload: payload}
}

// NullValue builds a present-but-absent Value: a type with no payload.
func (r *Registry) NullValue(t *DataType) Value {
	return Value{reg: r, typ: t}
}

// Type returns the value's logical data type.
func (v Value) Type() *DataType {
	return v.typ
}

// IsNull reports whether the value carries only a type.
func (v Value) IsNull() bool {
	return v.payload == nil
}

// Raw returns the untouched payload; nil when absent.
func (v Value) Raw() any {
	return v.payload
}

// Registry returns the registry the value was built from.
func (v Value) Registry() *Registry {
	return v.reg
}

// Convert returns a copy of the value converted to the target type through
// the registry. Null values convert to the target's null.
func (v Value) Convert(to *DataType) (Value, error) {
	if v.typ == to {
		return v, nil
	}
	converted, err := v.reg.Convert(v.payload, v.typ, to)
	if err != nil {
		return Value{}, err
	}
	return Value{reg: v.reg, typ: to, payload: converted}, nil
}

// Equal reports value equality: equal types, and either both absent or
// equal payloads. No conversion is applied.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	if v.IsNull() || other.IsNull() {
		return v.IsNull() && other.IsNull()
	}
	if a, ok := v.payload.(time.Time); ok {
		if b, ok := other.payload.(time.Time); ok {
			return a.Equal(b)
		}
		return false
	}
	return reflect.DeepEqual(v.payload, other.payload)
}

func (v Value) String() string {
	if v.IsNull() {
		return fmt.Sprintf("%s(null)", v.typ)
	}
	return fmt.Sprintf("%s(%v)", v.typ, v.payload)
}

// AsString converts to STRING.
func (v Value) AsString() (string, error) {
	return valueAs[string](v, String)
}

// AsInt converts to INTEGER.
func (v Value) AsInt() (int, error) {
	return valueAs[int](v, Integer)
}

// AsLong converts to LONG.
func (v Value) AsLong() (int64, error) {
	return valueAs[int64](v, Long)
}

// AsDouble converts to DOUBLE.
func (v Value) AsDouble() (float64, error) {
	return valueAs[float64](v, Double)
}

// AsNumber converts to NUMBER.
func (v Value) AsNumber() (float64, error) {
	return valueAs[float64](v, Number)
}

// AsBool converts to BOOLEAN.
func (v Value) AsBool() (bool, error) {
	return valueAs[bool](v, Boolean)
}

// AsExtraBool converts to EXTRA_BOOLEAN.
func (v Value) AsExtraBool() (ExtraBool, error) {
	return valueAs[ExtraBool](v, ExtraBoolean)
}

// AsDate converts to DATE (midnight UTC).
func (v Value) AsDate() (time.Time, error) {
	return valueAs[time.Time](v, Date)
}

// AsDateTime converts to DATETIME (second precision).
func (v Value) AsDateTime() (time.Time, error) {
	return valueAs[time.Time](v, DateTime)
}

func valueAs[T any](v Value, to *DataType) (T, error) {
	var zero T
	if v.IsNull() {
		return zero, errors.Newf("null value of type %s has no %s representation", v.typ, to)
	}
	p, err := v.reg.Convert(v.payload, v.typ, to)
	if err != nil {
		return zero, err
	}
	typed, ok := p.(T)
	if !ok {
		return zero, &ParseError{Payload: v.payload, From: v.typ, To: to,
			Cause: errors.Newf("payload has runtime type %T", p)}
	}
	return typed, nil
}
