package dtype

import (
	"github.com/google/uuid"
)

// DataType is a named category usable as a Value's tag. Equality is by
// identity: two DataTypes are the same type only if they are the same
// object, regardless of display name.
type DataType struct {
	id   uuid.UUID
	name string
}

// NewDataType creates a fresh DataType with the given display name.
// The type is not usable for hierarchy queries until registered.
func NewDataType(name string) *DataType {
	return &DataType{id: uuid.New(), name: name}
}

// ID returns the stable opaque identity of the type. Graph nodes and
// operator tables key on it.
func (t *DataType) ID() uuid.UUID {
	return t.id
}

// Name returns the display name.
func (t *DataType) Name() string {
	return t.name
}

func (t *DataType) String() string {
	if t == nil {
		return "<untyped>"
	}
	return t.name
}

// Built-in types. These are package-level singletons so that independent
// registries agree on the identity of the common scalar types.
var (
	String       = NewDataType("STRING")
	Integer      = NewDataType("INTEGER")
	Long         = NewDataType("LONG")
	Double       = NewDataType("DOUBLE")
	Number       = NewDataType("NUMBER")
	Boolean      = NewDataType("BOOLEAN")
	ExtraBoolean = NewDataType("EXTRA_BOOLEAN")
	Date         = NewDataType("DATE")
	DateTime     = NewDataType("DATETIME")
)

// BuiltinTypes returns every built-in type in a stable order.
func BuiltinTypes() []*DataType {
	return []*DataType{
		String, Integer, Long, Double, Number,
		Boolean, ExtraBoolean, Date, DateTime,
	}
}
