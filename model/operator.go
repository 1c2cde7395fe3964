package model

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/teranos/typeflow/dtype"
	"github.com/teranos/typeflow/errors"
)

// Operation names a binary operation with its own dispatch registry.
type Operation string

const (
	OpPlus     Operation = "plus"
	OpMinus    Operation = "minus"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations returns every built-in operation in a stable order.
func Operations() []Operation {
	return []Operation{OpPlus, OpMinus, OpMultiply, OpDivide}
}

// ValueOperator is a pluggable binary operation over two typed values.
// Implementations are registered under an exact (operand A type, operand B
// type) pair and must fail with an unsupported-operands error for any pair
// they were not built for, even structurally similar ones. Widening, when
// wanted, happens through the conversion registry before the operator call.
type ValueOperator interface {
	Operate(first, second dtype.Value) (dtype.Value, error)
}

// OperatorFunc adapts a function to the ValueOperator interface.
type OperatorFunc func(first, second dtype.Value) (dtype.Value, error)

func (f OperatorFunc) Operate(first, second dtype.Value) (dtype.Value, error) {
	return f(first, second)
}

// OperandError reports an operator invocation for a type pair no
// implementation was registered under.
type OperandError struct {
	Op     Operation
	First  *dtype.DataType
	Second *dtype.DataType
}

func (e *OperandError) Error() string {
	if e.Second == nil {
		return fmt.Sprintf("unsupported operand combination: %s on %s with absent second operand", e.Op, e.First)
	}
	return fmt.Sprintf("unsupported operand combination: %s on (%s, %s)", e.Op, e.First, e.Second)
}

func (e *OperandError) Is(target error) bool {
	return target == errors.ErrUnsupportedOperands
}

type operandKey struct {
	a, b uuid.UUID
}

// OperatorTable holds one independent registry per operation, each mapping
// an exact operand-type pair to an implementation. Dispatch never routes
// through the conversion graph and never falls back.
type OperatorTable struct {
	mu  sync.RWMutex
	ops map[Operation]map[operandKey]ValueOperator
}

// NewOperatorTable creates an empty table.
func NewOperatorTable() *OperatorTable {
	return &OperatorTable{ops: make(map[Operation]map[operandKey]ValueOperator)}
}

// Register adds an implementation for the exact type pair under the named
// operation. Registering a pair twice is an error; replacing behavior is a
// product decision, not a default.
func (t *OperatorTable) Register(op Operation, first, second *dtype.DataType, impl ValueOperator) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pairs, ok := t.ops[op]
	if !ok {
		pairs = make(map[operandKey]ValueOperator)
		t.ops[op] = pairs
	}
	key := operandKey{a: first.ID(), b: second.ID()}
	if _, exists := pairs[key]; exists {
		return errors.Wrapf(errors.ErrDuplicateRegistration, "operator %s on (%s, %s)", op, first, second)
	}
	pairs[key] = impl
	return nil
}

// Supports reports whether an implementation exists for the exact pair.
func (t *OperatorTable) Supports(op Operation, first, second *dtype.DataType) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.ops[op][operandKey{a: first.ID(), b: second.ID()}]
	return ok
}

// Operate dispatches on (operation, exact operand types) and invokes the
// implementation directly.
//
// An absent first operand is always an operand error. An absent second
// operand is treated as identity for plus and minus and rejected for
// multiply and divide.
func (t *OperatorTable) Operate(op Operation, first, second dtype.Value) (dtype.Value, error) {
	if first.Type() == nil || first.IsNull() {
		return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
	}
	if second.Type() == nil || second.IsNull() {
		if op == OpPlus || op == OpMinus {
			return first, nil
		}
		return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
	}

	t.mu.RLock()
	impl, ok := t.ops[op][operandKey{a: first.Type().ID(), b: second.Type().ID()}]
	t.mu.RUnlock()
	if !ok {
		return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
	}
	return impl.Operate(first, second)
}

// Plus dispatches the plus operation.
func (t *OperatorTable) Plus(first, second dtype.Value) (dtype.Value, error) {
	return t.Operate(OpPlus, first, second)
}

// Minus dispatches the minus operation.
func (t *OperatorTable) Minus(first, second dtype.Value) (dtype.Value, error) {
	return t.Operate(OpMinus, first, second)
}

// Multiply dispatches the multiply operation.
func (t *OperatorTable) Multiply(first, second dtype.Value) (dtype.Value, error) {
	return t.Operate(OpMultiply, first, second)
}

// Divide dispatches the divide operation.
func (t *OperatorTable) Divide(first, second dtype.Value) (dtype.Value, error) {
	return t.Operate(OpDivide, first, second)
}
