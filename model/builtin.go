package model

import (
	"strings"
	"time"

	"github.com/teranos/typeflow/dtype"
	"github.com/teranos/typeflow/errors"
)

// DefaultOperatorTable builds a table with the built-in domain operators
// registered. Result values are built against the supplied registry.
//
// Built-in coverage:
//   - INTEGER/LONG/DOUBLE same-type +, -, *, / (integer and long division
//     truncate toward zero; division by zero is rejected)
//   - STRING + STRING concatenation
//   - STRING - STRING removes all occurrences of the substring
//   - STRING - INTEGER drops the last n characters (clamped at empty,
//     negative n rejected)
//   - DATE ± LONG in whole days; DATETIME ± LONG in whole seconds
func DefaultOperatorTable(reg *dtype.Registry) (*OperatorTable, error) {
	t := NewOperatorTable()

	type entry struct {
		op   Operation
		a, b *dtype.DataType
		impl ValueOperator
	}

	entries := []entry{
		{OpPlus, dtype.Integer, dtype.Integer, intOp(OpPlus, reg, func(a, b int) (int, error) { return a + b, nil })},
		{OpMinus, dtype.Integer, dtype.Integer, intOp(OpMinus, reg, func(a, b int) (int, error) { return a - b, nil })},
		{OpMultiply, dtype.Integer, dtype.Integer, intOp(OpMultiply, reg, func(a, b int) (int, error) { return a * b, nil })},
		{OpDivide, dtype.Integer, dtype.Integer, intOp(OpDivide, reg, func(a, b int) (int, error) {
			if b == 0 {
				return 0, errors.New("integer division by zero")
			}
			// Go's integer division already truncates toward zero
			return a / b, nil
		})},

		{OpPlus, dtype.Long, dtype.Long, longOp(OpPlus, reg, func(a, b int64) (int64, error) { return a + b, nil })},
		{OpMinus, dtype.Long, dtype.Long, longOp(OpMinus, reg, func(a, b int64) (int64, error) { return a - b, nil })},
		{OpMultiply, dtype.Long, dtype.Long, longOp(OpMultiply, reg, func(a, b int64) (int64, error) { return a * b, nil })},
		{OpDivide, dtype.Long, dtype.Long, longOp(OpDivide, reg, func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errors.New("long division by zero")
			}
			return a / b, nil
		})},

		{OpPlus, dtype.Double, dtype.Double, doubleOp(OpPlus, reg, func(a, b float64) (float64, error) { return a + b, nil })},
		{OpMinus, dtype.Double, dtype.Double, doubleOp(OpMinus, reg, func(a, b float64) (float64, error) { return a - b, nil })},
		{OpMultiply, dtype.Double, dtype.Double, doubleOp(OpMultiply, reg, func(a, b float64) (float64, error) { return a * b, nil })},
		{OpDivide, dtype.Double, dtype.Double, doubleOp(OpDivide, reg, func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errors.New("division by zero")
			}
			return a / b, nil
		})},

		{OpPlus, dtype.String, dtype.String, stringConcat(reg)},
		{OpMinus, dtype.String, dtype.String, stringRemove(reg)},
		{OpMinus, dtype.String, dtype.Integer, stringTrim(reg)},

		{OpPlus, dtype.Date, dtype.Long, dateShift(OpPlus, reg, dtype.Date, 24*time.Hour, 1)},
		{OpMinus, dtype.Date, dtype.Long, dateShift(OpMinus, reg, dtype.Date, 24*time.Hour, -1)},
		{OpPlus, dtype.DateTime, dtype.Long, dateShift(OpPlus, reg, dtype.DateTime, time.Second, 1)},
		{OpMinus, dtype.DateTime, dtype.Long, dateShift(OpMinus, reg, dtype.DateTime, time.Second, -1)},
	}

	for _, e := range entries {
		if err := t.Register(e.op, e.a, e.b, e.impl); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func intOp(op Operation, reg *dtype.Registry, fn func(a, b int) (int, error)) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		a, aok := first.Raw().(int)
		b, bok := second.Raw().(int)
		if !aok || !bok {
			return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
		}
		out, err := fn(a, b)
		if err != nil {
			return dtype.Value{}, err
		}
		return reg.NewValue(dtype.Integer, out), nil
	})
}

func longOp(op Operation, reg *dtype.Registry, fn func(a, b int64) (int64, error)) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		a, aok := first.Raw().(int64)
		b, bok := second.Raw().(int64)
		if !aok || !bok {
			return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
		}
		out, err := fn(a, b)
		if err != nil {
			return dtype.Value{}, err
		}
		return reg.NewValue(dtype.Long, out), nil
	})
}

func doubleOp(op Operation, reg *dtype.Registry, fn func(a, b float64) (float64, error)) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		a, aok := first.Raw().(float64)
		b, bok := second.Raw().(float64)
		if !aok || !bok {
			return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
		}
		out, err := fn(a, b)
		if err != nil {
			return dtype.Value{}, err
		}
		return reg.NewValue(dtype.Double, out), nil
	})
}

func stringConcat(reg *dtype.Registry) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		a, aok := first.Raw().(string)
		b, bok := second.Raw().(string)
		if !aok || !bok {
			return dtype.Value{}, &OperandError{Op: OpPlus, First: first.Type(), Second: second.Type()}
		}
		return reg.NewValue(dtype.String, a+b), nil
	})
}

// stringRemove deletes every occurrence of the second string from the first.
func stringRemove(reg *dtype.Registry) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		a, aok := first.Raw().(string)
		b, bok := second.Raw().(string)
		if !aok || !bok {
			return dtype.Value{}, &OperandError{Op: OpMinus, First: first.Type(), Second: second.Type()}
		}
		if b == "" {
			return first, nil
		}
		return reg.NewValue(dtype.String, strings.ReplaceAll(a, b, "")), nil
	})
}

// stringTrim drops the last n characters, clamping at empty. Negative n is
// rejected rather than interpreted as an append.
func stringTrim(reg *dtype.Registry) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		s, sok := first.Raw().(string)
		n, nok := second.Raw().(int)
		if !sok || !nok {
			return dtype.Value{}, &OperandError{Op: OpMinus, First: first.Type(), Second: second.Type()}
		}
		if n < 0 {
			return dtype.Value{}, errors.Newf("cannot drop %d characters: negative count", n)
		}
		runes := []rune(s)
		if n >= len(runes) {
			return reg.NewValue(dtype.String, ""), nil
		}
		return reg.NewValue(dtype.String, string(runes[:len(runes)-n])), nil
	})
}

// dateShift moves a temporal payload by a whole number of units: days for
// DATE, seconds for DATETIME.
func dateShift(op Operation, reg *dtype.Registry, resultType *dtype.DataType, unit time.Duration, sign int64) ValueOperator {
	return OperatorFunc(func(first, second dtype.Value) (dtype.Value, error) {
		t, tok := first.Raw().(time.Time)
		n, nok := second.Raw().(int64)
		if !tok || !nok {
			return dtype.Value{}, &OperandError{Op: op, First: first.Type(), Second: second.Type()}
		}
		return reg.NewValue(resultType, t.Add(time.Duration(sign*n)*unit)), nil
	})
}
