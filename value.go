package exprlang

import (
	"strconv"
)

type ValueType int

const (
	ValueNone ValueType = iota
	ValueBool
	ValueInt
	ValueFloat
)

// Value is a runtime value. Two values are equal with == exactly when they
// carry the same tag and payload.
type Value struct {
	t ValueType
	v interface{}
}

func NoneValue() Value           { return Value{t: ValueNone} }
func BoolValue(b bool) Value     { return Value{t: ValueBool, v: b} }
func IntValue(i int32) Value     { return Value{t: ValueInt, v: i} }
func FloatValue(f float64) Value { return Value{t: ValueFloat, v: f} }

func (v Value) Type() ValueType { return v.t }

func (v Value) IsNone() bool { return v.t == ValueNone }

func (v Value) Int() (int32, bool) {
	i, ok := v.v.(int32)
	return i, ok
}

func (v Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

func (v Value) Float() (float64, bool) {
	f, ok := v.v.(float64)
	return f, ok
}

func (v Value) String() string {
	switch v.t {
	case ValueBool:
		return strconv.FormatBool(v.v.(bool))
	case ValueInt:
		return strconv.FormatInt(int64(v.v.(int32)), 10)
	case ValueFloat:
		return strconv.FormatFloat(v.v.(float64), 'f', -1, 64)
	}
	return "()"
}

func intOp(lhs, rhs Value, fn func(a, b int32) int32) Value {
	a, ok1 := lhs.Int()
	b, ok2 := rhs.Int()
	if !ok1 || !ok2 {
		return NoneValue()
	}
	return IntValue(fn(a, b))
}

// compare orders two numeric values of the same tag. ok is false for any
// other combination.
func compare(lhs, rhs Value) (c int, ok bool) {
	switch {
	case lhs.t == ValueInt && rhs.t == ValueInt:
		a, b := lhs.v.(int32), rhs.v.(int32)
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	case lhs.t == ValueFloat && rhs.t == ValueFloat:
		a, b := lhs.v.(float64), rhs.v.(float64)
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		case a == b:
			return 0, true
		}
	}
	return 0, false
}

func negate(v Value) Value {
	if i, ok := v.Int(); ok {
		return IntValue(-i)
	}
	return NoneValue()
}

// complement flips the bits of an Int or the truth of a Bool.
func complement(v Value) Value {
	switch v.t {
	case ValueInt:
		return IntValue(^v.v.(int32))
	case ValueBool:
		return BoolValue(!v.v.(bool))
	}
	return NoneValue()
}
