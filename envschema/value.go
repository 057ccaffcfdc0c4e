// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a normalized configuration value: a string, a number or a boolean.
// The zero Value holds nothing and reports IsZero.
type Value struct {
	typ Type
	str string
	num float64
	b   bool
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{typ: TypeString, str: s} }

// NumberValue returns a number Value.
func NumberValue(n float64) Value { return Value{typ: TypeNumber, num: n} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{typ: TypeBoolean, b: b} }

// Type returns the kind of data held by v: TypeString, TypeNumber or
// TypeBoolean. URL and email fields hold string values.
func (v Value) Type() Type { return v.typ }

// IsZero reports whether v holds no value.
func (v Value) IsZero() bool { return v.typ == TypeUnknown }

// String returns the textual form of v. Numbers use the shortest decimal
// representation, booleans are "true" or "false".
func (v Value) String() string {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeNumber:
		return formatNumber(v.num)
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Float returns the number held by v, or 0 for non-number values.
func (v Value) Float() float64 { return v.num }

// Bool returns the boolean held by v, or false for non-boolean values.
func (v Value) Bool() bool { return v.b }

// Interface returns v as a string, float64 or bool, or nil for the zero Value.
func (v Value) Interface() any {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeNumber:
		return v.num
	case TypeBoolean:
		return v.b
	default:
		return nil
	}
}

// formatNumber renders n with the shortest representation that round-trips.
// Magnitudes from 1e21 up and below 1e-6 use exponent notation without
// padding ("1e+21", "1.5e-7"), negative zero prints as 0 and infinities
// print as Infinity.
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	if n == 0 {
		return "0"
	}

	abs := math.Abs(n)
	if math.IsNaN(n) || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + exp[:1] + digits
}

// valueFor converts a Go default into the Value stored for a field of type t.
func valueFor(t Type, v any) (Value, error) {
	if val, ok := v.(Value); ok {
		return checkValueType(t, val)
	}

	switch x := v.(type) {
	case string:
		return checkValueType(t, StringValue(x))
	case bool:
		return checkValueType(t, BoolValue(x))
	case int:
		return checkValueType(t, NumberValue(float64(x)))
	case int8:
		return checkValueType(t, NumberValue(float64(x)))
	case int16:
		return checkValueType(t, NumberValue(float64(x)))
	case int32:
		return checkValueType(t, NumberValue(float64(x)))
	case int64:
		return checkValueType(t, NumberValue(float64(x)))
	case uint:
		return checkValueType(t, NumberValue(float64(x)))
	case uint8:
		return checkValueType(t, NumberValue(float64(x)))
	case uint16:
		return checkValueType(t, NumberValue(float64(x)))
	case uint32:
		return checkValueType(t, NumberValue(float64(x)))
	case uint64:
		return checkValueType(t, NumberValue(float64(x)))
	case float32:
		return checkValueType(t, NumberValue(float64(x)))
	case float64:
		return checkValueType(t, NumberValue(x))
	default:
		return Value{}, fmt.Errorf("%w: unsupported Go type %T", ErrInvalidDefault, v)
	}
}

func checkValueType(t Type, v Value) (Value, error) {
	if v.IsZero() {
		return Value{}, fmt.Errorf("%w: empty value", ErrInvalidDefault)
	}

	// untyped fields accept any default; a present raw value is rejected later
	if !t.IsValid() {
		return v, nil
	}

	want := t
	if t == TypeURL || t == TypeEmail {
		want = TypeString
	}

	if v.typ != want {
		return Value{}, fmt.Errorf("%w: %s default for %s field", ErrInvalidDefault, v.typ, t)
	}
	return v, nil
}
