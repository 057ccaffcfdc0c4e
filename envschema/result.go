// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

// RedactedValue replaces secret values in [Result.Redacted].
const RedactedValue = "******"

// Result holds the normalized values of a successful validation. Fields that
// were optional, absent and without default are not present.
type Result struct {
	values map[string]Value
	names  []string
	secret map[string]bool
}

func newResult(size int) *Result {
	return &Result{
		values: make(map[string]Value, size),
		names:  make([]string, 0, size),
		secret: make(map[string]bool),
	}
}

func (r *Result) set(name string, v Value, secret bool) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
	if secret {
		r.secret[name] = true
	}
}

// Lookup returns the value of name and whether it is present.
func (r *Result) Lookup(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether name is present.
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of present fields.
func (r *Result) Len() int { return len(r.values) }

// Names returns the present field names in schema order.
func (r *Result) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// String returns the textual form of name, or "" if it is absent.
func (r *Result) String(name string) string { return r.values[name].String() }

// Number returns the number held by name, or 0.
func (r *Result) Number(name string) float64 { return r.values[name].Float() }

// Int returns the number held by name truncated toward zero, or 0. Values
// outside the int range, Infinity included, saturate at math.MinInt or
// math.MaxInt.
func (r *Result) Int(name string) int {
	n := math.Trunc(r.values[name].Float())
	switch {
	case n >= math.MaxInt:
		return math.MaxInt
	case n <= math.MinInt:
		return math.MinInt
	}
	return int(n)
}

// Bool returns the boolean held by name, or false.
func (r *Result) Bool(name string) bool { return r.values[name].Bool() }

// Map returns the result as a plain mapping of string, float64 and bool values.
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for name, v := range r.values {
		m[name] = v.Interface()
	}
	return m
}

// Redacted is like Map but replaces the values of secret fields with
// [RedactedValue]. It is meant for logs and diagnostics.
func (r *Result) Redacted() map[string]any {
	m := r.Map()
	for name := range r.secret {
		m[name] = RedactedValue
	}
	return m
}

// Decode copies the result into the struct pointed to by out. Struct fields
// are matched by their `env` tag, or by name when the tag is missing.
//
// Numbers are decoded from float64. Decoding a number outside the range of
// an integer target, such as Infinity, gives an implementation-defined value;
// bound such fields with Min and Max or decode them into a float64.
func (r *Result) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("error creating decoder: %w", err)
	}

	if err := decoder.Decode(r.Map()); err != nil {
		return fmt.Errorf("error decoding validated values: %w", err)
	}

	return nil
}
