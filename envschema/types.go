// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import "fmt"

// Type is the semantic type a raw value is coerced into.
type Type int

const (
	// TypeUnknown is the zero Type. Fields declared with it fail validation
	// with an unsupported type error.
	TypeUnknown Type = iota
	TypeString
	TypeNumber
	TypeBoolean
	TypeURL
	TypeEmail
)

var typeNames = map[Type]string{
	TypeString:  "string",
	TypeNumber:  "number",
	TypeBoolean: "boolean",
	TypeURL:     "url",
	TypeEmail:   "email",
}

// String returns the lowercase tag of the type, e.g. "number".
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsValid reports whether t is one of the supported types.
func (t Type) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType converts a type tag such as "url" into a Type.
// Tags are case-sensitive. An unknown tag returns [TypeUnknown] and an error
// wrapping [ErrUnsupportedType].
func ParseType(tag string) (Type, error) {
	for t, name := range typeNames {
		if name == tag {
			return t, nil
		}
	}
	return TypeUnknown, fmt.Errorf("%w: %q", ErrUnsupportedType, tag)
}
