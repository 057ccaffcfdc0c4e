// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

// FieldSpec describes how one named value is validated. The zero FieldSpec is
// a required field of unknown type; use the constructors below instead.
//
// FieldSpec methods return modified copies, so specs can be shared and
// chained freely:
//
//	envschema.Number().Min(1).Max(100).Default(10)
type FieldSpec struct {
	typ      Type
	tag      string
	optional bool
	def      any
	min      *float64
	max      *float64
	secret   bool
}

// String declares a field that accepts any value.
func String() FieldSpec { return FieldSpec{typ: TypeString} }

// Number declares a numeric field.
func Number() FieldSpec { return FieldSpec{typ: TypeNumber} }

// Boolean declares a field that accepts exactly "true" or "false".
func Boolean() FieldSpec { return FieldSpec{typ: TypeBoolean} }

// URL declares a field holding an absolute URL.
func URL() FieldSpec { return FieldSpec{typ: TypeURL} }

// Email declares a field holding an email address.
func Email() FieldSpec { return FieldSpec{typ: TypeEmail} }

// Of declares a field from an untyped tag such as "number". An unknown tag is
// kept as-is and reported as an unsupported type when a value is validated.
func Of(tag string) FieldSpec {
	t, _ := ParseType(tag)
	return FieldSpec{typ: t, tag: tag}
}

// Optional marks the field as not required. An optional field that is absent
// and has no default is left out of the result.
func (f FieldSpec) Optional() FieldSpec {
	f.optional = true
	return f
}

// Required marks the field as required. Fields are required by default.
func (f FieldSpec) Required() FieldSpec {
	f.optional = false
	return f
}

// Default sets the value used when the field is absent. It must match the
// field type: a string for string, url and email fields, any Go integer or
// float for number fields and a bool for boolean fields. A mismatch is
// reported when the schema is built. Defaults are not checked against Min or
// Max.
func (f FieldSpec) Default(v any) FieldSpec {
	f.def = v
	return f
}

// Min sets the inclusive lower bound of a number field.
// It is ignored for other types.
func (f FieldSpec) Min(n float64) FieldSpec {
	f.min = &n
	return f
}

// Max sets the inclusive upper bound of a number field.
// It is ignored for other types.
func (f FieldSpec) Max(n float64) FieldSpec {
	f.max = &n
	return f
}

// Secret marks the field value as sensitive. Secret values are masked by
// [Result.Redacted].
func (f FieldSpec) Secret() FieldSpec {
	f.secret = true
	return f
}

// Type returns the declared type.
func (f FieldSpec) Type() Type { return f.typ }

// Tag returns the declared type tag, e.g. "email".
func (f FieldSpec) Tag() string {
	if f.tag != "" {
		return f.tag
	}
	return f.typ.String()
}

// IsRequired reports whether the field must be present when it has no default.
func (f FieldSpec) IsRequired() bool { return !f.optional }

// IsSecret reports whether the field was marked with Secret.
func (f FieldSpec) IsSecret() bool { return f.secret }

// HasDefault reports whether a default value was set.
func (f FieldSpec) HasDefault() bool { return f.def != nil }
