// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"errors"
	"fmt"
	"sort"
)

type field struct {
	name string
	spec FieldSpec
	def  Value
}

func (f field) hasDefault() bool { return !f.def.IsZero() }

// Schema is an ordered, immutable set of uniquely named fields.
// It is safe for concurrent use once built.
type Schema struct {
	fields []field
	index  map[string]int
}

// SchemaBuilder collects fields for a Schema. Construction errors are
// accumulated and reported together by Build.
type SchemaBuilder struct {
	fields []field
	index  map[string]int
	err    error
}

// NewSchema starts an empty schema.
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{
		fields: make([]field, 0, 8),
		index:  make(map[string]int),
	}
}

// Field appends a field. Fields are validated in the order they are added.
func (b *SchemaBuilder) Field(name string, spec FieldSpec) *SchemaBuilder {
	if name == "" {
		b.err = errors.Join(b.err, ErrEmptyFieldName)
		return b
	}

	if _, ok := b.index[name]; ok {
		b.err = errors.Join(b.err, fmt.Errorf("field %s: %w", name, ErrDuplicateField))
		return b
	}

	f := field{name: name, spec: spec}
	if spec.def != nil {
		def, err := valueFor(spec.typ, spec.def)
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("field %s: %w", name, err))
			return b
		}
		f.def = def
	}

	b.index[name] = len(b.fields)
	b.fields = append(b.fields, f)
	return b
}

// Build returns the schema, or every construction error joined together.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building schema: %w", b.err)
	}

	s := &Schema{
		fields: make([]field, len(b.fields)),
		index:  make(map[string]int, len(b.index)),
	}
	copy(s.fields, b.fields)
	for name, i := range b.index {
		s.index[name] = i
	}

	return s, nil
}

// MustBuild is like Build but panics on error. It is intended for schemas
// declared as package-level variables.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// SchemaFromMap builds a schema from an unordered mapping. Fields are ordered
// by name so that validation errors are reported deterministically.
func SchemaFromMap(specs map[string]FieldSpec) (*Schema, error) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	b := NewSchema()
	for _, name := range names {
		b.Field(name, specs[name])
	}
	return b.Build()
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Names returns field names in validation order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}

	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Lookup returns the spec of the named field.
func (s *Schema) Lookup(name string) (FieldSpec, bool) {
	if s == nil {
		return FieldSpec{}, false
	}

	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i].spec, true
}

func (s *Schema) all() []field {
	if s == nil {
		return nil
	}
	return s.fields
}
