// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBuilder_KeepsFieldOrder(t *testing.T) {
	s, err := NewSchema().
		Field("C", String()).
		Field("A", Number()).
		Field("B", Boolean()).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "A", "B"}, s.Names())
	assert.Equal(t, 3, s.Len())

	spec, ok := s.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, TypeNumber, spec.Type())
	assert.True(t, spec.IsRequired())

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestSchemaBuilder_AccumulatesErrors(t *testing.T) {
	s, err := NewSchema().
		Field("PORT", Number()).
		Field("PORT", String()).
		Field("", String()).
		Field("DEBUG", Boolean().Default("yes")).
		Field("COUNT", Number().Default(true)).
		Build()

	assert.Nil(t, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateField)
	assert.ErrorIs(t, err, ErrEmptyFieldName)
	assert.ErrorIs(t, err, ErrInvalidDefault)
	assert.Contains(t, err.Error(), "field DEBUG")
	assert.Contains(t, err.Error(), "field COUNT")
}

func TestSchemaBuilder_DefaultTypes(t *testing.T) {
	tests := []struct {
		name    string
		spec    FieldSpec
		want    Value
		wantErr bool
	}{
		{name: "int for number", spec: Number().Default(3000), want: NumberValue(3000)},
		{name: "uint8 for number", spec: Number().Default(uint8(7)), want: NumberValue(7)},
		{name: "float32 for number", spec: Number().Default(float32(0.5)), want: NumberValue(0.5)},
		{name: "bool for boolean", spec: Boolean().Default(false), want: BoolValue(false)},
		{name: "string for url", spec: URL().Default("http://localhost"), want: StringValue("http://localhost")},
		{name: "string for email", spec: Email().Default("a@b.co"), want: StringValue("a@b.co")},
		{name: "Value for string", spec: String().Default(StringValue("x")), want: StringValue("x")},
		{name: "string for number", spec: Number().Default("3000"), wantErr: true},
		{name: "number for string", spec: String().Default(1), wantErr: true},
		{name: "slice", spec: String().Default([]string{"a"}), wantErr: true},
		{name: "zero Value", spec: String().Default(Value{}), wantErr: true},
		{name: "anything for unknown tag", spec: Of("duration").Default("5s"), want: StringValue("5s")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema().Field("F", tt.spec).Build()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDefault)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.fields[0].def)
		})
	}
}

func TestSchemaBuilder_BuildIsolatedFromLaterFields(t *testing.T) {
	b := NewSchema().Field("A", String())
	first, err := b.Build()
	require.NoError(t, err)

	b.Field("B", String())
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, first.Names())
	assert.Equal(t, []string{"A", "B"}, second.Names())
}

func TestSchemaBuilder_MustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema().Field("", String()).MustBuild()
	})
}

func TestSchemaFromMap_SortsByName(t *testing.T) {
	s, err := SchemaFromMap(map[string]FieldSpec{
		"PORT":    Number().Default(3000),
		"API_KEY": String(),
		"DEBUG":   Boolean().Optional(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"API_KEY", "DEBUG", "PORT"}, s.Names())

	_, err = ValidateMap(s, map[string]string{"PORT": "x"})
	require.Error(t, err)
	assert.Equal(t, "Environment validation failed:\n"+
		"- Missing required environment variable: API_KEY\n"+
		"- PORT must be a valid number", err.Error())
}

func TestFieldSpec_Chaining(t *testing.T) {
	base := Number().Min(1)
	withMax := base.Max(10)

	assert.Nil(t, base.max, "methods return copies")
	require.NotNil(t, withMax.max)
	assert.Equal(t, float64(10), *withMax.max)
	assert.Equal(t, float64(1), *withMax.min)

	spec := String().Optional().Secret()
	assert.False(t, spec.IsRequired())
	assert.True(t, spec.IsSecret())
	assert.False(t, spec.HasDefault())
	assert.True(t, spec.Required().IsRequired())
	assert.True(t, spec.Default("x").HasDefault())
}

func TestOf(t *testing.T) {
	spec := Of("email")
	assert.Equal(t, TypeEmail, spec.Type())
	assert.Equal(t, "email", spec.Tag())

	spec = Of("Email")
	assert.Equal(t, TypeUnknown, spec.Type())
	assert.Equal(t, "Email", spec.Tag())
}
