// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *FieldError
		want string
		is   error
	}{
		{
			name: "missing",
			err:  &FieldError{Field: "API_KEY", Kind: KindMissingRequired, Type: TypeString},
			want: "Missing required environment variable: API_KEY",
			is:   ErrMissingRequired,
		},
		{
			name: "number",
			err:  &FieldError{Field: "PORT", Kind: KindTypeMismatch, Type: TypeNumber},
			want: "PORT must be a valid number",
			is:   ErrTypeMismatch,
		},
		{
			name: "boolean",
			err:  &FieldError{Field: "DEBUG", Kind: KindTypeMismatch, Type: TypeBoolean},
			want: "DEBUG must be 'true' or 'false'",
			is:   ErrTypeMismatch,
		},
		{
			name: "url",
			err:  &FieldError{Field: "HOME", Kind: KindTypeMismatch, Type: TypeURL},
			want: "HOME must be a valid URL",
			is:   ErrTypeMismatch,
		},
		{
			name: "email",
			err:  &FieldError{Field: "MAIL", Kind: KindTypeMismatch, Type: TypeEmail},
			want: "MAIL must be a valid email",
			is:   ErrTypeMismatch,
		},
		{
			name: "min",
			err:  &FieldError{Field: "N", Kind: KindBoundViolation, Type: TypeNumber, Bound: BoundMin, Limit: -2.5},
			want: "N must be at least -2.5",
			is:   ErrBoundViolation,
		},
		{
			name: "max",
			err:  &FieldError{Field: "N", Kind: KindBoundViolation, Type: TypeNumber, Bound: BoundMax, Limit: 1e6},
			want: "N must be at most 1000000",
			is:   ErrBoundViolation,
		},
		{
			name: "unsupported",
			err:  &FieldError{Field: "X", Kind: KindUnsupportedType, Tag: "duration"},
			want: "Unsupported type for X: duration",
			is:   ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.is)
		})
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	ve := &ValidationError{Errors: []*FieldError{
		{Field: "A", Kind: KindMissingRequired},
		{Field: "B", Kind: KindTypeMismatch, Type: TypeBoolean},
	}}
	wrapped := fmt.Errorf("error loading configuration: %w", ve)

	assert.Len(t, FieldErrors(wrapped), 2)
	assert.ErrorIs(t, wrapped, ErrMissingRequired)
	assert.ErrorIs(t, wrapped, ErrTypeMismatch)
	assert.NotErrorIs(t, wrapped, ErrBoundViolation)
	assert.Equal(t, "error loading configuration: Environment validation failed:\n"+
		"- Missing required environment variable: A\n"+
		"- B must be 'true' or 'false'", wrapped.Error())

	assert.Nil(t, FieldErrors(errors.New("other")))
	assert.Nil(t, FieldErrors(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "missing_required", KindMissingRequired.String())
	assert.Equal(t, "unsupported_type", KindUnsupportedType.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
