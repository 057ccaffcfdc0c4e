// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every [*FieldError] unwraps to exactly one of the first
// four, so callers can test a whole [*ValidationError] with errors.Is.
var (
	ErrMissingRequired = errors.New("missing required value")
	ErrTypeMismatch    = errors.New("value does not match declared type")
	ErrBoundViolation  = errors.New("value out of bounds")
	ErrUnsupportedType = errors.New("unsupported type")

	ErrEmptyFieldName = errors.New("empty field name")
	ErrDuplicateField = errors.New("duplicate field")
	ErrInvalidDefault = errors.New("invalid default value")
)

// Kind classifies a field violation.
type Kind int

const (
	KindMissingRequired Kind = iota + 1
	KindTypeMismatch
	KindBoundViolation
	KindUnsupportedType
)

func (k Kind) String() string {
	switch k {
	case KindMissingRequired:
		return "missing_required"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindBoundViolation:
		return "bound_violation"
	case KindUnsupportedType:
		return "unsupported_type"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissingRequired:
		return ErrMissingRequired
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindBoundViolation:
		return ErrBoundViolation
	case KindUnsupportedType:
		return ErrUnsupportedType
	default:
		return nil
	}
}

// Bound tells which limit a number violated.
type Bound int

const (
	BoundNone Bound = iota
	BoundMin
	BoundMax
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field string
	Kind  Kind
	Type  Type
	// Tag is the declared type tag; it differs from Type.String() only for
	// unsupported types.
	Tag string
	// Bound and Limit are set for KindBoundViolation.
	Bound Bound
	Limit float64
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case KindMissingRequired:
		return "Missing required environment variable: " + e.Field
	case KindBoundViolation:
		if e.Bound == BoundMax {
			return fmt.Sprintf("%s must be at most %s", e.Field, formatNumber(e.Limit))
		}
		return fmt.Sprintf("%s must be at least %s", e.Field, formatNumber(e.Limit))
	case KindUnsupportedType:
		return fmt.Sprintf("Unsupported type for %s: %s", e.Field, e.tag())
	}

	switch e.Type {
	case TypeNumber:
		return e.Field + " must be a valid number"
	case TypeBoolean:
		return e.Field + " must be 'true' or 'false'"
	case TypeURL:
		return e.Field + " must be a valid URL"
	case TypeEmail:
		return e.Field + " must be a valid email"
	default:
		return fmt.Sprintf("%s must be a %s", e.Field, e.tag())
	}
}

func (e *FieldError) Unwrap() error { return e.Kind.sentinel() }

func (e *FieldError) tag() string {
	if e.Tag != "" {
		return e.Tag
	}
	return e.Type.String()
}

// ValidationError aggregates every field violation found in one pass, in
// schema order.
type ValidationError struct {
	Errors []*FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("Environment validation failed:")
	for _, fe := range e.Errors {
		sb.WriteString("\n- ")
		sb.WriteString(fe.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// Messages returns the message of every field error, in order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return msgs
}

// FieldErrors returns the field errors carried by err, or nil if err is not
// (and does not wrap) a [*ValidationError].
func FieldErrors(err error) []*FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return nil
}
