// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"errors"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator checks a Schema against a Source. The zero value is not usable;
// create one with New.
type Validator struct {
	source Source
	log    zerolog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithSource sets the source of raw values. Without it, or with a nil
// source, the process environment is read once per Validate call.
func WithSource(src Source) Option {
	return func(v *Validator) {
		v.source = src
	}
}

// WithLogger enables debug logging of field outcomes. Raw values are never
// logged.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Validator) {
		v.log = l
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks every field of schema and returns the typed result, or a
// [*ValidationError] listing every violation. A result is never returned
// together with an error.
func (v *Validator) Validate(schema *Schema) (*Result, error) {
	src := v.source
	if src == nil {
		src = Environ()
	}

	res := newResult(schema.Len())
	var errs []*FieldError

	for _, f := range schema.all() {
		value, ok, fe := validateField(f, src)
		if fe != nil {
			v.log.Debug().
				Str("field", f.name).
				Str("type", f.spec.Tag()).
				Stringer("kind", fe.Kind).
				Msg("field rejected")
			errs = append(errs, fe)
			continue
		}
		if !ok {
			v.log.Debug().Str("field", f.name).Msg("optional field not set")
			continue
		}

		v.log.Debug().Str("field", f.name).Str("type", f.spec.Tag()).Msg("field accepted")
		res.set(f.name, value, f.spec.secret)
	}

	if len(errs) > 0 {
		v.log.Warn().Int("errors", len(errs)).Msg("environment validation failed")
		return nil, &ValidationError{Errors: errs}
	}

	return res, nil
}

// validateField returns the value to store, whether to store it, or the
// violation found.
func validateField(f field, src Source) (Value, bool, *FieldError) {
	raw, present := src.Lookup(f.name)
	if !present {
		switch {
		case f.hasDefault():
			return f.def, true, nil
		case f.spec.optional:
			return Value{}, false, nil
		default:
			return Value{}, false, newFieldError(f, KindMissingRequired)
		}
	}

	switch f.spec.typ {
	case TypeString:
		return StringValue(raw), true, nil

	case TypeNumber:
		n, ok := parseNumber(raw)
		if !ok {
			return Value{}, false, newFieldError(f, KindTypeMismatch)
		}
		if f.spec.min != nil && n < *f.spec.min {
			fe := newFieldError(f, KindBoundViolation)
			fe.Bound, fe.Limit = BoundMin, *f.spec.min
			return Value{}, false, fe
		}
		if f.spec.max != nil && n > *f.spec.max {
			fe := newFieldError(f, KindBoundViolation)
			fe.Bound, fe.Limit = BoundMax, *f.spec.max
			return Value{}, false, fe
		}
		return NumberValue(n), true, nil

	case TypeBoolean:
		switch raw {
		case "true":
			return BoolValue(true), true, nil
		case "false":
			return BoolValue(false), true, nil
		}
		return Value{}, false, newFieldError(f, KindTypeMismatch)

	case TypeURL:
		if !isURL(raw) {
			return Value{}, false, newFieldError(f, KindTypeMismatch)
		}
		return StringValue(raw), true, nil

	case TypeEmail:
		if !emailPattern.MatchString(raw) {
			return Value{}, false, newFieldError(f, KindTypeMismatch)
		}
		return StringValue(raw), true, nil

	default:
		return Value{}, false, newFieldError(f, KindUnsupportedType)
	}
}

func newFieldError(f field, kind Kind) *FieldError {
	return &FieldError{
		Field: f.name,
		Kind:  kind,
		Type:  f.spec.typ,
		Tag:   f.spec.Tag(),
	}
}

// parseNumber accepts surrounding whitespace, decimal and exponent forms,
// unsigned 0x/0o/0b integers and the literal Infinity. Blank input is 0 and
// decimal overflow is ±Inf. NaN and any other spelling are rejected.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	if hasRadixPrefix(s) {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) > 1 {
		return 0, false
	}
	if unsigned == "Infinity" {
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	// leaves only plain decimal notation for ParseFloat: no hex floats,
	// underscores, inf or nan spellings
	if strings.IndexFunc(unsigned, func(r rune) bool {
		return !strings.ContainsRune("0123456789.eE+-", r)
	}) >= 0 {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func hasRadixPrefix(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

// isURL requires a scheme and a non-empty host, opaque part or path. A bare
// "scheme:" is rejected.
func isURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

// Validate checks schema against src. A nil src reads the process
// environment.
func Validate(schema *Schema, src Source) (*Result, error) {
	return New(WithSource(src)).Validate(schema)
}

// ValidateEnv checks schema against the process environment.
func ValidateEnv(schema *Schema) (*Result, error) {
	return New().Validate(schema)
}

// ValidateMap checks schema against an explicit mapping. Unlike Validate with
// a nil source, a nil map never falls back to the environment.
func ValidateMap(schema *Schema, values map[string]string) (*Result, error) {
	return New(WithSource(Map(values))).Validate(schema)
}

// MustValidate is like Validate but panics with the aggregated error.
func MustValidate(schema *Schema, src Source) *Result {
	res, err := Validate(schema, src)
	if err != nil {
		panic(err)
	}
	return res
}
