// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceResult(t *testing.T) *Result {
	t.Helper()

	schema := NewSchema().
		Field("PORT", Number().Default(8080)).
		Field("DATABASE_URL", URL().Secret()).
		Field("DEBUG", Boolean().Default(false)).
		Field("ADMIN_EMAIL", Email().Optional()).
		Field("RATIO", Number().Optional()).
		MustBuild()

	res, err := ValidateMap(schema, map[string]string{
		"DATABASE_URL": "postgres://app:pw@db/app",
		"RATIO":        "0.75",
	})
	require.NoError(t, err)
	return res
}

func TestResult_Accessors(t *testing.T) {
	res := serviceResult(t)

	assert.Equal(t, 4, res.Len())
	assert.Equal(t, []string{"PORT", "DATABASE_URL", "DEBUG", "RATIO"}, res.Names())
	assert.Equal(t, 8080, res.Int("PORT"))
	assert.Equal(t, "8080", res.String("PORT"))
	assert.Equal(t, 0.75, res.Number("RATIO"))
	assert.False(t, res.Bool("DEBUG"))
	assert.False(t, res.Has("ADMIN_EMAIL"))
	assert.Equal(t, "", res.String("ADMIN_EMAIL"))

	v, ok := res.Lookup("DATABASE_URL")
	require.True(t, ok)
	assert.Equal(t, TypeString, v.Type())
}

func TestResult_Redacted(t *testing.T) {
	res := serviceResult(t)

	assert.Equal(t, map[string]any{
		"PORT":         float64(8080),
		"DATABASE_URL": RedactedValue,
		"DEBUG":        false,
		"RATIO":        0.75,
	}, res.Redacted())

	assert.Equal(t, "postgres://app:pw@db/app", res.Map()["DATABASE_URL"])
}

func TestResult_Decode(t *testing.T) {
	type config struct {
		Port        int     `env:"PORT"`
		DatabaseURL string  `env:"DATABASE_URL"`
		Debug       bool    `env:"DEBUG"`
		AdminEmail  string  `env:"ADMIN_EMAIL"`
		Ratio       float64 `env:"RATIO"`
	}

	var cfg config
	require.NoError(t, serviceResult(t).Decode(&cfg))

	assert.Equal(t, config{
		Port:        8080,
		DatabaseURL: "postgres://app:pw@db/app",
		Debug:       false,
		Ratio:       0.75,
	}, cfg)
}

func TestResult_DecodeTypeMismatch(t *testing.T) {
	var cfg struct {
		Debug int `env:"DEBUG"`
	}

	err := serviceResult(t).Decode(&cfg)
	require.Error(t, err)
}

func TestResult_DecodeRequiresPointer(t *testing.T) {
	var cfg struct{}

	err := serviceResult(t).Decode(cfg)
	require.Error(t, err)
}

func TestResult_IntSaturates(t *testing.T) {
	schema := NewSchema().
		Field("UP", Number()).
		Field("DOWN", Number()).
		Field("FRACTION", Number()).
		MustBuild()

	res, err := ValidateMap(schema, map[string]string{
		"UP":       "Infinity",
		"DOWN":     "-1e400",
		"FRACTION": "-2.9",
	})
	require.NoError(t, err)

	assert.Equal(t, math.MaxInt, res.Int("UP"))
	assert.Equal(t, math.MinInt, res.Int("DOWN"))
	assert.Equal(t, -2, res.Int("FRACTION"))
	assert.Zero(t, res.Int("MISSING"))
}
