// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/MKhiriev/go-env-schema/envschema"
	"github.com/rs/zerolog"
)

// ServiceConfig is the decoded configuration of the sample service.
type ServiceConfig struct {
	Port        int    `env:"PORT"`
	DatabaseURL string `env:"DATABASE_URL"`
	APIKey      string `env:"API_KEY"`
	Debug       bool   `env:"DEBUG"`
	AdminEmail  string `env:"ADMIN_EMAIL"`
	MaxUsers    int    `env:"MAX_USERS"`
}

var serviceSchema = envschema.NewSchema().
	Field("PORT", envschema.Number().Default(8080).Min(1).Max(65535)).
	Field("DATABASE_URL", envschema.URL().Secret()).
	Field("API_KEY", envschema.String().Secret()).
	Field("DEBUG", envschema.Boolean().Default(false)).
	Field("ADMIN_EMAIL", envschema.Email().Optional()).
	Field("MAX_USERS", envschema.Number().Default(10).Min(1).Max(100)).
	MustBuild()

// ServiceSchema returns the schema of the sample service.
func ServiceSchema() *envschema.Schema {
	return serviceSchema
}

// LoadServiceConfig validates src against [ServiceSchema] and decodes the
// result. On a validation failure the returned error is the
// *envschema.ValidationError itself, so callers can report every field.
func LoadServiceConfig(src envschema.Source, log zerolog.Logger) (*ServiceConfig, *envschema.Result, error) {
	res, err := envschema.New(envschema.WithSource(src), envschema.WithLogger(log)).Validate(serviceSchema)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ServiceConfig)
	if err := res.Decode(cfg); err != nil {
		return nil, nil, fmt.Errorf("error decoding service config: %w", err)
	}

	return cfg, res, nil
}
