// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultRole           = "envcheck"
	defaultRequestTimeout = 5 * time.Second
)

// StructuredConfig is the configuration of the envcheck binary.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds logging and reporting settings.
	App App `envPrefix:"ENVCHECK_"`

	// Server holds the settings of the optional inspection HTTP API.
	Server Server `envPrefix:"ENVCHECK_"`
}

// App groups settings of the binary itself.
type App struct {
	// Role is written to the "role" field of every log entry.
	Role string `env:"ROLE"`

	// Quiet raises the log level to warn, hiding per-field debug output.
	Quiet bool `env:"QUIET"`
}

// Server configures the inspection HTTP API. The API is not started when
// HTTPAddress is empty.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Role: defaultRole,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

// GetStructuredConfig assembles the configuration from defaults, the
// environment and args (without the program name), then validates it.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
