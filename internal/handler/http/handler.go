// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-env-schema/envschema"
	"github.com/MKhiriev/go-env-schema/internal/logger"
)

type Handler struct {
	config  *envschema.Result
	version string

	logger *logger.Logger
}

// NewHandler returns a handler serving the validated config and version.
func NewHandler(config *envschema.Result, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		config:  config,
		version: version,
		logger:  logger,
	}
}
