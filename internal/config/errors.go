// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, an empty role).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid inspection API settings
	// (for example, a malformed address or a non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
