// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the runtime configuration of the envcheck binary
// itself. It is unrelated to the service schema envcheck validates.
//
// Sources are applied in the following order, later non-zero values winning:
//  1. Built-in defaults
//  2. Environment variables (ENVCHECK_*)
//  3. Command-line flags
//
// The entry point is [GetStructuredConfig].
package config
