// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the inspection API served by envcheck once the
// service configuration passed validation.
//
// Routes:
//
//	GET /healthz  liveness probe, always "ok"
//	GET /version  build version as plain text
//	GET /config   validated configuration as JSON, secrets masked
//
// Every request gets a trace id (X-Trace-ID, generated when absent) and an
// access log entry.
package http
