// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the sample service configuration validated by envcheck
// and the wording shared by its log entries and HTTP responses.
package app

const (
	// MsgInternalServerError is returned when the inspection API fails to
	// encode a response.
	MsgInternalServerError = "internal server error"

	// MsgConfigValidated is logged once the service configuration passed
	// validation.
	MsgConfigValidated = "configuration validated"

	// MsgConfigInvalid is logged when at least one field failed validation.
	MsgConfigInvalid = "configuration invalid"

	// MsgFieldInvalid is logged once per field that failed validation.
	MsgFieldInvalid = "invalid configuration field"
)
