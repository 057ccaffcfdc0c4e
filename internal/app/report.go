// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-env-schema/envschema"
	"github.com/MKhiriev/go-env-schema/internal/logger"
)

// LogFieldErrors writes one error entry per invalid field and returns how
// many were logged.
func LogFieldErrors(log *logger.Logger, err error) int {
	fieldErrs := envschema.FieldErrors(err)
	for _, fe := range fieldErrs {
		log.Error().
			Str("field", fe.Field).
			Str("type", fe.Tag).
			Stringer("kind", fe.Kind).
			Msg(MsgFieldInvalid)
	}

	return len(fieldErrs)
}

// Report prints err for an operator: the aggregated validation message when
// err carries field errors, the plain error text otherwise.
func Report(w io.Writer, err error) {
	if len(envschema.FieldErrors(err)) == 0 {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	fmt.Fprintln(w, err)
}
