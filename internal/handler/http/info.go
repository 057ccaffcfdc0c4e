// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-env-schema/internal/app"
	"github.com/MKhiriev/go-env-schema/internal/logger"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}

// getConfig writes the validated configuration with secret fields masked.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(h.config.Redacted())
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error encoding config")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
