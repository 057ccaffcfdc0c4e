// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-schema/internal/config"
	"github.com/MKhiriev/go-env-schema/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{}, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:    "127.0.0.1:99999",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.Error(t, err)
}
