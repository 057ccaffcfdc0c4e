// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command envcheck is the startup routine of the sample service: it validates
// the process environment against the service schema, reports every problem
// at once and, when an address is configured, serves the validated
// configuration over HTTP.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-env-schema/envschema"
	"github.com/MKhiriev/go-env-schema/internal/app"
	"github.com/MKhiriev/go-env-schema/internal/config"
	handler "github.com/MKhiriev/go-env-schema/internal/handler/http"
	"github.com/MKhiriev/go-env-schema/internal/logger"
	"github.com/MKhiriev/go-env-schema/internal/server"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(os.Stdout)
	os.Exit(run(os.Args[1:], envschema.Environ(), os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 1 on invalid service
// configuration, 2 on invalid envcheck configuration.
func run(args []string, src envschema.Source, stdout, stderr io.Writer) int {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		app.Report(stderr, err)
		return 2
	}

	level := zerolog.DebugLevel
	if cfg.App.Quiet {
		level = zerolog.WarnLevel
	}
	log := logger.New(cfg.App.Role, stdout, level)

	_, res, err := app.LoadServiceConfig(src, log.Logger)
	if err != nil {
		n := app.LogFieldErrors(log, err)
		log.Error().Int("errors", n).Msg(app.MsgConfigInvalid)
		app.Report(stderr, err)
		return 1
	}

	log.Info().Interface("config", res.Redacted()).Msg(app.MsgConfigValidated)

	if cfg.Server.HTTPAddress == "" {
		return 0
	}

	h := handler.NewHandler(res, buildVersion, log)
	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return 1
	}
	srv.RunServer()

	return 0
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
