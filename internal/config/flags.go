// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds a listen address split into host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses envcheck command-line flags.
//
// Flags:
//
//	-a               inspection API address in format [host]:[port]
//	-q               quiet: log warnings and errors only
//	-role            role written to every log entry
//	-request-timeout inspection API request timeout (e.g., "5s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var quiet bool
	var role string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("envcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&address, "a", "Inspection API address host:port")
	fs.BoolVar(&quiet, "q", false, "Log warnings and errors only")
	fs.StringVar(&role, "role", "", "Role written to every log entry")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Role:  role,
			Quiet: quiet,
		},
		Server: Server{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
	}, nil
}

// String returns the host:port form, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port into a. The host may be empty (all interfaces),
// "localhost" or an IP address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
