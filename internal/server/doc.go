// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the inspection HTTP API of envcheck until the process
// receives SIGTERM, SIGINT or SIGQUIT, then shuts it down gracefully.
package server
