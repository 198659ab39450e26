// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoValidationHandler is returned when the validation service has no
	// HTTP handler to serve.
	ErrNoValidationHandler = errors.New("validation service has no http handler")

	// ErrNoListenAddress is returned when the validation service has no
	// address to listen on.
	ErrNoListenAddress = errors.New("validation service has no listen address")
)
