// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the validation service.
//
// The primary abstraction is [ValidatorAdapter], which lets the CLI validate
// a document against a remote twconf server exactly as it would locally.
// Error responses are mapped back to the loader's error types by
// mapHTTPError, so callers match them with [errors.Is] against
// buildconfig.ErrConfigParse, buildconfig.ErrConfigValidation and
// buildconfig.ErrPluginResolution whichever side produced them.
package adapter

import (
	"context"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/models"
)

// ValidatorAdapter talks to a remote twconf server.
type ValidatorAdapter interface {
	// Validate submits a configuration document and returns the server's
	// report.
	Validate(ctx context.Context, data []byte, format buildconfig.Format) (models.ValidationReport, error)

	// Plugins fetches the server's built-in plugin catalogue.
	Plugins(ctx context.Context) ([]models.Plugin, error)

	// Version fetches the server version.
	Version(ctx context.Context) (string, error)
}
