// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/models"
)

// BuildConfigService loads and validates build configurations.
type BuildConfigService interface {
	// Load reads and validates the configuration file at path.
	Load(ctx context.Context, path string) (models.ValidationReport, error)

	// Validate validates a configuration document already held in memory.
	Validate(ctx context.Context, data []byte, format buildconfig.Format) (models.ValidationReport, error)

	// Plugins lists the built-in plugin catalogue.
	Plugins(ctx context.Context) []models.Plugin
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BuildConfigServiceWrapper defines middleware composition for BuildConfigService.
// Implementations wrap an existing BuildConfigService to add behavior such as
// logging.
type BuildConfigServiceWrapper interface {
	Wrap(BuildConfigService) BuildConfigService // returns a decorated BuildConfigService applying additional behavior
}
