// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.BuildConfigPath) == "" || cfg.App.ProjectRoot == "" || cfg.App.ModulesDir == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxBodyBytes < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Cache.Size <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.WatchInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
