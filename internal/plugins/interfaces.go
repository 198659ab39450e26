// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package plugins locates the extension modules referenced by a build
// configuration and validates their option objects.
//
// Core concepts:
//   - Resolver: maps a [models.PluginRef] to a resolved [models.Plugin].
//   - Registry: the built-in catalogue of known plugins, their aliases and
//     option schemas.
//   - ModuleResolver: checks that a plugin package is installed in a
//     package modules directory.
//   - ChainResolver: tries several resolvers in order.
//
// Plugin code is never loaded or executed here.
package plugins

import (
	"context"

	"github.com/MKhiriev/twconf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/plugins_mock.go -package=mock

// Resolver locates the plugin a reference points to.
//
// Implementations return an error matching [ErrPluginNotFound] when the
// reference is unknown to them, so that a [ChainResolver] can fall through.
type Resolver interface {
	Resolve(ctx context.Context, ref models.PluginRef) (models.Plugin, error)
}

// OptionsSchemas exposes per-plugin option validators by canonical name.
type OptionsSchemas interface {
	OptionsValidator(name string) (OptionsValidator, bool)
}

// OptionsValidator checks the raw option object of one plugin. Failures are
// returned as *OptionError so the caller can name the offending option.
type OptionsValidator func(opts map[string]any) error
