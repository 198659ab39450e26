// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package buildconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/plugins"
	"github.com/MKhiriev/twconf/models"
)

// Loader turns configuration documents into validated records.
//
// A Loader holds no per-call state and is safe for concurrent use as long as
// its resolver is.
type Loader struct {
	resolver plugins.Resolver
	schemas  plugins.OptionsSchemas

	logger *logger.Logger
}

// NewLoader creates a loader. schemas may be nil, in which case plugin option
// objects are only checked against the plugin list.
func NewLoader(resolver plugins.Resolver, schemas plugins.OptionsSchemas, logger *logger.Logger) *Loader {
	return &Loader{
		resolver: resolver,
		schemas:  schemas,
		logger:   logger,
	}
}

// Load reads the file at path, detects its format from the extension and
// parses it with [Loader.Parse].
func (l *Loader) Load(ctx context.Context, path string) (models.ValidationReport, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.ValidationReport{}, &ParseError{Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.ValidationReport{}, fmt.Errorf("error reading config file: %w", err)
	}

	return l.Parse(ctx, data, format)
}

// Parse decodes data, applies defaults, validates the record, resolves every
// plugin and validates plugin options. Parsing has no side effects; the same
// input always yields an equal report.
func (l *Loader) Parse(ctx context.Context, data []byte, format Format) (models.ValidationReport, error) {
	if err := ctx.Err(); err != nil {
		return models.ValidationReport{}, err
	}

	cfg, err := Decode(data, format)
	if err != nil {
		return models.ValidationReport{}, err
	}

	declared, err := DeclaredFields(data, format)
	if err != nil {
		return models.ValidationReport{}, err
	}

	ApplyDefaults(&cfg, declared)
	if err = Validate(cfg); err != nil {
		return models.ValidationReport{}, err
	}

	resolved, err := l.resolvePlugins(ctx, cfg.Plugins)
	if err != nil {
		return models.ValidationReport{}, err
	}

	if err = l.validatePluginOptions(cfg.PluginOptions, cfg.Plugins, resolved); err != nil {
		return models.ValidationReport{}, err
	}

	fingerprint, err := Fingerprint(cfg)
	if err != nil {
		return models.ValidationReport{}, err
	}

	l.logger.Debug().
		Str("format", format.String()).
		Str("fingerprint", fingerprint).
		Int("content_paths", len(cfg.ContentPaths)).
		Int("plugins", len(resolved)).
		Msg("build configuration loaded")

	return models.ValidationReport{
		Config:      cfg,
		Fingerprint: fingerprint,
		Plugins:     resolved,
	}, nil
}

// resolvePlugins resolves refs in order. Two references resolving to the
// same package are a duplicate.
func (l *Loader) resolvePlugins(ctx context.Context, refs []models.PluginRef) ([]models.Plugin, error) {
	resolved := make([]models.Plugin, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))

	for i, ref := range refs {
		plugin, err := l.resolver.Resolve(ctx, ref)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, &PluginResolutionError{Field: indexedField(FieldPlugins, i), Ref: ref, Err: err}
		}

		if _, dup := seen[plugin.Package]; dup {
			return nil, &ValidationError{Field: indexedField(FieldPlugins, i), Value: ref, Err: ErrDuplicatePlugin}
		}
		seen[plugin.Package] = struct{}{}

		resolved = append(resolved, plugin)
	}

	return resolved, nil
}

// validatePluginOptions checks that every option section belongs to a listed
// plugin and satisfies that plugin's schema. Sections are visited in name
// order so the reported field is deterministic.
func (l *Loader) validatePluginOptions(options models.PluginOptions, refs []models.PluginRef, resolved []models.Plugin) error {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pos := slices.IndexFunc(resolved, func(p models.Plugin) bool {
			return p.Name == name || p.Package == name
		})
		if pos < 0 {
			pos = slices.Index(refs, models.PluginRef(name))
		}
		if pos < 0 {
			return &ValidationError{Field: optionsField(name), Value: name, Err: ErrUnknownPluginOptions}
		}

		if l.schemas == nil {
			continue
		}
		validate, ok := l.schemas.OptionsValidator(resolved[pos].Name)
		if !ok {
			continue
		}

		if err := validate(options[name]); err != nil {
			field := optionsField(name)
			var optErr *plugins.OptionError
			if errors.As(err, &optErr) && optErr.Option != "" {
				field = optionsField(name, optErr.Option)
			}
			return &ValidationError{Field: field, Value: options[name], Err: errors.Join(ErrInvalidPluginOptions, err)}
		}
	}

	return nil
}
