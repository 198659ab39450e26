// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package buildconfig

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/twconf/models"
)

// Kind sentinels. Every error returned by the loader matches exactly one of
// them with [errors.Is].
var (
	// ErrConfigParse marks malformed input.
	ErrConfigParse = errors.New("config parse error")

	// ErrConfigValidation marks a well-formed document that breaks a rule.
	ErrConfigValidation = errors.New("config validation error")

	// ErrPluginResolution marks a plugin reference that cannot be located.
	ErrPluginResolution = errors.New("plugin resolution error")
)

// Validation reasons carried inside [ValidationError].
var (
	ErrUnknownMode             = errors.New("unrecognized mode")
	ErrUnknownDarkModeStrategy = errors.New("unrecognized dark mode strategy")
	ErrInvalidContentPath      = errors.New("invalid content path glob")
	ErrEmptyPluginRef          = errors.New("empty plugin reference")
	ErrDuplicatePlugin         = errors.New("plugin is referenced more than once")
	ErrUnknownPluginOptions    = errors.New("options given for a plugin that is not registered")
	ErrInvalidPluginOptions    = errors.New("invalid plugin options")
)

var (
	ErrEmptyDocument     = errors.New("empty document")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrTrailingData      = errors.New("unexpected data after document")
)

// ParseError reports input that cannot be decoded into a configuration.
type ParseError struct {
	// Format is the format the input was decoded as.
	Format Format

	// Field is the offending field when the decoder can name it.
	Field string

	Err error
}

func (e *ParseError) Error() string {
	msg := ErrConfigParse.Error()
	if e.Format != "" {
		msg += ": " + e.Format.String()
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrConfigParse, e.Err}
}

// ValidationError reports a field whose value breaks a configuration rule.
type ValidationError struct {
	// Field is the path of the offending field, e.g. "darkModeStrategy" or
	// "contentPaths[2]".
	Field string

	// Value is the rejected value.
	Value any

	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q (value %v): %v", ErrConfigValidation, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrConfigValidation, e.Err}
}

// PluginResolutionError reports a plugin reference no resolver could locate.
type PluginResolutionError struct {
	// Field is the path of the reference, e.g. "plugins[1]".
	Field string

	Ref models.PluginRef

	Err error
}

func (e *PluginResolutionError) Error() string {
	return fmt.Sprintf("%s: field %q: plugin %q: %v", ErrPluginResolution, e.Field, e.Ref, e.Err)
}

func (e *PluginResolutionError) Unwrap() []error {
	return []error{ErrPluginResolution, e.Err}
}

// FieldOf returns the offending field named by a loader error, or an empty
// string when err carries none.
func FieldOf(err error) string {
	var parseErr *ParseError
	var validationErr *ValidationError
	var pluginErr *PluginResolutionError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Field
	case errors.As(err, &pluginErr):
		return pluginErr.Field
	case errors.As(err, &parseErr):
		return parseErr.Field
	default:
		return ""
	}
}
