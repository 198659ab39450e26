package buildconfig

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/twconf/models"
	"github.com/bmatcuk/doublestar/v4"
)

const (
	FieldMode             = "mode"
	FieldContentPaths     = "contentPaths"
	FieldPlugins          = "plugins"
	FieldPluginOptions    = "pluginOptions"
	FieldDarkModeStrategy = "darkModeStrategy"
)

// contentNegationPrefix marks a content pattern whose matches are excluded.
const contentNegationPrefix = "!"

// ApplyDefaults fills the fields the build engine treats as optional: a
// missing mode means [models.ModeJIT] and a missing dark-mode strategy means
// [models.DarkModeMedia]. declared holds the top-level keys the document
// sets (see [DeclaredFields]); a declared empty or null value is kept as is,
// so [Validate] rejects it.
func ApplyDefaults(cfg *models.BuildConfiguration, declared map[string]bool) {
	if cfg.Mode == "" && !declared[FieldMode] {
		cfg.Mode = models.ModeJIT
	}
	if cfg.DarkModeStrategy == "" && !declared[FieldDarkModeStrategy] {
		cfg.DarkModeStrategy = models.DarkModeMedia
	}
	normalize(cfg)
}

// Validate checks the static rules of cfg in field order and returns the
// first violation as *ValidationError. Plugin resolution and plugin option
// schemas are checked by [Loader].
func Validate(cfg models.BuildConfiguration) error {
	if !cfg.Mode.IsValid() {
		return &ValidationError{Field: FieldMode, Value: cfg.Mode, Err: ErrUnknownMode}
	}

	for i, pattern := range cfg.ContentPaths {
		if !IsValidContentPath(pattern) {
			return &ValidationError{Field: indexedField(FieldContentPaths, i), Value: pattern, Err: ErrInvalidContentPath}
		}
	}

	seen := make(map[models.PluginRef]struct{}, len(cfg.Plugins))
	for i, ref := range cfg.Plugins {
		if strings.TrimSpace(string(ref)) == "" {
			return &ValidationError{Field: indexedField(FieldPlugins, i), Value: ref, Err: ErrEmptyPluginRef}
		}
		if _, ok := seen[ref]; ok {
			return &ValidationError{Field: indexedField(FieldPlugins, i), Value: ref, Err: ErrDuplicatePlugin}
		}
		seen[ref] = struct{}{}
	}

	if !cfg.DarkModeStrategy.IsValid() {
		return &ValidationError{Field: FieldDarkModeStrategy, Value: cfg.DarkModeStrategy, Err: ErrUnknownDarkModeStrategy}
	}

	return nil
}

// IsValidContentPath reports whether pattern is a usable content glob. A
// leading "!" negates the pattern.
func IsValidContentPath(pattern string) bool {
	pattern = strings.TrimPrefix(pattern, contentNegationPrefix)
	if strings.TrimSpace(pattern) == "" {
		return false
	}
	return doublestar.ValidatePattern(pattern)
}

func indexedField(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

func optionsField(name string, option ...string) string {
	return strings.Join(append([]string{FieldPluginOptions, name}, option...), ".")
}
