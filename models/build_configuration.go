// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mode selects the stylesheet generation strategy of the CSS build engine.
type Mode string

const (
	// ModeJIT generates utilities on demand from the scanned content.
	ModeJIT Mode = "jit"

	// ModeAOT generates the full utility set up front and purges it afterwards.
	ModeAOT Mode = "aot"
)

// Modes lists every recognized [Mode] in declaration order.
var Modes = []Mode{ModeJIT, ModeAOT}

// IsValid reports whether m is a recognized generation mode.
func (m Mode) IsValid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// DarkModeStrategy selects how dark-variant styles are activated.
type DarkModeStrategy string

const (
	// DarkModeMedia activates dark styles through the prefers-color-scheme
	// media query.
	DarkModeMedia DarkModeStrategy = "media"

	// DarkModeClass activates dark styles when an ancestor carries the
	// "dark" class.
	DarkModeClass DarkModeStrategy = "class"
)

// DarkModeStrategies lists every recognized [DarkModeStrategy].
var DarkModeStrategies = []DarkModeStrategy{DarkModeMedia, DarkModeClass}

// IsValid reports whether s is a recognized dark-mode strategy.
func (s DarkModeStrategy) IsValid() bool {
	for _, known := range DarkModeStrategies {
		if s == known {
			return true
		}
	}
	return false
}

// PluginRef references an extension module either by its short name
// ("typography") or by its package name ("@tailwindcss/typography").
type PluginRef string

// BuildConfiguration is the declarative input handed to the CSS build engine.
//
// A value is produced once per invocation by the loader, is treated as
// read-only afterwards and is never persisted between runs.
type BuildConfiguration struct {
	// Mode is the generation strategy selector.
	Mode Mode `json:"mode" yaml:"mode" toml:"mode"`

	// ContentPaths are glob patterns scanned for class-name usage. Order is
	// preserved. An empty list is valid and simply yields no classes.
	ContentPaths []string `json:"contentPaths" yaml:"contentPaths" toml:"contentPaths"`

	// ThemeExtensions are user overrides layered onto the base theme. The
	// loader never interprets them.
	ThemeExtensions map[string]any `json:"themeExtensions" yaml:"themeExtensions" toml:"themeExtensions"`

	// Plugins are the extension modules to load. Order matters for override
	// precedence and is preserved.
	Plugins []PluginRef `json:"plugins" yaml:"plugins" toml:"plugins"`

	// PluginOptions maps a plugin name to its plugin-specific settings.
	PluginOptions PluginOptions `json:"pluginOptions" yaml:"pluginOptions" toml:"pluginOptions"`

	// DarkModeStrategy is the dark-variant activation mechanism.
	DarkModeStrategy DarkModeStrategy `json:"darkModeStrategy" yaml:"darkModeStrategy" toml:"darkModeStrategy"`
}

// PluginOptions holds the raw settings object of every configured plugin,
// keyed by the plugin name used in [BuildConfiguration.Plugins].
type PluginOptions map[string]map[string]any

// DaisyUI decodes the "daisyui" section into typed options. A missing
// section yields zero options and ok == false.
func (o PluginOptions) DaisyUI() (opts DaisyUIOptions, ok bool, err error) {
	ok, err = o.Decode("daisyui", &opts)
	return opts, ok, err
}

// Typography decodes the "typography" section into typed options.
func (o PluginOptions) Typography() (opts TypographyOptions, ok bool, err error) {
	ok, err = o.Decode("typography", &opts)
	return opts, ok, err
}

// Decode re-encodes the raw settings of plugin name into target. It reports
// whether the section was present.
func (o PluginOptions) Decode(name string, target any) (bool, error) {
	raw, ok := o[name]
	if !ok {
		return false, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return true, fmt.Errorf("error encoding %s options: %w", name, err)
	}
	if err = json.Unmarshal(data, target); err != nil {
		return true, fmt.Errorf("error decoding %s options: %w", name, err)
	}

	return true, nil
}

// DaisyUIOptions are the settings understood by the daisyui component plugin.
type DaisyUIOptions struct {
	// Themes selects the enabled themes. The first listed one is the default.
	Themes DaisyUIThemes `json:"themes,omitzero"`

	// DarkTheme names the theme used when the dark variant is active.
	DarkTheme string `json:"darkTheme,omitempty"`

	// Styled toggles component colour and design decisions.
	Styled *bool `json:"styled,omitempty"`

	// Base toggles the base styles.
	Base *bool `json:"base,omitempty"`

	// Utils toggles responsive and modifier utility classes.
	Utils *bool `json:"utils,omitempty"`

	// Logs toggles console output during the build.
	Logs *bool `json:"logs,omitempty"`

	// RTL toggles right-to-left layout support.
	RTL *bool `json:"rtl,omitempty"`

	// Prefix is prepended to every component class name.
	Prefix string `json:"prefix,omitempty"`
}

// TypographyOptions are the settings understood by the typography plugin.
type TypographyOptions struct {
	// ClassName replaces the default "prose" class name.
	ClassName string `json:"className,omitempty"`
}

// DaisyUIAllThemes is the "themes" value enabling every built-in theme.
const DaisyUIAllThemes = "all"

// daisyUIDefaultThemes are enabled by "themes": true.
var daisyUIDefaultThemes = []string{"light", "dark"}

var (
	ErrInvalidThemes     = errors.New(`must be true, false, "all" or a list of themes`)
	ErrInvalidThemeEntry = errors.New("must be a theme name or an object with exactly one custom theme")
)

// ThemeEntryError reports an unusable entry of a themes list.
type ThemeEntryError struct {
	Index int
	Err   error
}

func (e *ThemeEntryError) Error() string {
	return fmt.Sprintf("themes[%d]: %v", e.Index, e.Err)
}

func (e *ThemeEntryError) Unwrap() error {
	return e.Err
}

// DaisyUIThemes is the daisyui "themes" option. daisyui accepts false (no
// themes), true (light and dark), "all", or a list whose entries are theme
// names or single-key objects defining a custom theme.
type DaisyUIThemes struct {
	// Names lists the enabled themes in declaration order. A custom theme
	// contributes its key. Empty for the false and "all" forms.
	Names []string

	// Custom holds the custom theme definitions keyed by theme name.
	Custom map[string]map[string]any

	// All is set by the "all" form.
	All bool

	// Disabled is set by the false form.
	Disabled bool
}

// IsZero reports whether no themes value was given.
func (t DaisyUIThemes) IsZero() bool {
	return t.Names == nil && t.Custom == nil && !t.All && !t.Disabled
}

// ParseDaisyUIThemes interprets a decoded "themes" value. Invalid list
// entries are reported as *ThemeEntryError.
func ParseDaisyUIThemes(raw any) (DaisyUIThemes, error) {
	switch value := raw.(type) {
	case bool:
		if !value {
			return DaisyUIThemes{Disabled: true}, nil
		}
		return DaisyUIThemes{Names: append([]string(nil), daisyUIDefaultThemes...)}, nil
	case string:
		if value != DaisyUIAllThemes {
			return DaisyUIThemes{}, ErrInvalidThemes
		}
		return DaisyUIThemes{All: true}, nil
	case []any:
		themes := DaisyUIThemes{Names: make([]string, 0, len(value))}
		for i, entry := range value {
			switch theme := entry.(type) {
			case string:
				themes.Names = append(themes.Names, theme)
			case map[string]any:
				name, definition, ok := singleTheme(theme)
				if !ok {
					return DaisyUIThemes{}, &ThemeEntryError{Index: i, Err: ErrInvalidThemeEntry}
				}
				if themes.Custom == nil {
					themes.Custom = make(map[string]map[string]any)
				}
				themes.Names = append(themes.Names, name)
				themes.Custom[name] = definition
			default:
				return DaisyUIThemes{}, &ThemeEntryError{Index: i, Err: ErrInvalidThemeEntry}
			}
		}
		return themes, nil
	default:
		return DaisyUIThemes{}, ErrInvalidThemes
	}
}

func singleTheme(entry map[string]any) (string, map[string]any, bool) {
	if len(entry) != 1 {
		return "", nil, false
	}
	for name, raw := range entry {
		definition, ok := raw.(map[string]any)
		return name, definition, ok
	}
	return "", nil, false
}

func (t *DaisyUIThemes) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseDaisyUIThemes(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t DaisyUIThemes) MarshalJSON() ([]byte, error) {
	switch {
	case t.Disabled:
		return json.Marshal(false)
	case t.All:
		return json.Marshal(DaisyUIAllThemes)
	}

	entries := make([]any, 0, len(t.Names))
	for _, name := range t.Names {
		if definition, ok := t.Custom[name]; ok {
			entries = append(entries, map[string]any{name: definition})
			continue
		}
		entries = append(entries, name)
	}
	return json.Marshal(entries)
}

// Clone returns a deep copy of c. Nested maps and slices of the theme
// extensions and plugin options are copied too.
func (c BuildConfiguration) Clone() BuildConfiguration {
	out := c
	out.ContentPaths = cloneSlice(c.ContentPaths)
	out.Plugins = cloneSlice(c.Plugins)
	out.ThemeExtensions = cloneMap(c.ThemeExtensions)
	if c.PluginOptions != nil {
		out.PluginOptions = make(PluginOptions, len(c.PluginOptions))
		for name, opts := range c.PluginOptions {
			out.PluginOptions[name] = cloneMap(opts)
		}
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return cloneSlice(v)
	default:
		return v
	}
}
