package models

// PluginSource tells where a plugin reference was resolved.
type PluginSource string

const (
	// PluginSourceBuiltin marks plugins known to the built-in catalogue.
	PluginSourceBuiltin PluginSource = "builtin"

	// PluginSourceModules marks plugins found in the package modules directory.
	PluginSourceModules PluginSource = "modules"
)

// Plugin describes a resolved extension module.
type Plugin struct {
	// Name is the canonical short name (e.g. "typography").
	Name string `json:"name"`

	// Package is the package the build engine loads (e.g. "@tailwindcss/typography").
	Package string `json:"package"`

	// Version is the installed package version, when known.
	Version string `json:"version,omitempty"`

	// Source tells which resolver located the plugin.
	Source PluginSource `json:"source"`
}
