// Package buildconfig loads, validates and serializes the declarative build
// configuration consumed by the CSS build engine.
//
// A configuration document is decoded from JSON, YAML or TOML into a
// [models.BuildConfiguration], defaults are applied, static rules are checked
// by [Validate], and every plugin reference is resolved through a
// [plugins.Resolver]. Loading is synchronous, deterministic and free of side
// effects beyond reading one file.
//
// Failures are reported as [*ParseError], [*ValidationError] or
// [*PluginResolutionError]. Each names the offending field and matches its
// kind sentinel ([ErrConfigParse], [ErrConfigValidation],
// [ErrPluginResolution]) with [errors.Is].
package buildconfig
