// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by twconf.
const EnvPrefix = "TWCONF_"

// Defaults applied before any other source.
const (
	DefaultBuildConfigPath = "twconf.json"
	DefaultProjectRoot     = "."
	DefaultModulesDir      = "node_modules"
	DefaultLogLevel        = "info"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultCacheSize       = 128
	DefaultWatchInterval   = 2 * time.Second
	DefaultEnvFile         = ".env"
)

// StructuredConfig is the top-level settings container of the twconf tool.
// It is populated by merging defaults, a dotenv file, environment variables,
// command-line flags and an optional JSON settings file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds the loader settings: where the build configuration lives and
	// how plugins are resolved.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP validation service settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the remote validation client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the sizes of the in-memory LRU caches.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON settings file. When
	// non-empty, the file is parsed and merged on top of every other source.
	// Env: TWCONF_CONFIG. Flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the dotenv file read below the process environment.
	// A missing default file is ignored; a missing explicit file is an error.
	// Env: TWCONF_ENV_FILE. Flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds the settings that control loading of the build configuration.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: TWCONF_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// BuildConfigPath is the build configuration file used when a command
	// is given no file argument.
	// Env: TWCONF_APP_BUILD_CONFIG
	BuildConfigPath string `env:"BUILD_CONFIG"`

	// ProjectRoot is the directory content globs are expanded against.
	// Env: TWCONF_APP_PROJECT_ROOT
	ProjectRoot string `env:"PROJECT_ROOT"`

	// ModulesDir is the package modules directory searched for plugin
	// packages. Relative paths are taken from ProjectRoot.
	// Env: TWCONF_APP_MODULES_DIR
	ModulesDir string `env:"MODULES_DIR"`

	// StrictModules requires every plugin to be installed in ModulesDir;
	// the built-in catalogue is not consulted.
	// Env: TWCONF_APP_STRICT_MODULES
	StrictModules bool `env:"STRICT_MODULES"`

	// Version is the version string reported by the HTTP service.
	// Env: TWCONF_APP_VERSION
	Version string `env:"VERSION"`

	// OutputFormat is the encoding used by the print command
	// ("json", "yaml" or "toml"). Empty keeps the input format.
	// Env: TWCONF_APP_OUTPUT_FORMAT
	OutputFormat string `env:"OUTPUT_FORMAT"`
}

// Server holds network and limit settings of the HTTP validation service.
type Server struct {
	// HTTPAddress is the TCP address the server listens on ("host:port").
	// Env: TWCONF_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: TWCONF_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes limits the size of a submitted configuration document.
	// Env: TWCONF_SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Adapter holds the settings of the client talking to a remote server.
type Adapter struct {
	// HTTPAddress is the base address of the remote twconf server.
	// Env: TWCONF_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: TWCONF_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds LRU cache sizes.
type Cache struct {
	// Size is the number of entries kept by the module lookup cache and the
	// validation result cache.
	// Env: TWCONF_CACHE_SIZE
	Size int `env:"SIZE"`
}

// Workers holds background worker settings.
type Workers struct {
	// WatchInterval is how often the watch worker polls the build
	// configuration file.
	// Env: TWCONF_WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// DefaultConfig returns the settings used when no source sets a value.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:        DefaultLogLevel,
			BuildConfigPath: DefaultBuildConfigPath,
			ProjectRoot:     DefaultProjectRoot,
			ModulesDir:      DefaultModulesDir,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Cache:   Cache{Size: DefaultCacheSize},
		Workers: Workers{WatchInterval: DefaultWatchInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the tool settings from
// all sources in the following priority order (later sources win for
// non-zero fields):
//  1. Defaults
//  2. Dotenv file
//  3. Environment variables
//  4. Command-line flags parsed from args
//  5. JSON settings file (path resolved from sources 3 and 4)
//
// It returns the merged settings together with the positional arguments
// left after flag parsing.
func GetStructuredConfig(name string, args []string) (*StructuredConfig, []string, error) {
	builder := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(name, args).
		withDotEnv().
		withJSON()

	cfg, err := builder.build()
	return cfg, builder.args, err
}
