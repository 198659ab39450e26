// Package config provides loading, merging, and validation of the twconf
// tool settings (not of the build configuration itself, which lives in
// package buildconfig).
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Defaults
//  2. Dotenv file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON settings file
//
// The main entry point is [GetStructuredConfig].
package config
