// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the twconf command-line application runtime.
//
// An [App] runs one command per process: it loads the build configuration
// through the services layer, renders the outcome with lipgloss styles and
// returns the loader error so the caller can exit with a non-zero status.
// The serve and watch commands block until their context is cancelled.
package client
