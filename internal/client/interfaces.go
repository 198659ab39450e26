// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes command with its positional arguments and blocks until
	// the command finishes.
	Run(ctx context.Context, command string, args []string) error
}
