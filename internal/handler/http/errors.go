// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport itself, before a document
// reaches the loader. Callers can match against them with [errors.Is].
var (
	// ErrBodyTooLarge is returned when a submitted document exceeds the
	// configured body limit.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrDigestMismatch is returned when the X-Content-Digest header does not
	// match the BLAKE2b-256 digest of the body.
	ErrDigestMismatch = errors.New("content digest mismatch")

	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("error reading request body")
)
