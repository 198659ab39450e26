// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the twconf
// HTTP handlers and the command-line client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies, rendered reports or log entries. Keeping them in one place
// keeps the wording of the service and the CLI identical.
package app

const (
	// MsgConfigIsValid titles a report of a configuration that loaded.
	MsgConfigIsValid = "build configuration is valid"

	// MsgConfigRejected titles a report of a configuration that failed to
	// load.
	MsgConfigRejected = "build configuration rejected"

	// MsgInvalidRequest is returned when the request itself is unusable: the
	// body cannot be read, is too large or does not match its digest.
	MsgInvalidRequest = "invalid request"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoContentFiles is shown when the content globs match no file.
	MsgNoContentFiles = "no content files matched"

	// MsgNoPlugins is shown when a plugin list is empty.
	MsgNoPlugins = "no plugins"
)
