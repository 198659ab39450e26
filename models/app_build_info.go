// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo is the release stamp of a twconf binary: the version the
// loader reports to clients, when it was built and from which commit. The
// `version` command prints it and the validation service falls back to its
// version when none is configured.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo stamps a binary. Surrounding whitespace left over from
// linker flags is dropped, so a blank value reads as unknown.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }
