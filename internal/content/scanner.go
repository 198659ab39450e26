// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package content expands the content globs of a build configuration into
// the list of files that would be scanned for class usage.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrInvalidPattern     = errors.New("invalid content pattern")
	ErrPatternOutsideRoot = errors.New("content pattern points outside the project root")
)

// Scanner expands content globs relative to a project root.
type Scanner struct {
	logger *logger.Logger
}

func NewScanner(logger *logger.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan expands patterns against the directory root. See [Scanner.ScanFS].
func (s *Scanner) Scan(ctx context.Context, root string, patterns []string) ([]string, error) {
	return s.ScanFS(ctx, os.DirFS(root), patterns)
}

// ScanFS expands patterns against fsys and returns the sorted, de-duplicated
// list of matching regular files. A leading "./" is ignored. Patterns
// starting with "!" remove the files they match from the result, whatever
// their position in the list.
func (s *Scanner) ScanFS(ctx context.Context, fsys fs.FS, patterns []string) ([]string, error) {
	var include, exclude []string
	for _, raw := range patterns {
		negated := strings.HasPrefix(raw, "!")
		pattern, err := cleanPattern(strings.TrimPrefix(raw, "!"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, raw)
		}

		if negated {
			exclude = append(exclude, pattern)
		} else {
			include = append(include, pattern)
		}
	}

	files := make([]string, 0)
	for _, pattern := range include {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error expanding content pattern %q: %w", pattern, err)
		}

		s.logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("content pattern expanded")
		files = append(files, matches...)
	}

	files = slices.DeleteFunc(files, func(file string) bool {
		return slices.ContainsFunc(exclude, func(pattern string) bool {
			return doublestar.MatchUnvalidated(pattern, file)
		})
	})

	slices.Sort(files)
	return slices.Compact(files), nil
}

// cleanPattern turns a content glob into an fs.FS relative pattern.
func cleanPattern(pattern string) (string, error) {
	for strings.HasPrefix(pattern, "./") {
		pattern = strings.TrimPrefix(pattern, "./")
	}

	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return "", ErrInvalidPattern
	}
	if path.IsAbs(pattern) || pattern == ".." || strings.HasPrefix(pattern, "../") {
		return "", ErrPatternOutsideRoot
	}

	return pattern, nil
}
