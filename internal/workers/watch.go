// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/models"
)

// DefaultWatchInterval is used when a non-positive interval is given.
const DefaultWatchInterval = 2 * time.Second

var ErrNilCallback = errors.New("watch callback is not set")

// WatchResult is the outcome of one reload.
type WatchResult struct {
	Path     string
	Report   models.ValidationReport
	Err      error
	LoadedAt time.Time
}

// fileState identifies a version of the watched file.
type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s fileState) equal(other fileState) bool {
	return s.exists == other.exists && s.size == other.size && s.modTime.Equal(other.modTime)
}

// WatchWorker polls a build configuration file and reloads it whenever its
// modification time or size changes. The first poll always loads the file.
type WatchWorker struct {
	path     string
	interval time.Duration
	loader   ConfigLoader
	onResult func(WatchResult)

	logger *logger.Logger
}

func NewWatchWorker(path string, interval time.Duration, loader ConfigLoader, onResult func(WatchResult), logger *logger.Logger) (*WatchWorker, error) {
	if onResult == nil {
		return nil, ErrNilCallback
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	return &WatchWorker{
		path:     path,
		interval: interval,
		loader:   loader,
		onResult: onResult,
		logger:   logger,
	}, nil
}

// Run implements [Worker]. It returns nil when ctx is cancelled.
func (w *WatchWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var last *fileState
	for {
		state, err := w.stat()
		if err != nil {
			return err
		}

		if last == nil || !state.equal(*last) {
			w.reload(ctx, state)
			last = &state
		}

		select {
		case <-ctx.Done():
			w.logger.Debug().Str("path", w.path).Msg("watch worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WatchWorker) stat() (fileState, error) {
	info, err := os.Stat(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileState{}, nil
	}
	if err != nil {
		return fileState{}, fmt.Errorf("error watching %s: %w", w.path, err)
	}

	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}, nil
}

func (w *WatchWorker) reload(ctx context.Context, state fileState) {
	result := WatchResult{Path: w.path, LoadedAt: time.Now()}

	if !state.exists {
		result.Err = fmt.Errorf("error reading config file: %w", fs.ErrNotExist)
	} else {
		result.Report, result.Err = w.loader.Load(ctx, w.path)
	}

	if ctx.Err() != nil {
		return
	}

	w.logger.Info().
		Str("path", w.path).
		Bool("ok", result.Err == nil).
		Str("fingerprint", result.Report.Fingerprint).
		Msg("build configuration reloaded")

	w.onResult(result)
}
