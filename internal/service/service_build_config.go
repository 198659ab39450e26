// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultReportCacheSize is used when a non-positive cache size is given.
const DefaultReportCacheSize = 128

// PluginCatalogue lists the plugins known without looking at the disk.
type PluginCatalogue interface {
	Plugins() []models.Plugin
}

// buildConfigService validates documents with a [buildconfig.Loader] and
// keeps successful reports in an LRU cache keyed by format and content
// digest. Failures are not cached. Callers always get their own copy of a
// cached report.
type buildConfigService struct {
	loader    *buildconfig.Loader
	catalogue PluginCatalogue
	reports   *lru.Cache[string, models.ValidationReport]

	logger *logger.Logger
}

func NewBuildConfigService(loader *buildconfig.Loader, catalogue PluginCatalogue, cacheSize int, logger *logger.Logger) (BuildConfigService, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}
	if cacheSize <= 0 {
		cacheSize = DefaultReportCacheSize
	}

	reports, err := lru.New[string, models.ValidationReport](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating report cache: %w", err)
	}

	return &buildConfigService{
		loader:    loader,
		catalogue: catalogue,
		reports:   reports,
		logger:    logger,
	}, nil
}

func (s *buildConfigService) Load(ctx context.Context, path string) (models.ValidationReport, error) {
	return s.loader.Load(ctx, path)
}

func (s *buildConfigService) Validate(ctx context.Context, data []byte, format buildconfig.Format) (models.ValidationReport, error) {
	key := format.String() + ":" + buildconfig.Digest(data)
	if report, ok := s.reports.Get(key); ok {
		s.logger.Debug().Str("key", key).Msg("validation report served from cache")
		return report.Clone(), nil
	}

	report, err := s.loader.Parse(ctx, data, format)
	if err != nil {
		return models.ValidationReport{}, err
	}

	s.reports.Add(key, report.Clone())
	return report, nil
}

func (s *buildConfigService) Plugins(ctx context.Context) []models.Plugin {
	if s.catalogue == nil {
		return []models.Plugin{}
	}
	return s.catalogue.Plugins()
}
