package service

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/config"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/plugins"
)

type Services struct {
	BuildConfigService BuildConfigService
	AppInfoService     AppInfoService
}

// NewServices wires the plugin resolvers, the loader and the services.
//
// Plugins are looked up in the built-in catalogue first and then in the
// modules directory. With cfg.App.StrictModules set only the modules
// directory is consulted, so every plugin has to be installed.
func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	registry := plugins.DefaultRegistry()

	modules, err := plugins.NewModuleResolver(ModulesDir(cfg.App), registry, cfg.Cache.Size, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating module resolver: %w", err)
	}

	var resolver plugins.Resolver = plugins.NewChainResolver(registry, modules)
	if cfg.App.StrictModules {
		resolver = modules
	}

	loader := buildconfig.NewLoader(resolver, registry, logger)

	buildConfigService, err := NewBuildConfigService(loader, registry, cfg.Cache.Size, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating build config service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		BuildConfigService: NewBuildConfigLoggingService(logger).Wrap(buildConfigService),
		AppInfoService:     appInfoService,
	}, nil
}

// ModulesDir returns the modules directory, taking a relative path from the
// project root.
func ModulesDir(cfg config.App) string {
	if filepath.IsAbs(cfg.ModulesDir) {
		return cfg.ModulesDir
	}
	return filepath.Join(cfg.ProjectRoot, cfg.ModulesDir)
}
