package plugins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

const packageManifest = "package.json"

// DefaultModuleCacheSize is used when a non-positive cache size is given.
const DefaultModuleCacheSize = 256

type packageJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ModuleResolver checks that the package behind a plugin reference is
// installed in a package modules directory ("node_modules").
//
// Successful lookups are kept in an LRU cache keyed by package name.
type ModuleResolver struct {
	modules fs.FS
	aliases *Registry
	cache   *lru.Cache[string, models.Plugin]

	logger *logger.Logger
}

// NewModuleResolver creates a resolver over the modules directory dir.
// aliases, when not nil, maps short names such as "typography" to their
// package names.
func NewModuleResolver(dir string, aliases *Registry, cacheSize int, logger *logger.Logger) (*ModuleResolver, error) {
	return NewModuleResolverFS(os.DirFS(dir), aliases, cacheSize, logger)
}

// NewModuleResolverFS creates a resolver over an arbitrary file system whose
// root is the modules directory.
func NewModuleResolverFS(modules fs.FS, aliases *Registry, cacheSize int, logger *logger.Logger) (*ModuleResolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultModuleCacheSize
	}

	cache, err := lru.New[string, models.Plugin](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating module cache: %w", err)
	}

	return &ModuleResolver{
		modules: modules,
		aliases: aliases,
		cache:   cache,
		logger:  logger,
	}, nil
}

// Resolve implements [Resolver].
func (m *ModuleResolver) Resolve(ctx context.Context, ref models.PluginRef) (models.Plugin, error) {
	if err := ctx.Err(); err != nil {
		return models.Plugin{}, err
	}

	name, pkg := m.packageFor(ref)
	if cached, ok := m.cache.Get(pkg); ok {
		return cached, nil
	}

	manifestPath := path.Join(pkg, packageManifest)
	if !fs.ValidPath(manifestPath) {
		return models.Plugin{}, fmt.Errorf("%w: %q is not a package name", ErrPluginNotFound, ref)
	}

	data, err := fs.ReadFile(m.modules, manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Plugin{}, fmt.Errorf("%w: package %q is not installed", ErrPluginNotFound, pkg)
		}
		return models.Plugin{}, fmt.Errorf("error reading %s: %w", manifestPath, err)
	}

	var manifest packageJSON
	if err = json.Unmarshal(data, &manifest); err != nil {
		return models.Plugin{}, fmt.Errorf("%w: %s: %v", ErrInvalidPackageJSON, manifestPath, err)
	}
	if manifest.Name != "" && manifest.Name != pkg {
		return models.Plugin{}, fmt.Errorf("%w: %s declares name %q", ErrInvalidPackageJSON, manifestPath, manifest.Name)
	}

	plugin := models.Plugin{
		Name:    name,
		Package: pkg,
		Version: manifest.Version,
		Source:  models.PluginSourceModules,
	}
	m.cache.Add(pkg, plugin)

	m.logger.Debug().
		Str("plugin", plugin.Name).
		Str("package", plugin.Package).
		Str("version", plugin.Version).
		Msg("plugin package found")

	return plugin, nil
}

// packageFor returns the canonical name and the package of ref.
func (m *ModuleResolver) packageFor(ref models.PluginRef) (string, string) {
	if m.aliases != nil {
		if def, ok := m.aliases.Lookup(ref); ok {
			return def.Name, def.Package
		}
	}

	pkg := normalizeRef(string(ref))
	return path.Base(pkg), pkg
}
