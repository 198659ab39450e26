package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/twconf/models"
)

// Definition describes one plugin known to a [Registry].
type Definition struct {
	// Name is the canonical short name, e.g. "typography".
	Name string

	// Package is the package the build engine loads.
	Package string

	// Aliases are additional references accepted for the plugin.
	Aliases []string

	// Options validates the plugin's option object. Nil means any object is
	// accepted.
	Options OptionsValidator
}

// Registry is an immutable catalogue of plugin definitions. It is safe for
// concurrent use.
type Registry struct {
	definitions []Definition
	index       map[string]int
}

// NewRegistry builds a registry from defs. Names, packages and aliases are
// matched case-insensitively; a later definition never shadows an earlier one.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{
		definitions: make([]Definition, 0, len(defs)),
		index:       make(map[string]int, len(defs)*3),
	}

	for _, def := range defs {
		pos := len(r.definitions)
		r.definitions = append(r.definitions, def)

		keys := append([]string{def.Name, def.Package}, def.Aliases...)
		for _, key := range keys {
			key = normalizeRef(key)
			if key == "" {
				continue
			}
			if _, taken := r.index[key]; !taken {
				r.index[key] = pos
			}
		}
	}

	return r
}

// DefaultRegistry returns the catalogue of first-party plugins and daisyui.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Definition{
			Name:    "typography",
			Package: "@tailwindcss/typography",
			Aliases: []string{"tailwindcss-typography"},
			Options: ValidateTypographyOptions,
		},
		Definition{
			Name:    "forms",
			Package: "@tailwindcss/forms",
			Options: ValidateFormsOptions,
		},
		Definition{
			Name:    "aspect-ratio",
			Package: "@tailwindcss/aspect-ratio",
		},
		Definition{
			Name:    "container-queries",
			Package: "@tailwindcss/container-queries",
		},
		Definition{
			Name:    "line-clamp",
			Package: "@tailwindcss/line-clamp",
		},
		Definition{
			Name:    "daisyui",
			Package: "daisyui",
			Options: ValidateDaisyUIOptions,
		},
	)
}

// Lookup finds the definition a reference points to.
func (r *Registry) Lookup(ref models.PluginRef) (Definition, bool) {
	pos, ok := r.index[normalizeRef(string(ref))]
	if !ok {
		return Definition{}, false
	}
	return r.definitions[pos], true
}

// Resolve implements [Resolver].
func (r *Registry) Resolve(ctx context.Context, ref models.PluginRef) (models.Plugin, error) {
	if err := ctx.Err(); err != nil {
		return models.Plugin{}, err
	}

	def, ok := r.Lookup(ref)
	if !ok {
		return models.Plugin{}, fmt.Errorf("%w: %q is not in the built-in catalogue", ErrPluginNotFound, ref)
	}

	return def.plugin(), nil
}

// OptionsValidator implements [OptionsSchemas].
func (r *Registry) OptionsValidator(name string) (OptionsValidator, bool) {
	def, ok := r.Lookup(models.PluginRef(name))
	if !ok || def.Options == nil {
		return nil, false
	}
	return def.Options, true
}

// Plugins lists the catalogue in registration order.
func (r *Registry) Plugins() []models.Plugin {
	list := make([]models.Plugin, 0, len(r.definitions))
	for _, def := range r.definitions {
		list = append(list, def.plugin())
	}
	return list
}

func (d Definition) plugin() models.Plugin {
	return models.Plugin{
		Name:    d.Name,
		Package: d.Package,
		Source:  models.PluginSourceBuiltin,
	}
}

func normalizeRef(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}
