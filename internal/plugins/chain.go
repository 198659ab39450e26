package plugins

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/twconf/models"
)

// ChainResolver asks its resolvers in order and returns the first hit.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver builds a chain. Nil resolvers are skipped.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	chain := &ChainResolver{resolvers: make([]Resolver, 0, len(resolvers))}
	for _, r := range resolvers {
		if r != nil {
			chain.resolvers = append(chain.resolvers, r)
		}
	}
	return chain
}

// Resolve implements [Resolver]. A resolver error other than
// [ErrPluginNotFound] stops the chain.
func (c *ChainResolver) Resolve(ctx context.Context, ref models.PluginRef) (models.Plugin, error) {
	for _, r := range c.resolvers {
		plugin, err := r.Resolve(ctx, ref)
		if err == nil {
			return plugin, nil
		}
		if !errors.Is(err, ErrPluginNotFound) {
			return models.Plugin{}, err
		}
	}

	return models.Plugin{}, fmt.Errorf("%w: %q", ErrPluginNotFound, ref)
}
