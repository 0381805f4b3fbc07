package providers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/petal-labs/imagegen/core"
)

// Factory creates a provider instance authenticated with apiKey.
type Factory func(ctx context.Context, apiKey core.Secret, opts Options) (core.Provider, error)

// registry holds registered provider factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a provider factory to the registry.
// It is typically called from a provider's init() function.
// If a provider with the same name is already registered, it will be overwritten.
//
// Example usage in a provider package:
//
//	func init() {
//	    providers.Register("gemini", func(ctx context.Context, key core.Secret, o providers.Options) (core.Provider, error) {
//	        return New(ctx, key, WithBaseURL(o.BaseURL))
//	    })
//	}
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a provider factory by name.
// Returns nil if the provider is not registered.
func Get(name string) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Create creates a new provider instance by name.
// Returns an error if the provider is not registered.
func Create(ctx context.Context, name string, apiKey core.Secret, opts Options) (core.Provider, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", name, List())
	}
	return factory(ctx, apiKey, opts)
}

// List returns the names of all registered providers in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered returns true if a provider with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
