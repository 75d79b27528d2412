package chains

import (
	"fmt"
	"sync"
)

// Registry manages the chain definitions a client is configured for and
// tracks the active network. It implements Provider.
type Registry struct {
	mu     sync.RWMutex
	chains []Chain
	index  map[int64]int // chain ID -> position in chains
	active int64
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// NewRegistry creates a registry pre-populated with the given chains. The
// first chain becomes the active network.
func NewRegistry(chains ...Chain) *Registry {
	r := &Registry{index: make(map[int64]int)}
	for _, c := range chains {
		r.Register(c)
	}
	if len(chains) > 0 {
		r.active = chains[0].ID
	}
	return r
}

// InitGlobalRegistry initializes the global chain registry
func InitGlobalRegistry(chains ...Chain) *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry(chains...)
	})
	return globalRegistry
}

// GetGlobalRegistry returns the global chain registry (returns nil if not initialized)
func GetGlobalRegistry() *Registry {
	return globalRegistry
}

// ResetGlobalRegistry resets the global registry (useful for testing)
func ResetGlobalRegistry() {
	globalRegistry = nil
	globalRegistryOnce = sync.Once{}
}

// Register adds a chain definition, keyed by its chain ID. Registering an
// already-known ID replaces the definition in place (idempotent) and keeps
// the original registration order.
func (r *Registry) Register(chain Chain) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos, exists := r.index[chain.ID]; exists {
		r.chains[pos] = chain
		return
	}
	r.index[chain.ID] = len(r.chains)
	r.chains = append(r.chains, chain)
}

// Get retrieves a chain definition by chain ID
func (r *Registry) Get(chainID int64) (Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.index[chainID]
	if !exists {
		return Chain{}, fmt.Errorf("no chain registered for id %d", chainID)
	}
	return r.chains[pos], nil
}

// IsSupported checks if a chain ID is registered
func (r *Registry) IsSupported(chainID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[chainID]
	return exists
}

// Unregister removes a chain definition (useful for testing)
func (r *Registry) Unregister(chainID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, exists := r.index[chainID]
	if !exists {
		return
	}
	r.chains = append(r.chains[:pos], r.chains[pos+1:]...)
	delete(r.index, chainID)
	for id, p := range r.index {
		if p > pos {
			r.index[id] = p - 1
		}
	}
}

// SetActive marks a registered chain as the active network
func (r *Registry) SetActive(chainID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[chainID]; !exists {
		return fmt.Errorf("no chain registered for id %d", chainID)
	}
	r.active = chainID
	return nil
}

// Chains returns the registered chains in registration order. Implements
// Provider.
func (r *Registry) Chains() []Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Chain, len(r.chains))
	copy(out, r.chains)
	return out
}

// ChainID returns the active network id. Implements Provider.
func (r *Registry) ChainID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

var _ Provider = (*Registry)(nil)
