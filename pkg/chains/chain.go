// Package chains defines the chain metadata consumed by the error taxonomy
// and a registry that tracks which chains a client is configured for.
package chains

// BlockExplorer is a per-chain web service for inspecting on-chain data.
// Referenced only when building diagnostic links.
type BlockExplorer struct {
	Name string
	URL  string
}

// Chain describes an EVM network.
type Chain struct {
	// ID is the numeric chain ID (EIP-155)
	ID int64

	// Name is the human-readable network name (e.g. "Ethereum")
	Name string

	// Network is the short network identifier (e.g. "homestead", "base")
	Network string

	// RPCURLs lists public RPC endpoints for the network
	RPCURLs []string

	// BlockExplorer is the canonical explorer, nil when the network has none
	BlockExplorer *BlockExplorer
}

// DefaultExplorer returns the chain's explorer metadata, reporting whether
// any is configured.
func (c Chain) DefaultExplorer() (BlockExplorer, bool) {
	if c.BlockExplorer == nil {
		return BlockExplorer{}, false
	}
	return *c.BlockExplorer, true
}

// Provider supplies the configured chain list and the currently active
// network id. Implementations may return an empty chain list; callers must
// degrade gracefully when a lookup finds nothing.
type Provider interface {
	// Chains returns the configured chains in registration order
	Chains() []Chain

	// ChainID returns the id of the currently active network
	ChainID() int64
}
