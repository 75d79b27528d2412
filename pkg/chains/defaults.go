package chains

// Chain IDs for the networks this library ships definitions for
const (
	ChainIDMainnet     int64 = 1
	ChainIDOptimism    int64 = 10
	ChainIDPolygon     int64 = 137
	ChainIDBase        int64 = 8453
	ChainIDArbitrum    int64 = 42161
	ChainIDBaseSepolia int64 = 84532
	ChainIDSepolia     int64 = 11155111
)

var (
	Mainnet = Chain{
		ID:            ChainIDMainnet,
		Name:          "Ethereum",
		Network:       "homestead",
		RPCURLs:       []string{"https://cloudflare-eth.com"},
		BlockExplorer: &BlockExplorer{Name: "Etherscan", URL: "https://etherscan.io"},
	}
	Optimism = Chain{
		ID:            ChainIDOptimism,
		Name:          "OP Mainnet",
		Network:       "optimism",
		RPCURLs:       []string{"https://mainnet.optimism.io"},
		BlockExplorer: &BlockExplorer{Name: "Etherscan", URL: "https://optimistic.etherscan.io"},
	}
	Polygon = Chain{
		ID:            ChainIDPolygon,
		Name:          "Polygon",
		Network:       "matic",
		RPCURLs:       []string{"https://polygon-rpc.com"},
		BlockExplorer: &BlockExplorer{Name: "PolygonScan", URL: "https://polygonscan.com"},
	}
	Base = Chain{
		ID:            ChainIDBase,
		Name:          "Base",
		Network:       "base",
		RPCURLs:       []string{"https://mainnet.base.org"},
		BlockExplorer: &BlockExplorer{Name: "Basescan", URL: "https://basescan.org"},
	}
	Arbitrum = Chain{
		ID:            ChainIDArbitrum,
		Name:          "Arbitrum One",
		Network:       "arbitrum",
		RPCURLs:       []string{"https://arb1.arbitrum.io/rpc"},
		BlockExplorer: &BlockExplorer{Name: "Arbiscan", URL: "https://arbiscan.io"},
	}
	BaseSepolia = Chain{
		ID:            ChainIDBaseSepolia,
		Name:          "Base Sepolia",
		Network:       "base-sepolia",
		RPCURLs:       []string{"https://sepolia.base.org"},
		BlockExplorer: &BlockExplorer{Name: "Basescan", URL: "https://sepolia.basescan.org"},
	}
	Sepolia = Chain{
		ID:            ChainIDSepolia,
		Name:          "Sepolia",
		Network:       "sepolia",
		RPCURLs:       []string{"https://rpc.sepolia.org"},
		BlockExplorer: &BlockExplorer{Name: "Etherscan", URL: "https://sepolia.etherscan.io"},
	}
)

// DefaultChains lists the chain definitions shipped with the library, in
// ascending chain ID order.
var DefaultChains = []Chain{
	Mainnet,
	Optimism,
	Polygon,
	Base,
	Arbitrum,
	BaseSepolia,
	Sepolia,
}
