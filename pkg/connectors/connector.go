// Package connectors defines the connector identity surface and the error
// kinds raised during connection and chain-switching flows.
package connectors

// Connector identifies a wallet connection implementation. Only the identity
// surface is needed by the error taxonomy; connection management lives with
// the client.
type Connector interface {
	// ID returns the stable connector identifier (e.g. "injected")
	ID() string

	// Name returns the human-readable connector name (e.g. "MetaMask")
	Name() string
}
