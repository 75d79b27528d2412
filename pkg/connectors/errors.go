package connectors

import (
	"fmt"

	"github.com/sigweihq/evmconn/pkg/rpcerrors"
	"github.com/sigweihq/evmconn/pkg/utils"
)

// Verify every kind carries a stable name tag
var (
	_ rpcerrors.Named = (*AddChainError)(nil)
	_ rpcerrors.Named = (*ChainMismatchError)(nil)
	_ rpcerrors.Named = (*ChainNotConfiguredError)(nil)
	_ rpcerrors.Named = (*ConnectorAlreadyConnectedError)(nil)
	_ rpcerrors.Named = (*ConnectorNotFoundError)(nil)
	_ rpcerrors.Named = (*ProviderChainsNotFoundError)(nil)
	_ rpcerrors.Named = (*ResourceUnavailableError)(nil)
	_ rpcerrors.Named = (*SwitchChainError)(nil)
	_ rpcerrors.Named = (*SwitchChainNotSupportedError)(nil)
	_ rpcerrors.Named = (*UserRejectedRequestError)(nil)
)

// AddChainError is returned when the wallet fails to add a chain.
type AddChainError struct{}

func (e *AddChainError) Error() string { return "Error adding chain" }
func (e *AddChainError) Name() string  { return "AddChainError" }

// ChainMismatchError is returned when an operation requires a different
// chain than the one the connector is currently on.
type ChainMismatchError struct {
	// ActiveChain is the name of the chain the connector is on
	ActiveChain string

	// TargetChain is the name of the chain the operation requires
	TargetChain string
}

func NewChainMismatchError(activeChain, targetChain string) *ChainMismatchError {
	return &ChainMismatchError{ActiveChain: activeChain, TargetChain: targetChain}
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("Chain mismatch: Expected %q, received %q.", e.TargetChain, e.ActiveChain)
}

func (e *ChainMismatchError) Name() string { return "ChainMismatchError" }

// ChainNotConfiguredError is returned when a connector is asked to operate
// on a chain it was not configured with.
type ChainNotConfiguredError struct {
	ChainID     int64
	ConnectorID string
}

func NewChainNotConfiguredError(chainID int64, connectorID string) *ChainNotConfiguredError {
	return &ChainNotConfiguredError{ChainID: chainID, ConnectorID: connectorID}
}

func (e *ChainNotConfiguredError) Error() string {
	return fmt.Sprintf("Chain \"%d\" not configured for connector %q.", e.ChainID, e.ConnectorID)
}

func (e *ChainNotConfiguredError) Name() string { return "ChainNotConfiguredError" }

// ConnectorAlreadyConnectedError is returned when connecting a connector
// that already holds an active connection.
type ConnectorAlreadyConnectedError struct{}

func (e *ConnectorAlreadyConnectedError) Error() string { return "Connector already connected" }
func (e *ConnectorAlreadyConnectedError) Name() string  { return "ConnectorAlreadyConnectedError" }

// ConnectorNotFoundError is returned when no connector matches a request.
type ConnectorNotFoundError struct{}

func (e *ConnectorNotFoundError) Error() string { return "Connector not found" }
func (e *ConnectorNotFoundError) Name() string  { return "ConnectorNotFoundError" }

// ProviderChainsNotFoundError is returned when an operation needs chain
// metadata but the provider was configured without any chains.
type ProviderChainsNotFoundError struct{}

func (e *ProviderChainsNotFoundError) Error() string {
	return utils.JoinLines(
		"No chains were found on the provider. Some functions that require a chain may not work.",
		"",
		"It is recommended to register the chains your app supports when bootstrapping the client.",
		"",
		"Example:",
		"",
		"  registry := chains.NewRegistry(chains.Mainnet, chains.Base)",
	)
}

func (e *ProviderChainsNotFoundError) Name() string { return "ProviderChainsNotFound" }

// ResourceUnavailableError is returned when the wallet reports the requested
// resource as unavailable, e.g. a request is already pending.
type ResourceUnavailableError struct {
	rpcerrors.RPCError
}

func NewResourceUnavailableError(cause error) *ResourceUnavailableError {
	return &ResourceUnavailableError{RPCError: rpcerrors.RPCError{
		Code:     rpcerrors.CodeResourceUnavailable,
		Message:  "Resource unavailable",
		Internal: cause,
	}}
}

func (e *ResourceUnavailableError) Name() string { return "ResourceUnavailable" }

// SwitchChainError is returned when the wallet fails to switch to a
// requested chain. The 4902 code tells EIP-1193 peers the chain was not
// recognized by the provider.
type SwitchChainError struct {
	rpcerrors.ProviderRPCError
}

func NewSwitchChainError(cause error) *SwitchChainError {
	return &SwitchChainError{ProviderRPCError: rpcerrors.ProviderRPCError{RPCError: rpcerrors.RPCError{
		Code:     int64(rpcerrors.CodeUnrecognizedChain),
		Message:  "Error switching chain",
		Internal: cause,
	}}}
}

func (e *SwitchChainError) Name() string { return "SwitchChainError" }

// SwitchChainNotSupportedError is returned when a connector has no way to
// switch chains programmatically.
type SwitchChainNotSupportedError struct {
	Connector Connector
}

func NewSwitchChainNotSupportedError(connector Connector) *SwitchChainNotSupportedError {
	return &SwitchChainNotSupportedError{Connector: connector}
}

func (e *SwitchChainNotSupportedError) Error() string {
	return fmt.Sprintf("%q does not support programmatic chain switching.", e.Connector.Name())
}

func (e *SwitchChainNotSupportedError) Name() string { return "SwitchChainNotSupportedError" }

// UserRejectedRequestError is returned when the user rejects a wallet
// request.
type UserRejectedRequestError struct {
	rpcerrors.ProviderRPCError
}

func NewUserRejectedRequestError(cause error) *UserRejectedRequestError {
	return &UserRejectedRequestError{ProviderRPCError: rpcerrors.ProviderRPCError{RPCError: rpcerrors.RPCError{
		Code:     int64(rpcerrors.CodeUserRejectedRequest),
		Message:  "User rejected request",
		Internal: cause,
	}}}
}

func (e *UserRejectedRequestError) Name() string { return "UserRejectedRequestError" }
