// Package contracts defines the error kinds raised by contract read/write
// helpers. The multi-paragraph diagnostics are directly displayable; the ABI
// is always redacted so messages stay readable.
package contracts

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sigweihq/evmconn/pkg/chains"
	"github.com/sigweihq/evmconn/pkg/rpcerrors"
	"github.com/sigweihq/evmconn/pkg/utils"
)

var (
	_ rpcerrors.Named = (*ChainDoesNotSupportMulticallError)(nil)
	_ rpcerrors.Named = (*MethodDoesNotExistError)(nil)
	_ rpcerrors.Named = (*MethodNoResultError)(nil)
	_ rpcerrors.Named = (*MethodRevertedError)(nil)
	_ rpcerrors.Named = (*ResultDecodeError)(nil)
)

// Call identifies the contract call an error relates to. The ABI stays at
// the call site and never appears in diagnostics.
type Call struct {
	Address      common.Address
	FunctionName string
	ChainID      int64
	Args         []any
}

// callConfig is the redacted view of a Call used in diagnostics. The abi
// field is always the literal "..." placeholder; args are serialized as-is.
type callConfig struct {
	Address      string `json:"address"`
	ABI          string `json:"abi"`
	FunctionName string `json:"functionName"`
	ChainID      int64  `json:"chainId"`
	Args         []any  `json:"args"`
}

func (c Call) config() string {
	cfg := callConfig{
		Address:      c.Address.Hex(),
		ABI:          "...",
		FunctionName: c.FunctionName,
		ChainID:      c.ChainID,
		Args:         c.Args,
	}
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		// Unserializable args must not mask the underlying contract error.
		cfg.Args = nil
		out, _ = json.MarshalIndent(cfg, "", "  ")
	}
	return string(out)
}

// ChainDoesNotSupportMulticallError is returned when a batched read targets
// a chain without a multicall contract, or a block that predates its
// deployment.
type ChainDoesNotSupportMulticallError struct {
	Chain       chains.Chain
	BlockNumber *big.Int
}

func NewChainDoesNotSupportMulticallError(chain chains.Chain, blockNumber *big.Int) *ChainDoesNotSupportMulticallError {
	return &ChainDoesNotSupportMulticallError{Chain: chain, BlockNumber: blockNumber}
}

func (e *ChainDoesNotSupportMulticallError) Error() string {
	if e.BlockNumber != nil {
		return fmt.Sprintf("Chain %q does not support multicall on block %s.", e.Chain.Name, e.BlockNumber)
	}
	return fmt.Sprintf("Chain %q does not support multicall.", e.Chain.Name)
}

func (e *ChainDoesNotSupportMulticallError) Name() string {
	return "ChainDoesNotSupportMulticallError"
}

// MethodDoesNotExistError is returned when a call names a function the
// contract's ABI does not declare.
type MethodDoesNotExistError struct {
	Call

	// Explorer is the resolved block-explorer metadata, nil when the
	// provider had none for the call's chain
	Explorer *chains.BlockExplorer
}

// NewMethodDoesNotExistError resolves explorer metadata through provider at
// construction time. A zero call.ChainID means the provider's active
// network. A nil provider, unknown chain, or chain without an explorer all
// drop the explorer paragraph from the message.
func NewMethodDoesNotExistError(provider chains.Provider, call Call) *MethodDoesNotExistError {
	e := &MethodDoesNotExistError{Call: call}
	if provider == nil {
		return e
	}
	chainID := call.ChainID
	if chainID == 0 {
		chainID = provider.ChainID()
	}
	for _, c := range provider.Chains() {
		if c.ID != chainID {
			continue
		}
		if explorer, ok := c.DefaultExplorer(); ok {
			e.Explorer = &explorer
		}
		break
	}
	return e
}

func (e *MethodDoesNotExistError) Error() string {
	head := fmt.Sprintf("Function %q on contract %q does not exist.", e.FunctionName, e.Address.Hex())
	if e.Explorer == nil {
		return head
	}
	return utils.JoinLines(
		head,
		"",
		fmt.Sprintf("%s: %s/address/%s#readContract", e.Explorer.Name, e.Explorer.URL, e.Address.Hex()),
	)
}

func (e *MethodDoesNotExistError) Name() string { return "ContractMethodDoesNotExistError" }

// MethodNoResultError is returned when a contract read comes back empty.
type MethodNoResultError struct {
	Call
}

func NewMethodNoResultError(call Call) *MethodNoResultError {
	return &MethodNoResultError{Call: call}
}

func (e *MethodNoResultError) Error() string {
	return utils.JoinLines(
		"Contract read returned an empty response. This could be due to any of the following:",
		fmt.Sprintf("- The contract does not have the function %q,", e.FunctionName),
		"- The parameters passed to the contract function may be invalid, or",
		"- The address is not a contract.",
		"",
		"Config:",
		e.config(),
	)
}

func (e *MethodNoResultError) Name() string { return "ContractMethodNoResultError" }

// MethodRevertedError is returned when a contract call reverts.
type MethodRevertedError struct {
	Call
	Cause error
}

func NewMethodRevertedError(call Call, cause error) *MethodRevertedError {
	return &MethodRevertedError{Call: call, Cause: cause}
}

func (e *MethodRevertedError) Error() string {
	return utils.JoinLines(
		"Contract method reverted with an error.",
		"",
		"Config:",
		e.config(),
		"",
		fmt.Sprintf("Details: %v", e.Cause),
	)
}

func (e *MethodRevertedError) Name() string { return "ContractMethodRevertedError" }

func (e *MethodRevertedError) Unwrap() error { return e.Cause }

// ResultDecodeError is returned when a contract call succeeds but its return
// data cannot be decoded against the ABI.
type ResultDecodeError struct {
	Call
	Cause error
}

func NewResultDecodeError(call Call, cause error) *ResultDecodeError {
	return &ResultDecodeError{Call: call, Cause: cause}
}

func (e *ResultDecodeError) Error() string {
	return utils.JoinLines(
		"Failed to decode contract function result.",
		"",
		"Config:",
		e.config(),
		"",
		fmt.Sprintf("Details: %v", e.Cause),
	)
}

func (e *ResultDecodeError) Name() string { return "ContractResultDecodeError" }

func (e *ResultDecodeError) Unwrap() error { return e.Cause }
