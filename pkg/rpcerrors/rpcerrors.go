// Package rpcerrors models the JSON-RPC 2.0 and EIP-1193 error wire
// contracts. Every error value is immutable once constructed and is only
// ever propagated, never stored or retried.
package rpcerrors

import (
	"errors"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Validation errors returned when a constructor precondition fails. A bad
// code or empty message aborts construction; it is never coerced.
var (
	ErrEmptyMessage   = errors.New("rpcerrors: message must not be empty")
	ErrCodeOutOfRange = errors.New("rpcerrors: provider error code must be in [1000, 4999]")
)

// Named is implemented by every error kind in this module. Consumers branch
// on Name for domain errors or on the numeric code for wire-protocol errors,
// never on message text.
type Named interface {
	error
	Name() string
}

// RPCError is a JSON-RPC 2.0 error object. Internal carries the lower-level
// cause and is excluded from the wire representation.
type RPCError struct {
	Code     int64  `json:"code"`
	Message  string `json:"message"`
	Data     any    `json:"data,omitempty"`
	Internal error  `json:"-"`
}

// Verify RPCError satisfies the go-ethereum client error interfaces
var (
	_ gethrpc.Error     = (*RPCError)(nil)
	_ gethrpc.DataError = (*RPCError)(nil)
	_ Named             = (*RPCError)(nil)
)

// NewRPCError builds a generic JSON-RPC error. The message must be
// non-empty; data and cause are optional.
func NewRPCError(code int64, message string, data any, cause error) (*RPCError, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &RPCError{
		Code:     code,
		Message:  message,
		Data:     data,
		Internal: cause,
	}, nil
}

func (e *RPCError) Error() string { return e.Message }

func (e *RPCError) Name() string { return "RpcError" }

// ErrorCode implements go-ethereum's rpc.Error.
func (e *RPCError) ErrorCode() int { return int(e.Code) }

// ErrorData implements go-ethereum's rpc.DataError.
func (e *RPCError) ErrorData() any { return e.Data }

func (e *RPCError) Unwrap() error { return e.Internal }

// ProviderRPCError is an RPCError constrained to the EIP-1193 provider
// error range.
type ProviderRPCError struct {
	RPCError
}

var _ Named = (*ProviderRPCError)(nil)

// NewProviderRPCError builds an EIP-1193 provider error. The code must be in
// [1000, 4999]; codes outside the range abort construction rather than being
// clamped. Membership in the six recognized EIP-1193 codes is carried by the
// ProviderErrorCode constants at the call site.
func NewProviderRPCError(code ProviderErrorCode, message string, data any, cause error) (*ProviderRPCError, error) {
	if code < ProviderErrorCodeMin || code > ProviderErrorCodeMax {
		return nil, ErrCodeOutOfRange
	}
	base, err := NewRPCError(int64(code), message, data, cause)
	if err != nil {
		return nil, err
	}
	return &ProviderRPCError{RPCError: *base}, nil
}

func (e *ProviderRPCError) Name() string { return "ProviderRpcError" }
