package rpcerrors

// Reserved JSON-RPC 2.0 error codes, plus the EIP-1474 resource codes that
// wallets commonly return.
const (
	CodeParseError          int64 = -32700
	CodeInvalidRequest      int64 = -32600
	CodeMethodNotFound      int64 = -32601
	CodeInvalidParams       int64 = -32602
	CodeInternalError       int64 = -32603
	CodeResourceUnavailable int64 = -32002
)

// ProviderErrorCode is an EIP-1193 provider error code. Using the typed
// constants below keeps call sites inside the recognized set; values built
// dynamically still go through the range check in NewProviderRPCError.
type ProviderErrorCode int64

const (
	CodeUserRejectedRequest ProviderErrorCode = 4001
	CodeUnauthorized        ProviderErrorCode = 4100
	CodeUnsupportedMethod   ProviderErrorCode = 4200
	CodeDisconnected        ProviderErrorCode = 4900
	CodeChainDisconnected   ProviderErrorCode = 4901
	CodeUnrecognizedChain   ProviderErrorCode = 4902
)

// EIP-1193 reserves this range for provider errors.
const (
	ProviderErrorCodeMin ProviderErrorCode = 1000
	ProviderErrorCodeMax ProviderErrorCode = 4999
)
