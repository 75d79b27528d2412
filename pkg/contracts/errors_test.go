package contracts

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/sigweihq/evmconn/pkg/chains"
	"github.com/sigweihq/evmconn/pkg/utils"
)

var usdc = common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")

func TestChainDoesNotSupportMulticallError(t *testing.T) {
	foo := chains.Chain{ID: 31337, Name: "Foo"}

	err := NewChainDoesNotSupportMulticallError(foo, nil)
	assert.Equal(t, `Chain "Foo" does not support multicall.`, err.Error())
	assert.Equal(t, "ChainDoesNotSupportMulticallError", err.Name())

	err = NewChainDoesNotSupportMulticallError(foo, big.NewInt(10))
	assert.Equal(t, `Chain "Foo" does not support multicall on block 10.`, err.Error())
}

func TestMethodDoesNotExistError(t *testing.T) {
	registry := chains.NewRegistry(chains.Mainnet, chains.Polygon)
	call := Call{Address: usdc, FunctionName: "foo", ChainID: chains.ChainIDMainnet}

	t.Run("explorer metadata found", func(t *testing.T) {
		err := NewMethodDoesNotExistError(registry, call)

		want := utils.JoinLines(
			fmt.Sprintf("Function \"foo\" on contract %q does not exist.", usdc.Hex()),
			"",
			fmt.Sprintf("Etherscan: https://etherscan.io/address/%s#readContract", usdc.Hex()),
		)
		if diff := cmp.Diff(want, err.Error()); diff != "" {
			t.Errorf("message mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "ContractMethodDoesNotExistError", err.Name())
	})

	t.Run("zero chain id resolves the active network", func(t *testing.T) {
		assert.NoError(t, registry.SetActive(chains.ChainIDPolygon))
		err := NewMethodDoesNotExistError(registry, Call{Address: usdc, FunctionName: "foo"})

		assert.Contains(t, err.Error(), "PolygonScan: https://polygonscan.com/address/")
	})

	t.Run("chain without explorer metadata", func(t *testing.T) {
		local := chains.NewRegistry(chains.Chain{ID: 31337, Name: "Localhost"})
		err := NewMethodDoesNotExistError(local, Call{Address: usdc, FunctionName: "foo", ChainID: 31337})

		assert.Equal(t, fmt.Sprintf("Function \"foo\" on contract %q does not exist.", usdc.Hex()), err.Error())
	})

	t.Run("unknown chain id", func(t *testing.T) {
		err := NewMethodDoesNotExistError(registry, Call{Address: usdc, FunctionName: "foo", ChainID: 999})

		assert.NotContains(t, err.Error(), "#readContract")
	})

	t.Run("nil provider", func(t *testing.T) {
		err := NewMethodDoesNotExistError(nil, call)

		assert.Equal(t, fmt.Sprintf("Function \"foo\" on contract %q does not exist.", usdc.Hex()), err.Error())
	})
}

func TestMethodNoResultError(t *testing.T) {
	err := NewMethodNoResultError(Call{
		Address:      usdc,
		FunctionName: "foo",
		ChainID:      1,
		Args:         []any{1},
	})

	want := utils.JoinLines(
		"Contract read returned an empty response. This could be due to any of the following:",
		`- The contract does not have the function "foo",`,
		"- The parameters passed to the contract function may be invalid, or",
		"- The address is not a contract.",
		"",
		"Config:",
		"{",
		fmt.Sprintf("  \"address\": %q,", usdc.Hex()),
		`  "abi": "...",`,
		`  "functionName": "foo",`,
		`  "chainId": 1,`,
		`  "args": [`,
		"    1",
		"  ]",
		"}",
	)
	if diff := cmp.Diff(want, err.Error()); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "ContractMethodNoResultError", err.Name())
}

func TestMethodRevertedError(t *testing.T) {
	cause := errors.New("execution reverted: ERC20: transfer amount exceeds balance")
	err := NewMethodRevertedError(Call{
		Address:      usdc,
		FunctionName: "transfer",
		ChainID:      1,
		Args:         []any{"0x0000000000000000000000000000000000000000", "100"},
	}, cause)

	assert.Contains(t, err.Error(), "Contract method reverted with an error.")
	assert.Contains(t, err.Error(), `"abi": "..."`)
	assert.Contains(t, err.Error(), "Details: execution reverted: ERC20: transfer amount exceeds balance")
	assert.Equal(t, "ContractMethodRevertedError", err.Name())
	assert.ErrorIs(t, err, cause)
}

func TestResultDecodeError(t *testing.T) {
	cause := errors.New("abi: cannot unmarshal uint256 into string")
	err := NewResultDecodeError(Call{Address: usdc, FunctionName: "balanceOf", ChainID: 1}, cause)

	assert.Contains(t, err.Error(), "Failed to decode contract function result.")
	assert.Contains(t, err.Error(), "Details: abi: cannot unmarshal uint256 into string")
	assert.Equal(t, "ContractResultDecodeError", err.Name())
	assert.ErrorIs(t, err, cause)
}

func TestCallConfigRedactsABI(t *testing.T) {
	// The full ABI never appears in diagnostics, only the placeholder
	err := NewMethodNoResultError(Call{
		Address:      usdc,
		FunctionName: "balanceOf",
		ChainID:      1,
		Args:         []any{usdc.Hex()},
	})

	assert.Contains(t, err.Error(), `"abi": "..."`)
	assert.NotContains(t, err.Error(), "inputs")
	assert.NotContains(t, err.Error(), "outputs")
}

func TestCallConfigUnserializableArgs(t *testing.T) {
	// A channel cannot be serialized; the diagnostic drops args instead of
	// masking the contract error
	err := NewMethodNoResultError(Call{
		Address:      usdc,
		FunctionName: "foo",
		ChainID:      1,
		Args:         []any{make(chan int)},
	})

	assert.Contains(t, err.Error(), `"abi": "..."`)
	assert.Contains(t, err.Error(), `"functionName": "foo"`)
}
