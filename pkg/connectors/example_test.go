package connectors_test

import (
	"errors"
	"fmt"

	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/sigweihq/evmconn/pkg/connectors"
)

// Example demonstrates branching on error kinds instead of message text
func Example() {
	var err error = connectors.NewUserRejectedRequestError(errors.New("denied in wallet"))

	var coded gethrpc.Error
	if errors.As(err, &coded) && coded.ErrorCode() == 4001 {
		fmt.Println("user rejected, nothing to retry")
	}
	// Output: user rejected, nothing to retry
}
