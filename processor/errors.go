package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/gasprice"
	"github.com/0xPolygon/postman/message"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/txpool"
	"github.com/ethereum/go-ethereum/rpc"
)

// RecoverableError is returned by the sent processor when a batch could not be stored.
// The poller resumes reading from Cursor instead of advancing
type RecoverableError struct {
	Cursor message.Cursor
	Err    error
}

func (e *RecoverableError) Error() string {
	return fmt.Sprintf("recoverable error, resume from %s: %v", e.Cursor, e.Err)
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}

// Mitigation tells what to do with a message whose claim failed
type Mitigation struct {
	// ShouldRetry leaves the message in its current status so the next tick tries again.
	// When false the message is moved to NON_EXECUTABLE
	ShouldRetry bool
	Reason      string
}

// JSON-RPC error codes
const (
	codeExecutionReverted  = 3
	codeParseError         = -32700
	codeInvalidRequest     = -32600
	codeMethodNotFound     = -32601
	codeInvalidParams      = -32602
	codeTxRejected         = -32003
	codeMethodNotSupported = -32004
	codeVMExecutionError   = -32015
	codeUserRejected       = 4001
	codeUnauthorized       = 4100
)

var nonRetryableCodes = map[int]string{
	codeExecutionReverted:  "execution reverted",
	codeParseError:         "parse error",
	codeInvalidRequest:     "invalid request",
	codeMethodNotFound:     "method not found",
	codeInvalidParams:      "invalid params",
	codeTxRejected:         "transaction rejected",
	codeMethodNotSupported: "method not supported",
	codeVMExecutionError:   "vm execution error",
	codeUserRejected:       "user rejected",
	codeUnauthorized:       "unauthorized",
}

// txpool errors that go away by themselves once the account state moves on. They travel as
// plain strings through JSON-RPC so they are matched by message
var retryableMessages = []string{
	core.ErrNonceTooLow.Error(),
	core.ErrNonceTooHigh.Error(),
	core.ErrInsufficientFunds.Error(),
	txpool.ErrAlreadyKnown.Error(),
	txpool.ErrUnderpriced.Error(),
	txpool.ErrReplaceUnderpriced.Error(),
}

// ClassifyError decides whether a failed claim can be retried
func ClassifyError(err error) Mitigation {
	switch {
	case err == nil:
		return Mitigation{ShouldRetry: true}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Mitigation{ShouldRetry: true, Reason: "context done"}
	case db.IsConflictErr(err):
		return Mitigation{ShouldRetry: true, Reason: "storage conflict"}
	}

	var feeErr *gasprice.FeeEstimationError
	if errors.As(err, &feeErr) {
		return Mitigation{ShouldRetry: true, Reason: "fee estimation"}
	}

	msg := err.Error()
	for _, m := range retryableMessages {
		if strings.Contains(msg, m) {
			return Mitigation{ShouldRetry: true, Reason: m}
		}
	}

	var gasErr *gasprice.GasEstimationError
	if errors.As(err, &gasErr) && strings.Contains(msg, "execution reverted") {
		return Mitigation{ShouldRetry: false, Reason: "claim simulation reverted"}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		if reason, ok := nonRetryableCodes[rpcErr.ErrorCode()]; ok {
			return Mitigation{ShouldRetry: false, Reason: reason}
		}
		return Mitigation{ShouldRetry: true, Reason: fmt.Sprintf("rpc error %d", rpcErr.ErrorCode())}
	}

	return Mitigation{ShouldRetry: true, Reason: "unknown"}
}
