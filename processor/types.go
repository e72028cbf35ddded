package processor

import (
	"context"
	"math/big"

	"github.com/0xPolygon/postman/etherman"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/messageservice"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// SentEventReader reads the MessageSent events of the source chain
type SentEventReader interface {
	GetMessageSentEvents(ctx context.Context, filter messageservice.EventFilter,
		fromBlock, toBlock uint64, fromLogIndex uint) ([]message.SentEvent, error)
}

// BlockNumberReader returns the head of a chain
type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// MessageContract is the message service of the destination chain
type MessageContract interface {
	GetMessageStatus(ctx context.Context, msg *message.Message) (message.OnChainStatus, error)
	ClaimCall(ctx context.Context, msg *message.Message, from, feeRecipient common.Address) (ethereum.CallMsg, error)
	IsRateLimitExceeded(ctx context.Context, fee, value *big.Int) (bool, error)
	IsRateLimitExceededError(ctx context.Context, txHash common.Hash) (bool, error)
}

// ChainClient is the signing client of the destination chain
type ChainClient interface {
	BlockNumberReader
	From() (common.Address, error)
	CurrentNonce(ctx context.Context, account common.Address) (uint64, error)
	CheckTxWasMined(ctx context.Context, txHash common.Hash) (bool, *types.Receipt, error)
	TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error)
	SendTx(ctx context.Context, req etherman.TxRequest) (*types.Transaction, error)
}

var (
	_ MessageContract = (*messageservice.L1Contract)(nil)
	_ MessageContract = (*messageservice.L2Contract)(nil)
	_ ChainClient     = (*etherman.Client)(nil)
	_ SentEventReader = (*messageservice.LogClient)(nil)
)
