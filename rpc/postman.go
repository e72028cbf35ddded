package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/rpc/types"
	"github.com/0xPolygon/postman/tree"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// POSTMAN is the namespace of the postman service
	POSTMAN   = "postman"
	meterName = "github.com/0xPolygon/postman/rpc"

	defaultMessagesLimit = 100
	maxMessagesLimit     = 1000
)

// MessageReader reads the stored messages
type MessageReader interface {
	GetMessageByHash(ctx context.Context, hash common.Hash) (*message.Message, error)
	GetMessagesByStatus(ctx context.Context, direction message.Direction, status message.Status,
		limit uint) ([]*message.Message, error)
}

// ProofProvider builds the merkle proof of a L2 to L1 message
type ProofProvider interface {
	GetMessageProof(ctx context.Context, msg *message.Message) (tree.Proof, error)
}

// PostmanEndpoints contains implementations for the "postman" RPC endpoints
type PostmanEndpoints struct {
	logger      *log.Logger
	meter       metric.Meter
	readTimeout time.Duration
	storage     MessageReader
	proofs      ProofProvider
}

// NewPostmanEndpoints returns PostmanEndpoints. proofs may be nil, then postman_getMessageProof
// always fails
func NewPostmanEndpoints(
	logger *log.Logger,
	readTimeout time.Duration,
	storage MessageReader,
	proofs ProofProvider,
) *PostmanEndpoints {
	return &PostmanEndpoints{
		logger:      logger,
		meter:       otel.Meter(meterName),
		readTimeout: readTimeout,
		storage:     storage,
		proofs:      proofs,
	}
}

// GetMessageByHash returns a stored message
//
// curl -X POST http://localhost:5577/ -H "Content-Type: application/json" \
// -d '{"method":"postman_getMessageByHash", "params":["0x..."], "id":1}'
func (p *PostmanEndpoints) GetMessageByHash(hash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.readTimeout)
	defer cancel()
	p.count(ctx, "get_message_by_hash")

	msg, rpcErr := p.getMessage(ctx, hash)
	if rpcErr != nil {
		return nil, rpcErr
	}
	return types.NewMessage(msg), nil
}

// GetMessagesByStatus returns the oldest messages of direction in status. limit defaults to 100
//
// curl -X POST http://localhost:5577/ -H "Content-Type: application/json" \
// -d '{"method":"postman_getMessagesByStatus", "params":["L2_TO_L1", "ANCHORED", 10], "id":1}'
func (p *PostmanEndpoints) GetMessagesByStatus(direction, status string, limit *uint) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.readTimeout)
	defer cancel()
	p.count(ctx, "get_messages_by_status")

	dir, err := message.ParseDirection(direction)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, err.Error())
	}
	st := message.Status(status)
	if !st.IsValid() {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("unknown status %q", status))
	}
	n := uint(defaultMessagesLimit)
	if limit != nil {
		n = min(*limit, maxMessagesLimit)
	}

	msgs, err := p.storage.GetMessagesByStatus(ctx, dir, st, n)
	if err != nil {
		p.logger.Errorf("error getting %s messages of %s: %v", st, dir, err)
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("error getting messages: %v", err))
	}
	res := make([]types.Message, 0, len(msgs))
	for _, msg := range msgs {
		res = append(res, types.NewMessage(msg))
	}
	return res, nil
}

// GetMessageProof returns the proof needed to claim a L2 to L1 message on L1. It is available
// once the L2 block of the message has been anchored on L1
func (p *PostmanEndpoints) GetMessageProof(hash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.readTimeout)
	defer cancel()
	p.count(ctx, "get_message_proof")

	if p.proofs == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, "message proofs are not available on this node")
	}
	msg, rpcErr := p.getMessage(ctx, hash)
	if rpcErr != nil {
		return nil, rpcErr
	}
	if !msg.Direction.ClaimsOnL1() {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("message %s is claimed without proof", hash.Hex()))
	}

	proof, err := p.proofs.GetMessageProof(ctx, msg)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("error getting proof of message %s: %v", hash.Hex(), err))
	}
	return types.NewMessageProof(hash, proof), nil
}

func (p *PostmanEndpoints) getMessage(ctx context.Context, hash common.Hash) (*message.Message, rpc.Error) {
	msg, err := p.storage.GetMessageByHash(ctx, hash)
	if errors.Is(err, db.ErrNotFound) {
		return nil, rpc.NewRPCError(rpc.NotFoundErrorCode, fmt.Sprintf("message %s not found", hash.Hex()))
	} else if err != nil {
		p.logger.Errorf("error getting message %s: %v", hash.Hex(), err)
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("error getting message: %v", err))
	}
	return msg, nil
}

func (p *PostmanEndpoints) count(ctx context.Context, name string) {
	c, err := p.meter.Int64Counter(name)
	if err != nil {
		p.logger.Warnf("failed to create %s counter: %s", name, err)
		return
	}
	c.Add(ctx, 1)
}
