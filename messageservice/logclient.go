package messageservice

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// LogFilterer runs log queries against a node
type LogFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// EventFilter restricts the MessageSent events returned by the node
type EventFilter struct {
	From *common.Address
	To   *common.Address
}

// AnchoredEvent is a L2MessagingBlockAnchored log emitted on L1
type AnchoredEvent struct {
	L2Block     uint64
	BlockNumber uint64
	LogIndex    uint
	TxHash      common.Hash
}

// ClaimedEvent is a MessageClaimed log emitted by the destination message service
type ClaimedEvent struct {
	MessageHash common.Hash
	BlockNumber uint64
	TxHash      common.Hash
}

// LogClient reads and normalizes the events of one message service contract
type LogClient struct {
	client          LogFilterer
	contractAddress common.Address
	contractABI     abi.ABI
	logger          *log.Logger
}

// NewLogClient returns the log client of the contract at contractAddress
func NewLogClient(logger *log.Logger, client LogFilterer, contractAddress common.Address,
	contractABI abi.ABI) *LogClient {
	return &LogClient{
		client:          client,
		contractAddress: contractAddress,
		contractABI:     contractABI,
		logger:          logger,
	}
}

// ContractAddress returns the address of the contract whose logs are read
func (c *LogClient) ContractAddress() common.Address {
	return c.contractAddress
}

// GetMessageSentEvents returns the MessageSent events in [fromBlock, toBlock], skipping the
// events of fromBlock placed before fromLogIndex
func (c *LogClient) GetMessageSentEvents(
	ctx context.Context, filter EventFilter, fromBlock, toBlock uint64, fromLogIndex uint,
) ([]message.SentEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.contractAddress},
		Topics:    [][]common.Hash{{messageSentSignature}, addressTopic(filter.From), addressTopic(filter.To)},
	}
	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, err
	}
	events := make([]message.SentEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed || (l.BlockNumber == fromBlock && l.Index < fromLogIndex) {
			continue
		}
		ev, err := c.parseMessageSent(l)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// GetMessageSentEventsByHash returns the MessageSent events of a message. When blockNumber is
// nil the whole chain is searched
func (c *LogClient) GetMessageSentEventsByHash(
	ctx context.Context, messageHash common.Hash, blockNumber *uint64,
) ([]message.SentEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{c.contractAddress},
		Topics:    [][]common.Hash{{messageSentSignature}, nil, nil, {messageHash}},
	}
	if blockNumber != nil {
		query.FromBlock = new(big.Int).SetUint64(*blockNumber)
		query.ToBlock = new(big.Int).SetUint64(*blockNumber)
	}
	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, err
	}
	events := make([]message.SentEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		ev, err := c.parseMessageSent(l)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// GetMessageHashesInBlockRange returns the hashes of the messages sent in [fromBlock, toBlock]
// in emission order
func (c *LogClient) GetMessageHashesInBlockRange(ctx context.Context, fromBlock, toBlock uint64) ([]common.Hash, error) {
	events, err := c.GetMessageSentEvents(ctx, EventFilter{}, fromBlock, toBlock, 0)
	if err != nil {
		return nil, err
	}
	hashes := make([]common.Hash, 0, len(events))
	for _, ev := range events {
		hashes = append(hashes, ev.MessageHash)
	}
	return hashes, nil
}

// GetL2MessagingBlockAnchoredEvents returns the anchoring events of the given L2 block
func (c *LogClient) GetL2MessagingBlockAnchoredEvents(ctx context.Context, l2Block uint64) ([]AnchoredEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{c.contractAddress},
		Topics: [][]common.Hash{
			{l2MessagingBlockAnchoredSignature},
			{common.BigToHash(new(big.Int).SetUint64(l2Block))},
		},
	}
	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, err
	}
	events := make([]AnchoredEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		if len(l.Topics) < 2 {
			return nil, fmt.Errorf("malformed L2MessagingBlockAnchored log in tx %s", l.TxHash.Hex())
		}
		events = append(events, AnchoredEvent{
			L2Block:     l.Topics[1].Big().Uint64(),
			BlockNumber: l.BlockNumber,
			LogIndex:    l.Index,
			TxHash:      l.TxHash,
		})
	}
	return events, nil
}

// GetMessageClaimedEvents returns the claim events of a message
func (c *LogClient) GetMessageClaimedEvents(ctx context.Context, messageHash common.Hash) ([]ClaimedEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{c.contractAddress},
		Topics:    [][]common.Hash{{messageClaimedSignature}, {messageHash}},
	}
	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, err
	}
	events := make([]ClaimedEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		events = append(events, ClaimedEvent{
			MessageHash: messageHash,
			BlockNumber: l.BlockNumber,
			TxHash:      l.TxHash,
		})
	}
	return events, nil
}

func (c *LogClient) parseMessageSent(l types.Log) (message.SentEvent, error) {
	if len(l.Topics) != 4 {
		return message.SentEvent{}, fmt.Errorf("malformed MessageSent log in tx %s: %d topics", l.TxHash.Hex(), len(l.Topics))
	}
	values, err := c.contractABI.Unpack("MessageSent", l.Data)
	if err != nil {
		return message.SentEvent{}, fmt.Errorf("error decoding MessageSent log in tx %s: %w", l.TxHash.Hex(), err)
	}
	if len(values) != 4 {
		return message.SentEvent{}, errors.New("unexpected MessageSent payload")
	}
	fee, okFee := values[0].(*big.Int)
	value, okValue := values[1].(*big.Int)
	nonce, okNonce := values[2].(*big.Int)
	calldata, okCalldata := values[3].([]byte)
	if !okFee || !okValue || !okNonce || !okCalldata {
		return message.SentEvent{}, errors.New("unexpected MessageSent payload types")
	}
	return message.SentEvent{
		MessageHash:     l.Topics[3],
		MessageSender:   common.BytesToAddress(l.Topics[1].Bytes()),
		Destination:     common.BytesToAddress(l.Topics[2].Bytes()),
		Fee:             fee,
		Value:           value,
		MessageNonce:    nonce,
		Calldata:        calldata,
		ContractAddress: l.Address,
		BlockNumber:     l.BlockNumber,
		LogIndex:        l.Index,
		TxHash:          l.TxHash,
	}, nil
}

func addressTopic(addr *common.Address) []common.Hash {
	if addr == nil {
		return nil
	}
	return []common.Hash{common.BytesToHash(addr.Bytes())}
}
