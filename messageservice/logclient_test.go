package messageservice

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/messageservice/mocks"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testContract = common.HexToAddress("0xB218f8A4Bc926cF1cA7b3423c154a0D627Bdb7E5")
	testSender   = common.HexToAddress("0x5eEeA0e70FFE4F5419477056023c4b0acA016562")
	testTarget   = common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85")
)

func messageSentLog(t *testing.T, hash common.Hash, nonce int64, calldata []byte, block uint64, index uint) types.Log {
	t.Helper()
	data, err := L1MessageServiceABI.Events["MessageSent"].Inputs.NonIndexed().
		Pack(big.NewInt(1_000), big.NewInt(2_000), big.NewInt(nonce), calldata)
	require.NoError(t, err)
	return types.Log{
		Address: testContract,
		Topics: []common.Hash{
			messageSentSignature,
			common.BytesToHash(testSender.Bytes()),
			common.BytesToHash(testTarget.Bytes()),
			hash,
		},
		Data:        data,
		BlockNumber: block,
		Index:       index,
		TxHash:      common.BigToHash(big.NewInt(int64(block))),
	}
}

func TestEventSignatures(t *testing.T) {
	require.Equal(t, L1MessageServiceABI.Events["MessageSent"].ID, messageSentSignature)
	require.Equal(t, L2MessageServiceABI.Events["MessageSent"].ID, messageSentSignature)
	require.Equal(t, L1MessageServiceABI.Events["MessageClaimed"].ID, messageClaimedSignature)
	require.Equal(t, L1MessageServiceABI.Events["L2MerkleRootAdded"].ID, l2MerkleRootAddedSignature)
	require.Equal(t, L1MessageServiceABI.Events["L2MessagingBlockAnchored"].ID, l2MessagingBlockAnchoredSignature)
}

func TestGetMessageSentEvents(t *testing.T) {
	ctx := context.Background()
	filterer := mocks.NewLogFilterer(t)
	client := NewLogClient(log.GetDefaultLogger(), filterer, testContract, L1MessageServiceABI)

	removed := messageSentLog(t, common.HexToHash("0x01"), 1, nil, 10, 0)
	removed.Removed = true
	beforeCursor := messageSentLog(t, common.HexToHash("0x02"), 2, nil, 10, 1)
	atCursor := messageSentLog(t, common.HexToHash("0x03"), 3, []byte{0xca, 0xfe}, 10, 2)
	nextBlock := messageSentLog(t, common.HexToHash("0x04"), 4, nil, 11, 0)

	filterer.EXPECT().FilterLogs(ctx, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.FromBlock.Uint64() == 10 && q.ToBlock.Uint64() == 20 &&
			q.Addresses[0] == testContract &&
			q.Topics[0][0] == messageSentSignature &&
			q.Topics[1] == nil &&
			q.Topics[2][0] == common.BytesToHash(testTarget.Bytes())
	})).Return([]types.Log{removed, beforeCursor, atCursor, nextBlock}, nil).Once()

	events, err := client.GetMessageSentEvents(ctx, EventFilter{To: &testTarget}, 10, 20, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, common.HexToHash("0x03"), events[0].MessageHash)
	require.Equal(t, testSender, events[0].MessageSender)
	require.Equal(t, testTarget, events[0].Destination)
	require.Equal(t, big.NewInt(1_000), events[0].Fee)
	require.Equal(t, big.NewInt(2_000), events[0].Value)
	require.Equal(t, big.NewInt(3), events[0].MessageNonce)
	require.Equal(t, []byte{0xca, 0xfe}, events[0].Calldata)
	require.Equal(t, testContract, events[0].ContractAddress)
	require.Equal(t, uint64(10), events[0].BlockNumber)
	require.Equal(t, uint(2), events[0].LogIndex)

	require.Equal(t, common.HexToHash("0x04"), events[1].MessageHash)
	require.Empty(t, events[1].Calldata)
}

func TestGetMessageSentEventsErrors(t *testing.T) {
	ctx := context.Background()
	filterer := mocks.NewLogFilterer(t)
	client := NewLogClient(log.GetDefaultLogger(), filterer, testContract, L1MessageServiceABI)

	filterer.EXPECT().FilterLogs(ctx, mock.Anything).Return(nil, errors.New("too many results")).Once()
	_, err := client.GetMessageSentEvents(ctx, EventFilter{}, 1, 2, 0)
	require.ErrorContains(t, err, "too many results")

	malformed := messageSentLog(t, common.HexToHash("0x01"), 1, nil, 1, 0)
	malformed.Topics = malformed.Topics[:2]
	filterer.EXPECT().FilterLogs(ctx, mock.Anything).Return([]types.Log{malformed}, nil).Once()
	_, err = client.GetMessageSentEvents(ctx, EventFilter{}, 1, 2, 0)
	require.ErrorContains(t, err, "malformed MessageSent log")
}

func TestGetMessageSentEventsByHash(t *testing.T) {
	ctx := context.Background()
	filterer := mocks.NewLogFilterer(t)
	client := NewLogClient(log.GetDefaultLogger(), filterer, testContract, L2MessageServiceABI)
	hash := common.HexToHash("0xaa")
	block := uint64(77)

	filterer.EXPECT().FilterLogs(ctx, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.ToBlock != nil && q.FromBlock.Uint64() == block && q.ToBlock.Uint64() == block &&
			q.Topics[3][0] == hash
	})).Return([]types.Log{messageSentLog(t, hash, 9, nil, block, 4)}, nil).Once()

	events, err := client.GetMessageSentEventsByHash(ctx, hash, &block)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, block, events[0].BlockNumber)

	filterer.EXPECT().FilterLogs(ctx, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.FromBlock.Sign() == 0 && q.ToBlock == nil
	})).Return(nil, nil).Once()
	events, err = client.GetMessageSentEventsByHash(ctx, hash, nil)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestGetAnchoredAndClaimedEvents(t *testing.T) {
	ctx := context.Background()
	filterer := mocks.NewLogFilterer(t)
	client := NewLogClient(log.GetDefaultLogger(), filterer, testContract, L1MessageServiceABI)
	l2Block := common.BigToHash(big.NewInt(500))
	finalizationTx := common.HexToHash("0xf1")

	filterer.EXPECT().FilterLogs(ctx, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.Topics[0][0] == l2MessagingBlockAnchoredSignature && q.Topics[1][0] == l2Block
	})).Return([]types.Log{
		{Topics: []common.Hash{l2MessagingBlockAnchoredSignature, l2Block}, BlockNumber: 9, TxHash: finalizationTx},
		{Topics: []common.Hash{l2MessagingBlockAnchoredSignature, l2Block}, Removed: true},
	}, nil).Once()

	anchored, err := client.GetL2MessagingBlockAnchoredEvents(ctx, 500)
	require.NoError(t, err)
	require.Equal(t, []AnchoredEvent{{L2Block: 500, BlockNumber: 9, TxHash: finalizationTx}}, anchored)

	hash := common.HexToHash("0xbb")
	filterer.EXPECT().FilterLogs(ctx, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.Topics[0][0] == messageClaimedSignature && q.Topics[1][0] == hash
	})).Return([]types.Log{{Topics: []common.Hash{messageClaimedSignature, hash}, BlockNumber: 3}}, nil).Once()

	claimed, err := client.GetMessageClaimedEvents(ctx, hash)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.Equal(t, hash, claimed[0].MessageHash)
}
