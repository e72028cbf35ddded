package processor

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/processor/mocks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func storedMessage(n int64, status message.Status) *message.Message {
	return &message.Message{
		ID:              n,
		MessageHash:     common.BigToHash(big.NewInt(n)),
		Direction:       message.DirectionL1ToL2,
		ContractAddress: testContract,
		MessageSender:   testSender,
		Destination:     testTarget,
		Fee:             big.NewInt(1_000_000_000_000_000),
		Value:           big.NewInt(2),
		MessageNonce:    big.NewInt(n),
		SentBlockNumber: uint64(n),
		Status:          status,
		CreatedAt:       testNow.Add(-time.Hour).Unix(),
		UpdatedAt:       testNow.Add(-time.Hour).Unix(),
	}
}

func TestAnchoringProcessor(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMessageStorage(t)
	contract := mocks.NewMessageContract(t)
	p := NewAnchoringProcessor(log.GetDefaultLogger(), AnchoringProcessorConfig{
		Direction:              message.DirectionL1ToL2,
		MaxFetchMessagesFromDB: 3,
	}, storage, contract)
	p.timeNow = func() time.Time { return testNow }

	claimable := storedMessage(1, message.StatusSent)
	claimed := storedMessage(2, message.StatusSent)
	unknown := storedMessage(3, message.StatusSent)

	storage.EXPECT().GetNFirstMessagesSent(ctx, message.DirectionL1ToL2, uint(3)).
		Return([]*message.Message{claimable, claimed, unknown}, nil).Once()
	contract.EXPECT().GetMessageStatus(ctx, claimable).Return(message.OnChainStatusClaimable, nil).Once()
	contract.EXPECT().GetMessageStatus(ctx, claimed).Return(message.OnChainStatusClaimed, nil).Once()
	contract.EXPECT().GetMessageStatus(ctx, unknown).Return(message.OnChainStatusUnknown, nil).Once()
	storage.EXPECT().SaveMessages(ctx, []*message.Message{claimable, claimed}).Return(nil).Once()

	require.NoError(t, p.Process(ctx))
	require.Equal(t, message.StatusAnchored, claimable.Status)
	require.Equal(t, message.StatusClaimedSuccess, claimed.Status)
	require.Equal(t, message.StatusSent, unknown.Status)
	require.Equal(t, testNow.Unix(), claimable.UpdatedAt)
	require.Equal(t, testNow.Add(-time.Hour).Unix(), unknown.UpdatedAt)
}

func TestAnchoringProcessorNothingToSave(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMessageStorage(t)
	contract := mocks.NewMessageContract(t)
	p := NewAnchoringProcessor(log.GetDefaultLogger(), AnchoringProcessorConfig{
		Direction:              message.DirectionL2ToL1,
		MaxFetchMessagesFromDB: 10,
	}, storage, contract)

	storage.EXPECT().GetNFirstMessagesSent(ctx, message.DirectionL2ToL1, uint(10)).Return(nil, nil).Once()
	require.NoError(t, p.Process(ctx))

	msg := storedMessage(1, message.StatusSent)
	storage.EXPECT().GetNFirstMessagesSent(ctx, message.DirectionL2ToL1, uint(10)).
		Return([]*message.Message{msg}, nil).Once()
	contract.EXPECT().GetMessageStatus(ctx, msg).Return(message.OnChainStatusUnknown, errors.New("rpc down")).Once()
	require.ErrorContains(t, p.Process(ctx), "rpc down")
	require.Equal(t, message.StatusSent, msg.Status)
}
