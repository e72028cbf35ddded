package processor

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/etherman"
	"github.com/0xPolygon/postman/gasprice"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/processor/mocks"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testMaxFeeCap = big.NewInt(1_050_000_000)

type persisterFixture struct {
	persister *ClaimPersister
	storage   *mocks.MessageStorage
	contract  *mocks.MessageContract
	client    *mocks.ChainClient
	fees      *mocks.FeeProvider
}

func newPersisterFixture(t *testing.T) *persisterFixture {
	t.Helper()
	f := &persisterFixture{
		storage:  mocks.NewMessageStorage(t),
		contract: mocks.NewMessageContract(t),
		client:   mocks.NewChainClient(t),
		fees:     mocks.NewFeeProvider(t),
	}
	f.persister = NewClaimPersister(log.GetDefaultLogger(), ClaimPersisterConfig{
		Direction:                message.DirectionL1ToL2,
		FeeRecipient:             testFeeRecipient,
		MessageSubmissionTimeout: 5 * time.Minute,
		MaxNumberOfRetries:       3,
		FeeBumpPercent:           10,
	}, f.storage, f.contract, f.client, f.fees)
	f.persister.timeNow = func() time.Time { return testNow }
	return f
}

func pendingMessage(submittedAgo time.Duration) *message.Message {
	msg := storedMessage(1, message.StatusAnchored)
	msg.SetClaimTx(message.ClaimTx{
		Hash:                 common.HexToHash("0xc1a1"),
		Nonce:                7,
		GasLimit:             100_000,
		MaxFeePerGas:         big.NewInt(1_000_000_000),
		MaxPriorityFeePerGas: big.NewInt(100_000_000),
	}, testNow.Add(-submittedAgo))
	msg.SetGasEstimationThreshold(100_000, testNow.Add(-submittedAgo))
	return msg
}

func claimTx(nonce uint64, feeCap, tipCap int64) *types.Transaction {
	return types.NewTx(&types.DynamicFeeTx{
		Nonce:     nonce,
		To:        &testContract,
		Gas:       100_000,
		GasFeeCap: big.NewInt(feeCap),
		GasTipCap: big.NewInt(tipCap),
		Data:      []byte{0xca, 0xfe},
	})
}

// expectSendTx returns the request given to SendTx through req
func (f *persisterFixture) expectSendTx(ctx context.Context, req *etherman.TxRequest) {
	f.client.EXPECT().SendTx(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, r etherman.TxRequest) (*types.Transaction, error) {
			*req = r
			return types.NewTx(&types.DynamicFeeTx{
				Nonce:     r.Nonce,
				To:        &r.To,
				Gas:       r.GasLimit,
				GasFeeCap: r.MaxFeePerGas,
				GasTipCap: r.MaxPriorityFeePerGas,
				Data:      r.Data,
				Value:     r.Value,
			}), nil
		}).Once()
}

func TestClaimPersisterNothingPending(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(nil, db.ErrNotFound).Once()
	require.NoError(t, f.persister.Process(ctx))
}

func TestClaimPersisterInFlight(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	msg := pendingMessage(time.Minute)

	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(false, nil, nil).Once()
	require.NoError(t, f.persister.Process(ctx))

	// a recent fee bump restarts the timeout
	msg = pendingMessage(time.Hour)
	retried := testNow.Add(-time.Minute).Unix()
	msg.ClaimLastRetriedAt = &retried
	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(false, nil, nil).Once()
	require.NoError(t, f.persister.Process(ctx))
	require.Equal(t, message.StatusPending, msg.Status)
}

func TestClaimPersisterReceipt(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name           string
		receiptStatus  uint64
		rateLimited    bool
		expectedStatus message.Status
	}{
		{"success", types.ReceiptStatusSuccessful, false, message.StatusClaimedSuccess},
		{"reverted", types.ReceiptStatusFailed, false, message.StatusClaimedReverted},
		{"rate limited", types.ReceiptStatusFailed, true, message.StatusSent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPersisterFixture(t)
			msg := pendingMessage(time.Minute)
			receipt := &types.Receipt{
				Status:            tt.receiptStatus,
				TxHash:            *msg.ClaimTxHash,
				GasUsed:           80_000,
				EffectiveGasPrice: big.NewInt(900_000_000),
			}

			f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
			f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(true, receipt, nil).Once()
			if tt.receiptStatus == types.ReceiptStatusFailed {
				f.contract.EXPECT().IsRateLimitExceededError(ctx, *msg.ClaimTxHash).Return(tt.rateLimited, nil).Once()
			}
			f.storage.EXPECT().UpdateMessage(ctx, msg).Return(nil).Once()

			require.NoError(t, f.persister.Process(ctx))
			require.Equal(t, tt.expectedStatus, msg.Status)
			require.Equal(t, uint64(80_000), *msg.ClaimTxGasUsed)
			require.Equal(t, big.NewInt(900_000_000), msg.ClaimTxGasPrice)
			if tt.rateLimited {
				require.Nil(t, msg.ClaimGasEstimationThreshold)
			} else {
				require.NotNil(t, msg.ClaimGasEstimationThreshold)
			}
		})
	}
}

func TestClaimPersisterTimeoutAlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	msg := pendingMessage(time.Hour)

	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: *msg.ClaimTxHash, EffectiveGasPrice: big.NewInt(1)}
	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Twice()
	f.contract.EXPECT().GetMessageStatus(ctx, msg).Return(message.OnChainStatusClaimed, nil).Twice()
	// the receipt shows up on the second recheck
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(false, nil, nil).Times(3)
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(true, receipt, nil).Once()

	require.NoError(t, f.persister.Process(ctx))
	require.Equal(t, message.StatusPending, msg.Status)

	f.storage.EXPECT().UpdateMessage(ctx, msg).Return(nil).Once()
	require.NoError(t, f.persister.Process(ctx))
	require.Equal(t, message.StatusClaimedSuccess, msg.Status)
}

func TestClaimPersisterFeeBump(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	msg := pendingMessage(time.Hour)
	previous := *msg.ClaimTxHash

	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
	f.client.EXPECT().CheckTxWasMined(ctx, previous).Return(false, nil, nil).Once()
	f.contract.EXPECT().GetMessageStatus(ctx, msg).Return(message.OnChainStatusClaimable, nil).Once()
	f.client.EXPECT().TransactionByHash(ctx, previous).Return(claimTx(7, 1_000_000_000, 100_000_000), true, nil).Once()
	f.fees.EXPECT().MaxFeePerGasCap().Return(testMaxFeeCap).Once()
	var req etherman.TxRequest
	f.expectSendTx(ctx, &req)
	f.storage.EXPECT().UpdateMessage(ctx, msg).Return(nil).Once()

	require.NoError(t, f.persister.Process(ctx))

	expectedFees := gasprice.BumpFees(gasprice.GasFees{
		MaxFeePerGas:         big.NewInt(1_000_000_000),
		MaxPriorityFeePerGas: big.NewInt(100_000_000),
	}, 10, testMaxFeeCap)
	// 1.1 gwei is above the cap, the priority fee is not
	require.Equal(t, testMaxFeeCap, req.MaxFeePerGas)
	require.Equal(t, big.NewInt(110_000_000), req.MaxPriorityFeePerGas)
	require.Equal(t, expectedFees.MaxFeePerGas, req.MaxFeePerGas)
	require.Equal(t, uint64(7), req.Nonce)
	require.Equal(t, testContract, req.To)
	require.Equal(t, []byte{0xca, 0xfe}, req.Data)
	require.Equal(t, uint64(100_000), req.GasLimit)

	require.Equal(t, message.StatusPending, msg.Status)
	require.NotEqual(t, previous, *msg.ClaimTxHash)
	require.Equal(t, uint(1), msg.ClaimRetryCount)
	require.Equal(t, testNow.Unix(), *msg.ClaimLastRetriedAt)
	require.Equal(t, testMaxFeeCap, msg.ClaimTxMaxFeePerGas)
}

func TestClaimPersisterLegacyTxFreshQuote(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	msg := pendingMessage(time.Hour)

	legacy := types.NewTx(&types.LegacyTx{Nonce: 7, To: &testContract, Gas: 100_000, GasPrice: big.NewInt(5), Data: []byte{0x01}})
	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(false, nil, nil).Once()
	f.contract.EXPECT().GetMessageStatus(ctx, msg).Return(message.OnChainStatusUnknown, nil).Once()
	f.client.EXPECT().TransactionByHash(ctx, *msg.ClaimTxHash).Return(legacy, false, nil).Once()
	f.fees.EXPECT().GetGasFees(ctx).Return(testGasFees, nil).Once()
	var req etherman.TxRequest
	f.expectSendTx(ctx, &req)
	f.storage.EXPECT().UpdateMessage(ctx, msg).Return(nil).Once()

	require.NoError(t, f.persister.Process(ctx))
	require.Equal(t, testGasFees.MaxFeePerGas, req.MaxFeePerGas)
	require.Equal(t, testGasFees.MaxPriorityFeePerGas, req.MaxPriorityFeePerGas)
	require.Equal(t, []byte{0x01}, req.Data)
}

func TestClaimPersisterDroppedTx(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	msg := pendingMessage(time.Hour)

	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(false, nil, nil).Once()
	f.contract.EXPECT().GetMessageStatus(ctx, msg).Return(message.OnChainStatusClaimable, nil).Once()
	f.client.EXPECT().TransactionByHash(ctx, *msg.ClaimTxHash).Return(nil, false, ethereum.NotFound).Once()
	f.client.EXPECT().From().Return(testSigner, nil).Once()
	f.contract.EXPECT().ClaimCall(ctx, msg, testSigner, testFeeRecipient).
		Return(ethereum.CallMsg{To: &testContract, Data: []byte{0xbe, 0xef}}, nil).Once()
	f.fees.EXPECT().MaxFeePerGasCap().Return(big.NewInt(10_000_000_000)).Once()
	var req etherman.TxRequest
	f.expectSendTx(ctx, &req)
	f.storage.EXPECT().UpdateMessage(ctx, msg).Return(nil).Once()

	require.NoError(t, f.persister.Process(ctx))
	require.Equal(t, etherman.TxRequest{
		Nonce:                7,
		To:                   testContract,
		Data:                 []byte{0xbe, 0xef},
		GasLimit:             100_000,
		MaxFeePerGas:         big.NewInt(1_100_000_000),
		MaxPriorityFeePerGas: big.NewInt(110_000_000),
	}, req)
}

func TestClaimPersisterMaxRetries(t *testing.T) {
	ctx := context.Background()
	f := newPersisterFixture(t)
	msg := pendingMessage(time.Hour)
	msg.ClaimRetryCount = 3

	f.storage.EXPECT().GetFirstPendingMessage(ctx, message.DirectionL1ToL2).Return(msg, nil).Once()
	f.client.EXPECT().CheckTxWasMined(ctx, *msg.ClaimTxHash).Return(false, nil, nil).Once()
	f.contract.EXPECT().GetMessageStatus(ctx, msg).Return(message.OnChainStatusClaimable, nil).Once()

	require.NoError(t, f.persister.Process(ctx))
	require.Equal(t, message.StatusPending, msg.Status)
	require.Equal(t, uint(3), msg.ClaimRetryCount)
}
