package messageservice

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/messageservice/mocks"
	"github.com/0xPolygon/postman/tree"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type revertError struct {
	data string
}

func (e revertError) Error() string          { return "execution reverted" }
func (e revertError) ErrorData() interface{} { return e.data }

func callTo(t *testing.T, contractABI abi.ABI, method string, args ...interface{}) interface{} {
	t.Helper()
	data, err := contractABI.Pack(method, args...)
	require.NoError(t, err)
	return mock.MatchedBy(func(call ethereum.CallMsg) bool {
		return bytes.Equal(call.Data, data)
	})
}

func packOutput(t *testing.T, contractABI abi.ABI, method string, values ...interface{}) []byte {
	t.Helper()
	out, err := contractABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

func testMessage() *message.Message {
	return &message.Message{
		MessageHash:     common.HexToHash("0x7e57"),
		MessageSender:   testSender,
		Destination:     testTarget,
		Fee:             big.NewInt(1_000),
		Value:           big.NewInt(2_000),
		MessageNonce:    big.NewInt(42),
		Calldata:        []byte{0x01, 0x02},
		SentBlockNumber: 300,
	}
}

func TestL2GetMessageStatus(t *testing.T) {
	ctx := context.Background()
	caller := mocks.NewContractCaller(t)
	contract := NewL2Contract(log.GetDefaultLogger(), caller, testContract, DefaultRateLimitMargin)
	msg := testMessage()

	for raw, expected := range map[int64]message.OnChainStatus{
		0: message.OnChainStatusUnknown,
		1: message.OnChainStatusClaimable,
		2: message.OnChainStatusClaimed,
	} {
		caller.EXPECT().CallContract(ctx, callTo(t, L2MessageServiceABI, "inboxL1L2MessageStatus", msg.MessageHash), (*big.Int)(nil)).
			Return(packOutput(t, L2MessageServiceABI, "inboxL1L2MessageStatus", big.NewInt(raw)), nil).Once()
		status, err := contract.GetMessageStatus(ctx, msg)
		require.NoError(t, err)
		require.Equal(t, expected, status)
	}
}

func TestL2ClaimCall(t *testing.T) {
	contract := NewL2Contract(log.GetDefaultLogger(), mocks.NewContractCaller(t), testContract, DefaultRateLimitMargin)
	msg := testMessage()
	from := common.HexToAddress("0x01")
	feeRecipient := common.HexToAddress("0x02")

	call, err := contract.ClaimCall(context.Background(), msg, from, feeRecipient)
	require.NoError(t, err)
	require.Equal(t, from, call.From)
	require.Equal(t, testContract, *call.To)

	method := L2MessageServiceABI.Methods["claimMessage"]
	require.Equal(t, method.ID, call.Data[:4])
	args, err := method.Inputs.Unpack(call.Data[4:])
	require.NoError(t, err)
	require.Equal(t, []interface{}{
		msg.MessageSender, msg.Destination, msg.Fee, msg.Value, feeRecipient, msg.Calldata, msg.MessageNonce,
	}, args)
}

func TestIsRateLimitExceeded(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		description string
		limit       int64
		current     int64
		expected    bool
	}{
		{description: "well below the limit", limit: 100_000, current: 10_000, expected: false},
		{description: "exactly at the margin", limit: 100_000, current: 92_000, expected: false},
		{description: "above the margin", limit: 100_000, current: 92_001, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			caller := mocks.NewContractCaller(t)
			contract := NewL2Contract(log.GetDefaultLogger(), caller, testContract, DefaultRateLimitMargin)
			caller.EXPECT().CallContract(ctx, callTo(t, L2MessageServiceABI, "limitInWei"), (*big.Int)(nil)).
				Return(packOutput(t, L2MessageServiceABI, "limitInWei", big.NewInt(tc.limit)), nil).Once()
			caller.EXPECT().CallContract(ctx, callTo(t, L2MessageServiceABI, "currentPeriodAmountInWei"), (*big.Int)(nil)).
				Return(packOutput(t, L2MessageServiceABI, "currentPeriodAmountInWei", big.NewInt(tc.current)), nil).Once()

			// fee 1_000 + value 2_000
			exceeded, err := contract.IsRateLimitExceeded(ctx, big.NewInt(1_000), big.NewInt(2_000))
			require.NoError(t, err)
			require.Equal(t, tc.expected, exceeded)
		})
	}
}

func TestIsRateLimitExceededError(t *testing.T) {
	ctx := context.Background()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	to := testContract
	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(big.NewInt(59144)), &types.DynamicFeeTx{
		ChainID:   big.NewInt(59144),
		Nonce:     3,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(10),
		Gas:       90_000,
		To:        &to,
		Data:      []byte{0xaa},
	})
	require.NoError(t, err)
	sender := crypto.PubkeyToAddress(key.PublicKey)

	replay := mock.MatchedBy(func(call ethereum.CallMsg) bool {
		return call.From == sender && *call.To == to && call.Gas == 90_000 &&
			call.GasFeeCap.Cmp(big.NewInt(10)) == 0 && bytes.Equal(call.Data, []byte{0xaa})
	})
	rateLimitID := L2MessageServiceABI.Errors["RateLimitExceeded"].ID
	otherID := L2MessageServiceABI.Errors["MessageSendingFailed"].ID
	rateLimitData := hexutil.Encode(rateLimitID[:4])
	otherData := hexutil.Encode(otherID[:4])

	testCases := []struct {
		description string
		callErr     error
		expected    bool
	}{
		{description: "rate limit revert", callErr: revertError{data: rateLimitData}, expected: true},
		{description: "other custom error", callErr: revertError{data: otherData}, expected: false},
		{description: "unknown revert data", callErr: revertError{data: "0xdeadbeef"}, expected: false},
		{description: "no revert", callErr: nil, expected: false},
		{description: "error without data", callErr: errors.New("connection refused"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			caller := mocks.NewContractCaller(t)
			contract := NewL2Contract(log.GetDefaultLogger(), caller, testContract, DefaultRateLimitMargin)
			caller.EXPECT().TransactionByHash(ctx, tx.Hash()).Return(tx, false, nil).Once()
			caller.EXPECT().CallContract(ctx, replay, (*big.Int)(nil)).Return(nil, tc.callErr).Once()

			isRateLimit, err := contract.IsRateLimitExceededError(ctx, tx.Hash())
			require.NoError(t, err)
			require.Equal(t, tc.expected, isRateLimit)
		})
	}
}

func TestL1GetMessageStatus(t *testing.T) {
	ctx := context.Background()
	msg := testMessage()

	testCases := []struct {
		description   string
		claimed       bool
		anchoredLogs  []types.Log
		expected      message.OnChainStatus
		expectAnchors bool
	}{
		{description: "claimed", claimed: true, expected: message.OnChainStatusClaimed},
		{
			description:   "anchored",
			anchoredLogs:  []types.Log{{Topics: []common.Hash{l2MessagingBlockAnchoredSignature, common.BigToHash(big.NewInt(300))}}},
			expected:      message.OnChainStatusClaimable,
			expectAnchors: true,
		},
		{description: "not anchored yet", expected: message.OnChainStatusUnknown, expectAnchors: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			caller := mocks.NewContractCaller(t)
			filterer := mocks.NewLogFilterer(t)
			logs := NewLogClient(log.GetDefaultLogger(), filterer, testContract, L1MessageServiceABI)
			contract := NewL1Contract(log.GetDefaultLogger(), caller, testContract, DefaultRateLimitMargin,
				logs, mocks.NewProofProvider(t))

			caller.EXPECT().CallContract(ctx, callTo(t, L1MessageServiceABI, "isMessageClaimed", msg.MessageNonce), (*big.Int)(nil)).
				Return(packOutput(t, L1MessageServiceABI, "isMessageClaimed", tc.claimed), nil).Once()
			if tc.expectAnchors {
				filterer.EXPECT().FilterLogs(ctx, mock.Anything).Return(tc.anchoredLogs, nil).Once()
			}

			status, err := contract.GetMessageStatus(ctx, msg)
			require.NoError(t, err)
			require.Equal(t, tc.expected, status)
		})
	}
}

func TestL1ClaimCall(t *testing.T) {
	ctx := context.Background()
	proofs := mocks.NewProofProvider(t)
	contract := NewL1Contract(log.GetDefaultLogger(), mocks.NewContractCaller(t), testContract,
		DefaultRateLimitMargin, nil, proofs)
	msg := testMessage()
	from := common.HexToAddress("0x01")

	proof := tree.Proof{
		Siblings:  []common.Hash{common.HexToHash("0x11"), common.HexToHash("0x22")},
		Root:      common.HexToHash("0x33"),
		LeafIndex: 1,
		Leaf:      msg.MessageHash,
	}
	proofs.EXPECT().GetMessageProof(ctx, msg).Return(proof, nil).Once()

	call, err := contract.ClaimCall(ctx, msg, from, common.Address{})
	require.NoError(t, err)
	require.Equal(t, from, call.From)

	method := L1MessageServiceABI.Methods["claimMessageWithProof"]
	require.Equal(t, method.ID, call.Data[:4])
	args, err := method.Inputs.Unpack(call.Data[4:])
	require.NoError(t, err)
	require.Len(t, args, 1)

	params := *abi.ConvertType(args[0], new(claimMessageWithProofParams)).(*claimMessageWithProofParams)
	require.Equal(t, [][32]byte{proof.Siblings[0], proof.Siblings[1]}, params.Proof)
	require.Equal(t, uint32(1), params.LeafIndex)
	require.Equal(t, [32]byte(proof.Root), params.MerkleRoot)
	require.Equal(t, msg.MessageNonce, params.MessageNumber)
	require.Equal(t, msg.Calldata, params.Data)

	proofs.EXPECT().GetMessageProof(ctx, msg).Return(tree.Proof{}, ErrMerkleTreeBuildFailed).Once()
	_, err = contract.ClaimCall(ctx, msg, from, common.Address{})
	require.ErrorIs(t, err, ErrMerkleTreeBuildFailed)
}
