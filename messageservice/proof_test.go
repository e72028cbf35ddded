package messageservice

import (
	"context"
	"math/big"
	"testing"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/messageservice/mocks"
	"github.com/0xPolygon/postman/tree"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRollup = common.HexToAddress("0xd19d4B5d358258f05D7B411E21A1460D11B0876F")

type proofFixture struct {
	builder        *ProofBuilder
	l1Filterer     *mocks.LogFilterer
	l2Filterer     *mocks.LogFilterer
	receipts       *mocks.ReceiptReader
	hashes         []common.Hash
	finalizationTx common.Hash
}

func newProofFixture(t *testing.T) *proofFixture {
	t.Helper()
	f := &proofFixture{
		l1Filterer:     mocks.NewLogFilterer(t),
		l2Filterer:     mocks.NewLogFilterer(t),
		receipts:       mocks.NewReceiptReader(t),
		finalizationTx: common.HexToHash("0xf1"),
	}
	for i := int64(1); i <= 5; i++ {
		f.hashes = append(f.hashes, common.BigToHash(big.NewInt(i*1_000)))
	}
	l1Logs := NewLogClient(log.GetDefaultLogger(), f.l1Filterer, testRollup, L1MessageServiceABI)
	l2Logs := NewLogClient(log.GetDefaultLogger(), f.l2Filterer, testContract, L2MessageServiceABI)
	f.builder = NewProofBuilder(log.GetDefaultLogger(), l1Logs, l2Logs, f.receipts, 5)
	return f
}

func (f *proofFixture) expectLookups(t *testing.T, target common.Hash, targetBlock uint64) {
	t.Helper()
	ctx := context.Background()
	f.l2Filterer.EXPECT().FilterLogs(ctx, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return len(q.Topics) == 4
	})).Return([]types.Log{messageSentLog(t, target, 4, nil, targetBlock, 0)}, nil).Once()
	f.l1Filterer.EXPECT().FilterLogs(ctx, mock.Anything).Return([]types.Log{{
		Address: testRollup,
		Topics:  []common.Hash{l2MessagingBlockAnchoredSignature, common.BigToHash(new(big.Int).SetUint64(targetBlock))},
		TxHash:  f.finalizationTx,
	}}, nil).Once()
}

func (f *proofFixture) expectRange(t *testing.T) {
	t.Helper()
	var logs []types.Log
	for i, h := range f.hashes {
		logs = append(logs, messageSentLog(t, h, int64(i), nil, 10+uint64(i)/2, uint(i%2)))
	}
	f.l2Filterer.EXPECT().FilterLogs(context.Background(), mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return len(q.Topics) == 3 && q.FromBlock.Uint64() == 10 && q.ToBlock.Uint64() == 12
	})).Return(logs, nil).Once()
}

func finalizationReceipt(roots []common.Hash, depth uint8, blocks ...uint64) *types.Receipt {
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	receipt.Logs = append(receipt.Logs, &types.Log{
		Address: common.HexToAddress("0x0e"),
		Topics:  []common.Hash{l2MerkleRootAddedSignature, common.HexToHash("0xbad"), common.BigToHash(big.NewInt(1))},
	})
	for _, root := range roots {
		receipt.Logs = append(receipt.Logs, &types.Log{
			Address: testRollup,
			Topics:  []common.Hash{l2MerkleRootAddedSignature, root, common.BigToHash(big.NewInt(int64(depth)))},
		})
	}
	for _, b := range blocks {
		receipt.Logs = append(receipt.Logs, &types.Log{
			Address: testRollup,
			Topics:  []common.Hash{l2MessagingBlockAnchoredSignature, common.BigToHash(new(big.Int).SetUint64(b))},
		})
	}
	return receipt
}

func expectedRoot(t *testing.T, hashes []common.Hash, depth uint8) common.Hash {
	t.Helper()
	tr, err := tree.NewSparseMerkleTree(depth)
	require.NoError(t, err)
	for i, h := range hashes {
		require.NoError(t, tr.AddLeaf(uint32(i), h))
	}
	return tr.GetRoot()
}

func TestGetFinalizationInfo(t *testing.T) {
	ctx := context.Background()
	f := newProofFixture(t)
	root := common.HexToHash("0x1234")

	f.receipts.EXPECT().TransactionReceipt(ctx, f.finalizationTx).
		Return(finalizationReceipt([]common.Hash{root}, 5, 12, 10, 11), nil).Once()
	info, err := f.builder.GetFinalizationInfo(ctx, f.finalizationTx)
	require.NoError(t, err)
	require.Equal(t, FinalizationInfo{
		L2MerkleRoots:          []common.Hash{root},
		L2MessagingBlocksRange: BlockRange{Start: 10, End: 12},
		TreeDepth:              5,
	}, info)

	f.receipts.EXPECT().TransactionReceipt(ctx, f.finalizationTx).
		Return(finalizationReceipt(nil, 5, 10), nil).Once()
	_, err = f.builder.GetFinalizationInfo(ctx, f.finalizationTx)
	require.ErrorContains(t, err, "no L2MerkleRootAdded events")

	f.receipts.EXPECT().TransactionReceipt(ctx, f.finalizationTx).
		Return(finalizationReceipt([]common.Hash{root}, 5), nil).Once()
	_, err = f.builder.GetFinalizationInfo(ctx, f.finalizationTx)
	require.ErrorContains(t, err, "no L2MessagingBlocksAnchored events")

	deepRoot := &types.Log{
		Address: testRollup,
		Topics:  []common.Hash{l2MerkleRootAddedSignature, root, common.BigToHash(big.NewInt(256 + 5))},
	}
	receipt := finalizationReceipt(nil, 5, 10)
	receipt.Logs = append(receipt.Logs, deepRoot)
	f.receipts.EXPECT().TransactionReceipt(ctx, f.finalizationTx).Return(receipt, nil).Once()
	_, err = f.builder.GetFinalizationInfo(ctx, f.finalizationTx)
	require.ErrorContains(t, err, "tree depth 261")
}

func TestGetMessageProof(t *testing.T) {
	ctx := context.Background()
	const depth = 5
	f := newProofFixture(t)
	target := f.hashes[3]
	root := expectedRoot(t, f.hashes, depth)

	f.expectLookups(t, target, 11)
	f.receipts.EXPECT().TransactionReceipt(ctx, f.finalizationTx).
		Return(finalizationReceipt([]common.Hash{common.HexToHash("0x01"), root}, depth, 10, 11, 12), nil).Once()
	f.expectRange(t)

	proof, err := f.builder.GetMessageProof(ctx, &message.Message{MessageHash: target, SentBlockNumber: 11})
	require.NoError(t, err)
	require.Equal(t, root, proof.Root)
	require.Equal(t, uint32(3), proof.LeafIndex)
	require.Len(t, proof.Siblings, depth)
	require.Equal(t, target, proof.Leaf)
	require.True(t, tree.VerifyProof(proof))
}

func TestGetMessageProofRootMismatch(t *testing.T) {
	ctx := context.Background()
	f := newProofFixture(t)
	target := f.hashes[0]

	f.expectLookups(t, target, 10)
	f.receipts.EXPECT().TransactionReceipt(ctx, f.finalizationTx).
		Return(finalizationReceipt([]common.Hash{common.HexToHash("0x01")}, 5, 10, 11, 12), nil).Once()
	f.expectRange(t)

	_, err := f.builder.GetMessageProof(ctx, &message.Message{MessageHash: target, SentBlockNumber: 10})
	require.ErrorIs(t, err, ErrMerkleTreeBuildFailed)
}

func TestGetMessageProofNotAnchored(t *testing.T) {
	ctx := context.Background()
	f := newProofFixture(t)
	target := f.hashes[0]

	f.l2Filterer.EXPECT().FilterLogs(ctx, mock.Anything).
		Return([]types.Log{messageSentLog(t, target, 1, nil, 10, 0)}, nil).Once()
	f.l1Filterer.EXPECT().FilterLogs(ctx, mock.Anything).Return(nil, nil).Once()

	_, err := f.builder.GetMessageProof(ctx, &message.Message{MessageHash: target, SentBlockNumber: 10})
	require.ErrorIs(t, err, ErrMessageNotAnchored)
}

func TestGetMessageProofUnknownMessage(t *testing.T) {
	ctx := context.Background()
	f := newProofFixture(t)

	f.l2Filterer.EXPECT().FilterLogs(ctx, mock.Anything).Return(nil, nil).Once()

	_, err := f.builder.GetMessageProof(ctx, &message.Message{MessageHash: common.HexToHash("0x99")})
	require.ErrorIs(t, err, ErrSentEventNotFound)
}
