package messageservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/tree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrMerkleTreeBuildFailed is returned when the rebuilt root is not among the posted roots
	ErrMerkleTreeBuildFailed = errors.New("merkle tree build failed")
	// ErrMessageNotAnchored is returned when the block of a message has not been anchored on L1 yet
	ErrMessageNotAnchored = errors.New("message block not anchored")
	// ErrSentEventNotFound is returned when the MessageSent event of a message can not be found
	ErrSentEventNotFound = errors.New("message sent event not found")
)

// ReceiptReader reads tx receipts
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// BlockRange is an inclusive range of L2 blocks
type BlockRange struct {
	Start uint64
	End   uint64
}

// FinalizationInfo is the messaging data posted on L1 by a finalization tx
type FinalizationInfo struct {
	L2MerkleRoots          []common.Hash
	L2MessagingBlocksRange BlockRange
	TreeDepth              uint8
}

// ProofBuilder rebuilds the inclusion proof of a L2 message against the roots posted on L1
type ProofBuilder struct {
	l1Logs     *LogClient
	l2Logs     *LogClient
	l1Receipts ReceiptReader
	treeDepth  uint8
	logger     *log.Logger
}

// NewProofBuilder returns a proof builder reading anchoring data from l1Logs and messages from l2Logs.
// treeDepth is used when a finalization tx does not state the depth of its trees
func NewProofBuilder(logger *log.Logger, l1Logs, l2Logs *LogClient, l1Receipts ReceiptReader,
	treeDepth uint8) *ProofBuilder {
	return &ProofBuilder{
		l1Logs:     l1Logs,
		l2Logs:     l2Logs,
		l1Receipts: l1Receipts,
		treeDepth:  treeDepth,
		logger:     logger,
	}
}

// GetFinalizationInfo parses the messaging logs of the finalization tx txHash
func (p *ProofBuilder) GetFinalizationInfo(ctx context.Context, txHash common.Hash) (FinalizationInfo, error) {
	receipt, err := p.l1Receipts.TransactionReceipt(ctx, txHash)
	if err != nil {
		return FinalizationInfo{}, fmt.Errorf("error getting receipt of finalization tx %s: %w", txHash.Hex(), err)
	}

	info := FinalizationInfo{L2MessagingBlocksRange: BlockRange{Start: math.MaxUint64}}
	anchored := false
	for _, l := range receipt.Logs {
		if l.Address != p.l1Logs.ContractAddress() || len(l.Topics) == 0 {
			continue
		}
		switch l.Topics[0] {
		case l2MerkleRootAddedSignature:
			if len(l.Topics) < 3 {
				return FinalizationInfo{}, fmt.Errorf("malformed L2MerkleRootAdded log in tx %s", txHash.Hex())
			}
			depth := l.Topics[2].Big()
			if depth.Sign() == 0 || depth.Cmp(big.NewInt(int64(tree.MaxProofDepth))) > 0 {
				return FinalizationInfo{}, fmt.Errorf("tree depth %s of L2MerkleRootAdded log in tx %s out of range [1, %d]",
					depth, txHash.Hex(), tree.MaxProofDepth)
			}
			info.L2MerkleRoots = append(info.L2MerkleRoots, l.Topics[1])
			info.TreeDepth = uint8(depth.Uint64())
		case l2MessagingBlockAnchoredSignature:
			if len(l.Topics) < 2 {
				return FinalizationInfo{}, fmt.Errorf("malformed L2MessagingBlockAnchored log in tx %s", txHash.Hex())
			}
			block := l.Topics[1].Big().Uint64()
			info.L2MessagingBlocksRange.Start = min(info.L2MessagingBlocksRange.Start, block)
			info.L2MessagingBlocksRange.End = max(info.L2MessagingBlocksRange.End, block)
			anchored = true
		}
	}
	if len(info.L2MerkleRoots) == 0 {
		return FinalizationInfo{}, fmt.Errorf("no L2MerkleRootAdded events found in tx %s", txHash.Hex())
	}
	if !anchored {
		return FinalizationInfo{}, fmt.Errorf("no L2MessagingBlocksAnchored events found in tx %s", txHash.Hex())
	}
	return info, nil
}

// GetMessageProof returns the proof that msg is a leaf of one of the roots posted on L1
func (p *ProofBuilder) GetMessageProof(ctx context.Context, msg *message.Message) (tree.Proof, error) {
	blockNumber := msg.SentBlockNumber
	sentEvents, err := p.l2Logs.GetMessageSentEventsByHash(ctx, msg.MessageHash, &blockNumber)
	if err != nil {
		return tree.Proof{}, err
	}
	if len(sentEvents) == 0 {
		return tree.Proof{}, fmt.Errorf("%w: %s", ErrSentEventNotFound, msg.MessageHash.Hex())
	}

	anchoredEvents, err := p.l1Logs.GetL2MessagingBlockAnchoredEvents(ctx, sentEvents[0].BlockNumber)
	if err != nil {
		return tree.Proof{}, err
	}
	if len(anchoredEvents) == 0 {
		return tree.Proof{}, fmt.Errorf("%w: L2 block %d", ErrMessageNotAnchored, sentEvents[0].BlockNumber)
	}

	info, err := p.GetFinalizationInfo(ctx, anchoredEvents[0].TxHash)
	if err != nil {
		return tree.Proof{}, err
	}

	hashes, err := p.l2Logs.GetMessageHashesInBlockRange(ctx,
		info.L2MessagingBlocksRange.Start, info.L2MessagingBlocksRange.End)
	if err != nil {
		return tree.Proof{}, err
	}
	if len(hashes) == 0 {
		return tree.Proof{}, fmt.Errorf("no MessageSent events found in L2 blocks %d to %d",
			info.L2MessagingBlocksRange.Start, info.L2MessagingBlocksRange.End)
	}

	depth := info.TreeDepth
	if depth == 0 {
		depth = p.treeDepth
	} else if p.treeDepth != 0 && depth != p.treeDepth {
		p.logger.Warnf("finalization tx %s uses tree depth %d, configured depth is %d",
			anchoredEvents[0].TxHash.Hex(), depth, p.treeDepth)
	}
	leaves, leafIndex, err := tree.GetMessageSiblings(msg.MessageHash, hashes, depth)
	if err != nil {
		return tree.Proof{}, err
	}
	t, err := tree.NewSparseMerkleTree(depth)
	if err != nil {
		return tree.Proof{}, err
	}
	for i, leaf := range leaves {
		// padding matches the default leaf
		if leaf == (common.Hash{}) {
			continue
		}
		if err := t.AddLeaf(uint32(i), leaf); err != nil {
			return tree.Proof{}, err
		}
	}

	root := t.GetRoot()
	if !slices.Contains(info.L2MerkleRoots, root) {
		p.logger.Errorf("rebuilt root %s for message %s not posted in finalization tx %s",
			root.Hex(), msg.MessageHash.Hex(), anchoredEvents[0].TxHash.Hex())
		return tree.Proof{}, ErrMerkleTreeBuildFailed
	}
	return t.GetProof(leafIndex)
}
