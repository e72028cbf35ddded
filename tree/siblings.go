package tree

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// MaxProofDepth bounds the window of leaves materialised for a single proof
const MaxProofDepth uint8 = 20

// ErrMessageNotFound is returned when the message is not among the given hashes
var ErrMessageNotFound = errors.New("message hash not found in messages")

// GetMessageSiblings returns the window of 2^treeDepth hashes that contains hash, padded
// with zero hashes. Windows are aligned: the one holding position i starts at
// i - i%2^treeDepth. The second value is the position of hash inside the window
func GetMessageSiblings(hash common.Hash, hashes []common.Hash, treeDepth uint8) ([]common.Hash, uint32, error) {
	if treeDepth == 0 || treeDepth > MaxProofDepth {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidDepth, treeDepth)
	}
	index := -1
	for i, h := range hashes {
		if h == hash {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, 0, fmt.Errorf("%w: %s", ErrMessageNotFound, hash.Hex())
	}

	size := 1 << treeDepth
	start := (index / size) * size
	end := start + size
	if end > len(hashes) {
		end = len(hashes)
	}

	siblings := make([]common.Hash, size)
	copy(siblings, hashes[start:end])
	return siblings, uint32(index - start), nil
}
