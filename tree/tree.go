package tree

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// MaxDepth is the deepest tree that can be addressed with uint32 keys
const MaxDepth uint8 = 32

var (
	// ErrLeafNotFound is returned when asking for the proof of a leaf never set
	ErrLeafNotFound = errors.New("leaf not found")
	// ErrKeyOutOfRange is returned when a key does not fit in the tree
	ErrKeyOutOfRange = errors.New("key out of range")
	// ErrInvalidDepth is returned for depths outside [1, MaxDepth]
	ErrInvalidDepth = errors.New("invalid tree depth")
)

// Proof is the inclusion proof of Leaf at LeafIndex. Siblings go from the leaf level up to the root
type Proof struct {
	Siblings  []common.Hash
	Root      common.Hash
	LeafIndex uint32
	Leaf      common.Hash
}

type treeNode struct {
	Hash  common.Hash
	Left  common.Hash
	Right common.Hash
}

func newTreeNode(left, right common.Hash) treeNode {
	return treeNode{
		Hash:  hashPair(left, right),
		Left:  left,
		Right: right,
	}
}

func hashPair(left, right common.Hash) common.Hash {
	var hash common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(left[:])
	hasher.Write(right[:])
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// SparseMerkleTree is an in memory keccak256 merkle tree of fixed depth where unset
// leaves hold the zero hash. Nodes are stored by hash, untouched subtrees are never materialised
type SparseMerkleTree struct {
	depth      uint8
	root       common.Hash
	nodes      map[common.Hash]treeNode
	leaves     map[uint32]common.Hash
	zeroHashes []common.Hash
}

// NewSparseMerkleTree returns an empty tree of the given depth
func NewSparseMerkleTree(depth uint8) (*SparseMerkleTree, error) {
	if depth == 0 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	zeroHashes := generateZeroHashes(depth)
	return &SparseMerkleTree{
		depth:      depth,
		root:       zeroHashes[depth],
		nodes:      make(map[common.Hash]treeNode),
		leaves:     make(map[uint32]common.Hash),
		zeroHashes: zeroHashes,
	}, nil
}

// Depth returns the number of levels above the leaves
func (t *SparseMerkleTree) Depth() uint8 {
	return t.depth
}

// GetRoot returns the current root
func (t *SparseMerkleTree) GetRoot() common.Hash {
	return t.root
}

// AddLeaf sets the leaf at key and recomputes the path up to the root
func (t *SparseMerkleTree) AddLeaf(key uint32, value common.Hash) error {
	if !t.fits(key) {
		return fmt.Errorf("%w: %d for depth %d", ErrKeyOutOfRange, key, t.depth)
	}
	siblings, _ := t.getSiblings(key)

	current := value
	for h := 0; h < int(t.depth); h++ {
		var node treeNode
		if key&(1<<h) > 0 {
			node = newTreeNode(siblings[h], current)
		} else {
			node = newTreeNode(current, siblings[h])
		}
		t.nodes[node.Hash] = node
		current = node.Hash
	}
	t.root = current
	t.leaves[key] = value
	return nil
}

// GetProof returns the inclusion proof of the leaf at key
func (t *SparseMerkleTree) GetProof(key uint32) (Proof, error) {
	leaf, ok := t.leaves[key]
	if !ok {
		return Proof{}, fmt.Errorf("%w: %d", ErrLeafNotFound, key)
	}
	siblings, _ := t.getSiblings(key)
	return Proof{
		Siblings:  siblings,
		Root:      t.root,
		LeafIndex: key,
		Leaf:      leaf,
	}, nil
}

// getSiblings walks from the root to the leaf at index, following the bits of
// the index from the most significant one. siblings[h] is the sibling at level h,
// level 0 being the leaves, so the result is ordered leaf to root
func (t *SparseMerkleTree) getSiblings(index uint32) (siblings []common.Hash, leaf common.Hash) {
	siblings = make([]common.Hash, t.depth)
	currentNodeHash := t.root
	// It starts in depth-1 because 0 is the level of the leafs
	for h := int(t.depth) - 1; h >= 0; h-- {
		left, right := t.children(currentNodeHash, h)
		if index&(1<<h) > 0 {
			siblings[h] = left
			currentNodeHash = right
		} else {
			siblings[h] = right
			currentNodeHash = left
		}
	}
	return siblings, currentNodeHash
}

// children returns the children, at level h, of the node identified by hash.
// Nodes not stored belong to empty subtrees
func (t *SparseMerkleTree) children(hash common.Hash, h int) (common.Hash, common.Hash) {
	if node, ok := t.nodes[hash]; ok {
		return node.Left, node.Right
	}
	return t.zeroHashes[h], t.zeroHashes[h]
}

func (t *SparseMerkleTree) fits(key uint32) bool {
	return t.depth == MaxDepth || uint64(key) < uint64(1)<<t.depth
}

// CalculateRoot hashes leaf up through siblings, ordered leaf to root
func CalculateRoot(leaf common.Hash, siblings []common.Hash, index uint32) common.Hash {
	current := leaf
	for h, sibling := range siblings {
		if index&(1<<h) > 0 {
			current = hashPair(sibling, current)
		} else {
			current = hashPair(current, sibling)
		}
	}
	return current
}

// VerifyProof checks that proof takes its leaf to its root
func VerifyProof(proof Proof) bool {
	return CalculateRoot(proof.Leaf, proof.Siblings, proof.LeafIndex) == proof.Root
}

func generateZeroHashes(height uint8) []common.Hash {
	var zeroHashes = []common.Hash{
		{},
	}
	// Position 0 is the empty leaf. Position i is the root of an empty subtree of height i
	for i := 1; i <= int(height); i++ {
		zeroHashes = append(zeroHashes, hashPair(zeroHashes[i-1], zeroHashes[i-1]))
	}
	return zeroHashes
}
