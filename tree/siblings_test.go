package tree

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGetMessageSiblings(t *testing.T) {
	hashes := []common.Hash{
		common.HexToHash("0x01"),
		common.HexToHash("0x02"),
		common.HexToHash("0x03"),
		common.HexToHash("0x04"),
		common.HexToHash("0x05"),
	}

	siblings, index, err := GetMessageSiblings(hashes[4], hashes, 2)
	require.NoError(t, err)
	require.Equal(t, []common.Hash{hashes[4], {}, {}, {}}, siblings)
	require.Equal(t, uint32(0), index)

	siblings, index, err = GetMessageSiblings(hashes[2], hashes, 2)
	require.NoError(t, err)
	require.Equal(t, hashes[:4], siblings)
	require.Equal(t, uint32(2), index)

	_, _, err = GetMessageSiblings(common.HexToHash("0xff"), hashes, 2)
	require.ErrorIs(t, err, ErrMessageNotFound)

	_, _, err = GetMessageSiblings(hashes[0], hashes, 0)
	require.ErrorIs(t, err, ErrInvalidDepth)
	_, _, err = GetMessageSiblings(hashes[0], hashes, MaxProofDepth+1)
	require.ErrorIs(t, err, ErrInvalidDepth)
	_, _, err = GetMessageSiblings(hashes[0], hashes, MaxDepth)
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestGetMessageSiblingsWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.Uint8Range(1, 6).Draw(t, "depth")
		n := rapid.IntRange(1, 200).Draw(t, "n")
		hashes := make([]common.Hash, n)
		for i := range hashes {
			hashes[i] = common.BytesToHash([]byte{byte(i >> 8), byte(i), 0xaa})
		}
		target := rapid.IntRange(0, n-1).Draw(t, "target")

		siblings, index, err := GetMessageSiblings(hashes[target], hashes, depth)
		if err != nil {
			t.Fatal(err)
		}
		if len(siblings) != 1<<depth {
			t.Fatalf("got %d siblings, expected %d", len(siblings), 1<<depth)
		}
		if siblings[index] != hashes[target] {
			t.Fatalf("target not at reported index")
		}
		for i := range siblings {
			global := target - int(index) + i
			if global < n && siblings[i] != hashes[global] {
				t.Fatalf("wrong hash at %d", i)
			}
			if global >= n && siblings[i] != (common.Hash{}) {
				t.Fatalf("missing zero padding at %d", i)
			}
		}
	})
}
