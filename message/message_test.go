package message

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestStatusIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusSent, StatusAnchored, StatusPending} {
		require.False(t, s.IsTerminal(), s)
		require.True(t, s.IsValid(), s)
	}
	for _, s := range TerminalStatuses {
		require.True(t, s.IsTerminal(), s)
		require.True(t, s.IsValid(), s)
	}
	require.False(t, Status("CLAIM_SUBMITTED").IsValid())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("L2_TO_L1")
	require.NoError(t, err)
	require.True(t, d.ClaimsOnL1())

	d, err = ParseDirection("L1_TO_L2")
	require.NoError(t, err)
	require.False(t, d.ClaimsOnL1())

	_, err = ParseDirection("L3_TO_L1")
	require.Error(t, err)
}

func TestNewFromSentEvent(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ev := SentEvent{
		MessageHash: common.HexToHash("0xaa"),
		Fee:         big.NewInt(10),
		BlockNumber: 42,
		LogIndex:    3,
	}
	m := NewFromSentEvent(ev, DirectionL1ToL2, StatusSent, now)
	require.Equal(t, Cursor{FromBlock: 42, FromLogIndex: 3}, m.Cursor())
	require.Equal(t, big.NewInt(0), m.Value)
	require.Equal(t, now.Unix(), m.CreatedAt)
	require.True(t, m.IsEOATarget())
	require.False(t, m.HasZeroFee())
	require.Nil(t, m.ClaimTxHash)
	require.Nil(t, m.ClaimTxNonce)
}

func TestGasEstimationThreshold(t *testing.T) {
	m := &Message{Fee: big.NewInt(1_000_000)}
	m.SetGasEstimationThreshold(0, time.Now())
	require.Nil(t, m.ClaimGasEstimationThreshold)

	m.SetGasEstimationThreshold(100_000, time.Now())
	require.NotNil(t, m.ClaimGasEstimationThreshold)
	require.InDelta(t, 10.0, *m.ClaimGasEstimationThreshold, 1e-9)

	m.Reopen(time.Now())
	require.Nil(t, m.ClaimGasEstimationThreshold)
	require.Equal(t, StatusSent, m.Status)
}

func TestClaimLifecycle(t *testing.T) {
	created := time.Unix(1000, 0)
	m := &Message{Status: StatusAnchored}
	require.Zero(t, m.ClaimTxAge(created))

	m.SetClaimTx(ClaimTx{Hash: common.HexToHash("0x01"), Nonce: 7, GasLimit: 100_000,
		MaxFeePerGas: big.NewInt(2), MaxPriorityFeePerGas: big.NewInt(1)}, created)
	require.Equal(t, StatusPending, m.Status)
	require.Equal(t, uint64(7), *m.ClaimTxNonce)
	require.Equal(t, 30*time.Second, m.ClaimTxAge(created.Add(30*time.Second)))

	retried := created.Add(time.Minute)
	m.SetRetry(ClaimTx{Hash: common.HexToHash("0x02"), Nonce: 7, GasLimit: 100_000,
		MaxFeePerGas: big.NewInt(3), MaxPriorityFeePerGas: big.NewInt(2)}, retried)
	require.Equal(t, uint(1), m.ClaimRetryCount)
	require.Equal(t, common.HexToHash("0x02"), *m.ClaimTxHash)
	require.Equal(t, created.Unix(), *m.ClaimTxCreatedAt)
	require.Equal(t, 10*time.Second, m.ClaimTxAge(retried.Add(10*time.Second)))

	m.SetReceipt(21_000, big.NewInt(5))
	require.Equal(t, uint64(21_000), *m.ClaimTxGasUsed)
}
