package message

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Direction tells which chain a message leaves and which one it is claimed on
type Direction string

const (
	DirectionL1ToL2 Direction = "L1_TO_L2"
	DirectionL2ToL1 Direction = "L2_TO_L1"
)

// Directions lists both pipelines
var Directions = []Direction{DirectionL1ToL2, DirectionL2ToL1}

// ParseDirection validates a direction name
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionL1ToL2, DirectionL2ToL1:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// ClaimsOnL1 is true for the direction whose claims need a merkle proof
func (d Direction) ClaimsOnL1() bool {
	return d == DirectionL2ToL1
}

func (d Direction) String() string {
	return string(d)
}

// Cursor is the position, inclusive, from where MessageSent events are read
type Cursor struct {
	FromBlock    uint64
	FromLogIndex uint
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d/%d", c.FromBlock, c.FromLogIndex)
}

// SentEvent is a decoded MessageSent log
type SentEvent struct {
	MessageHash     common.Hash
	MessageSender   common.Address
	Destination     common.Address
	Fee             *big.Int
	Value           *big.Int
	MessageNonce    *big.Int
	Calldata        []byte
	ContractAddress common.Address
	BlockNumber     uint64
	LogIndex        uint
	TxHash          common.Hash
}

// Message is the persisted view of a cross chain message and of its claim
type Message struct {
	ID                          int64          `meddler:"id,pk"`
	MessageHash                 common.Hash    `meddler:"message_hash,hash"`
	Direction                   Direction      `meddler:"direction"`
	ContractAddress             common.Address `meddler:"contract_address,address"`
	MessageSender               common.Address `meddler:"message_sender,address"`
	Destination                 common.Address `meddler:"destination,address"`
	Fee                         *big.Int       `meddler:"fee,bigint"`
	Value                       *big.Int       `meddler:"value,bigint"`
	MessageNonce                *big.Int       `meddler:"message_nonce,bigint"`
	Calldata                    []byte         `meddler:"calldata,hexbytes"`
	SentBlockNumber             uint64         `meddler:"sent_block_number"`
	SentLogIndex                uint           `meddler:"sent_log_index"`
	Status                      Status         `meddler:"status"`
	ClaimTxHash                 *common.Hash   `meddler:"claim_tx_hash,hash"`
	ClaimTxNonce                *uint64        `meddler:"claim_tx_nonce"`
	ClaimTxGasLimit             *uint64        `meddler:"claim_tx_gas_limit"`
	ClaimTxMaxFeePerGas         *big.Int       `meddler:"claim_tx_max_fee_per_gas,bigint"`
	ClaimTxMaxPriorityFeePerGas *big.Int       `meddler:"claim_tx_max_priority_fee_per_gas,bigint"`
	ClaimTxCreatedAt            *int64         `meddler:"claim_tx_created_at"`
	ClaimTxGasUsed              *uint64        `meddler:"claim_tx_gas_used"`
	ClaimTxGasPrice             *big.Int       `meddler:"claim_tx_gas_price,bigint"`
	ClaimRetryCount             uint           `meddler:"claim_retry_count"`
	ClaimLastRetriedAt          *int64         `meddler:"claim_last_retried_at"`
	ClaimGasEstimationThreshold *float64       `meddler:"claim_gas_estimation_threshold"`
	CreatedAt                   int64          `meddler:"created_at"`
	UpdatedAt                   int64          `meddler:"updated_at"`
}

// NewFromSentEvent builds the record stored for a freshly observed event
func NewFromSentEvent(ev SentEvent, direction Direction, status Status, now time.Time) *Message {
	return &Message{
		MessageHash:     ev.MessageHash,
		Direction:       direction,
		ContractAddress: ev.ContractAddress,
		MessageSender:   ev.MessageSender,
		Destination:     ev.Destination,
		Fee:             bigOrZero(ev.Fee),
		Value:           bigOrZero(ev.Value),
		MessageNonce:    bigOrZero(ev.MessageNonce),
		Calldata:        ev.Calldata,
		SentBlockNumber: ev.BlockNumber,
		SentLogIndex:    ev.LogIndex,
		Status:          status,
		CreatedAt:       now.Unix(),
		UpdatedAt:       now.Unix(),
	}
}

// Cursor returns the position of the event that created the message
func (m *Message) Cursor() Cursor {
	return Cursor{FromBlock: m.SentBlockNumber, FromLogIndex: m.SentLogIndex}
}

// HasZeroFee is true when the sender did not pay anything for the claim
func (m *Message) HasZeroFee() bool {
	return m.Fee == nil || m.Fee.Sign() == 0
}

// IsEOATarget is true when the message carries no calldata
func (m *Message) IsEOATarget() bool {
	return len(m.Calldata) == 0
}

// SetStatus moves the message to status
func (m *Message) SetStatus(status Status, now time.Time) {
	m.Status = status
	m.UpdatedAt = now.Unix()
}

// SetGasEstimationThreshold records fee / estimatedGas
func (m *Message) SetGasEstimationThreshold(estimatedGas uint64, now time.Time) {
	if estimatedGas == 0 || m.Fee == nil {
		return
	}
	threshold, _ := new(big.Float).Quo(
		new(big.Float).SetInt(m.Fee),
		new(big.Float).SetUint64(estimatedGas),
	).Float64()
	m.ClaimGasEstimationThreshold = &threshold
	m.UpdatedAt = now.Unix()
}

// ClaimTx describes a submitted claim transaction
type ClaimTx struct {
	Hash                 common.Hash
	Nonce                uint64
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// SetClaimTx fills the claim fields of a first submission and moves the message to PENDING
func (m *Message) SetClaimTx(tx ClaimTx, now time.Time) {
	m.setClaimTxFields(tx)
	created := now.Unix()
	m.ClaimTxCreatedAt = &created
	m.SetStatus(StatusPending, now)
}

// SetRetry records a resubmission of the claim
func (m *Message) SetRetry(tx ClaimTx, now time.Time) {
	m.setClaimTxFields(tx)
	retried := now.Unix()
	m.ClaimRetryCount++
	m.ClaimLastRetriedAt = &retried
	m.SetStatus(StatusPending, now)
}

func (m *Message) setClaimTxFields(tx ClaimTx) {
	hash := tx.Hash
	nonce := tx.Nonce
	gasLimit := tx.GasLimit
	m.ClaimTxHash = &hash
	m.ClaimTxNonce = &nonce
	m.ClaimTxGasLimit = &gasLimit
	m.ClaimTxMaxFeePerGas = tx.MaxFeePerGas
	m.ClaimTxMaxPriorityFeePerGas = tx.MaxPriorityFeePerGas
}

// SetReceipt stores the gas data of the finalized claim
func (m *Message) SetReceipt(gasUsed uint64, effectiveGasPrice *big.Int) {
	m.ClaimTxGasUsed = &gasUsed
	m.ClaimTxGasPrice = effectiveGasPrice
}

// Reopen sends a reverted claim back to the claiming queue
func (m *Message) Reopen(now time.Time) {
	m.ClaimGasEstimationThreshold = nil
	m.SetStatus(StatusSent, now)
}

// ClaimTxAge returns how long the current claim tx has been waiting, counted
// from the latest of its submission and its last fee bump
func (m *Message) ClaimTxAge(now time.Time) time.Duration {
	var since int64
	if m.ClaimTxCreatedAt != nil {
		since = *m.ClaimTxCreatedAt
	}
	if m.ClaimLastRetriedAt != nil && *m.ClaimLastRetriedAt > since {
		since = *m.ClaimLastRetriedAt
	}
	if since == 0 {
		return 0
	}
	return now.Sub(time.Unix(since, 0))
}

func (m *Message) String() string {
	return fmt.Sprintf("messageHash=%s direction=%s status=%s sentBlock=%d",
		m.MessageHash.Hex(), m.Direction, m.Status, m.SentBlockNumber)
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(v)
}
