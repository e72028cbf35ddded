package types

import (
	"math/big"

	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/tree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Message is the RPC view of a stored message
type Message struct {
	MessageHash     common.Hash    `json:"messageHash"`
	Direction       string         `json:"direction"`
	ContractAddress common.Address `json:"contractAddress"`
	MessageSender   common.Address `json:"messageSender"`
	Destination     common.Address `json:"destination"`
	Fee             *big.Int       `json:"fee"`
	Value           *big.Int       `json:"value"`
	MessageNonce    *big.Int       `json:"messageNonce"`
	Calldata        hexutil.Bytes  `json:"calldata"`
	SentBlockNumber uint64         `json:"sentBlockNumber"`
	SentLogIndex    uint           `json:"sentLogIndex"`
	Status          string         `json:"status"`
	ClaimTxHash     *common.Hash   `json:"claimTxHash,omitempty"`
	ClaimTxNonce    *uint64        `json:"claimTxNonce,omitempty"`
	ClaimTxGasUsed  *uint64        `json:"claimTxGasUsed,omitempty"`
	ClaimTxGasPrice *big.Int       `json:"claimTxGasPrice,omitempty"`
	ClaimRetryCount uint           `json:"claimRetryCount"`
	CreatedAt       int64          `json:"createdAt"`
	UpdatedAt       int64          `json:"updatedAt"`
}

func NewMessage(m *message.Message) Message {
	return Message{
		MessageHash:     m.MessageHash,
		Direction:       m.Direction.String(),
		ContractAddress: m.ContractAddress,
		MessageSender:   m.MessageSender,
		Destination:     m.Destination,
		Fee:             m.Fee,
		Value:           m.Value,
		MessageNonce:    m.MessageNonce,
		Calldata:        m.Calldata,
		SentBlockNumber: m.SentBlockNumber,
		SentLogIndex:    m.SentLogIndex,
		Status:          m.Status.String(),
		ClaimTxHash:     m.ClaimTxHash,
		ClaimTxNonce:    m.ClaimTxNonce,
		ClaimTxGasUsed:  m.ClaimTxGasUsed,
		ClaimTxGasPrice: m.ClaimTxGasPrice,
		ClaimRetryCount: m.ClaimRetryCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// MessageProof is what claimMessageWithProof needs besides the message itself
type MessageProof struct {
	MessageHash common.Hash   `json:"messageHash"`
	Proof       []common.Hash `json:"proof"`
	Root        common.Hash   `json:"root"`
	LeafIndex   uint32        `json:"leafIndex"`
}

func NewMessageProof(hash common.Hash, p tree.Proof) MessageProof {
	return MessageProof{
		MessageHash: hash,
		Proof:       p.Siblings,
		Root:        p.Root,
		LeafIndex:   p.LeafIndex,
	}
}
