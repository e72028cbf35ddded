package messageservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/tree"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

// DefaultRateLimitMargin is the share of the rate limit the relayer is willing to consume
const DefaultRateLimitMargin = 0.95

const marginScale = 1_000_000

// ContractCaller executes read calls and looks up txs
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error)
}

// ProofProvider returns the inclusion proof of a L2 message
type ProofProvider interface {
	GetMessageProof(ctx context.Context, msg *message.Message) (tree.Proof, error)
}

// messageService holds what both message service contracts have in common
type messageService struct {
	address         common.Address
	contractABI     abi.ABI
	caller          ContractCaller
	rateLimitMargin float64
	logger          *log.Logger
}

// Address returns the address of the contract
func (c *messageService) Address() common.Address {
	return c.address
}

func (c *messageService) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("error packing %s: %w", method, err)
	}
	to := c.address
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", method, err)
	}
	values, err := c.contractABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("error unpacking %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s output length %d", method, len(values))
	}
	return values, nil
}

func (c *messageService) callBigInt(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	values, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s output type %T", method, values[0])
	}
	return v, nil
}

// IsRateLimitExceeded reports whether claiming fee+value would take the withdrawals of the current
// period beyond the rate limit, minus a safety margin
func (c *messageService) IsRateLimitExceeded(ctx context.Context, fee, value *big.Int) (bool, error) {
	limit, err := c.callBigInt(ctx, "limitInWei")
	if err != nil {
		return false, err
	}
	current, err := c.callBigInt(ctx, "currentPeriodAmountInWei")
	if err != nil {
		return false, err
	}
	total := new(big.Int).Add(current, fee)
	total.Add(total, value)

	// total > limit * margin, with the margin in fixed point
	total.Mul(total, big.NewInt(marginScale))
	allowed := new(big.Int).Mul(limit, big.NewInt(int64(math.Round(c.rateLimitMargin*marginScale))))
	return total.Cmp(allowed) > 0, nil
}

// IsRateLimitExceededError replays the tx txHash as a call and reports whether it reverts with
// the RateLimitExceeded error
func (c *messageService) IsRateLimitExceededError(ctx context.Context, txHash common.Hash) (bool, error) {
	name, err := c.ParseTransactionError(ctx, txHash)
	if err != nil {
		return false, err
	}
	return name == rateLimitExceededError, nil
}

// ParseTransactionError replays the tx txHash and returns the name of the custom error it reverts
// with, or an empty string if the revert data does not match any error of the contract
func (c *messageService) ParseTransactionError(ctx context.Context, txHash common.Hash) (string, error) {
	tx, _, err := c.caller.TransactionByHash(ctx, txHash)
	if err != nil {
		return "", fmt.Errorf("error getting tx %s: %w", txHash.Hex(), err)
	}
	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return "", fmt.Errorf("error recovering sender of tx %s: %w", txHash.Hex(), err)
	}
	call := ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	if tx.Type() == types.LegacyTxType {
		call.GasPrice = tx.GasPrice()
	} else {
		call.GasFeeCap = tx.GasFeeCap()
		call.GasTipCap = tx.GasTipCap()
	}

	_, err = c.caller.CallContract(ctx, call, nil)
	if err == nil {
		return "", nil
	}
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		c.logger.Debugf("replay of tx %s failed without revert data: %v", txHash.Hex(), err)
		return "", nil
	}
	encoded, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", nil
	}
	data, err := hexutil.Decode(encoded)
	if err != nil {
		return "", nil
	}
	name, _ := decodeErrorName(c.contractABI, data)
	return name, nil
}

// L2Contract is the message service on L2, where L1 to L2 messages are claimed
type L2Contract struct {
	messageService
}

// NewL2Contract returns the L2 message service at address
func NewL2Contract(logger *log.Logger, caller ContractCaller, address common.Address, rateLimitMargin float64) *L2Contract {
	return &L2Contract{messageService{
		address:         address,
		contractABI:     L2MessageServiceABI,
		caller:          caller,
		rateLimitMargin: rateLimitMargin,
		logger:          logger,
	}}
}

// GetMessageStatus reads the inbox status of a L1 to L2 message
func (c *L2Contract) GetMessageStatus(ctx context.Context, msg *message.Message) (message.OnChainStatus, error) {
	status, err := c.callBigInt(ctx, "inboxL1L2MessageStatus", msg.MessageHash)
	if err != nil {
		return message.OnChainStatusUnknown, err
	}
	switch status.Uint64() {
	case 1:
		return message.OnChainStatusClaimable, nil
	case 2:
		return message.OnChainStatusClaimed, nil
	default:
		return message.OnChainStatusUnknown, nil
	}
}

// ClaimCall builds the claimMessage call of msg sent by from
func (c *L2Contract) ClaimCall(
	_ context.Context, msg *message.Message, from, feeRecipient common.Address,
) (ethereum.CallMsg, error) {
	data, err := c.contractABI.Pack("claimMessage",
		msg.MessageSender, msg.Destination, msg.Fee, msg.Value, feeRecipient, msg.Calldata, msg.MessageNonce)
	if err != nil {
		return ethereum.CallMsg{}, fmt.Errorf("error packing claimMessage: %w", err)
	}
	to := c.address
	return ethereum.CallMsg{From: from, To: &to, Data: data}, nil
}

// L1Contract is the rollup contract on L1, where L2 to L1 messages are claimed with a proof
type L1Contract struct {
	messageService
	logs   *LogClient
	proofs ProofProvider
}

// NewL1Contract returns the L1 message service at address. logs must read the same contract
func NewL1Contract(logger *log.Logger, caller ContractCaller, address common.Address, rateLimitMargin float64,
	logs *LogClient, proofs ProofProvider) *L1Contract {
	return &L1Contract{
		messageService: messageService{
			address:         address,
			contractABI:     L1MessageServiceABI,
			caller:          caller,
			rateLimitMargin: rateLimitMargin,
			logger:          logger,
		},
		logs:   logs,
		proofs: proofs,
	}
}

// claimMessageWithProofParams mirrors the tuple taken by claimMessageWithProof
type claimMessageWithProofParams struct {
	Proof         [][32]byte
	MessageNumber *big.Int
	LeafIndex     uint32
	From          common.Address
	To            common.Address
	Fee           *big.Int
	Value         *big.Int
	FeeRecipient  common.Address
	MerkleRoot    [32]byte
	Data          []byte
}

// GetMessageStatus reads the status of a L2 to L1 message: claimed if its nonce is marked as
// claimed, claimable once its L2 block has been anchored
func (c *L1Contract) GetMessageStatus(ctx context.Context, msg *message.Message) (message.OnChainStatus, error) {
	values, err := c.call(ctx, "isMessageClaimed", msg.MessageNonce)
	if err != nil {
		return message.OnChainStatusUnknown, err
	}
	claimed, ok := values[0].(bool)
	if !ok {
		return message.OnChainStatusUnknown, fmt.Errorf("unexpected isMessageClaimed output type %T", values[0])
	}
	if claimed {
		return message.OnChainStatusClaimed, nil
	}

	anchored, err := c.logs.GetL2MessagingBlockAnchoredEvents(ctx, msg.SentBlockNumber)
	if err != nil {
		return message.OnChainStatusUnknown, err
	}
	if len(anchored) > 0 {
		return message.OnChainStatusClaimable, nil
	}
	return message.OnChainStatusUnknown, nil
}

// ClaimCall builds the claimMessageWithProof call of msg sent by from
func (c *L1Contract) ClaimCall(
	ctx context.Context, msg *message.Message, from, feeRecipient common.Address,
) (ethereum.CallMsg, error) {
	proof, err := c.proofs.GetMessageProof(ctx, msg)
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	siblings := make([][32]byte, len(proof.Siblings))
	for i, s := range proof.Siblings {
		siblings[i] = s
	}
	data, err := c.contractABI.Pack("claimMessageWithProof", claimMessageWithProofParams{
		Proof:         siblings,
		MessageNumber: msg.MessageNonce,
		LeafIndex:     proof.LeafIndex,
		From:          msg.MessageSender,
		To:            msg.Destination,
		Fee:           msg.Fee,
		Value:         msg.Value,
		FeeRecipient:  feeRecipient,
		MerkleRoot:    proof.Root,
		Data:          msg.Calldata,
	})
	if err != nil {
		return ethereum.CallMsg{}, fmt.Errorf("error packing claimMessageWithProof: %w", err)
	}
	to := c.address
	return ethereum.CallMsg{From: from, To: &to, Data: data}, nil
}
