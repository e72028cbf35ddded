package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/etherman"
	"github.com/0xPolygon/postman/gasprice"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	messagedb "github.com/0xPolygon/postman/message/db"
	"github.com/0xPolygon/postman/metrics"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ClaimPersisterConfig configures the supervision of the claims of one direction
type ClaimPersisterConfig struct {
	Direction                message.Direction
	FeeRecipient             common.Address
	MessageSubmissionTimeout time.Duration
	MaxNumberOfRetries       uint
	FeeBumpPercent           uint64
}

// ClaimPersister follows the oldest PENDING claim until it is mined, bumping its fees when it
// stays in the mempool longer than MessageSubmissionTimeout
type ClaimPersister struct {
	cfg      ClaimPersisterConfig
	storage  messagedb.MessageStorage
	contract MessageContract
	client   ChainClient
	fees     gasprice.FeeProvider
	logger   *log.Logger
	timeNow  func() time.Time
}

func NewClaimPersister(
	logger *log.Logger,
	cfg ClaimPersisterConfig,
	storage messagedb.MessageStorage,
	contract MessageContract,
	client ChainClient,
	fees gasprice.FeeProvider,
) *ClaimPersister {
	return &ClaimPersister{
		cfg:      cfg,
		storage:  storage,
		contract: contract,
		client:   client,
		fees:     fees,
		logger:   logger,
		timeNow:  time.Now,
	}
}

// Process checks the oldest PENDING message
func (p *ClaimPersister) Process(ctx context.Context) error {
	msg, err := p.storage.GetFirstPendingMessage(ctx, p.cfg.Direction)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error getting pending message: %w", err)
	}
	if msg.ClaimTxHash == nil {
		return fmt.Errorf("pending message %s has no claim tx", msg.MessageHash.Hex())
	}

	mined, receipt, err := p.client.CheckTxWasMined(ctx, *msg.ClaimTxHash)
	if err != nil {
		return fmt.Errorf("error getting receipt of claim tx %s: %w", msg.ClaimTxHash.Hex(), err)
	}
	if mined {
		return p.finalize(ctx, msg, receipt)
	}

	if msg.ClaimTxAge(p.timeNow()) < p.cfg.MessageSubmissionTimeout {
		p.logger.Debugf("claim tx %s still in flight: messageHash=%s", msg.ClaimTxHash.Hex(), msg.MessageHash.Hex())
		return nil
	}

	status, err := p.contract.GetMessageStatus(ctx, msg)
	if err != nil {
		return fmt.Errorf("error getting on-chain status of message %s: %w", msg.MessageHash.Hex(), err)
	}
	if status == message.OnChainStatusClaimed {
		mined, receipt, err = p.client.CheckTxWasMined(ctx, *msg.ClaimTxHash)
		if err != nil {
			return fmt.Errorf("error getting receipt of claim tx %s: %w", msg.ClaimTxHash.Hex(), err)
		}
		if mined {
			return p.finalize(ctx, msg, receipt)
		}
		p.logger.Infof("message claimed on-chain but receipt of claim tx %s not found yet: messageHash=%s",
			msg.ClaimTxHash.Hex(), msg.MessageHash.Hex())
		return nil
	}

	if msg.ClaimRetryCount >= p.cfg.MaxNumberOfRetries {
		p.logger.Errorf("max number of retries (%d) reached for claim tx %s, manual intervention is needed: messageHash=%s",
			p.cfg.MaxNumberOfRetries, msg.ClaimTxHash.Hex(), msg.MessageHash.Hex())
		return nil
	}
	return p.retry(ctx, msg)
}

// finalize stores the outcome of a mined claim
func (p *ClaimPersister) finalize(ctx context.Context, msg *message.Message, receipt *types.Receipt) error {
	now := p.timeNow()
	msg.SetReceipt(receipt.GasUsed, receipt.EffectiveGasPrice)

	if receipt.Status == types.ReceiptStatusSuccessful {
		msg.SetStatus(message.StatusClaimedSuccess, now)
		p.logger.Infof("message claimed: messageHash=%s, txHash=%s", msg.MessageHash.Hex(), receipt.TxHash.Hex())
	} else {
		rateLimited, err := p.contract.IsRateLimitExceededError(ctx, receipt.TxHash)
		if err != nil {
			return fmt.Errorf("error parsing revert of claim tx %s: %w", receipt.TxHash.Hex(), err)
		}
		if rateLimited {
			msg.Reopen(now)
			p.logger.Warnf("claim tx %s reverted on the rate limit, message reopened: messageHash=%s",
				receipt.TxHash.Hex(), msg.MessageHash.Hex())
		} else {
			msg.SetStatus(message.StatusClaimedReverted, now)
			p.logger.Warnf("claim tx %s reverted: messageHash=%s", receipt.TxHash.Hex(), msg.MessageHash.Hex())
		}
	}

	if err := p.storage.UpdateMessage(ctx, msg); err != nil {
		return fmt.Errorf("error saving outcome of claim tx %s: %w", receipt.TxHash.Hex(), err)
	}
	metrics.MessageTransitions.WithLabelValues(p.cfg.Direction.String(), msg.Status.String()).Inc()
	return nil
}

// retry resubmits the claim with the same nonce and bumped fees
func (p *ClaimPersister) retry(ctx context.Context, msg *message.Message) error {
	req, err := p.retryRequest(ctx, msg)
	if err != nil {
		return err
	}

	tx, err := p.client.SendTx(ctx, req)
	if err != nil {
		return fmt.Errorf("error resubmitting claim of message %s: %w", msg.MessageHash.Hex(), err)
	}
	previous := *msg.ClaimTxHash
	msg.SetRetry(message.ClaimTx{
		Hash:                 tx.Hash(),
		Nonce:                tx.Nonce(),
		GasLimit:             tx.Gas(),
		MaxFeePerGas:         tx.GasFeeCap(),
		MaxPriorityFeePerGas: tx.GasTipCap(),
	}, p.timeNow())
	if err := p.storage.UpdateMessage(ctx, msg); err != nil {
		return fmt.Errorf("error saving resubmitted claim tx %s: %w", tx.Hash().Hex(), err)
	}

	metrics.ClaimTxsSent.WithLabelValues(p.cfg.Direction.String(), metrics.ClaimKindFeeBump).Inc()
	p.logger.Infof("claim tx %s replaced by %s (retry %d): messageHash=%s, maxFeePerGas=%s, maxPriorityFeePerGas=%s",
		previous.Hex(), tx.Hash().Hex(), msg.ClaimRetryCount, msg.MessageHash.Hex(), req.MaxFeePerGas, req.MaxPriorityFeePerGas)
	return nil
}

// retryRequest copies the stuck tx with bumped fees. Legacy txs are priced with a fresh quote. When the
// node dropped the tx the claim is rebuilt from the stored fields
func (p *ClaimPersister) retryRequest(ctx context.Context, msg *message.Message) (etherman.TxRequest, error) {
	tx, _, err := p.client.TransactionByHash(ctx, *msg.ClaimTxHash)
	if errors.Is(err, ethereum.NotFound) {
		return p.rebuildRequest(ctx, msg)
	} else if err != nil {
		return etherman.TxRequest{}, fmt.Errorf("error getting claim tx %s: %w", msg.ClaimTxHash.Hex(), err)
	}

	var fees gasprice.GasFees
	if tx.Type() == types.LegacyTxType {
		if fees, err = p.fees.GetGasFees(ctx); err != nil {
			return etherman.TxRequest{}, fmt.Errorf("error getting gas fees: %w", err)
		}
	} else {
		fees = gasprice.BumpFees(gasprice.GasFees{
			MaxFeePerGas:         tx.GasFeeCap(),
			MaxPriorityFeePerGas: tx.GasTipCap(),
		}, p.cfg.FeeBumpPercent, p.fees.MaxFeePerGasCap())
	}
	if tx.To() == nil {
		return etherman.TxRequest{}, fmt.Errorf("claim tx %s has no recipient", msg.ClaimTxHash.Hex())
	}
	return etherman.TxRequest{
		Nonce:                tx.Nonce(),
		To:                   *tx.To(),
		Value:                tx.Value(),
		Data:                 tx.Data(),
		GasLimit:             tx.Gas(),
		MaxFeePerGas:         fees.MaxFeePerGas,
		MaxPriorityFeePerGas: fees.MaxPriorityFeePerGas,
	}, nil
}

func (p *ClaimPersister) rebuildRequest(ctx context.Context, msg *message.Message) (etherman.TxRequest, error) {
	if msg.ClaimTxNonce == nil || msg.ClaimTxGasLimit == nil {
		return etherman.TxRequest{}, fmt.Errorf("claim tx %s not found and not enough data stored to rebuild it",
			msg.ClaimTxHash.Hex())
	}
	from, err := p.client.From()
	if err != nil {
		return etherman.TxRequest{}, err
	}
	call, err := p.contract.ClaimCall(ctx, msg, from, p.cfg.FeeRecipient)
	if err != nil {
		return etherman.TxRequest{}, fmt.Errorf("error rebuilding claim of message %s: %w", msg.MessageHash.Hex(), err)
	}
	fees := gasprice.BumpFees(gasprice.GasFees{
		MaxFeePerGas:         msg.ClaimTxMaxFeePerGas,
		MaxPriorityFeePerGas: msg.ClaimTxMaxPriorityFeePerGas,
	}, p.cfg.FeeBumpPercent, p.fees.MaxFeePerGasCap())
	p.logger.Warnf("claim tx %s not found, rebuilding it: messageHash=%s", msg.ClaimTxHash.Hex(), msg.MessageHash.Hex())
	return etherman.TxRequest{
		Nonce:                *msg.ClaimTxNonce,
		To:                   *call.To,
		Data:                 call.Data,
		GasLimit:             *msg.ClaimTxGasLimit,
		MaxFeePerGas:         fees.MaxFeePerGas,
		MaxPriorityFeePerGas: fees.MaxPriorityFeePerGas,
	}, nil
}
