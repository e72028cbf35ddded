package processor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/etherman"
	"github.com/0xPolygon/postman/gasprice"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	messagedb "github.com/0xPolygon/postman/message/db"
	"github.com/0xPolygon/postman/metrics"
	"github.com/ethereum/go-ethereum/common"
)

// profit margins are applied in fixed point with this scale
const marginScale = 1_000_000

// ErrMaxNonceDiffExceeded is returned when the recorded claim nonce is too far ahead of the chain
var ErrMaxNonceDiffExceeded = errors.New("last claim tx nonce is too far ahead of the account nonce")

// ClaimingProcessorConfig configures the claiming stage of one direction
type ClaimingProcessorConfig struct {
	Direction message.Direction
	// FeeRecipient receives the message fee. The zero address lets the contract pay the sender
	FeeRecipient       common.Address
	MaxNonceDiff       uint64
	ProfitMargin       float64
	MaxNumberOfRetries uint
	RetryDelay         time.Duration
	MaxClaimGasLimit   uint64
}

// ClaimingProcessor decides whether the next ANCHORED message is worth claiming and submits its claim
type ClaimingProcessor struct {
	cfg       ClaimingProcessorConfig
	storage   messagedb.MessageStorage
	contract  MessageContract
	client    ChainClient
	estimator gasprice.ClaimEstimator
	logger    *log.Logger
	timeNow   func() time.Time
}

func NewClaimingProcessor(
	logger *log.Logger,
	cfg ClaimingProcessorConfig,
	storage messagedb.MessageStorage,
	contract MessageContract,
	client ChainClient,
	estimator gasprice.ClaimEstimator,
) *ClaimingProcessor {
	return &ClaimingProcessor{
		cfg:       cfg,
		storage:   storage,
		contract:  contract,
		client:    client,
		estimator: estimator,
		logger:    logger,
		timeNow:   time.Now,
	}
}

// Process claims at most one message
func (p *ClaimingProcessor) Process(ctx context.Context) error {
	from, err := p.client.From()
	if err != nil {
		return err
	}
	nonce, err := p.nextNonce(ctx, from)
	if err != nil {
		return err
	}

	fees, err := p.estimator.GetGasFees(ctx)
	if err != nil {
		return fmt.Errorf("error getting gas fees: %w", err)
	}

	msg, err := p.storage.GetFirstMessageToClaim(ctx, p.cfg.Direction,
		p.gasFeesThreshold(fees.MaxFeePerGas), p.cfg.MaxNumberOfRetries, p.cfg.RetryDelay)
	if errors.Is(err, db.ErrNotFound) {
		p.logger.Debug("no message to claim")
		return nil
	} else if err != nil {
		return fmt.Errorf("error getting message to claim: %w", err)
	}

	if msg.HasZeroFee() && p.cfg.ProfitMargin > 0 {
		p.logger.Warnf("zero fee message, it will not be claimed: messageHash=%s", msg.MessageHash.Hex())
		return p.moveTo(ctx, msg, message.StatusZeroFee)
	}

	onChainStatus, err := p.contract.GetMessageStatus(ctx, msg)
	if err != nil {
		return fmt.Errorf("error getting on-chain status of message %s: %w", msg.MessageHash.Hex(), err)
	}
	if onChainStatus == message.OnChainStatusClaimed {
		p.logger.Infof("message already claimed: messageHash=%s", msg.MessageHash.Hex())
		return p.moveTo(ctx, msg, message.StatusClaimedSuccess)
	}

	call, err := p.contract.ClaimCall(ctx, msg, from, p.cfg.FeeRecipient)
	if err != nil {
		return p.handleError(ctx, msg, fmt.Errorf("error building claim call: %w", err))
	}
	estimate, err := p.estimator.EstimateClaim(ctx, call)
	if err != nil {
		return p.handleError(ctx, msg, err)
	}

	msg.SetGasEstimationThreshold(estimate.GasLimit, p.timeNow())
	if err := p.storage.UpdateMessage(ctx, msg); err != nil {
		return fmt.Errorf("error saving gas estimation of message %s: %w", msg.MessageHash.Hex(), err)
	}

	if estimate.GasLimit > p.cfg.MaxClaimGasLimit {
		p.logger.Warnf("estimated gas %d is above the max claim gas limit %d, message will not be claimed: messageHash=%s",
			estimate.GasLimit, p.cfg.MaxClaimGasLimit, msg.MessageHash.Hex())
		return p.moveTo(ctx, msg, message.StatusNonExecutable)
	}

	if p.isUnderpriced(estimate.GasLimit, estimate.MaxFeePerGas, msg.Fee) {
		p.logger.Warnf("fee underpriced, message will not be claimed: messageHash=%s, fee=%s, gasLimit=%d, maxFeePerGas=%s",
			msg.MessageHash.Hex(), msg.Fee, estimate.GasLimit, estimate.MaxFeePerGas)
		return p.moveTo(ctx, msg, message.StatusFeeUnderpriced)
	}

	exceeded, err := p.contract.IsRateLimitExceeded(ctx, msg.Fee, msg.Value)
	if err != nil {
		return fmt.Errorf("error checking rate limit: %w", err)
	}
	if exceeded {
		p.logger.Warnf("rate limit exceeded for this message, it will be reprocessed later: messageHash=%s",
			msg.MessageHash.Hex())
		return nil
	}

	err = p.storage.UpdateMessageWithClaimTxAtomic(ctx, msg, nonce,
		func(ctx context.Context, nonce uint64) (message.ClaimTx, error) {
			tx, err := p.client.SendTx(ctx, etherman.TxRequest{
				Nonce:                nonce,
				To:                   *call.To,
				Data:                 call.Data,
				GasLimit:             estimate.GasLimit,
				MaxFeePerGas:         estimate.MaxFeePerGas,
				MaxPriorityFeePerGas: estimate.MaxPriorityFeePerGas,
			})
			if err != nil {
				return message.ClaimTx{}, err
			}
			return message.ClaimTx{
				Hash:                 tx.Hash(),
				Nonce:                nonce,
				GasLimit:             tx.Gas(),
				MaxFeePerGas:         tx.GasFeeCap(),
				MaxPriorityFeePerGas: tx.GasTipCap(),
			}, nil
		})
	if err != nil {
		return p.handleError(ctx, msg, fmt.Errorf("error submitting claim: %w", err))
	}

	metrics.MessageTransitions.WithLabelValues(p.cfg.Direction.String(), message.StatusPending.String()).Inc()
	p.logger.Infof("claim tx sent: messageHash=%s, txHash=%s, nonce=%d",
		msg.MessageHash.Hex(), msg.ClaimTxHash.Hex(), nonce)
	return nil
}

// nextNonce returns max(account nonce, last claim nonce + 1)
func (p *ClaimingProcessor) nextNonce(ctx context.Context, from common.Address) (uint64, error) {
	chainNonce, err := p.client.CurrentNonce(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("error getting nonce of %s: %w", from.Hex(), err)
	}
	last, err := p.storage.GetLastClaimTxNonce(ctx, p.cfg.Direction)
	if errors.Is(err, db.ErrNotFound) {
		return chainNonce, nil
	} else if err != nil {
		return 0, fmt.Errorf("error getting last claim tx nonce: %w", err)
	}

	if last > chainNonce && last-chainNonce > p.cfg.MaxNonceDiff {
		p.logger.Errorf("last recorded nonce %d is %d ahead of the account nonce %d, max allowed is %d",
			last, last-chainNonce, chainNonce, p.cfg.MaxNonceDiff)
		return 0, ErrMaxNonceDiffExceeded
	}
	return max(chainNonce, last+1), nil
}

// gasFeesThreshold is the minimum fee per unit of gas a message must pay to be picked
func (p *ClaimingProcessor) gasFeesThreshold(maxFeePerGas *big.Int) float64 {
	if maxFeePerGas == nil {
		return 0
	}
	threshold, _ := new(big.Float).Mul(
		new(big.Float).SetInt(maxFeePerGas),
		big.NewFloat(p.cfg.ProfitMargin),
	).Float64()
	return threshold
}

// isUnderpriced reports whether gasLimit * maxFeePerGas * ProfitMargin > fee
func (p *ClaimingProcessor) isUnderpriced(gasLimit uint64, maxFeePerGas, fee *big.Int) bool {
	if maxFeePerGas == nil {
		return false
	}
	cost := new(big.Int).SetUint64(gasLimit)
	cost.Mul(cost, maxFeePerGas)
	cost.Mul(cost, big.NewInt(int64(math.Round(p.cfg.ProfitMargin*marginScale))))

	paid := big.NewInt(0)
	if fee != nil {
		paid.Mul(fee, big.NewInt(marginScale))
	}
	return cost.Cmp(paid) > 0
}

func (p *ClaimingProcessor) moveTo(ctx context.Context, msg *message.Message, status message.Status) error {
	msg.SetStatus(status, p.timeNow())
	if err := p.storage.UpdateMessage(ctx, msg); err != nil {
		return fmt.Errorf("error moving message %s to %s: %w", msg.MessageHash.Hex(), status, err)
	}
	metrics.MessageTransitions.WithLabelValues(p.cfg.Direction.String(), status.String()).Inc()
	return nil
}

// handleError moves msg to NON_EXECUTABLE when err can not be fixed by retrying
func (p *ClaimingProcessor) handleError(ctx context.Context, msg *message.Message, err error) error {
	mitigation := ClassifyError(err)
	if mitigation.ShouldRetry {
		return fmt.Errorf("message %s will be retried (%s): %w", msg.MessageHash.Hex(), mitigation.Reason, err)
	}
	p.logger.Warnf("claim of message %s can not succeed (%s): %v", msg.MessageHash.Hex(), mitigation.Reason, err)
	return p.moveTo(ctx, msg, message.StatusNonExecutable)
}
