package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	messagedb "github.com/0xPolygon/postman/message/db"
	"github.com/0xPolygon/postman/metrics"
)

// AnchoringProcessorConfig configures the anchoring stage of one direction
type AnchoringProcessorConfig struct {
	Direction              message.Direction
	MaxFetchMessagesFromDB uint
}

// AnchoringProcessor moves SENT messages to ANCHORED once the destination chain can claim them
type AnchoringProcessor struct {
	cfg      AnchoringProcessorConfig
	storage  messagedb.MessageStorage
	contract MessageContract
	logger   *log.Logger
	timeNow  func() time.Time
}

func NewAnchoringProcessor(
	logger *log.Logger,
	cfg AnchoringProcessorConfig,
	storage messagedb.MessageStorage,
	contract MessageContract,
) *AnchoringProcessor {
	return &AnchoringProcessor{
		cfg:      cfg,
		storage:  storage,
		contract: contract,
		logger:   logger,
		timeNow:  time.Now,
	}
}

// Process reads the on-chain status of the oldest SENT messages and saves the ones that moved
func (p *AnchoringProcessor) Process(ctx context.Context) error {
	msgs, err := p.storage.GetNFirstMessagesSent(ctx, p.cfg.Direction, p.cfg.MaxFetchMessagesFromDB)
	if err != nil {
		return fmt.Errorf("error getting SENT messages: %w", err)
	}
	if p.cfg.MaxFetchMessagesFromDB > 0 && uint(len(msgs)) == p.cfg.MaxFetchMessagesFromDB {
		p.logger.Warnf("limit of %d SENT messages reached, the backlog may be growing", p.cfg.MaxFetchMessagesFromDB)
	}

	now := p.timeNow()
	updated := make([]*message.Message, 0, len(msgs))
	for _, msg := range msgs {
		status, err := p.contract.GetMessageStatus(ctx, msg)
		if err != nil {
			return fmt.Errorf("error getting on-chain status of message %s: %w", msg.MessageHash.Hex(), err)
		}
		switch status {
		case message.OnChainStatusClaimable:
			msg.SetStatus(message.StatusAnchored, now)
			p.logger.Infof("message anchored: messageHash=%s", msg.MessageHash.Hex())
		case message.OnChainStatusClaimed:
			msg.SetStatus(message.StatusClaimedSuccess, now)
			p.logger.Infof("message already claimed: messageHash=%s", msg.MessageHash.Hex())
		default:
			continue
		}
		updated = append(updated, msg)
	}

	if len(updated) == 0 {
		return nil
	}
	if err := p.storage.SaveMessages(ctx, updated); err != nil {
		return fmt.Errorf("error saving %d anchored messages: %w", len(updated), err)
	}
	for _, msg := range updated {
		metrics.MessageTransitions.WithLabelValues(p.cfg.Direction.String(), msg.Status.String()).Inc()
	}
	return nil
}
