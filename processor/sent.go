package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/filter"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	messagedb "github.com/0xPolygon/postman/message/db"
	"github.com/0xPolygon/postman/messageservice"
	"github.com/0xPolygon/postman/metrics"
)

// SentProcessorConfig configures the indexing of MessageSent events of one direction
type SentProcessorConfig struct {
	Direction            message.Direction
	MaxBlocksToFetchLogs uint64
	BlockConfirmation    uint64
	IsEOAEnabled         bool
	IsCalldataEnabled    bool
}

// SentProcessor stores the messages sent on the source chain of a direction
type SentProcessor struct {
	cfg         SentProcessorConfig
	storage     messagedb.MessageStorage
	logs        SentEventReader
	chain       BlockNumberReader
	eventFilter *filter.EventFilter
	logger      *log.Logger
	timeNow     func() time.Time
}

// NewSentProcessor returns the sent processor of cfg.Direction. eventFilter may be nil
func NewSentProcessor(
	logger *log.Logger,
	cfg SentProcessorConfig,
	storage messagedb.MessageStorage,
	logs SentEventReader,
	chain BlockNumberReader,
	eventFilter *filter.EventFilter,
) *SentProcessor {
	return &SentProcessor{
		cfg:         cfg,
		storage:     storage,
		logs:        logs,
		chain:       chain,
		eventFilter: eventFilter,
		logger:      logger,
		timeNow:     time.Now,
	}
}

// Process indexes the events from cursor up to the confirmed head, bounded by MaxBlocksToFetchLogs,
// and returns the cursor of the next call
func (p *SentProcessor) Process(ctx context.Context, cursor message.Cursor) (message.Cursor, error) {
	head, err := p.chain.BlockNumber(ctx)
	if err != nil {
		return cursor, fmt.Errorf("error getting block number: %w", err)
	}

	var toBlock uint64
	if head > p.cfg.BlockConfirmation {
		toBlock = head - p.cfg.BlockConfirmation
	}
	fromBlock, fromLogIndex := cursor.FromBlock, cursor.FromLogIndex
	toBlock = min(toBlock, fromBlock+p.cfg.MaxBlocksToFetchLogs)
	if fromBlock > toBlock {
		fromBlock, fromLogIndex = toBlock, 0
	}

	var eventFilter messageservice.EventFilter
	if p.eventFilter != nil {
		eventFilter = messageservice.EventFilter{From: p.eventFilter.From, To: p.eventFilter.To}
	}
	events, err := p.logs.GetMessageSentEvents(ctx, eventFilter, fromBlock, toBlock, fromLogIndex)
	if err != nil {
		return cursor, fmt.Errorf("error getting MessageSent events in [%d, %d]: %w", fromBlock, toBlock, err)
	}
	p.logger.Debugf("%d MessageSent events found in blocks [%d, %d]", len(events), fromBlock, toBlock)

	now := p.timeNow()
	msgs := make([]*message.Message, 0, len(events))
	for _, ev := range events {
		status := message.StatusSent
		if !p.shouldProcess(ctx, ev) {
			status = message.StatusExcluded
		}
		msgs = append(msgs, message.NewFromSentEvent(ev, p.cfg.Direction, status, now))
		p.logger.Infof("message sent event found: messageHash=%s, block=%d, logIndex=%d, status=%s",
			ev.MessageHash.Hex(), ev.BlockNumber, ev.LogIndex, status)
	}

	if len(msgs) > 0 {
		inserted, err := p.storage.InsertMessages(ctx, msgs)
		if err != nil {
			if db.IsConflictErr(err) {
				return cursor, &RecoverableError{Cursor: msgs[0].Cursor(), Err: err}
			}
			return cursor, err
		}
		if inserted < len(msgs) {
			p.logger.Debugf("%d of %d messages were already stored", len(msgs)-inserted, len(msgs))
		}
		for _, msg := range msgs {
			metrics.MessagesStored.WithLabelValues(p.cfg.Direction.String(), msg.Status.String()).Inc()
		}
	}

	next := message.Cursor{FromBlock: toBlock + 1}
	if next.FromBlock < cursor.FromBlock {
		// the confirmed head is behind the cursor, never move it backwards
		return cursor, nil
	}
	return next, nil
}

// shouldProcess applies the claiming policy of the direction: messages without calldata need
// IsEOAEnabled, messages with calldata need IsCalldataEnabled and must match the calldata filter
func (p *SentProcessor) shouldProcess(ctx context.Context, ev message.SentEvent) bool {
	if len(ev.Calldata) == 0 {
		return p.cfg.IsEOAEnabled
	}
	if !p.cfg.IsCalldataEnabled {
		return false
	}
	if !p.eventFilter.HasCalldataFilter() {
		return true
	}
	matches, err := p.eventFilter.MatchesCalldata(ctx, ev)
	if err != nil {
		p.logger.Warnf("error evaluating calldata filter for message %s, excluding it: %v", ev.MessageHash.Hex(), err)
		return false
	}
	return matches
}
