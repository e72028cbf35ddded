package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/metrics"
	"github.com/0xPolygon/postman/processor"
	"github.com/0xPolygon/postman/sync"
)

// SentProcessor indexes the events after a cursor and returns the next one
type SentProcessor interface {
	Process(ctx context.Context, cursor message.Cursor) (message.Cursor, error)
}

// LatestMessageReader gives the last indexed message of a direction
type LatestMessageReader interface {
	GetLatestMessageSent(ctx context.Context, direction message.Direction) (*message.Message, error)
}

// BlockNumberReader returns the head of the source chain
type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// SentEventPollerConfig configures a SentEventPoller
type SentEventPollerConfig struct {
	Direction message.Direction
	// InitialFromBlock is the first block to index. Negative values resume from the latest
	// stored message, or from the chain head when there is none
	InitialFromBlock int64
}

// SentEventPoller owns the read cursor of the sent processor of one direction
type SentEventPoller struct {
	cfg       SentEventPollerConfig
	processor SentProcessor
	storage   LatestMessageReader
	chain     BlockNumberReader
	rh        *sync.RetryHandler
	logger    *log.Logger

	cursor      message.Cursor
	initialized bool
}

func NewSentEventPoller(
	logger *log.Logger,
	cfg SentEventPollerConfig,
	processor SentProcessor,
	storage LatestMessageReader,
	chain BlockNumberReader,
	retryAfterErrorPeriod time.Duration,
	maxRetryAttemptsAfterError int,
) *SentEventPoller {
	return &SentEventPoller{
		cfg:       cfg,
		processor: processor,
		storage:   storage,
		chain:     chain,
		rh: &sync.RetryHandler{
			RetryAfterErrorPeriod:      retryAfterErrorPeriod,
			MaxRetryAttemptsAfterError: maxRetryAttemptsAfterError,
		},
		logger: logger,
	}
}

// Process runs one indexing step and advances the cursor
func (p *SentEventPoller) Process(ctx context.Context) error {
	if !p.initialized {
		cursor, err := p.initialCursor(ctx)
		if err != nil {
			return err
		}
		p.cursor = cursor
		p.initialized = true
		p.logger.Infof("indexing MessageSent events from %s", p.cursor)
	}

	next, err := p.processor.Process(ctx, p.cursor)
	if err != nil {
		var recoverable *processor.RecoverableError
		if errors.As(err, &recoverable) {
			p.logger.Warnf("rewinding cursor from %s to %s: %v", p.cursor, recoverable.Cursor, recoverable.Err)
			p.cursor = recoverable.Cursor
		}
		return err
	}
	p.cursor = next
	metrics.LastIndexedBlock.WithLabelValues(p.cfg.Direction.String()).Set(float64(next.FromBlock))
	return nil
}

// Cursor returns the position the next Process call reads from
func (p *SentEventPoller) Cursor() message.Cursor {
	return p.cursor
}

func (p *SentEventPoller) initialCursor(ctx context.Context) (message.Cursor, error) {
	if p.cfg.InitialFromBlock >= 0 {
		return message.Cursor{FromBlock: uint64(p.cfg.InitialFromBlock)}, nil
	}

	latest, err := p.storage.GetLatestMessageSent(ctx, p.cfg.Direction)
	switch {
	case err == nil:
		return latest.Cursor(), nil
	case !errors.Is(err, db.ErrNotFound):
		return message.Cursor{}, fmt.Errorf("error getting latest sent message: %w", err)
	}

	attempts := 0
	for {
		head, err := p.chain.BlockNumber(ctx)
		if err == nil {
			return message.Cursor{FromBlock: head}, nil
		}
		if ctx.Err() != nil {
			return message.Cursor{}, ctx.Err()
		}
		attempts++
		p.logger.Errorf("error getting block number: %v", err)
		p.rh.Handle("get initial block number", attempts)
	}
}
