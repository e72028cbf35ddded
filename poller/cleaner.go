package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/metrics"
	"github.com/robfig/cron/v3"
)

// Retention scopes
const (
	ScopeGlobal    = "global"
	ScopeDirection = "direction"
)

// MessageDeleter removes terminal messages
type MessageDeleter interface {
	DeleteMessages(ctx context.Context, olderThan time.Time, directions []message.Direction) (int64, error)
}

// CleanerConfig configures the retention sweep
type CleanerConfig struct {
	Interval        time.Duration
	RetentionPeriod time.Duration
	// Scope is ScopeGlobal to sweep every direction or ScopeDirection to only sweep Directions
	Scope      string
	Directions []message.Direction
}

// Cleaner deletes terminal messages older than the retention period on a cron schedule
type Cleaner struct {
	cfg     CleanerConfig
	storage MessageDeleter
	cron    *cron.Cron
	logger  *log.Logger
	timeNow func() time.Time
}

func NewCleaner(logger *log.Logger, cfg CleanerConfig, storage MessageDeleter) (*Cleaner, error) {
	switch cfg.Scope {
	case ScopeGlobal:
	case ScopeDirection:
		if len(cfg.Directions) == 0 {
			return nil, fmt.Errorf("cleaner scope %q needs at least one direction", ScopeDirection)
		}
	default:
		return nil, fmt.Errorf("unknown cleaner scope %q", cfg.Scope)
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("cleaner interval must be positive, got %s", cfg.Interval)
	}

	c := &Cleaner{
		cfg:     cfg,
		storage: storage,
		logger:  logger,
		timeNow: time.Now,
	}
	c.cron = cron.New(
		cron.WithLogger(cronLogger{logger}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger})),
	)
	return c, nil
}

// Start schedules the sweep and blocks until ctx is done
func (c *Cleaner) Start(ctx context.Context) error {
	if _, err := c.cron.AddFunc(fmt.Sprintf("@every %s", c.cfg.Interval), func() {
		if _, err := c.Sweep(ctx); err != nil {
			c.logger.Errorf("retention sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("error scheduling retention sweep: %w", err)
	}
	c.cron.Start()
	c.logger.Infof("retention sweep scheduled every %s, retention period %s, scope %s",
		c.cfg.Interval, c.cfg.RetentionPeriod, c.cfg.Scope)

	<-ctx.Done()
	<-c.cron.Stop().Done()
	return nil
}

// Sweep deletes the terminal messages not updated during the retention period
func (c *Cleaner) Sweep(ctx context.Context) (int64, error) {
	var directions []message.Direction
	if c.cfg.Scope == ScopeDirection {
		directions = c.cfg.Directions
	}
	deleted, err := c.storage.DeleteMessages(ctx, c.timeNow().Add(-c.cfg.RetentionPeriod), directions)
	if err != nil {
		return 0, err
	}
	metrics.MessagesDeleted.Add(float64(deleted))
	if deleted > 0 {
		c.logger.Infof("%d messages deleted by the retention sweep", deleted)
	}
	return deleted, nil
}

// cronLogger routes the scheduler logs to zap
type cronLogger struct {
	logger *log.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
