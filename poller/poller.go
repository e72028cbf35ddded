package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/metrics"
)

// Processor is a pipeline stage run once per iteration
type Processor interface {
	Process(ctx context.Context) error
}

// Config configures a Poller
type Config struct {
	Direction message.Direction
	// Stage names the processor in logs and metrics
	Stage    string
	Interval time.Duration
}

// Poller runs a Processor in a loop, sleeping Interval between iterations. Errors are logged and
// the loop goes on
type Poller struct {
	cfg       Config
	processor Processor
	logger    *log.Logger

	mu      sync.Mutex
	running bool
	stopped atomic.Bool
}

func New(logger *log.Logger, cfg Config, processor Processor) *Poller {
	return &Poller{
		cfg:       cfg,
		processor: processor,
		logger:    logger,
	}
}

// Start blocks until Stop is called or ctx is done. Calling it on a running poller is a no-op
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		p.logger.Warnf("%s poller is already running", p.cfg.Stage)
		return
	}
	p.running = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		// a Stop issued before Start is honoured once, later runs start clean
		p.stopped.Store(false)
		p.mu.Unlock()
	}()

	p.logger.Infof("%s poller started: interval=%s", p.cfg.Stage, p.cfg.Interval)
	for !p.stopped.Load() {
		if err := p.processor.Process(ctx); err != nil {
			p.logger.Errorf("%s iteration failed: %v", p.cfg.Stage, err)
			metrics.ProcessingErrors.WithLabelValues(p.cfg.Direction.String(), p.cfg.Stage).Inc()
		}
		select {
		case <-ctx.Done():
			p.logger.Infof("%s poller stopped: %v", p.cfg.Stage, ctx.Err())
			return
		case <-time.After(p.cfg.Interval):
		}
	}
	p.logger.Infof("%s poller stopped", p.cfg.Stage)
}

// Stop makes Start return after the current iteration. Called before Start, it makes the
// next Start return without iterating
func (p *Poller) Stop() {
	p.stopped.Store(true)
}

// IsRunning reports whether Start is looping
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Stage returns the name of the processor run by the poller
func (p *Poller) Stage() string {
	return p.cfg.Stage
}

// Direction returns the direction whose messages the poller processes
func (p *Poller) Direction() message.Direction {
	return p.cfg.Direction
}
