package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"slices"
	"time"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	postmancommon "github.com/0xPolygon/postman/common"
	"github.com/0xPolygon/postman/config"
	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/etherman"
	"github.com/0xPolygon/postman/filter"
	"github.com/0xPolygon/postman/gasprice"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	messagedb "github.com/0xPolygon/postman/message/db"
	"github.com/0xPolygon/postman/messageservice"
	"github.com/0xPolygon/postman/metrics"
	"github.com/0xPolygon/postman/poller"
	"github.com/0xPolygon/postman/processor"
	"github.com/0xPolygon/postman/rpc"
	"golang.org/x/sync/errgroup"
)

const (
	StageSent      = "sent"
	StageAnchoring = "anchoring"
	StageClaiming  = "claiming"
	StagePersister = "claim-persister"
)

// ErrNoSigner is returned when a direction must claim but no private key is configured
var ErrNoSigner = errors.New("no private key configured")

// route is everything a direction needs: where its messages are sent and where they are claimed
type route struct {
	direction    message.Direction
	autoClaim    bool
	source       config.ChainConfig
	dest         config.ChainConfig
	sourceClient *etherman.Client
	destClient   *etherman.Client
	sourceLogs   *messageservice.LogClient
	contract     processor.MessageContract
	// lineaEstimateGas estimates claims with linea_estimateGas
	lineaEstimateGas bool
}

// Postman runs the pollers of the enabled directions plus the cleaner, the RPC and the metrics servers
type Postman struct {
	cfg        config.Config
	components []string
	logger     *log.Logger

	database *db.DB
	storage  *messagedb.MessageSQLStorage
	l1, l2   *etherman.Client
	proofs   *messageservice.ProofBuilder

	pollers   []*poller.Poller
	cleaner   *poller.Cleaner
	rpcServer *jRPC.Server
	metrics   *metrics.Server
}

// New connects to the database and the chains and builds the components. Nothing runs until Start
func New(ctx context.Context, cfg config.Config, components []string) (*Postman, error) {
	for _, c := range components {
		if !postmancommon.IsValidComponent(c) {
			return nil, fmt.Errorf("unknown component %q", c)
		}
	}
	p := &Postman{
		cfg:        cfg,
		components: components,
		logger:     log.WithFields("module", "pipeline"),
	}
	if err := p.build(ctx); err != nil {
		p.close()
		return nil, err
	}
	return p, nil
}

func (p *Postman) has(component string) bool {
	return slices.Contains(p.components, component)
}

func (p *Postman) build(ctx context.Context) error {
	var err error
	p.database, err = db.Open(p.cfg.Database)
	if err != nil {
		return err
	}
	p.storage, err = messagedb.NewMessageSQLStorage(log.WithFields("module", "storage"), p.database)
	if err != nil {
		return fmt.Errorf("error preparing message storage: %w", err)
	}

	if p.has(postmancommon.L1_TO_L2) || p.has(postmancommon.L2_TO_L1) || p.has(postmancommon.RPC) {
		if err := p.buildRoutes(ctx); err != nil {
			return err
		}
	}

	if p.has(postmancommon.CLEANER) && p.cfg.Cleaner.Enabled {
		if err := p.buildCleaner(); err != nil {
			return err
		}
	}
	if p.has(postmancommon.RPC) && p.cfg.RPC.Enabled {
		p.buildRPC()
	}
	if p.cfg.Metrics.Enabled {
		p.metrics = metrics.NewServer(log.WithFields("module", "metrics"), p.cfg.Metrics)
	}
	return nil
}

func (p *Postman) buildRoutes(ctx context.Context) error {
	var err error
	if p.l1, err = connect(ctx, "L1", p.cfg.L1); err != nil {
		return err
	}
	if p.l2, err = connect(ctx, "L2", p.cfg.L2); err != nil {
		return err
	}
	l1Address, err := postmancommon.ParseAddress("L1.MessageServiceContractAddress",
		p.cfg.L1.MessageServiceContractAddress, true)
	if err != nil {
		return err
	}
	l2Address, err := postmancommon.ParseAddress("L2.MessageServiceContractAddress",
		p.cfg.L2.MessageServiceContractAddress, true)
	if err != nil {
		return err
	}

	logger := log.WithFields("module", "messageservice")
	l1Logs := messageservice.NewLogClient(logger, p.l1, l1Address, messageservice.L1MessageServiceABI)
	l2Logs := messageservice.NewLogClient(logger, p.l2, l2Address, messageservice.L2MessageServiceABI)
	p.proofs = messageservice.NewProofBuilder(logger, l1Logs, l2Logs, p.l1, p.cfg.L1.L2MessageTreeDepth)

	routes := map[string]route{
		postmancommon.L1_TO_L2: {
			direction:        message.DirectionL1ToL2,
			autoClaim:        p.cfg.L1L2AutoClaimEnabled,
			source:           p.cfg.L1,
			dest:             p.cfg.L2,
			sourceClient:     p.l1,
			destClient:       p.l2,
			sourceLogs:       l1Logs,
			contract:         messageservice.NewL2Contract(logger, p.l2, l2Address, p.cfg.L2.Claiming.RateLimitMargin),
			lineaEstimateGas: p.cfg.L2.EnableLineaEstimateGas,
		},
		postmancommon.L2_TO_L1: {
			direction:    message.DirectionL2ToL1,
			autoClaim:    p.cfg.L2L1AutoClaimEnabled,
			source:       p.cfg.L2,
			dest:         p.cfg.L1,
			sourceClient: p.l2,
			destClient:   p.l1,
			sourceLogs:   l2Logs,
			contract: messageservice.NewL1Contract(logger, p.l1, l1Address, p.cfg.L1.Claiming.RateLimitMargin,
				l1Logs, p.proofs),
		},
	}
	for _, component := range []string{postmancommon.L1_TO_L2, postmancommon.L2_TO_L1} {
		if !p.has(component) {
			continue
		}
		if err := p.addRoute(ctx, routes[component]); err != nil {
			return fmt.Errorf("error building %s: %w", component, err)
		}
	}
	return nil
}

func connect(ctx context.Context, name string, cfg config.ChainConfig) (*etherman.Client, error) {
	client, err := etherman.NewClient(ctx, log.WithFields("module", "etherman", "chain", name), etherman.Config{
		URL:               cfg.RPCURL,
		RequestsPerSecond: cfg.RequestsPerSecond,
		MaxRetries:        cfg.MaxRetries,
		RetryInterval:     cfg.RetryInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", name, err)
	}
	return client, nil
}

// addRoute builds the pollers of r. The claiming stages are only built when auto claim is enabled
func (p *Postman) addRoute(ctx context.Context, r route) error {
	logger := log.WithFields("module", "pipeline", "direction", r.direction.String())
	listener := r.source.Listener

	eventFilter, err := filter.New(listener.EventFilters)
	if err != nil {
		return err
	}
	sent := processor.NewSentProcessor(logger.WithFields("stage", StageSent), processor.SentProcessorConfig{
		Direction:            r.direction,
		MaxBlocksToFetchLogs: listener.MaxBlocksToFetchLogs,
		BlockConfirmation:    listener.BlockConfirmation,
		IsEOAEnabled:         r.source.IsEOAEnabled,
		IsCalldataEnabled:    r.source.IsCalldataEnabled,
	}, p.storage, r.sourceLogs, r.sourceClient, eventFilter)
	sentPoller := poller.NewSentEventPoller(logger.WithFields("stage", StageSent), poller.SentEventPollerConfig{
		Direction:        r.direction,
		InitialFromBlock: listener.InitialFromBlock,
	}, sent, p.storage, r.sourceClient, listener.RetryAfterErrorPeriod.Duration, listener.MaxRetryAttemptsAfterError)
	p.addPoller(logger, r.direction, StageSent, listener.PollingInterval.Duration, sentPoller)

	anchoring := processor.NewAnchoringProcessor(logger.WithFields("stage", StageAnchoring),
		processor.AnchoringProcessorConfig{
			Direction:              r.direction,
			MaxFetchMessagesFromDB: r.dest.Listener.MaxFetchMessagesFromDB,
		}, p.storage, r.contract)
	p.addPoller(logger, r.direction, StageAnchoring, r.dest.Listener.PollingInterval.Duration, anchoring)

	if !r.autoClaim {
		logger.Infof("auto claim disabled, messages will only be indexed")
		return nil
	}

	claimCfg := r.dest.Claiming
	if err := loadSigner(ctx, r.destClient, claimCfg); err != nil {
		return err
	}
	feeRecipient, err := postmancommon.ParseAddress("FeeRecipientAddress", claimCfg.FeeRecipientAddress, false)
	if err != nil {
		return err
	}
	maxFeePerGasCap := new(big.Int).SetUint64(claimCfg.MaxFeePerGasCap)
	fees, err := gasprice.NewDefaultProvider(logger.WithFields("module", "gasprice"), r.destClient,
		gasprice.DefaultProviderConfig{
			MaxFeePerGasCap:         maxFeePerGasCap,
			GasEstimationPercentile: claimCfg.GasEstimationPercentile,
			IsMaxGasFeeEnforced:     claimCfg.IsMaxGasFeeEnforced,
		})
	if err != nil {
		return err
	}
	var custom *gasprice.CustomProvider
	if r.lineaEstimateGas {
		custom = gasprice.NewCustomProvider(logger.WithFields("module", "gasprice"), r.destClient,
			maxFeePerGasCap, claimCfg.IsMaxGasFeeEnforced)
	}
	estimator := gasprice.NewSelector(fees, r.destClient, custom)

	claiming := processor.NewClaimingProcessor(logger.WithFields("stage", StageClaiming),
		processor.ClaimingProcessorConfig{
			Direction:          r.direction,
			FeeRecipient:       feeRecipient,
			MaxNonceDiff:       claimCfg.MaxNonceDiff,
			ProfitMargin:       claimCfg.ProfitMargin,
			MaxNumberOfRetries: claimCfg.MaxNumberOfRetries,
			RetryDelay:         claimCfg.RetryDelay.Duration,
			MaxClaimGasLimit:   claimCfg.MaxClaimGasLimit,
		}, p.storage, r.contract, r.destClient, estimator)
	p.addPoller(logger, r.direction, StageClaiming, r.dest.Listener.PollingInterval.Duration, claiming)

	persister := processor.NewClaimPersister(logger.WithFields("stage", StagePersister),
		processor.ClaimPersisterConfig{
			Direction:                r.direction,
			FeeRecipient:             feeRecipient,
			MessageSubmissionTimeout: claimCfg.MessageSubmissionTimeout.Duration,
			MaxNumberOfRetries:       claimCfg.MaxNumberOfRetries,
			FeeBumpPercent:           claimCfg.FeeBumpPercent,
		}, p.storage, r.contract, r.destClient, estimator)
	p.addPoller(logger, r.direction, StagePersister, r.dest.Listener.ReceiptPollingInterval.Duration, persister)
	return nil
}

func (p *Postman) addPoller(logger *log.Logger, direction message.Direction, stage string,
	interval time.Duration, processor poller.Processor) {
	p.pollers = append(p.pollers, poller.New(logger.WithFields("stage", stage), poller.Config{
		Direction: direction,
		Stage:     stage,
		Interval:  interval,
	}, processor))
}

func loadSigner(ctx context.Context, client *etherman.Client, cfg config.ClaimingConfig) error {
	switch {
	case cfg.PrivateKey.Path != "":
		_, err := client.LoadAuthFromKeyStore(ctx, cfg.PrivateKey.Path, cfg.PrivateKey.Password)
		return err
	case cfg.PrivateKeyHex != "":
		_, err := client.LoadAuthFromHex(ctx, cfg.PrivateKeyHex)
		return err
	default:
		return ErrNoSigner
	}
}

func (p *Postman) buildCleaner() error {
	directions := make([]message.Direction, 0, len(p.cfg.Cleaner.Directions))
	for _, d := range p.cfg.Cleaner.Directions {
		direction, err := ParseDirection(d)
		if err != nil {
			return fmt.Errorf("invalid cleaner direction: %w", err)
		}
		directions = append(directions, direction)
	}
	cleaner, err := poller.NewCleaner(log.WithFields("module", postmancommon.CLEANER), poller.CleanerConfig{
		Interval:        p.cfg.Cleaner.Interval.Duration,
		RetentionPeriod: p.cfg.Cleaner.RetentionPeriod.Duration,
		Scope:           p.cfg.Cleaner.Scope,
		Directions:      directions,
	}, p.storage)
	if err != nil {
		return err
	}
	p.cleaner = cleaner
	return nil
}

func (p *Postman) buildRPC() {
	logger := log.WithFields("module", postmancommon.RPC)
	services := []jRPC.Service{
		{
			Name:    rpc.POSTMAN,
			Service: rpc.NewPostmanEndpoints(logger, p.cfg.RPC.ReadTimeout.Duration, p.storage, p.proofs),
		},
	}
	p.rpcServer = jRPC.NewServer(p.cfg.RPC.Config, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

// ParseDirection accepts both the component name (l1-to-l2) and the stored name (L1_TO_L2)
func ParseDirection(s string) (message.Direction, error) {
	switch s {
	case postmancommon.L1_TO_L2:
		return message.DirectionL1ToL2, nil
	case postmancommon.L2_TO_L1:
		return message.DirectionL2ToL1, nil
	}
	return message.ParseDirection(s)
}

// Start runs every component and blocks until ctx is done or one of them fails
func (p *Postman) Start(ctx context.Context) error {
	defer p.close()
	g, ctx := errgroup.WithContext(ctx)

	for _, pl := range p.pollers {
		g.Go(func() error {
			pl.Start(ctx)
			return nil
		})
	}
	if p.cleaner != nil {
		g.Go(func() error { return p.cleaner.Start(ctx) })
	}
	if p.metrics != nil {
		g.Go(func() error { return p.metrics.Start(ctx) })
	}
	if p.rpcServer != nil {
		g.Go(func() error {
			if err := p.rpcServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("rpc server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return p.rpcServer.Stop()
		})
	}
	p.logger.Infof("postman started: components=%v, pollers=%d", p.components, len(p.pollers))
	return g.Wait()
}

// Stop asks every poller to return after its current iteration
func (p *Postman) Stop() {
	for _, pl := range p.pollers {
		pl.Stop()
	}
}

// Pollers returns the pollers built for the enabled directions
func (p *Postman) Pollers() []*poller.Poller {
	return p.pollers
}

func (p *Postman) close() {
	if p.database == nil {
		return
	}
	if err := p.database.Close(); err != nil {
		p.logger.Errorf("error closing database: %v", err)
	}
	p.database = nil
}
