package gasprice

import (
	"context"
	"fmt"
	"math/big"

	"github.com/0xPolygon/postman/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// feeHistoryBlockCount is the number of blocks sampled by eth_feeHistory
	feeHistoryBlockCount = 4
	// feeCacheSize bounds the per block cache
	feeCacheSize = 16
)

// DefaultProviderConfig configures the percentile based EIP-1559 provider
type DefaultProviderConfig struct {
	MaxFeePerGasCap         *big.Int
	GasEstimationPercentile float64
	IsMaxGasFeeEnforced     bool
}

var _ FeeProvider = (*DefaultProvider)(nil)

// DefaultProvider quotes fees from the rewards paid at a percentile in the latest blocks
type DefaultProvider struct {
	client FeeHistoryReader
	cfg    DefaultProviderConfig
	cache  *lru.Cache[uint64, GasFees]
	logger *log.Logger
}

// NewDefaultProvider returns a provider with its own fee cache
func NewDefaultProvider(logger *log.Logger, client FeeHistoryReader, cfg DefaultProviderConfig) (*DefaultProvider, error) {
	if cfg.MaxFeePerGasCap == nil || cfg.MaxFeePerGasCap.Sign() <= 0 {
		return nil, fmt.Errorf("max fee per gas cap must be positive")
	}
	cache, err := lru.New[uint64, GasFees](feeCacheSize)
	if err != nil {
		return nil, err
	}
	return &DefaultProvider{
		client: client,
		cfg:    cfg,
		cache:  cache,
		logger: logger,
	}, nil
}

// MaxFeePerGasCap returns the configured cap
func (p *DefaultProvider) MaxFeePerGasCap() *big.Int {
	return new(big.Int).Set(p.cfg.MaxFeePerGasCap)
}

// GetGasFees returns the quote for the current block, computing it at most once per block
func (p *DefaultProvider) GetGasFees(ctx context.Context) (GasFees, error) {
	if p.cfg.IsMaxGasFeeEnforced {
		return p.capFees(), nil
	}

	blockNumber, err := p.client.BlockNumber(ctx)
	if err != nil {
		return GasFees{}, fmt.Errorf("error getting block number: %w", err)
	}
	if fees, ok := p.cache.Get(blockNumber); ok {
		return fees, nil
	}

	feeHistory, err := p.client.FeeHistory(ctx, feeHistoryBlockCount, nil, []float64{p.cfg.GasEstimationPercentile})
	if err != nil {
		return GasFees{}, fmt.Errorf("error getting fee history: %w", err)
	}

	priorityFee := averageReward(feeHistory.Reward)
	if priorityFee.Cmp(p.cfg.MaxFeePerGasCap) > 0 {
		return GasFees{}, &FeeEstimationError{PriorityFee: priorityFee, Cap: p.MaxFeePerGasCap()}
	}

	lastBaseFee := big.NewInt(0)
	if len(feeHistory.BaseFee) > 0 && feeHistory.BaseFee[len(feeHistory.BaseFee)-1] != nil {
		lastBaseFee = feeHistory.BaseFee[len(feeHistory.BaseFee)-1]
	}
	maxFee := new(big.Int).Mul(lastBaseFee, big.NewInt(2)) //nolint:mnd
	maxFee.Add(maxFee, priorityFee)
	if maxFee.Cmp(p.cfg.MaxFeePerGasCap) > 0 {
		maxFee = p.MaxFeePerGasCap()
	}

	fees := GasFees{MaxFeePerGas: maxFee, MaxPriorityFeePerGas: priorityFee}
	if maxFee.Sign() == 0 || priorityFee.Sign() == 0 {
		// no fee market on this chain
		fees = p.capFees()
	}

	p.cache.Add(blockNumber, fees)
	p.logger.Debugf("fees for block %d: %s", blockNumber, fees)
	return fees, nil
}

func (p *DefaultProvider) capFees() GasFees {
	return GasFees{
		MaxFeePerGas:         p.MaxFeePerGasCap(),
		MaxPriorityFeePerGas: p.MaxFeePerGasCap(),
	}
}

// averageReward averages the reward of the first requested percentile over every sampled block.
// Blocks without a reward count as zero
func averageReward(rewards [][]*big.Int) *big.Int {
	sum := big.NewInt(0)
	if len(rewards) == 0 {
		return sum
	}
	for _, blockRewards := range rewards {
		if len(blockRewards) == 0 || blockRewards[0] == nil {
			continue
		}
		sum.Add(sum, blockRewards[0])
	}
	return sum.Div(sum, big.NewInt(int64(len(rewards))))
}
