package gasprice

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

var _ ClaimEstimator = (*Selector)(nil)

// Selector pairs the default fee provider with the way claims are estimated on the
// destination chain: linea_estimateGas when custom is set, eth_estimateGas otherwise
type Selector struct {
	fees      FeeProvider
	estimator GasEstimator
	custom    *CustomProvider
}

// NewSelector returns the estimator of one direction. custom may be nil
func NewSelector(fees FeeProvider, estimator GasEstimator, custom *CustomProvider) *Selector {
	return &Selector{
		fees:      fees,
		estimator: estimator,
		custom:    custom,
	}
}

// GetGasFees returns the default provider quote
func (s *Selector) GetGasFees(ctx context.Context) (GasFees, error) {
	return s.fees.GetGasFees(ctx)
}

// MaxFeePerGasCap returns the configured cap
func (s *Selector) MaxFeePerGasCap() *big.Int {
	return s.fees.MaxFeePerGasCap()
}

// EstimateClaim estimates call and returns the fees to use for it
func (s *Selector) EstimateClaim(ctx context.Context, call ethereum.CallMsg) (GasFees, error) {
	if s.custom != nil {
		return s.custom.EstimateClaim(ctx, call)
	}

	fees, err := s.fees.GetGasFees(ctx)
	if err != nil {
		return GasFees{}, err
	}
	gasLimit, err := s.estimator.EstimateGas(ctx, call)
	if err != nil {
		return GasFees{}, &GasEstimationError{Err: err}
	}
	fees.GasLimit = gasLimit
	return fees, nil
}

// UsesCustomEstimation tells whether claims are estimated with linea_estimateGas
func (s *Selector) UsesCustomEstimation() bool {
	return s.custom != nil
}
