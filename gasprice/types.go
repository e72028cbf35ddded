package gasprice

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// GasFees is an EIP-1559 fee quote. GasLimit is only set by estimators that return it
type GasFees struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasLimit             uint64
}

func (g GasFees) String() string {
	return fmt.Sprintf("maxFeePerGas=%s maxPriorityFeePerGas=%s gasLimit=%d",
		g.MaxFeePerGas, g.MaxPriorityFeePerGas, g.GasLimit)
}

// FeeHistoryReader is the part of the chain client needed to quote fees
type FeeHistoryReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FeeHistory(ctx context.Context, blockCount uint64, lastBlock *big.Int,
		rewardPercentiles []float64) (*ethereum.FeeHistory, error)
}

// GasEstimator simulates a call and returns the gas it needs
type GasEstimator interface {
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
}

// RawCaller issues JSON-RPC calls not covered by the typed client
type RawCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// FeeProvider quotes fees for the next block
type FeeProvider interface {
	GetGasFees(ctx context.Context) (GasFees, error)
	MaxFeePerGasCap() *big.Int
}

// ClaimEstimator quotes fees and estimates the gas of claim transactions
type ClaimEstimator interface {
	FeeProvider
	// EstimateClaim returns the fees to pay and, in GasLimit, the gas needed by call
	EstimateClaim(ctx context.Context, call ethereum.CallMsg) (GasFees, error)
}

// FeeEstimationError is returned when the priority fee alone is above the configured cap
type FeeEstimationError struct {
	PriorityFee *big.Int
	Cap         *big.Int
}

func (e *FeeEstimationError) Error() string {
	return fmt.Sprintf("estimated priority fee %s is higher than the max fee per gas cap %s", e.PriorityFee, e.Cap)
}

// GasEstimationError wraps a failed simulation of a claim
type GasEstimationError struct {
	Err error
}

func (e *GasEstimationError) Error() string {
	return fmt.Sprintf("gas estimation failed: %v", e.Err)
}

func (e *GasEstimationError) Unwrap() error {
	return e.Err
}

// BumpFees raises both fees by percent, without exceeding maxFeeCap
func BumpFees(fees GasFees, percent uint64, maxFeeCap *big.Int) GasFees {
	bump := func(v *big.Int) *big.Int {
		if v == nil {
			if maxFeeCap == nil {
				return nil
			}
			return new(big.Int).Set(maxFeeCap)
		}
		bumped := new(big.Int).Mul(v, new(big.Int).SetUint64(100+percent)) //nolint:mnd
		bumped.Div(bumped, big.NewInt(100))                                 //nolint:mnd
		if maxFeeCap != nil && bumped.Cmp(maxFeeCap) > 0 {
			return new(big.Int).Set(maxFeeCap)
		}
		return bumped
	}
	return GasFees{
		MaxFeePerGas:         bump(fees.MaxFeePerGas),
		MaxPriorityFeePerGas: bump(fees.MaxPriorityFeePerGas),
		GasLimit:             fees.GasLimit,
	}
}
