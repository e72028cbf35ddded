package gasprice

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/0xPolygon/postman/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tidwall/gjson"
)

const (
	estimateGasMethod = "linea_estimateGas"

	baseFeeMultiplierPercent     = 135
	priorityFeeMultiplierPercent = 105
)

// CustomProvider asks the rollup node for a full quote, gas limit included, with linea_estimateGas
type CustomProvider struct {
	client              RawCaller
	maxFeePerGasCap     *big.Int
	isMaxGasFeeEnforced bool
	logger              *log.Logger
}

// NewCustomProvider returns a provider for nodes serving linea_estimateGas
func NewCustomProvider(logger *log.Logger, client RawCaller, maxFeePerGasCap *big.Int,
	isMaxGasFeeEnforced bool) *CustomProvider {
	return &CustomProvider{
		client:              client,
		maxFeePerGasCap:     maxFeePerGasCap,
		isMaxGasFeeEnforced: isMaxGasFeeEnforced,
		logger:              logger,
	}
}

// EstimateClaim returns the node estimate with headroom on both fee components
func (p *CustomProvider) EstimateClaim(ctx context.Context, call ethereum.CallMsg) (GasFees, error) {
	var raw json.RawMessage
	if err := p.client.CallContext(ctx, &raw, estimateGasMethod, toCallArg(call)); err != nil {
		return GasFees{}, &GasEstimationError{Err: err}
	}

	result := gjson.ParseBytes(raw)
	baseFee, err := decodeHexBig(result, "baseFeePerGas")
	if err != nil {
		return GasFees{}, err
	}
	priorityFee, err := decodeHexBig(result, "priorityFeePerGas")
	if err != nil {
		return GasFees{}, err
	}
	gasLimit, err := decodeHexBig(result, "gasLimit")
	if err != nil {
		return GasFees{}, err
	}

	adjustedBaseFee := percentOf(baseFee, baseFeeMultiplierPercent)
	adjustedPriorityFee := percentOf(priorityFee, priorityFeeMultiplierPercent)
	fees := GasFees{
		MaxFeePerGas:         new(big.Int).Add(adjustedBaseFee, adjustedPriorityFee),
		MaxPriorityFeePerGas: adjustedPriorityFee,
		GasLimit:             gasLimit.Uint64(),
	}
	if p.isMaxGasFeeEnforced {
		fees.MaxFeePerGas = new(big.Int).Set(p.maxFeePerGasCap)
		fees.MaxPriorityFeePerGas = new(big.Int).Set(p.maxFeePerGasCap)
	}
	p.logger.Debugf("%s: %s", estimateGasMethod, fees)
	return fees, nil
}

func decodeHexBig(result gjson.Result, field string) (*big.Int, error) {
	value := result.Get(field)
	if !value.Exists() {
		return nil, &GasEstimationError{Err: fmt.Errorf("%s response without %s", estimateGasMethod, field)}
	}
	decoded, err := hexutil.DecodeBig(value.String())
	if err != nil {
		return nil, &GasEstimationError{Err: fmt.Errorf("invalid %s %q: %w", field, value.String(), err)}
	}
	return decoded, nil
}

func percentOf(v *big.Int, percent int64) *big.Int {
	out := new(big.Int).Mul(v, big.NewInt(percent))
	return out.Div(out, big.NewInt(100)) //nolint:mnd
}

func toCallArg(msg ethereum.CallMsg) interface{} {
	arg := map[string]interface{}{
		"from": msg.From,
		"to":   msg.To,
	}
	if len(msg.Data) > 0 {
		arg["data"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	return arg
}
