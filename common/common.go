package common

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress validates a hex encoded address read from the configuration. An empty value is
// an error when required, the zero address otherwise
func ParseAddress(field, value string, required bool) (common.Address, error) {
	if value == "" {
		if required {
			return common.Address{}, fmt.Errorf("%s is required", field)
		}
		return common.Address{}, nil
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s: invalid address %q", field, value)
	}
	return common.HexToAddress(value), nil
}

// GweiToWei converts an amount of gwei to wei
func GweiToWei(gwei uint64) *big.Int {
	const weiPerGwei = 1_000_000_000
	return new(big.Int).Mul(new(big.Int).SetUint64(gwei), big.NewInt(weiPerGwei))
}
