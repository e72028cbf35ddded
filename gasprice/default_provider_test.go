package gasprice

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/0xPolygon/postman/gasprice/mocks"
	"github.com/0xPolygon/postman/log"
	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func feeHistoryFixture() *ethereum.FeeHistory {
	return &ethereum.FeeHistory{
		OldestBlock: big.NewInt(96),
		Reward: [][]*big.Int{
			{big.NewInt(1_000_000_000)},
			{big.NewInt(0)},
			{big.NewInt(2_000_000_000)},
			{big.NewInt(3_000_000_000)},
		},
		BaseFee: []*big.Int{
			big.NewInt(7), big.NewInt(8), big.NewInt(9), big.NewInt(10), big.NewInt(5_000_000_000),
		},
		GasUsedRatio: []float64{0.5, 0.5, 0.5, 0.5},
	}
}

func TestDefaultProviderGetGasFees(t *testing.T) {
	ctx := context.Background()
	capWei := big.NewInt(100_000_000_000)

	testCases := []struct {
		description string
		cfg         DefaultProviderConfig
		setupMocks  func(*mocks.FeeHistoryReader)
		expected    GasFees
		expectedErr string
	}{
		{
			description: "percentile average and doubled base fee",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: capWei, GasEstimationPercentile: 15},
			setupMocks: func(m *mocks.FeeHistoryReader) {
				m.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Once()
				m.EXPECT().FeeHistory(ctx, uint64(4), (*big.Int)(nil), []float64{15}).Return(feeHistoryFixture(), nil).Once()
			},
			// (1+0+2+3)/4 gwei priority, 2*5 gwei + 1.5 gwei max fee
			expected: GasFees{MaxFeePerGas: big.NewInt(11_500_000_000), MaxPriorityFeePerGas: big.NewInt(1_500_000_000)},
		},
		{
			description: "max fee capped",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: big.NewInt(11_000_000_000), GasEstimationPercentile: 15},
			setupMocks: func(m *mocks.FeeHistoryReader) {
				m.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Once()
				m.EXPECT().FeeHistory(ctx, uint64(4), (*big.Int)(nil), []float64{15}).Return(feeHistoryFixture(), nil).Once()
			},
			expected: GasFees{MaxFeePerGas: big.NewInt(11_000_000_000), MaxPriorityFeePerGas: big.NewInt(1_500_000_000)},
		},
		{
			description: "priority fee above cap",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: big.NewInt(1_000_000_000), GasEstimationPercentile: 15},
			setupMocks: func(m *mocks.FeeHistoryReader) {
				m.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Once()
				m.EXPECT().FeeHistory(ctx, uint64(4), (*big.Int)(nil), []float64{15}).Return(feeHistoryFixture(), nil).Once()
			},
			expectedErr: "estimated priority fee 1500000000 is higher than the max fee per gas cap 1000000000",
		},
		{
			description: "no fee market falls back to cap",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: capWei, GasEstimationPercentile: 15},
			setupMocks: func(m *mocks.FeeHistoryReader) {
				m.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Once()
				m.EXPECT().FeeHistory(ctx, uint64(4), (*big.Int)(nil), []float64{15}).Return(&ethereum.FeeHistory{
					Reward:  [][]*big.Int{{big.NewInt(0)}, {big.NewInt(0)}},
					BaseFee: []*big.Int{big.NewInt(0), big.NewInt(0)},
				}, nil).Once()
			},
			expected: GasFees{MaxFeePerGas: capWei, MaxPriorityFeePerGas: capWei},
		},
		{
			description: "quiet blocks lower the average",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: capWei, GasEstimationPercentile: 15},
			setupMocks: func(m *mocks.FeeHistoryReader) {
				m.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Once()
				m.EXPECT().FeeHistory(ctx, uint64(4), (*big.Int)(nil), []float64{15}).Return(&ethereum.FeeHistory{
					Reward:  [][]*big.Int{{big.NewInt(0)}, {big.NewInt(0)}, {}, {big.NewInt(4000)}},
					BaseFee: []*big.Int{big.NewInt(10), big.NewInt(10), big.NewInt(10), big.NewInt(10), big.NewInt(10)},
				}, nil).Once()
			},
			expected: GasFees{MaxFeePerGas: big.NewInt(1020), MaxPriorityFeePerGas: big.NewInt(1000)},
		},
		{
			description: "cap enforced without rpc",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: capWei, IsMaxGasFeeEnforced: true},
			setupMocks:  func(m *mocks.FeeHistoryReader) {},
			expected:    GasFees{MaxFeePerGas: capWei, MaxPriorityFeePerGas: capWei},
		},
		{
			description: "fee history error",
			cfg:         DefaultProviderConfig{MaxFeePerGasCap: capWei, GasEstimationPercentile: 15},
			setupMocks: func(m *mocks.FeeHistoryReader) {
				m.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Once()
				m.EXPECT().FeeHistory(ctx, uint64(4), (*big.Int)(nil), []float64{15}).Return(nil, errors.New("timeout")).Once()
			},
			expectedErr: "error getting fee history: timeout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			client := mocks.NewFeeHistoryReader(t)
			tc.setupMocks(client)

			provider, err := NewDefaultProvider(log.WithFields("module", "gasprice"), client, tc.cfg)
			require.NoError(t, err)

			fees, err := provider.GetGasFees(ctx)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, fees)
		})
	}
}

func TestDefaultProviderFeeEstimationErrorType(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewFeeHistoryReader(t)
	client.EXPECT().BlockNumber(ctx).Return(uint64(1), nil).Once()
	client.EXPECT().FeeHistory(ctx, uint64(4), mock.Anything, mock.Anything).Return(feeHistoryFixture(), nil).Once()

	provider, err := NewDefaultProvider(log.WithFields("module", "gasprice"), client,
		DefaultProviderConfig{MaxFeePerGasCap: big.NewInt(1), GasEstimationPercentile: 15})
	require.NoError(t, err)

	_, err = provider.GetGasFees(ctx)
	var feeErr *FeeEstimationError
	require.ErrorAs(t, err, &feeErr)
	require.Equal(t, big.NewInt(1_500_000_000), feeErr.PriorityFee)
}

func TestDefaultProviderCachesPerBlock(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewFeeHistoryReader(t)
	client.EXPECT().BlockNumber(ctx).Return(uint64(100), nil).Twice()
	client.EXPECT().FeeHistory(ctx, uint64(4), mock.Anything, mock.Anything).Return(feeHistoryFixture(), nil).Once()
	client.EXPECT().BlockNumber(ctx).Return(uint64(101), nil).Once()
	client.EXPECT().FeeHistory(ctx, uint64(4), mock.Anything, mock.Anything).Return(feeHistoryFixture(), nil).Once()

	provider, err := NewDefaultProvider(log.WithFields("module", "gasprice"), client,
		DefaultProviderConfig{MaxFeePerGasCap: big.NewInt(100_000_000_000), GasEstimationPercentile: 15})
	require.NoError(t, err)

	first, err := provider.GetGasFees(ctx)
	require.NoError(t, err)
	second, err := provider.GetGasFees(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	_, err = provider.GetGasFees(ctx)
	require.NoError(t, err)
}

func TestNewDefaultProviderRequiresCap(t *testing.T) {
	_, err := NewDefaultProvider(log.WithFields("module", "gasprice"), mocks.NewFeeHistoryReader(t), DefaultProviderConfig{})
	require.Error(t, err)
}

func TestBumpFees(t *testing.T) {
	capWei := big.NewInt(1_000)
	testCases := []struct {
		description string
		fees        GasFees
		percent     uint64
		expected    GasFees
	}{
		{
			description: "10 percent",
			fees:        GasFees{MaxFeePerGas: big.NewInt(500), MaxPriorityFeePerGas: big.NewInt(100), GasLimit: 21_000},
			percent:     10,
			expected:    GasFees{MaxFeePerGas: big.NewInt(550), MaxPriorityFeePerGas: big.NewInt(110), GasLimit: 21_000},
		},
		{
			description: "capped",
			fees:        GasFees{MaxFeePerGas: big.NewInt(950), MaxPriorityFeePerGas: big.NewInt(100)},
			percent:     10,
			expected:    GasFees{MaxFeePerGas: big.NewInt(1_000), MaxPriorityFeePerGas: big.NewInt(110)},
		},
		{
			description: "integer division rounds down",
			fees:        GasFees{MaxFeePerGas: big.NewInt(15), MaxPriorityFeePerGas: big.NewInt(9)},
			percent:     15,
			expected:    GasFees{MaxFeePerGas: big.NewInt(17), MaxPriorityFeePerGas: big.NewInt(10)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, BumpFees(tc.fees, tc.percent, capWei))
		})
	}
}
