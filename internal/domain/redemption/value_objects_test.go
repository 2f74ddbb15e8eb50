//go:build unit

package redemption_test

import (
	"testing"

	"korvo/internal/domain/redemption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	tests := []struct {
		name          string
		pointsPerUnit int
		errIs         error
	}{
		{name: "default rate", pointsPerUnit: 50},
		{name: "rate of one", pointsPerUnit: 1},
		{name: "zero rate", pointsPerUnit: 0, errIs: redemption.ErrInvalidRate},
		{name: "negative rate", pointsPerUnit: -50, errIs: redemption.ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := redemption.NewRate(tt.pointsPerUnit)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, redemption.Rate(tt.pointsPerUnit), rate)
		})
	}
}

func TestRate_CashValue(t *testing.T) {
	rate, err := redemption.NewRate(50)
	require.NoError(t, err)

	tests := []struct {
		name string
		cost int
		want float64
	}{
		{name: "one unit", cost: 50, want: 1.00},
		{name: "three units", cost: 150, want: 3.00},
		{name: "fractional result", cost: 75, want: 1.50},
		{name: "rounds to two decimals", cost: 76, want: 1.52},
		{name: "sub-cent rounds", cost: 1, want: 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, rate.CashValue(tt.cost), 0.0001)
		})
	}
}

func TestRate_FormatCash(t *testing.T) {
	rate, err := redemption.NewRate(50)
	require.NoError(t, err)

	assert.Equal(t, "$3.00", rate.FormatCash(150))
	assert.Equal(t, "$1.52", rate.FormatCash(76))
	assert.Equal(t, "$0.02", rate.FormatCash(1))
}

func TestKind_IsValid(t *testing.T) {
	assert.True(t, redemption.KindCashOut.IsValid())
	assert.True(t, redemption.KindCatalogReward.IsValid())
	assert.True(t, redemption.KindDiscountOffer.IsValid())
	assert.False(t, redemption.Kind("").IsValid())
	assert.False(t, redemption.Kind("cashout").IsValid())
}
