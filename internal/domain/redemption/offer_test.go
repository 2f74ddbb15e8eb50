//go:build unit

package redemption_test

import (
	"testing"

	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCashOutOffer(t *testing.T) {
	t.Run("valid points", func(t *testing.T) {
		offer, err := redemption.NewCashOutOffer(150)
		require.NoError(t, err)
		assert.Equal(t, redemption.KindCashOut, offer.Kind())
		assert.Equal(t, 150, offer.Cost())
		assert.Equal(t, "Retiro en efectivo", offer.Title())
	})

	t.Run("non-positive points", func(t *testing.T) {
		_, err := redemption.NewCashOutOffer(0)
		require.ErrorIs(t, err, redemption.ErrInvalidOffer)

		_, err = redemption.NewCashOutOffer(-50)
		require.ErrorIs(t, err, redemption.ErrInvalidOffer)
	})
}

func TestNewRewardOffer(t *testing.T) {
	t.Run("valid reward", func(t *testing.T) {
		offer, err := redemption.NewRewardOffer(business.Reward{
			ID: "r1", Name: "Muffin de Arándanos", Cost: 300, Icon: "muffin",
		})
		require.NoError(t, err)
		assert.Equal(t, redemption.KindCatalogReward, offer.Kind())
		assert.Equal(t, 300, offer.Cost())
		assert.Equal(t, "Muffin de Arándanos", offer.Title())
	})

	t.Run("zero cost reward", func(t *testing.T) {
		_, err := redemption.NewRewardOffer(business.Reward{ID: "r1", Name: "Gratis"})
		require.ErrorIs(t, err, redemption.ErrInvalidOffer)
	})
}

func TestNewDiscountOffer(t *testing.T) {
	t.Run("valid discount", func(t *testing.T) {
		offer, err := redemption.NewDiscountOffer("Envío Gratis", 200)
		require.NoError(t, err)
		assert.Equal(t, redemption.KindDiscountOffer, offer.Kind())
		assert.Equal(t, 200, offer.Cost())
		assert.Equal(t, "Envío Gratis", offer.Title())
	})

	t.Run("empty label", func(t *testing.T) {
		_, err := redemption.NewDiscountOffer("  ", 200)
		require.ErrorIs(t, err, redemption.ErrEmptyOfferTitle)
	})

	t.Run("non-positive cost", func(t *testing.T) {
		_, err := redemption.NewDiscountOffer("Envío Gratis", 0)
		require.ErrorIs(t, err, redemption.ErrInvalidOffer)
	})
}

func TestOffer_Value(t *testing.T) {
	rate, err := redemption.NewRate(50)
	require.NoError(t, err)

	t.Run("cash out renders currency", func(t *testing.T) {
		offer, err := redemption.NewCashOutOffer(150)
		require.NoError(t, err)
		assert.Equal(t, "$3.00", offer.Value(rate))
	})

	t.Run("catalog reward renders points", func(t *testing.T) {
		offer, err := redemption.NewRewardOffer(business.Reward{ID: "r1", Name: "Muffin", Cost: 300})
		require.NoError(t, err)
		assert.Equal(t, "300 pts", offer.Value(rate))
	})

	t.Run("discount renders points", func(t *testing.T) {
		offer, err := redemption.NewDiscountOffer("Envío Gratis", 200)
		require.NoError(t, err)
		assert.Equal(t, "200 pts", offer.Value(rate))
	})
}
