//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"
	"korvo/internal/pkg/clock"
	"korvo/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*redemption.Engine, *clock.FixedClock) {
	t.Helper()
	rate, err := redemption.NewRate(50)
	require.NoError(t, err)
	clk := clock.NewFixedClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	return redemption.NewEngine(rate, clk), clk
}

func TestEngine_Validate(t *testing.T) {
	engine, _ := newTestEngine(t)
	b := builder.NewBusinessBuilder().WithBalance(350).Build()

	t.Run("affordable offer passes", func(t *testing.T) {
		offer, err := redemption.NewCashOutOffer(350)
		require.NoError(t, err)
		assert.NoError(t, engine.Validate(b, offer))
	})

	t.Run("cost above balance fails", func(t *testing.T) {
		offer, err := redemption.NewCashOutOffer(351)
		require.NoError(t, err)
		assert.ErrorIs(t, engine.Validate(b, offer), redemption.ErrInsufficientPoints)
	})

	t.Run("zero value offer fails", func(t *testing.T) {
		var offer redemption.Offer
		assert.ErrorIs(t, engine.Validate(b, offer), redemption.ErrInvalidOffer)
	})
}

func TestEngine_Commit(t *testing.T) {
	t.Run("debits exact cost and builds the claim", func(t *testing.T) {
		engine, clk := newTestEngine(t)
		b := builder.NewBusinessBuilder().WithBalance(350).Build()

		offer, err := redemption.NewCashOutOffer(150)
		require.NoError(t, err)

		item, err := engine.Commit(b, offer)
		require.NoError(t, err)
		require.NotNil(t, item)

		assert.Equal(t, 200, b.PointBalance())
		assert.NotEqual(t, uuid.Nil, item.ID())
		assert.Equal(t, redemption.KindCashOut, item.Kind())
		assert.Equal(t, 150, item.Cost())
		assert.Equal(t, b.ID(), item.BusinessID())
		assert.Equal(t, b.Name(), item.BusinessName())
		assert.Equal(t, "Retiro en efectivo", item.Title())
		assert.Equal(t, "$3.00", item.Value())
		assert.Equal(t, clk.Now(), item.ClaimedAt())
	})

	t.Run("reward claim keeps point rendering", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		b := builder.NewBusinessBuilder().WithBalance(350).Build()

		offer, err := redemption.NewRewardOffer(business.Reward{ID: "r1", Name: "Muffin de Arándanos", Cost: 300})
		require.NoError(t, err)

		item, err := engine.Commit(b, offer)
		require.NoError(t, err)
		assert.Equal(t, "300 pts", item.Value())
		assert.Equal(t, 50, b.PointBalance())
	})

	t.Run("insufficient balance leaves state untouched", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		b := builder.NewBusinessBuilder().WithBalance(100).Build()

		offer, err := redemption.NewCashOutOffer(150)
		require.NoError(t, err)

		item, err := engine.Commit(b, offer)
		require.ErrorIs(t, err, redemption.ErrInsufficientPoints)
		assert.Nil(t, item)
		assert.Equal(t, 100, b.PointBalance())
	})

	t.Run("each commit issues a distinct id", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		b := builder.NewBusinessBuilder().WithBalance(350).Build()

		offer, err := redemption.NewCashOutOffer(100)
		require.NoError(t, err)

		first, err := engine.Commit(b, offer)
		require.NoError(t, err)
		second, err := engine.Commit(b, offer)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
		assert.Equal(t, 150, b.PointBalance())
	})
}
