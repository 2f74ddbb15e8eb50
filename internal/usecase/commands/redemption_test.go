//go:build unit

package commands_test

import (
	"testing"
	"time"

	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"
	"korvo/internal/infra/memstore"
	"korvo/internal/pkg/clock"
	"korvo/internal/usecase/commands"
	"korvo/tests/common/builder"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedemptionCommandsTestSuite struct {
	suite.Suite
	catalog *memstore.CatalogStore
	ledger  *memstore.Ledger
	cmds    commands.RedemptionCommands
}

func (s *RedemptionCommandsTestSuite) SetupTest() {
	b1 := builder.NewBusinessBuilder().Build()
	b2 := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
		b.ID = 2
		b.Name = "Matcha & Co."
		b.PointBalance = 120
	}).Build()

	s.catalog = memstore.NewCatalogStore(
		[]*business.Business{b1, b2},
		[]business.Discount{{Label: "Envío Gratis", Cost: 200}},
	)
	s.ledger = memstore.NewLedger()

	rate, err := redemption.NewRate(50)
	require.NoError(s.T(), err)
	clk := clock.NewFixedClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	engine := redemption.NewEngine(rate, clk)

	s.cmds = commands.NewRedemptionCommands(engine, s.catalog, s.ledger)
}

func (s *RedemptionCommandsTestSuite) balanceOf(id int64) int {
	b, err := s.catalog.FindByID(id)
	s.Require().NoError(err)
	return b.PointBalance()
}

func (s *RedemptionCommandsTestSuite) TestStageCashOut() {
	staged, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID:     1,
		Kind:           redemption.KindCashOut,
		PointsToRedeem: 150,
	})
	s.Require().NoError(err)

	s.Equal("cash_out", staged.Kind)
	s.Equal("Retiro en efectivo", staged.Title)
	s.Equal("$3.00", staged.Value)
	s.Equal(150, staged.Cost)
	s.Equal(350, staged.BalanceBefore)
	s.Equal(200, staged.ProjectedBalance)
	s.Equal(350, s.balanceOf(1), "staging must not debit")
}

func (s *RedemptionCommandsTestSuite) TestStageCatalogReward() {
	staged, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1,
		Kind:       redemption.KindCatalogReward,
		RewardID:   "r1",
	})
	s.Require().NoError(err)

	s.Equal("Muffin de Arándanos", staged.Title)
	s.Equal("300 pts", staged.Value)
	s.Equal(50, staged.ProjectedBalance)
}

func (s *RedemptionCommandsTestSuite) TestStageDiscount() {
	staged, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID:    1,
		Kind:          redemption.KindDiscountOffer,
		DiscountLabel: "Envío Gratis",
	})
	s.Require().NoError(err)

	s.Equal("Envío Gratis", staged.Title)
	s.Equal(200, staged.Cost)
}

func (s *RedemptionCommandsTestSuite) TestStageErrors() {
	tests := []struct {
		name   string
		params commands.StageClaimParams
		errIs  error
	}{
		{
			name:   "unknown business",
			params: commands.StageClaimParams{BusinessID: 99, Kind: redemption.KindCashOut, PointsToRedeem: 100},
			errIs:  commands.ErrBusinessNotFound,
		},
		{
			name:   "unknown reward",
			params: commands.StageClaimParams{BusinessID: 1, Kind: redemption.KindCatalogReward, RewardID: "missing"},
			errIs:  commands.ErrRewardNotAvailable,
		},
		{
			name:   "unknown discount",
			params: commands.StageClaimParams{BusinessID: 1, Kind: redemption.KindDiscountOffer, DiscountLabel: "missing"},
			errIs:  commands.ErrDiscountNotFound,
		},
		{
			name:   "insufficient points",
			params: commands.StageClaimParams{BusinessID: 2, Kind: redemption.KindCashOut, PointsToRedeem: 150},
			errIs:  commands.ErrInsufficientPoints,
		},
		{
			name:   "zero cash out",
			params: commands.StageClaimParams{BusinessID: 1, Kind: redemption.KindCashOut, PointsToRedeem: 0},
			errIs:  commands.ErrInvalidOffer,
		},
		{
			name:   "unknown kind",
			params: commands.StageClaimParams{BusinessID: 1, Kind: redemption.Kind("bogus")},
			errIs:  commands.ErrInvalidOffer,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			staged, err := s.cmds.Stage(tt.params)
			s.Require().ErrorIs(err, tt.errIs)
			s.Nil(staged)
			s.Equal("idle", s.cmds.Current().State)
		})
	}
}

func (s *RedemptionCommandsTestSuite) TestStageReplacesPrevious() {
	_, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1, Kind: redemption.KindCashOut, PointsToRedeem: 150,
	})
	s.Require().NoError(err)

	staged, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1, Kind: redemption.KindCatalogReward, RewardID: "r2",
	})
	s.Require().NoError(err)

	s.Equal("Espresso Doble", staged.Title)

	current := s.cmds.Current()
	s.Equal("staged", current.State)
	s.Require().NotNil(current.Staged)
	s.Equal("Espresso Doble", current.Staged.Title)
}

func (s *RedemptionCommandsTestSuite) TestConfirm() {
	_, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1, Kind: redemption.KindCashOut, PointsToRedeem: 150,
	})
	s.Require().NoError(err)

	result, err := s.cmds.Confirm()
	s.Require().NoError(err)

	s.Equal(200, result.NewBalance)
	s.Equal("$3.00", result.Claim.Value)
	s.NotEmpty(result.Claim.ID)
	s.Equal(200, s.balanceOf(1))
	s.Equal(1, s.ledger.Count())
	s.Equal("idle", s.cmds.Current().State)
}

func (s *RedemptionCommandsTestSuite) TestConfirmWithoutStage() {
	result, err := s.cmds.Confirm()
	s.Require().ErrorIs(err, commands.ErrNoStagedClaim)
	s.Nil(result)
	s.Equal(0, s.ledger.Count())
}

func (s *RedemptionCommandsTestSuite) TestConfirmTwiceDebitsOnce() {
	_, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1, Kind: redemption.KindCashOut, PointsToRedeem: 150,
	})
	s.Require().NoError(err)

	_, err = s.cmds.Confirm()
	s.Require().NoError(err)

	_, err = s.cmds.Confirm()
	s.Require().ErrorIs(err, commands.ErrNoStagedClaim)

	s.Equal(200, s.balanceOf(1))
	s.Equal(1, s.ledger.Count())
}

func (s *RedemptionCommandsTestSuite) TestConfirmRevalidatesLiveBalance() {
	_, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1, Kind: redemption.KindCashOut, PointsToRedeem: 300,
	})
	s.Require().NoError(err)

	// Balance drops between stage and confirm.
	err = s.catalog.Mutate(1, func(b *business.Business) error {
		return b.Debit(100)
	})
	s.Require().NoError(err)

	result, err := s.cmds.Confirm()
	s.Require().ErrorIs(err, commands.ErrInsufficientPoints)
	s.Nil(result)
	s.Equal(250, s.balanceOf(1), "failed confirm must not debit")
	s.Equal(0, s.ledger.Count())
}

func (s *RedemptionCommandsTestSuite) TestCancel() {
	_, err := s.cmds.Stage(commands.StageClaimParams{
		BusinessID: 1, Kind: redemption.KindCashOut, PointsToRedeem: 150,
	})
	s.Require().NoError(err)

	s.cmds.Cancel()

	s.Equal("idle", s.cmds.Current().State)
	s.Equal(350, s.balanceOf(1))

	// Cancelling again is safe.
	s.cmds.Cancel()
	s.Equal("idle", s.cmds.Current().State)
}

func (s *RedemptionCommandsTestSuite) TestCurrentIdle() {
	current := s.cmds.Current()
	s.Equal("idle", current.State)
	s.Nil(current.Staged)
}

func TestRedemptionCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(RedemptionCommandsTestSuite))
}
