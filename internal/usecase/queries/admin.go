package queries

import (
	"korvo/internal/domain/redemption"
	"korvo/internal/pkg/clock"
	"korvo/internal/usecase/commands"
	"korvo/internal/usecase/readmodel"
)

type AdminQueries interface {
	ListRewards() []readmodel.AdminRewardView
	ListPromotions() []readmodel.PromotionView
	ListCustomers() []readmodel.CustomerView
	Dashboard() readmodel.DashboardView
}

type adminQueriesImpl struct {
	rewards    BenefitReader
	promotions PromotionReader
	customers  CustomerReader
	ledger     LedgerReader
	stats      readmodel.DashboardStats
	clock      clock.Clock
}

func NewAdminQueries(
	rewards BenefitReader,
	promotions PromotionReader,
	customers CustomerReader,
	ledger LedgerReader,
	stats readmodel.DashboardStats,
	clk clock.Clock,
) AdminQueries {
	return &adminQueriesImpl{
		rewards:    rewards,
		promotions: promotions,
		customers:  customers,
		ledger:     ledger,
		stats:      stats,
		clock:      clk,
	}
}

func (a *adminQueriesImpl) ListRewards() []readmodel.AdminRewardView {
	rewards := a.rewards.All()
	views := make([]readmodel.AdminRewardView, 0, len(rewards))
	for _, r := range rewards {
		views = append(views, commands.AdminRewardView(r))
	}
	return views
}

func (a *adminQueriesImpl) ListPromotions() []readmodel.PromotionView {
	now := a.clock.Now()
	promotions := a.promotions.All()
	views := make([]readmodel.PromotionView, 0, len(promotions))
	for _, p := range promotions {
		views = append(views, commands.PromotionView(p, now))
	}
	return views
}

func (a *adminQueriesImpl) ListCustomers() []readmodel.CustomerView {
	return a.customers.All()
}

// Dashboard layers live session counters over the seeded figures.
func (a *adminQueriesImpl) Dashboard() readmodel.DashboardView {
	var sessionPoints, sessionRewards int
	for _, item := range a.ledger.All() {
		sessionPoints += item.Cost()
		if item.Kind() == redemption.KindCatalogReward {
			sessionRewards++
		}
	}

	return readmodel.DashboardView{
		TotalPoints:       a.stats.TotalPoints,
		PointsEarned:      a.stats.PointsEarned,
		PointsRedeemed:    a.stats.PointsRedeemed + sessionPoints,
		ActiveCustomers:   a.stats.ActiveCustomers,
		TotalTransactions: a.stats.TotalTransactions + a.ledger.Count(),
		MonthlyRevenue:    a.stats.MonthlyRevenue,
		RewardsClaimed:    a.stats.RewardsClaimed + sessionRewards,
		RetentionRate:     a.stats.RetentionRate,
		SessionClaims:     a.ledger.Count(),
		SessionPointsUsed: sessionPoints,
	}
}
