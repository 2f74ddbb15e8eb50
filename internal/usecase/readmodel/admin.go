package readmodel

import "time"

type AdminRewardView struct {
	ID          string
	Name        string
	Description string
	Cost        int
	Category    string
	Active      bool
	RedeemCount int
	CreatedAt   time.Time
}

type PromotionView struct {
	ID          string
	Title       string
	Description string
	Type        string
	Amount      int
	StartDate   time.Time
	EndDate     time.Time
	Active      bool
	Live        bool
}

type CustomerView struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Points      int
	Stamps      int
	TotalStamps int
	LastVisit   string
	JoinedAt    string
	TotalSpent  int
}

// DashboardStats are the seeded business-admin dashboard figures; live
// counters (points redeemed, rewards claimed) are layered on top by the
// dashboard query.
type DashboardStats struct {
	TotalPoints       int
	PointsEarned      int
	PointsRedeemed    int
	ActiveCustomers   int
	TotalTransactions int
	MonthlyRevenue    int
	RewardsClaimed    int
	RetentionRate     int
}

// DashboardView merges seeded figures with live session counters from
// the claim ledger.
type DashboardView struct {
	TotalPoints       int
	PointsEarned      int
	PointsRedeemed    int
	ActiveCustomers   int
	TotalTransactions int
	MonthlyRevenue    int
	RewardsClaimed    int
	RetentionRate     int
	SessionClaims     int
	SessionPointsUsed int
}
