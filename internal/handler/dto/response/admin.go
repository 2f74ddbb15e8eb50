package response

import (
	"time"

	"github.com/jinzhu/copier"

	"korvo/internal/usecase/readmodel"
)

type AdminRewardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	Category    string    `json:"category"`
	Active      bool      `json:"active"`
	RedeemCount int       `json:"redeemCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PromotionResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Active      bool      `json:"active"`
	Live        bool      `json:"live"`
}

type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Points      int    `json:"points"`
	Stamps      int    `json:"stamps"`
	TotalStamps int    `json:"totalStamps"`
	LastVisit   string `json:"lastVisit"`
	JoinedAt    string `json:"joinedAt"`
	TotalSpent  int    `json:"totalSpent"`
}

type DashboardResponse struct {
	TotalPoints       int `json:"totalPoints"`
	PointsEarned      int `json:"pointsEarned"`
	PointsRedeemed    int `json:"pointsRedeemed"`
	ActiveCustomers   int `json:"activeCustomers"`
	TotalTransactions int `json:"totalTransactions"`
	MonthlyRevenue    int `json:"monthlyRevenue"`
	RewardsClaimed    int `json:"rewardsClaimed"`
	RetentionRate     int `json:"retentionRate"`
	SessionClaims     int `json:"sessionClaims"`
	SessionPointsUsed int `json:"sessionPointsUsed"`
}

func FromAdminReward(v *readmodel.AdminRewardView) *AdminRewardResponse {
	res := AdminRewardResponse(*v)
	return &res
}

func FromAdminRewards(views []readmodel.AdminRewardView) []*AdminRewardResponse {
	res := make([]*AdminRewardResponse, len(views))
	for i := range views {
		res[i] = FromAdminReward(&views[i])
	}
	return res
}

func FromPromotion(v *readmodel.PromotionView) *PromotionResponse {
	res := PromotionResponse(*v)
	return &res
}

func FromPromotions(views []readmodel.PromotionView) []*PromotionResponse {
	res := make([]*PromotionResponse, len(views))
	for i := range views {
		res[i] = FromPromotion(&views[i])
	}
	return res
}

func FromCustomers(views []readmodel.CustomerView) []*CustomerResponse {
	res := make([]*CustomerResponse, len(views))
	for i := range views {
		var c CustomerResponse
		_ = copier.Copy(&c, &views[i])
		res[i] = &c
	}
	return res
}

func FromDashboard(v *readmodel.DashboardView) *DashboardResponse {
	res := DashboardResponse(*v)
	return &res
}
