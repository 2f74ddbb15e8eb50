package request

import (
	"korvo/internal/domain/redemption"
	"korvo/internal/usecase/commands"
)

// StageClaimRequest carries one of three offer shapes, selected by
// kind: pointsToRedeem for cash_out, rewardId for catalog_reward,
// discountLabel for discount_offer.
type StageClaimRequest struct {
	BusinessID     int64  `json:"businessId" binding:"required"`
	Kind           string `json:"kind" binding:"required"`
	PointsToRedeem int    `json:"pointsToRedeem"`
	RewardID       string `json:"rewardId"`
	DiscountLabel  string `json:"discountLabel"`
}

func (r StageClaimRequest) ToParams() commands.StageClaimParams {
	return commands.StageClaimParams{
		BusinessID:     r.BusinessID,
		Kind:           redemption.Kind(r.Kind),
		PointsToRedeem: r.PointsToRedeem,
		RewardID:       r.RewardID,
		DiscountLabel:  r.DiscountLabel,
	}
}
