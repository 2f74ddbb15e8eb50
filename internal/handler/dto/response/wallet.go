package response

import (
	"github.com/jinzhu/copier"

	"korvo/internal/usecase/readmodel"
)

type WalletCardResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Color         string  `json:"color"`
	CoverURL      string  `json:"coverUrl"`
	RateLabel     string  `json:"rateLabel"`
	LastVisit     string  `json:"lastVisit"`
	PointBalance  int     `json:"pointBalance"`
	Stamps        int     `json:"stamps"`
	StampGoal     int     `json:"stampGoal"`
	StampProgress float64 `json:"stampProgress"`
	Favorite      bool    `json:"favorite"`
}

type RewardResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Cost       int    `json:"cost"`
	Icon       string `json:"icon"`
	Affordable bool   `json:"affordable"`
}

type DiscountResponse struct {
	Label      string `json:"label"`
	Cost       int    `json:"cost"`
	Affordable bool   `json:"affordable"`
}

type BusinessDetailResponse struct {
	WalletCardResponse
	Rewards   []RewardResponse   `json:"rewards"`
	Discounts []DiscountResponse `json:"discounts"`
}

type ActivityEntryResponse struct {
	DateName string `json:"dateName"`
	Shop     string `json:"shop"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Item     string `json:"item"`
}

func FromWalletCard(v *readmodel.WalletCardView) *WalletCardResponse {
	var res WalletCardResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromWalletCards(views []readmodel.WalletCardView) []*WalletCardResponse {
	res := make([]*WalletCardResponse, len(views))
	for i := range views {
		res[i] = FromWalletCard(&views[i])
	}
	return res
}

func FromBusinessDetail(v *readmodel.BusinessDetailView) *BusinessDetailResponse {
	res := &BusinessDetailResponse{
		WalletCardResponse: *FromWalletCard(&v.WalletCardView),
		Rewards:            make([]RewardResponse, len(v.Rewards)),
		Discounts:          make([]DiscountResponse, len(v.Discounts)),
	}
	for i, r := range v.Rewards {
		res.Rewards[i] = RewardResponse(r)
	}
	for i, d := range v.Discounts {
		res.Discounts[i] = DiscountResponse(d)
	}
	return res
}

func FromActivityFeed(entries []readmodel.ActivityEntryView) []ActivityEntryResponse {
	res := make([]ActivityEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ActivityEntryResponse(e)
	}
	return res
}
