package readmodel

// WalletCardView is the summary shown on the wallet list.
type WalletCardView struct {
	ID            int64
	Name          string
	Address       string
	Color         string
	CoverURL      string
	RateLabel     string
	LastVisit     string
	PointBalance  int
	Stamps        int
	StampGoal     int
	StampProgress float64
	Favorite      bool
}

// RewardView carries a catalog reward plus whether the current balance
// covers it, so every screen shares the engine's affordability check
// instead of re-deriving it inline.
type RewardView struct {
	ID         string
	Name       string
	Cost       int
	Icon       string
	Affordable bool
}

type DiscountView struct {
	Label      string
	Cost       int
	Affordable bool
}

type BusinessDetailView struct {
	WalletCardView
	Rewards   []RewardView
	Discounts []DiscountView
}

type ActivityEntryView struct {
	DateName string
	Shop     string
	Amount   string
	Type     string
	Item     string
}
