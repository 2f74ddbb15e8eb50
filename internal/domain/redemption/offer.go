package redemption

import (
	"errors"
	"strings"

	"korvo/internal/domain/business"
)

var ErrEmptyOfferTitle = errors.New("offer title cannot be empty")

// Offer is an unconfirmed claim: what the user would receive and what
// it costs. Offers are ephemeral; nothing persists until commit.
type Offer struct {
	kind  Kind
	cost  int
	title string
}

func NewCashOutOffer(points int) (Offer, error) {
	if points <= 0 {
		return Offer{}, ErrInvalidOffer
	}
	return Offer{
		kind:  KindCashOut,
		cost:  points,
		title: "Retiro en efectivo",
	}, nil
}

func NewRewardOffer(r business.Reward) (Offer, error) {
	if r.Cost <= 0 {
		return Offer{}, ErrInvalidOffer
	}
	return Offer{
		kind:  KindCatalogReward,
		cost:  r.Cost,
		title: r.Name,
	}, nil
}

func NewDiscountOffer(label string, cost int) (Offer, error) {
	if cost <= 0 {
		return Offer{}, ErrInvalidOffer
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return Offer{}, ErrEmptyOfferTitle
	}
	return Offer{
		kind:  KindDiscountOffer,
		cost:  cost,
		title: label,
	}, nil
}

// Value renders the human-readable magnitude of the offer: currency for
// cash-outs, points for everything else.
func (o Offer) Value(rate Rate) string {
	if o.kind == KindCashOut {
		return rate.FormatCash(o.cost)
	}
	return formatPoints(o.cost)
}

func (o Offer) Kind() Kind    { return o.kind }
func (o Offer) Cost() int     { return o.cost }
func (o Offer) Title() string { return o.title }
