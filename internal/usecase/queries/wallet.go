package queries

import (
	"korvo/internal/domain/business"
	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/readmodel"
)

type WalletQueries interface {
	ListCards() ([]readmodel.WalletCardView, error)
	GetBusinessDetail(id int64) (*readmodel.BusinessDetailView, error)
	ListFavoriteIDs() ([]int64, error)
}

type walletQueriesImpl struct {
	catalog   CatalogReader
	favorites FavoritesReader
}

func NewWalletQueries(catalog CatalogReader, favorites FavoritesReader) WalletQueries {
	return &walletQueriesImpl{catalog: catalog, favorites: favorites}
}

func (w *walletQueriesImpl) ListCards() ([]readmodel.WalletCardView, error) {
	businesses := w.catalog.All()
	cards := make([]readmodel.WalletCardView, 0, len(businesses))
	for _, b := range businesses {
		favorite, err := w.favorites.IsFavorite(b.ID())
		if err != nil {
			return nil, errs.Wrap(err, "failed to read favorite flag")
		}
		cards = append(cards, cardView(b, favorite))
	}
	return cards, nil
}

func (w *walletQueriesImpl) GetBusinessDetail(id int64) (*readmodel.BusinessDetailView, error) {
	b, err := w.catalog.FindByID(id)
	if err != nil {
		return nil, err
	}
	favorite, err := w.favorites.IsFavorite(b.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to read favorite flag")
	}

	detail := &readmodel.BusinessDetailView{WalletCardView: cardView(b, favorite)}

	for _, r := range b.Rewards() {
		detail.Rewards = append(detail.Rewards, readmodel.RewardView{
			ID:         r.ID,
			Name:       r.Name,
			Cost:       r.Cost,
			Icon:       r.Icon,
			Affordable: b.CanAfford(r.Cost),
		})
	}
	for _, d := range w.catalog.Discounts() {
		detail.Discounts = append(detail.Discounts, readmodel.DiscountView{
			Label:      d.Label,
			Cost:       d.Cost,
			Affordable: b.CanAfford(d.Cost),
		})
	}
	return detail, nil
}

func (w *walletQueriesImpl) ListFavoriteIDs() ([]int64, error) {
	ids, err := w.favorites.All()
	if err != nil {
		return nil, errs.Wrap(err, "failed to list favorites")
	}
	return ids, nil
}

func cardView(b *business.Business, favorite bool) readmodel.WalletCardView {
	return readmodel.WalletCardView{
		ID:            b.ID(),
		Name:          b.Name(),
		Address:       b.Address(),
		Color:         b.Color(),
		CoverURL:      b.CoverURL(),
		RateLabel:     b.RateLabel(),
		LastVisit:     b.LastVisit(),
		PointBalance:  b.PointBalance(),
		Stamps:        b.Stamps(),
		StampGoal:     b.StampGoal(),
		StampProgress: b.StampProgress(),
		Favorite:      favorite,
	}
}
