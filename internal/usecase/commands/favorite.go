package commands

import (
	"korvo/internal/pkg/errs"
)

var ErrFavoritesUnavailable = errs.New("favorites store unavailable")

type FavoriteCommands interface {
	Toggle(businessID int64) (bool, error)
}

type favoriteCommandsImpl struct {
	catalog   CatalogRepository
	favorites FavoritesRepository
}

func NewFavoriteCommands(catalog CatalogRepository, favorites FavoritesRepository) FavoriteCommands {
	return &favoriteCommandsImpl{catalog: catalog, favorites: favorites}
}

// Toggle flips the favorite flag for a known business and returns the
// new state.
func (f *favoriteCommandsImpl) Toggle(businessID int64) (bool, error) {
	if _, err := f.catalog.FindByID(businessID); err != nil {
		return false, errs.Mark(err, ErrBusinessNotFound)
	}

	favorite, err := f.favorites.Toggle(businessID)
	if err != nil {
		return false, errs.Mark(err, ErrFavoritesUnavailable)
	}
	return favorite, nil
}
