package database

import "realestate/server/internal/models"

// AddFavorite saves propertyID for userID. The property must exist and the
// pair must not be saved already; neither case changes the store.
func (d *Database) AddFavorite(userID, propertyID int64) (models.Favorite, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.properties.get(propertyID); !ok {
		return models.Favorite{}, ErrNotFound
	}
	if _, ok := d.favoriteFor(userID, propertyID); ok {
		return models.Favorite{}, ErrFavoriteExists
	}

	createdAt := d.now()
	return d.favorites.insert(func(id int64) models.Favorite {
		return models.Favorite{
			ID:         id,
			UserID:     userID,
			PropertyID: propertyID,
			CreatedAt:  createdAt,
		}
	}), nil
}

func (d *Database) GetFavorite(userID, propertyID int64) (models.Favorite, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.favoriteFor(userID, propertyID)
}

// RemoveFavorite deletes the (userID, propertyID) favorite and reports
// whether one existed
func (d *Database) RemoveFavorite(userID, propertyID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	fav, ok := d.favoriteFor(userID, propertyID)
	if !ok {
		return false
	}
	return d.favorites.remove(fav.ID)
}

// FavoritesByUser returns the raw favorites of userID, including ones whose
// property no longer exists
func (d *Database) FavoritesByUser(userID int64) []models.Favorite {
	d.mu.RLock()
	defer d.mu.RUnlock()

	favs := make([]models.Favorite, 0)
	d.favorites.each(func(f models.Favorite) bool {
		if f.UserID == userID {
			favs = append(favs, f)
		}
		return true
	})
	return favs
}

func (d *Database) favoriteFor(userID, propertyID int64) (models.Favorite, bool) {
	var (
		found models.Favorite
		ok    bool
	)
	d.favorites.each(func(f models.Favorite) bool {
		if f.UserID == userID && f.PropertyID == propertyID {
			found, ok = f, true
			return false
		}
		return true
	})
	return found, ok
}
