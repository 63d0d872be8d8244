package database

import (
	"realestate/server/internal/models"
	"sort"
)

const (
	DefaultFeaturedLimit = 5
	DefaultRecentLimit   = 3
)

// QueryProperties returns the listings matching filter, newest first, with
// page applied after filtering. Equality constraints narrow the candidates
// before the price and area bounds are checked.
func (d *Database) QueryProperties(filter models.PropertyFilter, page models.Page) []models.Property {
	d.mu.RLock()
	defer d.mu.RUnlock()

	candidates := make([]models.Property, 0)
	d.properties.each(func(p models.Property) bool {
		if filter.MatchesEquality(&p) {
			candidates = append(candidates, p)
		}
		return true
	})

	matched := candidates[:0]
	for i := range candidates {
		if filter.MatchesRange(&candidates[i]) {
			matched = append(matched, candidates[i])
		}
	}

	sortNewestFirst(matched)
	return cloneProperties(paginate(matched, page))
}

// FeaturedProperties returns up to limit featured listings, newest first.
// A non-positive limit falls back to DefaultFeaturedLimit.
func (d *Database) FeaturedProperties(limit int) []models.Property {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	featured := true
	return d.QueryProperties(
		models.PropertyFilter{Featured: &featured},
		models.Page{Limit: &limit},
	)
}

// RecentProperties returns the limit newest listings
func (d *Database) RecentProperties(limit int) []models.Property {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return d.QueryProperties(models.PropertyFilter{}, models.Page{Limit: &limit})
}

// PropertiesByOwner returns every listing of ownerID in insertion order
func (d *Database) PropertiesByOwner(ownerID int64) []models.Property {
	return d.scanProperties(func(p *models.Property) bool {
		return p.OwnerID == ownerID
	})
}

// PropertiesByCity returns every listing in cityID in insertion order
func (d *Database) PropertiesByCity(cityID int64) []models.Property {
	return d.scanProperties(func(p *models.Property) bool {
		return p.CityID == cityID
	})
}

func (d *Database) scanProperties(match func(*models.Property) bool) []models.Property {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Property, 0)
	d.properties.each(func(p models.Property) bool {
		if match(&p) {
			out = append(out, p.Clone())
		}
		return true
	})
	return out
}

// sortNewestFirst orders by created_at descending. Ties keep insertion order.
func sortNewestFirst(props []models.Property) {
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].CreatedAt.After(props[j].CreatedAt)
	})
}

func paginate(props []models.Property, page models.Page) []models.Property {
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(props) {
		return props[:0]
	}
	props = props[offset:]

	if page.Limit != nil {
		limit := *page.Limit
		if limit < 0 {
			limit = 0
		}
		if limit < len(props) {
			props = props[:limit]
		}
	}
	return props
}

func cloneProperties(props []models.Property) []models.Property {
	out := make([]models.Property, len(props))
	for i := range props {
		out[i] = props[i].Clone()
	}
	return out
}
