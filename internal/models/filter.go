package models

// PropertyFilter is a composable listing query. A nil field imposes no
// constraint. Range bounds are inclusive.
type PropertyFilter struct {
	CityID       *int64        `json:"city_id,omitempty"`
	LocalityID   *int64        `json:"locality_id,omitempty"`
	PropertyType *PropertyType `json:"property_type,omitempty"`
	ListingType  *ListingType  `json:"listing_type,omitempty"`
	Bedrooms     *int          `json:"bedrooms,omitempty"`
	OwnerID      *int64        `json:"owner_id,omitempty"`
	Featured     *bool         `json:"featured,omitempty"`

	MinPrice *int64 `json:"min_price,omitempty"`
	MaxPrice *int64 `json:"max_price,omitempty"`
	MinArea  *int   `json:"min_area,omitempty"`
	MaxArea  *int   `json:"max_area,omitempty"`
}

// MatchesEquality checks the exact-match fields of the filter
func (f *PropertyFilter) MatchesEquality(p *Property) bool {
	if f == nil {
		return true
	}
	if f.CityID != nil && p.CityID != *f.CityID {
		return false
	}
	if f.LocalityID != nil && p.LocalityID != *f.LocalityID {
		return false
	}
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.ListingType != nil && p.ListingType != *f.ListingType {
		return false
	}
	if f.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms != *f.Bedrooms) {
		return false
	}
	if f.OwnerID != nil && p.OwnerID != *f.OwnerID {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// MatchesRange checks the price and area bounds of the filter
func (f *PropertyFilter) MatchesRange(p *Property) bool {
	if f == nil {
		return true
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinArea != nil && p.AreaSqft < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && p.AreaSqft > *f.MaxArea {
		return false
	}
	return true
}

// Matches reports whether p satisfies every constraint of the filter
func (f *PropertyFilter) Matches(p *Property) bool {
	return f.MatchesEquality(p) && f.MatchesRange(p)
}

// Page selects a window of an ordered result set. A nil Limit means no cap.
type Page struct {
	Limit  *int
	Offset int
}
