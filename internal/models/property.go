package models

import "time"

type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypePlot       PropertyType = "plot"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypePG         PropertyType = "pg"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla,
		PropertyTypePlot, PropertyTypeCommercial, PropertyTypePG:
		return true
	}
	return false
}

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
	ListingTypePG   ListingType = "pg"
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingTypeSale, ListingTypeRent, ListingTypePG:
		return true
	}
	return false
}

const PropertyStatusActive = "active"

type Property struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"property_type"`
	ListingType  ListingType  `json:"listing_type"`
	Price        int64        `json:"price"`
	Bedrooms     *int         `json:"bedrooms"`
	Bathrooms    *int         `json:"bathrooms"`
	AreaSqft     int          `json:"area_sqft"`
	Address      string       `json:"address"`
	LocalityID   int64        `json:"locality_id"`
	CityID       int64        `json:"city_id"`
	State        string       `json:"state"`
	Pincode      *string      `json:"pincode"`
	OwnerID      int64        `json:"owner_id"`
	Featured     bool         `json:"featured"`
	Premium      bool         `json:"premium"`
	Verified     bool         `json:"verified"`
	Status       string       `json:"status"`
	Amenities    []string     `json:"amenities"`
	Images       []string     `json:"images"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PropertyInput holds the writable fields of a listing. OwnerID is set by
// the caller from the session, never from the request body.
type PropertyInput struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description" binding:"required"`
	PropertyType PropertyType `json:"property_type" binding:"required,oneof=apartment house villa plot commercial pg"`
	ListingType  ListingType  `json:"listing_type" binding:"required,oneof=sale rent pg"`
	Price        int64        `json:"price" binding:"required,gt=0"`
	Bedrooms     *int         `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms    *int         `json:"bathrooms" binding:"omitempty,min=0"`
	AreaSqft     int          `json:"area_sqft" binding:"required,gt=0"`
	Address      string       `json:"address" binding:"required"`
	LocalityID   int64        `json:"locality_id" binding:"required,gt=0"`
	CityID       int64        `json:"city_id" binding:"required,gt=0"`
	State        string       `json:"state" binding:"required"`
	Pincode      *string      `json:"pincode"`
	OwnerID      int64        `json:"-"`
	Featured     bool         `json:"featured"`
	Premium      bool         `json:"premium"`
	Verified     bool         `json:"verified"`
	Status       *string      `json:"status"`
	Amenities    []string     `json:"amenities"`
	Images       []string     `json:"images" binding:"omitempty,dive,url"`
}

// PropertyUpdate is a partial update. City and owner are fixed once a
// listing exists, so they have no field here.
type PropertyUpdate struct {
	Title        *string       `json:"title" binding:"omitempty,min=1"`
	Description  *string       `json:"description"`
	PropertyType *PropertyType `json:"property_type" binding:"omitempty,oneof=apartment house villa plot commercial pg"`
	ListingType  *ListingType  `json:"listing_type" binding:"omitempty,oneof=sale rent pg"`
	Price        *int64        `json:"price" binding:"omitempty,gt=0"`
	Bedrooms     *int          `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms    *int          `json:"bathrooms" binding:"omitempty,min=0"`
	AreaSqft     *int          `json:"area_sqft" binding:"omitempty,gt=0"`
	Address      *string       `json:"address"`
	LocalityID   *int64        `json:"locality_id" binding:"omitempty,gt=0"`
	State        *string       `json:"state"`
	Pincode      *string       `json:"pincode"`
	Featured     *bool         `json:"featured"`
	Premium      *bool         `json:"premium"`
	Verified     *bool         `json:"verified"`
	Status       *string       `json:"status"`
	Amenities    []string      `json:"amenities"`
	Images       []string      `json:"images" binding:"omitempty,dive,url"`
}

// Apply merges the non-nil fields of u into p
func (u *PropertyUpdate) Apply(p *Property) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.PropertyType != nil {
		p.PropertyType = *u.PropertyType
	}
	if u.ListingType != nil {
		p.ListingType = *u.ListingType
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Bedrooms != nil {
		v := *u.Bedrooms
		p.Bedrooms = &v
	}
	if u.Bathrooms != nil {
		v := *u.Bathrooms
		p.Bathrooms = &v
	}
	if u.AreaSqft != nil {
		p.AreaSqft = *u.AreaSqft
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.LocalityID != nil {
		p.LocalityID = *u.LocalityID
	}
	if u.State != nil {
		p.State = *u.State
	}
	if u.Pincode != nil {
		v := *u.Pincode
		p.Pincode = &v
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Premium != nil {
		p.Premium = *u.Premium
	}
	if u.Verified != nil {
		p.Verified = *u.Verified
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Amenities != nil {
		p.Amenities = append([]string{}, u.Amenities...)
	}
	if u.Images != nil {
		p.Images = append([]string{}, u.Images...)
	}
}

// Clone returns a copy of p that shares no memory with it
func (p Property) Clone() Property {
	c := p
	c.Bedrooms = cloneInt(p.Bedrooms)
	c.Bathrooms = cloneInt(p.Bathrooms)
	if p.Pincode != nil {
		v := *p.Pincode
		c.Pincode = &v
	}
	c.Amenities = append([]string{}, p.Amenities...)
	c.Images = append([]string{}, p.Images...)
	return c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

type PropertyStats struct {
	TotalProperties int                 `json:"total_properties"`
	AveragePrice    float64             `json:"average_price"`
	MedianPrice     float64             `json:"median_price"`
	PricePerSqft    float64             `json:"price_per_sqft"`
	MinPrice        int64               `json:"min_price"`
	MaxPrice        int64               `json:"max_price"`
	ByListingType   map[ListingType]int `json:"by_listing_type"`
}
