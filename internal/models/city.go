package models

// City carries a denormalized count of the live properties referencing it
type City struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	State         string  `json:"state"`
	PropertyCount int     `json:"property_count"`
	ImageURL      *string `json:"image_url"`
}

// CityInput omits property_count: the count is owned by the store
type CityInput struct {
	Name     string  `json:"name" binding:"required"`
	State    string  `json:"state" binding:"required"`
	ImageURL *string `json:"image_url"`
}

type Locality struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
}

type LocalityInput struct {
	Name   string `json:"name" binding:"required"`
	CityID int64  `json:"city_id"`
}
