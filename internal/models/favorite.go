package models

import "time"

type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	PropertyID int64     `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type FavoriteRequest struct {
	PropertyID int64 `json:"property_id" binding:"required,gt=0"`
}

// FavoriteWithProperty is a favorite joined with the property it points at
type FavoriteWithProperty struct {
	Favorite
	Property Property `json:"property"`
}
