package models

import "time"

type EventKind string

const (
	EventPropertyCreated EventKind = "property.created"
	EventPropertyUpdated EventKind = "property.updated"
	EventPropertyDeleted EventKind = "property.deleted"
	EventFavoriteAdded   EventKind = "favorite.added"
	EventFavoriteRemoved EventKind = "favorite.removed"
	EventInquiryCreated  EventKind = "inquiry.created"
	EventInquiryStatus   EventKind = "inquiry.status_changed"
)

// ListingEvent is one row of the activity archive
type ListingEvent struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Kind       EventKind `json:"kind" gorm:"index;not null"`
	PropertyID int64     `json:"property_id" gorm:"index"`
	CityID     *int64    `json:"city_id,omitempty"`
	UserID     *int64    `json:"user_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at" gorm:"index"`
}

func (ListingEvent) TableName() string {
	return "listing_events"
}
