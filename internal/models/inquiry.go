package models

import "time"

const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

type Inquiry struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserID     *int64    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    *string   `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	Status     string    `json:"status"`
}

// InquiryInput is the contact form payload. UserID is never read from the
// body; it is attached from the session when one is present.
type InquiryInput struct {
	PropertyID int64   `json:"property_id" binding:"required,gt=0"`
	UserID     *int64  `json:"-"`
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	Message    *string `json:"message"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}
