package api

import (
	"errors"
	"net/http"
	"realestate/server/internal/auth"
	"realestate/server/internal/database"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateInquiry accepts anonymous inquiries; a signed-in caller is
// recorded as the inquirer
func (h *Handler) CreateInquiry(c *gin.Context) {
	var input models.InquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	input.UserID = nil
	if user, ok := auth.CurrentUser(c); ok {
		id := user.ID
		input.UserID = &id
	}

	inquiry, err := h.db.CreateInquiry(input)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to create inquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}

	event := models.ListingEvent{
		Kind:       models.EventInquiryCreated,
		PropertyID: inquiry.PropertyID,
		UserID:     inquiry.UserID,
	}
	if property, ok := h.db.GetProperty(inquiry.PropertyID); ok {
		event.CityID = &property.CityID
	}
	h.events.Publish(event)

	c.JSON(http.StatusCreated, inquiry)
}

// GetInquiries lists the inquiries received on the caller's properties
func (h *Handler) GetInquiries(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.db.InquiriesByOwner(user.ID))
}

func (h *Handler) UpdateInquiryStatus(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	inquiry, ok := h.db.GetInquiry(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	property, ok := h.db.GetProperty(inquiry.PropertyID)
	if !ok || property.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this inquiry"})
		return
	}

	updated, ok := h.db.UpdateInquiryStatus(id, req.Status)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	h.publish(models.EventInquiryStatus, property, user.ID, req.Status)
	c.JSON(http.StatusOK, updated)
}
