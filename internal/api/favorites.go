package api

import (
	"errors"
	"net/http"
	"realestate/server/internal/database"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetFavorites(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.db.FavoritesWithProperties(user.ID))
}

func (h *Handler) AddFavorite(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}

	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	favorite, err := h.db.AddFavorite(user.ID, req.PropertyID)
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	case errors.Is(err, database.ErrFavoriteExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Property already in favorites"})
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to add favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	if property, ok := h.db.GetProperty(req.PropertyID); ok {
		h.publish(models.EventFavoriteAdded, property, user.ID, "")
	}
	c.JSON(http.StatusCreated, favorite)
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}
	propertyID, ok := pathID(c, "propertyId")
	if !ok {
		return
	}

	if !h.db.RemoveFavorite(user.ID, propertyID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	userID := user.ID
	h.events.Publish(models.ListingEvent{
		Kind:       models.EventFavoriteRemoved,
		PropertyID: propertyID,
		UserID:     &userID,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
