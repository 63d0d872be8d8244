package api

import (
	"net/http"
	"realestate/server/internal/database"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handler) GetProperties(c *gin.Context) {
	filter, page, err := propertyQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.db.QueryProperties(filter, page))
}

func (h *Handler) GetFeaturedProperties(c *gin.Context) {
	limit := limitQuery(c, database.DefaultFeaturedLimit)
	c.JSON(http.StatusOK, h.db.FeaturedProperties(limit))
}

func (h *Handler) GetRecentProperties(c *gin.Context) {
	limit := limitQuery(c, database.DefaultRecentLimit)
	c.JSON(http.StatusOK, h.db.RecentProperties(limit))
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	property, ok := h.db.GetProperty(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}

	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if _, ok := h.db.GetCity(input.CityID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown city"})
		return
	}

	input.OwnerID = user.ID
	property := h.db.CreateProperty(input)

	h.publish(models.EventPropertyCreated, property, user.ID, property.Title)
	h.logger.WithFields(logrus.Fields{
		"property_id": property.ID,
		"city_id":     property.CityID,
		"owner_id":    user.ID,
	}).Info("Property created")
	c.JSON(http.StatusCreated, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	property, user, ok := h.ownedProperty(c, "Not authorized to edit this property")
	if !ok {
		return
	}

	var update models.PropertyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updated, ok := h.db.UpdateProperty(property.ID, update)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	h.publish(models.EventPropertyUpdated, updated, user.ID, "")
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	property, user, ok := h.ownedProperty(c, "Not authorized to delete this property")
	if !ok {
		return
	}

	if !h.db.DeleteProperty(property.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	h.publish(models.EventPropertyDeleted, property, user.ID, property.Title)
	h.logger.WithField("property_id", property.ID).Info("Property deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}

func (h *Handler) GetPropertyInquiries(c *gin.Context) {
	property, _, ok := h.ownedProperty(c, "Not authorized to view inquiries for this property")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.db.InquiriesByProperty(property.ID))
}

func (h *Handler) GetPropertyStats(c *gin.Context) {
	var filter models.PropertyFilter
	var err error
	if filter.CityID, err = int64Param(c, "city"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if v := c.Query("listing_type"); v != "" {
		t := models.ListingType(v)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing_type"})
			return
		}
		filter.ListingType = &t
	}
	c.JSON(http.StatusOK, h.db.PropertyStats(filter))
}

// ownedProperty loads the :id property and checks the caller owns it.
// On failure the response has been written.
func (h *Handler) ownedProperty(c *gin.Context, forbidden string) (models.Property, models.User, bool) {
	user, ok := h.mustUser(c)
	if !ok {
		return models.Property{}, models.User{}, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return models.Property{}, models.User{}, false
	}

	property, ok := h.db.GetProperty(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return models.Property{}, models.User{}, false
	}
	if property.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden})
		return models.Property{}, models.User{}, false
	}
	return property, user, true
}
