package api

import (
	"net/http"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, h.db.ListCities())
}

func (h *Handler) GetCity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	city, ok := h.db.GetCity(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *Handler) GetCityLocalities(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.db.LocalitiesByCity(id))
}

func (h *Handler) GetCityProperties(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.db.PropertiesByCity(id))
}

func (h *Handler) CreateCity(c *gin.Context) {
	var input models.CityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	city := h.db.CreateCity(input)
	h.logger.WithField("city_id", city.ID).Info("City created")
	c.JSON(http.StatusCreated, city)
}

func (h *Handler) CreateLocality(c *gin.Context) {
	cityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input models.LocalityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if _, ok := h.db.GetCity(cityID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	input.CityID = cityID
	c.JSON(http.StatusCreated, h.db.CreateLocality(input))
}

func (h *Handler) GetLocality(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	locality, ok := h.db.GetLocality(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locality not found"})
		return
	}
	c.JSON(http.StatusOK, locality)
}
