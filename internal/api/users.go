package api

import (
	"errors"
	"net/http"
	"realestate/server/internal/database"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if input.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be self-registered"})
		return
	}

	user, err := h.db.CreateUser(input)
	switch {
	case errors.Is(err, database.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	case errors.Is(err, database.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	h.logger.WithField("user_id", user.ID).Info("User registered")
	c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, ok := h.db.Authenticate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// Logout is an acknowledgement only; tokens expire on their own
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}

	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updated, ok := h.db.UpdateUser(user.ID, update)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetMyProperties(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.db.PropertiesByOwner(user.ID))
}
