package api

import (
	"errors"
	"net/http"
	"realestate/server/internal/database"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAgents(c *gin.Context) {
	limit := limitQuery(c, database.DefaultAgentsLimit)
	c.JSON(http.StatusOK, h.db.AgentsWithUsers(limit))
}

func (h *Handler) GetAgent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, ok := h.db.AgentWithUser(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateAgent registers an agent profile for the calling user
func (h *Handler) CreateAgent(c *gin.Context) {
	user, ok := h.mustUser(c)
	if !ok {
		return
	}

	var input models.AgentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	input.UserID = user.ID

	agent, err := h.db.CreateAgent(input)
	if errors.Is(err, database.ErrAgentExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Agent profile already exists"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to create agent")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
		return
	}

	profile, _ := h.db.AgentWithUser(agent.ID)
	c.JSON(http.StatusCreated, profile)
}
