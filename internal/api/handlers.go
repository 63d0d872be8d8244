package api

import (
	"net/http"
	"os"
	"realestate/server/internal/auth"
	"realestate/server/internal/database"
	"realestate/server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EventPublisher receives a record of every successful catalog mutation
type EventPublisher interface {
	Publish(event models.ListingEvent)
}

// ActivityReader serves the archived events behind /api/activity
type ActivityReader interface {
	Recent(limit int, kind models.EventKind) ([]models.ListingEvent, error)
}

type discardEvents struct{}

func (discardEvents) Publish(models.ListingEvent) {}

type Handler struct {
	db       *database.Database
	logger   *logrus.Logger
	tokens   *auth.Manager
	events   EventPublisher
	activity ActivityReader
}

type HandlerOption func(*Handler)

func WithEvents(events EventPublisher) HandlerOption {
	return func(h *Handler) {
		h.events = events
	}
}

func WithActivity(activity ActivityReader) HandlerOption {
	return func(h *Handler) {
		h.activity = activity
	}
}

func NewHandler(db *database.Database, tokens *auth.Manager, logger *logrus.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	h := &Handler{
		db:     db,
		logger: logger,
		tokens: tokens,
		events: discardEvents{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) GetActivity(c *gin.Context) {
	if h.activity == nil {
		c.JSON(http.StatusOK, []models.ListingEvent{})
		return
	}

	limit := limitQuery(c, 50)
	events, err := h.activity.Recent(limit, models.EventKind(c.Query("kind")))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get activity")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// publish records a mutation of property p
func (h *Handler) publish(kind models.EventKind, p models.Property, userID int64, detail string) {
	cityID := p.CityID
	h.events.Publish(models.ListingEvent{
		Kind:       kind,
		PropertyID: p.ID,
		CityID:     &cityID,
		UserID:     &userID,
		Detail:     detail,
	})
}

// mustUser returns the authenticated user. Routes using it sit behind
// auth.RequireUser, so a missing user is answered with 401 defensively.
func (h *Handler) mustUser(c *gin.Context) (models.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return user, ok
}
