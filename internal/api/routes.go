package api

import (
	"net/http"
	"realestate/server/internal/auth"
	"realestate/server/internal/models"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	// AllowedOrigins enables CORS for the listed origins. Empty disables it.
	AllowedOrigins []string

	// Middleware runs before every route, after logging and CORS
	Middleware []gin.HandlerFunc

	// Metrics is served at /metrics when set
	Metrics http.Handler
}

// NewRouter builds the engine with the standard middleware stack and all
// routes registered
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.logger))

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(opts.Middleware...)

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	SetupRoutes(router, h)
	return router
}

func SetupRoutes(router *gin.Engine, h *Handler) {
	requireUser := auth.RequireUser(h.tokens, h.db)
	optionalUser := auth.OptionalUser(h.tokens, h.db)
	adminOnly := auth.RequireRole(models.RoleAdmin)

	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)

		api.GET("/user", requireUser, h.GetCurrentUser)
		api.PATCH("/user", requireUser, h.UpdateCurrentUser)
		api.GET("/user/properties", requireUser, h.GetMyProperties)

		api.GET("/cities", h.GetCities)
		api.GET("/cities/:id", h.GetCity)
		api.GET("/cities/:id/localities", h.GetCityLocalities)
		api.GET("/cities/:id/properties", h.GetCityProperties)
		api.POST("/cities", requireUser, adminOnly, h.CreateCity)
		api.POST("/cities/:id/localities", requireUser, adminOnly, h.CreateLocality)
		api.GET("/localities/:id", h.GetLocality)

		api.GET("/properties", h.GetProperties)
		api.GET("/properties/featured", h.GetFeaturedProperties)
		api.GET("/properties/recent", h.GetRecentProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.POST("/properties", requireUser, h.CreateProperty)
		api.PUT("/properties/:id", requireUser, h.UpdateProperty)
		api.DELETE("/properties/:id", requireUser, h.DeleteProperty)
		api.GET("/properties/:id/inquiries", requireUser, h.GetPropertyInquiries)
		api.GET("/stats", h.GetPropertyStats)

		api.GET("/agents", h.GetAgents)
		api.GET("/agents/:id", h.GetAgent)
		api.POST("/agents", requireUser, h.CreateAgent)

		api.GET("/favorites", requireUser, h.GetFavorites)
		api.POST("/favorites", requireUser, h.AddFavorite)
		api.DELETE("/favorites/:propertyId", requireUser, h.RemoveFavorite)

		api.POST("/inquiries", optionalUser, h.CreateInquiry)
		api.GET("/inquiries", requireUser, h.GetInquiries)
		api.PATCH("/inquiries/:id", requireUser, h.UpdateInquiryStatus)

		api.GET("/activity", requireUser, adminOnly, h.GetActivity)
	}
}
