package routes

import (
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lakehouse/handlers"
	"lakehouse/middleware"
)

// RegisterSeasonRoutes registers the read-only season surface. Reads work
// without a token so the SPA can render the week table before sign-in.
func RegisterSeasonRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/seasons")
	api.Use(middleware.FirebaseAuthMiddleware(authClient, false))
	{
		api.GET("/:year/rounds", hb.Season.GetRounds)
		api.GET("/:year/weeks", hb.Season.GetWeeks)
		api.GET("/:year/units", hb.Season.GetUnits)
		api.GET("/:year/tiers", hb.Season.GetTiers)
		api.GET("/:year/pricing", hb.Season.GetPricing)
		api.GET("/:year/bookers", hb.Season.GetBookers)
		api.GET("/:year/reservations", hb.Reservation.List)
		api.GET("/:year/reservations/stream", hb.Reservation.Stream)
		api.GET("/:year/audit-log", hb.Reservation.GetAuditLog)
	}

	// Mutations require a signed-in user.
	protected := r.Group("/api/seasons")
	protected.Use(middleware.FirebaseAuthMiddleware(authClient, true))
	{
		protected.POST("/:year/reservations", hb.Reservation.Create)
	}
}

// RegisterReservationRoutes registers edit and delete on single reservations.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/reservations")
	api.Use(middleware.FirebaseAuthMiddleware(authClient, true))
	{
		api.PUT("/:id", hb.Reservation.Update)
		api.DELETE("/:id", hb.Reservation.Delete)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.FirebaseAuthMiddleware(authClient, true))
	adminGroup.Use(hb.Admin.RequireAdmin())
	{
		adminGroup.PUT("/seasons/:year/rounds", hb.Admin.SaveRounds)
		adminGroup.PUT("/seasons/:year/weeks", hb.Admin.SaveWeeks)
		adminGroup.PUT("/seasons/:year/pricing", hb.Admin.SaveUnitPricing)
		adminGroup.PUT("/seasons/:year/document", hb.Admin.SetAnnualDocument)
		adminGroup.PUT("/tiers", hb.Admin.SaveTier)
		adminGroup.PUT("/units", hb.Admin.SaveUnit)
		adminGroup.POST("/passwords", hb.Admin.SetPassword)

		adminGroup.POST("/files/:folder", hb.Storage.UploadFile)
		adminGroup.DELETE("/files/:folder/:filename", hb.Storage.DeleteFile)
	}
}

// RegisterFileRoutes registers the shared-document read surface.
func RegisterFileRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/files")
	api.Use(middleware.FirebaseAuthMiddleware(authClient, false))
	{
		api.GET("/:folder", hb.Storage.ListFiles)
		api.GET("/:folder/:filename/url", hb.Storage.GetDownloadURL)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Booker-Override", "X-Today-Override"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSeasonRoutes(r, hb, authClient)
	RegisterReservationRoutes(r, hb, authClient)
	RegisterAdminRoutes(r, hb, authClient)
	RegisterFileRoutes(r, hb, authClient)
}
