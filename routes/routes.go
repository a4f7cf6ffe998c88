package routes

import (
	"net/http"
	"time"

	"utsavia/devstore"
	"utsavia/handlers"
	"utsavia/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the vendor API contract.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, store *devstore.Store) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "vendorid"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.SignUpHandler)
		auth.POST("/signin", h.SignInHandler)
		auth.POST("/refresh-token", h.RefreshTokenHandler)

		// Protected routes (Require Authentication)
		auth.Use(middleware.JWTAuthMiddleware(store))
		auth.GET("/profile", h.GetProfileHandler)
		auth.POST("/profile/update", h.UpdateProfileHandler)
	}

	items := r.Group("/api/items")
	{
		items.POST("/add", h.AddItemHandler)
		items.GET("/fetch", h.FetchItemsHandler)
		items.DELETE("/:id", h.DeleteItemHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		// Cancellation is unauthenticated per the backend contract.
		bookings.PUT("/:id/cancel", h.CancelBookingHandler)

		protected := bookings.Group("")
		protected.Use(middleware.JWTAuthMiddleware(store))
		protected.GET("", h.FetchBookingsHandler)
		protected.GET("/confirmed", h.FetchConfirmedBookingsHandler)
		protected.PUT("/:id/confirm", h.ConfirmBookingHandler)
	}

	RegisterHealthRoute(r)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Utsavia vendor dev server"})
	})
}
