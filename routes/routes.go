package routes

import (
	"net/http"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/handlers"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/middleware"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, h *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.JWTAuthUserMiddleware(h.UserRepo)
	ownerOnly := middleware.RequireRole(h.UserRepo, models.RoleOwner, models.RoleAdmin)
	adminOnly := middleware.RequireRole(h.UserRepo, models.RoleAdmin)

	api := r.Group("/api")

	// Public: accounts and discovery.
	api.POST("/auth/register", h.RegisterUserHandler)
	api.POST("/auth/verify-otp", h.VerifyOTPHandler)
	api.POST("/auth/login", h.LoginHandler)
	api.GET("/venues", h.SearchVenuesHandler)
	api.GET("/venues/:id", h.GetVenueHandler)
	api.GET("/courts", h.GetCourtsBySportHandler)
	api.GET("/courts/:id", h.GetCourtHandler)
	api.GET("/courts/:id/availability", h.GetCourtAvailabilityHandler)

	// Signed-in users.
	authed := api.Group("", auth)
	authed.POST("/auth/logout", h.LogoutHandler)
	authed.GET("/me", h.GetProfileHandler)
	authed.PUT("/me", h.UpdateProfileHandler)
	authed.PUT("/me/password", h.UpdatePasswordHandler)
	authed.PUT("/me/fcm-token", h.UpdateFCMTokenHandler)
	authed.DELETE("/me", h.DeleteAccountHandler)
	authed.GET("/me/loyalty", h.GetLoyaltyHandler)
	authed.POST("/me/avatar", h.UploadAvatarHandler)

	authed.POST("/bookings", h.CreateBookingHandler)
	authed.GET("/bookings", h.GetMyBookingsHandler)
	authed.GET("/bookings/:id", h.GetBookingHandler)
	authed.POST("/bookings/:id/confirm-payment", h.ConfirmPaymentHandler)
	authed.POST("/bookings/:id/cancel", h.CancelBookingHandler)

	authed.POST("/chat/messages", h.SendMessageHandler)
	authed.GET("/chat/conversations", h.GetConversationsHandler)
	authed.GET("/chat/conversations/:id/messages", h.GetMessagesHandler)
	authed.POST("/chat/conversations/:id/read", h.MarkReadHandler)

	// Venue owners.
	owner := api.Group("/owner", auth, ownerOnly)
	owner.GET("/venues", h.GetMyVenuesHandler)
	owner.POST("/venues", h.CreateVenueHandler)
	owner.PUT("/venues/:id", h.UpdateVenueHandler)
	owner.DELETE("/venues/:id", h.DeleteVenueHandler)
	owner.POST("/venues/:id/images", h.UploadVenueImageHandler)
	owner.GET("/venues/:id/bookings", h.GetVenueBookingsHandler)
	owner.POST("/courts", h.CreateCourtHandler)
	owner.PUT("/courts/:id", h.UpdateCourtHandler)
	owner.DELETE("/courts/:id", h.DeleteCourtHandler)
	owner.PUT("/courts/:id/availability", h.SetCourtAvailabilityHandler)
	owner.PUT("/courts/:id/pricing", h.SetCourtPricingHandler)
	owner.POST("/bookings/:id/complete", h.CompleteBookingHandler)

	// Admin console.
	admin := api.Group("/admin", auth, adminOnly)
	admin.GET("/users", h.AdminListUsersHandler)
	admin.PUT("/users/:id/ban", h.AdminBanUserHandler)
	admin.GET("/venues", h.AdminPendingVenuesHandler)
	admin.POST("/venues/:id/approve", h.AdminApproveVenueHandler)
	admin.POST("/venues/:id/reject", h.AdminRejectVenueHandler)
	admin.GET("/stats", h.AdminStatsHandler)
}
