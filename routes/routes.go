package routes

import (
	"bam-burgers-api/handlers"
	"bam-burgers-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public storefront ──────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)

		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/categories", handlers.GetCategories)
		public.GET("/restaurant", handlers.GetRestaurantInfo)
		public.GET("/loyalty/rewards", handlers.GetRewards)

		public.POST("/coupons/validate", handlers.ValidateCoupon)
		public.POST("/cart/quote", handlers.QuoteCart)

		public.POST("/orders", handlers.PlaceOrder)
		public.GET("/orders/:orderNumber", handlers.TrackOrder)
		public.GET("/orders/:orderNumber/events", handlers.StreamOrder)
		public.PUT("/orders/:orderNumber/cancel", handlers.CancelMyOrder)
	}

	// ── Admin back office ──────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/profile", handlers.GetProfile)

		// Menu management
		admin.GET("/menu", handlers.AdminListMenu)
		admin.POST("/menu", handlers.AdminCreateMenuItem)
		admin.PUT("/menu/:id", handlers.AdminUpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.AdminDeleteMenuItem)

		// Order management
		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/orders/:id", handlers.AdminGetOrder)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/cancel", handlers.AdminCancelOrder)

		// Coupons
		admin.GET("/coupons", handlers.AdminListCoupons)
		admin.POST("/coupons", handlers.AdminCreateCoupon)
		admin.PUT("/coupons/:id", handlers.AdminUpdateCoupon)
		admin.DELETE("/coupons/:id", handlers.AdminDeleteCoupon)

		// Loyalty program
		admin.GET("/loyalty/settings", handlers.AdminGetLoyaltySettings)
		admin.PUT("/loyalty/settings", handlers.AdminUpdateLoyaltyRate)
		admin.POST("/loyalty/rewards", handlers.AdminCreateReward)
		admin.PUT("/loyalty/rewards/:id", handlers.AdminUpdateReward)
		admin.DELETE("/loyalty/rewards/:id", handlers.AdminDeleteReward)
		admin.GET("/customers", handlers.AdminListCustomers)

		// Store settings
		admin.GET("/settings", handlers.AdminGetSettings)
		admin.PUT("/settings/:key", handlers.AdminSaveSettings)
		admin.GET("/mode", handlers.AdminGetMode)
		admin.POST("/mode", handlers.AdminSwitchMode)

		// Delivery partners
		admin.GET("/delivery/providers", handlers.AdminListProviders)
		admin.PUT("/delivery/providers/:id", handlers.AdminUpdateProvider)
	}
}
