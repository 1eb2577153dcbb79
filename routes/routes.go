package routes

import (
	"menuswap-api/config"
	"menuswap-api/handlers"
	"menuswap-api/middleware"
	"menuswap-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Search (ranked)
		public.POST("/search/dishes", handlers.SearchDishes)
		public.POST("/search/restaurants", handlers.SearchRestaurants)

		// Browse (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:city/:slug", handlers.GetRestaurant)
		public.GET("/restaurants/:city/:slug/menu", handlers.GetRestaurantMenu)
		public.GET("/dishes/popular", handlers.GetPopularDishes)
		public.GET("/dishes/:city/:slug", handlers.GetDish)
		public.GET("/cities", handlers.GetCities)
		public.GET("/stats", handlers.GetStats)

		// Moderation lifecycle info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── SEO files ──────────────────────────────────────────────────
	r.GET("/sitemap.xml", handlers.GetSitemapIndex)
	r.GET("/sitemaps/:name", handlers.GetSitemap)
	r.Static("/uploads", config.UploadsDir)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Owner routes ───────────────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner, models.RoleAdmin))
	{
		owner.POST("/menus", handlers.SubmitMenu)
		owner.PUT("/menus/:id/resubmit", handlers.ResubmitMenu)
		owner.POST("/uploads", handlers.UploadFile)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/menus", handlers.AdminGetMenus)
		admin.PUT("/menus/:id/status", handlers.AdminUpdateMenuStatus)
		admin.POST("/menus/:id/items", handlers.AdminImportMenuItems)
		admin.POST("/restaurants", handlers.AdminCreateRestaurant)
		admin.PUT("/restaurants/:id/verify", handlers.AdminVerifyRestaurant)
	}
}
