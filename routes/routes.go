package routes

import (
	"barberhub-backend/config"
	"barberhub-backend/controllers"
	"barberhub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://barberhub.example.com",
			"http://localhost:3000",
			"http://localhost:5500",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public storefront surface: browse, search, view, book.
	shops := r.Group("/shops")
	{
		shops.GET("", controllers.GetShops)
		shops.GET("/:id", controllers.GetShop)
		shops.POST("/:id/bookings", controllers.CreateBooking)
	}

	// Owner dashboard surface, scoped to the shop in the session token.
	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.PUT("/:id/status", controllers.UpdateBookingStatus)
		}

		profile := api.Group("/profile")
		{
			profile.PUT("/shop", controllers.UpdateShop)
			profile.DELETE("/shop", controllers.DeleteShop)
			profile.POST("/logo", controllers.UploadLogo)
		}

		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
