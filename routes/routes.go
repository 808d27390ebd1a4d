package routes

import (
	"os"
	"strings"

	"barberq-backend/config"
	"barberq-backend/controllers"
	"barberq-backend/models"
	"barberq-backend/services"
	"barberq-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	queueService := services.NewQueueService(services.NewGormStore(config.DB))
	queueController := controllers.NewQueueController(queueService)

	// Public endpoints: directory, booking form data, booking and tracking
	public := r.Group("/api/public")
	{
		public.GET("/salons", controllers.GetPublicSalons)
		public.GET("/salons/:slug", controllers.GetPublicSalon)
		public.GET("/salons/:slug/wait", queueController.GetWaitEstimate)
		public.POST("/salons/:slug/queue", queueController.SubmitBooking)
		public.GET("/queue/:id", queueController.TrackEntry)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Queue console
		queue := api.Group("/queue")
		{
			queue.GET("", queueController.GetQueue)
			queue.PUT("/:id/status", queueController.UpdateStatus)
			queue.DELETE("/history", queueController.ClearHistory)
		}

		api.GET("/dashboard", queueController.Dashboard)

		// Service routes
		serviceRoutes := api.Group("/services")
		{
			serviceRoutes.POST("", controllers.CreateService)
			serviceRoutes.GET("", controllers.GetServices)
			serviceRoutes.GET("/:id", controllers.GetService)
			serviceRoutes.PUT("/:id", controllers.UpdateService)
			serviceRoutes.DELETE("/:id", controllers.DeleteService)
		}

		// Barber routes
		barbers := api.Group("/barbers")
		{
			barbers.POST("", controllers.CreateBarber)
			barbers.GET("", controllers.GetBarbers)
			barbers.PUT("/:id", controllers.UpdateBarber)
			barbers.DELETE("/:id", controllers.DeleteBarber)
		}

		// Chair routes
		chairs := api.Group("/chairs")
		{
			chairs.POST("", controllers.CreateChair)
			chairs.GET("", controllers.GetChairs)
			chairs.DELETE("/:id", controllers.DeleteChair)
		}

		// System routes (super admin only)
		salons := api.Group("/salons", utils.RequireRole(models.RoleSuperAdmin))
		{
			salons.POST("", controllers.CreateSalon)
			salons.GET("", controllers.GetSalons)
		}

		users := api.Group("/users", utils.RequireRole(models.RoleSuperAdmin))
		{
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.DELETE("/:id", controllers.DeleteUser)
		}

		maintenance := api.Group("/maintenance", utils.RequireRole(models.RoleSuperAdmin))
		{
			maintenance.GET("/export", controllers.ExportData)
			maintenance.POST("/import", controllers.ImportData)
			maintenance.POST("/reset", controllers.ResetData)
		}
	}

	return r
}
