package main

import (
	"fmt"
	"log"
	"os"

	"barberq-backend/config"
	"barberq-backend/models"
	"barberq-backend/routes"
	"barberq-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Salon{},
		&models.Chair{},
		&models.Service{},
		&models.Barber{},
		&models.QueueEntry{},
		&models.User{},
	)

	if err := services.Bootstrap(config.DB); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}
}

func main() {
	cleanup := services.NewCleanupService(config.DB)
	cleanup.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
