package main

import (
	"fmt"
	"log"
	"os"

	"barberhub-backend/config"
	"barberhub-backend/controllers"
	"barberhub-backend/models"
	"barberhub-backend/routes"
	"barberhub-backend/services"
	"barberhub-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	st, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}
	controllers.Init(st)

	reminders := services.NewReminderService(st, st)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// openStore picks the storage backend once at startup: a hosted postgres
// database, or a JSON file store under DATA_DIR.
func openStore() (store.Store, error) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "local"
	}

	switch backend {
	case "postgres":
		config.ConnectDB()
		config.DB.AutoMigrate(
			&models.User{},
			&models.Shop{},
			&models.Service{},
			&models.Booking{},
		)
		log.Println("Using postgres storage backend")
		return store.NewPostgresStore(config.DB), nil
	case "local":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		log.Printf("Using local storage backend in %s", dir)
		return store.NewLocalStore(dir)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
