package main

import (
	"log"
	"net/http"
	"time"

	"github.com/recisbogor/recup-backend/config"
	"github.com/recisbogor/recup-backend/controllers"
	"github.com/recisbogor/recup-backend/routes"
	"github.com/recisbogor/recup-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hi, this is a debugging text. If you're seeing this, it means that you've connected with the server.")
	})

	routes.SetupRoutes(r)
	return r
}

func main() {
	cfg := config.Load()

	config.SetupDatabase(cfg)
	config.ConnectRedis(cfg)

	uploader, err := services.NewCloudinaryUploader(cfg)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	controllers.Media = uploader
	controllers.Payments = services.NewMidtransGateway(cfg)
	controllers.MidtransServerKey = cfg.MidtransServerKey

	router := setupRouter()

	log.Printf("🚀 Registration backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
