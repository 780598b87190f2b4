package main

import (
	"net/http"
	"os"

	"bam-burgers-api/config"
	"bam-burgers-api/handlers"
	"bam-burgers-api/logger"
	"bam-burgers-api/orders"
	"bam-burgers-api/realtime"
	"bam-burgers-api/routes"
	"bam-burgers-api/seed"
	"bam-burgers-api/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer log.Sync()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.Load()
	config.InitDB(log)

	settingsSvc := settings.NewService(config.DB, log)
	hub := realtime.NewHub(log)

	// Optional: fan change events out to RabbitMQ for external consumers
	if config.AMQPURL != "" {
		broadcaster, err := realtime.DialAMQP(config.AMQPURL, log)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer broadcaster.Close()
		hub.Attach(broadcaster)
		log.Info("AMQP event fanout enabled")
	}

	ordersSvc := orders.NewService(config.DB, settingsSvc, hub, log)
	handlers.Setup(settingsSvc, ordersSvc, hub, log)

	if err := seed.Run(config.DB, settingsSvc, log); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for the storefront frontend
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Bam Burgers Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r)

	port := config.Port()
	log.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
