package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jesbridge/backend/internal/handler"
	"jesbridge/backend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.L().Info("no .env file found, using environment as-is")
	}
	logger.Init()

	r := gin.Default()

	// Permissive CORS for frontend development; not a security boundary.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
	}))
	r.Use(handler.RequestID())

	r.GET("/health", handler.HealthHandler)
	r.POST("/run", handler.RunHandler)
	r.POST("/run/export", handler.ExportHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.L().WithField("port", port).Info("starting JES bridge")
	if err := r.Run(":" + port); err != nil {
		logger.L().WithError(err).Fatal("server exited")
	}
}
