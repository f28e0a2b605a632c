package routes

import (
	"prescription-screening-server/internal/config"
	"prescription-screening-server/internal/consultation"
	"prescription-screening-server/internal/handlers"
	"prescription-screening-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, service *consultation.Service, cfg *config.Config) {
	consultationHandler := handlers.NewConsultationHandler(service)

	// All consultation operations require an authenticated patient; the
	// middleware supplies the acting identity.
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		// gin requires one wildcard name per segment position, so both
		// routes bind :id (a product id for questions, a consultation id
		// for answers).
		consultationRoutes := private.Group("/consultations")
		{
			// Opens a screening session and returns the product's questions
			consultationRoutes.GET("/:id/questions", consultationHandler.GetQuestions)

			// Submits answers and returns the eligibility verdict
			consultationRoutes.POST("/:id/answers", consultationHandler.SubmitAnswers)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
