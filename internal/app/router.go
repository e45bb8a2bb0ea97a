package app

import (
	"trivia_backend/docs"
	"trivia_backend/internal/middleware"
	"trivia_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = apiPrefix
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.NoRoute(middleware.NoRoute)
	router.NoMethod(middleware.NoMethod)

	api := router.Group(apiPrefix)
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/categories", c.category.GetCategories)
		api.GET("/categories/:id/questions", c.category.GetCategoryQuestions)

		api.GET("/questions", c.question.GetQuestions)
		api.POST("/questions", c.question.PostQuestions)
		api.GET("/questions/:id", c.question.GetQuestion)
		api.PATCH("/questions/:id", c.question.UpdateQuestion)
		api.DELETE("/questions/:id", c.question.DeleteQuestion)

		api.POST("/quizzes", c.quiz.PlayQuiz)
	}
}
