package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/users", controllers.Register)
	// :id also accepts a username for profile lookup
	r.GET("/users/:id", controllers.GetUser)

	user := r.Group("/users/:id")
	{
		user.POST("/food-logs", controllers.AddFoodLog)
		user.GET("/food-logs", controllers.GetFoodLogs)

		user.POST("/exercise-logs", controllers.AddExerciseLog)
		user.GET("/exercise-logs", controllers.GetExerciseLogs)

		user.POST("/progress", controllers.AddProgressEntry)
		user.GET("/progress", controllers.GetProgress)

		user.POST("/recommendations", controllers.GenerateRecommendation)
		user.GET("/recommendations", controllers.GetRecommendations)

		user.GET("/analytics/nutrition", controllers.GetNutritionAnalysis)
		user.GET("/analytics/activity", controllers.GetActivityAnalysis)
		user.GET("/predictions", controllers.GetPredictions)
		user.GET("/trends", controllers.GetTrends)

		user.GET("/cohort", controllers.GetCohort)
	}

	r.POST("/clusters/rebuild", controllers.RebuildClusters)

	return r
}
