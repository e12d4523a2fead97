package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetNutritionAnalysis(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	logs, err := services.GetUserFoodLogs(user.ID, queryInt(c, "days", 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, nutritionSvc.Analyze(logs))
}

func GetActivityAnalysis(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	logs, err := services.GetUserExerciseLogs(user.ID, queryInt(c, "days", 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activitySvc.Analyze(logs, user.Weight))
}

func GetPredictions(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	predictions, err := predictorSvc.PredictProgress(user.ID, queryInt(c, "weeks", 4))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"predictions":      predictions,
		"goal_achievement": predictorSvc.AnalyzeGoalAchievement(predictions, user.HealthGoals),
	})
}

func GetTrends(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	slopes, err := predictorSvc.TrendSummary(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_slopes": slopes})
}
