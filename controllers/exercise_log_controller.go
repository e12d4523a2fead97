package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func AddExerciseLog(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	var input services.ExerciseLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.ValidateExerciseLogInput(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.AddExerciseLog(user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func GetExerciseLogs(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	logs, err := services.GetUserExerciseLogs(user.ID, queryInt(c, "days", 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
