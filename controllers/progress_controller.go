package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func AddProgressEntry(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	var input services.ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.ValidateProgressInput(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddProgressEntry(user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func GetProgress(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	entries, err := services.GetUserProgress(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
