package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GenerateRecommendation builds a fresh plan snapshot and persists it.
func GenerateRecommendation(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	rec, err := recSvc.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func GetRecommendations(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	recs, err := services.GetUserRecommendations(user.ID, queryInt(c, "limit", 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}
