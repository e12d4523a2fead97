package controllers

import (
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	clusteringSvc *services.ClusteringService
	recSvc        *services.RecService
	nutritionSvc  *services.NutritionService
	activitySvc   *services.ActivityService
	predictorSvc  *services.PredictorService
)

// Init wires the stateful services. Call once after the database is up.
func Init(db *gorm.DB) {
	clusteringSvc = services.NewClusteringService(db)
	recSvc = services.NewRecService(db, clusteringSvc)
	nutritionSvc = services.NewNutritionService(db)
	activitySvc = services.NewActivityService(db)
	predictorSvc = services.NewPredictorService(db)
}

// pathUser resolves the :id param to a stored user, writing the error
// response itself when that fails.
func pathUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return nil, false
	}
	user, err := services.GetUserByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return nil, false
	}
	return user, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
