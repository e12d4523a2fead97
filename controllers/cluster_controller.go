package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RebuildClusters refits the cohort model over all users. ?k= fixes the
// cluster count; otherwise it is silhouette-tuned.
func RebuildClusters(c *gin.Context) {
	count, err := clusteringSvc.Rebuild(queryInt(c, "k", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clusters": count,
		"profiles": clusteringSvc.Profiles(),
	})
}

// GetCohort returns the user's cluster, its profile, and similar users.
func GetCohort(c *gin.Context) {
	user, ok := pathUser(c)
	if !ok {
		return
	}

	cluster := clusteringSvc.UserCluster(user.ID)
	resp := gin.H{
		"cluster":       cluster,
		"similar_users": clusteringSvc.SimilarUsers(user.ID, queryInt(c, "top", 5)),
	}
	if cluster != -1 {
		if profile, ok := clusteringSvc.Profiles()[cluster]; ok {
			resp["profile"] = profile
		}
		resp["recommendations"] = clusteringSvc.ClusterRecommendations(cluster)
	}
	c.JSON(http.StatusOK, resp)
}
