package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the unauthenticated liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Backend VoluntAí está online!",
	})
}
