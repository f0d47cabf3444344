package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles the GET /health endpoint for deployment probes
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
