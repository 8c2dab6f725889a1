package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck verifies the database connection with a trivial query.
func (h *Handler) HealthCheck(c *gin.Context) {
	var result int
	if err := h.DB.Raw("SELECT 1").Scan(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Database connection successful",
		"data":    result,
	})
}
