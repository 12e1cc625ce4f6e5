package response

import "github.com/gin-gonic/gin"

// Error writes the flat error payload used across the v1 API.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
