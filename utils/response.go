package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    data,
	})
}

// Error writes the uniform error shape: non-2xx responses always carry an
// "error" string.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
