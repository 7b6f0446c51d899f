package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ProviderError surfaces an upstream provider failure with the provider's
// payload embedded, so the admin UI can show the raw reason.
func ProviderError(c *gin.Context, code string, message string, payload any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":     code,
			"message":  message,
			"provider": payload,
		},
	})
}

// Accepted acknowledges fire-and-forget telemetry without a body. Tracking
// endpoints answer this even when the event was dropped.
func Accepted(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
