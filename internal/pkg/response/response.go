package response

import (
	"github.com/gin-gonic/gin"

	"vidtube/internal/pkg/apperr"
)

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

func Failure(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
}

// Err converts a domain error into the failure envelope. This is the single
// boundary between error values and the response channel.
func Err(c *gin.Context, err error) {
	e := apperr.From(err)
	Failure(c, e.Status, e.Message)
}
