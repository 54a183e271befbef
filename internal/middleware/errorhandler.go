package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmendes/etsypulse/internal/domain/dto"
)

// ErrorHandler converts errors attached to the Gin context into a JSON error
// response, for handlers that use c.Error instead of writing a body.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, msg string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(msg, err))
}
