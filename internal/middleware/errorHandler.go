package middleware

import (
	"fmt"
	"net/http"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error added to the context as {"error": "<message>"}. The status
// is derived from the errdef type of the error. Unknown errors are rendered as 500 along with the
// correlation id of the request.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil || c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errdef.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errdef.IsDuplicated(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errdef.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errdef.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		} else if errdef.IsUnsupportedMediaType(err) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		} else {
			body := gin.H{"error": err.Error()}
			if id, ok := GetCorrelationID(c.Request.Context()); ok {
				body["correlationId"] = id
				body["message"] = fmt.Sprintf("something went wrong. We'll look into it if you send us the id %q :)", id)
			}
			c.JSON(http.StatusInternalServerError, body)
		}
	}
}
