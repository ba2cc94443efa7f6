package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	idParam := c.Param(parameter)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}

// GetQueryParameter parses the required query parameter as an id.
func GetQueryParameter(c *gin.Context, parameter string) (uint, bool) {
	value, ok := c.GetQuery(parameter)
	if !ok || value == "" {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("Missing query parameter: %s", parameter))
		return 0, false
	}

	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}
