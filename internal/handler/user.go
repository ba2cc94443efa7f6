package handler

import (
	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin"
)

// GetUserIDFromContext returns the id of the user authenticated by the token middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	id, ok := model.GetUserIDFromContext(c.Request.Context())
	if !ok {
		return 0, errdef.NewUnauthorized("user not found on context")
	}
	return id, nil
}
