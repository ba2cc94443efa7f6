package health

import (
	"github.com/gin-gonic/gin"
)

func Routes(r gin.IRouter, handler Handler) {
	r.POST("/test_post", handler.TestPost)
	r.GET("/test_get", handler.TestGet)
}
