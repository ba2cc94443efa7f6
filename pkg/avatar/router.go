package avatar

import (
	"github.com/gin-gonic/gin"
)

func Routes(r gin.IRouter, authenticator gin.HandlerFunc, handler Handler) {
	r.GET(URLPath+":filename", handler.Get)

	router := r.Group("")
	router.Use(authenticator)
	router.POST("/upload_avatar/:id", handler.Upload)
}
