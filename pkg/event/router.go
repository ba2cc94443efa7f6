package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(r gin.IRouter, authenticator gin.HandlerFunc, handler Handler) {
	router := r.Group("")
	router.Use(authenticator)
	router.POST("/post_event", handler.Create)
	router.GET("/post_event", handler.FindAll)
	router.GET("/get_events", handler.FindAll)
	router.GET("/get_event", handler.FindById)
}
