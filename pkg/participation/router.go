package participation

import (
	"github.com/gin-gonic/gin"
)

func Routes(r gin.IRouter, authenticator gin.HandlerFunc, handler Handler) {
	router := r.Group("")
	router.Use(authenticator)
	router.POST("/post_participation", handler.Upsert)
	router.GET("/post_participation", handler.FindAll)
	router.GET("/get_participations", handler.FindAll)
	router.GET("/get_participation", handler.Find)
	router.GET("/get_user_part/:id", handler.FindByUser)
	router.GET("/get_event_part/:id", handler.FindByEvent)
	router.GET("/delete", handler.DeleteAll)
}
