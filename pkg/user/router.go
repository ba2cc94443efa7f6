package user

import (
	"github.com/gin-gonic/gin"
)

// Routes registers the user routes. authenticator guards the domain routes while deleting a user
// always goes through tokenAuthenticator.
func Routes(r gin.IRouter, authenticator gin.HandlerFunc, tokenAuthenticator gin.HandlerFunc, handler Handler) {
	r.POST("/register", handler.SignUp)
	r.POST("/login", handler.SignIn)

	router := r.Group("")
	router.Use(authenticator)
	router.GET("/get_users", handler.FindAll)
	router.GET("/get_user", handler.FindById)
	router.PUT("/update_user/:id", handler.Update)

	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(tokenAuthenticator)
	tokenAuthenticationRouter.DELETE("/delete_user/:id", handler.Delete)
}
