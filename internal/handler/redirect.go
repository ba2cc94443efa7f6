package handler

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// RedirectToSibling answers with 302 Found pointing at the route named sibling which shares the
// current request's parent path.
func RedirectToSibling(c *gin.Context, sibling string) {
	location := path.Join(path.Dir(c.Request.URL.Path), sibling)
	c.Redirect(http.StatusFound, location)
}
