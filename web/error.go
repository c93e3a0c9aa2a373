package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// fail converts a store/runtime failure into the error page. The message is
// template-escaped on render, never raw HTML.
func fail(c *gin.Context, err error) {
	log.Printf("request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": err.Error()})
	c.Abort()
}
