// Package handlers contains HTTP request handlers for the blog service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/middleware"
	"github.com/goblog/blog-service/internal/session"
)

// render wraps c.HTML, adding the current user and any pending flash
// messages to the template data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = middleware.CurrentUser(c)
	data["Flashes"] = session.Flashes(c)
	c.HTML(status, name, data)
}

// renderNotFound responds with the 404 page.
func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", nil)
}
