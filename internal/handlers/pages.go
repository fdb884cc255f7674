package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static informational pages.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler instance.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// About renders the about page.
func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

// Contact renders the contact page.
func (h *PageHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}

// NotFound is the router-level fallback for unknown paths.
func (h *PageHandler) NotFound(c *gin.Context) {
	renderNotFound(c)
}
