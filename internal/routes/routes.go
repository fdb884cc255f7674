// Package routes defines HTTP routes for the blog service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/handlers"
	"github.com/goblog/blog-service/internal/middleware"
)

// Setup configures all HTTP routes for the application. loadUser must run
// before any handler so the current user is available everywhere.
func Setup(
	router *gin.Engine,
	loadUser gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	pageHandler *handlers.PageHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(loadUser)

	router.GET("/healthz", healthHandler.Check)

	// Public pages
	router.GET("/", postHandler.Index)
	router.GET("/about", pageHandler.About)
	router.GET("/contact", pageHandler.Contact)
	router.GET("/post/:id", postHandler.Show)
	router.POST("/post/:id", postHandler.Comment)

	// Account routes
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Post management, admin only. Delete is gated like create and edit.
	admin := router.Group("/", middleware.AdminOnly())
	{
		admin.GET("/new-post", postHandler.ShowNew)
		admin.POST("/new-post", postHandler.Create)
		admin.GET("/edit-post/:id", postHandler.ShowEdit)
		admin.POST("/edit-post/:id", postHandler.Update)
		admin.GET("/delete/:id", postHandler.Delete)
	}

	router.NoRoute(pageHandler.NotFound)
}
