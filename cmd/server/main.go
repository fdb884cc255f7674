// Package main is the entry point for the blog service.
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/config"
	"github.com/goblog/blog-service/internal/database"
	"github.com/goblog/blog-service/internal/handlers"
	"github.com/goblog/blog-service/internal/logger"
	"github.com/goblog/blog-service/internal/middleware"
	"github.com/goblog/blog-service/internal/repository"
	"github.com/goblog/blog-service/internal/routes"
	"github.com/goblog/blog-service/internal/service"
	"github.com/goblog/blog-service/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info")
		l.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, commentService)
	pageHandler := handlers.NewPageHandler()
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(session.Middleware(cfg.SessionSecret))
	router.LoadHTMLGlob(cfg.TemplateGlob)

	// Setup routes
	routes.Setup(
		router,
		middleware.LoadUser(authService),
		authHandler,
		postHandler,
		pageHandler,
		healthHandler,
	)

	// Start server
	log.Info().Str("addr", cfg.Addr).Msg("starting blog service")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
