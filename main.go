package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hamzahey/algorithm-ai/internal/config"
	"github.com/hamzahey/algorithm-ai/internal/db"
	"github.com/hamzahey/algorithm-ai/internal/handler"
	"github.com/hamzahey/algorithm-ai/internal/service"
	"github.com/joho/godotenv"
)

// @title Job Board API
// @version 1.0
// @description Job board backend: auth, job ownership CRUD, discovery search, admin moderation.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx)
	if err != nil {
		slog.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
		os.Exit(1)
	}

	authSvc, err := service.NewAuthService(store, cfg.Auth)
	if err != nil {
		slog.Error("auth service init failed", "error", err)
		os.Exit(1)
	}
	jobSvc := service.NewJobService(store)
	adminSvc := service.NewAdminService(store, store)

	if err := authSvc.EnsureAdmin(ctx, cfg.Admin); err != nil {
		slog.Error("admin seed failed", "error", err)
		os.Exit(1)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	jobHandler := handler.NewJobHandler(jobSvc)
	searchHandler := handler.NewSearchHandler(jobSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)
	healthHandler := handler.NewHealthHandler(store, cfg.Server)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", healthHandler.Health)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/signout", handler.AuthMiddleware(authSvc), authHandler.Signout)
	}

	router.GET("/jobs/search", searchHandler.Search)

	jobs := router.Group("/jobs", handler.AuthMiddleware(authSvc))
	{
		jobs.GET("", jobHandler.List)
		jobs.POST("", jobHandler.Create)
		jobs.GET("/:id", jobHandler.Get)
		jobs.PATCH("/:id", jobHandler.Update)
		jobs.DELETE("/:id", jobHandler.Delete)
	}

	admin := router.Group("/admin", handler.AuthMiddleware(authSvc), handler.AdminMiddleware(authSvc))
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/jobs", adminHandler.ListJobs)
		admin.PATCH("/jobs/:id/approve", adminHandler.ApproveJob)
		admin.DELETE("/jobs/:id", adminHandler.DeleteJob)
	}

	addr := ":" + cfg.Server.Port
	slog.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
