// Package main runs the hackathon platform HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hackarena/backend/config"
	"github.com/hackarena/backend/internal/auth"
	"github.com/hackarena/backend/internal/catalog"
	"github.com/hackarena/backend/internal/middleware"
	"github.com/hackarena/backend/internal/projects"
	"github.com/hackarena/backend/internal/store/memory"
	"github.com/hackarena/backend/internal/teams"
	"github.com/hackarena/backend/internal/uploads"
	"github.com/hackarena/backend/internal/users"
	"github.com/hackarena/backend/pkg/database"
	"github.com/hackarena/backend/pkg/queue"
	"github.com/hackarena/backend/pkg/redis"
	"github.com/hackarena/backend/pkg/response"
	"github.com/hackarena/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	// Record store: postgres in production, memory for local runs and demos.
	var (
		userRepo    users.Repository
		colabRepo   users.CollaboratorRepository
		teamRepo    teams.Repository
		projectRepo projects.Repository
		catalogRepo catalog.Repository
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
		userRepo = users.NewPostgres(pool)
		colabRepo = users.NewCollaboratorPostgres(pool)
		teamRepo = teams.NewPostgres(pool)
		projectRepo = projects.NewPostgres(pool)
		catalogRepo = catalog.NewPostgres(pool)
	case config.DriverMemory:
		store := memory.New()
		userRepo = store.Users()
		colabRepo = store.Collaborators()
		teamRepo = store.Teams()
		projectRepo = store.Projects()
		catalogRepo = store.Catalog()
		logger.Warn("memory storage driver selected; data is not persisted")
	}

	// Redis backs the email queue and the catalog cache. The server still
	// serves without it; those features degrade.
	var rdb *redis.Client
	if r, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger); err != nil {
		logger.Warn("redis disabled", zap.Error(err))
	} else {
		rdb = r
		defer rdb.Close()
	}

	var jobQueue *queue.Queue
	if rdb != nil {
		jobQueue = queue.NewQueue(rdb.Client, logger)
		catalogRepo = catalog.NewCached(catalogRepo, rdb, logger)
	}

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Cfg := storage.S3Config{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			UploadsBucket:        cfg.AWS.UploadsBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}
		s3Client, err = storage.NewS3(ctx, s3Cfg, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		}
	}

	jwtService := auth.NewJWTService(cfg.Auth.Secret, cfg.Auth.ExpireHours)
	if cfg.Auth.DevMode {
		logger.Warn("auth dev mode enabled: bearer tokens are decoded without verification")
	}

	authHandler := auth.NewHandler(userRepo, colabRepo, jwtService, jobQueue, logger)

	userService := users.NewService(userRepo, teamRepo, jobQueue, logger)
	userHandler := users.NewHandler(userRepo, colabRepo, userService, logger)

	teamService := teams.NewService(teamRepo, userRepo, jobQueue, logger)
	teamHandler := teams.NewHandler(teamService, logger)

	projectHandler := projects.NewHandler(projectRepo, userRepo, logger)
	catalogHandler := catalog.NewHandler(catalogRepo, logger)

	var uploadHandler *uploads.Handler
	if s3Client != nil {
		uploadHandler = uploads.NewHandler(s3Client, cfg.AWS.UploadTimeoutSec, logger)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Signup and login (public)
	router.POST("/users/register", authHandler.Register)
	router.POST("/users/login", authHandler.Login)

	// Reference data (public reads)
	router.GET("/events", catalogHandler.ListEvents)
	router.GET("/categories", catalogHandler.ListCategories)
	router.GET("/sponsors", catalogHandler.ListSponsors)
	router.GET("/speakers", catalogHandler.ListSpeakers)
	router.GET("/scoring-criteria", catalogHandler.ListCriteria)

	// Protected API (JWT required)
	api := router.Group("")
	api.Use(middleware.JWT(jwtService, cfg.Auth.DevMode))
	{
		// Users
		api.POST("/users/register-event", userHandler.RegisterEvent)
		api.GET("/users", middleware.RequireRole("admin"), userHandler.List)
		api.GET("/users/:id", userHandler.GetByID)
		api.PATCH("/users/:id/onboarding", userHandler.UpdateOnboarding)
		api.POST("/collaborators", middleware.RequireRole("admin"), userHandler.AddCollaborator)

		// Teams
		api.POST("/teams", teamHandler.Create)
		api.GET("/teams", teamHandler.List)
		api.GET("/teams/:label", teamHandler.GetByLabel)
		api.PATCH("/teams/:label", teamHandler.Update)
		api.GET("/teams/:label/members", teamHandler.Members)
		api.DELETE("/teams/:label/members/:userId", teamHandler.RemoveMember)

		// Projects
		api.PUT("/teams/:label/project", projectHandler.Submit)
		api.GET("/teams/:label/project", projectHandler.GetByTeam)
		api.GET("/projects", middleware.RequireRole("admin", "judge"), projectHandler.List)

		// Reference data mutations (admin console)
		admin := api.Group("", middleware.RequireRole("admin"))
		{
			admin.POST("/events", catalogHandler.CreateEvent)
			admin.PUT("/events/:id", catalogHandler.UpdateEvent)
			admin.DELETE("/events/:id", catalogHandler.DeleteEvent)

			admin.POST("/categories", catalogHandler.CreateCategory)
			admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
			admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

			admin.POST("/sponsors", catalogHandler.CreateSponsor)
			admin.PUT("/sponsors/:id", catalogHandler.UpdateSponsor)
			admin.DELETE("/sponsors/:id", catalogHandler.DeleteSponsor)

			admin.POST("/speakers", catalogHandler.CreateSpeaker)
			admin.PUT("/speakers/:id", catalogHandler.UpdateSpeaker)
			admin.DELETE("/speakers/:id", catalogHandler.DeleteSpeaker)

			admin.POST("/scoring-criteria", catalogHandler.CreateCriterion)
			admin.PUT("/scoring-criteria/:id", catalogHandler.UpdateCriterion)
			admin.DELETE("/scoring-criteria/:id", catalogHandler.DeleteCriterion)
		}

		// Uploads (photo/CV to S3)
		if uploadHandler != nil {
			api.POST("/uploads", uploadHandler.Upload)
			api.POST("/uploads/presign", uploadHandler.Presign)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
