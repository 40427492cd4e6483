package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mnjscf/team_ops_app/internal/adapters/gemini"
	"github.com/mnjscf/team_ops_app/internal/adapters/sheetsync"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/core/services"
	"github.com/mnjscf/team_ops_app/internal/handlers"
	"github.com/mnjscf/team_ops_app/internal/middleware"
	"github.com/mnjscf/team_ops_app/internal/platform/config"
	"github.com/mnjscf/team_ops_app/internal/repositories/database/sqlite"
	"github.com/mnjscf/team_ops_app/internal/repositories/snapshot"
	"github.com/mnjscf/team_ops_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// @title Team Ops Backend API
// @version 1.0
// @description Team operations dashboard backend: work logs, directives, chat and performance analysis.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Open the embedded snapshot database
	db, err := database.NewSqliteDB(ctx, cfg.SnapshotDBPath)
	if err != nil {
		logger.Error("Failed to open snapshot database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseSqliteDB(db)

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		logger.Error("Could not create sqlite driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "sqlite", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	// --- End Database Migrations ---

	// External collaborators are optional; the services degrade gracefully
	// when either is absent.
	var provider portssvc.AnalysisProvider
	if cfg.GeminiAPIKey != "" {
		analyzer, err := gemini.NewAnalyzer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to initialize analysis provider", slog.String("error", err.Error()))
			os.Exit(1)
		}
		provider = analyzer
	}

	var submitter portssvc.WorkLogSubmitter
	if cfg.SheetWebhookURL != "" {
		submitter = sheetsync.NewSubmitter(cfg.SheetWebhookURL)
	}

	// Wire repositories and services over the snapshot store
	store := sqlite.NewStore(db)
	repos := snapshot.NewRepositoryProvider(store, logger)
	svcContainer := services.NewServiceContainer(repos, domain.TeamRoster(), provider, submitter)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
