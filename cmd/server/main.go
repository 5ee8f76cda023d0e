package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talentpact.backend/internal/config"
	"talentpact.backend/internal/domain/repositories"
	"talentpact.backend/internal/infrastructure/cache"
	pgsource "talentpact.backend/internal/infrastructure/datasources/postgres"
	"talentpact.backend/internal/infrastructure/migrations"
	infraRepos "talentpact.backend/internal/infrastructure/repositories"
	"talentpact.backend/internal/interfaces/http/handlers"
	"talentpact.backend/internal/interfaces/http/middleware"
	"talentpact.backend/internal/usecases"
	"talentpact.backend/pkg/jwt"
	"talentpact.backend/pkg/logger"
	"talentpact.backend/pkg/metrics"
	"talentpact.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		sqlDB, err := pgsource.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return gorm.Open(postgres.New(postgres.Config{
			Conn:                 sqlDB,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runMigrations = migrations.Run
	runServer     = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs the category cache and idempotency keys, both optional
	redisReady := true
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		redisReady = false
		logger.Warn(ctx, "Redis unavailable, caching and idempotency disabled", zap.Error(err))
	} else {
		defer redis.Close()
		logger.Info(ctx, "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info(ctx, "Database migrations applied")
	}

	r := buildRouter(cfg, db, redisReady)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "TalentPact backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "/api/v1"),
	)

	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// buildRouter wires repositories, usecases and handlers onto a new engine
func buildRouter(cfg *config.Config, db *gorm.DB, withCache bool) *gin.Engine {
	reg := metrics.NewRegistry()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	userRepo := infraRepos.NewUserRepository(db)
	projectRepo := infraRepos.NewProjectRepository(db)
	contractRepo := infraRepos.NewContractRepository(db)
	uow := infraRepos.NewUnitOfWork(db)

	var categoryCache repositories.CategoryCache
	if withCache {
		categoryCache = cache.NewCategoryCache(cfg.Cache.CategoryTTL)
	}

	projectUsecase := usecases.NewProjectUsecase(projectRepo, userRepo, categoryCache, reg)
	contractUsecase := usecases.NewContractUsecase(contractRepo, projectRepo, userRepo, uow, reg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware(reg))

	applyCORSMiddleware(r, cfg.CORS.AllowOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r, reg)
	registerAPIV1Routes(r, routeDeps{
		projectHandler:  handlers.NewProjectHandler(projectUsecase),
		contractHandler: handlers.NewContractHandler(contractUsecase),
		authMiddleware:  middleware.AuthMiddleware(jwtService),
		idempotency:     middleware.IdempotencyMiddleware(),
	})
	return r
}
