package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/ecollege-api/api/swagger"
	"github.com/noah-isme/ecollege-api/internal/handler"
	"github.com/noah-isme/ecollege-api/internal/middleware"
	"github.com/noah-isme/ecollege-api/internal/repository"
	"github.com/noah-isme/ecollege-api/internal/service"
	"github.com/noah-isme/ecollege-api/pkg/cache"
	"github.com/noah-isme/ecollege-api/pkg/config"
	"github.com/noah-isme/ecollege-api/pkg/database"
	"github.com/noah-isme/ecollege-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/ecollege-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/ecollege-api/pkg/middleware/requestid"
	"github.com/noah-isme/ecollege-api/pkg/validation"
)

// @title e-College API
// @version 1.0.0
// @description Faculty, department and course catalogue service
// @BasePath /ecollege/api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logr.Warn("close database", zap.Error(err))
		}
	}()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	metrics := service.NewMetricsService()
	router := newRouter(cfg, logr, db, redisClient, metrics)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("api_prefix", cfg.APIPrefix))
		serverErrors <- srv.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-signals:
		logr.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logr.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, logr *zap.Logger, db *sqlx.DB, redisClient *redis.Client, metrics *service.MetricsService) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled)
	validate := validation.New()

	facultyRepo := repository.NewFacultyRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	catalogueRepo := repository.NewCatalogueRepository(db)

	facultySvc := service.NewFacultyService(facultyRepo, departmentRepo, cacheSvc, validate, logr)
	departmentSvc := service.NewDepartmentService(departmentRepo, facultyRepo, courseRepo, cacheSvc, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, departmentRepo, cacheSvc, validate, logr)
	catalogueSvc := service.NewCatalogueService(catalogueRepo, logr)

	r := gin.New()
	r.Use(middleware.Recovery(logr))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	handler.RegisterRoutes(r, handler.RouteOptions{
		APIPrefix:     cfg.APIPrefix,
		EnableExports: cfg.Exports.Enabled,
	}, handler.Handlers{
		Faculties:   handler.NewFacultyHandler(facultySvc),
		Departments: handler.NewDepartmentHandler(departmentSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Catalogue:   handler.NewCatalogueHandler(catalogueSvc),
		Metrics:     handler.NewMetricsHandler(metrics, db, logr),
	}, middleware.Session(db))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
