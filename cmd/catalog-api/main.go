package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campus-ce/catalog-api/api/swagger"
	"github.com/campus-ce/catalog-api/internal/handler"
	"github.com/campus-ce/catalog-api/internal/middleware"
	"github.com/campus-ce/catalog-api/internal/repository"
	"github.com/campus-ce/catalog-api/internal/service"
	"github.com/campus-ce/catalog-api/pkg/cache"
	"github.com/campus-ce/catalog-api/pkg/config"
	"github.com/campus-ce/catalog-api/pkg/database"
	"github.com/campus-ce/catalog-api/pkg/export"
	"github.com/campus-ce/catalog-api/pkg/logger"
	corsmiddleware "github.com/campus-ce/catalog-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campus-ce/catalog-api/pkg/middleware/requestid"
)

// @title Course Catalog API
// @version 1.0.0
// @description Continuing-education course catalog with schedule grouping and filtering
// @BasePath /
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var source service.CourseSource
	var cacheRepo service.CacheRepository
	if cfg.Catalog.UseMockData {
		fixture, err := repository.NewFixtureCourseSource(cfg.Catalog.MockDataPath)
		if err != nil {
			logr.Sugar().Fatalw("failed to load mock catalog", "path", cfg.Catalog.MockDataPath, "error", err)
		}
		source = fixture
		logr.Sugar().Infow("serving mock catalog data", "path", cfg.Catalog.MockDataPath)
	} else {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		source = repository.NewCourseRepository(db)

		if cfg.Catalog.CacheEnabled {
			redisClient, err := cache.NewRedis(cfg.Redis)
			if err != nil {
				logr.Sugar().Fatalw("failed to connect to redis", "error", err)
			}
			repo := repository.NewCacheRepository(redisClient)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, cacheRepo != nil)
	catalogSvc := service.NewCatalogService(source, cacheSvc, metricsSvc, nil, logr, service.CatalogConfig{
		APIPrefix:   cfg.APIPrefix,
		PageSize:    cfg.Catalog.PageSize,
		MaxPageSize: cfg.Catalog.MaxPageSize,
	})
	exportSvc := service.NewExportService(catalogSvc, export.NewCSVExporter(), export.NewPDFExporter(), export.NewXLSXExporter(), logr, cfg.Catalog.MaxPageSize)
	authSvc := service.NewAuthService(cfg.Auth, nil, logr)

	courseHandler := handler.NewCourseHandler(catalogSvc, exportSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/courses/", courseHandler.List)
		api.GET("/courses/prefixes/", courseHandler.Prefixes)
		api.GET("/courses/export", middleware.JWT(authSvc), courseHandler.Export)
		api.POST("/auth/token", authHandler.Token)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "mock_data", cfg.Catalog.UseMockData)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
