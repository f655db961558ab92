package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/sd-cms-api/api/swagger"
	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/internal/handler"
	"github.com/noah-isme/sd-cms-api/internal/middleware"
	"github.com/noah-isme/sd-cms-api/internal/service"
	"github.com/noah-isme/sd-cms-api/internal/store"
	"github.com/noah-isme/sd-cms-api/pkg/config"
	"github.com/noah-isme/sd-cms-api/pkg/database"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
	"github.com/noah-isme/sd-cms-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sd-cms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sd-cms-api/pkg/middleware/requestid"
)

// @title Elementary School CMS API
// @version 1.0.0
// @description Content API for the school website and its admin panel
// @BasePath /api/v1
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

	kv, err := newKVStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init storage backend", "backend", cfg.Storage.Backend, "error", err)
	}

	changeBus := bus.New()
	metricsSvc := service.NewMetricsService()
	for _, topic := range []bus.Topic{bus.TopicAnnouncements, bus.TopicEvents, bus.TopicStaff} {
		topic := topic
		changeBus.Subscribe(topic, func() { metricsSvc.ObserveChangeSignal(string(topic)) })
	}

	opts := store.Options{KV: kv, Bus: changeBus, Logger: logr, Observe: metricsSvc.ObserveStoreOperation}
	eventStore := store.NewEventStore(opts)
	staffStore := store.NewStaffStore(opts)
	announcementStore := store.NewAnnouncementStore(opts)

	// Explicit seeding at startup; the stores have no import-time side
	// effects.
	if err := eventStore.Initialize(); err != nil {
		logr.Sugar().Fatalw("failed to seed events", "error", err)
	}
	if err := staffStore.Initialize(); err != nil {
		logr.Sugar().Fatalw("failed to seed staff", "error", err)
	}
	if err := announcementStore.Initialize(); err != nil {
		logr.Sugar().Fatalw("failed to seed announcements", "error", err)
	}

	passwordHash := cfg.Admin.PasswordHash
	if passwordHash == "" {
		passwordHash, err = service.HashPassword(cfg.Admin.Password)
		if err != nil {
			logr.Sugar().Fatalw("failed to hash admin password", "error", err)
		}
		if cfg.Env == config.EnvProduction {
			logr.Warn("ADMIN_PASSWORD_HASH not set, hashing ADMIN_PASSWORD at startup")
		}
	}

	authSvc := service.NewAuthService(nil, logr, service.AuthConfig{
		Username:     cfg.Admin.Username,
		PasswordHash: passwordHash,
		Secret:       cfg.JWT.Secret,
		Expiry:       cfg.JWT.Expiration,
	})
	eventSvc := service.NewEventService(eventStore, nil, logr)
	staffSvc := service.NewStaffService(staffStore, nil, logr)
	announcementSvc := service.NewAnnouncementService(announcementStore, nil, logr)
	exportSvc := service.NewExportService(eventStore, staffStore, cfg.Exports.SchoolName, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	staffHandler := handler.NewStaffHandler(staffSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	updatesHandler := handler.NewUpdatesHandler(changeBus)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/announcements", announcementHandler.ListPublished)
		api.GET("/events/featured", eventHandler.ListFeatured)
		api.GET("/staff", staffHandler.PublicStaff)
		api.GET("/updates", updatesHandler.Stream)

		admin := api.Group("/admin", middleware.JWT(authSvc))
		{
			admin.GET("/announcements", announcementHandler.List)
			admin.POST("/announcements", announcementHandler.Create)
			admin.PATCH("/announcements/:id", announcementHandler.Update)
			admin.DELETE("/announcements/:id", announcementHandler.Delete)

			admin.GET("/events", eventHandler.List)
			admin.POST("/events", eventHandler.Create)
			admin.PUT("/events/reorder", eventHandler.Reorder)
			admin.PATCH("/events/:id", eventHandler.Update)
			admin.DELETE("/events/:id", eventHandler.Delete)
			admin.POST("/events/:id/feature", eventHandler.ToggleFeatured)
			admin.POST("/events/:id/publish", eventHandler.TogglePublished)

			admin.GET("/staff/principal", staffHandler.Principal)
			admin.PUT("/staff/principal", staffHandler.SavePrincipal)
			admin.GET("/staff/teachers", staffHandler.Teachers)
			admin.POST("/staff/teachers", staffHandler.AddTeacher)
			admin.PATCH("/staff/teachers/:id", staffHandler.UpdateTeacher)
			admin.DELETE("/staff/teachers/:id", staffHandler.DeleteTeacher)

			if cfg.Exports.Enabled {
				admin.GET("/export/teachers", exportHandler.Teachers)
				admin.GET("/export/events", exportHandler.Events)
			}
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Backend)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newKVStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		if cfg.Storage.CapacityBytes > 0 {
			return kvstore.NewMemoryWithCapacity(cfg.Storage.CapacityBytes), nil
		}
		return kvstore.NewMemory(), nil
	case config.BackendFile:
		return kvstore.NewFile(cfg.Storage.FilePath)
	case config.BackendRedis:
		client, err := kvstore.NewRedisClient(
			fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			cfg.Redis.Password,
			cfg.Redis.DB,
		)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedis(client, cfg.Storage.KeyPrefix), nil
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return kvstore.NewPostgres(db, cfg.Storage.Table)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
