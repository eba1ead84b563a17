package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffing/config"
	_ "staffing/docs"
	"staffing/internal/repository"
	"staffing/internal/service"
	"staffing/internal/storage"
	"staffing/internal/transport/rest"
	"staffing/internal/transport/websocket"
	"staffing/pkg/database"
	"staffing/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Staffing API
// @version 1.0
// @description Matches service orders with available professionals and books their schedules

// @BasePath /api/v1
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Service:     cfg.Name,
		Version:     cfg.Version,
	})
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var repos *repository.Repositories
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := database.NewPostgresDB(ctx, cfg.Postgres)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		log.Info("running database migrations", zap.String("dir", cfg.Store.MigrationsDir))
		if err := database.RunMigrations(ctx, db, cfg.Store.MigrationsDir, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}

		repos = repository.NewRepositories(db)
	default:
		store := repository.NewMemoryStore(repository.DemoProfessionals(), repository.DemoOrders())
		repos = repository.NewMemoryRepositories(store)
		log.Info("using in-memory store")
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("failed to init s3 storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("schedule receipts enabled", zap.String("endpoint", cfg.S3.Endpoint), zap.String("bucket", cfg.S3.Bucket))
	} else {
		log.Warn("s3 storage is not configured, schedule receipts are disabled")
	}

	scheduleHub := websocket.NewScheduleHub(log)
	go scheduleHub.Run(ctx)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		FileStorage: fileStorage,
		Notifier:    scheduleHub,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rest.NewHandler(services, log, cfg, scheduleHub).InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
