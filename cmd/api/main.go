package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"coursematerials/internal/blobstore"
	"coursematerials/internal/config"
	"coursematerials/internal/database"
	"coursematerials/internal/domain/admin"
	"coursematerials/internal/domain/image"
	"coursematerials/internal/domain/material"
	"coursematerials/internal/domain/section"
	"coursematerials/internal/metrics"
	"coursematerials/internal/middleware"
	jwtsvc "coursematerials/internal/pkg/jwt"
	"coursematerials/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	if err := database.Migrate(db, &section.Section{}, &material.Material{}); err != nil {
		log.Fatal("migration failed", "error", err)
	}

	store, err := blobstore.New(ctx, cfg.Blob())
	if err != nil {
		log.Fatal("blob store init failed", "backend", cfg.BlobBackend, "error", err)
	}
	images := image.NewManager(store, log)

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.AdminTokenTTL)

	sectionRepo := section.NewRepository(db)
	materialService := material.NewService(material.NewRepository(db), sectionRepo, images, log)
	sectionService := section.NewService(sectionRepo, materialService, log)
	adminService := admin.NewService(cfg.AdminPasswordHash, jwt, sectionService, materialService, log)

	sectionHandler := section.NewHandler(sectionService)
	materialHandler := material.NewHandler(materialService, sectionService)
	adminHandler := admin.NewHandler(adminService)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = image.MaxFileSize + 1<<20
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/healthz", func(c *gin.Context) {
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if local, ok := store.(*blobstore.LocalStore); ok {
		r.Static(cfg.UploadURLBase, local.Dir())
	}

	v1 := r.Group("/api/v1")
	{
		// public
		section.RegisterPublicRoutes(v1, sectionHandler)
		material.RegisterPublicRoutes(v1, materialHandler)

		adminGroup := v1.Group("/admin")
		admin.RegisterLoginRoute(adminGroup, adminHandler)

		// protected
		protected := adminGroup.Group("")
		protected.Use(admin.AdminJWTAuth(jwt))
		{
			admin.RegisterRoutes(protected, adminHandler)
			section.RegisterAdminRoutes(protected, sectionHandler)
			material.RegisterAdminRoutes(protected, materialHandler)
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr, "env", cfg.AppEnv, "blob_backend", cfg.BlobBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn("blob store close failed", "error", err)
		}
	}
}
