package main

// @title           Local Library Catalog
// @version         1.0
// @description     Server-rendered catalog of books, authors, genres and book copies.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/config"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/db"
	docs "github.com/snnyvrz/shelfshare/apps/catalog-web/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/logger"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/view"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	appVersion      = "0.1.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	startTime := time.Now()

	cfg := config.Load()

	log := logger.New(logger.Config{
		Mode:  cfg.GinMode,
		Level: logger.ParseLevel(cfg.LogLevel),
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if loc, err := time.LoadLocation(cfg.TZ); err != nil {
		log.Warn("unknown TZ, keeping system zone", "tz", cfg.TZ, "error", err)
	} else {
		time.Local = loc
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg, log.Logger)
	if err != nil {
		log.Error("could not open store", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.HTMLRender = view.Must()
	e.Use(handler.ErrorHandler(log.Logger, !cfg.IsRelease()))
	e.NoRoute(handler.NotFound)

	docs.SwaggerInfo.BasePath = "/"

	healthHandler := handler.NewHealthHandler(store, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	e.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	handler.RegisterCatalog(e.Group("/catalog"), store, validation.New())

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.Addr, "mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("could not close store", "error", err)
	}
}
