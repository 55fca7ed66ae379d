package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/catalog"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/config"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/database"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/handler"
	middlewarepkg "github.com/VPPranav/Bangalore-Local-Business-Finder/internal/middleware"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/observability"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/repository"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/router"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/service"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/pkg/logger"
)

const serviceName = "business-finder"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()
	zlog = zlog.With(zap.String("service", serviceName))

	// The contact store is optional at startup: the catalog routes stay up
	// and contact intake reports the store as unavailable until a restart.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.ConnectTimeout)
	cancel()
	if err != nil {
		zlog.Warn("contact store unavailable, starting degraded", zap.Error(err))
	} else {
		defer pool.Close()
	}

	source := catalog.NewFileSource(cfg.CatalogPath)
	contactsRepo := repository.NewPGXContactsRepository(pool)

	businessService := service.NewBusinessService(source)
	contactService := service.NewContactService(contactsRepo, zlog)

	metrics := observability.NewHTTPMetrics(serviceName)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(zlog))
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Pages:      handler.NewPagesHandler(),
		Businesses: handler.NewBusinessHandler(businessService, zlog),
		Contact:    handler.NewContactHandler(contactService),
	}, metrics)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	zlog.Info("server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
