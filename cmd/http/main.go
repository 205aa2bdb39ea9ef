package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fsanano/go-shop/internal/config"
	"fsanano/go-shop/internal/handler"
	"fsanano/go-shop/internal/logger"
	"fsanano/go-shop/internal/metrics"
	"fsanano/go-shop/internal/repository"
	"fsanano/go-shop/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.New(os.Stdout, cfg.LogLevel, cfg.Env)
	if err != nil {
		logrus.Fatalf("Failed to set up logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Seed the in-memory shop from the database
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	catalog, err := repository.NewCatalogRepository(dbPool).LoadCatalog(ctx)
	dbPool.Close()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.WithFields(logrus.Fields{
		"items": len(catalog.Items),
		"users": len(catalog.Users),
	}).Info("catalog loaded")

	// 3. Setup Logic
	registry := prometheus.NewRegistry()
	shopService := service.NewShopService(catalog.Stock,
		service.WithLogger(log),
		service.WithRecorder(metrics.NewPurchaseMetrics(registry)),
	)
	shopHandler := handler.NewShopHandler(
		shopService,
		repository.NewUserRegistry(catalog.Users...),
		repository.NewItemCatalog(catalog.Items...),
		log,
	)
	h := handler.NewHandler(shopHandler, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), log)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Info("Server exiting")
}
