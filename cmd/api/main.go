package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/suryalovesjs/dema-inventory-service/api/graph"
	"github.com/suryalovesjs/dema-inventory-service/api/routes"
	"github.com/suryalovesjs/dema-inventory-service/internal/catalog"
	"github.com/suryalovesjs/dema-inventory-service/internal/inventory"
	"github.com/suryalovesjs/dema-inventory-service/internal/orders"
	"github.com/suryalovesjs/dema-inventory-service/pkg/config"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db"
	"github.com/suryalovesjs/dema-inventory-service/pkg/logger"
	"github.com/suryalovesjs/dema-inventory-service/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	checker := catalog.NewChecker(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())

	inventoryService, err := inventory.NewService(inventory.NewRepository(dbClient.DB()), checker)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()), checker)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	resolver, err := graph.NewResolver(inventoryService, ordersService, catalogRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create graphql resolver", err)
		os.Exit(1)
	}

	schema, err := graphql.ParseSchema(graph.Schema, resolver,
		graphql.MaxParallelism(cfg.GraphQL.MaxParallelism),
		graphql.UseStringDescriptions(),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to parse graphql schema", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"graphql_path": cfg.GraphQL.Path,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, schema, registry),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received, draining")
		drainCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "server drained")
	}
}
