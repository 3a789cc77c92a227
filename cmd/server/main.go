// Package main starts the local API server: it loads configuration, opens
// the file-backed store, seeds the collections and serves the repository
// operations to the UI shell over loopback HTTP.
package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/lmartins/servicofacil/internal/config"
	"github.com/lmartins/servicofacil/internal/logger"
	"github.com/lmartins/servicofacil/internal/repository"
	"github.com/lmartins/servicofacil/internal/server/handler/http"
	"github.com/lmartins/servicofacil/internal/store"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("cannot load config: %v\n", err)
		return
	}

	// Initialize structured logging.
	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Printf("cannot init logger: %v\n", err)
		return
	}
	defer func() { _ = zapLogger.Sync() }()

	// Open the durable store and seed the collections.
	fileStore, err := store.OpenFileStore(cfg.Store.DataDir)
	if err != nil {
		zapLogger.Fatal("cannot open store", zap.Error(err))
	}
	defer func() { _ = fileStore.Close() }()

	repo := repository.New(fileStore, zapLogger)
	if err := repo.Initialize(context.Background()); err != nil {
		zapLogger.Fatal("cannot initialize store", zap.Error(err))
	}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		&http.AccountHandler{Service: repo},
		&http.ProfileHandler{Service: repo},
		&http.SettingsHandler{Service: repo},
		&http.ServicesHandler{Catalog: repo, Provider: repo},
		&http.DebugHandler{Service: repo},
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	zapLogger.Info("starting local API server",
		zap.String("addr", cfg.Server.Addr),
		zap.String("data_dir", fileStore.Dir()),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
