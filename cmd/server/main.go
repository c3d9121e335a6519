package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/munimapp/munim/internal/config"
	"github.com/munimapp/munim/internal/handler"
	"github.com/munimapp/munim/internal/service"
	"github.com/munimapp/munim/internal/storage/recycle"
	"github.com/munimapp/munim/internal/storage/sqlite"
	"github.com/munimapp/munim/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	bin, err := recycle.Open(cfg.Database.BinPath, cfg.Retention())
	if err != nil {
		slog.Error("Failed to open recycle bin", "error", err)
		os.Exit(1)
	}
	defer bin.Close()
	slog.Info("Recycle bin opened", "path", cfg.Database.BinPath, "retention_days", cfg.Recycle.RetentionDays)

	go purgeLoop(bin, cfg.Retention(), cfg.Recycle.PurgeInterval)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := handler.NewRouter(handler.Services{
		Books:        service.NewBookService(store, bin),
		Chart:        service.NewChartService(store, bin),
		Transactions: service.NewTransactionService(store, bin),
		Ledgers:      service.NewLedgerService(store),
		Bin:          service.NewBinService(store, bin),
	})

	// HTTP/2 without TLS, for clients behind a terminating proxy.
	h2cHandler := h2c.NewHandler(router, &http2.Server{})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// purgeLoop drops expired bin items on a fixed interval. Listing already
// hides expired items, so this only reclaims space.
func purgeLoop(bin *recycle.Bin, retention, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		purged, err := bin.Purge(time.Now().Add(-retention))
		if err != nil {
			slog.Error("Bin purge failed", "error", err)
			continue
		}
		if purged > 0 {
			slog.Info("Bin purged", "items", purged)
		}
	}
}
