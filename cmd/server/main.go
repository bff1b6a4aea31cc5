package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitlevel/fitlevel/internal/alerts"
	"github.com/fitlevel/fitlevel/internal/api"
	"github.com/fitlevel/fitlevel/internal/auth"
	"github.com/fitlevel/fitlevel/internal/config"
	"github.com/fitlevel/fitlevel/internal/store"
	"github.com/fitlevel/fitlevel/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("fitlevel-server starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"auth_mode", cfg.Server.Auth.Mode,
		"retention_ttl", cfg.Server.Retention.TTL,
		"stream_interval", cfg.Server.Stream.Interval,
		"alert_rules", len(cfg.Server.Alerts.Rules),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Record store with background retention eviction (no-op when TTL is 0).
	st := store.New(cfg.Server.Retention.TTL)
	go st.Run(ctx)

	// Alerts engine — evaluates rules on every computed level record.
	alertEngine := alerts.New(cfg.Server.Alerts)

	// Hot-reload alert rules when the config file changes.
	go func() {
		err := config.Watch(ctx, *configPath, func(next *config.Config) {
			alertEngine.UpdateRules(next.Server.Alerts)
		})
		if err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	// WebSocket hub — broadcasts the level summary to clients on each tick.
	hub := ws.New(st, cfg.Server.Stream.Interval)
	go hub.Run(ctx)

	// Combined HTTP server: REST API (behind optional API key auth) + hub.
	apiHandler := auth.Middleware(
		cfg.Server.Auth.Mode,
		cfg.Server.Auth.EffectiveHeader(),
		cfg.Server.Auth.Key(),
		api.New(st, alertEngine),
	)

	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", apiHandler)
	httpMux.Handle("/ws/stream", hub)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("fitlevel-server shutting down")
	httpSrv.Shutdown(context.Background()) //nolint:errcheck
}
