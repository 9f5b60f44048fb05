package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idm_exporter/internal/api"
	"idm_exporter/internal/auth"
	"idm_exporter/internal/catalog"
	"idm_exporter/internal/collector"
	"idm_exporter/internal/config"
	"idm_exporter/internal/parser"
	"idm_exporter/internal/poller"
	"idm_exporter/internal/types"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting iDM Exporter",
		"listen_addr", cfg.ListenAddr,
		"host", cfg.Host,
		"cycle_time", cfg.CycleTime,
		"stat_divisor", cfg.StatDivisor,
		"clock_max_deviation", cfg.ClockMaxDeviation)

	// Device session and poll loop
	session := auth.NewSession(cfg.Host, cfg.PIN, cfg.Timeout, logger)
	apiClient := api.NewAPIClient(session, logger)
	p := poller.New(session, apiClient, parser.New(logger),
		parser.SettingsState{Catalog: catalog.ForLanguage(catalog.Language(cfg.Language))},
		poller.Options{
			Timeout:           cfg.Timeout,
			CycleTime:         cfg.CycleTime,
			StatDivisor:       uint64(cfg.StatDivisor),
			ClockMaxDeviation: cfg.ClockMaxDeviation,
			ClockCheckHour:    cfg.ClockCheckHour,
		}, logger)

	// Create and register Prometheus collector
	idmCollector := collector.NewIDMCollector(cfg.DisplayName, logger)
	prometheus.MustRegister(idmCollector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		p.Run(ctx, idmCollector.Record)
	}()

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/values", valuesHandler(idmCollector.Latest))

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	logger.Info("Shutting down gracefully...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}

	select {
	case <-pollDone:
	case <-shutdownCtx.Done():
		logger.Warn("Poll loop did not stop in time")
	}

	logger.Info("Exporter stopped")
}

// setupLogger creates a structured logger based on configuration.
func setupLogger(level, format string) *slog.Logger {
	var handler slog.Handler

	logLevel := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// healthHandler responds to health check requests.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK\n"))
}

// valuesHandler serves the pairs of the last poll cycle as JSON, in the order they were read.
func valuesHandler(latest func() types.Values) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vals := latest()
		if vals == nil {
			vals = types.Values{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vals); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
