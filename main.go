package main

import (
	"log/slog"
	"os"

	"github.com/valyala/fasthttp"

	"risk-engine/internal/config"
	"risk-engine/internal/engine"
	"risk-engine/internal/handler"
	"risk-engine/internal/logging"
	"risk-engine/internal/metrics"
	"risk-engine/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Service:    "risk-engine",
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	slog.SetDefault(logger)

	store, err := session.NewStore(cfg.SessionTTL, cfg.SessionCacheMB)
	if err != nil {
		logger.Error("session store init failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	m := metrics.New()
	h := handler.New(engine.New(store, m, logger), m, logger)

	logger.Info("risk engine starting", "port", cfg.Port, "session_ttl", cfg.SessionTTL)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Route); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
