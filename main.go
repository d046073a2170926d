package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"wayfare/config"
	"wayfare/internal/database"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		slog.Error("main.config_load_failed", "path", *configPath, "error", err)
		os.Exit(1)
	}

	setupLogging(settings.Logging)

	db, err := database.NewDB(database.Config{DatabasePath: settings.Database.Path})
	if err != nil {
		slog.Error("main.database_open_failed", "path", settings.Database.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	router, err := buildRouter(db, settings.SessionTTL())
	if err != nil {
		slog.Error("main.router_failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         settings.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("main.listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("main.server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("main.shutdown_failed", "error", err)
	}
	slog.Info("main.stopped")
}

func setupLogging(cfg config.LogConfig) {
	var out io.Writer = os.Stderr
	if cfg.Path != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename: cfg.Path,
			MaxSize:  cfg.MaxSizeMB,
			MaxAge:   cfg.MaxAge,
			Compress: true,
		})
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})))
}
