// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/disease-registry/cliparse"
	"github.com/danielhkuo/disease-registry/db"
	"github.com/danielhkuo/disease-registry/router"
	"github.com/danielhkuo/disease-registry/store"
	"github.com/danielhkuo/disease-registry/views"
)

const shutdownGrace = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	ctx := context.Background()

	// Connect to the database
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn.DB); err != nil {
		slog.Error("schema creation failed", "error", err)
		conn.Close()
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	pool := store.NewPool(conn, db.Isolation(cfg.DatabaseType))
	defer pool.Close()

	render, err := views.New()
	if err != nil {
		slog.Error("template loading failed", "error", err)
		pool.Close()
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(pool, render),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		pool.Close()
		os.Exit(1)
	}
	<-drained
	slog.Info("Server closed")
}
