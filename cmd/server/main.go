// Package main is the entry point for the dwex demo server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"dwex-demo/internal/app"
	"dwex-demo/internal/config"
	internaldb "dwex-demo/internal/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file (if present)
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	pools := openPreferences(cfg, logger)
	if pools != nil {
		defer pools.Close() //nolint:errcheck
	}

	application, err := app.New(ctx, app.Deps{Cfg: cfg, Pools: pools, Logger: logger})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           application.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	application.Reaper.Start()
	defer application.Reaper.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scheme := "http"
		if cfg.TLSEnabled() {
			scheme = "https"
		}
		logger.Info("dwex listening", "addr", cfg.ListenAddr, "env", cfg.Env, "tabs", cfg.EnableTabs)
		logger.Info("try: curl " + scheme + "://" + curlHostForListenAddr(cfg.ListenAddr) + "/healthz")

		var err error
		if cfg.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})
	if application.Watcher != nil {
		g.Go(func() error {
			// A broken watcher only stops hot reload.
			if err := application.Watcher.Run(gctx); err != nil {
				logger.Warn("workspace watcher stopped", "error", err)
			}
			return nil
		})
	}
	return g.Wait()
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// openPreferences opens and migrates the preference database. Failures are
// logged and leave preferences in memory.
func openPreferences(cfg *config.Config, logger *slog.Logger) *internaldb.Pools {
	if cfg.PrefsDBPath == "" {
		return nil
	}
	pools, err := internaldb.OpenPools(cfg.PrefsDBPath, 4)
	if err != nil {
		logger.Warn("preference database unavailable, keeping preferences in memory", "path", cfg.PrefsDBPath, "error", err)
		return nil
	}
	if err := internaldb.RunMigrations(pools.Write); err != nil {
		logger.Warn("preference migrations failed, keeping preferences in memory", "error", err)
		_ = pools.Close()
		return nil
	}
	version, _ := internaldb.SchemaVersion(pools.Write)
	logger.Info("preference database ready", "path", cfg.PrefsDBPath, "schema_version", version)
	return pools
}

// curlHostForListenAddr turns a listen address into a host:port usable from
// the local machine.
func curlHostForListenAddr(listenAddr string) string {
	addr := strings.TrimSpace(listenAddr)
	if addr == "" {
		return "localhost:8080"
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
