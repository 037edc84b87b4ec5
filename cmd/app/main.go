package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/prestige/internal/bootstrap"
	"github.com/osse101/prestige/internal/config"
	"github.com/osse101/prestige/internal/server"
	"github.com/osse101/prestige/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		fatal("Failed to open progress store", err)
	}

	catalog, err := bootstrap.LoadContent(cfg)
	if err != nil {
		fatal("Failed to load content", err)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		fatal("Failed to initialize event system", err)
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		fatal("Failed to register event handlers", err)
	}

	svc := session.NewService(store.Progress, publisher, catalog, session.Options{
		CacheSize: cfg.SessionCacheSize,
		CacheTTL:  cfg.SessionTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}, svc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		Store:              store,
	})
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
