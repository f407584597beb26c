package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/aiaiai-hi/Report-App/internal"
	"github.com/aiaiai-hi/Report-App/internal/config"
	"github.com/aiaiai-hi/Report-App/internal/state"
	"github.com/aiaiai-hi/Report-App/internal/storage"
	"github.com/aiaiai-hi/Report-App/ui"
)

func main() {
	godotenv.Load()
	logger := internal.NewDefaultLogger()
	internal.DefaultLogger = logger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration: %v", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.Data.Dir)
	if err != nil {
		logger.Error("storage: %v", err)
		os.Exit(1)
	}
	app, err := state.Load(store)
	if err != nil {
		logger.Error("loading persisted state: %v", err)
		os.Exit(1)
	}

	sessions := state.NewSessions(12 * time.Hour)
	server, err := ui.NewServer(cfg, app, sessions)
	if err != nil {
		logger.Error("building server: %v", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("dashboard listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server: %v", err)
		os.Exit(1)
	}
	logger.Info("shut down cleanly")
}
