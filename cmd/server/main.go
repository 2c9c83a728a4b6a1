// Command server runs Archs vs Dinos as a standalone websocket service with
// SQLite match statistics.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"archsdinos/internal/app"
	"archsdinos/internal/config"
	"archsdinos/internal/logging"
	"archsdinos/internal/ports/sqlite"
	"archsdinos/internal/ports/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	game, err := config.LoadGameConfig(cfg.GameConfigPath)
	if err != nil {
		logger.Warn("using default game config: %v", err)
		game = config.Default()
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	svc := app.NewGameActionService(app.NewGameSessionManager(), app.Options{
		Logger:     logger,
		Statistics: store,
		Rules:      game.Rules(),
	})
	srv := ws.NewServer(ws.Options{
		Auth:            ws.NewAuthenticator(cfg.JWTSecret),
		Service:         svc,
		Logger:          logger,
		PlayersPerMatch: cfg.PlayersPerMatch,
		ReconnectGrace:  cfg.ReconnectGrace,
		Leaderboard:     store,
	})
	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := svc.ExpireTimedOut(gctx); n > 0 {
					logger.Info("closed %d timed out matches", n)
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		srv.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
