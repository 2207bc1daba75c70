package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/you/go-trip-tracker/internal/auth"
	"github.com/you/go-trip-tracker/internal/config"
	"github.com/you/go-trip-tracker/internal/geo"
	"github.com/you/go-trip-tracker/internal/httpx"
	"github.com/you/go-trip-tracker/internal/pricefetch"
	"github.com/you/go-trip-tracker/internal/providers"
	"github.com/you/go-trip-tracker/internal/service"
	"github.com/you/go-trip-tracker/internal/session"
	"github.com/you/go-trip-tracker/internal/store"
	"github.com/you/go-trip-tracker/internal/trend"
)

// selfTokenTTL bounds the token the server signs for its own price client.
const selfTokenTTL = 24 * 365 * time.Hour

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Loading config
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	// Trips live in memory for the life of the process
	trips := service.NewTripService(store.NewMemTripStore())
	if cfg.SeedDemoTrips {
		if err := trips.Seed(context.Background(), service.DemoTrips()); err != nil {
			return err
		}
		log.Info("demo trips loaded", "count", len(service.DemoTrips()))
	}

	// Mock price endpoint backend
	quotes := service.NewQuoteService(providers.MockAirlines(), cfg.QuoteTimeout)

	// Price client for the selected trip, pointed at the endpoint above by default
	credential := cfg.PriceAPIKey
	if credential == "" {
		credential, err = auth.IssueToken(cfg, "trip-tracker", selfTokenTTL)
		if err != nil {
			return err
		}
	}
	client := pricefetch.NewClient(cfg.PriceEndpoint, credential, cfg.QuoteTimeout)
	tracker := pricefetch.NewTracker(client, log.With("component", "pricefetch"))

	sess := session.New(trips, geo.DefaultTable(), trend.NewRandom(), tracker, cfg.HomeOrigin)

	// Creation of HTTP server
	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: httpx.NewRouter(httpx.Deps{
			Config:  cfg,
			Log:     log,
			Session: sess,
			Quotes:  quotes,
		}),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Running http server on a secondary goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "tls", cfg.TLSCertFile != "" && cfg.TLSKeyFile != "")
		var err error
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	sess.ClearSelection()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
