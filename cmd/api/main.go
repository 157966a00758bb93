package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/httpserver"
	"storefront/internal/logx"
	catalogsvc "storefront/internal/service/catalog"
	sessionsvc "storefront/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(cfg.Environment.IsProduction())

	client := cfg.API.New()
	authenticator, err := cfg.Login.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("init authenticator")
	}

	catalogService := catalogsvc.New(client)
	sessionStore := sessionsvc.New(authenticator)

	srv, err := httpserver.New(cfg.HTTPAddr, httpserver.Deps{
		Catalog:  catalogService,
		Session:  sessionStore,
		Products: client,
	}, cfg.CORSOrigins)
	if err != nil {
		logx.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Str("api", cfg.API.BaseURL).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logx.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logx.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logx.Info().Msg("server stopped")
	}
}
