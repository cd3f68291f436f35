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

	httpapi "imagestudio/internal/http"
	"imagestudio/internal/http/handlers"
	"imagestudio/internal/infra"
	"imagestudio/internal/infra/geoip"
	"imagestudio/internal/middleware"
	"imagestudio/internal/relay"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := infra.NewLogger(cfg.AppEnv)

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		log.Warn().Err(err).Msg("geoip database unavailable, continuing without country lookups")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
		defer resolver.Close()
	}

	app := &handlers.App{Config: cfg, Log: log}

	// A missing credential is not fatal: the server still answers capability
	// endpoints and reports the configuration error per request.
	if cfg.CredentialConfigured() {
		rl, err := relay.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			log.Error().Err(err).Msg("relay initialization failed")
		} else {
			app.Relay = rl
			log.Info().Str("model", rl.Model()).Msg("image relay ready")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, image endpoints will report a configuration error")
	}

	router := httpapi.NewRouter(app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("http server listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
