package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"mortgage-engine/internal/benchmarks"
	"mortgage-engine/internal/config"
	"mortgage-engine/internal/handler"
	"mortgage-engine/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	var extra []benchmarks.Regime
	if cfg.BenchmarksFile != "" {
		extra, err = benchmarks.LoadFile(cfg.BenchmarksFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load benchmark regimes")
		}
	}

	registry, err := benchmarks.NewRegistry(cfg.DefaultRegime, extra...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build benchmark registry")
	}
	log.Info().
		Strs("regimes", registry.Names()).
		Str("default", registry.DefaultName()).
		Msg("benchmark regimes loaded")

	server := &fasthttp.Server{
		Handler:      handler.New(registry, log).Handle,
		Name:         "mortgage-engine",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("mortgage engine starting")
		serverErr <- server.ListenAndServe(cfg.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	if err := shutdown(server, 10*time.Second); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("server exited")
}

// shutdown stops accepting connections and waits for open ones to finish,
// giving up after timeout.
func shutdown(server *fasthttp.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.ShutdownWithContext(ctx)
}
