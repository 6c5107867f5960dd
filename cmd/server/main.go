package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/kmansel/greenwords/pkg/logging"
	"github.com/kmansel/greenwords/pkg/server"
	"github.com/kmansel/greenwords/pkg/version"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	config := server.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalw("failed to process config", "error", err)
	}

	logger := logging.NewLogger("server", config.Debug)
	logger.Infow("starting server", "version", version.Get(), "addr", config.Addr)

	srv, err := server.NewServer(server.NewServerOptions{
		Logger:    logger,
		MaxGames:  config.MaxGames,
		PlayerTTL: config.PlayerTTL,
	})
	if err != nil {
		logger.Fatalw("failed to create server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(logging.WithLogger(ctx, logger))
	g.Go(func() error {
		return srv.Start(ctx, config.Addr)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
